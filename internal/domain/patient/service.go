package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultCapacity matches the table size operators have always worked with.
const DefaultCapacity = 30

// ErrCapacityExceeded is returned by Add when the store is full.
var ErrCapacityExceeded = errors.New("patient store capacity exceeded")

// Observer receives store events. It is optional.
type Observer interface {
	RecordsLoaded(n int)
	RecordAdded(total int)
	AppendFailed()
}

// Service is the in-memory record store. It owns the ordered table and
// advances it only after the repository has durably accepted a record.
type Service struct {
	repo     Repository
	capacity int
	records  []Record
	obs      Observer
	logger   zerolog.Logger
}

// NewService creates an empty store. capacity <= 0 disables the limit.
func NewService(repo Repository, capacity int, logger zerolog.Logger) *Service {
	return &Service{repo: repo, capacity: capacity, logger: logger}
}

// SetObserver attaches an optional Observer to the service.
func (s *Service) SetObserver(o Observer) {
	s.obs = o
}

func (s *Service) Capacity() int {
	return s.capacity
}

// Load replaces the table with the repository contents. Lines past capacity
// are dropped with a warning. On error the table is left unchanged.
func (s *Service) Load(ctx context.Context) (int, error) {
	records, truncated, err := s.repo.Load(ctx, s.capacity)
	if err != nil {
		return 0, err
	}
	if truncated {
		s.logger.Warn().
			Int("capacity", s.capacity).
			Msg("backing file holds more records than capacity, extra lines ignored")
	}
	s.records = records
	if s.obs != nil {
		s.obs.RecordsLoaded(len(records))
	}
	s.logger.Debug().Int("count", len(records)).Msg("patients loaded")
	return len(records), nil
}

// Add validates r, appends it to the repository, and only then to memory.
func (s *Service) Add(ctx context.Context, r Record) error {
	if err := Validate(r); err != nil {
		return err
	}
	if s.Full() {
		return fmt.Errorf("%w: store holds %d of %d", ErrCapacityExceeded, len(s.records), s.capacity)
	}
	if err := s.repo.Append(ctx, r); err != nil {
		if s.obs != nil {
			s.obs.AppendFailed()
		}
		s.logger.Error().Err(err).Int("patient_id", r.ID).Msg("append patient failed")
		return fmt.Errorf("append patient %d: %w", r.ID, err)
	}
	s.records = append(s.records, r)
	if s.obs != nil {
		s.obs.RecordAdded(len(s.records))
	}
	s.logger.Info().Int("patient_id", r.ID).Int("count", len(s.records)).Msg("patient added")
	return nil
}

// Full reports whether Add would be refused for capacity.
func (s *Service) Full() bool {
	return s.capacity > 0 && len(s.records) >= s.capacity
}

func (s *Service) Count() int {
	return len(s.records)
}

// Get returns the record at index i of the current order.
func (s *Service) Get(i int) Record {
	return s.records[i]
}

// Records returns a copy of the table in its current order.
func (s *Service) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// FindByID returns the index of the first record with id in current order.
func (s *Service) FindByID(id int) (int, bool) {
	return FindByID(s.records, id)
}

func (s *Service) SortByBMI() {
	SortByBMI(s.records)
}

// ListByBMI sorts the table by BMI and returns a copy. The in-memory order
// stays sorted afterwards; later additions go to the end.
func (s *Service) ListByBMI() []Record {
	s.SortByBMI()
	return s.Records()
}
