// Package console runs the operator menu over any reader/writer pair.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rokayasamy05/Mini-EHR-Console/internal/domain/clinical"
	"github.com/rokayasamy05/Mini-EHR-Console/internal/domain/patient"
)

// errInputClosed ends the session as if the operator chose Exit.
var errInputClosed = errors.New("input closed")

// ActionRecorder counts operator actions. It is optional.
type ActionRecorder interface {
	Action(name string)
}

const menu = `
Enter your choice:
1. Add New Patient
2. Display All Patients
3. Search Patient by ID
4. Generate Daily Summary
5. Exit
`

// Session is one interactive run of the menu loop.
type Session struct {
	svc    *patient.Service
	in     *bufio.Reader
	out    io.Writer
	logger zerolog.Logger
	rec    ActionRecorder
}

func NewSession(svc *patient.Service, in io.Reader, out io.Writer, logger zerolog.Logger) *Session {
	return &Session{
		svc:    svc,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// SetRecorder attaches an optional ActionRecorder.
func (s *Session) SetRecorder(r ActionRecorder) {
	s.rec = r
}

// Run loops until the operator exits or input ends. Failures inside an
// action are reported to the operator and the loop continues.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, menu)
		line, err := s.readLine()
		if err != nil {
			s.logger.Debug().Msg("input closed, ending session")
			return nil
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			choice = 0
		}

		start := time.Now()
		var action string
		switch choice {
		case 1:
			action = "add"
			err = s.addPatient(ctx)
		case 2:
			action = "display"
			WriteRecords(s.out, s.svc.ListByBMI())
		case 3:
			action = "search"
			err = s.searchPatient()
		case 4:
			action = "summary"
			sum, sumErr := clinical.Summarize(s.svc.Records())
			WriteSummary(s.out, sum, sumErr)
		case 5:
			action = "exit"
			fmt.Fprintln(s.out, "Exiting program...")
		default:
			action = "invalid"
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
		}

		if s.rec != nil {
			s.rec.Action(action)
		}
		s.logger.Debug().
			Str("action", action).
			Dur("latency", time.Since(start)).
			Msg("menu action")

		if choice == 5 || errors.Is(err, errInputClosed) {
			return nil
		}
	}
}

func (s *Session) addPatient(ctx context.Context) error {
	if s.svc.Full() {
		s.reportFull()
		return nil
	}

	var r patient.Record
	var err error

	if r.ID, err = s.promptInt("Enter patient ID: ", "", nil); err != nil {
		return err
	}
	if r.Name, err = s.promptText("Enter name: ",
		"Name must be non-empty and cannot contain commas. Enter name again: ",
		func(v string) error { return patient.CheckToken("name", v, true) }); err != nil {
		return err
	}
	if r.Age, err = s.promptInt("Enter age: ",
		"Age cannot be negative. Enter age again: ", patient.CheckAge); err != nil {
		return err
	}
	if r.Gender, err = s.promptText("Enter gender: ",
		"Gender cannot contain commas. Enter gender again: ",
		func(v string) error { return patient.CheckToken("gender", v, false) }); err != nil {
		return err
	}
	if r.WeightKg, err = s.promptFloat("Enter weight: ",
		"Weight must be positive. Enter weight again: ", patient.CheckWeight); err != nil {
		return err
	}
	if r.HeightM, err = s.promptFloat("Enter height: ",
		"Height must be positive. Enter height again: ", patient.CheckHeight); err != nil {
		return err
	}
	if r.TemperatureC, err = s.promptFloat("Enter body temperature: ",
		"Enter a realistic temperature. Try again: ", patient.CheckTemperature); err != nil {
		return err
	}
	if r.SystolicBP, err = s.promptInt("Enter systolic: ", "", nil); err != nil {
		return err
	}
	if r.DiastolicBP, err = s.promptInt("Enter diastolic: ", "", nil); err != nil {
		return err
	}
	if r.HeartRate, err = s.promptInt("Enter heart rate: ",
		"Enter a realistic heart rate. Try again: ", patient.CheckHeartRate); err != nil {
		return err
	}

	if err := s.svc.Add(ctx, r); err != nil {
		if errors.Is(err, patient.ErrCapacityExceeded) {
			s.reportFull()
		} else {
			fmt.Fprintf(s.out, "Could not save patient: %v\n", err)
		}
		return nil
	}
	fmt.Fprintln(s.out, "Patient added successfully!")
	return nil
}

func (s *Session) reportFull() {
	fmt.Fprintf(s.out, "Patient store is full (capacity %d). Patient not added.\n", s.svc.Capacity())
}

func (s *Session) searchPatient() error {
	id, err := s.promptInt("Enter patient ID to search: ", "", nil)
	if err != nil {
		return err
	}
	idx, found := s.svc.FindByID(id)
	var r patient.Record
	if found {
		r = s.svc.Get(idx)
	}
	WriteSearchResult(s.out, r, found)
	return nil
}

// readLine returns the next line without its terminator. A final line
// without a newline is still returned.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", errInputClosed
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// prompt writes msg and re-prompts until parse and check both accept the
// answer. A parse failure uses parseRetry, a check failure uses retry.
func prompt[T any](s *Session, msg, retry, parseRetry string, parse func(string) (T, error), check func(T) error) (T, error) {
	for {
		fmt.Fprint(s.out, msg)
		line, err := s.readLine()
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err != nil {
			msg = parseRetry
			continue
		}
		if check != nil {
			if err := check(v); err != nil {
				s.logger.Debug().Err(err).Msg("entry rejected")
				msg = retry
				continue
			}
		}
		return v, nil
	}
}

func (s *Session) promptInt(msg, retry string, check func(int) error) (int, error) {
	return prompt(s, msg, retry, "Please enter a whole number: ", func(v string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(v))
	}, check)
}

func (s *Session) promptFloat(msg, retry string, check func(float64) error) (float64, error) {
	return prompt(s, msg, retry, "Please enter a number: ", func(v string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	}, check)
}

func (s *Session) promptText(msg, retry string, check func(string) error) (string, error) {
	return prompt(s, msg, retry, retry, func(v string) (string, error) {
		return strings.TrimSpace(v), nil
	}, check)
}
