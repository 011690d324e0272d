package patient

import (
	"context"
	"sort"
)

// Repository is the durable side of the record store.
type Repository interface {
	// Load returns records in file order, reading at most limit records
	// (limit <= 0 means no limit). truncated reports that input remained.
	Load(ctx context.Context, limit int) (records []Record, truncated bool, err error)
	// Append durably adds one record. It must not return before the write is flushed.
	Append(ctx context.Context, r Record) error
}

// FindByID scans records in their current order and returns the index of
// the first record with the given id.
func FindByID(records []Record, id int) (int, bool) {
	for i := range records {
		if records[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// SortByBMI orders records by ascending BMI in place.
func SortByBMI(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].BMI() < records[j].BMI()
	})
}
