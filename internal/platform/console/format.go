package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/rokayasamy05/Mini-EHR-Console/internal/domain/clinical"
	"github.com/rokayasamy05/Mini-EHR-Console/internal/domain/patient"
)

// WriteRecords prints the display-all listing block for each record.
func WriteRecords(w io.Writer, records []patient.Record) {
	fmt.Fprintln(w, "===== All Patients =====")
	if len(records) == 0 {
		fmt.Fprintln(w, "No patients on record.")
		return
	}
	for _, r := range records {
		fmt.Fprintf(w, "ID: %d\n", r.ID)
		fmt.Fprintf(w, "Name: %s\n", r.Name)
		fmt.Fprintf(w, "Age: %d\n", r.Age)
		fmt.Fprintf(w, "Gender: %s\n", r.Gender)
		fmt.Fprintf(w, "BMI: %.2f\n", r.BMI())
		fmt.Fprintln(w)
	}
}

// WriteSearchResult prints the search hit, or the not-found line.
func WriteSearchResult(w io.Writer, r patient.Record, found bool) {
	if !found {
		fmt.Fprintln(w, "Patient not found.")
		return
	}
	fmt.Fprintln(w, "Patient Found:")
	fmt.Fprintf(w, "Name: %s\n", r.Name)
	fmt.Fprintf(w, "Age: %d\n", r.Age)
	fmt.Fprintf(w, "Gender: %s\n", r.Gender)
}

// WriteSummary prints the daily summary, or the no-data line when err is
// clinical.ErrNoData. Other errors are printed as-is.
func WriteSummary(w io.Writer, s clinical.DailySummary, err error) {
	fmt.Fprintln(w, "===== Daily Summary =====")
	if errors.Is(err, clinical.ErrNoData) {
		fmt.Fprintln(w, "No patient data available.")
		return
	}
	if err != nil {
		fmt.Fprintf(w, "Summary unavailable: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Total patients: %d\n", s.TotalCount)
	fmt.Fprintf(w, "Average BMI: %.2f\n", s.AverageBMI)
	fmt.Fprintf(w, "Patients with high BP: %d\n", s.HighBPCount)
	fmt.Fprintf(w, "Red triage cases: %d\n", s.RedTriageCount)
	fmt.Fprintf(w, "Overweight patients: %d\n", s.OverweightCount)
}
