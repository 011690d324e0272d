package clinical

import (
	"errors"

	"github.com/rokayasamy05/Mini-EHR-Console/internal/domain/patient"
)

// ErrNoData is returned by Summarize for an empty record set.
var ErrNoData = errors.New("no patient data")

// DailySummary aggregates the indicators over the whole store.
type DailySummary struct {
	TotalCount      int     `json:"total_count"`
	AverageBMI      float64 `json:"average_bmi"`
	HighBPCount     int     `json:"high_bp_count"`
	RedTriageCount  int     `json:"red_triage_count"`
	OverweightCount int     `json:"overweight_count"`

	BMICategories map[BMICategory]int `json:"bmi_categories"`
	BPCategories  map[BPCategory]int  `json:"bp_categories"`
	TriageLevels  map[TriageLevel]int `json:"triage_levels"`
}

// Summarize makes a single pass over records. OverweightCount counts the
// Overweight class only; Obese patients are tallied in BMICategories.
func Summarize(records []patient.Record) (DailySummary, error) {
	if len(records) == 0 {
		return DailySummary{}, ErrNoData
	}

	s := DailySummary{
		TotalCount:    len(records),
		BMICategories: make(map[BMICategory]int),
		BPCategories:  make(map[BPCategory]int),
		TriageLevels:  make(map[TriageLevel]int),
	}

	var totalBMI float64
	for _, r := range records {
		ind := Assess(r)
		totalBMI += ind.BMI

		s.BMICategories[ind.BMICat]++
		s.BPCategories[ind.BP]++
		s.TriageLevels[ind.Triage]++

		if ind.BP == BPHigh {
			s.HighBPCount++
		}
		if ind.Triage == TriageRed {
			s.RedTriageCount++
		}
		if ind.BMICat == BMIOverweight {
			s.OverweightCount++
		}
	}
	s.AverageBMI = totalBMI / float64(len(records))

	return s, nil
}
