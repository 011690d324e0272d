package clinical

import (
	"math"
	"testing"

	"github.com/rokayasamy05/Mini-EHR-Console/internal/domain/patient"
)

func TestClassifyBMIValue_Boundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want BMICategory
	}{
		{10, BMIUnderweight},
		{18.49, BMIUnderweight},
		{18.5, BMINormal},
		{24.999, BMINormal},
		{25.0, BMIOverweight},
		{29.99, BMIOverweight},
		{30.0, BMIObese},
		{55, BMIObese},
	}
	for _, tt := range tests {
		if got := ClassifyBMIValue(tt.bmi); got != tt.want {
			t.Errorf("ClassifyBMIValue(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}

func TestClassifyBMI(t *testing.T) {
	tests := []struct {
		weight, height float64
		want           BMICategory
	}{
		{45, 1.75, BMIUnderweight},
		{70, 1.75, BMINormal},
		{90, 1.8, BMIOverweight},
		{120, 1.7, BMIObese},
	}
	for _, tt := range tests {
		if got := ClassifyBMI(tt.weight, tt.height); got != tt.want {
			t.Errorf("ClassifyBMI(%v, %v) = %q, want %q", tt.weight, tt.height, got, tt.want)
		}
	}
}

func TestClassifyBMI_Monotonic(t *testing.T) {
	rank := map[BMICategory]int{BMIUnderweight: 0, BMINormal: 1, BMIOverweight: 2, BMIObese: 3}
	prev := -1
	for w := 20.0; w <= 200; w += 0.5 {
		got := ClassifyBMI(w, 1.7)
		r, ok := rank[got]
		if !ok {
			t.Fatalf("ClassifyBMI(%v, 1.7) returned unknown category %q", w, got)
		}
		if r < prev {
			t.Fatalf("category went down at weight %v: %q", w, got)
		}
		prev = r
	}
}

func TestClassifyBMI_DegenerateInput(t *testing.T) {
	// Zero height yields +Inf; the function still answers with a category.
	if got := ClassifyBMI(70, 0); got != BMIObese {
		t.Errorf("ClassifyBMI(70, 0) = %q, want %q", got, BMIObese)
	}
	if got := ClassifyBMIValue(math.NaN()); got != BMIObese {
		t.Errorf("ClassifyBMIValue(NaN) = %q, want %q", got, BMIObese)
	}
}

func TestClassifyBP(t *testing.T) {
	tests := []struct {
		sys, dia int
		want     BPCategory
	}{
		{110, 70, BPNormal},
		{119, 79, BPNormal},
		{120, 70, BPElevated},
		{130, 85, BPElevated},
		{139, 95, BPElevated},
		{145, 89, BPElevated},
		{160, 95, BPHigh},
		{140, 90, BPHigh},
	}
	for _, tt := range tests {
		if got := ClassifyBP(tt.sys, tt.dia); got != tt.want {
			t.Errorf("ClassifyBP(%d, %d) = %q, want %q", tt.sys, tt.dia, got, tt.want)
		}
	}
}

// Known quirk: the Elevated branch matches on diastolic <= 89 alone, so a
// systolic of 200 is not reported as High. Kept as-is pending clinical review.
func TestClassifyBP_HighSystolicLowDiastolicIsElevated(t *testing.T) {
	if got := ClassifyBP(200, 85); got != BPElevated {
		t.Errorf("ClassifyBP(200, 85) = %q, want %q", got, BPElevated)
	}
}

func TestClassifyTriage(t *testing.T) {
	tests := []struct {
		name string
		temp float64
		hr   int
		sys  int
		want TriageLevel
	}{
		{"temperature alone is red", 40, 80, 120, TriageRed},
		{"heart rate alone is red", 37, 121, 120, TriageRed},
		{"systolic alone is red", 37, 80, 181, TriageRed},
		{"39 exactly is yellow", 39, 80, 120, TriageYellow},
		{"heart rate 110 is yellow", 37, 110, 120, TriageYellow},
		{"temperature 38 is yellow", 38, 70, 110, TriageYellow},
		{"systolic 140 is yellow", 36.6, 70, 140, TriageYellow},
		{"heart rate 120 is yellow", 37, 120, 120, TriageYellow},
		{"stable is green", 36.5, 70, 110, TriageGreen},
		{"just below thresholds", 37.9, 99, 139, TriageGreen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTriage(tt.temp, tt.hr, tt.sys); got != tt.want {
				t.Errorf("ClassifyTriage(%v, %d, %d) = %q, want %q", tt.temp, tt.hr, tt.sys, got, tt.want)
			}
		})
	}
}

func TestAssess(t *testing.T) {
	r := patient.Record{WeightKg: 90, HeightM: 1.8, TemperatureC: 39.5, SystolicBP: 165, DiastolicBP: 100, HeartRate: 90}
	got := Assess(r)
	if got.BMICat != BMIOverweight {
		t.Errorf("BMICat = %q, want %q", got.BMICat, BMIOverweight)
	}
	if got.BP != BPHigh {
		t.Errorf("BP = %q, want %q", got.BP, BPHigh)
	}
	if got.Triage != TriageRed {
		t.Errorf("Triage = %q, want %q", got.Triage, TriageRed)
	}
	if math.Abs(got.BMI-r.BMI()) > 1e-12 {
		t.Errorf("BMI = %v, want %v", got.BMI, r.BMI())
	}
}
