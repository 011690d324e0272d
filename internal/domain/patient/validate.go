package patient

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidRecord is wrapped by every validation failure.
var ErrInvalidRecord = errors.New("invalid patient record")

// Operator-entry ranges. They are checked on interactive and flag-based entry
// only; records already in the backing file are loaded as-is.
const (
	MinTemperatureC = 30.0
	MaxTemperatureC = 45.0
	MinHeartRate    = 30
	MaxHeartRate    = 200
)

// CheckToken rejects text that would break the one-record-per-line file format.
func CheckToken(field, value string, required bool) error {
	if required && strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidRecord, field)
	}
	if strings.Contains(value, Separator) {
		return fmt.Errorf("%w: %s cannot contain %q", ErrInvalidRecord, field, Separator)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: %s cannot contain line breaks", ErrInvalidRecord, field)
	}
	return nil
}

func CheckAge(age int) error {
	if age < 0 {
		return fmt.Errorf("%w: age cannot be negative", ErrInvalidRecord)
	}
	return nil
}

// CheckWeight and CheckHeight reject NaN and infinities, which would turn
// BMI into NaN.
func CheckWeight(kg float64) error {
	if !(kg > 0) || math.IsInf(kg, 0) {
		return fmt.Errorf("%w: weight must be a positive number", ErrInvalidRecord)
	}
	return nil
}

func CheckHeight(m float64) error {
	if !(m > 0) || math.IsInf(m, 0) {
		return fmt.Errorf("%w: height must be a positive number", ErrInvalidRecord)
	}
	return nil
}

func CheckTemperature(c float64) error {
	if !(c >= MinTemperatureC && c <= MaxTemperatureC) {
		return fmt.Errorf("%w: temperature must be between %g and %g", ErrInvalidRecord, MinTemperatureC, MaxTemperatureC)
	}
	return nil
}

func CheckHeartRate(bpm int) error {
	if bpm < MinHeartRate || bpm > MaxHeartRate {
		return fmt.Errorf("%w: heart rate must be between %d and %d", ErrInvalidRecord, MinHeartRate, MaxHeartRate)
	}
	return nil
}

// Validate checks the structural constraints every stored record must meet.
// Id uniqueness and blood-pressure ranges are deliberately not checked.
func Validate(r Record) error {
	if err := CheckToken("name", r.Name, true); err != nil {
		return err
	}
	if err := CheckToken("gender", r.Gender, false); err != nil {
		return err
	}
	if err := CheckAge(r.Age); err != nil {
		return err
	}
	if err := CheckWeight(r.WeightKg); err != nil {
		return err
	}
	return CheckHeight(r.HeightM)
}

// ValidateEntry applies Validate plus the operator-entry vital-sign ranges.
func ValidateEntry(r Record) error {
	if err := Validate(r); err != nil {
		return err
	}
	if err := CheckTemperature(r.TemperatureC); err != nil {
		return err
	}
	return CheckHeartRate(r.HeartRate)
}
