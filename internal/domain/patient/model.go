package patient

// Record is one patient entry in the backing file. The ten fields are always
// moved together; nothing outside this struct holds per-field state.
type Record struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Age          int     `json:"age"`
	Gender       string  `json:"gender"`
	WeightKg     float64 `json:"weight_kg"`
	HeightM      float64 `json:"height_m"`
	TemperatureC float64 `json:"temperature_c"`
	SystolicBP   int     `json:"systolic_bp"`
	DiastolicBP  int     `json:"diastolic_bp"`
	HeartRate    int     `json:"heart_rate"`
}

// BMI returns weight / height² for the record. It is never cached.
func (r Record) BMI() float64 {
	return BMI(r.WeightKg, r.HeightM)
}

// BMI computes body-mass index from kilograms and metres.
func BMI(weightKg, heightM float64) float64 {
	return weightKg / (heightM * heightM)
}
