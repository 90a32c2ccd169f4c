package health

// Category is the three-way weight classification derived from BMI.
// Two label vocabularies exist in the app (profile endpoints use
// low/normal/high, diet plans use underweight/normal/overweight); both
// are renderings of this one type and never stored independently.
type Category int

const (
	CategoryLow Category = iota
	CategoryNormal
	CategoryHigh
)

// Label renders the profile-facing vocabulary.
func (c Category) Label() string {
	switch c {
	case CategoryLow:
		return "low"
	case CategoryNormal:
		return "normal"
	default:
		return "high"
	}
}

// DietLabel renders the diet-catalog vocabulary.
func (c Category) DietLabel() string {
	switch c {
	case CategoryLow:
		return "underweight"
	case CategoryNormal:
		return "normal"
	default:
		return "overweight"
	}
}

// BMI computes weight(kg) / height(m)^2 with height given in cm.
// Callers must reject height <= 0 before calling.
func BMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// ClassifyBMI maps a BMI value onto its category. Thresholds are
// applied in order: < 18.5 low, < 25 normal, otherwise high.
func ClassifyBMI(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return CategoryLow
	case bmi < 25:
		return CategoryNormal
	default:
		return CategoryHigh
	}
}

// Classify computes BMI and category together so the two derived
// fields can never drift apart.
func Classify(weightKg, heightCm float64) (float64, Category) {
	bmi := BMI(weightKg, heightCm)
	return bmi, ClassifyBMI(bmi)
}

// CategoryFromLabel parses either vocabulary back into a Category.
func CategoryFromLabel(label string) Category {
	switch label {
	case "low", "underweight":
		return CategoryLow
	case "normal":
		return CategoryNormal
	default:
		return CategoryHigh
	}
}
