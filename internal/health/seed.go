package health

import "gorm.io/gorm"

// SeedConditions inserts the reference health conditions. Id 1 must be
// the "none" sentinel; fallback resolution depends on it.
func SeedConditions(db *gorm.DB) error {
	conditions := []HealthCondition{
		{ID: ConditionNone, Name: "none"},
		{ID: 2, Name: "diabetes"},
		{ID: 3, Name: "hypertension"},
		{ID: 4, Name: "thyroid"},
		{ID: 5, Name: "pcos"},
	}

	for _, c := range conditions {
		if err := db.Where(HealthCondition{ID: c.ID}).
			Attrs(HealthCondition{Name: c.Name}).
			FirstOrCreate(&c).Error; err != nil {
			return err
		}
	}
	return nil
}
