package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMI(t *testing.T) {
	assert.InDelta(t, 22.86, BMI(70, 175), 0.01)
	assert.InDelta(t, 18.34, BMI(53, 170), 0.01)
}

func TestClassifyBMIBoundaries(t *testing.T) {
	tests := []struct {
		name string
		bmi  float64
		want Category
	}{
		{"well below lower threshold", 16.0, CategoryLow},
		{"just below lower threshold", 18.49, CategoryLow},
		{"exactly lower threshold", 18.5, CategoryNormal},
		{"mid normal", 22.0, CategoryNormal},
		{"just below upper threshold", 24.99, CategoryNormal},
		{"exactly upper threshold", 25.0, CategoryHigh},
		{"well above upper threshold", 31.2, CategoryHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyBMI(tt.bmi))
		})
	}
}

func TestClassifyDerivesBothTogether(t *testing.T) {
	// 170cm / 53kg lands just under the lower threshold
	bmi, category := Classify(53, 170)
	assert.InDelta(t, 18.34, bmi, 0.01)
	assert.Equal(t, CategoryLow, category)
	assert.Equal(t, "low", category.Label())
	assert.Equal(t, "underweight", category.DietLabel())
}

func TestCategoryVocabularies(t *testing.T) {
	assert.Equal(t, "low", CategoryLow.Label())
	assert.Equal(t, "normal", CategoryNormal.Label())
	assert.Equal(t, "high", CategoryHigh.Label())

	assert.Equal(t, "underweight", CategoryLow.DietLabel())
	assert.Equal(t, "normal", CategoryNormal.DietLabel())
	assert.Equal(t, "overweight", CategoryHigh.DietLabel())
}

func TestCategoryFromLabelParsesBothVocabularies(t *testing.T) {
	assert.Equal(t, CategoryLow, CategoryFromLabel("low"))
	assert.Equal(t, CategoryLow, CategoryFromLabel("underweight"))
	assert.Equal(t, CategoryNormal, CategoryFromLabel("normal"))
	assert.Equal(t, CategoryHigh, CategoryFromLabel("high"))
	assert.Equal(t, CategoryHigh, CategoryFromLabel("overweight"))
}
