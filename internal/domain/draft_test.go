package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerson_DisplayGender(t *testing.T) {
	adult := Person{AgeGroup: AgeGroupAdult, Gender: GenderMen}
	assert.Equal(t, "men", adult.DisplayGender())

	adult.Gender = GenderWomen
	assert.Equal(t, "women", adult.DisplayGender())

	boy := Person{AgeGroup: AgeGroupChild, Gender: GenderMen}
	assert.Equal(t, "boy", boy.DisplayGender())

	girl := Person{AgeGroup: AgeGroupChild, Gender: GenderWomen}
	assert.Equal(t, "girl", girl.DisplayGender())
}

func TestDraftItem_Complete(t *testing.T) {
	item := DraftItem{}
	assert.False(t, item.Complete())

	item.DesignID = "mt1"
	assert.False(t, item.Complete(), "sizing still missing")

	item.Sizing = &Sizing{Mode: SizingStandard}
	assert.False(t, item.Complete(), "standard sizing needs a label")

	item.Sizing.Label = "L"
	assert.True(t, item.Complete())

	item.Sizing = &Sizing{Mode: SizingCustom}
	assert.False(t, item.Complete(), "custom sizing needs measurements")

	item.Sizing.Measurements = map[string]float64{"chest": 102}
	assert.True(t, item.Complete())
}
