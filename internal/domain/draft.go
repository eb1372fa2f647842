package domain

type Gender string

const (
	GenderMen   Gender = "men"
	GenderWomen Gender = "women"
)

type AgeGroup string

const (
	AgeGroupAdult AgeGroup = "adult"
	AgeGroupChild AgeGroup = "child"
)

// Person is one member of an in-progress custom order. It exists only inside
// a draft; it is never persisted on its own.
type Person struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	AgeGroup AgeGroup `json:"ageGroup"`
	Gender   Gender   `json:"gender"`
}

// DisplayGender maps the stored gender to the label shown for children.
func (p Person) DisplayGender() string {
	if p.AgeGroup == AgeGroupChild {
		if p.Gender == GenderMen {
			return "boy"
		}
		return "girl"
	}
	return string(p.Gender)
}

type SizingMode string

const (
	SizingStandard SizingMode = "standard"
	SizingCustom   SizingMode = "custom"
)

type Sizing struct {
	Mode SizingMode `json:"mode"`
	// Label holds the standard size ("S", "M", "L"...) when Mode is standard.
	Label string `json:"label,omitempty"`
	// Measurements holds field name -> value in cm when Mode is custom.
	Measurements map[string]float64 `json:"measurements,omitempty"`
}

// DraftItem is the design + sizing selection for one Person.
type DraftItem struct {
	PersonID   string  `json:"personId"`
	DesignID   string  `json:"designId"`
	DesignName string  `json:"designName"`
	Occasion   string  `json:"occasion"`
	Price      float64 `json:"price"`
	Sizing     *Sizing `json:"sizing,omitempty"`
}

// Complete reports whether the item can go to checkout: a design is chosen
// and sizing has been captured.
func (i DraftItem) Complete() bool {
	if i.DesignID == "" || i.Sizing == nil {
		return false
	}
	switch i.Sizing.Mode {
	case SizingStandard:
		return i.Sizing.Label != ""
	case SizingCustom:
		return len(i.Sizing.Measurements) > 0
	}
	return false
}

// CustomerInfo is collected at checkout and persisted with the order.
type CustomerInfo struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=10"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Zip       string `json:"zip" validate:"required"`
	Notes     string `json:"notes,omitempty"`
}
