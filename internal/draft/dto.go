package draft

import (
	"atelier/internal/domain"
	"atelier/internal/pricing"
)

type SessionResponse struct {
	SessionID string `json:"sessionId"`
}

type AddPersonRequest struct {
	Name     string `json:"name"`
	AgeGroup string `json:"ageGroup"`
	Gender   string `json:"gender"`
}

type PersonDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AgeGroup      string `json:"ageGroup"`
	Gender        string `json:"gender"`
	DisplayGender string `json:"displayGender"`
}

type DesignRequest struct {
	DesignID   string  `json:"designId"`
	DesignName string  `json:"designName"`
	Occasion   string  `json:"occasion"`
	Price      float64 `json:"price"`
}

type MeasurementsRequest struct {
	Mode         string             `json:"mode"`
	Label        string             `json:"label,omitempty"`
	Measurements map[string]float64 `json:"measurements,omitempty"`
}

type ItemDTO struct {
	PersonID     string             `json:"personId"`
	DesignID     string             `json:"designId"`
	DesignName   string             `json:"designName"`
	Occasion     string             `json:"occasion"`
	Price        float64            `json:"price"`
	SizingMode   string             `json:"sizingMode,omitempty"`
	SizeLabel    string             `json:"sizeLabel,omitempty"`
	Measurements map[string]float64 `json:"measurements,omitempty"`
	Complete     bool               `json:"complete"`
}

type DraftDTO struct {
	People   []PersonDTO          `json:"people"`
	Items    []ItemDTO            `json:"items"`
	Customer *domain.CustomerInfo `json:"customer,omitempty"`
	Summary  pricing.Summary      `json:"summary"`
	Complete bool                 `json:"complete"`
}

func toPersonDTO(p domain.Person) PersonDTO {
	return PersonDTO{
		ID:            p.ID,
		Name:          p.Name,
		AgeGroup:      string(p.AgeGroup),
		Gender:        string(p.Gender),
		DisplayGender: p.DisplayGender(),
	}
}

func toDraftDTO(d *Draft, policy pricing.Policy) DraftDTO {
	people := make([]PersonDTO, 0, len(d.People))
	for _, p := range d.People {
		people = append(people, toPersonDTO(p))
	}

	items := make([]ItemDTO, 0, len(d.Items))
	for _, item := range d.Items {
		dto := ItemDTO{
			PersonID:   item.PersonID,
			DesignID:   item.DesignID,
			DesignName: item.DesignName,
			Occasion:   item.Occasion,
			Price:      item.Price,
			Complete:   item.Complete(),
		}
		if item.Sizing != nil {
			dto.SizingMode = string(item.Sizing.Mode)
			dto.SizeLabel = item.Sizing.Label
			dto.Measurements = item.Sizing.Measurements
		}
		items = append(items, dto)
	}

	return DraftDTO{
		People:   people,
		Items:    items,
		Customer: d.Customer,
		Summary:  d.Summarize(policy),
		Complete: d.Complete(),
	}
}
