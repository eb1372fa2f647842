package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
	"atelier/internal/measure"
	"atelier/internal/pricing"
)

// DesignSelection is what the design step records for one person.
type DesignSelection struct {
	DesignID   string  `json:"designId"`
	DesignName string  `json:"designName"`
	Occasion   string  `json:"occasion"`
	Price      float64 `json:"price"`
}

// Accumulator holds the growing order state for one session across
// independently rendered wizard steps. Every mutation is persisted to the
// store before it returns.
type Accumulator struct {
	store     Store
	policy    pricing.Policy
	sessionID string
}

func NewAccumulator(store Store, policy pricing.Policy, sessionID string) *Accumulator {
	return &Accumulator{
		store:     store,
		policy:    policy,
		sessionID: sessionID,
	}
}

// Restore loads the draft from the store. ErrNoDraft means the session never
// started one (deep link); callers redirect to the first step.
func (a *Accumulator) Restore(ctx context.Context) (*Draft, error) {
	var people []domain.Person
	found, err := a.load(ctx, KeyPeople, &people)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoDraft
	}

	d := &Draft{People: people}
	if _, err := a.load(ctx, KeyItems, &d.Items); err != nil {
		return nil, err
	}
	var customer domain.CustomerInfo
	found, err = a.load(ctx, KeyCustomerInfo, &customer)
	if err != nil {
		return nil, err
	}
	if found {
		d.Customer = &customer
	}
	return d, nil
}

// AddPerson appends a person with a freshly generated id and persists the
// draft, creating it if this is the first person.
func (a *Accumulator) AddPerson(ctx context.Context, name string, ageGroup domain.AgeGroup, gender domain.Gender) (domain.Person, error) {
	if err := validatePersonAttrs(name, ageGroup, gender); err != nil {
		return domain.Person{}, err
	}

	d, err := a.Restore(ctx)
	if errors.Is(err, ErrNoDraft) {
		d = &Draft{}
	} else if err != nil {
		return domain.Person{}, err
	}

	person := domain.Person{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		AgeGroup: ageGroup,
		Gender:   gender,
	}
	d.People = append(d.People, person)

	if err := a.persist(ctx, d); err != nil {
		return domain.Person{}, err
	}
	return person, nil
}

// RemovePerson drops the person and their draft item, if any.
func (a *Accumulator) RemovePerson(ctx context.Context, personID string) error {
	d, err := a.Restore(ctx)
	if err != nil {
		return err
	}

	people := d.People[:0]
	for _, p := range d.People {
		if p.ID != personID {
			people = append(people, p)
		}
	}
	d.People = people

	items := d.Items[:0]
	for _, item := range d.Items {
		if item.PersonID != personID {
			items = append(items, item)
		}
	}
	d.Items = items

	return a.persist(ctx, d)
}

// SetDesignForPerson upserts the design half of the person's item. Unknown
// person ids are a silent no-op.
func (a *Accumulator) SetDesignForPerson(ctx context.Context, personID string, sel DesignSelection) error {
	d, err := a.Restore(ctx)
	if err != nil {
		return err
	}

	if _, ok := d.PersonByID(personID); !ok {
		return nil
	}

	item, ok := d.ItemFor(personID)
	if !ok {
		d.Items = append(d.Items, domain.DraftItem{PersonID: personID})
		item = &d.Items[len(d.Items)-1]
	}
	item.DesignID = sel.DesignID
	item.DesignName = sel.DesignName
	item.Occasion = sel.Occasion
	item.Price = sel.Price

	return a.persist(ctx, d)
}

// SetMeasurementsForPerson records sizing for the person. Standard mode needs
// a size label; custom mode needs the full measurement set for the person's
// gender and age group, every value strictly positive. Invalid input rejects
// the mutation with field-level errors and leaves the draft untouched.
func (a *Accumulator) SetMeasurementsForPerson(ctx context.Context, personID string, sizing domain.Sizing) error {
	d, err := a.Restore(ctx)
	if err != nil {
		return err
	}

	person, ok := d.PersonByID(personID)
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("person %s not in draft", personID))
	}

	switch sizing.Mode {
	case domain.SizingStandard:
		if sizing.Label == "" {
			return apperrors.NewValidationError("size label is required", apperrors.ValidationDetail{
				Field:   "label",
				Message: "a standard size label must be chosen",
			})
		}
		sizing.Measurements = nil
	case domain.SizingCustom:
		if err := measure.Validate(person.Gender, person.AgeGroup, sizing.Measurements); err != nil {
			return err
		}
		sizing.Label = ""
	default:
		return apperrors.NewValidationError("unknown sizing mode", apperrors.ValidationDetail{
			Field:   "mode",
			Message: "mode must be standard or custom",
		})
	}

	item, ok := d.ItemFor(personID)
	if !ok {
		d.Items = append(d.Items, domain.DraftItem{PersonID: personID})
		item = &d.Items[len(d.Items)-1]
	}
	item.Sizing = &sizing

	return a.persist(ctx, d)
}

// SetCustomerInfo stores the checkout contact details with the draft.
// Validation happens in the checkout orchestrator before this is called.
func (a *Accumulator) SetCustomerInfo(ctx context.Context, info domain.CustomerInfo) error {
	if _, err := a.Restore(ctx); err != nil {
		return err
	}
	return a.save(ctx, KeyCustomerInfo, info)
}

// Summary recomputes the money breakdown from the current items and persists
// it under the summary key.
func (a *Accumulator) Summary(ctx context.Context) (pricing.Summary, error) {
	d, err := a.Restore(ctx)
	if err != nil {
		return pricing.Summary{}, err
	}
	summary := d.Summarize(a.policy)
	if err := a.save(ctx, KeySummary, summary); err != nil {
		return pricing.Summary{}, err
	}
	return summary, nil
}

// SetPendingOrder stores the assembled not-yet-paid order bundle.
func (a *Accumulator) SetPendingOrder(ctx context.Context, po PendingOrder) error {
	return a.save(ctx, KeyPendingOrder, po)
}

// PendingOrder loads the bundle stored by SetPendingOrder. ErrNoDraft is
// returned when the payment step is reached without one.
func (a *Accumulator) PendingOrder(ctx context.Context) (*PendingOrder, error) {
	var po PendingOrder
	found, err := a.load(ctx, KeyPendingOrder, &po)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoDraft
	}
	return &po, nil
}

// Clear removes every known draft key. Called only after a confirmed
// successful payment.
func (a *Accumulator) Clear(ctx context.Context) error {
	return a.store.Delete(ctx, a.sessionID, AllKeys()...)
}

func (a *Accumulator) persist(ctx context.Context, d *Draft) error {
	if err := a.save(ctx, KeyPeople, d.People); err != nil {
		return err
	}
	if err := a.save(ctx, KeyItems, d.Items); err != nil {
		return err
	}
	return a.save(ctx, KeySummary, d.Summarize(a.policy))
}

func (a *Accumulator) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling draft key %s: %w", key, err)
	}
	return a.store.Set(ctx, a.sessionID, key, data)
}

func (a *Accumulator) load(ctx context.Context, key string, v interface{}) (bool, error) {
	data, err := a.store.Get(ctx, a.sessionID, key)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("unmarshaling draft key %s: %w", key, err)
	}
	return true, nil
}

func validatePersonAttrs(name string, ageGroup domain.AgeGroup, gender domain.Gender) error {
	var details []apperrors.ValidationDetail
	if strings.TrimSpace(name) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if ageGroup != domain.AgeGroupAdult && ageGroup != domain.AgeGroupChild {
		details = append(details, apperrors.ValidationDetail{Field: "ageGroup", Message: "ageGroup must be adult or child"})
	}
	if gender != domain.GenderMen && gender != domain.GenderWomen {
		details = append(details, apperrors.ValidationDetail{Field: "gender", Message: "gender must be men or women"})
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid person", details...)
	}
	return nil
}
