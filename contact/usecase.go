package contact

import (
	"context"
	"log/slog"
)

type Service interface {
	AllContactsOrderedByName(ctx context.Context) ([]Contact, error)
	GetContactByID(ctx context.Context, id int64) (Contact, error)
	GetContactByEmail(ctx context.Context, email string) (Contact, error)
	GetContactByFirstName(ctx context.Context, firstName string) (Contact, error)
	GetContactByLastName(ctx context.Context, lastName string) (Contact, error)
	AddContact(ctx context.Context, c Contact) (Contact, error)
	UpdateContact(ctx context.Context, c Contact) (Contact, error)
	DeleteContact(ctx context.Context, c Contact) (Contact, error)
}

type Repository interface {
	AllContactsOrderedByName(ctx context.Context) ([]Contact, error)
	GetByID(ctx context.Context, id int64) (Contact, error)
	GetByEmail(ctx context.Context, email string) (Contact, error)
	GetByFirstName(ctx context.Context, firstName string) (Contact, error)
	GetByLastName(ctx context.Context, lastName string) (Contact, error)
	CreateContact(ctx context.Context, c Contact) (Contact, error)
	UpdateContact(ctx context.Context, c Contact) (Contact, error)
	DeleteContact(ctx context.Context, c Contact) (Contact, error)
}

// StateResolver maps a three-digit area code to a US state name.
type StateResolver interface {
	StateForAreaCode(ctx context.Context, npa string) (string, error)
}

type Usecase struct {
	r        Repository
	resolver StateResolver
}

func NewUsecase(r Repository, resolver StateResolver) *Usecase {
	return &Usecase{r: r, resolver: resolver}
}

func (uc *Usecase) AllContactsOrderedByName(ctx context.Context) ([]Contact, error) {
	return uc.r.AllContactsOrderedByName(ctx)
}

func (uc *Usecase) GetContactByID(ctx context.Context, id int64) (Contact, error) {
	return uc.r.GetByID(ctx, id)
}

func (uc *Usecase) GetContactByEmail(ctx context.Context, email string) (Contact, error) {
	return uc.r.GetByEmail(ctx, email)
}

func (uc *Usecase) GetContactByFirstName(ctx context.Context, firstName string) (Contact, error) {
	return uc.r.GetByFirstName(ctx, firstName)
}

func (uc *Usecase) GetContactByLastName(ctx context.Context, lastName string) (Contact, error) {
	return uc.r.GetByLastName(ctx, lastName)
}

// AddContact validates c, enriches it with the US state derived from its
// phone number's area code, and persists it. The enriched record with its
// assigned id is returned. Validation, lookup and persistence errors all
// propagate unchanged.
func (uc *Usecase) AddContact(ctx context.Context, c Contact) (Contact, error) {
	enriched, err := uc.enrich(ctx, c)
	if err != nil {
		return Contact{}, err
	}
	return uc.r.CreateContact(ctx, enriched)
}

// UpdateContact runs the same validate-and-enrich sequence as AddContact and
// then updates the stored record. A contact whose id matches no stored row is
// created instead.
func (uc *Usecase) UpdateContact(ctx context.Context, c Contact) (Contact, error) {
	enriched, err := uc.enrich(ctx, c)
	if err != nil {
		return Contact{}, err
	}
	return uc.r.UpdateContact(ctx, enriched)
}

// DeleteContact removes c from the store and returns the deleted record. A
// contact that was never persisted (zero id) is a no-op, not an error.
func (uc *Usecase) DeleteContact(ctx context.Context, c Contact) (Contact, error) {
	if c.ID == 0 {
		slog.InfoContext(ctx, "delete skipped: contact has no id",
			"firstName", c.FirstName, "lastName", c.LastName)
		return Contact{}, nil
	}
	return uc.r.DeleteContact(ctx, c)
}

func (uc *Usecase) enrich(ctx context.Context, c Contact) (Contact, error) {
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}

	npa, err := c.AreaCode()
	if err != nil {
		return Contact{}, err
	}

	state, err := uc.resolver.StateForAreaCode(ctx, npa)
	if err != nil {
		return Contact{}, err
	}

	// Whatever the caller put in State is discarded here.
	c.State = state
	return c, nil
}
