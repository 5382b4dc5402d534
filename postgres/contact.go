package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"contacts/contact"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ContactModel represents the database model for contacts
type ContactModel struct {
	ID        int64  `gorm:"primaryKey"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"not null;unique"`
	Phone     string `gorm:"not null"`
	State     string `gorm:"not null;default:''"`
	BirthDate *time.Time
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ContactRepository implements contact.Repository on PostgreSQL.
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// AllContactsOrderedByName returns every contact sorted by last name.
func (r *ContactRepository) AllContactsOrderedByName(ctx context.Context) ([]contact.Contact, error) {
	var models []ContactModel
	if err := r.db.WithContext(ctx).Order("last_name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	contacts := make([]contact.Contact, len(models))
	for i, model := range models {
		contacts[i] = toDomainContact(model)
	}
	return contacts, nil
}

// GetByID fetches a contact by id.
func (r *ContactRepository) GetByID(ctx context.Context, id int64) (contact.Contact, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByEmail fetches the first contact with the given email.
func (r *ContactRepository) GetByEmail(ctx context.Context, email string) (contact.Contact, error) {
	return r.first(ctx, "email = ?", email)
}

// GetByFirstName fetches the first contact with the given first name.
func (r *ContactRepository) GetByFirstName(ctx context.Context, firstName string) (contact.Contact, error) {
	return r.first(ctx, "first_name = ?", firstName)
}

// GetByLastName fetches the first contact with the given last name.
func (r *ContactRepository) GetByLastName(ctx context.Context, lastName string) (contact.Contact, error) {
	return r.first(ctx, "last_name = ?", lastName)
}

func (r *ContactRepository) first(ctx context.Context, query string, arg interface{}) (contact.Contact, error) {
	var model ContactModel
	err := r.db.WithContext(ctx).Where(query, arg).Order("id ASC").First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return contact.Contact{}, contact.ErrContactNotFound
		}
		return contact.Contact{}, err
	}
	return toDomainContact(model), nil
}

// CreateContact inserts a new contact and returns it with its assigned id.
func (r *ContactRepository) CreateContact(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	model := toModelContact(c)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isDuplicateEmailError(err) {
			return contact.Contact{}, contact.ErrEmailAlreadyExists
		}
		return contact.Contact{}, err
	}
	return toDomainContact(model), nil
}

// UpdateContact writes the full record under c.ID. A contact that matches no
// stored row is inserted instead.
func (r *ContactRepository) UpdateContact(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	var updated contact.Contact
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := toModelContact(c)
		result := tx.Model(&ContactModel{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
			"first_name": model.FirstName,
			"last_name":  model.LastName,
			"email":      model.Email,
			"phone":      model.Phone,
			"state":      model.State,
			"birth_date": model.BirthDate,
			"updated_at": time.Now().UTC(),
		})
		if result.Error != nil {
			if isDuplicateEmailError(result.Error) {
				return contact.ErrEmailAlreadyExists
			}
			return result.Error
		}
		if result.RowsAffected == 0 {
			if err := tx.Create(&model).Error; err != nil {
				if isDuplicateEmailError(err) {
					return contact.ErrEmailAlreadyExists
				}
				return err
			}
			updated = toDomainContact(model)
			return nil
		}

		var reloaded ContactModel
		if err := tx.Where("id = ?", c.ID).First(&reloaded).Error; err != nil {
			return err
		}
		updated = toDomainContact(reloaded)
		return nil
	})
	return updated, err
}

// DeleteContact removes the contact with c.ID and returns the deleted record.
func (r *ContactRepository) DeleteContact(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	var deleted contact.Contact
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model ContactModel
		if err := tx.Where("id = ?", c.ID).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return contact.ErrContactNotFound
			}
			return err
		}
		if err := tx.Delete(&ContactModel{}, model.ID).Error; err != nil {
			return err
		}
		deleted = toDomainContact(model)
		return nil
	})
	return deleted, err
}

func toDomainContact(model ContactModel) contact.Contact {
	return contact.Contact{
		ID:          model.ID,
		FirstName:   model.FirstName,
		LastName:    model.LastName,
		Email:       model.Email,
		PhoneNumber: model.Phone,
		State:       model.State,
		BirthDate:   model.BirthDate,
	}
}

func toModelContact(c contact.Contact) ContactModel {
	return ContactModel{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.PhoneNumber,
		State:     c.State,
		BirthDate: c.BirthDate,
	}
}

func isDuplicateEmailError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), "email")
	}
	return false
}
