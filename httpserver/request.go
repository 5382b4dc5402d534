package httpserver

import (
	"time"

	"contacts/contact"
)

// The request types carry no state field; state is always derived server-side
// from the phone number's area code.

type AddContactRequest struct {
	FirstName   string     `json:"firstName" validate:"required,notblank,max=100"`
	LastName    string     `json:"lastName" validate:"required,notblank,max=100"`
	Email       string     `json:"email" validate:"required,email,max=255"`
	PhoneNumber string     `json:"phoneNumber" validate:"required,phone"`
	BirthDate   *time.Time `json:"birthDate"`
}

func (r AddContactRequest) ToContact() contact.Contact {
	return contact.Contact{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		BirthDate:   r.BirthDate,
	}
}

type UpdateContactRequest struct {
	FirstName   string     `json:"firstName" validate:"required,notblank,max=100"`
	LastName    string     `json:"lastName" validate:"required,notblank,max=100"`
	Email       string     `json:"email" validate:"required,email,max=255"`
	PhoneNumber string     `json:"phoneNumber" validate:"required,phone"`
	BirthDate   *time.Time `json:"birthDate"`
}

func (r UpdateContactRequest) ToContact(id int64) contact.Contact {
	return contact.Contact{
		ID:          id,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		BirthDate:   r.BirthDate,
	}
}
