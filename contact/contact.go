package contact

import (
	"net/mail"
	"regexp"
	"strings"
	"time"

	"contacts/errs"
)

var (
	ErrInvalidFirstName = errs.Errorf(errs.EINVALID, "contact: invalid first name")
	ErrInvalidLastName  = errs.Errorf(errs.EINVALID, "contact: invalid last name")
	ErrInvalidEmail     = errs.Errorf(errs.EINVALID, "contact: invalid email")
	ErrInvalidPhone     = errs.Errorf(errs.EINVALID, "contact: invalid phone number")
	ErrPhoneTooShort    = errs.Errorf(errs.EINVALID, "contact: phone number too short for area code extraction")

	ErrContactNotFound    = errs.Errorf(errs.ENOTFOUND, "contact: not found")
	ErrEmailAlreadyExists = errs.Errorf(errs.ECONFLICT, "contact: email already registered")
)

var phonePattern = regexp.MustCompile(`^\+?[0-9() -]{4,20}$`)

// Contact is a single address book entry. ID is zero until the record has
// been persisted. State is derived from the phone number's area code on every
// create and update and is never taken from caller input.
type Contact struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
	State       string     `json:"state"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
}

func (c Contact) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return ErrInvalidFirstName
	}

	if strings.TrimSpace(c.LastName) == "" {
		return ErrInvalidLastName
	}

	if _, err := mail.ParseAddress(c.Email); err != nil {
		return ErrInvalidEmail
	}

	if !phonePattern.MatchString(c.PhoneNumber) {
		return ErrInvalidPhone
	}

	return nil
}

// AreaCode returns the three-digit NPA embedded in the phone number, taken
// from offsets 1 through 3. This matches both the "(212) 555-0101" and the
// "1234567890" notations, where the leading character is a paren or a trunk
// digit.
func (c Contact) AreaCode() (string, error) {
	if len(c.PhoneNumber) < 4 {
		return "", ErrPhoneTooShort
	}
	return c.PhoneNumber[1:4], nil
}
