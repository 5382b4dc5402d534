package httpserver

import (
	"net/http"
	"strconv"

	"contacts/contact"
	"contacts/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterContactRoutes() {
	s.Router.GET("/api/contacts", s.handleListContacts)
	s.Router.POST("/api/contacts", s.handleAddContact)
	s.Router.GET("/api/contacts/search", s.handleSearchContacts)
	s.Router.GET("/api/contacts/:id", s.handleGetContact)
	s.Router.PUT("/api/contacts/:id", s.handleUpdateContact)
	s.Router.DELETE("/api/contacts/:id", s.handleDeleteContact)
}

// handleListContacts godoc
// @Summary List Contacts
// @Description Get all contacts sorted by last name
// @Tags contacts
// @Produce json
// @Success 200 {array} contact.Contact
// @Router /api/contacts [get]
func (s *Server) handleListContacts(c echo.Context) error {
	contacts, err := s.ContactService.AllContactsOrderedByName(c.Request().Context())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, contacts)
}

// handleAddContact godoc
// @Summary Create Contact
// @Description Add a new contact; its state is derived from the phone number's area code
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body AddContactRequest true "Contact Data"
// @Success 201 {object} contact.Contact
// @Failure 400 {object} APIResponse
// @Router /api/contacts [post]
func (s *Server) handleAddContact(c echo.Context) error {
	var req AddContactRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := s.ContactService.AddContact(c.Request().Context(), req.ToContact())
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusCreated, created)
}

func (s *Server) handleGetContact(c echo.Context) error {
	id, err := contactID(c)
	if err != nil {
		return err
	}

	found, err := s.ContactService.GetContactByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, found)
}

// handleSearchContacts finds the first contact matching exactly one of the
// email, firstname or lastname query parameters.
func (s *Server) handleSearchContacts(c echo.Context) error {
	email := c.QueryParam("email")
	firstName := c.QueryParam("firstname")
	lastName := c.QueryParam("lastname")

	set := 0
	for _, v := range []string{email, firstName, lastName} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return errs.Errorf(errs.EINVALID, "exactly one of email, firstname or lastname is required")
	}

	ctx := c.Request().Context()
	var found contact.Contact
	var err error
	switch {
	case email != "":
		found, err = s.ContactService.GetContactByEmail(ctx, email)
	case firstName != "":
		found, err = s.ContactService.GetContactByFirstName(ctx, firstName)
	default:
		found, err = s.ContactService.GetContactByLastName(ctx, lastName)
	}
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, found)
}

func (s *Server) handleUpdateContact(c echo.Context) error {
	id, err := contactID(c)
	if err != nil {
		return err
	}

	var req UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return errs.Errorf(errs.EINVALID, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := s.ContactService.UpdateContact(c.Request().Context(), req.ToContact(id))
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, updated)
}

func (s *Server) handleDeleteContact(c echo.Context) error {
	id, err := contactID(c)
	if err != nil {
		return err
	}

	deleted, err := s.ContactService.DeleteContact(c.Request().Context(), contact.Contact{ID: id})
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, deleted)
}

func contactID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Errorf(errs.EINVALID, "invalid contact id")
	}
	return id, nil
}
