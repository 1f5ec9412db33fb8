package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"alerts/internal/delivery/http/response"
	domainerrors "alerts/internal/domain/errors"
	"alerts/internal/domain/repository"
	"alerts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PersonHandler holds dependencies for person CRUD handlers.
type PersonHandler struct {
	uc     usecase.PersonUsecase
	logger *slog.Logger
}

// NewPersonHandler is the constructor for PersonHandler, injected by Fx.
func NewPersonHandler(uc usecase.PersonUsecase, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{
		uc:     uc,
		logger: logger,
	}
}

// isBlank reports whether a value is empty or whitespace only. Required
// tags accept whitespace, so identity fields get this extra check.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// errMissingName is the 400 returned when an identity pair is incomplete.
func errMissingName() error {
	return domainerrors.ErrValidationFailed.WithDetails("First name and last name are required")
}

// ListPersons handles GET /persons.
func (h *PersonHandler) ListPersons(c echo.Context) error {
	persons, err := h.uc.ListPersons(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if len(persons) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, persons, "Persons retrieved successfully")
}

// GetPerson handles GET /person/:firstName/:lastName.
func (h *PersonHandler) GetPerson(c echo.Context) error {
	firstName := c.Param("firstName")
	lastName := c.Param("lastName")
	if isBlank(firstName) || isBlank(lastName) {
		return errMissingName()
	}

	person, err := h.uc.GetPerson(c.Request().Context(), firstName, lastName)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return response.NoContent(c)
		}
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, person, "Person retrieved successfully")
}

// AddPerson handles POST /person.
func (h *PersonHandler) AddPerson(c echo.Context) error {
	var input *usecase.AddPersonInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidParameter.WithDetails("Invalid person input")
	}
	if err := c.Validate(input); err != nil {
		return errMissingName()
	}
	if isBlank(input.FirstName) || isBlank(input.LastName) {
		return errMissingName()
	}

	person, err := h.uc.AddPerson(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, repository.ErrPersonAlreadyExists) {
			return response.NoContent(c)
		}
		return errors.WithStack(err)
	}

	location := "/person/" + person.FirstName + "/" + person.LastName

	return response.Created(c, location, person, "Person created successfully")
}

// UpdatePerson handles PUT /person/:firstName/:lastName.
func (h *PersonHandler) UpdatePerson(c echo.Context) error {
	firstName := c.Param("firstName")
	lastName := c.Param("lastName")
	if isBlank(firstName) || isBlank(lastName) {
		return errMissingName()
	}

	var input *usecase.UpdatePersonInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidParameter.WithDetails("Invalid person input")
	}
	if input == nil {
		// An empty body is an empty patch.
		input = &usecase.UpdatePersonInput{}
	}

	person, err := h.uc.UpdatePerson(c.Request().Context(), firstName, lastName, input)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) || errors.Is(err, repository.ErrPersonUnchanged) {
			return response.NoContent(c)
		}
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, person, "Person updated successfully")
}

// DeletePerson handles DELETE /person/:firstName/:lastName. Deleting an
// absent person is not an error.
func (h *PersonHandler) DeletePerson(c echo.Context) error {
	firstName := c.Param("firstName")
	lastName := c.Param("lastName")
	if isBlank(firstName) || isBlank(lastName) {
		return errMissingName()
	}

	if err := h.uc.DeletePerson(c.Request().Context(), firstName, lastName); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
