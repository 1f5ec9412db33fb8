package handler

import (
	"log/slog"
	"net/http"

	"alerts/internal/delivery/http/response"
	domainerrors "alerts/internal/domain/errors"
	"alerts/internal/domain/repository"
	"alerts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MedicalRecordHandler holds dependencies for medical record CRUD handlers.
type MedicalRecordHandler struct {
	uc     usecase.MedicalRecordUsecase
	logger *slog.Logger
}

// NewMedicalRecordHandler is the constructor for MedicalRecordHandler, injected by Fx.
func NewMedicalRecordHandler(uc usecase.MedicalRecordUsecase, logger *slog.Logger) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListMedicalRecords handles GET /medicalRecords.
func (h *MedicalRecordHandler) ListMedicalRecords(c echo.Context) error {
	records, err := h.uc.ListMedicalRecords(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if len(records) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, records, "Medical records retrieved successfully")
}

// GetMedicalRecord handles GET /medicalRecord/:firstName/:lastName.
func (h *MedicalRecordHandler) GetMedicalRecord(c echo.Context) error {
	firstName := c.Param("firstName")
	lastName := c.Param("lastName")
	if isBlank(firstName) || isBlank(lastName) {
		return errMissingName()
	}

	record, err := h.uc.GetMedicalRecord(c.Request().Context(), firstName, lastName)
	if err != nil {
		if errors.Is(err, repository.ErrMedicalRecordNotFound) {
			return response.NoContent(c)
		}
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Medical record retrieved successfully")
}

// AddMedicalRecord handles POST /medicalRecord.
func (h *MedicalRecordHandler) AddMedicalRecord(c echo.Context) error {
	var input *usecase.AddMedicalRecordInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidParameter.WithDetails("Invalid medical record input")
	}
	if err := c.Validate(input); err != nil {
		return errMissingName()
	}
	if isBlank(input.FirstName) || isBlank(input.LastName) {
		return errMissingName()
	}

	record, err := h.uc.AddMedicalRecord(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, repository.ErrMedicalRecordAlreadyExists) {
			return response.NoContent(c)
		}
		return errors.WithStack(err)
	}

	location := "/medicalRecord/" + record.FirstName + "/" + record.LastName

	return response.Created(c, location, record, "Medical record created successfully")
}

// UpdateMedicalRecord handles PUT /medicalRecord/:firstName/:lastName.
func (h *MedicalRecordHandler) UpdateMedicalRecord(c echo.Context) error {
	firstName := c.Param("firstName")
	lastName := c.Param("lastName")
	if isBlank(firstName) || isBlank(lastName) {
		return errMissingName()
	}

	var input *usecase.UpdateMedicalRecordInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidParameter.WithDetails("Invalid medical record input")
	}
	if input == nil {
		// An empty body is an empty patch.
		input = &usecase.UpdateMedicalRecordInput{}
	}

	record, err := h.uc.UpdateMedicalRecord(c.Request().Context(), firstName, lastName, input)
	if err != nil {
		if errors.Is(err, repository.ErrMedicalRecordNotFound) || errors.Is(err, repository.ErrMedicalRecordUnchanged) {
			return response.NoContent(c)
		}
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Medical record updated successfully")
}

// DeleteMedicalRecord handles DELETE /medicalRecord/:firstName/:lastName.
// Deleting an absent record is not an error.
func (h *MedicalRecordHandler) DeleteMedicalRecord(c echo.Context) error {
	firstName := c.Param("firstName")
	lastName := c.Param("lastName")
	if isBlank(firstName) || isBlank(lastName) {
		return errMissingName()
	}

	if err := h.uc.DeleteMedicalRecord(c.Request().Context(), firstName, lastName); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
