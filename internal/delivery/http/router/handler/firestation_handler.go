package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"alerts/internal/delivery/http/response"
	domainerrors "alerts/internal/domain/errors"
	"alerts/internal/domain/repository"
	"alerts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FirestationHandler holds dependencies for station mapping CRUD handlers.
type FirestationHandler struct {
	uc     usecase.FirestationUsecase
	logger *slog.Logger
}

// NewFirestationHandler is the constructor for FirestationHandler, injected by Fx.
func NewFirestationHandler(uc usecase.FirestationUsecase, logger *slog.Logger) *FirestationHandler {
	return &FirestationHandler{
		uc:     uc,
		logger: logger,
	}
}

func parseStation(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// ListFirestations handles GET /firestations.
func (h *FirestationHandler) ListFirestations(c echo.Context) error {
	firestations, err := h.uc.ListFirestations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if len(firestations) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, firestations, "Firestation mappings retrieved successfully")
}

// GetFirestationsByAddress handles GET /firestation/:address. An address
// with no mapping is an empty result, reported as 204.
func (h *FirestationHandler) GetFirestationsByAddress(c echo.Context) error {
	address := c.Param("address")
	if isBlank(address) {
		return domainerrors.ErrValidationFailed.WithDetails("Address is required")
	}

	firestations, err := h.uc.GetFirestationsByAddress(c.Request().Context(), address)
	if err != nil {
		return errors.WithStack(err)
	}
	if len(firestations) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, firestations, "Firestation mappings retrieved successfully")
}

// AddFirestation handles POST /firestation.
func (h *FirestationHandler) AddFirestation(c echo.Context) error {
	var input *usecase.AddFirestationInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidParameter.WithDetails("Invalid firestation input")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Station and address are required")
	}
	if isBlank(input.Address) || input.Station <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("Station and address are required")
	}

	firestation, err := h.uc.AddFirestation(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, repository.ErrFirestationAlreadyExists) {
			return response.NoContent(c)
		}
		return errors.WithStack(err)
	}

	location := "/firestation/" + strconv.FormatInt(firestation.Station, 10) + "/" + firestation.Address

	return response.Created(c, location, firestation, "Firestation mapping created successfully")
}

// UpdateFirestationNumber handles PUT /firestation/:station/:address. Every
// mapping of the address held by the station moves to the new station
// number.
func (h *FirestationHandler) UpdateFirestationNumber(c echo.Context) error {
	station, err := parseStation(c.Param("station"))
	if err != nil {
		return domainerrors.ErrInvalidParameter.WithDetails("Station must be a number")
	}
	address := c.Param("address")
	if isBlank(address) {
		return domainerrors.ErrValidationFailed.WithDetails("Address is required")
	}

	var input *usecase.UpdateFirestationInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidParameter.WithDetails("Invalid firestation input")
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Station is required")
	}

	firestations, err := h.uc.UpdateFirestationNumber(c.Request().Context(), station, address, input)
	if err != nil {
		if errors.Is(err, repository.ErrFirestationNotFound) || errors.Is(err, repository.ErrFirestationUnchanged) {
			return response.NoContent(c)
		}
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, firestations, "Firestation mappings updated successfully")
}

// DeleteFirestation handles DELETE /firestation/:station/:address. Deleting
// an absent mapping is not an error.
func (h *FirestationHandler) DeleteFirestation(c echo.Context) error {
	station, err := parseStation(c.Param("station"))
	if err != nil {
		return domainerrors.ErrInvalidParameter.WithDetails("Station must be a number")
	}
	address := c.Param("address")
	if isBlank(address) {
		return domainerrors.ErrValidationFailed.WithDetails("Address is required")
	}

	if err := h.uc.DeleteFirestation(c.Request().Context(), station, address); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
