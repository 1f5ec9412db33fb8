package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"alerts/internal/delivery/http/response"
	"alerts/internal/delivery/http/view"
	domainerrors "alerts/internal/domain/errors"
	"alerts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AlertHandler holds dependencies for the cross-entity aggregation
// handlers. All of them are read-only.
type AlertHandler struct {
	uc     usecase.AlertUsecase
	logger *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler, injected by Fx.
func NewAlertHandler(uc usecase.AlertUsecase, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{
		uc:     uc,
		logger: logger,
	}
}

func errBadStation() error {
	return domainerrors.ErrInvalidParameter.WithDetails("Station number must be a number")
}

// CoverageByStation handles GET /firestation?stationNumber=N.
func (h *AlertHandler) CoverageByStation(c echo.Context) error {
	station, err := parseStation(c.QueryParam("stationNumber"))
	if err != nil {
		return errBadStation()
	}

	scope, err := h.uc.CoverageByStation(c.Request().Context(), station)
	if err != nil {
		return errors.WithStack(err)
	}
	if scope.Empty() {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, view.FromFirestationScope(scope), "Coverage retrieved successfully")
}

// ChildrenAtAddress handles GET /childAlert?address=.
func (h *AlertHandler) ChildrenAtAddress(c echo.Context) error {
	address := c.QueryParam("address")
	if isBlank(address) {
		return domainerrors.ErrValidationFailed.WithDetails("Address is required")
	}

	children, err := h.uc.ChildrenAtAddress(c.Request().Context(), address)
	if err != nil {
		return errors.WithStack(err)
	}
	if len(children) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, view.FromChildren(children), "Children retrieved successfully")
}

// PhoneNumbersByStation handles GET /phoneAlert?firestation=N.
func (h *AlertHandler) PhoneNumbersByStation(c echo.Context) error {
	station, err := parseStation(c.QueryParam("firestation"))
	if err != nil {
		return errBadStation()
	}

	phones, err := h.uc.PhoneNumbersByStation(c.Request().Context(), station)
	if err != nil {
		return errors.WithStack(err)
	}
	if len(phones) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, phones, "Phone numbers retrieved successfully")
}

// HouseholdAtAddress handles GET /fire?address=.
func (h *AlertHandler) HouseholdAtAddress(c echo.Context) error {
	address := c.QueryParam("address")
	if isBlank(address) {
		return domainerrors.ErrValidationFailed.WithDetails("Address is required")
	}

	household, err := h.uc.HouseholdAtAddress(c.Request().Context(), address)
	if err != nil {
		return errors.WithStack(err)
	}
	if household.Empty() {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, view.FromFireHousehold(household), "Household retrieved successfully")
}

// HouseholdsByStations handles GET /flood/stations?stations=1,2. The
// stations parameter accepts repeated values, comma-separated lists, or a
// mix of both.
func (h *AlertHandler) HouseholdsByStations(c echo.Context) error {
	var stations []int64
	for _, raw := range c.QueryParams()["stations"] {
		for _, piece := range strings.Split(raw, ",") {
			station, err := parseStation(strings.TrimSpace(piece))
			if err != nil {
				return domainerrors.ErrInvalidParameter.WithDetails("Station numbers must be numbers")
			}
			stations = append(stations, station)
		}
	}
	if len(stations) == 0 {
		return domainerrors.ErrInvalidParameter.WithDetails("At least one station number is required")
	}

	grouped, err := h.uc.HouseholdsByStations(c.Request().Context(), stations)
	if err != nil {
		return errors.WithStack(err)
	}
	if len(grouped) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, view.FromFloodHouseholds(grouped), "Households retrieved successfully")
}

// PersonsByName handles GET /personInfo?firstName=&lastName=. Homonyms are
// all returned.
func (h *AlertHandler) PersonsByName(c echo.Context) error {
	firstName := c.QueryParam("firstName")
	lastName := c.QueryParam("lastName")
	if isBlank(firstName) || isBlank(lastName) {
		return errMissingName()
	}

	persons, err := h.uc.PersonsByName(c.Request().Context(), firstName, lastName)
	if err != nil {
		return errors.WithStack(err)
	}
	if len(persons) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, view.FromPersonInfos(persons), "Person information retrieved successfully")
}

// EmailsByCity handles GET /communityEmail?city=.
func (h *AlertHandler) EmailsByCity(c echo.Context) error {
	city := c.QueryParam("city")
	if isBlank(city) {
		return domainerrors.ErrValidationFailed.WithDetails("City is required")
	}

	emails, err := h.uc.EmailsByCity(c.Request().Context(), city)
	if err != nil {
		return errors.WithStack(err)
	}
	if len(emails) == 0 {
		return response.NoContent(c)
	}

	return response.Success(c, http.StatusOK, emails, "Emails retrieved successfully")
}
