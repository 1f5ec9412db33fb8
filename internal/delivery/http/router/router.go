// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"alerts/internal/delivery/http/router/handler"
	"alerts/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler        *handler.HealthHandler
	PersonHandler        *handler.PersonHandler
	FirestationHandler   *handler.FirestationHandler
	MedicalRecordHandler *handler.MedicalRecordHandler
	AlertHandler         *handler.AlertHandler
	Metrics              *metrics.HTTPMetrics
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler        *handler.HealthHandler
	personHandler        *handler.PersonHandler
	firestationHandler   *handler.FirestationHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	alertHandler         *handler.AlertHandler
	metrics              *metrics.HTTPMetrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:        params.HealthHandler,
		personHandler:        params.PersonHandler,
		firestationHandler:   params.FirestationHandler,
		medicalRecordHandler: params.MedicalRecordHandler,
		alertHandler:         params.AlertHandler,
		metrics:              params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Person CRUD
	e.GET("/persons", r.personHandler.ListPersons)
	e.POST("/person", r.personHandler.AddPerson)
	e.GET("/person/:firstName/:lastName", r.personHandler.GetPerson)
	e.PUT("/person/:firstName/:lastName", r.personHandler.UpdatePerson)
	e.DELETE("/person/:firstName/:lastName", r.personHandler.DeletePerson)

	// Firestation mapping CRUD. GET /firestation without a path segment is
	// the coverage aggregation, keyed by the stationNumber query parameter.
	e.GET("/firestations", r.firestationHandler.ListFirestations)
	e.POST("/firestation", r.firestationHandler.AddFirestation)
	e.GET("/firestation/:address", r.firestationHandler.GetFirestationsByAddress)
	e.PUT("/firestation/:station/:address", r.firestationHandler.UpdateFirestationNumber)
	e.DELETE("/firestation/:station/:address", r.firestationHandler.DeleteFirestation)

	// Medical record CRUD
	e.GET("/medicalRecords", r.medicalRecordHandler.ListMedicalRecords)
	e.POST("/medicalRecord", r.medicalRecordHandler.AddMedicalRecord)
	e.GET("/medicalRecord/:firstName/:lastName", r.medicalRecordHandler.GetMedicalRecord)
	e.PUT("/medicalRecord/:firstName/:lastName", r.medicalRecordHandler.UpdateMedicalRecord)
	e.DELETE("/medicalRecord/:firstName/:lastName", r.medicalRecordHandler.DeleteMedicalRecord)

	// Aggregations
	e.GET("/firestation", r.alertHandler.CoverageByStation)
	e.GET("/childAlert", r.alertHandler.ChildrenAtAddress)
	e.GET("/phoneAlert", r.alertHandler.PhoneNumbersByStation)
	e.GET("/fire", r.alertHandler.HouseholdAtAddress)
	e.GET("/flood/stations", r.alertHandler.HouseholdsByStations)
	e.GET("/personInfo", r.alertHandler.PersonsByName)
	e.GET("/communityEmail", r.alertHandler.EmailsByCity)
}
