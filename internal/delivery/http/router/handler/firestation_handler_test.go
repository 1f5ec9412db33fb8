package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirestationHandler_ListFirestations(t *testing.T) {
	f := newHandlerFixture(t)

	req, rec := f.request(http.MethodGet, "/firestations", "")
	c := f.echo.NewContext(req, rec)

	require.NoError(t, f.firestation.ListFirestations(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeResponse(t, rec)
	mappings, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Len(t, mappings, 2)
}

func TestFirestationHandler_GetFirestationsByAddress(t *testing.T) {
	f := newHandlerFixture(t)

	req, rec := f.request(http.MethodGet, "/firestation/1509+Culver+St", "")
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("address")
	c.SetParamValues("1509 Culver St")

	require.NoError(t, f.firestation.GetFirestationsByAddress(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFirestationHandler_GetFirestationsByAddress_UnknownAddress(t *testing.T) {
	f := newHandlerFixture(t)

	req, rec := f.request(http.MethodGet, "/firestation/1+Nowhere+Ln", "")
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("address")
	c.SetParamValues("1 Nowhere Ln")

	// An unmapped address is an empty result, not a 200 with an empty list.
	require.NoError(t, f.firestation.GetFirestationsByAddress(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestFirestationHandler_AddFirestation(t *testing.T) {
	f := newHandlerFixture(t)

	req, rec := f.request(http.MethodPost, "/firestation", `{"station": 4, "address": "489 Manchester St"}`)
	c := f.echo.NewContext(req, rec)

	require.NoError(t, f.firestation.AddFirestation(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/firestation/4/489 Manchester St", rec.Header().Get(echo.HeaderLocation))
}

func TestFirestationHandler_AddFirestation_Invalid(t *testing.T) {
	f := newHandlerFixture(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing station", body: `{"address": "489 Manchester St"}`},
		{name: "missing address", body: `{"station": 4}`},
		{name: "blank address", body: `{"station": 4, "address": "   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := f.request(http.MethodPost, "/firestation", tt.body)
			c := f.echo.NewContext(req, rec)

			assertBadRequest(t, f.firestation.AddFirestation(c))
		})
	}
}

func TestFirestationHandler_AddFirestation_Duplicate(t *testing.T) {
	f := newHandlerFixture(t)

	req, rec := f.request(http.MethodPost, "/firestation", `{"station": 3, "address": "1509 Culver St"}`)
	c := f.echo.NewContext(req, rec)

	require.NoError(t, f.firestation.AddFirestation(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestFirestationHandler_UpdateFirestationNumber(t *testing.T) {
	f := newHandlerFixture(t)

	req, rec := f.request(http.MethodPut, "/firestation/3/1509+Culver+St", `{"station": 1}`)
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("station", "address")
	c.SetParamValues("3", "1509 Culver St")

	require.NoError(t, f.firestation.UpdateFirestationNumber(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeResponse(t, rec)
	mappings, ok := envelope.Data.([]any)
	require.True(t, ok)
	require.Len(t, mappings, 1)
	mapping, ok := mappings[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), mapping["station"])
}

func TestFirestationHandler_UpdateFirestationNumber_SameNumber(t *testing.T) {
	f := newHandlerFixture(t)

	req, rec := f.request(http.MethodPut, "/firestation/3/1509+Culver+St", `{"station": 3}`)
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("station", "address")
	c.SetParamValues("3", "1509 Culver St")

	require.NoError(t, f.firestation.UpdateFirestationNumber(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestFirestationHandler_UpdateFirestationNumber_BadStation(t *testing.T) {
	f := newHandlerFixture(t)

	req, rec := f.request(http.MethodPut, "/firestation/three/1509+Culver+St", `{"station": 1}`)
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("station", "address")
	c.SetParamValues("three", "1509 Culver St")

	assertBadRequest(t, f.firestation.UpdateFirestationNumber(c))
}

func TestFirestationHandler_DeleteFirestation_AlwaysNoContent(t *testing.T) {
	f := newHandlerFixture(t)

	for range 2 {
		req, rec := f.request(http.MethodDelete, "/firestation/3/1509+Culver+St", "")
		c := f.echo.NewContext(req, rec)
		c.SetParamNames("station", "address")
		c.SetParamValues("3", "1509 Culver St")

		require.NoError(t, f.firestation.DeleteFirestation(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}
