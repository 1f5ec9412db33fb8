package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicalRecordHandler_ListMedicalRecords(t *testing.T) {
	f := newHandlerFixture(t)

	req, rec := f.request(http.MethodGet, "/medicalRecords", "")
	c := f.echo.NewContext(req, rec)

	require.NoError(t, f.medicalRecord.ListMedicalRecords(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeResponse(t, rec)
	records, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Len(t, records, 3)
}

func TestMedicalRecordHandler_AddMedicalRecord_Defaults(t *testing.T) {
	f := newHandlerFixture(t)

	req, rec := f.request(http.MethodPost, "/medicalRecord", `{"firstName": "Eric", "lastName": "Cadigan"}`)
	c := f.echo.NewContext(req, rec)

	require.NoError(t, f.medicalRecord.AddMedicalRecord(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/medicalRecord/Eric/Cadigan", rec.Header().Get(echo.HeaderLocation))

	envelope := decodeResponse(t, rec)
	record, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, record["birthdate"])
	assert.Equal(t, []any{}, record["medications"])
	assert.Equal(t, []any{}, record["allergies"])
}

func TestMedicalRecordHandler_AddMedicalRecord_Duplicate(t *testing.T) {
	f := newHandlerFixture(t)

	req, rec := f.request(http.MethodPost, "/medicalRecord", `{"firstName": "John", "lastName": "Boyd"}`)
	c := f.echo.NewContext(req, rec)

	require.NoError(t, f.medicalRecord.AddMedicalRecord(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMedicalRecordHandler_AddMedicalRecord_BadDateLayout(t *testing.T) {
	f := newHandlerFixture(t)

	body := `{"firstName": "Eric", "lastName": "Cadigan", "birthdate": "1945-08-06"}`
	req, rec := f.request(http.MethodPost, "/medicalRecord", body)
	c := f.echo.NewContext(req, rec)

	assertBadRequest(t, f.medicalRecord.AddMedicalRecord(c))
}

func TestMedicalRecordHandler_UpdateMedicalRecord(t *testing.T) {
	f := newHandlerFixture(t)

	req, rec := f.request(http.MethodPut, "/medicalRecord/John/Boyd", `{"medications": ["thradox:700mg"]}`)
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("firstName", "lastName")
	c.SetParamValues("John", "Boyd")

	require.NoError(t, f.medicalRecord.UpdateMedicalRecord(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeResponse(t, rec)
	record, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"thradox:700mg"}, record["medications"])
	assert.Equal(t, []any{"nillacilan"}, record["allergies"])
}

func TestMedicalRecordHandler_UpdateMedicalRecord_NoEffectiveChange(t *testing.T) {
	f := newHandlerFixture(t)

	req, rec := f.request(http.MethodPut, "/medicalRecord/John/Boyd", `{}`)
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("firstName", "lastName")
	c.SetParamValues("John", "Boyd")

	require.NoError(t, f.medicalRecord.UpdateMedicalRecord(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMedicalRecordHandler_GetMedicalRecord_NotFound(t *testing.T) {
	f := newHandlerFixture(t)

	req, rec := f.request(http.MethodGet, "/medicalRecord/Nobody/Here", "")
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("firstName", "lastName")
	c.SetParamValues("Nobody", "Here")

	require.NoError(t, f.medicalRecord.GetMedicalRecord(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMedicalRecordHandler_DeleteMedicalRecord_AlwaysNoContent(t *testing.T) {
	f := newHandlerFixture(t)

	for range 2 {
		req, rec := f.request(http.MethodDelete, "/medicalRecord/John/Boyd", "")
		c := f.echo.NewContext(req, rec)
		c.SetParamNames("firstName", "lastName")
		c.SetParamValues("John", "Boyd")

		require.NoError(t, f.medicalRecord.DeleteMedicalRecord(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}
