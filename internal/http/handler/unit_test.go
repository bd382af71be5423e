package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-service/internal/domain/unit"
	apperrors "unit-service/pkg/errors"
)

type fakeUnitReader struct {
	units []*unit.Unit
	err   error
}

func (r *fakeUnitReader) List(_ context.Context) ([]*unit.Unit, error) {
	return r.units, r.err
}

func (r *fakeUnitReader) GetByID(_ context.Context, id uuid.UUID) (*unit.Unit, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.units {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("unit not found")
}

func TestListUnits(t *testing.T) {
	reader := &fakeUnitReader{units: []*unit.Unit{
		{ID: uuid.New(), Name: "Bloco A - 101", Block: "A", Number: 101},
		{ID: uuid.New(), Name: "Bloco A - 102", Block: "A", Number: 102},
	}}
	h := NewUnitHandler(reader)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/units", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListUnits(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []unitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "Bloco A - 101", body[0].Name)
	assert.Equal(t, 102, body[1].Number)
}

func TestGetUnit(t *testing.T) {
	target := &unit.Unit{ID: uuid.New(), Name: "Bloco B - 204", Block: "B", Number: 204}
	h := NewUnitHandler(&fakeUnitReader{units: []*unit.Unit{target}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramID)
	c.SetParamValues(target.ID.String())

	require.NoError(t, h.GetUnit(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body unitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, target.ID, body.ID)
	assert.Equal(t, "B", body.Block)
}

func TestGetUnitInvalidID(t *testing.T) {
	h := NewUnitHandler(&fakeUnitReader{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramID)
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetUnit(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUnitNotFound(t *testing.T) {
	h := NewUnitHandler(&fakeUnitReader{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramID)
	c.SetParamValues(uuid.New().String())

	require.NoError(t, h.GetUnit(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
