package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	qmserrors "qmstracker/internal/errors"
	"qmstracker/internal/model"
	"qmstracker/internal/service"
)

// MockEntryService is a mock implementation of service.EntryService.
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) List(ctx context.Context, filters service.EntryFilters) ([]model.Entry, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Entry), args.Error(1)
}

func (m *MockEntryService) GetByID(ctx context.Context, id string) (*model.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockEntryService) Create(ctx context.Context, entry *model.Entry) (*model.Entry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockEntryService) Update(ctx context.Context, id string, updates *model.EntryUpdate) (*model.Entry, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockEntryService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeleteResult), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestContext(method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestEntryHandler_ListEntries(t *testing.T) {
	mockSvc := new(MockEntryService)
	entries := []model.Entry{
		{ID: "1", Source: model.SourceAssignment, PortalName: "Acme"},
		{ID: "2", Source: model.SourceSourcing, PortalName: "Beta"},
	}
	mockSvc.On("List", mock.Anything, service.EntryFilters{PortalName: "Acme", FromDate: "2025-07-01"}).
		Return(entries, nil)

	h := NewEntryHandler(mockSvc)
	c, rec := newTestContext(http.MethodGet, "/api/entries?portalName=Acme&fromDate=2025-07-01", "")

	require.NoError(t, h.ListEntries(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []model.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	mockSvc.AssertExpectations(t)
}

func TestEntryHandler_ListEntries_InvalidFilter(t *testing.T) {
	mockSvc := new(MockEntryService)
	mockSvc.On("List", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("fromDate %q: %w", "yesterday", qmserrors.ErrInvalidFilter))

	h := NewEntryHandler(mockSvc)
	c, _ := newTestContext(http.MethodGet, "/api/entries?fromDate=yesterday", "")

	err := h.ListEntries(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	resp, ok := httpErr.Message.(qmserrors.ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, "INVALID_FILTER", resp.Code)
}

func TestEntryHandler_GetEntry_NotFound(t *testing.T) {
	mockSvc := new(MockEntryService)
	mockSvc.On("GetByID", mock.Anything, "999").
		Return(nil, fmt.Errorf("no entry found for QMS ID: 999: %w", qmserrors.ErrEntryNotFound))

	h := NewEntryHandler(mockSvc)
	c, _ := newTestContext(http.MethodGet, "/api/entries/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.GetEntry(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)

	resp, ok := httpErr.Message.(qmserrors.ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, "ENTRY_NOT_FOUND", resp.Code)
	assert.Contains(t, resp.Error, "no entry found for QMS ID: 999")
}

func TestEntryHandler_CreateEntry(t *testing.T) {
	mockSvc := new(MockEntryService)
	created := &model.Entry{ID: "100", Source: model.SourceAssignment, PortalName: "Acme"}
	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Entry) bool {
		return e.PortalName == "Acme" && e.BidNumber == "BID-100"
	})).Return(created, nil)

	h := NewEntryHandler(mockSvc)
	c, rec := newTestContext(http.MethodPost, "/api/entries",
		`{"portalName":"Acme","bidNumber":"BID-100","email":"buyer@acme.com"}`)

	require.NoError(t, h.CreateEntry(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got model.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "100", got.ID)
	assert.Equal(t, model.SourceAssignment, got.Source)
	mockSvc.AssertExpectations(t)
}

func TestEntryHandler_CreateEntry_InvalidEmail(t *testing.T) {
	mockSvc := new(MockEntryService)
	h := NewEntryHandler(mockSvc)
	c, _ := newTestContext(http.MethodPost, "/api/entries", `{"portalName":"Acme","email":"not-an-email"}`)

	err := h.CreateEntry(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEntryHandler_UpdateEntry(t *testing.T) {
	mockSvc := new(MockEntryService)
	updated := &model.Entry{ID: "1", Status: "completed"}
	mockSvc.On("Update", mock.Anything, "1", mock.MatchedBy(func(u *model.EntryUpdate) bool {
		return u.Status != nil && *u.Status == "completed" && u.PortalName == nil
	})).Return(updated, nil)

	h := NewEntryHandler(mockSvc)
	c, rec := newTestContext(http.MethodPut, "/api/entries/1", `{"status":"completed"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.UpdateEntry(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	mockSvc.AssertExpectations(t)
}

func TestEntryHandler_DeleteEntry(t *testing.T) {
	mockSvc := new(MockEntryService)
	mockSvc.On("Delete", mock.Anything, "1").
		Return(&model.DeleteResult{Success: true, Source: model.SourceSourcing}, nil)

	h := NewEntryHandler(mockSvc)
	c, rec := newTestContext(http.MethodDelete, "/api/entries/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.DeleteEntry(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got model.DeleteResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, model.SourceSourcing, got.Source)
}
