package customer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*Handler, *Service) {
	t.Helper()
	svc := NewService(newMemoryCustomerRepo())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(logger, svc), svc
}

func postRegister(t *testing.T, h *Handler, req RegisterRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.register(rr, r)
	return rr
}

func TestRegisterAnswers201WithoutPassword(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := postRegister(t, h, validRequest())
	require.Equal(t, http.StatusCreated, rr.Code)

	var view View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	require.NotZero(t, view.ID)
	require.Equal(t, "ana.souza@example.com", view.Email)
	require.NotContains(t, rr.Body.String(), "password")
}

func TestRegisterRejectsInvalidPayload(t *testing.T) {
	h, _ := newTestHandler(t)

	req := validRequest()
	req.Email = "not-an-email"
	req.CPF = "123"
	rr := postRegister(t, h, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "Email")
	require.Contains(t, rr.Body.String(), "CPF")
}

func TestRegisterDuplicateAnswers409(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := postRegister(t, h, validRequest())
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = postRegister(t, h, validRequest())
	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestShowAnswers404ForUnknownCustomer(t *testing.T) {
	h, _ := newTestHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/api/customers/42", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", "42")
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
	rr := httptest.NewRecorder()
	h.show(rr, r)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestShowRejectsMalformedID(t *testing.T) {
	h, _ := newTestHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/api/customers/abc", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", "abc")
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
	rr := httptest.NewRecorder()
	h.show(rr, r)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
