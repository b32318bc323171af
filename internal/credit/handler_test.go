package credit

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*Handler, *Service) {
	t.Helper()
	repo := &memoryCreditRepo{}
	resolver := knownCustomers()
	svc := NewService(repo, resolver, nil)
	svc.now = func() time.Time { return testToday }
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(logger, svc, resolver), svc
}

func postIssue(t *testing.T, h *Handler, req IssueRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodPost, "/api/credits", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.issue(rr, r)
	return rr
}

func getShow(t *testing.T, h *Handler, code uuid.UUID, query string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/api/credits/"+code.String()+query, nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("creditCode", code.String())
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
	rr := httptest.NewRecorder()
	h.show(rr, r)
	return rr
}

func TestIssueReturnsResolvedCustomer(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := postIssue(t, h, issueRequest())
	require.Equal(t, http.StatusCreated, rr.Code)

	var view View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	require.Equal(t, StatusPending, view.Status)
	require.NotNil(t, view.EmailCustomer)
	require.Equal(t, "ana.souza@example.com", *view.EmailCustomer)
	require.NotNil(t, view.IncomeCustomer)
	require.Equal(t, 4200.50, *view.IncomeCustomer)
}

func TestIssueRejectsInstallmentsOutOfRange(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, installments := range []int{0, 49} {
		req := issueRequest()
		req.NumberOfInstallments = installments
		rr := postIssue(t, h, req)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Contains(t, rr.Body.String(), "NumberOfInstallments")
	}
}

func TestIssueRejectsMalformedDate(t *testing.T) {
	h, _ := newTestHandler(t)

	req := issueRequest()
	req.DayFirstOfInstallment = "15/10/2026"
	rr := postIssue(t, h, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "DayFirstOfInstallment")
}

func TestIssueLateFirstInstallmentAnswers400(t *testing.T) {
	h, _ := newTestHandler(t)

	req := issueRequest()
	req.DayFirstOfInstallment = "2027-01-10"
	rr := postIssue(t, h, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "3 months")
}

func TestIssueUnknownCustomerAnswers400(t *testing.T) {
	h, _ := newTestHandler(t)

	req := issueRequest()
	req.CustomerID = 99
	rr := postIssue(t, h, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "customer not found")
}

func TestListReturnsSummaries(t *testing.T) {
	h, svc := newTestHandler(t)

	_, err := svc.Issue(context.Background(), issueRequest())
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/credits?customerId=1", nil)
	rr := httptest.NewRecorder()
	h.list(rr, r)

	require.Equal(t, http.StatusOK, rr.Code)
	var summaries []Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	require.Equal(t, float64(15000), summaries[0].CreditValue)
}

func TestListRequiresCustomerID(t *testing.T) {
	h, _ := newTestHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/api/credits", nil)
	rr := httptest.NewRecorder()
	h.list(rr, r)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestShowAnswers404ForUnknownCode(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := getShow(t, h, uuid.New(), "?customerId=1")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestShowAnswers403ForForeignCredit(t *testing.T) {
	h, svc := newTestHandler(t)

	issued, err := svc.Issue(context.Background(), issueRequest())
	require.NoError(t, err)

	rr := getShow(t, h, issued.CreditCode, "?customerId=2")
	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestShowReturnsOwnedCredit(t *testing.T) {
	h, svc := newTestHandler(t)

	issued, err := svc.Issue(context.Background(), issueRequest())
	require.NoError(t, err)

	rr := getShow(t, h, issued.CreditCode, "?customerId=1")
	require.Equal(t, http.StatusOK, rr.Code)

	var view View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	require.Equal(t, issued.CreditCode, view.CreditCode)
	require.Equal(t, "2026-10-15", view.DayFirstInstallment)
	require.NotNil(t, view.CustomerID)
	require.Equal(t, int64(1), *view.CustomerID)
}

func TestShowRejectsMalformedCode(t *testing.T) {
	h, _ := newTestHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/api/credits/not-a-uuid?customerId=1", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("creditCode", "not-a-uuid")
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
	rr := httptest.NewRecorder()
	h.show(rr, r)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
