package credit

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/creditdesk/creditdesk/internal/customer"
	"github.com/creditdesk/creditdesk/internal/platform/httpx"
)

// Handler exposes credit endpoints. It resolves owning customers
// itself when assembling views instead of relying on the service to
// join them in.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	customers CustomerResolver
	validator *validator.Validate
}

// NewHandler creates a credit HTTP handler.
func NewHandler(logger *slog.Logger, service *Service, customers CustomerResolver) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		customers: customers,
		validator: validator.New(),
	}
}

func (h *Handler) issue(w http.ResponseWriter, r *http.Request) {
	var req IssueRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fieldErr := range err.(validator.ValidationErrors) {
			fields[fieldErr.Field()] = fieldErr.Error()
		}
		httpx.FieldProblem(w, http.StatusBadRequest, "Validation Failed", fields)
		return
	}

	c, err := h.service.Issue(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, h.renderView(r, c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerIDParam(w, r)
	if !ok {
		return
	}

	summaries, err := h.service.ListByCustomer(r.Context(), customerID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summaries)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	code, err := uuid.Parse(chi.URLParam(r, "creditCode"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid credit code")
		return
	}
	customerID, ok := h.customerIDParam(w, r)
	if !ok {
		return
	}

	c, err := h.service.GetByCode(r.Context(), code, customerID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.renderView(r, c))
}

// renderView resolves the owning customer for display. The credit is
// still returned when resolution fails, just without customer fields.
func (h *Handler) renderView(r *http.Request, c *Credit) View {
	owner, err := h.customers.FindByID(r.Context(), c.CustomerID)
	if err != nil {
		h.logger.Warn("resolve credit owner",
			slog.Int64("customer_id", c.CustomerID),
			slog.String("error", err.Error()))
		owner = nil
	}
	return NewView(c, owner)
}

func (h *Handler) customerIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("customerId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "customerId query parameter is required")
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrFirstInstallmentTooLate):
		httpx.Problem(w, http.StatusBadRequest, "Business Rule Violated", err.Error())
	case errors.Is(err, customer.ErrNotFound):
		httpx.Problem(w, http.StatusBadRequest, "Business Rule Violated", err.Error())
	case errors.Is(err, ErrCreditNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrNotCreditOwner):
		httpx.Problem(w, http.StatusForbidden, "Forbidden", err.Error())
	default:
		h.logger.Error("credit handler", slog.String("error", err.Error()))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
