package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/custview/custview/internal/handler/dto"
	"github.com/custview/custview/internal/middleware"
	"github.com/custview/custview/internal/model"
	"github.com/custview/custview/internal/service"
)

// CustomerLister is the service behavior the customer handler needs.
type CustomerLister interface {
	ListCustomers(ctx context.Context, input service.ListCustomersInput) ([]*model.Customer, error)
}

// CustomerHandler handles HTTP requests for customer records.
type CustomerHandler struct {
	svc    CustomerLister
	logger *slog.Logger
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(svc CustomerLister, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /customers.
// The page and sortBy parameters are read but do not change the result.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	query := parseListCustomersQuery(r.URL.Query())

	customers, err := h.svc.ListCustomers(r.Context(), service.ListCustomersInput{
		Page:   query.Page,
		SortBy: query.SortBy,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCustomerListResponse(customers))
}

// parseListCustomersQuery never rejects input: unparsable values are dropped.
func parseListCustomersQuery(values url.Values) dto.ListCustomersQuery {
	var q dto.ListCustomersQuery
	if p := values.Get("page"); p != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
			q.Page = parsed
		}
	}
	q.SortBy = strings.TrimSpace(values.Get("sortBy"))
	return q
}

// handleServiceError maps service errors to HTTP responses.
// Every failure is reported to the caller as a generic 500.
func (h *CustomerHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	if errors.Is(err, context.Canceled) {
		h.logger.Info("request_cancelled", "request_id", requestID, "error", err)
	} else {
		h.logger.Error("internal_error", "request_id", requestID, "error", err)
	}
	writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
		Error: http.StatusText(http.StatusInternalServerError),
	})
}
