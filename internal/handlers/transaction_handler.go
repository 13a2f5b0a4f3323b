package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clearbooks/backend/internal/models"
	"github.com/clearbooks/backend/internal/services"
)

type TransactionHandler struct {
	service   *services.LedgerService
	validator *services.ValidationHelper
}

func NewTransactionHandler(service *services.LedgerService) *TransactionHandler {
	return &TransactionHandler{
		service:   service,
		validator: services.NewValidationHelper(),
	}
}

// CreateTransaction posts a balanced transaction to the ledger
// @Summary Post transaction
// @Description Validate and atomically apply a double-entry transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body models.CreateTransactionRequest true "Transaction to post"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	tx, err := h.service.PostTransaction(r.Context(), req)
	if err != nil {
		sendLedgerError(w, err)
		return
	}

	services.SendJSONResponse(w, http.StatusCreated, tx)
}

// ValidateTransaction dry-runs a transaction without posting it
// @Summary Validate transaction
// @Description Report every validation failure for a candidate transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body models.CreateTransactionRequest true "Transaction to check"
// @Success 200 {object} models.ValidationResult
// @Failure 400 {object} services.ErrorResponse
// @Router /transactions/validate [post]
func (h *TransactionHandler) ValidateTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	result := h.service.ValidateTransaction(r.Context(), req)
	services.SendJSONResponse(w, http.StatusOK, result)
}

// ListTransactions lists posted transactions, most recent first
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param description_contains query string false "Substring match on description"
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} models.Transaction
// @Failure 400 {object} services.ErrorResponse
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	startDate, err := parseDateParam(r, "start_date")
	if err != nil {
		services.SendErrorResponse(w, "Invalid start_date", http.StatusBadRequest, nil)
		return
	}
	endDate, err := parseDateParam(r, "end_date")
	if err != nil {
		services.SendErrorResponse(w, "Invalid end_date", http.StatusBadRequest, nil)
		return
	}

	filter := models.TransactionFilter{
		StartDate:           startDate,
		EndDate:             endDate,
		DescriptionContains: r.URL.Query().Get("description_contains"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			services.SendErrorResponse(w, "Invalid limit", http.StatusBadRequest, nil)
			return
		}
		filter.Limit = limit
	}

	services.SendJSONResponse(w, http.StatusOK, h.service.ListTransactions(r.Context(), filter))
}

// GetTransaction fetches a posted transaction
// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} services.ErrorResponse
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := h.service.GetTransaction(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendLedgerError(w, err)
		return
	}

	services.SendJSONResponse(w, http.StatusOK, tx)
}
