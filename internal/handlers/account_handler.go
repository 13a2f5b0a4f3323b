package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clearbooks/backend/internal/models"
	"github.com/clearbooks/backend/internal/services"
)

type AccountHandler struct {
	service   *services.LedgerService
	validator *services.ValidationHelper
}

func NewAccountHandler(service *services.LedgerService) *AccountHandler {
	return &AccountHandler{
		service:   service,
		validator: services.NewValidationHelper(),
	}
}

// CreateAccount registers a new ledger account
// @Summary Create account
// @Description Register an account in the chart of accounts
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body models.CreateAccountRequest true "Account to register"
// @Success 201 {object} models.Account
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	account, err := h.service.CreateAccount(r.Context(), req)
	if err != nil {
		sendLedgerError(w, err)
		return
	}

	services.SendJSONResponse(w, http.StatusCreated, account)
}

// ListAccounts lists accounts, optionally filtered by type
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Param account_type query string false "Filter by account type" Enums(asset, liability, equity, revenue, expense)
// @Success 200 {array} models.Account
// @Failure 400 {object} services.ErrorResponse
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	var filter *models.AccountType
	if raw := r.URL.Query().Get("account_type"); raw != "" {
		accountType := models.AccountType(raw)
		filter = &accountType
	}

	accounts, err := h.service.ListAccounts(r.Context(), filter)
	if err != nil {
		sendLedgerError(w, err)
		return
	}

	services.SendJSONResponse(w, http.StatusOK, accounts)
}

// GetAccount fetches a single account
// @Summary Get account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} models.Account
// @Failure 404 {object} services.ErrorResponse
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.GetAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendLedgerError(w, err)
		return
	}

	services.SendJSONResponse(w, http.StatusOK, account)
}

// UpdateAccount changes an account's name or parent
// @Summary Update account
// @Description Update the account name or parent; code and type are immutable
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body models.UpdateAccountRequest true "Fields to change"
// @Success 200 {object} models.Account
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	account, err := h.service.UpdateAccount(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		sendLedgerError(w, err)
		return
	}

	services.SendJSONResponse(w, http.StatusOK, account)
}

// DeleteAccount removes an account with no posted entries
// @Summary Delete account
// @Description Delete an account; refused once the account has postings
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204
// @Failure 404 {object} services.ErrorResponse
// @Failure 409 {object} services.ErrorResponse
// @Router /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAccount(r.Context(), chi.URLParam(r, "id")); err != nil {
		sendLedgerError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetAccountStatement returns the posting history of one account
// @Summary Account statement
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} models.AccountStatement
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /accounts/{id}/statement [get]
func (h *AccountHandler) GetAccountStatement(w http.ResponseWriter, r *http.Request) {
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

	statement, err := h.service.AccountStatement(r.Context(), chi.URLParam(r, "id"), startDate, endDate)
	if err != nil {
		sendLedgerError(w, err)
		return
	}

	services.SendJSONResponse(w, http.StatusOK, statement)
}
