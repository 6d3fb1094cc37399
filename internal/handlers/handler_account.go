package handlers

import (
	"net/http"

	"github.com/SscSPs/ohada_ledger/internal/chart"
	portssvc "github.com/SscSPs/ohada_ledger/internal/core/ports/services"
	"github.com/SscSPs/ohada_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.createAccount)
		accounts.GET("/:accountID", h.getAccount)
		accounts.PATCH("/:accountID", h.updateAccount)
	}
}

// createAccount godoc
// @Summary Create an account
// @Description Adds an account to the chart. The class is derived from the first digit of the number.
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Account number already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "account", "create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account, chart.ClassName(account.Class)))
}

// listAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Param class query int false "Account class (1-9)"
// @Param activeOnly query bool false "Only active accounts"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "account", "list accounts")
		return
	}

	res := dto.ListAccountsResponse{Accounts: make([]dto.AccountResponse, len(accounts))}
	for i := range accounts {
		res.Accounts[i] = dto.ToAccountResponse(&accounts[i], chart.ClassName(accounts[i].Class))
	}
	c.JSON(http.StatusOK, res)
}

// getAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondError(c, err, "account", "retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account, chart.ClassName(account.Class)))
}

// updateAccount godoc
// @Summary Update an account
// @Description Changes the label, description or active flag. The number and class are immutable.
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to change"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID} [patch]
func (h *accountHandler) updateAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("accountID"), req, userID)
	if err != nil {
		respondError(c, err, "account", "update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account, chart.ClassName(account.Class)))
}
