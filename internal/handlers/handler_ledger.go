package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/ohada_ledger/internal/core/ports/services"
	"github.com/SscSPs/ohada_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	currency      string
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, currency string) {
	h := &ledgerHandler{ledgerService: ledgerService, currency: currency}

	ledger := rg.Group("/ledger")
	{
		ledger.GET("", h.getLedger)
		ledger.GET("/trial-balance", h.getTrialBalance)
	}
}

// getLedger godoc
// @Summary General ledger
// @Description Lines of posted and validated entries with a running balance per account.
// @Tags ledger
// @Produce json
// @Param accountId query string false "Restrict to one account"
// @Param journal query string false "Journal code"
// @Param status query string false "Entry status"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Param sortBy query string false "date, number or account"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /ledger [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	var req dto.LedgerQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ledger, err := h.ledgerService.GetLedger(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "account", "retrieve ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}

// getTrialBalance godoc
// @Summary Trial balance
// @Description Debit and credit totals per account up to a date, in the company currency.
// @Tags ledger
// @Produce json
// @Param asOf query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /ledger/trial-balance [get]
func (h *ledgerHandler) getTrialBalance(c *gin.Context) {
	var params dto.TrialBalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	var asOf time.Time
	if params.AsOf != "" {
		// Already checked by the binding tag.
		asOf, _ = time.Parse(time.DateOnly, params.AsOf)
	}

	tb, err := h.ledgerService.GetTrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err, "account", "compute trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb, h.currency))
}
