package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ohada_ledger/internal/core/ports/services"
	"github.com/SscSPs/ohada_ledger/internal/dto"
	"github.com/SscSPs/ohada_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := &periodHandler{periodService: periodService}

	periods := rg.Group("/periods")
	{
		periods.POST("/close", h.closePeriod)
		periods.GET("", h.listPeriods)
		periods.GET("/:period", h.getPeriod)
	}
}

// closePeriod godoc
// @Summary Close an accounting period
// @Description Closes a month (YYYY-MM). Refused while draft entries remain in it.
// @Tags periods
// @Accept json
// @Produce json
// @Param period body dto.ClosePeriodRequest true "Period to close"
// @Success 201 {object} dto.PeriodResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already closed or drafts remaining"
// @Security BearerAuth
// @Router /periods/close [post]
func (h *periodHandler) closePeriod(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.ClosePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	period, err := h.periodService.ClosePeriod(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "period", "close period")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Period closed", slog.String("period", period.Period))
	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// listPeriods godoc
// @Summary List closed periods
// @Tags periods
// @Produce json
// @Success 200 {object} dto.ListPeriodsResponse
// @Security BearerAuth
// @Router /periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	periods, err := h.periodService.ListClosedPeriods(c.Request.Context())
	if err != nil {
		respondError(c, err, "period", "list periods")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPeriodsResponse(periods))
}

// getPeriod godoc
// @Summary Describe a period
// @Tags periods
// @Produce json
// @Param period path string true "Period (YYYY-MM)"
// @Success 200 {object} dto.PeriodResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /periods/{period} [get]
func (h *periodHandler) getPeriod(c *gin.Context) {
	period, err := h.periodService.GetPeriod(c.Request.Context(), c.Param("period"))
	if err != nil {
		respondError(c, err, "period", "retrieve period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}
