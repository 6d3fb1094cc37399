package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/ohada_ledger/internal/core/ports/services"
	"github.com/SscSPs/ohada_ledger/internal/dto"
	"github.com/SscSPs/ohada_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryHandler handles HTTP requests related to accounting entries.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entryService: es}
}

// registerEntryRoutes registers routes related to entries.
func registerEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.POST("/validate", h.checkEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.PUT("/:entryID", h.updateEntry)
		entries.POST("/:entryID/post", h.postEntry)
		entries.POST("/:entryID/approve", h.approveEntry)
		entries.POST("/:entryID/cancel", h.cancelEntry)
	}
}

// createEntry godoc
// @Summary Create an accounting entry
// @Description Validates a double-entry proposal and stores it as a draft.
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Period closed"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "account", "create entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// checkEntry godoc
// @Summary Dry-run an accounting entry
// @Description Runs every check of entry creation without storing anything.
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry"
// @Success 200 {object} dto.CheckEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Period closed"
// @Security BearerAuth
// @Router /entries/validate [post]
func (h *entryHandler) checkEntry(c *gin.Context) {
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.entryService.CheckEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "account", "check entry")
		return
	}
	c.JSON(http.StatusOK, dto.CheckEntryResponse{Valid: true, Entry: dto.ToEntryResponse(entry)})
}

// listEntries godoc
// @Summary Search accounting entries
// @Tags entries
// @Produce json
// @Param q query string false "Text in reference, description or line labels"
// @Param journal query string false "Journal code"
// @Param status query string false "Entry status"
// @Param accountId query string false "Account touched by a line"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Param minAmount query string false "Minimum entry total"
// @Param maxAmount query string false "Maximum entry total"
// @Param sortBy query string false "date, number, reference or createdAt"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	var req dto.SearchEntriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.entryService.SearchEntries(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "entry", "search entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntriesResponse(page))
}

// getEntry godoc
// @Summary Get an accounting entry
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	entry, err := h.entryService.GetEntry(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondError(c, err, "entry", "retrieve entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Replace a draft entry
// @Tags entries
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param entry body dto.CreateEntryRequest true "Entry"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Not a draft or period closed"
// @Security BearerAuth
// @Router /entries/{entryID} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), c.Param("entryID"), req, userID)
	if err != nil {
		respondError(c, err, "entry", "update entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// postEntry godoc
// @Summary Post a draft entry
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID}/post [post]
func (h *entryHandler) postEntry(c *gin.Context) {
	h.transition(c, domain.EntryPosted, h.entryService.PostEntry)
}

// approveEntry godoc
// @Summary Validate a posted entry
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID}/approve [post]
func (h *entryHandler) approveEntry(c *gin.Context) {
	h.transition(c, domain.EntryValidated, h.entryService.ApproveEntry)
}

// cancelEntry godoc
// @Summary Cancel a draft or posted entry
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /entries/{entryID}/cancel [post]
func (h *entryHandler) cancelEntry(c *gin.Context) {
	h.transition(c, domain.EntryCancelled, h.entryService.CancelEntry)
}

type transitionFunc func(ctx context.Context, entryID, userID string) (*domain.AccountingEntry, error)

func (h *entryHandler) transition(c *gin.Context, to domain.EntryStatus, fn transitionFunc) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	entryID := c.Param("entryID")
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Entry transition requested",
		slog.String("entry_id", entryID),
		slog.String("to", string(to)))

	entry, err := fn(c.Request.Context(), entryID, userID)
	if err != nil {
		respondError(c, err, "entry", "change entry status")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}
