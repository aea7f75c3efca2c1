package handlers

import (
	"net/http"

	"github.com/kipubooks/kipu-backend/internal/core/domain"
	portssvc "github.com/kipubooks/kipu-backend/internal/core/ports/services"
	"github.com/kipubooks/kipu-backend/internal/dto"
	"github.com/kipubooks/kipu-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// ReceiptHandler handles the scan, confirm, list and update flows for
// purchase and sale documents. The :kind URL segment selects the namespace.
type ReceiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(rs portssvc.ReceiptSvcFacade) *ReceiptHandler {
	return &ReceiptHandler{receiptService: rs}
}

// registerReceiptRoutes sets up the receipt routes under /receipts/:kind.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := NewReceiptHandler(receiptService)

	// Each scan costs an extraction-service call, so cap them per IP.
	rate, _ := limiter.NewRateFromFormatted("10-M")
	scanLimiter := limiter.New(memory.NewStore(), rate)

	receipts := rg.Group("/receipts/:kind")
	{
		receipts.POST("/scan", middleware.RateLimit(scanLimiter), h.Scan)
		receipts.POST("", h.Confirm)
		receipts.GET("", h.List)
		receipts.GET("/:id", h.Get)
		receipts.PATCH("/:id", h.Update)
		receipts.DELETE("/:id", h.Delete)
		receipts.POST("/:id/image", h.UploadImage)
	}
}

// requestScope pulls the owner and kind out of the request. It writes the
// error response itself when either is unusable.
func requestScope(c *gin.Context) (ownerID string, kind domain.ReceiptKind, ok bool) {
	ownerID, found := middleware.GetUserIDFromContext(c)
	if !found {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return "", "", false
	}
	kind, err := domain.ParseReceiptKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Receipt kind must be 'purchase' or 'sale'"})
		return "", "", false
	}
	return ownerID, kind, true
}

// Scan godoc
// @Summary Scan a receipt photo
// @Description Sends the photo through the extraction service and returns the structured reading for review. Nothing is persisted.
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param kind path string true "Receipt kind" Enums(purchase, sale)
// @Param image formData file true "Receipt photo"
// @Success 200 {object} dto.ScanReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Extraction service unavailable or unreadable"
// @Security BearerAuth
// @Router /receipts/{kind}/scan [post]
func (h *ReceiptHandler) Scan(c *gin.Context) {
	ownerID, kind, ok := requestScope(c)
	if !ok {
		return
	}

	data, err := readUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Image file required: " + err.Error()})
		return
	}

	extracted, err := h.receiptService.ScanReceipt(c.Request.Context(), ownerID, kind, data)
	if err != nil {
		respondError(c, err, "Failed to read the receipt")
		return
	}
	c.JSON(http.StatusOK, dto.ToScanReceiptResponse(extracted))
}

// Confirm godoc
// @Summary Persist a reviewed receipt
// @Description Saves the receipt and its line items atomically. The tax period is derived from the issue date; a missing IGV breakdown is back-computed from the total.
// @Tags receipts
// @Accept json
// @Produce json
// @Param kind path string true "Receipt kind" Enums(purchase, sale)
// @Param receipt body dto.ConfirmReceiptRequest true "Reviewed receipt"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{kind} [post]
func (h *ReceiptHandler) Confirm(c *gin.Context) {
	ownerID, kind, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.ConfirmReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.ConfirmReceipt(c.Request.Context(), ownerID, kind, req)
	if err != nil {
		respondError(c, err, "Failed to save receipt")
		return
	}
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}

// List godoc
// @Summary List receipts
// @Description Returns the owner's receipts of the given kind, most recent first, with cursor pagination.
// @Tags receipts
// @Produce json
// @Param kind path string true "Receipt kind" Enums(purchase, sale)
// @Param limit query int false "Page size (max 100)" default(20)
// @Param pageToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListReceiptsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{kind} [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	ownerID, kind, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListReceiptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	receipts, nextToken, err := h.receiptService.ListReceipts(c.Request.Context(), ownerID, kind, params.Limit, params.PageToken)
	if err != nil {
		respondError(c, err, "Failed to list receipts")
		return
	}

	resp := dto.ListReceiptsResponse{
		Receipts:      make([]dto.ReceiptSummaryResponse, 0, len(receipts)),
		NextPageToken: nextToken,
	}
	for i := range receipts {
		resp.Receipts = append(resp.Receipts, dto.ToReceiptSummaryResponse(&receipts[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get one receipt with its line items
// @Tags receipts
// @Produce json
// @Param kind path string true "Receipt kind" Enums(purchase, sale)
// @Param id path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{kind}/{id} [get]
func (h *ReceiptHandler) Get(c *gin.Context) {
	ownerID, kind, ok := requestScope(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), ownerID, kind, c.Param("id"))
	if err != nil {
		respondError(c, err, "Receipt not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// Update godoc
// @Summary Correct a receipt's amount or issue date
// @Description Partial update; the IGV breakdown and tax period are rederived from the corrected values.
// @Tags receipts
// @Accept json
// @Produce json
// @Param kind path string true "Receipt kind" Enums(purchase, sale)
// @Param id path string true "Receipt ID"
// @Param update body dto.UpdateReceiptRequest true "Fields to correct"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{kind}/{id} [patch]
func (h *ReceiptHandler) Update(c *gin.Context) {
	ownerID, kind, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Request.Context(), ownerID, kind, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update receipt")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// Delete godoc
// @Summary Delete a receipt and its line items
// @Tags receipts
// @Param kind path string true "Receipt kind" Enums(purchase, sale)
// @Param id path string true "Receipt ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{kind}/{id} [delete]
func (h *ReceiptHandler) Delete(c *gin.Context) {
	ownerID, kind, ok := requestScope(c)
	if !ok {
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), ownerID, kind, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete receipt")
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage godoc
// @Summary Attach the source photo to a receipt
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param kind path string true "Receipt kind" Enums(purchase, sale)
// @Param id path string true "Receipt ID"
// @Param image formData file true "Receipt photo"
// @Success 200 {object} dto.FileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{kind}/{id}/image [post]
func (h *ReceiptHandler) UploadImage(c *gin.Context) {
	ownerID, kind, ok := requestScope(c)
	if !ok {
		return
	}

	data, err := readUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Image file required: " + err.Error()})
		return
	}

	path, err := h.receiptService.AttachImage(c.Request.Context(), ownerID, kind, c.Param("id"), data)
	if err != nil {
		respondError(c, err, "Failed to attach receipt image")
		return
	}
	c.JSON(http.StatusOK, dto.FileResponse{Path: path})
}
