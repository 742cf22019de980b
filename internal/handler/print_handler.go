// internal/handler/print_handler.go
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"receipt-service/internal/model"
	"receipt-service/internal/printer"
	"receipt-service/internal/service"
	"receipt-service/internal/utils"
)

// PrintHandler handles print-related HTTP requests
type PrintHandler struct {
	printService *service.PrintService
	logger       *utils.ServiceLogger
}

// NewPrintHandler creates a new print handler
func NewPrintHandler(printService *service.PrintService, logger *zap.Logger) *PrintHandler {
	return &PrintHandler{
		printService: printService,
		logger:       utils.NewServiceLogger(logger, "print-handler"),
	}
}

// RegisterRoutes registers print-related routes
func (h *PrintHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/print-bar", h.PrintBar)
	router.POST("/print-kitchen", h.PrintKitchen)
	router.POST("/print-bill", h.PrintBill)
	router.POST("/print-report", h.PrintReport)
	router.GET("/printers/:category/status", h.PrinterStatus)
}

// PrintBar prints a bar station ticket
func (h *PrintHandler) PrintBar(c *gin.Context) {
	var order model.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	title, err := h.printService.PrintBar(c.Request.Context(), order)
	if err != nil {
		h.respondPrintError(c, "bar", err)
		return
	}

	utils.SuccessResponse(c, http.StatusAccepted, "Bar ticket printed", gin.H{"title": title})
}

// PrintKitchen prints a kitchen station ticket
func (h *PrintHandler) PrintKitchen(c *gin.Context) {
	var order model.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	title, err := h.printService.PrintKitchen(c.Request.Context(), order)
	if err != nil {
		h.respondPrintError(c, "kitchen", err)
		return
	}

	utils.SuccessResponse(c, http.StatusAccepted, "Kitchen ticket printed", gin.H{"title": title})
}

// PrintBill prints a customer bill
func (h *PrintHandler) PrintBill(c *gin.Context) {
	var order model.BillOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	title, err := h.printService.PrintBill(c.Request.Context(), order)
	if err != nil {
		h.respondPrintError(c, "bill", err)
		return
	}

	utils.SuccessResponse(c, http.StatusAccepted, "Bill printed", gin.H{"title": title})
}

// PrintReport prints a service report
func (h *PrintHandler) PrintReport(c *gin.Context) {
	var summary model.ReportSummary
	if err := c.ShouldBindJSON(&summary); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	title, err := h.printService.PrintReport(c.Request.Context(), summary)
	if err != nil {
		h.respondPrintError(c, "report", err)
		return
	}

	utils.SuccessResponse(c, http.StatusAccepted, "Report printed", gin.H{"title": title})
}

// PrinterStatus probes the printer routed to a document category
func (h *PrintHandler) PrinterStatus(c *gin.Context) {
	category := c.Param("category")

	offline, err := h.printService.ProbePrinter(c.Request.Context(), category)
	if err != nil {
		if errors.Is(err, printer.ErrNotConfigured) {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Printer not configured", err)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Printer probe failed", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Printer status", gin.H{
		"category": category,
		"online":   !offline,
	})
}

// respondPrintError maps the fault taxonomy onto HTTP status codes:
// missing configuration and write failures are server errors, an
// offline printer is a temporary condition.
func (h *PrintHandler) respondPrintError(c *gin.Context, category string, err error) {
	h.logger.Error("Print request failed",
		zap.String("category", category),
		zap.Error(err),
	)

	var offline *printer.OfflineError
	switch {
	case errors.Is(err, printer.ErrNotConfigured):
		utils.ErrorResponse(c, http.StatusInternalServerError, "Printer not configured", err)
	case errors.As(err, &offline):
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "Printer offline", err)
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Print failed", err)
	}
}
