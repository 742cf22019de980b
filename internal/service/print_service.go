// internal/service/print_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"receipt-service/internal/config"
	"receipt-service/internal/escpos"
	"receipt-service/internal/model"
	"receipt-service/internal/printer"
	"receipt-service/internal/render"
	"receipt-service/internal/utils"
)

// SessionManager is the printer session surface the service depends on.
type SessionManager interface {
	Probe(ctx context.Context, name string) (bool, error)
	Submit(ctx context.Context, name string, payload render.Payload) error
}

var _ SessionManager = (*printer.Manager)(nil)

// PrintService renders documents and submits them to the routed printer
type PrintService struct {
	config   *config.Config
	sessions SessionManager
	logger   *utils.ServiceLogger
}

// NewPrintService creates a new print service instance
func NewPrintService(cfg *config.Config, sessions SessionManager, logger *zap.Logger) *PrintService {
	return &PrintService{
		config:   cfg,
		sessions: sessions,
		logger:   utils.NewServiceLogger(logger, "print-service"),
	}
}

// PrintBar renders and prints a bar station ticket
func (ps *PrintService) PrintBar(ctx context.Context, order model.Order) (string, error) {
	return ps.print(ctx, "bar", model.BarTicket{Order: order}, ps.renderOptions(false))
}

// PrintKitchen renders and prints a kitchen station ticket
func (ps *PrintService) PrintKitchen(ctx context.Context, order model.Order) (string, error) {
	return ps.print(ctx, "kitchen", model.KitchenTicket{Order: order}, ps.renderOptions(false))
}

// PrintBill renders and prints a customer bill
func (ps *PrintService) PrintBill(ctx context.Context, order model.BillOrder) (string, error) {
	return ps.print(ctx, "bill", model.Bill{BillOrder: order}, ps.renderOptions(true))
}

// PrintReport renders and prints a service report
func (ps *PrintService) PrintReport(ctx context.Context, summary model.ReportSummary) (string, error) {
	return ps.print(ctx, "report", model.Report{ReportSummary: summary}, ps.renderOptions(false))
}

// ProbePrinter reports whether the printer routed to category answers
// a status request.
func (ps *PrintService) ProbePrinter(ctx context.Context, category string) (bool, error) {
	return ps.sessions.Probe(ctx, ps.config.PrinterFor(category))
}

func (ps *PrintService) print(ctx context.Context, category string, doc model.Document, opts render.Options) (string, error) {
	payload, err := render.Render(doc, opts)
	if err != nil {
		return "", err
	}

	printerName := ps.config.PrinterFor(category)
	jobLogger := utils.NewPrintLogger(ps.logger.Logger, category)

	started := time.Now()
	err = ps.sessions.Submit(ctx, printerName, payload)
	jobLogger.LogJob(payload.Title, printerName, time.Since(started), err)
	if err != nil {
		return "", err
	}

	return payload.Title, nil
}

// renderOptions builds rendering options from configuration. The logo
// is only loaded for bill documents; a missing or unreadable logo file
// renders the bill without one.
func (ps *PrintService) renderOptions(withLogo bool) render.Options {
	opts := render.Options{
		Width:    ps.config.Printing.Width,
		Currency: ps.config.Printing.Currency,
	}

	if withLogo && ps.config.Printing.LogoPath != "" {
		opts.Logo = escpos.LoadLogo(ps.config.Printing.LogoPath, ps.config.Printing.MaxLogoWidthDots)
	}

	return opts
}
