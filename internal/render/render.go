// internal/render/render.go

// Package render assembles complete ESC/POS byte payloads for the four
// printable document kinds. Renderers are pure: they never touch the
// device and degrade locally (placeholder dates, omitted logo) instead
// of failing a whole document.
package render

import (
	"fmt"
	"time"

	"receipt-service/internal/escpos"
	"receipt-service/internal/model"
)

// Payload is an immutable byte sequence paired with a job title. It has
// no further mutation after construction.
type Payload struct {
	Title   string
	Content []byte
}

// Options carries the device-shaped rendering knobs. The zero value
// renders with the 48-column default width and the "R$" currency prefix.
type Options struct {
	Width    int
	Currency string

	// Logo is a pre-encoded raster image block printed at the top of
	// bills; nil means no logo.
	Logo []byte
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = escpos.DefaultWidth
	}
	if o.Currency == "" {
		o.Currency = "R$"
	}
	return o
}

// Render builds the payload for one document.
func Render(doc model.Document, opts Options) (Payload, error) {
	opts = opts.withDefaults()

	switch d := doc.(type) {
	case model.BarTicket:
		return renderTicket("bar", d.Order, opts), nil
	case model.KitchenTicket:
		return renderTicket("cozinha", d.Order, opts), nil
	case model.Bill:
		return renderBill(d.BillOrder, opts), nil
	case model.Report:
		return renderReport(d.ReportSummary, opts), nil
	default:
		return Payload{}, fmt.Errorf("unsupported document type: %T", doc)
	}
}

// timestampLayouts are tried in order when parsing inbound ISO-8601
// timestamps with optional fractional-second and zone suffixes.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Truncate(time.Second), true
		}
	}
	return time.Time{}, false
}

// formatTimestamp renders an order timestamp for bills and tickets. A
// malformed value degrades to the raw input instead of failing the
// render.
func formatTimestamp(raw string) string {
	t, ok := parseTimestamp(raw)
	if !ok {
		return raw
	}
	return t.Format("02-01-2006 15:04:05")
}
