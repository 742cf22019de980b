// internal/model/document.go
package model

// DocumentKind tags the four printable document variants.
type DocumentKind string

const (
	DocumentBar     DocumentKind = "BAR"
	DocumentKitchen DocumentKind = "KITCHEN"
	DocumentBill    DocumentKind = "BILL"
	DocumentReport  DocumentKind = "REPORT"
)

// Document is the tagged variant handed to the renderer dispatch. Each
// variant carries its own record type.
type Document interface {
	Kind() DocumentKind
}

// BarTicket is an order destined for the bar station printer.
type BarTicket struct {
	Order
}

func (BarTicket) Kind() DocumentKind { return DocumentBar }

// KitchenTicket is an order destined for the kitchen station printer.
type KitchenTicket struct {
	Order
}

func (KitchenTicket) Kind() DocumentKind { return DocumentKitchen }

// Bill is a customer-facing bill/invoice.
type Bill struct {
	BillOrder
}

func (Bill) Kind() DocumentKind { return DocumentBill }

// Report is a periodic service report.
type Report struct {
	ReportSummary
}

func (Report) Kind() DocumentKind { return DocumentReport }
