// internal/model/order.go
package model

import "strconv"

// Dish identifies a menu item and the preparation station handling it.
type Dish struct {
	Name       string  `json:"dish_name" binding:"required"`
	Department string  `json:"department"`
	Price      float64 `json:"price" binding:"gte=0"`
}

// OrderLine is one ordered dish with its quantity and optional note.
// UnitPrice is only meaningful for bill rendering.
type OrderLine struct {
	Dish      Dish    `json:"dish" binding:"required"`
	Quantity  float64 `json:"amount" binding:"gte=0"`
	Note      string  `json:"dish_note"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
}

// EffectiveUnitPrice resolves the price used for the line total: the
// explicit unit price, falling back to the dish default, then zero.
func (l OrderLine) EffectiveUnitPrice() float64 {
	if l.UnitPrice != 0 {
		return l.UnitPrice
	}
	return l.Dish.Price
}

// Order is one inbound order. Lines print in the order they arrive.
type Order struct {
	ID          int         `json:"id" binding:"required"`
	Timestamp   string      `json:"date_time" binding:"required"`
	TableNumber int         `json:"table_number" binding:"required"`
	Waiter      string      `json:"waiter" binding:"required"`
	Lines       []OrderLine `json:"order_dishes" binding:"required,dive"`
	Note        string      `json:"order_note"`
	IsOutside   bool        `json:"is_outside"`
}

// TableLabel renders the table number; takeout orders carry the "R"
// prefix that distinguishes them on the ticket.
func (o Order) TableLabel() string {
	if o.IsOutside {
		return "R" + strconv.Itoa(o.TableNumber)
	}
	return strconv.Itoa(o.TableNumber)
}

// BillOrder extends Order with merchant identity, fiscal fields and the
// pre-computed totals. Monetary values are trusted as validated upstream
// and are never re-derived here.
type BillOrder struct {
	Order

	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyCNPJ    string `json:"company_cnpj"`
	CompanyIE      string `json:"company_ie"`

	AccessKey        string `json:"access_key"`
	QRContent        string `json:"qr_number"`
	QRURL            string `json:"qr_url"`
	NFCeNumber       string `json:"nfce_number"`
	NFCeSeries       string `json:"nfce_series"`
	Protocol         string `json:"protocol"`
	ProtocolDateTime string `json:"protocol_datetime"`
	TotalTaxes       string `json:"total_taxes"`
	MD5Hash          string `json:"md5"`

	Subtotal   float64 `json:"total" binding:"gte=0"`
	ServiceFee float64 `json:"service" binding:"gte=0"`
	AmountDue  float64 `json:"amount_to_pay" binding:"gte=0"`
}

// DailyEntry is one day of the report breakdown.
type DailyEntry struct {
	Date           string  `json:"date"`
	TotalAdditions float64 `json:"total_additions"`
	TableCount     int     `json:"total_tables"`
}

// ReportSummary is the periodic service report record.
type ReportSummary struct {
	StartDate      string       `json:"start_date" binding:"required"`
	EndDate        string       `json:"end_date"`
	DailyBreakdown []DailyEntry `json:"daily_breakdown"`
	TotalAdditions float64      `json:"total_additions" binding:"gte=0"`
	PrintedAt      string       `json:"printed_at"`
	PrintedBy      string       `json:"printed_by"`
}
