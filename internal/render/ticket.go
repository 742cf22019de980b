// internal/render/ticket.go
package render

import (
	"bytes"
	"fmt"

	"receipt-service/internal/escpos"
	"receipt-service/internal/model"
)

// renderTicket builds a preparation-station ticket (bar or kitchen):
// header block, then one line per item with quantity and note. Tickets
// never carry monetary data.
func renderTicket(station string, order model.Order, opts Options) Payload {
	var buf bytes.Buffer

	buf.Write(escpos.Reset())
	buf.Write(escpos.AlignCenter())
	buf.Write(escpos.Text(escpos.SizeBig, fmt.Sprintf("# Pedido %d\n", order.ID)))
	buf.Write(escpos.Text(escpos.SizeSmall, fmt.Sprintf("Data: %s\n", formatTimestamp(order.Timestamp))))
	buf.Write(escpos.Text(escpos.SizeMedium, fmt.Sprintf("Mesa: %s\n", order.TableLabel())))
	buf.Write(escpos.Text(escpos.SizeSmall, fmt.Sprintf("Atendente: %s\n\n", order.Waiter)))

	buf.Write(escpos.AlignLeft())
	for _, line := range order.Lines {
		item := fmt.Sprintf("%s x %s", escpos.FormatQuantity(line.Quantity), line.Dish.Name)
		if line.Dish.Department != "" {
			item += fmt.Sprintf(" (%s)", line.Dish.Department)
		}
		buf.Write(escpos.Text(escpos.SizeMedium, item+"\n"))
		if line.Note != "" {
			buf.Write(escpos.Text(escpos.SizeSmall, fmt.Sprintf("  Obs: %s\n", line.Note)))
		}
	}

	if order.Note != "" {
		buf.Write(escpos.Text(escpos.SizeMedium, fmt.Sprintf("\nObs: %s\n", order.Note)))
	}

	buf.Write(escpos.Text(escpos.SizeSmall, "\n\n\n"))

	return Payload{
		Title:   fmt.Sprintf("%s_pedido_%d_mesa_%d", station, order.ID, order.TableNumber),
		Content: buf.Bytes(),
	}
}
