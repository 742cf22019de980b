package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"receipt-service/internal/model"
)

func sampleOrder() model.Order {
	return model.Order{
		ID:          812,
		Timestamp:   "2026-08-30T19:42:10",
		TableNumber: 7,
		Waiter:      "Ana",
		Lines: []model.OrderLine{
			{Dish: model.Dish{Name: "Caipirinha", Department: "bar"}, Quantity: 2},
			{Dish: model.Dish{Name: "Agua com gas", Department: "bar"}, Quantity: 1, Note: "sem gelo"},
		},
	}
}

func TestRenderBarTicket(t *testing.T) {
	payload, err := Render(model.BarTicket{Order: sampleOrder()}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "bar_pedido_812_mesa_7", payload.Title)

	content := string(payload.Content)
	assert.Contains(t, content, "# Pedido 812\n")
	assert.Contains(t, content, "Data: 30-08-2026 19:42:10\n")
	assert.Contains(t, content, "Mesa: 7\n")
	assert.Contains(t, content, "Atendente: Ana\n")
	assert.Contains(t, content, "2 x Caipirinha (bar)\n")
	assert.Contains(t, content, "1 x Agua com gas (bar)\n")
	assert.Contains(t, content, "  Obs: sem gelo\n")
	assert.True(t, strings.HasSuffix(content, "\n\n\n"))
}

func TestRenderKitchenTicketTitle(t *testing.T) {
	payload, err := Render(model.KitchenTicket{Order: sampleOrder()}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "cozinha_pedido_812_mesa_7", payload.Title)
}

func TestRenderTicketTakeoutTablePrefix(t *testing.T) {
	order := sampleOrder()
	order.IsOutside = true

	payload, err := Render(model.KitchenTicket{Order: order}, Options{})
	require.NoError(t, err)

	assert.Contains(t, string(payload.Content), "Mesa: R7\n")
	// The title keeps the numeric table number.
	assert.Equal(t, "cozinha_pedido_812_mesa_7", payload.Title)
}

func TestRenderTicketPreservesLineOrder(t *testing.T) {
	payload, err := Render(model.BarTicket{Order: sampleOrder()}, Options{})
	require.NoError(t, err)

	content := string(payload.Content)
	first := strings.Index(content, "Caipirinha")
	second := strings.Index(content, "Agua com gas")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestRenderTicketShowsDepartment(t *testing.T) {
	order := sampleOrder()
	order.Lines = []model.OrderLine{
		{Dish: model.Dish{Name: "Feijoada", Department: "cozinha"}, Quantity: 1},
	}

	payload, err := Render(model.BarTicket{Order: order}, Options{})
	require.NoError(t, err)

	assert.Contains(t, string(payload.Content), "1 x Feijoada (cozinha)\n")
}

func TestRenderTicketOmitsEmptyDepartment(t *testing.T) {
	order := sampleOrder()
	order.Lines = []model.OrderLine{
		{Dish: model.Dish{Name: "Feijoada"}, Quantity: 1},
	}

	payload, err := Render(model.KitchenTicket{Order: order}, Options{})
	require.NoError(t, err)

	content := string(payload.Content)
	assert.Contains(t, content, "1 x Feijoada\n")
	assert.NotContains(t, content, "()")
}

func TestRenderTicketOrderNote(t *testing.T) {
	order := sampleOrder()
	order.Note = "cliente com pressa"

	payload, err := Render(model.BarTicket{Order: order}, Options{})
	require.NoError(t, err)

	assert.Contains(t, string(payload.Content), "\nObs: cliente com pressa\n")
}

func TestRenderTicketMalformedTimestampPassesThrough(t *testing.T) {
	order := sampleOrder()
	order.Timestamp = "ontem de tarde"

	payload, err := Render(model.BarTicket{Order: order}, Options{})
	require.NoError(t, err)

	assert.Contains(t, string(payload.Content), "Data: ontem de tarde\n")
}

func TestRenderUnknownDocument(t *testing.T) {
	_, err := Render(nil, Options{})
	assert.Error(t, err)
}

func TestRenderTicketSanitizesAccents(t *testing.T) {
	order := sampleOrder()
	order.Lines[0].Dish.Name = "Pão de Queijo"

	payload, err := Render(model.KitchenTicket{Order: order}, Options{})
	require.NoError(t, err)

	content := string(payload.Content)
	assert.Contains(t, content, "Pao de Queijo")
	assert.NotContains(t, content, "Pão")
}
