package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"receipt-service/internal/model"
)

func sampleReport() model.ReportSummary {
	return model.ReportSummary{
		StartDate: "2026-08-24",
		EndDate:   "2026-08-30",
		DailyBreakdown: []model.DailyEntry{
			{Date: "2026-08-26", TotalAdditions: 180.4, TableCount: 12},
			{Date: "2026-08-24", TotalAdditions: 93.0, TableCount: 7},
		},
		TotalAdditions: 273.4,
		PrintedAt:      "2026-08-31T08:00:00",
		PrintedBy:      "Carla",
	}
}

func TestRenderReportPeriodRange(t *testing.T) {
	payload, err := Render(model.Report{ReportSummary: sampleReport()}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "relatorio_dashboard", payload.Title)

	content := string(payload.Content)
	assert.Contains(t, content, "Relatorio de servico\n")
	assert.Contains(t, content, "Periodo: 24/08/2026 a 30/08/2026\n")
	assert.Contains(t, content, "Gerado em: 31/08/2026 08:00\n")
	assert.Contains(t, content, "Por: Carla\n")
}

func TestRenderReportSingleDatePeriod(t *testing.T) {
	report := sampleReport()
	report.EndDate = report.StartDate

	payload, err := Render(model.Report{ReportSummary: report}, Options{})
	require.NoError(t, err)

	content := string(payload.Content)
	assert.Contains(t, content, "Periodo: 24/08/2026\n")
	assert.NotContains(t, content, " a 24/08/2026")
}

func TestRenderReportEmptyEndDateCollapses(t *testing.T) {
	report := sampleReport()
	report.EndDate = ""

	payload, err := Render(model.Report{ReportSummary: report}, Options{})
	require.NoError(t, err)

	assert.Contains(t, string(payload.Content), "Periodo: 24/08/2026\n")
}

func TestRenderReportBreakdownSortedAscending(t *testing.T) {
	payload, err := Render(model.Report{ReportSummary: sampleReport()}, Options{})
	require.NoError(t, err)

	content := string(payload.Content)
	// 24/08 is Monday, 26/08 is Wednesday in 2026.
	first := strings.Index(content, "Segunda-feira 24/08: R$ 93.00")
	second := strings.Index(content, "Quarta-feira 26/08: R$ 180.40")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)

	assert.Contains(t, content, "Mesas atendidas: 7\n")
	assert.Contains(t, content, "Mesas atendidas: 12\n")
	assert.Contains(t, content, "Total dos 10% no periodo: R$ 273.40\n")
}

func TestRenderReportMissingDateSortsFirst(t *testing.T) {
	report := sampleReport()
	report.DailyBreakdown = append(report.DailyBreakdown,
		model.DailyEntry{Date: "", TotalAdditions: 10, TableCount: 1})

	payload, err := Render(model.Report{ReportSummary: report}, Options{})
	require.NoError(t, err)

	content := string(payload.Content)
	placeholder := strings.Index(content, "-- --/--: R$ 10.00")
	dated := strings.Index(content, "Segunda-feira 24/08")
	require.NotEqual(t, -1, placeholder)
	require.NotEqual(t, -1, dated)
	assert.Less(t, placeholder, dated)
}

func TestRenderReportDoesNotMutateInput(t *testing.T) {
	report := sampleReport()
	original := make([]model.DailyEntry, len(report.DailyBreakdown))
	copy(original, report.DailyBreakdown)

	_, err := Render(model.Report{ReportSummary: report}, Options{})
	require.NoError(t, err)

	assert.Equal(t, original, report.DailyBreakdown)
}

func TestRenderReportNoActivity(t *testing.T) {
	report := sampleReport()
	report.DailyBreakdown = nil
	report.TotalAdditions = 0

	payload, err := Render(model.Report{ReportSummary: report}, Options{})
	require.NoError(t, err)

	content := string(payload.Content)
	assert.Contains(t, content, "Sem movimentacao no periodo.\n")
	assert.Contains(t, content, "Total dos 10% no periodo: R$ 0.00\n")
}

func TestRenderReportUnparsableDatesDegrade(t *testing.T) {
	report := sampleReport()
	report.StartDate = "semana passada"
	report.EndDate = ""
	report.DailyBreakdown = []model.DailyEntry{
		{Date: "dia ruim", TotalAdditions: 42, TableCount: 3},
	}

	payload, err := Render(model.Report{ReportSummary: report}, Options{})
	require.NoError(t, err)

	content := string(payload.Content)
	assert.Contains(t, content, "Periodo: semana passada\n")
	assert.Contains(t, content, "-- --/--: R$ 42.00\n")
}
