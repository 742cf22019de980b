// internal/render/report.go
package render

import (
	"bytes"
	"fmt"
	"sort"

	"receipt-service/internal/escpos"
	"receipt-service/internal/model"
)

// weekdayLabels is indexed Monday-first.
var weekdayLabels = [7]string{
	"Segunda-feira",
	"Terca-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sabado",
	"Domingo",
}

// renderReport builds the periodic service report: centered title,
// period line, optional generation info, per-day breakdown in ascending
// date order and the aggregate total.
func renderReport(report model.ReportSummary, opts Options) Payload {
	startLabel := formatDateLabel(report.StartDate)
	endRaw := report.EndDate
	if endRaw == "" {
		endRaw = report.StartDate
	}
	endLabel := formatDateLabel(endRaw)
	if endLabel == "" {
		endLabel = startLabel
	}

	var periodLine string
	if startLabel == endLabel {
		if startLabel == "" {
			startLabel = "--"
		}
		periodLine = fmt.Sprintf("Periodo: %s", startLabel)
	} else {
		periodLine = fmt.Sprintf("Periodo: %s a %s", startLabel, endLabel)
	}

	entries := sortedBreakdown(report.DailyBreakdown)

	var buf bytes.Buffer

	buf.Write(escpos.Reset())
	buf.Write(escpos.AlignCenter())
	buf.Write(escpos.Text(escpos.SizeBig, "Relatorio de servico\n"))
	buf.Write(escpos.Text(escpos.SizeSmall, "\n"))

	buf.Write(escpos.AlignLeft())
	buf.Write(escpos.Text(escpos.SizeSmall, periodLine+"\n"))
	if printedAt := formatDateTimeLabel(report.PrintedAt); printedAt != "" {
		buf.Write(escpos.Text(escpos.SizeSmall, fmt.Sprintf("Gerado em: %s\n", printedAt)))
	}
	if report.PrintedBy != "" {
		buf.Write(escpos.Text(escpos.SizeSmall, fmt.Sprintf("Por: %s\n", report.PrintedBy)))
	}
	buf.Write(escpos.Text(escpos.SizeSmall, "\n"))

	if len(entries) == 0 {
		buf.Write(escpos.Text(escpos.SizeMedium, "Sem movimentacao no periodo.\n"))
		buf.Write(escpos.Text(escpos.SizeSmall, "\n"))
	} else {
		for _, entry := range entries {
			weekday, dayMonth := weekdayDayLabel(entry.Date)
			buf.Write(escpos.Text(escpos.SizeMedium,
				fmt.Sprintf("%s %s: %s\n", weekday, dayMonth,
					escpos.MoneyFloat(opts.Currency, entry.TotalAdditions))))
			buf.Write(escpos.Text(escpos.SizeSmall,
				fmt.Sprintf("Mesas atendidas: %d\n\n", entry.TableCount)))
		}
	}

	buf.Write(escpos.Text(escpos.SizeMedium,
		fmt.Sprintf("Total dos 10%% no periodo: %s\n",
			escpos.MoneyFloat(opts.Currency, report.TotalAdditions))))
	buf.WriteString("\n\n\n\n")

	return Payload{
		Title:   "relatorio_dashboard",
		Content: buf.Bytes(),
	}
}

// sortedBreakdown returns the entries in ascending date order without
// mutating the caller's slice. Entries missing a date sort first via
// their empty key.
func sortedBreakdown(entries []model.DailyEntry) []model.DailyEntry {
	sorted := make([]model.DailyEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}

// weekdayDayLabel resolves a breakdown date into its localized weekday
// name and DD/MM label, degrading to placeholders when unparseable.
func weekdayDayLabel(raw string) (string, string) {
	t, ok := parseTimestamp(raw)
	if !ok {
		return "--", "--/--"
	}
	return weekdayLabels[(int(t.Weekday())+6)%7], t.Format("02/01")
}

func formatDateLabel(raw string) string {
	if raw == "" {
		return ""
	}
	t, ok := parseTimestamp(raw)
	if !ok {
		return raw
	}
	return t.Format("02/01/2006")
}

func formatDateTimeLabel(raw string) string {
	if raw == "" {
		return ""
	}
	t, ok := parseTimestamp(raw)
	if !ok {
		return raw
	}
	return t.Format("02/01/2006 15:04")
}
