// internal/render/bill.go
package render

import (
	"bytes"
	"fmt"

	"receipt-service/internal/escpos"
	"receipt-service/internal/model"
)

// defaultConsultURL is printed when the record carries no fiscal
// consultation URL.
const defaultConsultURL = "https://sat.ef.sc.gov.br/nfce/consulta"

// renderBill builds the customer bill: centered merchant header, order
// identification, itemized lines, totals block and the fiscal footer
// with the consultation QR code.
func renderBill(bill model.BillOrder, opts Options) Payload {
	dateTime := formatTimestamp(bill.Timestamp)
	qrURL := bill.QRURL
	if qrURL == "" {
		qrURL = defaultConsultURL
	}

	var buf bytes.Buffer

	buf.Write(escpos.Reset())
	buf.Write(escpos.AlignCenter())

	if opts.Logo != nil {
		buf.Write(opts.Logo)
		buf.Write(escpos.Text(escpos.SizeSmall, "\n"))
	}

	buf.Write(escpos.Text(escpos.SizeSmall, bill.CompanyName+"\n"))
	buf.Write(escpos.Text(escpos.SizeSmall, bill.CompanyAddress+"\n"))
	buf.Write(escpos.Text(escpos.SizeSmall,
		fmt.Sprintf("CNPJ: %s  IE: %s\n", bill.CompanyCNPJ, bill.CompanyIE)))
	buf.Write(escpos.Text(escpos.SizeSmall,
		"Documento Auxiliar da Nota Fiscal de Consumidor Eletronica\n\n"))

	buf.Write(escpos.Text(escpos.SizeMedium, fmt.Sprintf("# Conta %d\n", bill.ID)))
	buf.Write(escpos.Text(escpos.SizeSmall, fmt.Sprintf("Data: %s\n", dateTime)))
	buf.Write(escpos.Text(escpos.SizeSmall, fmt.Sprintf("Mesa: %s\n", bill.TableLabel())))
	buf.Write(escpos.Text(escpos.SizeSmall, fmt.Sprintf("Atendente: %s\n\n", bill.Waiter)))

	buf.Write(escpos.AlignLeft())
	for _, line := range bill.Lines {
		buf.Write(escpos.BillItemLine(
			line.Dish.Name, line.Quantity, line.EffectiveUnitPrice(),
			opts.Width, opts.Currency))
	}

	buf.Write(escpos.Text(escpos.SizeMedium, "--------------------\n"))
	buf.Write(escpos.Text(escpos.SizeMedium,
		fmt.Sprintf("Valor total da conta: %s\n", escpos.MoneyFloat(opts.Currency, bill.Subtotal))))
	buf.Write(escpos.Text(escpos.SizeMedium,
		fmt.Sprintf("Servico: %s\n", escpos.MoneyFloat(opts.Currency, bill.ServiceFee))))
	buf.Write(escpos.Text(escpos.SizeBig,
		fmt.Sprintf("Valor a Pagar: %s\n", escpos.MoneyFloat(opts.Currency, bill.AmountDue))))

	buf.Write(escpos.AlignCenter())
	buf.Write(escpos.Text(escpos.SizeSmall, "\nConsulte pela chave de acesso em\n"))
	buf.Write(escpos.Text(escpos.SizeSmall, qrURL+"\n"))
	if bill.AccessKey != "" {
		buf.Write(escpos.Text(escpos.SizeSmall, bill.AccessKey+"\n"))
	}
	buf.Write(escpos.Text(escpos.SizeSmall, "CONSUMIDOR NAO IDENTIFICADO\n\n"))

	buf.Write(escpos.Text(escpos.SizeSmall,
		fmt.Sprintf("NFC-e n %s Serie %s data emissao %s\n", bill.NFCeNumber, bill.NFCeSeries, dateTime)))
	buf.Write(escpos.Text(escpos.SizeSmall,
		fmt.Sprintf("Protocolo de Autorizacao: %s\n", bill.Protocol)))
	if bill.ProtocolDateTime != "" {
		buf.Write(escpos.Text(escpos.SizeSmall,
			fmt.Sprintf("Data Autorizacao %s\n", bill.ProtocolDateTime)))
	}

	buf.Write(escpos.Text(escpos.SizeSmall, "\n"))
	if qr := bill.QRContent; qr != "" {
		buf.Write(escpos.QRBlock(qr))
	} else {
		buf.Write(escpos.QRBlock(qrURL))
	}
	buf.Write(escpos.Text(escpos.SizeSmall, "\n"))

	if bill.TotalTaxes != "" {
		buf.Write(escpos.Text(escpos.SizeSmall,
			fmt.Sprintf("Tributos Totais Incidentes (Lei Federal 12.741/2012): %s\n", bill.TotalTaxes)))
	}
	if bill.MD5Hash != "" {
		buf.Write(escpos.Text(escpos.SizeSmall, fmt.Sprintf("MD5: %s\n", bill.MD5Hash)))
	}

	buf.Write(escpos.Text(escpos.SizeSmall, "\n\n\n"))

	return Payload{
		Title:   fmt.Sprintf("conta_%d_mesa_%d", bill.ID, bill.TableNumber),
		Content: buf.Bytes(),
	}
}
