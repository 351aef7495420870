package render

import (
	"fmt"
	"strings"

	"fishers/internal/domain/service"
	"fishers/internal/util"

	"github.com/pkg/errors"
)

const (
	receiptBoxHeight = 165.0
	receiptLabelW    = 52.0
	receiptRowH      = 7.0
	receiptQRSize    = 24.0
)

// RenderReceipt prints a single page payment receipt inside a framed box.
func (r *pdfRenderer) RenderReceipt(data *service.ReceiptData) ([]byte, error) {
	if data == nil || data.Dues == nil || data.Member == nil {
		return nil, errors.New("receipt data is incomplete")
	}
	if !data.Dues.IsPaid() || data.Dues.PaymentDate == nil {
		return nil, errors.New("receipt requires a paid dues record")
	}

	doc := newDocument()
	pdf := doc.pdf
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	boxX, boxY := pageMargin, pageMargin
	boxW := pageW - 2*pageMargin
	innerX := boxX + 8

	pdf.SetLineWidth(0.3)
	pdf.Rect(boxX, boxY, boxW, receiptBoxHeight, "D")

	doc.image(data.Logo, boxX+boxW-38, boxY+4, 32, 18)

	// Association header
	pdf.SetY(boxY + 8)
	doc.font("B", 14)
	doc.text(boxX, boxW, 6, strings.ToUpper(associationName(data.Association)), "C")
	doc.font("", 9)
	doc.text(boxX, boxW, 5, contactLine(data.Association), "C")
	doc.text(boxX, boxW, 5, addressLine(data.Association), "C")

	pdf.Ln(5)
	doc.font("B", 16)
	title := "RECIBO DE PAGAMENTO"
	if data.Dues.ReceiptNumber != nil {
		title += fmt.Sprintf(" Nº %d", *data.Dues.ReceiptNumber)
	}
	doc.text(boxX, boxW, 8, title, "C")
	pdf.Ln(5)

	row := func(label, value string) {
		pdf.SetX(innerX)
		doc.font("B", 11)
		pdf.CellFormat(receiptLabelW, receiptRowH, doc.tr(label), "", 0, "L", false, 0, "")
		doc.font("", 11)
		pdf.CellFormat(boxW-receiptLabelW-16, receiptRowH, doc.tr(value), "", 1, "L", false, 0, "")
	}

	row("Recebemos de:", data.Member.Name)
	row("CPF:", data.Member.NationalID)
	row("RGP:", data.Member.RegistrationNumber)
	row("Competência:", data.Dues.CompetencyLabel())
	row("Valor:", util.FormatBRL(data.Dues.Amount))
	row("Data do pagamento:", util.FormatDate(*data.Dues.PaymentDate))
	if data.Dues.PaymentMethod != "" {
		row("Forma de pagamento:", data.Dues.PaymentMethod)
	}
	if data.Dues.Note != "" {
		row("Observações:", data.Dues.Note)
	}

	boxBottom := boxY + receiptBoxHeight
	doc.image(data.QRCode, boxX+boxW-receiptQRSize-8, boxBottom-receiptQRSize-8, receiptQRSize, receiptQRSize)

	// Signature
	centerX := boxX + boxW/2
	sigY := boxBottom - 42
	doc.image(data.Signature, centerX-21, sigY-14, 42, 12)
	pdf.Line(centerX-39, sigY, centerX+39, sigY)

	signer := "Assinatura do responsável"
	if data.Association != nil && data.Association.President != "" {
		signer = data.Association.President + " - Presidente"
	}
	pdf.SetY(sigY + 1)
	doc.font("", 10)
	doc.text(boxX, boxW, 5, signer, "C")

	// Authenticity and issue date
	number := "-"
	if data.Dues.ReceiptNumber != nil {
		number = fmt.Sprint(*data.Dues.ReceiptNumber)
	}
	pdf.SetY(boxBottom - 26)
	doc.font("", 9)
	doc.text(boxX, boxW, 5, fmt.Sprintf("Recibo Nº %s • Token %s", number, orDash(data.Dues.ReceiptToken)), "C")
	doc.text(boxX, boxW, 5, "Emitido em "+util.FormatDate(data.IssuedAt), "C")

	return doc.bytes()
}
