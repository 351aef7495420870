package render

import (
	"fmt"

	"fishers/internal/domain/entity"
	"fishers/internal/domain/service"
	"fishers/internal/util"

	"github.com/pkg/errors"
)

const dossierLineH = 6.0

func okOrPending(ok bool) string {
	if ok {
		return "OK"
	}

	return "PENDENTE"
}

// RenderDossier prints the seasonal benefit dossier; long lists flow onto new pages.
func (r *pdfRenderer) RenderDossier(data *service.DossierData) ([]byte, error) {
	if data == nil || data.Member == nil || data.Evaluation == nil {
		return nil, errors.New("dossier data is incomplete")
	}

	doc := newDocument()
	pdf := doc.pdf
	issued := "Emitido em " + util.FormatDate(data.IssuedAt)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		doc.font("", 9)
		pdf.CellFormat(0, 5, doc.tr(fmt.Sprintf("Página %d", pdf.PageNo())), "", 0, "L", false, 0, "")
		pdf.SetX(pageMargin)
		pdf.CellFormat(0, 5, doc.tr(issued), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*pageMargin

	// Cover header
	pdf.Rect(pageMargin, pageMargin, contentW, 32, "D")
	doc.image(data.Logo, pageW-pageMargin-42, pageMargin+3, 38, 26)
	pdf.SetY(pageMargin + 4)
	doc.font("B", 16)
	doc.text(pageMargin+4, contentW-50, 8, associationName(data.Association), "L")
	doc.font("", 10)
	president := "-"
	if data.Association != nil {
		president = orDash(data.Association.President)
	}
	doc.text(pageMargin+4, contentW-50, 6, "Presidente: "+president, "L")
	doc.text(pageMargin+4, contentW-50, 6, contactLine(data.Association), "L")

	pdf.SetY(pageMargin + 42)
	doc.font("B", 18)
	doc.text(pageMargin, contentW, 10, "DOSSIÊ DO SEGURO DEFESO", "C")
	pdf.Ln(4)

	// Member identification
	doc.font("", 12)
	doc.text(pageMargin, contentW, dossierLineH, "Pescador: "+data.Member.Name, "L")
	doc.text(pageMargin, contentW, dossierLineH,
		fmt.Sprintf("CPF: %s   RGP: %s", data.Member.NationalID, data.Member.RegistrationNumber), "L")
	doc.text(pageMargin, contentW, dossierLineH, "Data de Associação: "+util.FormatDate(data.Member.AssociatedAt), "L")

	eval := data.Evaluation
	section := func(title string) {
		pdf.Ln(5)
		doc.font("B", 13)
		doc.text(pageMargin, contentW, 7, title, "L")
		doc.font("", 12)
	}

	section("Checklist")
	doc.text(pageMargin+4, contentW-4, dossierLineH, fmt.Sprintf("Mensalidades pagas em %d: %d/%d - %s",
		eval.Year, eval.PaidCount, entity.RequiredPaidMonths, okOrPending(eval.DuesOK)), "L")
	doc.text(pageMargin+4, contentW-4, dossierLineH, "Documentos obrigatórios: "+okOrPending(eval.DocumentsOK), "L")

	section("Documentos Obrigatórios")
	for _, item := range eval.Checklist {
		line := fmt.Sprintf("- %s: FALTANDO", item.Label)
		if item.Satisfied {
			line = fmt.Sprintf("- %s: OK", item.Label)
			if item.UploadedAt != nil {
				line += " (enviado em " + item.UploadedAt.Format("02/01/2006 15:04") + ")"
			}
		}
		doc.text(pageMargin+4, contentW-4, dossierLineH, line, "L")
	}

	if len(data.Documents) > 0 {
		section("Arquivos Enviados")
		for _, document := range data.Documents {
			doc.text(pageMargin+4, contentW-4, dossierLineH, fmt.Sprintf("- %s | %s | %s",
				document.Type.Label(), document.FileName, util.FormatBytes(document.Size)), "L")
		}
	}

	section(fmt.Sprintf("Mensalidades %d", eval.Year))
	if len(data.Dues) == 0 {
		doc.text(pageMargin+4, contentW-4, dossierLineH, "Nenhuma mensalidade lançada.", "L")
	}
	for _, dues := range data.Dues {
		line := fmt.Sprintf("- %s | %s | Valor: %s", dues.CompetencyLabel(), dues.Status.Label(), util.FormatBRL(dues.Amount))
		if dues.PaymentDate != nil {
			line += " | Pago em " + util.FormatDate(*dues.PaymentDate)
		}
		doc.text(pageMargin+4, contentW-4, dossierLineH, line, "L")
	}

	return doc.bytes()
}
