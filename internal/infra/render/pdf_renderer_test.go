package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"fishers/internal/domain/entity"
	"fishers/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := range 40 {
		img.Set(x, 10, color.Black)
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func paidDues() *entity.DuesRecord {
	number := int64(42)
	paidAt := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	return &entity.DuesRecord{
		Competency:    entity.NewCompetency(2024, time.March),
		Amount:        decimal.RequireFromString("1234.50"),
		Status:        entity.DuesStatusPaid,
		PaymentDate:   &paidAt,
		PaymentMethod: "PIX",
		Note:          "Pagamento em dia",
		ReceiptNumber: &number,
		ReceiptToken:  "0123456789abcdef",
	}
}

func testMember() *entity.Member {
	return &entity.Member{
		Name:               "José Ribamar",
		NationalID:         "529.982.247-25",
		RegistrationNumber: "SC-0001",
		AssociatedAt:       time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRenderReceipt(t *testing.T) {
	renderer := NewPDFRenderer()

	out, err := renderer.RenderReceipt(&service.ReceiptData{
		Association: &entity.AssociationProfile{Name: "Colônia Z-14", President: "Maria", TaxID: "11.222.333/0001-81"},
		Logo:        testPNG(t),
		Signature:   testPNG(t),
		Member:      testMember(),
		Dues:        paidDues(),
		VerifyURL:   "http://localhost/receipts/42/verify?t=0123456789abcdef",
		QRCode:      testPNG(t),
		IssuedAt:    time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderReceipt_SkipsUnreadableImages(t *testing.T) {
	out, err := NewPDFRenderer().RenderReceipt(&service.ReceiptData{
		Logo:     []byte("not an image"),
		Member:   testMember(),
		Dues:     paidDues(),
		IssuedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderReceipt_RequiresPaidRecord(t *testing.T) {
	dues := paidDues()
	dues.Status = entity.DuesStatusPending

	_, err := NewPDFRenderer().RenderReceipt(&service.ReceiptData{Member: testMember(), Dues: dues})
	assert.Error(t, err)

	_, err = NewPDFRenderer().RenderReceipt(nil)
	assert.Error(t, err)
}

func TestRenderDossier_ManyPages(t *testing.T) {
	uploaded := time.Date(2024, time.January, 5, 14, 30, 0, 0, time.UTC)
	checklist := make([]*entity.BenefitChecklistItem, 0, len(entity.BenefitRequiredDocuments))
	for i, docType := range entity.BenefitRequiredDocuments {
		item := &entity.BenefitChecklistItem{Type: docType, Label: docType.Label(), Satisfied: i%2 == 0}
		if item.Satisfied {
			item.UploadedAt = &uploaded
		}
		checklist = append(checklist, item)
	}

	dues := make([]*entity.DuesRecord, 0, 60)
	for i := range 60 {
		record := paidDues()
		record.Competency = entity.NewCompetency(2024, time.Month(i%12+1))
		dues = append(dues, record)
	}

	out, err := NewPDFRenderer().RenderDossier(&service.DossierData{
		Association: &entity.AssociationProfile{Name: "Colônia Z-14"},
		Logo:        testPNG(t),
		Member:      testMember(),
		Evaluation: &entity.BenefitEvaluation{
			Year:      2024,
			PaidCount: 12,
			DuesOK:    true,
			Checklist: checklist,
		},
		Documents: []*entity.Document{{Type: entity.DocumentTypePhoto, FileName: "foto.jpg", Size: 2048}},
		Dues:      dues,
		IssuedAt:  time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.False(t, bytes.Contains(out, []byte("/Count 1\n")), "long dues lists must flow onto more pages")
}

func TestRenderDossier_Incomplete(t *testing.T) {
	_, err := NewPDFRenderer().RenderDossier(&service.DossierData{Member: testMember()})
	assert.Error(t, err)
}
