// Package render produces the printable PDF documents of the association.
package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // logo and signature uploads
	_ "image/png"
	"strings"

	"fishers/internal/domain/entity"
	"fishers/internal/domain/service"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	fontFamily         = "Helvetica"
	defaultAssociation = "Associação"
	pageMargin         = 20.0
)

type pdfRenderer struct{}

// NewPDFRenderer returns a DocumentRenderer backed by fpdf.
func NewPDFRenderer() service.DocumentRenderer {
	return &pdfRenderer{}
}

// document bundles an fpdf instance with its cp1252 translator so that
// accented Portuguese text renders with the core fonts.
type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	img int
}

func newDocument() *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	return &document{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (d *document) font(style string, size float64) {
	d.pdf.SetFont(fontFamily, style, size)
}

func (d *document) text(x, w, h float64, txt, align string) {
	d.pdf.SetX(x)
	d.pdf.CellFormat(w, h, d.tr(txt), "", 1, align, false, 0, "")
}

// image draws raw PNG or JPEG bytes inside the w x h box anchored at x, y,
// preserving the aspect ratio. Unreadable images are skipped.
func (d *document) image(data []byte, x, y, w, h float64) {
	if len(data) == 0 {
		return
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		return
	}

	imageType := "PNG"
	if format == "jpeg" {
		imageType = "JPG"
	} else if format != "png" {
		return
	}

	ratio := min(w/float64(cfg.Width), h/float64(cfg.Height))
	dw, dh := float64(cfg.Width)*ratio, float64(cfg.Height)*ratio

	d.img++
	name := fmt.Sprintf("img%d", d.img)
	opts := fpdf.ImageOptions{ImageType: imageType}
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	d.pdf.ImageOptions(name, x+(w-dw)/2, y+(h-dh)/2, dw, dh, false, opts, 0, "")
}

func (d *document) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write pdf")
	}

	return buf.Bytes(), nil
}

func associationName(profile *entity.AssociationProfile) string {
	if profile == nil || strings.TrimSpace(profile.Name) == "" {
		return defaultAssociation
	}

	return profile.Name
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}

	return s
}

func contactLine(profile *entity.AssociationProfile) string {
	if profile == nil {
		return "CNPJ: -  |  Tel: -  |  Email: -"
	}

	return fmt.Sprintf("CNPJ: %s  |  Tel: %s  |  Email: %s",
		orDash(profile.TaxID), orDash(profile.Phone), orDash(profile.Email))
}

func addressLine(profile *entity.AssociationProfile) string {
	if profile == nil {
		return "End.: -"
	}

	return strings.TrimSpace(fmt.Sprintf("End.: %s - %s/%s %s",
		orDash(profile.Street), profile.City, profile.State, profile.PostalCode))
}
