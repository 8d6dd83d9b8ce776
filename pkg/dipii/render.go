package dipii

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
)

/*
 * All layout values are in mm on a letter page (215.9 × 279.4).
 */

const (
	fontFamily = "Helvetica"
	logoName   = "logo"
	qrName     = "qr"
)

type Renderer struct {
	cfg      Config
	logo     []byte
	logoType string
}

func NewRenderer(cfg Config) (*Renderer, error) {
	def := NewDefaultConfig()
	if cfg.LabelColumns <= 0 {
		cfg.LabelColumns = def.LabelColumns
	}
	if cfg.LabelRows <= 0 {
		cfg.LabelRows = def.LabelRows
	}

	logo, logoType, err := loadLogo(cfg.LogoPath)
	if err != nil {
		return nil, err
	}

	return &Renderer{cfg: cfg, logo: logo, logoType: logoType}, nil
}

func (r *Renderer) Config() Config {
	return r.cfg
}

func loadLogo(path string) ([]byte, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, imageType(path), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("failed to read logo %s: %w", path, err)
		}
	}

	data, err := DrawLogo()
	if err != nil {
		return nil, "", err
	}
	return data, "PNG", nil
}

func imageType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "JPG"
	case ".gif":
		return "GIF"
	default:
		return "PNG"
	}
}

// CertificateDownloadURL is the link encoded in a certificate QR code.
func CertificateDownloadURL(publicURL string, id uint) string {
	return fmt.Sprintf("%s/api/v1/certificates/%d/download", strings.TrimRight(publicURL, "/"), id)
}

func (r *Renderer) newDocument(title string) (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle(title, true)
	pdf.SetAuthor(CompanyLine1, true)
	pdf.SetCreator("DIPII", true)

	pdf.RegisterImageOptionsReader(logoName, fpdf.ImageOptions{ImageType: r.logoType}, bytes.NewReader(r.logo))

	// core fonts are cp1252, product names carry Ñ and sensory text carries accents
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	return pdf, tr
}

func (r *Renderer) drawLogo(pdf *fpdf.Fpdf, x, y, size float64) {
	pdf.ImageOptions(logoName, x, y, size, size, false, fpdf.ImageOptions{ImageType: r.logoType}, 0, "")
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderCertificate lays out the one-page quality certificate of a batch.
func (r *Renderer) RenderCertificate(c Certificate) ([]byte, error) {
	pdf, tr := r.newDocument(fmt.Sprintf("Certificado %d", c.ID))
	pdf.SetMargins(20, 15, 20)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 40

	// header
	r.drawLogo(pdf, 20, 15, 28)
	pdf.SetXY(52, 18)
	pdf.SetFont(fontFamily, "B", 13)
	pdf.CellFormat(contentW-32, 7, tr(CompanyLine1), "", 2, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 11)
	pdf.CellFormat(contentW-32, 6, tr(CompanyLine2), "", 2, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 9)
	pdf.CellFormat(contentW-32, 6, tr(fmt.Sprintf("Certificado N° %d", c.ID)), "", 2, "L", false, 0, "")

	pdf.SetXY(20, 50)
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(contentW, 10, tr("CERTIFICADO DE CALIDAD"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	labelW := contentW * 0.45
	valueW := contentW - labelW
	row := func(label, value string) {
		pdf.SetFont(fontFamily, "B", 10)
		pdf.SetFillColor(232, 245, 233)
		pdf.CellFormat(labelW, 8, tr(label), "1", 0, "L", true, 0, "")
		pdf.SetFont(fontFamily, "", 10)
		pdf.CellFormat(valueW, 8, tr(value), "1", 1, "L", false, 0, "")
	}

	row("Fecha de elaboración", FormatDisplayDate(c.ElaboratedOn))
	row("Producto", NormalizeProduct(c.Product))
	row("Origen del cultivo", c.CropOrigin)
	row("Número de batch", fmt.Sprintf("%d", c.BatchNumber))
	row("Cantidad de cubetas", fmt.Sprintf("%d", c.CubetteCount))
	row("Peso por cubeta", FormatWeight(c.WeightPerCubette)+" kg")
	row("Kilogramos totales", c.TotalKilograms.StringFixed(3)+" kg")

	pdf.Ln(8)
	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(contentW, 8, tr("CARACTERÍSTICAS ORGANOLÉPTICAS"), "", 1, "L", false, 0, "")
	row("Color", c.Color)
	row("Olor", c.Odor)
	row("Apariencia", c.Appearance)
	row("Sabor", c.Flavor)

	// signature block
	signY := pageH - 60
	pdf.Line(20, signY, 90, signY)
	pdf.SetXY(20, signY+1)
	pdf.SetFont(fontFamily, "", 9)
	pdf.CellFormat(70, 5, tr("Control de calidad"), "", 0, "C", false, 0, "")

	if r.cfg.PublicURL != "" && c.ID != 0 {
		qr, err := GenerateQRCode(CertificateDownloadURL(r.cfg.PublicURL, c.ID), 256)
		if err != nil {
			return nil, err
		}
		pdf.RegisterImageOptionsReader(qrName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qr))
		pdf.ImageOptions(qrName, pageW-20-30, signY-25, 30, 30, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	return output(pdf)
}

// RenderLabels lays out every label of the batch as cards on a letter grid.
func (r *Renderer) RenderLabels(b LabelBatch) ([]byte, error) {
	labels := BuildLabels(b)
	if len(labels) == 0 {
		return nil, ErrInvalidLabelCount
	}

	pdf, tr := r.newDocument(fmt.Sprintf("Lote de etiquetas %d", b.ID))
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	const margin, gap = 10.0, 4.0
	cols, rows := r.cfg.LabelColumns, r.cfg.LabelRows
	pageW, pageH := pdf.GetPageSize()
	cardW := (pageW - 2*margin - float64(cols-1)*gap) / float64(cols)
	cardH := (pageH - 2*margin - float64(rows-1)*gap) / float64(rows)

	perPage := r.cfg.labelsPerPage()
	for i, l := range labels {
		slot := i % perPage
		if slot == 0 {
			pdf.AddPage()
		}

		x := margin + float64(slot%cols)*(cardW+gap)
		y := margin + float64(slot/cols)*(cardH+gap)
		r.drawLabel(pdf, tr, l, x, y, cardW, cardH)
	}

	return output(pdf)
}

func (r *Renderer) drawLabel(pdf *fpdf.Fpdf, tr func(string) string, l Label, x, y, w, h float64) {
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.3)
	pdf.Rect(x, y, w, h, "D")

	// vertical rhythm is relative to the card so other grids still fit
	unit := h / 10
	logoSize := unit * 3.4
	r.drawLogo(pdf, x+2, y+2, logoSize)

	textX := x + 4 + logoSize
	textW := w - 6 - logoSize

	pdf.SetFont(fontFamily, "B", 8)
	pdf.SetXY(textX, y+unit*0.6)
	pdf.CellFormat(textW, unit*1.2, tr(l.CompanyLine1), "", 2, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 8)
	pdf.CellFormat(textW, unit*1.2, tr(l.CompanyLine2), "", 2, "L", false, 0, "")

	pdf.SetFont(fontFamily, "B", 13)
	pdf.SetXY(x+2, y+unit*4)
	pdf.CellFormat(w-4, unit*1.8, tr(l.Product), "", 2, "C", false, 0, "")

	pdf.SetFont(fontFamily, "", 9)
	half := (w - 4) / 2
	pdf.SetXY(x+2, y+unit*6)
	pdf.CellFormat(half, unit*1.4, tr("Elab: "+l.ElaboratedOn), "", 0, "L", false, 0, "")
	pdf.CellFormat(half, unit*1.4, tr("Ven: "+l.ExpiresOn), "", 0, "R", false, 0, "")

	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetXY(x+2, y+unit*7.8)
	pdf.CellFormat(half, unit*1.6, tr("Peso: "+l.Weight), "", 0, "L", false, 0, "")
	pdf.CellFormat(half, unit*1.6, tr(fmt.Sprintf("N° %06d", l.Number)), "", 0, "R", false, 0, "")
}
