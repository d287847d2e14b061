package render

import (
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"
)

const fontFamily = "Helvetica"

// dingbats maps the banner glyphs to their closest ZapfDingbats character,
// since the core fonts carry no pictographs.
var dingbats = map[string]string{
	"✈": "(", // airplane
	"🏨": "H", // star
	"⏰": "l", // filled circle
	"🚗": "u", // diamond
	"📅": ")", // envelope
}

// cp1252Fallbacks spells out characters the core fonts cannot encode.
var cp1252Fallbacks = strings.NewReplacer(currencyGlyph, "Rs.")

// PDFCanvas is a Canvas backed by gofpdf: A4 portrait, millimetres, Helvetica.
type PDFCanvas struct {
	pdf      *gofpdf.Fpdf
	tr       func(string) string
	fontSize float64
	// staleFont is set after SetPage: the font operator must be re-emitted into
	// the revisited page's content stream before any text is drawn.
	staleFont bool
}

// NewPDFCanvas returns an empty document configured from opts.
func NewPDFCanvas(opts Options) (Canvas, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(opts.Compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(opts.DocumentDate)
	pdf.SetModificationDate(opts.DocumentDate)
	pdf.SetCreator(opts.Brand.Name, false)
	pdf.SetAuthor(opts.Brand.Company, false)
	pdf.SetFont(fontFamily, "", 12)
	if err := pdf.Error(); err != nil {
		return nil, err
	}
	return &PDFCanvas{
		pdf:      pdf,
		tr:       pdf.UnicodeTranslatorFromDescriptor(""),
		fontSize: 12,
	}, nil
}

func (c *PDFCanvas) AddPage() { c.pdf.AddPage() }

func (c *PDFCanvas) SetPage(n int) {
	c.pdf.SetPage(n)
	c.staleFont = true
}

func (c *PDFCanvas) PageCount() int { return c.pdf.PageCount() }

func (c *PDFCanvas) PageSize() (float64, float64) { return c.pdf.GetPageSize() }

func (c *PDFCanvas) SetInfo(title, subject string) {
	c.pdf.SetTitle(title, true)
	c.pdf.SetSubject(subject, true)
}

func (c *PDFCanvas) SetFontSize(size float64) {
	if c.staleFont {
		// gofpdf skips Tf when the size is unchanged; force a change first.
		c.pdf.SetFontSize(size + 1)
		c.staleFont = false
	}
	c.fontSize = size
	c.pdf.SetFontSize(size)
}

func (c *PDFCanvas) SetTextColor(col Color) { c.pdf.SetTextColor(col.R, col.G, col.B) }
func (c *PDFCanvas) SetFillColor(col Color) { c.pdf.SetFillColor(col.R, col.G, col.B) }
func (c *PDFCanvas) SetDrawColor(col Color) { c.pdf.SetDrawColor(col.R, col.G, col.B) }

func (c *PDFCanvas) Text(x, y float64, s string, align Align) {
	if d, ok := dingbats[s]; ok {
		c.pdf.SetFont("ZapfDingbats", "", c.fontSize)
		c.text(x, y, d, align)
		c.pdf.SetFont(fontFamily, "", c.fontSize)
		return
	}
	c.text(x, y, c.tr(cp1252Fallbacks.Replace(s)), align)
}

func (c *PDFCanvas) text(x, y float64, s string, align Align) {
	if align == AlignCenter {
		x -= c.pdf.GetStringWidth(s) / 2
	}
	c.pdf.Text(x, y, s)
}

func (c *PDFCanvas) Rect(x, y, w, h float64, style Style) {
	c.pdf.Rect(x, y, w, h, string(style))
}

func (c *PDFCanvas) RoundedRect(x, y, w, h, r float64, style Style) {
	c.pdf.RoundedRect(x, y, w, h, r, "1234", string(style))
}

func (c *PDFCanvas) Circle(x, y, r float64, style Style) {
	c.pdf.Circle(x, y, r, string(style))
}

func (c *PDFCanvas) Line(x1, y1, x2, y2 float64) { c.pdf.Line(x1, y1, x2, y2) }

func (c *PDFCanvas) Output(w io.Writer) error { return c.pdf.Output(w) }

func (c *PDFCanvas) Err() error { return c.pdf.Error() }
