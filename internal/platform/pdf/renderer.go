package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fogleman/gg"
	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/basicfont"

	"github.com/sprintslides/sprintslides-backend/internal/platform/logger"
	"github.com/sprintslides/sprintslides-backend/internal/types"
)

// Page geometry in centimeters (A4 portrait).
const (
	pageWidth  = 21.0
	pageHeight = 29.7

	marginLeft    = 1.5
	contentTop    = 6.0
	contentBottom = 2.5
	lineStep      = 0.49
	blankStep     = 0.35
)

// Palette copied from the web client's dark theme.
var (
	pageBG   = rgb{10, 13, 20}
	accent   = rgb{99, 102, 241}
	heading  = rgb{255, 255, 255}
	body     = rgb{209, 213, 219}
	muted    = rgb{156, 163, 175}
	footerFG = rgb{107, 114, 128}
)

type rgb struct{ r, g, b int }

// Renderer turns a validated deck into a styled PDF. The brand banner is
// drawn once at construction and reused across documents.
type Renderer struct {
	log    *logger.Logger
	banner []byte
}

func NewRenderer(log *logger.Logger) (*Renderer, error) {
	banner, err := drawBanner()
	if err != nil {
		return nil, fmt.Errorf("render banner: %w", err)
	}
	return &Renderer{log: log.With("component", "PDFRenderer"), banner: banner}, nil
}

// Filename is the attachment name for a deck export.
func Filename(topic string) string {
	return "SprintSlidesAI_" + strings.ReplaceAll(strings.TrimSpace(topic), " ", "_") + ".pdf"
}

// Render produces the full document: one dark title page followed by one
// page per slide, with overflow continuing onto extra pages.
func (r *Renderer) Render(topic string, slides []types.Slide) ([]byte, error) {
	doc := fpdf.New("P", "cm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.RegisterImageOptionsReader("banner", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(r.banner))

	r.titlePage(doc, tr, topic)
	for i, slide := range slides {
		r.slidePage(doc, tr, slide, i+1, len(slides))
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) titlePage(doc *fpdf.Fpdf, tr func(string) string, topic string) {
	doc.AddPage()
	fill(doc, rgb{0, 0, 0})

	doc.ImageOptions("banner", (pageWidth-16)/2, 3.0, 16, 4, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	setText(doc, heading)
	doc.SetFont("Helvetica", "B", 28)
	centered(doc, 10.2, "SprintSlidesAI")

	setText(doc, muted)
	doc.SetFont("Helvetica", "", 16)
	centered(doc, 11.5, tr("Topic: "+strings.TrimSpace(topic)))

	setText(doc, footerFG)
	doc.SetFont("Helvetica", "", 11)
	centered(doc, pageHeight-2.2, "Generated with SprintSlides")
}

func (r *Renderer) slidePage(doc *fpdf.Fpdf, tr func(string) string, slide types.Slide, index, total int) {
	r.newSlidePage(doc, index, total)

	badge := strings.ToUpper(strings.ReplaceAll(slide.Type, "_", " "))
	if badge == "" {
		badge = "SLIDE"
	}
	setText(doc, accent)
	doc.SetFont("Helvetica", "B", 11)
	doc.Text(marginLeft, 3.2, tr(badge))

	title := strings.TrimSpace(slide.Title)
	if title == "" {
		title = "Untitled"
	}
	setText(doc, heading)
	doc.SetFont("Helvetica", "B", 22)
	doc.Text(marginLeft, 4.5, tr(title))

	doc.SetDrawColor(accent.r, accent.g, accent.b)
	doc.SetLineWidth(0.07)
	doc.Line(marginLeft, 5.0, 6.0, 5.0)

	setText(doc, body)
	doc.SetFont("Helvetica", "", 12)

	y := contentTop
	maxWidth := pageWidth - marginLeft - 1.9
	for _, block := range strings.Split(slide.Content, "\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			y += blankStep
			continue
		}
		for _, line := range doc.SplitText(tr(block), maxWidth) {
			if y > pageHeight-contentBottom {
				r.newSlidePage(doc, index, total)
				setText(doc, body)
				doc.SetFont("Helvetica", "", 12)
				y = 3.0
			}
			doc.Text(marginLeft+0.2, y, line)
			y += lineStep
		}
	}

	setText(doc, footerFG)
	doc.SetFont("Helvetica", "", 10)
	centered(doc, pageHeight-1.4, tr("SprintSlidesAI • Study smarter"))
}

// newSlidePage opens a dark page with the banner header and page marker.
func (r *Renderer) newSlidePage(doc *fpdf.Fpdf, index, total int) {
	doc.AddPage()
	fill(doc, pageBG)

	doc.ImageOptions("banner", 1.4, 0.85, 5.5, 1.35, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	setText(doc, muted)
	doc.SetFont("Helvetica", "", 10)
	marker := fmt.Sprintf("%d / %d", index, total)
	doc.Text(pageWidth-1.6-doc.GetStringWidth(marker), 1.7, marker)
}

func fill(doc *fpdf.Fpdf, c rgb) {
	doc.SetFillColor(c.r, c.g, c.b)
	doc.Rect(0, 0, pageWidth, pageHeight, "F")
}

func setText(doc *fpdf.Fpdf, c rgb) {
	doc.SetTextColor(c.r, c.g, c.b)
}

func centered(doc *fpdf.Fpdf, y float64, s string) {
	doc.Text((pageWidth-doc.GetStringWidth(s))/2, y, s)
}

// drawBanner paints the brand strip embedded on every page: dark field,
// indigo bolt mark, wordmark and tagline.
func drawBanner() ([]byte, error) {
	const w, h = 1200, 300

	dc := gg.NewContext(w, h)
	dc.SetRGB255(10, 13, 20)
	dc.Clear()

	// Bolt mark.
	dc.MoveTo(200, 40)
	dc.LineTo(130, 170)
	dc.LineTo(185, 170)
	dc.LineTo(150, 260)
	dc.LineTo(260, 130)
	dc.LineTo(200, 130)
	dc.LineTo(235, 40)
	dc.ClosePath()
	dc.SetRGB255(99, 102, 241)
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB255(255, 255, 255)
	dc.DrawStringAnchored("S P R I N T S L I D E S  A I", 340, 130, 0, 0.5)
	dc.SetRGB255(156, 163, 175)
	dc.DrawStringAnchored("study smarter", 340, 180, 0, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
