package render

import (
	"fmt"
	"io"
	"strings"
)

// OpKind names a recorded drawing operation.
type OpKind string

const (
	OpText        OpKind = "text"
	OpRect        OpKind = "rect"
	OpRoundedRect OpKind = "rounded-rect"
	OpCircle      OpKind = "circle"
	OpLine        OpKind = "line"
)

// Op is one drawing call captured by a Recorder, with the colours and font size
// in effect when it was made.
type Op struct {
	Kind      OpKind
	X, Y      float64
	W, H      float64
	Text      string
	Style     Style
	FontSize  float64
	TextColor Color
	Fill      Color
	Draw      Color
}

// Recorder is an in-memory Canvas that keeps every operation per page.
// It lets layout be inspected without decoding PDF bytes.
type Recorder struct {
	Title, Subject string
	// Pages holds the operations of page n at index n-1.
	Pages [][]Op

	width, height float64
	current       int
	size          float64
	text          Color
	fill          Color
	draw          Color
}

// NewRecorder returns an empty A4 Recorder.
func NewRecorder() *Recorder {
	return &Recorder{width: pageWidthA4, height: pageHeightA4}
}

// RecorderFactory adapts r to a CanvasFactory so it can be plugged into Options.
func RecorderFactory(r *Recorder) CanvasFactory {
	return func(Options) (Canvas, error) { return r, nil }
}

func (r *Recorder) AddPage() {
	r.Pages = append(r.Pages, nil)
	r.current = len(r.Pages)
}

func (r *Recorder) SetPage(n int) {
	if n >= 1 && n <= len(r.Pages) {
		r.current = n
	}
}

func (r *Recorder) PageCount() int { return len(r.Pages) }

func (r *Recorder) PageSize() (float64, float64) { return r.width, r.height }

func (r *Recorder) SetInfo(title, subject string) { r.Title, r.Subject = title, subject }

func (r *Recorder) SetFontSize(size float64) { r.size = size }
func (r *Recorder) SetTextColor(c Color)     { r.text = c }
func (r *Recorder) SetFillColor(c Color)     { r.fill = c }
func (r *Recorder) SetDrawColor(c Color)     { r.draw = c }

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.add(Op{Kind: OpLine, X: x1, Y: y1, W: x2 - x1, H: y2 - y1})
}

func (r *Recorder) Circle(x, y, rad float64, s Style) {
	r.add(Op{Kind: OpCircle, X: x, Y: y, W: rad, H: rad, Style: s})
}

func (r *Recorder) Text(x, y float64, s string, _ Align) {
	r.add(Op{Kind: OpText, X: x, Y: y, Text: s})
}

func (r *Recorder) Rect(x, y, w, h float64, s Style) {
	r.add(Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Style: s})
}

func (r *Recorder) RoundedRect(x, y, w, h, _ float64, s Style) {
	r.add(Op{Kind: OpRoundedRect, X: x, Y: y, W: w, H: h, Style: s})
}

func (r *Recorder) add(op Op) {
	if r.current == 0 {
		return
	}
	op.FontSize, op.TextColor, op.Fill, op.Draw = r.size, r.text, r.fill, r.draw
	r.Pages[r.current-1] = append(r.Pages[r.current-1], op)
}

// Output writes one line per text operation, prefixed with its page number.
func (r *Recorder) Output(w io.Writer) error {
	for i, ops := range r.Pages {
		for _, op := range ops {
			if op.Kind != OpText {
				continue
			}
			if _, err := fmt.Fprintf(w, "%d\t%.2f\t%.2f\t%s\n", i+1, op.X, op.Y, op.Text); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Recorder) Err() error { return nil }

// Texts returns the text drawn on page n, in drawing order.
func (r *Recorder) Texts(n int) []string {
	var out []string
	if n < 1 || n > len(r.Pages) {
		return out
	}
	for _, op := range r.Pages[n-1] {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// AllText joins the text of every page with newlines.
func (r *Recorder) AllText() string {
	var b strings.Builder
	for n := 1; n <= len(r.Pages); n++ {
		for _, t := range r.Texts(n) {
			b.WriteString(t)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
