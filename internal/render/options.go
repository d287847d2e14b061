package render

import "time"

// Brand is the company identity printed in the header and footer.
type Brand struct {
	Name         string
	Tagline      string
	Company      string
	AddressLines []string
	Phone        string
	Email        string
}

// Defaults are the placeholder strings used when optional fields are empty.
type Defaults struct {
	DayDate    string
	FlightDate string
}

// Palette holds every colour the layout uses.
type Palette struct {
	Accent      Color // brand purple: wordmark, day badges, table headers
	Highlight   Color // second word of section headings
	GradientTop Color // banner gradient starts here and ends at Accent
	Text        Color
	Inverse     Color // text on dark fills, plain table rows
	Muted       Color
	Rule        Color
	Panel       Color
	Tint        Color
	Badge       Color
	RowTint     Color
}

// Options configures a Renderer. The zero value is not usable; start from DefaultOptions.
type Options struct {
	Brand    Brand
	Defaults Defaults
	Palette  Palette

	// Compress deflates page content streams.
	Compress bool

	// DocumentDate is written as the PDF creation and modification date.
	// It is fixed so that identical input yields identical bytes.
	DocumentDate time.Time

	// NewCanvas builds the drawing surface. Nil means NewPDFCanvas.
	NewCanvas CanvasFactory
}

// DefaultOptions returns the production brand, placeholders and palette.
func DefaultOptions() Options {
	return Options{
		Brand: Brand{
			Name:    "vigovia",
			Tagline: "PLAN.PACK.GO",
			Company: "Vigovia Tech Pvt. Ltd",
			AddressLines: []string{
				"Registered Office: Hd-109 Cinnabar Hills,",
				"Links Business Park, Karnataka, India",
			},
			Phone: "Phone: +91-99X9999999",
			Email: "Email ID: Contact@Vigovia.Com",
		},
		Defaults: Defaults{
			DayDate:    "27th November",
			FlightDate: "Thu 10 Jan'24",
		},
		Palette: Palette{
			Accent:      Color{84, 28, 156},
			Highlight:   Color{147, 51, 234},
			GradientTop: Color{74, 144, 226},
			Text:        Color{0, 0, 0},
			Inverse:     Color{255, 255, 255},
			Muted:       Color{100, 100, 100},
			Rule:        Color{200, 200, 200},
			Panel:       Color{245, 245, 245},
			Tint:        Color{240, 230, 255},
			Badge:       Color{220, 200, 255},
			RowTint:     Color{248, 240, 255},
		},
		Compress:     true,
		DocumentDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// orDefault returns v, or fallback when v is empty.
func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
