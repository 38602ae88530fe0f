package imagegen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	regularFont *opentype.Font
	boldFont    *opentype.Font
	fontOnce    sync.Once
	fontErr     error
)

func loadFonts() {
	fontOnce.Do(func() {
		regularFont, fontErr = opentype.Parse(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("parse Go Regular: %w", fontErr)
			return
		}
		boldFont, fontErr = opentype.Parse(gobold.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("parse Go Bold: %w", fontErr)
		}
	})
}

// cardFaces holds the faces for one render. An opentype.Face keeps glyph
// buffers internally, so faces are never shared between goroutines.
type cardFaces struct {
	regular font.Face
	title   font.Face
	large   font.Face
}

func newCardFaces() (*cardFaces, error) {
	loadFonts()
	if fontErr != nil {
		return nil, fontErr
	}

	var faces cardFaces
	for _, f := range []struct {
		dst  *font.Face
		font *opentype.Font
		size float64
	}{
		{&faces.regular, regularFont, 36},
		{&faces.title, boldFont, 56},
		{&faces.large, boldFont, 140},
	} {
		face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
			Size:    f.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			faces.Close()
			return nil, fmt.Errorf("create %.0fpt face: %w", f.size, err)
		}
		*f.dst = face
	}
	return &faces, nil
}

func (f *cardFaces) Close() {
	for _, face := range []font.Face{f.regular, f.title, f.large} {
		if face != nil {
			face.Close()
		}
	}
}

// ShareCardData contains the dynamic data for a city's share card.
type ShareCardData struct {
	City        string // display label
	Temperature string // already formatted, e.g. "24°C"
	Condition   string // e.g. "Partly Cloudy"
	Background  string // hex color, e.g. "#0f0f1a"
	Accent      string // hex color for the condition line
}

// Standard Open Graph image dimensions.
const (
	CardWidth  = 1200
	CardHeight = 630
)

// GenerateShareCard renders a PNG card summarising a city's current weather.
func GenerateShareCard(data ShareCardData) ([]byte, error) {
	faces, err := newCardFaces()
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	defer faces.Close()

	base, err := parseHex(data.Background)
	if err != nil {
		base = color.RGBA{20, 20, 40, 255}
	}
	accent, err := parseHex(data.Accent)
	if err != nil {
		accent = color.RGBA{79, 195, 247, 255}
	}

	img := image.NewRGBA(image.Rect(0, 0, CardWidth, CardHeight))
	drawGradient(img, base)
	drawTextOverlay(img, faces, data, textColor(base), accent)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode share card: %w", err)
	}
	return buf.Bytes(), nil
}

// drawGradient fills the card with base, darkening towards the bottom.
func drawGradient(img *image.RGBA, base color.RGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		progress := float64(y) / float64(bounds.Dy())
		// Ease-in curve for smoother gradient
		alpha := progress * progress * 0.5
		c := color.RGBA{
			R: uint8(float64(base.R) * (1 - alpha)),
			G: uint8(float64(base.G) * (1 - alpha)),
			B: uint8(float64(base.B) * (1 - alpha)),
			A: 255,
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func drawTextOverlay(img *image.RGBA, faces *cardFaces, data ShareCardData, text, accent color.Color) {
	drawText(img, data.City, 60, 110, text, faces.title)
	drawText(img, data.Temperature, 60, CardHeight-200, text, faces.large)
	if data.Condition != "" {
		drawText(img, data.Condition, 60, CardHeight-120, accent, faces.regular)
	}
	drawText(img, "skyview", 60, CardHeight-40, text, faces.regular)
}

// drawText draws text at the given position using the specified font face.
func drawText(img *image.RGBA, s string, x, y int, col color.Color, face font.Face) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}

// textColor picks black or white text for legibility on bg.
func textColor(bg color.RGBA) color.RGBA {
	luminance := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luminance > 140 {
		return color.RGBA{24, 24, 32, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}

func parseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
