// Package watermark renders semi-transparent text watermarks onto raster
// images: text transforms, font resolution with fallbacks, placement math
// and the compositing pipeline itself.
package watermark

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	// Register decoders for the formats chat transports deliver.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ErrDecode reports that the input bytes are not a decodable image. Fatal
// to the current request only; callers report it and drop the request.
var ErrDecode = errors.New("input is not a decodable image")

const (
	// textMargin keeps the text bounding box away from the canvas edges.
	textMargin = 20

	shadowOffset = 2
	shadowAlpha  = 160

	minFontPixels = 10
)

// Engine composites text watermarks onto images and encodes the result
// as JPEG for chat delivery.
type Engine struct {
	fonts   *FontResolver
	quality int
}

func NewEngine(jpegQuality int) *Engine {
	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = 90
	}
	return &Engine{
		fonts:   NewFontResolver(),
		quality: jpegQuality,
	}
}

// Composite decodes imageBytes, draws text over it per the settings and
// returns new JPEG bytes. The input slice and the decoded source are
// never mutated. Returns an error wrapping ErrDecode when the input is
// not an image.
func (e *Engine) Composite(imageBytes []byte, text string, s Settings) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	s.Normalize()

	// Clone yields an NRGBA working copy; opaque sources come out with
	// full alpha.
	base := imaging.Clone(src)
	w := base.Bounds().Dx()
	h := base.Bounds().Dy()

	display := Transform(text, s.Style)
	face := e.fonts.Resolve(s.Font, fontPixels(w, s.SizeFactor))

	bound, _ := font.BoundString(face, display)
	textW := (bound.Max.X - bound.Min.X).Ceil()
	textH := (bound.Max.Y - bound.Min.Y).Ceil()

	plan := Layout(w, h, textW, textH, s.Position, textMargin)

	overlay := image.NewNRGBA(image.Rect(0, 0, w, h))
	shadow := image.NewUniform(color.NRGBA{A: shadowAlpha})
	main := image.NewUniform(color.NRGBA{R: s.ColorR, G: s.ColorG, B: s.ColorB, A: uint8(s.Alpha)})

	for _, origin := range plan.Origins {
		// Shadow first so the main glyphs stay fully legible on top.
		drawString(overlay, face, shadow, display, origin.Add(image.Pt(shadowOffset, shadowOffset)), bound.Min)
		drawString(overlay, face, main, display, origin, bound.Min)
	}

	var layer image.Image = overlay
	if plan.Rotate {
		rotated := imaging.Rotate(overlay, plan.Angle, color.NRGBA{})
		layer = imaging.CropCenter(rotated, w, h)
	}

	draw.Draw(base, base.Bounds(), layer, image.Point{}, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, base, &jpeg.Options{Quality: e.quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// fontPixels derives the face size from the image width so the watermark
// keeps roughly constant proportion across resolutions, floored so it
// stays legible on tiny images.
func fontPixels(imageWidth int, sizeFactor float64) int {
	base := imageWidth / 20
	if base < 20 {
		base = 20
	}
	scaled := int(float64(base) * sizeFactor)
	if scaled < minFontPixels {
		scaled = minFontPixels
	}
	return scaled
}

// drawString places the text so its bounding box top-left corner lands on
// origin. boundMin is the Min corner of the measured bounds, which carries
// the baseline offset.
func drawString(dst draw.Image, face font.Face, src image.Image, text string, origin image.Point, boundMin fixed.Point26_6) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(origin.X) - boundMin.X,
			Y: fixed.I(origin.Y) - boundMin.Y,
		},
	}
	d.DrawString(text)
}
