package watermark

import (
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// styleFonts maps a font style key to an ordered list of candidate TTF
// paths. The first candidate that loads wins.
var styleFonts = map[string][]string{
	FontSans: {
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/truetype/freefont/FreeSansBold.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	},
	FontSerif: {
		"/usr/share/fonts/truetype/dejavu/DejaVuSerif-Bold.ttf",
		"/usr/share/fonts/truetype/freefont/FreeSerifBold.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSerif-Bold.ttf",
	},
	FontMono: {
		"/usr/share/fonts/truetype/dejavu/DejaVuSansMono-Bold.ttf",
		"/usr/share/fonts/truetype/freefont/FreeMonoBold.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationMono-Bold.ttf",
	},
}

// guaranteedFonts is tried when every style candidate fails to load.
var guaranteedFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/freefont/FreeSans.ttf",
}

type faceKey struct {
	style string
	size  int
}

// FontResolver loads font faces by style key and pixel size. Resolve never
// fails: after the style candidates and the guaranteed list it falls back
// to the embedded Go fonts, and past those to a fixed-size bitmap face.
type FontResolver struct {
	mu    sync.Mutex
	faces map[faceKey]font.Face
}

func NewFontResolver() *FontResolver {
	return &FontResolver{faces: make(map[faceKey]font.Face)}
}

// Resolve returns a usable face for the style key at the given pixel size.
// Unknown style keys use the sans candidates.
func (r *FontResolver) Resolve(styleKey string, pixels int) font.Face {
	candidates, ok := styleFonts[styleKey]
	if !ok {
		styleKey = FontSans
		candidates = styleFonts[FontSans]
	}

	key := faceKey{style: styleKey, size: pixels}
	r.mu.Lock()
	defer r.mu.Unlock()
	if face, ok := r.faces[key]; ok {
		return face
	}

	face := loadFirst(candidates, pixels)
	if face == nil {
		face = loadFirst(guaranteedFonts, pixels)
	}
	if face == nil {
		face = embeddedFace(pixels)
	}
	if face == nil {
		// Bitmap face renders at its own fixed size but can always render.
		face = basicfont.Face7x13
	}

	r.faces[key] = face
	return face
}

func loadFirst(paths []string, pixels int) font.Face {
	for _, path := range paths {
		face, err := loadFace(path, pixels)
		if err == nil {
			return face
		}
	}
	return nil
}

func loadFace(path string, pixels int) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseFace(data, pixels)
}

func parseFace(data []byte, pixels int) (font.Face, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	// At 72 DPI the point size equals the pixel size.
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(pixels),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func embeddedFace(pixels int) font.Face {
	for _, ttf := range [][]byte{gobold.TTF, goregular.TTF} {
		if face, err := parseFace(ttf, pixels); err == nil {
			return face
		}
	}
	return nil
}
