package watermark

// Position selects where on the canvas the watermark is drawn.
type Position string

const (
	PositionTopLeft     Position = "top_left"
	PositionTopRight    Position = "top_right"
	PositionBottomLeft  Position = "bottom_left"
	PositionBottomRight Position = "bottom_right"
	PositionCenter      Position = "center"
	PositionDiagTLBR    Position = "diag_tl_br"
	PositionDiagBLTR    Position = "diag_bl_tr"
)

// Style is a text transform applied before rendering.
type Style string

const (
	StyleNormal Style = "normal"
	StyleUpper  Style = "upper"
	StyleLower  Style = "lower"
	StyleSpaced Style = "spaced"
	StyleBoxed  Style = "boxed"
)

// Font style keys into the resolver's candidate table.
const (
	FontSans  = "sans"
	FontSerif = "serif"
	FontMono  = "mono"
)

// Settings holds one user's watermark rendering preferences.
// A record loaded from storage may carry zero values for fields that were
// never set; Normalize backfills those before the record is used.
type Settings struct {
	SizeFactor float64
	ColorR     uint8
	ColorG     uint8
	ColorB     uint8
	Alpha      int
	Position   Position
	Font       string
	Style      Style
}

// DefaultSettings returns the documented defaults: medium white text at
// alpha 220, bottom right, sans, no transform.
func DefaultSettings() Settings {
	return Settings{
		SizeFactor: 1.0,
		ColorR:     255,
		ColorG:     255,
		ColorB:     255,
		Alpha:      220,
		Position:   PositionBottomRight,
		Font:       FontSans,
		Style:      StyleNormal,
	}
}

// Normalize clamps numeric fields to their valid ranges and backfills
// missing fields from defaults. Unknown enum values are left alone here;
// the render path treats them as the documented fallbacks.
func (s *Settings) Normalize() {
	if !(s.SizeFactor > 0) {
		s.SizeFactor = 1.0
	}
	if s.Alpha < 0 {
		s.Alpha = 0
	}
	if s.Alpha > 255 {
		s.Alpha = 255
	}
	if s.Position == "" {
		s.Position = PositionBottomRight
	}
	if s.Font == "" {
		s.Font = FontSans
	}
	if s.Style == "" {
		s.Style = StyleNormal
	}
}

// AlphaFromPercent converts a user-supplied opacity percentage to the
// internal 0-255 alpha, clamping out-of-range input instead of rejecting it.
func AlphaFromPercent(pct int) int {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return 255 * pct / 100
}
