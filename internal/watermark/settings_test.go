package watermark

import "testing"

func TestNormalizeBackfillsMissingFields(t *testing.T) {
	var s Settings // everything zero, as a partially stored record loads
	s.Normalize()

	def := DefaultSettings()
	if s.SizeFactor != def.SizeFactor {
		t.Errorf("SizeFactor = %v, want %v", s.SizeFactor, def.SizeFactor)
	}
	if s.Position != def.Position {
		t.Errorf("Position = %q, want %q", s.Position, def.Position)
	}
	if s.Font != def.Font {
		t.Errorf("Font = %q, want %q", s.Font, def.Font)
	}
	if s.Style != def.Style {
		t.Errorf("Style = %q, want %q", s.Style, def.Style)
	}
	// Alpha 0 is a valid stored value and must survive normalization.
	if s.Alpha != 0 {
		t.Errorf("Alpha = %d, want 0", s.Alpha)
	}
}

func TestNormalizeClampsAlpha(t *testing.T) {
	s := DefaultSettings()
	s.Alpha = 999
	s.Normalize()
	if s.Alpha != 255 {
		t.Errorf("Alpha = %d, want 255", s.Alpha)
	}

	s.Alpha = -5
	s.Normalize()
	if s.Alpha != 0 {
		t.Errorf("Alpha = %d, want 0", s.Alpha)
	}
}

func TestNormalizeKeepsStoredValues(t *testing.T) {
	s := Settings{
		SizeFactor: 1.4,
		ColorR:     255, ColorG: 105, ColorB: 180,
		Alpha:    128,
		Position: PositionCenter,
		Font:     FontMono,
		Style:    StyleUpper,
	}
	before := s
	s.Normalize()
	if s != before {
		t.Errorf("Normalize changed a fully populated record: %+v -> %+v", before, s)
	}
}

func TestNormalizeRejectsNonPositiveSizeFactor(t *testing.T) {
	for _, factor := range []float64{0, -1.5} {
		s := DefaultSettings()
		s.SizeFactor = factor
		s.Normalize()
		if s.SizeFactor != 1.0 {
			t.Errorf("SizeFactor %v normalized to %v, want 1.0", factor, s.SizeFactor)
		}
	}
}

func TestAlphaFromPercent(t *testing.T) {
	tests := []struct {
		pct  int
		want int
	}{
		{150, 255}, // over 100% clamps to max
		{-10, 0},   // negative clamps to zero
		{100, 255},
		{0, 0},
		{50, 127},
	}
	for _, tt := range tests {
		if got := AlphaFromPercent(tt.pct); got != tt.want {
			t.Errorf("AlphaFromPercent(%d) = %d, want %d", tt.pct, got, tt.want)
		}
	}
}
