package watermark

import "image"

// Rotation angles for the diagonal placements, in degrees following the
// counterclockwise-positive convention of imaging.Rotate.
const (
	angleDiagTLBR = -35.0
	angleDiagBLTR = 35.0
)

// Plan describes where to draw the measured text. Origins are the
// top-left corners of the text bounding box. For diagonal placements the
// plan carries a single centered origin plus a rotation: the caller is
// expected to draw onto a canvas-sized layer, rotate it by Angle with
// canvas expansion, and center-crop back to the canvas size.
type Plan struct {
	Origins []image.Point
	Rotate  bool
	Angle   float64
}

// Layout computes draw origins for text of size textW x textH on a
// canvasW x canvasH canvas. Origins keep the bounding box margin pixels
// from the relevant edges, clamped to the margin so the text never starts
// off-canvas even when it is larger than the canvas. Unknown positions
// behave exactly like bottom_right.
func Layout(canvasW, canvasH, textW, textH int, pos Position, margin int) Plan {
	switch pos {
	case PositionTopLeft:
		return Plan{Origins: []image.Point{image.Pt(margin, margin)}}
	case PositionTopRight:
		x := clampOrigin(canvasW-textW-margin, margin)
		return Plan{Origins: []image.Point{image.Pt(x, margin)}}
	case PositionBottomLeft:
		y := clampOrigin(canvasH-textH-margin, margin)
		return Plan{Origins: []image.Point{image.Pt(margin, y)}}
	case PositionCenter:
		return Plan{Origins: []image.Point{centerOrigin(canvasW, canvasH, textW, textH, margin)}}
	case PositionDiagTLBR:
		return Plan{
			Origins: []image.Point{centerOrigin(canvasW, canvasH, textW, textH, margin)},
			Rotate:  true,
			Angle:   angleDiagTLBR,
		}
	case PositionDiagBLTR:
		return Plan{
			Origins: []image.Point{centerOrigin(canvasW, canvasH, textW, textH, margin)},
			Rotate:  true,
			Angle:   angleDiagBLTR,
		}
	default: // bottom_right and any unrecognized value
		x := clampOrigin(canvasW-textW-margin, margin)
		y := clampOrigin(canvasH-textH-margin, margin)
		return Plan{Origins: []image.Point{image.Pt(x, y)}}
	}
}

func centerOrigin(canvasW, canvasH, textW, textH, margin int) image.Point {
	return image.Pt(
		clampOrigin((canvasW-textW)/2, margin),
		clampOrigin((canvasH-textH)/2, margin),
	)
}

func clampOrigin(v, margin int) int {
	if v < margin {
		return margin
	}
	return v
}
