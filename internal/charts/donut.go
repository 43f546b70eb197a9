// Package charts computes SVG geometry for the screen charts. Every
// function is pure: numbers in, path strings and percentages out; the
// templates only interpolate the results.
package charts

import (
	"fmt"
	"math"
)

// Donut geometry in the 0 0 100 100 viewBox.
const (
	donutCenter = 50.0
	donutOuterR = 50.0
	donutInnerR = 42.0

	// Segments below half a percent are omitted; slivers this thin
	// degenerate into invisible antialiasing artifacts.
	minShare = 0.005
)

// Segment colors.
const (
	FillIncome    = "#10B981"
	FillExpense   = "#EF4444"
	FillBalance   = "#3B82F6"
	FillLiability = "#EF4444"
)

// Segment is one donut slice ready for an SVG <path>.
type Segment struct {
	Path string
	Fill string
}

// polarToCartesian converts an angle in degrees (0 at twelve o'clock,
// clockwise) to viewBox coordinates.
func polarToCartesian(cx, cy, r, angleDeg float64) (float64, float64) {
	rad := (angleDeg - 90) * math.Pi / 180
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}

// segmentPath builds a ring segment between two angles: outer arc
// clockwise, line to the inner radius, inner arc back, close.
func segmentPath(a0, a1 float64) string {
	startOuterX, startOuterY := polarToCartesian(donutCenter, donutCenter, donutOuterR, a0)
	endOuterX, endOuterY := polarToCartesian(donutCenter, donutCenter, donutOuterR, a1)
	startInnerX, startInnerY := polarToCartesian(donutCenter, donutCenter, donutInnerR, a0)
	endInnerX, endInnerY := polarToCartesian(donutCenter, donutCenter, donutInnerR, a1)

	large := 0
	if a1-a0 > 180 {
		large = 1
	}
	return fmt.Sprintf(
		"M %.2f %.2f A %.0f %.0f 0 %d 1 %.2f %.2f L %.2f %.2f A %.0f %.0f 0 %d 0 %.2f %.2f Z",
		startOuterX, startOuterY, donutOuterR, donutOuterR, large, endOuterX, endOuterY,
		endInnerX, endInnerY, donutInnerR, donutInnerR, large, startInnerX, startInnerY,
	)
}

// DonutSegments builds the income/expense/balance donut. A negative
// balance contributes nothing; shares below the minimum are dropped.
func DonutSegments(income, expense, balance float64) []Segment {
	balance = math.Max(0, balance)
	total := income + expense + balance
	if total <= 0 {
		return nil
	}

	type part struct {
		share float64
		fill  string
	}
	parts := []part{
		{income / total, FillIncome},
		{expense / total, FillExpense},
		{balance / total, FillBalance},
	}

	segments := make([]Segment, 0, len(parts))
	a0 := 0.0
	for _, p := range parts {
		if p.share <= minShare {
			continue
		}
		a1 := a0 + p.share*360
		segments = append(segments, Segment{Path: segmentPath(a0, a1), Fill: p.fill})
		a0 = a1
	}
	return segments
}

// Slice is one labeled value of a pie chart.
type Slice struct {
	Label string
	Value float64
	Fill  string
}

// LabeledSegment is a pie slice with its rendered path and share.
type LabeledSegment struct {
	Label   string
	Path    string
	Fill    string
	Percent float64
}

// PieSegments builds a pie from labeled values. Non-positive values and
// sub-minimum shares are omitted.
func PieSegments(slices []Slice) []LabeledSegment {
	total := 0.0
	for _, s := range slices {
		if s.Value > 0 {
			total += s.Value
		}
	}
	if total <= 0 {
		return nil
	}

	segments := make([]LabeledSegment, 0, len(slices))
	a0 := 0.0
	for _, s := range slices {
		if s.Value <= 0 {
			continue
		}
		share := s.Value / total
		if share <= minShare {
			continue
		}
		a1 := a0 + share*360
		segments = append(segments, LabeledSegment{
			Label:   s.Label,
			Path:    segmentPath(a0, a1),
			Fill:    s.Fill,
			Percent: share * 100,
		})
		a0 = a1
	}
	return segments
}
