package charts

import "math"

// targetTicks is the rough number of axis intervals a bar chart aims for.
const targetTicks = 4

// NiceStep returns an axis step of the form {1,2,5}×10^k chosen so that
// max/step lands near the target tick count. Non-positive input falls back
// to a unit step.
func NiceStep(max float64) float64 {
	if max <= 0 {
		return 1
	}
	raw := max / targetTicks
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / magnitude
	switch {
	case norm <= 1:
		return magnitude
	case norm <= 2:
		return 2 * magnitude
	case norm <= 5:
		return 5 * magnitude
	default:
		return 10 * magnitude
	}
}

// AxisMax rounds max up to the next step multiple, so every bar fits under
// the top gridline.
func AxisMax(max float64) float64 {
	step := NiceStep(max)
	return step * math.Ceil(max/step)
}

// Bar is one rendered pair of bars (e.g. income vs expense for a month).
// Percents are heights relative to the axis maximum.
type Bar struct {
	Label        string
	Primary      float64
	Secondary    float64
	PrimaryPct   float64
	SecondaryPct float64
	Net          float64
}

// BarChart is a two-series bar chart with a nice-step axis.
type BarChart struct {
	AxisMax float64
	Step    float64
	Ticks   []float64 // descending, axis max first
	Bars    []Bar
}

// NewBarChart scales the given bars against a shared nice-step axis built
// from the largest absolute value in either series.
func NewBarChart(bars []Bar) *BarChart {
	maxValue := 0.0
	for _, b := range bars {
		maxValue = math.Max(maxValue, math.Max(math.Abs(b.Primary), math.Abs(b.Secondary)))
	}
	if maxValue == 0 {
		return &BarChart{AxisMax: 0, Step: 1, Bars: bars}
	}

	step := NiceStep(maxValue)
	axisMax := AxisMax(maxValue)

	ticks := make([]float64, 0, int(axisMax/step)+1)
	for tick := axisMax; tick >= 0; tick -= step {
		ticks = append(ticks, tick)
	}

	scaled := make([]Bar, len(bars))
	for i, b := range bars {
		b.PrimaryPct = math.Abs(b.Primary) / axisMax * 100
		b.SecondaryPct = math.Abs(b.Secondary) / axisMax * 100
		scaled[i] = b
	}
	return &BarChart{AxisMax: axisMax, Step: step, Ticks: ticks, Bars: scaled}
}
