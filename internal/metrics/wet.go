package metrics

// WetFraction is the share of cells whose depth exceeds a threshold.
type WetFraction struct {
	name      string
	threshold float64
	wet       int
	samples   int
}

func NewWetFraction(threshold float64) *WetFraction {
	return &WetFraction{
		name:      "wet_fraction",
		threshold: threshold,
	}
}

func (w *WetFraction) Name() string {
	return w.name
}

func (w *WetFraction) Observe(_, depth, _ float64) {
	w.samples++
	if depth > w.threshold {
		w.wet++
	}
}

func (w *WetFraction) Value() float64 {
	if w.samples == 0 {
		return 0
	}
	return float64(w.wet) / float64(w.samples)
}

func (w *WetFraction) Reset() {
	w.wet = 0
	w.samples = 0
}
