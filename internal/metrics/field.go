package metrics

import "math"

// Field selects the observed quantity of a cell.
type Field func(depth, discharge float64) float64

func Depth(depth, _ float64) float64         { return depth }
func Discharge(_, discharge float64) float64 { return discharge }

type Extremum struct {
	name  string
	field Field
	max   bool
	value float64
	seen  bool
}

func NewMax(name string, f Field) *Extremum {
	return &Extremum{name: name, field: f, max: true}
}

func NewMin(name string, f Field) *Extremum {
	return &Extremum{name: name, field: f}
}

func (e *Extremum) Name() string {
	return e.name
}

func (e *Extremum) Observe(_, depth, discharge float64) {
	v := e.field(depth, discharge)
	switch {
	case !e.seen:
		e.value, e.seen = v, true
	case e.max:
		e.value = math.Max(e.value, v)
	default:
		e.value = math.Min(e.value, v)
	}
}

func (e *Extremum) Value() float64 {
	return e.value
}

func (e *Extremum) Reset() {
	e.value, e.seen = 0, false
}

type Mean struct {
	name    string
	field   Field
	sum     float64
	samples int
}

func NewMean(name string, f Field) *Mean {
	return &Mean{name: name, field: f}
}

func (m *Mean) Name() string {
	return m.name
}

func (m *Mean) Observe(_, depth, discharge float64) {
	m.sum += m.field(depth, discharge)
	m.samples++
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Mean) Reset() {
	m.sum = 0
	m.samples = 0
}
