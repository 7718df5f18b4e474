package detection

// slidingMedian estimates the local background of a row with a fixed-width
// window of greyscale samples kept in a ring buffer beside a histogram.
//
// The window is rebuilt from the first WindowSize pixels at the start of each
// row and only slides for interior columns (radius < x < width-radius). Margin
// columns reuse whatever the window held last, so the leading margin sees the
// prefill and the trailing margin sees the final interior window.
type slidingMedian struct {
	hist   histSet
	window []uint8
	index  int
	radius int
}

func newSlidingMedian(radius int) *slidingMedian {
	return &slidingMedian{
		window: make([]uint8, 2*radius+1),
		radius: radius,
	}
}

// prefill resets the estimator and loads the greyscale values of the pixels
// starting at byte offset off, reading ahead one window's worth of the row.
func (m *slidingMedian) prefill(pix []byte, off int) {
	m.hist = histSet{}
	m.index = 0
	for j := range m.window {
		v := Greyscale(pix, off+4*j)
		m.window[j] = v
		m.hist.incr(v)
	}
}

// slide replaces the oldest slot of the ring with v.
func (m *slidingMedian) slide(v uint8) {
	m.index++
	if m.index >= len(m.window) {
		m.index = 0
	}
	m.hist.decr(m.window[m.index])
	m.window[m.index] = v
	m.hist.incr(v)
}

// advance updates the window for the pixel at byte offset off, which lies in
// column x and has greyscale value v, and returns its background estimate.
func (m *slidingMedian) advance(pix []byte, off, x, width int, v uint8) uint8 {
	if x == 0 {
		m.prefill(pix, off)
	} else if x > m.radius && x < width-m.radius {
		m.slide(v)
	}
	return m.median()
}

func (m *slidingMedian) median() uint8 {
	return m.hist.median()
}
