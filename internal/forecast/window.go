package forecast

// HistoryLen is the number of daily totals in a rolling history.
const HistoryLen = 7

// Window is a fixed-size ring buffer holding the trailing HistoryLen daily
// totals. Pushing a value evicts the oldest one.
type Window struct {
	buf  [HistoryLen]float64
	head int // index of the oldest value
}

// NewWindow returns a window seeded with history, oldest first.
func NewWindow(history [HistoryLen]float64) *Window {
	return &Window{buf: history}
}

// Push appends v as the newest value and drops the oldest.
func (w *Window) Push(v float64) {
	w.buf[w.head] = v
	w.head = (w.head + 1) % HistoryLen
}

// Mean returns the average of the values currently in the window.
func (w *Window) Mean() float64 {
	var sum float64
	for _, v := range w.buf {
		sum += v
	}
	return sum / HistoryLen
}

// Values returns the window contents, oldest first.
func (w *Window) Values() [HistoryLen]float64 {
	var out [HistoryLen]float64
	for i := 0; i < HistoryLen; i++ {
		out[i] = w.buf[(w.head+i)%HistoryLen]
	}
	return out
}
