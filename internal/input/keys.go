// Package input holds the key-state array the simulation reads and the
// latch that builds it from press-only terminal events.
package input

// Keys is the key-down state indexed by key code. Letter keys use their
// uppercase ASCII code.
type Keys [256]bool

// Key codes read by the simulation and the hosts.
const (
	KeyUp      byte = 'W'
	KeyLeft    byte = 'A'
	KeyDown    byte = 'S'
	KeyRight   byte = 'D'
	KeyRestart byte = 'R'
	KeyQuit    byte = 'Q'
)

// Down reports whether code is held.
func (k *Keys) Down(code byte) bool { return k[code] }

// Reset releases every key.
func (k *Keys) Reset() { *k = Keys{} }

// Latch turns press events into held keys. Terminals report a press and
// then auto-repeat, never a release, so a key counts as down until Hold
// seconds pass without another press.
type Latch struct {
	Hold  float64
	now   float64
	until [256]float64
	seen  [256]bool
}

// NewLatch creates a Latch with the given hold window in seconds.
func NewLatch(hold float64) *Latch { return &Latch{Hold: hold} }

// Press records a press or auto-repeat of code.
func (l *Latch) Press(code byte) {
	l.until[code] = l.now + l.Hold
	l.seen[code] = true
}

// Release drops code immediately, for hosts that do report releases.
func (l *Latch) Release(code byte) { l.seen[code] = false }

// Advance moves the latch clock forward by dt seconds.
func (l *Latch) Advance(dt float64) { l.now += dt }

// Fill writes the current held state into k.
func (l *Latch) Fill(k *Keys) {
	for i := range k {
		k[i] = l.seen[i] && l.until[i] > l.now
	}
}
