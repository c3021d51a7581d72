package hwio

import "sync/atomic"

// DefaultOpenBus is the value read from unmapped addresses when no other
// value is configured.
const DefaultOpenBus = 0xffff

// OpenBus serves unmapped addresses: reads return a fixed value and writes
// are dropped.
type OpenBus struct {
	Value uint16
}

func (ob OpenBus) Read16(uint32, bool) uint16 { return ob.Value }
func (ob OpenBus) Write16(uint32, uint16)     {}

// Watchdog counts the writes it receives. The frame driver periodically
// calls Check to verify the program is still alive.
type Watchdog struct {
	Name string

	kicks atomic.Uint64
	last  atomic.Uint64
}

func (w *Watchdog) Read16(uint32, bool) uint16 { return 0 }

func (w *Watchdog) Write16(uint32, uint16) { w.kicks.Add(1) }

// Kicks returns the total number of writes received.
func (w *Watchdog) Kicks() uint64 { return w.kicks.Load() }

// Check reports whether the watchdog was written since the previous call.
func (w *Watchdog) Check() bool {
	k := w.kicks.Load()
	return w.last.Swap(k) != k
}
