package hwio

import (
	"errors"
	"sort"

	"tunit/emu/log"
	"tunit/hw/hwdefs"
)

// log unmapped accesses at debug level (verbose, since games routinely probe
// unmapped areas)
const logUnmapped = true

// Handler serves 16-bit accesses for a mapped range. off is the offset of the
// access within the range, in units of the range's word size.
type Handler interface {
	// Read16 reads a word at the given offset. If peek is true, the read
	// shouldn't have any side effects (debugging/tracing).
	Read16(off uint32, peek bool) uint16
	Write16(off uint32, val uint16)
}

// ErrSealed is returned when modifying a sealed table.
var ErrSealed = errors.New("table is sealed")

// Span is a contiguous interval of addresses served by a single handler. The
// spans of a table never overlap and are sorted by address.
type Span struct {
	Start, End uint32 // inclusive
	Name       string // name of the handler

	base   uint32 // start of the mapping the span was cut from
	shift  uint8
	mirror uint32
	h      Handler
}

// Offset converts an address within s into a handler offset.
func (s *Span) Offset(addr uint32) uint32 {
	off := (addr - s.base) >> s.shift
	if s.mirror != 0 {
		off &= s.mirror
	}
	return off
}

// Handler returns the handler serving s.
func (s *Span) Handler() Handler { return s.h }

// Mapping describes a handler mapped over [Start, End].
type Mapping struct {
	Start, End uint32 // inclusive
	Shift      uint8  // address to offset shift
	Mirror     uint32 // optional offset mask, 0 means none
	Name       string
	Handler    Handler
}

// Table dispatches accesses over a 32-bit address space. It is built by
// overlaying mappings in order: a mapping takes priority over earlier ones on
// the addresses they share, and earlier mappings stay in place elsewhere.
// Addresses not covered by any mapping are served by the open bus handler.
type Table struct {
	Name string

	// Unmapped serves accesses to addresses not covered by any mapping.
	Unmapped Handler

	spans  []Span
	sealed bool
}

func NewTable(name string, openbus Handler) *Table {
	if openbus == nil {
		openbus = OpenBus{Value: DefaultOpenBus}
	}
	return &Table{Name: name, Unmapped: openbus}
}

// Reset removes all mappings and unseals the table.
func (t *Table) Reset() {
	t.spans = nil
	t.sealed = false
}

// Seal makes the table immutable. A sealed table can be consulted
// concurrently.
func (t *Table) Seal() { t.sealed = true }

func (t *Table) Sealed() bool { return t.sealed }

// Map overlays m on top of the current mappings.
func (t *Table) Map(m Mapping) error {
	if t.sealed {
		return ErrSealed
	}
	if m.End < m.Start {
		return hwdefs.Errorf(hwdefs.BadRange, m.Name, "end %08x < start %08x", m.End, m.Start)
	}
	if m.Handler == nil {
		return hwdefs.Errorf(hwdefs.UnknownHandler, m.Name, "nil handler")
	}

	log.ModHwIo.DebugZ("mapping").
		Hex32("start", m.Start).
		Hex32("end", m.End).
		String("handler", m.Name).
		String("bus", t.Name).
		End()

	t.carve(m.Start, m.End)
	sp := Span{
		Start:  m.Start,
		End:    m.End,
		Name:   m.Name,
		base:   m.Start,
		shift:  m.Shift,
		mirror: m.Mirror,
		h:      m.Handler,
	}
	i := sort.Search(len(t.spans), func(i int) bool { return t.spans[i].Start > m.End })
	t.spans = append(t.spans, Span{})
	copy(t.spans[i+1:], t.spans[i:])
	t.spans[i] = sp
	return nil
}

// Unmap removes [start, end] from the table, these addresses are then served
// by the open bus handler.
func (t *Table) Unmap(start, end uint32) error {
	if t.sealed {
		return ErrSealed
	}
	if end < start {
		return hwdefs.Errorf(hwdefs.BadRange, t.Name, "end %08x < start %08x", end, start)
	}
	t.carve(start, end)
	return nil
}

// carve removes [start, end] from all spans, splitting those which straddle
// the interval boundaries.
func (t *Table) carve(start, end uint32) {
	out := t.spans[:0:0]
	for _, sp := range t.spans {
		if sp.End < start || sp.Start > end {
			out = append(out, sp)
			continue
		}
		if sp.Start < start {
			left := sp
			left.End = start - 1
			out = append(out, left)
		}
		if sp.End > end {
			right := sp
			right.Start = end + 1
			out = append(out, right)
		}
	}
	t.spans = out
}

func (t *Table) search(addr uint32) *Span {
	i := sort.Search(len(t.spans), func(i int) bool { return t.spans[i].End >= addr })
	if i < len(t.spans) && t.spans[i].Start <= addr {
		return &t.spans[i]
	}
	return nil
}

// Resolve returns the handler serving addr and the offset of addr within it.
// Resolve never fails, unmapped addresses resolve to the open bus handler
// with the address itself as offset.
func (t *Table) Resolve(addr uint32) (Handler, uint32) {
	if sp := t.search(addr); sp != nil {
		return sp.h, sp.Offset(addr)
	}
	return t.Unmapped, addr
}

// Lookup returns the span containing addr, if any.
func (t *Table) Lookup(addr uint32) (Span, bool) {
	if sp := t.search(addr); sp != nil {
		return *sp, true
	}
	return Span{}, false
}

// Spans returns a copy of the compiled layout.
func (t *Table) Spans() []Span {
	return append([]Span(nil), t.spans...)
}

// Read16 forwards the read to the handler mapped at addr.
func (t *Table) Read16(addr uint32, peek bool) uint16 {
	sp := t.search(addr)
	if sp == nil {
		if logUnmapped && !peek {
			log.ModHwIo.DebugZ("unmapped Read16").
				String("name", t.Name).
				Hex32("addr", addr).
				End()
		}
		return t.Unmapped.Read16(addr, peek)
	}
	return sp.h.Read16(sp.Offset(addr), peek)
}

// Peek16 is a convenience function.
func (t *Table) Peek16(addr uint32) uint16 {
	return t.Read16(addr, true)
}

// Write16 forwards the write to the handler mapped at addr.
func (t *Table) Write16(addr uint32, val uint16) {
	sp := t.search(addr)
	if sp == nil {
		if logUnmapped {
			log.ModHwIo.DebugZ("unmapped Write16").
				String("name", t.Name).
				Hex32("addr", addr).
				Hex16("val", val).
				End()
		}
		t.Unmapped.Write16(addr, val)
		return
	}
	sp.h.Write16(sp.Offset(addr), val)
}
