package hwio

import (
	"fmt"

	"tunit/hw/hwdefs"
)

//go:generate go tool stringer -type=Direction -linecomment

// Direction selects the read or write table of an address space.
type Direction uint8

const (
	Read  Direction = iota // read
	Write                  // write
)

// Built-in handler names, served by the backing store of the range.
const (
	HandlerRAM = "ram" // read/write access to the store
	HandlerROM = "rom" // read access to the store, writes are dropped
	HandlerNop = "nop" // reads as zero, writes are dropped
)

// Range declares a handler over an inclusive interval of addresses.
type Range struct {
	Start, End uint32
	Handler    string // built-in handler or name bound in Handlers
	Store      string // backing store name, for built-in handlers
	Shift      uint8  // address to offset shift (4 for bit to word addressing)
	Mirror     uint32 // optional offset mask
}

func (r Range) String() string {
	s := fmt.Sprintf("%08x-%08x %s", r.Start, r.End, r.Handler)
	if r.Store != "" {
		s += "(" + r.Store + ")"
	}
	return s
}

// words returns the number of handler offsets covered by r.
func (r Range) words() uint64 {
	if r.Mirror != 0 {
		return uint64(r.Mirror) + 1
	}
	return uint64(r.End-r.Start)>>r.Shift + 1
}

// Handlers binds handler names to their implementation.
type Handlers map[string]Handler

// Stores binds backing store names to memory areas.
type Stores map[string]*Mem

// AddressMap is the declaration of an address space: one ordered list of
// ranges per access direction. In each list, a range overrides the ranges
// declared before it on the addresses they share.
type AddressMap struct {
	Name  string
	Read  []Range
	Write []Range
}

func (am *AddressMap) Ranges(dir Direction) []Range {
	if dir == Write {
		return am.Write
	}
	return am.Read
}

// Validate checks that all ranges are well formed.
func (am *AddressMap) Validate() error {
	for _, dir := range []Direction{Read, Write} {
		for i, r := range am.Ranges(dir) {
			if r.End < r.Start {
				return hwdefs.Errorf(hwdefs.BadRange, am.Name, "%s range #%d: end %08x < start %08x", dir, i, r.End, r.Start)
			}
			if r.Handler == "" {
				return hwdefs.Errorf(hwdefs.UnknownHandler, am.Name, "%s range #%d (%s): no handler", dir, i, r)
			}
		}
	}
	return nil
}

// Build compiles the address map into a sealed Bus. Handler names are looked
// up in handlers, backing stores in stores. openbus serves unmapped addresses
// (if nil, reads return DefaultOpenBus).
func (am *AddressMap) Build(handlers Handlers, stores Stores, openbus Handler) (*Bus, error) {
	if err := am.Validate(); err != nil {
		return nil, err
	}
	bus := &Bus{
		Name:  am.Name,
		Read:  NewTable(am.Name+"/read", openbus),
		Write: NewTable(am.Name+"/write", openbus),
	}
	for _, dir := range []Direction{Read, Write} {
		t := bus.Table(dir)
		for i, r := range am.Ranges(dir) {
			h, err := am.bind(r, handlers, stores)
			if err != nil {
				return nil, fmt.Errorf("%s range #%d (%s): %w", dir, i, r, err)
			}
			err = t.Map(Mapping{
				Start:   r.Start,
				End:     r.End,
				Shift:   r.Shift,
				Mirror:  r.Mirror,
				Name:    r.Handler,
				Handler: h,
			})
			if err != nil {
				return nil, err
			}
		}
		t.Seal()
	}
	return bus, nil
}

func (am *AddressMap) bind(r Range, handlers Handlers, stores Stores) (Handler, error) {
	switch r.Handler {
	case HandlerNop:
		return Nop{}, nil
	case HandlerRAM, HandlerROM:
		m := stores[r.Store]
		if m == nil {
			return nil, hwdefs.Errorf(hwdefs.UnknownName, am.Name, "unknown backing store %q", r.Store)
		}
		if uint64(len(m.Data)) < r.words() {
			return nil, hwdefs.Errorf(hwdefs.BadRange, am.Name, "backing store %q too small: %d words, need %d", r.Store, len(m.Data), r.words())
		}
		if r.Handler == HandlerROM {
			return m.ReadOnly(), nil
		}
		return m.Handler(), nil
	}
	h, ok := handlers[r.Handler]
	if !ok || h == nil {
		return nil, hwdefs.Errorf(hwdefs.UnknownHandler, am.Name, "unknown handler %q", r.Handler)
	}
	return h, nil
}

// Bus pairs the read and write tables of an address space.
type Bus struct {
	Name  string
	Read  *Table
	Write *Table
}

func (b *Bus) Table(dir Direction) *Table {
	if dir == Write {
		return b.Write
	}
	return b.Read
}

// Resolve returns the handler serving an access at addr in the given
// direction, and the offset of addr within that handler.
func (b *Bus) Resolve(dir Direction, addr uint32) (Handler, uint32) {
	return b.Table(dir).Resolve(addr)
}

func (b *Bus) Read16(addr uint32) uint16       { return b.Read.Read16(addr, false) }
func (b *Bus) Peek16(addr uint32) uint16       { return b.Read.Read16(addr, true) }
func (b *Bus) Write16(addr uint32, val uint16) { b.Write.Write16(addr, val) }
