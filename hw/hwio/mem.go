package hwio

import (
	"encoding/binary"

	"tunit/emu/log"
)

// mem is the handler used for linear memory access.
//
// We use this structure by pointer rather than by value because it is stored as
// Handler interface within Table, and checking if a concrete pointer type is
// behind the interface is faster than checking a non-pointer type.
type mem struct {
	name string
	buf  []uint16
	size uint32
	wcb  func(uint32, uint16)
	ro   MemFlags
}

func newMem(name string, buf []uint16, wcb func(uint32, uint16), roflag MemFlags) *mem {
	if len(buf) == 0 {
		panic("empty memory buffer: " + name)
	}
	return &mem{
		name: name,
		buf:  buf,
		size: uint32(len(buf)),
		wcb:  wcb,
		ro:   roflag,
	}
}

func (m *mem) Read16(off uint32, _ bool) uint16 {
	return m.buf[off%m.size]
}

func (m *mem) Write16(off uint32, val uint16) {
	switch {
	case m.ro == MemFlagReadWrite:
		m.buf[off%m.size] = val
		if m.wcb != nil {
			m.wcb(off%m.size, val)
		}
	case m.ro&MemFlagNoROLog != 0:
		return
	default:
		log.ModHwIo.ErrorZ("Write16 to readonly memory").
			String("name", m.name).
			Hex32("off", off).
			Hex16("val", val).
			End()
	}
}

type MemFlags int

const (
	MemFlagReadWrite MemFlags = 0
	MemFlagReadOnly  MemFlags = (1 << iota) // read-only accesses
	MemFlagNoROLog                          // skip logging attempts to write when configured to readonly
)

// Linear memory area, used as backing store of mapped ranges. Accesses beyond
// the end of Data wrap around.
//
// NOTE: this structure does not directly implement the Handler interface.
// Clients must call the Handler method to create an adaptor that implements
// memory access depending on the memory configuration.
type Mem struct {
	Name    string               // name of the memory area (for debugging)
	Data    []uint16             // actual memory buffer
	Flags   MemFlags             // flags determining how the memory can be accessed
	WriteCb func(uint32, uint16) // optional callback, called after each write
}

// NewMem allocates a zeroed memory area of the given size in words.
func NewMem(name string, words int, flags MemFlags) *Mem {
	return &Mem{Name: name, Data: make([]uint16, words), Flags: flags}
}

// MemFromBytes builds a memory area from little-endian byte data.
func MemFromBytes(name string, b []byte, flags MemFlags) *Mem {
	m := &Mem{Name: name, Data: make([]uint16, (len(b)+1)/2), Flags: flags}
	for i := range len(b) / 2 {
		m.Data[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	if len(b)%2 != 0 {
		m.Data[len(m.Data)-1] = uint16(b[len(b)-1])
	}
	return m
}

func (m *Mem) Handler() Handler {
	return newMem(m.Name, m.Data, m.WriteCb, m.Flags)
}

// ReadOnly returns a handler that serves m's content but ignores writes.
func (m *Mem) ReadOnly() Handler {
	return newMem(m.Name, m.Data, nil, MemFlagReadOnly|MemFlagNoROLog)
}

// Bytes returns the content of m as little-endian bytes.
func (m *Mem) Bytes() []byte {
	b := make([]byte, 2*len(m.Data))
	for i, w := range m.Data {
		binary.LittleEndian.PutUint16(b[2*i:], w)
	}
	return b
}

// Load replaces the content of m with little-endian bytes from b. Extra data
// is ignored, missing data leaves the tail of m untouched.
func (m *Mem) Load(b []byte) {
	for i := 0; i < len(m.Data) && 2*i+1 < len(b); i++ {
		m.Data[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
}
