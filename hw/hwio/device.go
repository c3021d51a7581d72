package hwio

import "tunit/emu/log"

// Device is a Handler implementation that allows manual management of an
// entire range of memory.
type Device struct {
	Name  string // name of the memory area (for debugging)
	Flags RWFlags

	ReadCb  func(off uint32) uint16
	PeekCb  func(off uint32) uint16
	WriteCb func(off uint32, val uint16)
}

func (d *Device) Read16(off uint32, peek bool) uint16 {
	if peek {
		if d.PeekCb != nil {
			return d.PeekCb(off)
		}
		return 0
	}
	switch {
	case d.Flags&WriteOnlyFlag != 0:
		log.ModHwIo.ErrorZ("invalid Read16 from writeonly device").
			String("name", d.Name).
			Hex32("off", off).
			End()
		fallthrough
	case d.ReadCb == nil:
		return 0
	}
	return d.ReadCb(off)
}

func (d *Device) Write16(off uint32, val uint16) {
	switch {
	case d.Flags&ReadOnlyFlag != 0:
		log.ModHwIo.ErrorZ("invalid Write16 to readonly device").
			String("name", d.Name).
			Hex32("off", off).
			End()
		fallthrough
	case d.WriteCb == nil:
		return
	}
	d.WriteCb(off, val)
}

// Nop ignores writes and reads as zero.
type Nop struct{}

func (Nop) Read16(uint32, bool) uint16 { return 0 }
func (Nop) Write16(uint32, uint16)     {}
