// Package tunit describes the Midway T-unit arcade hardware family: its
// main CPU address map, hardware blocks, input ports, ROM sets and game
// variants.
package tunit

import "tunit/hw/hwio"

// Names of the handlers served by collaborators outside this package.
const (
	HandlerVRAM       = "vram"
	HandlerDMA        = "dma"
	HandlerSound      = "sound"
	HandlerSoundState = "sound_state"
	HandlerIORegs     = "tms34010_io"
)

// Names of the handlers served by the machine instance.
const (
	HandlerCMOS       = "cmos"
	HandlerCMOSEnable = "cmos_enable"
	HandlerInput      = "input"
	HandlerControl    = "control"
	HandlerWatchdog   = "watchdog"
)

// Backing stores of the main CPU address space.
const (
	StoreScratch = "scratch"
	StoreCMOS    = "cmos"
	StorePalette = "palette"
	StoreGfxROM  = "gfxrom"
	StoreCodeROM = "coderom"
)

// Store sizes, in 16-bit words.
const (
	ScratchWords = 0x40000
	CMOSWords    = 0x2000
	PaletteWords = 0x8000
	CodeROMWords = 0x80000
)

// MapName is the name of the main CPU address map.
const MapName = "tunit"

// The TMS34010 addresses bits: a word is 16 addresses wide.
const wordShift = 4

func rng(start, end uint32, handler, store string) hwio.Range {
	return hwio.Range{Start: start, End: end, Handler: handler, Store: store, Shift: wordShift}
}

// AddressMap returns the address map of the main CPU.
func AddressMap() *hwio.AddressMap {
	return &hwio.AddressMap{
		Name: MapName,
		Read: []hwio.Range{
			rng(0x00000000, 0x003fffff, HandlerVRAM, ""),
			rng(0x01000000, 0x013fffff, hwio.HandlerRAM, StoreScratch),
			rng(0x01400000, 0x0141ffff, HandlerCMOS, ""),
			rng(0x01600000, 0x0160003f, HandlerInput, ""),
			rng(0x01800000, 0x0187ffff, hwio.HandlerRAM, StorePalette),
			rng(0x01a80000, 0x01a800ff, HandlerDMA, ""),
			rng(0x01d00000, 0x01d0001f, HandlerSoundState, ""),
			rng(0x01d01020, 0x01d0103f, HandlerSound, ""),
			rng(0x02000000, 0x07ffffff, hwio.HandlerROM, StoreGfxROM),
			rng(0xc0000000, 0xc00001ff, HandlerIORegs, ""),
			rng(0xff800000, 0xffffffff, hwio.HandlerROM, StoreCodeROM),
		},
		Write: []hwio.Range{
			rng(0x00000000, 0x003fffff, HandlerVRAM, ""),
			rng(0x01000000, 0x013fffff, hwio.HandlerRAM, StoreScratch),
			rng(0x01400000, 0x0141ffff, HandlerCMOS, ""),
			rng(0x01480000, 0x014fffff, HandlerCMOSEnable, ""),
			rng(0x01800000, 0x0187ffff, hwio.HandlerRAM, StorePalette),
			rng(0x01a80000, 0x01a800ff, HandlerDMA, ""),
			rng(0x01b00000, 0x01b0001f, HandlerControl, ""),
			rng(0x01d01020, 0x01d0103f, HandlerSound, ""),
			rng(0x01d81060, 0x01d8107f, HandlerWatchdog, ""),
			rng(0x01f00000, 0x01f0001f, HandlerControl, ""),
			rng(0x02000000, 0x07ffffff, hwio.HandlerROM, StoreGfxROM),
			rng(0xc0000000, 0xc00001ff, HandlerIORegs, ""),
			rng(0xff800000, 0xffffffff, hwio.HandlerROM, StoreCodeROM),
		},
	}
}
