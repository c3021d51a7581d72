package tunit

import (
	"maps"

	"tunit/emu/log"
	"tunit/hw/hwdefs"
	"tunit/hw/hwio"
	"tunit/hw/input"
	"tunit/hw/machine"
	"tunit/hw/nvram"
	"tunit/hw/romset"
)

// Options configures a machine instance.
type Options struct {
	// Handlers binds the collaborators serving video RAM, DMA, sound and
	// TMS34010 I/O registers. See StubHandlers.
	Handlers hwio.Handlers

	Image        *romset.Image                // loaded ROMs, nil leaves ROMs empty
	NVRAM        nvram.Dir                    // CMOS persistence, empty to disable
	StrictCMOS   bool                         // CMOS writes require a prior write to the enable register
	Dips         []input.Assignment           // dip switch settings applied at power-on
	PaletteWrite func(idx uint32, val uint16) // called after each palette RAM write
}

// Machine is an instance of a T-unit variant: backing stores, live input
// state and the sealed main CPU bus.
type Machine struct {
	Game     *machine.Game
	Ctx      *Context
	Bus      *hwio.Bus
	Input    *input.State
	Stores   hwio.Stores
	Watchdog *hwio.Watchdog
	Control  *hwio.Reg16

	nvram  nvram.Dir
	strict bool
}

// NewMachine builds an instance of g.
func NewMachine(g *machine.Game, opts Options) (*Machine, error) {
	if !KnownInit(g.Init) {
		return nil, hwdefs.Errorf(hwdefs.UnknownName, g.Name, "unknown driver init %q", g.Init)
	}
	am := g.Map()
	if am == nil {
		return nil, hwdefs.Errorf(hwdefs.UnknownName, g.Name, "main cpu has no address map")
	}

	m := &Machine{
		Game:     g,
		Ctx:      NewContext(g),
		Input:    input.NewState(g.PortSet),
		Watchdog: &hwio.Watchdog{Name: HandlerWatchdog},
		nvram:    opts.NVRAM,
		strict:   opts.StrictCMOS,
	}
	m.Control = &hwio.Reg16{Name: HandlerControl, Flags: hwio.WriteOnlyFlag, WriteCb: m.Ctx.writeControl}

	code, err := romStore(g, opts.Image, "user1", StoreCodeROM)
	if err != nil {
		return nil, err
	}
	gfx, err := romStore(g, opts.Image, "gfx1", StoreGfxROM)
	if err != nil {
		return nil, err
	}
	palette := hwio.NewMem(StorePalette, PaletteWords, hwio.MemFlagReadWrite)
	palette.WriteCb = opts.PaletteWrite
	m.Stores = hwio.Stores{
		StoreScratch: hwio.NewMem(StoreScratch, ScratchWords, hwio.MemFlagReadWrite),
		StoreCMOS:    hwio.NewMem(StoreCMOS, CMOSWords, hwio.MemFlagReadWrite),
		StorePalette: palette,
		StoreCodeROM: code,
		StoreGfxROM:  gfx,
	}

	if err := m.loadNVRAM(); err != nil {
		return nil, err
	}
	if err := m.Input.Apply(opts.Dips); err != nil {
		return nil, err
	}

	handlers := maps.Clone(opts.Handlers)
	if handlers == nil {
		handlers = make(hwio.Handlers)
	}
	if snd, ok := handlers[HandlerSound]; ok && snd != nil {
		handlers[HandlerSound] = m.soundHandler(snd)
	}
	maps.Copy(handlers, m.handlers())

	if m.Bus, err = am.Build(handlers, m.Stores, nil); err != nil {
		return nil, err
	}

	log.ModEmu.InfoZ("machine ready").
		String("variant", g.Name).
		String("init", g.Init).
		Stringer("sound", m.Ctx.Sound).
		Int("spans", len(m.Bus.Read.Spans())+len(m.Bus.Write.Spans())).
		End()
	return m, nil
}

func romStore(g *machine.Game, img *romset.Image, tag, name string) (*hwio.Mem, error) {
	r, ok := g.ROMSet.Region(tag)
	if !ok {
		return nil, hwdefs.Errorf(hwdefs.BadROM, g.Name, "no %s region", tag)
	}
	if img != nil {
		if b := img.Region(tag); b != nil {
			return hwio.MemFromBytes(name, b, hwio.MemFlagReadOnly), nil
		}
	}
	return hwio.NewMem(name, int(r.Length/2), hwio.MemFlagReadOnly), nil
}

// handlers returns the handlers served by the instance itself.
func (m *Machine) handlers() hwio.Handlers {
	cmos := m.Stores[StoreCMOS].Handler()
	return hwio.Handlers{
		HandlerCMOS: &hwio.Device{
			Name:   HandlerCMOS,
			ReadCb: func(off uint32) uint16 { return cmos.Read16(off, false) },
			PeekCb: func(off uint32) uint16 { return cmos.Read16(off, true) },
			WriteCb: func(off uint32, val uint16) {
				if !m.Ctx.consumeCMOS() && m.strict {
					log.ModNVRAM.WarnZ("CMOS write while locked").Hex32("off", off).Hex16("val", val).End()
					return
				}
				cmos.Write16(off, val)
			},
		},
		HandlerCMOSEnable: &hwio.Device{
			Name:    HandlerCMOSEnable,
			Flags:   hwio.WriteOnlyFlag,
			WriteCb: func(uint32, uint16) { m.Ctx.unlockCMOS() },
		},
		HandlerInput: &hwio.Device{
			Name:   HandlerInput,
			Flags:  hwio.ReadOnlyFlag,
			ReadCb: func(off uint32) uint16 { return m.Input.Read(int(off)) },
			PeekCb: func(off uint32) uint16 { return m.Input.Read(int(off)) },
		},
		HandlerControl:  m.Control,
		HandlerWatchdog: m.Watchdog,
	}
}

// soundHandler records the commands written to the sound board before
// forwarding them.
func (m *Machine) soundHandler(snd hwio.Handler) hwio.Handler {
	return &hwio.Device{
		Name:   HandlerSound,
		ReadCb: func(off uint32) uint16 { return snd.Read16(off, false) },
		PeekCb: func(off uint32) uint16 { return snd.Read16(off, true) },
		WriteCb: func(off uint32, val uint16) {
			m.Ctx.soundCmd = val
			log.ModSound.DebugZ("sound command").Hex16("cmd", val).Stringer("mode", m.Ctx.Sound).End()
			snd.Write16(off, val)
		},
	}
}

func (m *Machine) fill() byte {
	if nv := m.Game.Machine.NVRAM; nv != nil {
		return nv.Fill
	}
	return 0
}

func (m *Machine) loadNVRAM() error {
	cmos := m.Stores[StoreCMOS]
	if m.nvram == "" {
		nvram.Fill(cmos, m.fill())
		return nil
	}
	_, err := m.nvram.Load(m.Game.Name, cmos, m.fill())
	return err
}

// SaveNVRAM writes the CMOS content to the NVRAM directory, if any.
func (m *Machine) SaveNVRAM() error {
	if m.nvram == "" {
		return nil
	}
	return m.nvram.Save(m.Game.Name, m.Stores[StoreCMOS])
}

// Reset puts the machine in its power-on state. Memory content is kept.
func (m *Machine) Reset() {
	m.Ctx.Reset()
	m.Input.Reset()
	m.Control.Value = 0
}

// Close saves the CMOS content.
func (m *Machine) Close() error { return m.SaveNVRAM() }

// StubHandlers returns handlers standing in for the external collaborators:
// reads return stub values and writes are dropped. Accesses are logged at
// debug level.
func StubHandlers() hwio.Handlers {
	stub := func(name string, val uint16) hwio.Handler {
		return &hwio.Device{
			Name: name,
			ReadCb: func(off uint32) uint16 {
				log.ModHwIo.DebugZ("stub read").String("handler", name).Hex32("off", off).End()
				return val
			},
			PeekCb: func(uint32) uint16 { return val },
			WriteCb: func(off uint32, v uint16) {
				log.ModHwIo.DebugZ("stub write").String("handler", name).Hex32("off", off).Hex16("val", v).End()
			},
		}
	}
	return hwio.Handlers{
		HandlerVRAM:       stub(HandlerVRAM, 0),
		HandlerDMA:        stub(HandlerDMA, 0),
		HandlerSound:      stub(HandlerSound, 0),
		HandlerSoundState: stub(HandlerSoundState, 0xffff),
		HandlerIORegs:     stub(HandlerIORegs, 0),
	}
}
