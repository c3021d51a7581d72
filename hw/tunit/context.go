package tunit

import (
	"tunit/emu/log"
	"tunit/hw/hwio"
	"tunit/hw/machine"
)

//go:generate go tool stringer -type=SoundMode -linecomment

// SoundMode selects the sample pack replacing the music of a game.
type SoundMode uint8

const (
	SoundNone   SoundMode = iota // none
	SoundMK                      // mk
	SoundNBAJam                  // nbajam
)

// Control register bit numbers.
const (
	ctrlSoundReset = 4
	ctrlPICReset   = 5 // active low
)

// Context holds the state of one machine instance which is neither memory
// nor registers: sample pack selection, CMOS write protection and latches.
type Context struct {
	Variant string
	Init    string
	Sound   SoundMode
	Pack    string   // sample pack name
	Samples []string // sample files of the pack

	cmosUnlocked bool
	control      uint16
	soundCmd     uint16
}

// NewContext returns the context of a new instance of g.
func NewContext(g *machine.Game) *Context {
	c := &Context{Variant: g.Name, Init: g.Init}
	if a := g.Machine.Audio; a != nil {
		if chip, ok := a.Chip("samples"); ok {
			c.Pack = chip.Pack
			c.Samples = chip.Samples
			switch chip.Pack {
			case "mk":
				c.Sound = SoundMK
			case "nbajam":
				c.Sound = SoundNBAJam
			}
		}
	}
	c.Reset()
	return c
}

// Reset puts the context in its power-on state.
func (c *Context) Reset() {
	c.cmosUnlocked = false
	c.control = 0
	c.soundCmd = 0
}

func (c *Context) writeControl(old, val uint16) {
	c.control = val
	if hwio.GetBit16(old^val, ctrlSoundReset) {
		log.ModSound.DebugZ("sound cpu reset line").Bool("asserted", hwio.GetBit16(val, ctrlSoundReset)).End()
	}
}

// SoundReset reports whether the sound CPU is held in reset.
func (c *Context) SoundReset() bool { return hwio.GetBit16(c.control, ctrlSoundReset) }

// PICReset reports whether the security chip is held in reset.
func (c *Context) PICReset() bool { return !hwio.GetBit16(c.control, ctrlPICReset) }

// SoundCommand returns the last command written to the sound board.
func (c *Context) SoundCommand() uint16 { return c.soundCmd }

// unlockCMOS enables a single CMOS write.
func (c *Context) unlockCMOS() { c.cmosUnlocked = true }

// consumeCMOS reports whether a CMOS write is allowed, and relocks.
func (c *Context) consumeCMOS() bool {
	ok := c.cmosUnlocked
	c.cmosUnlocked = false
	return ok
}
