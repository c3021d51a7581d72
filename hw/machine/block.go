// Package machine composes named hardware configuration blocks and game
// variants into fully resolved machine descriptions.
package machine

import (
	"slices"
	"time"
)

// CPU describes a processor. Blocks declare CPUs by tag: a CPU declared by
// an importing block replaces the imported CPU with the same tag as a whole.
type CPU struct {
	Tag          string `yaml:"tag"`
	Type         string `yaml:"type"`
	Clock        uint64 `yaml:"clock"`         // Hz
	Map          string `yaml:"map,omitempty"` // address map name
	ToShiftReg   string `yaml:"to_shiftreg,omitempty"`
	FromShiftReg string `yaml:"from_shiftreg,omitempty"`
}

// Timing describes the frame timing of the video output. Zero fields are
// not set and are inherited from imported blocks.
type Timing struct {
	Refresh     float64       `yaml:"refresh"` // Hz
	ScanTotal   int           `yaml:"scan_total"`
	ScanVisible int           `yaml:"scan_visible"`
	VBlank      time.Duration `yaml:"vblank,omitempty"` // explicit blanking duration
}

// Rect is an inclusive pixel rectangle.
type Rect struct {
	MinX int `yaml:"min_x"`
	MaxX int `yaml:"max_x"`
	MinY int `yaml:"min_y"`
	MaxY int `yaml:"max_y"`
}

// Width returns the number of columns of r.
func (r Rect) Width() int { return r.MaxX - r.MinX + 1 }

// Height returns the number of lines of r.
func (r Rect) Height() int { return r.MaxY - r.MinY + 1 }

// Video describes the video output.
type Video struct {
	Type    string `yaml:"type"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Visible Rect   `yaml:"visible"`
	Palette int    `yaml:"palette"`
	Start   string `yaml:"start,omitempty"`
	Update  string `yaml:"update,omitempty"`
}

// SoundChip is a sound device of the audio subsystem.
type SoundChip struct {
	Tag      string   `yaml:"tag"`
	Type     string   `yaml:"type"`
	Clock    uint64   `yaml:"clock,omitempty"`
	Channels int      `yaml:"channels,omitempty"`
	Volume   int      `yaml:"volume,omitempty"`
	Pack     string   `yaml:"pack,omitempty"` // sample pack name
	Samples  []string `yaml:"samples,omitempty"`
}

// Audio describes the audio subsystem. An importing block may select
// another board, add attributes and add or replace chips by tag.
type Audio struct {
	Board      string      `yaml:"board,omitempty"`
	Attributes []string    `yaml:"attributes,omitempty"`
	Chips      []SoundChip `yaml:"chips,omitempty"`
}

// Stereo reports whether the subsystem supports stereo output.
func (a *Audio) Stereo() bool { return slices.Contains(a.Attributes, AttrStereo) }

// Chip returns the chip with the given tag.
func (a *Audio) Chip(tag string) (*SoundChip, bool) {
	for i := range a.Chips {
		if a.Chips[i].Tag == tag {
			return &a.Chips[i], true
		}
	}
	return nil, false
}

// AttrStereo is the audio attribute of stereo capable subsystems.
const AttrStereo = "stereo"

// NVRAM describes the non-volatile memory handling.
type NVRAM struct {
	Handler string `yaml:"handler"`
	Fill    byte   `yaml:"fill,omitempty"`
}

// A Block is a named, composable unit of hardware configuration. Imports are
// applied in order before the block's own fields; nil fields are not set by
// the block.
type Block struct {
	Name    string   `yaml:"name"`
	Imports []string `yaml:"imports,omitempty"`
	CPUs    []CPU    `yaml:"cpus,omitempty"`
	Timing  *Timing  `yaml:"timing,omitempty"`
	Video   *Video   `yaml:"video,omitempty"`
	Audio   *Audio   `yaml:"audio,omitempty"`
	NVRAM   *NVRAM   `yaml:"nvram,omitempty"`
	Init    string   `yaml:"init,omitempty"` // machine init name
}

// CPU returns the CPU with the given tag.
func (b *Block) CPU(tag string) (*CPU, bool) {
	for i := range b.CPUs {
		if b.CPUs[i].Tag == tag {
			return &b.CPUs[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy of b.
func (b *Block) Clone() *Block {
	c := *b
	c.Imports = slices.Clone(b.Imports)
	c.CPUs = slices.Clone(b.CPUs)
	if b.Timing != nil {
		t := *b.Timing
		c.Timing = &t
	}
	if b.Video != nil {
		v := *b.Video
		c.Video = &v
	}
	if b.Audio != nil {
		c.Audio = b.Audio.clone()
	}
	if b.NVRAM != nil {
		n := *b.NVRAM
		c.NVRAM = &n
	}
	return &c
}

func (a *Audio) clone() *Audio {
	c := &Audio{
		Board:      a.Board,
		Attributes: slices.Clone(a.Attributes),
		Chips:      slices.Clone(a.Chips),
	}
	for i := range c.Chips {
		c.Chips[i].Samples = slices.Clone(c.Chips[i].Samples)
	}
	return c
}
