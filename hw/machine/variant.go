package machine

import (
	"fmt"
	"maps"
	"slices"

	"tunit/hw/hwio"
	"tunit/hw/input"
	"tunit/hw/romset"
)

// Rotation is the screen orientation of a cabinet, in degrees clockwise.
type Rotation uint16

const (
	ROT0   Rotation = 0
	ROT90  Rotation = 90
	ROT180 Rotation = 180
	ROT270 Rotation = 270
)

func (r Rotation) String() string { return fmt.Sprintf("ROT%d", uint16(r)) }

// A Variant declares a game. A variant with a Parent is a clone: its empty
// fields are inherited from the parent, and its ROM set is a diff over the
// parent's resolved ROM set.
type Variant struct {
	Name         string   `yaml:"name"`
	Parent       string   `yaml:"parent,omitempty"`
	Year         int      `yaml:"year,omitempty"`
	Manufacturer string   `yaml:"manufacturer,omitempty"`
	Description  string   `yaml:"description"`
	Block        string   `yaml:"block,omitempty"`
	Ports        string   `yaml:"ports,omitempty"`
	ROMs         string   `yaml:"roms,omitempty"`
	Init         string   `yaml:"init,omitempty"`     // driver init name
	Controls     string   `yaml:"controls,omitempty"` // control panel description
	Bootstrap    string   `yaml:"bootstrap,omitempty"`
	Rotation     Rotation `yaml:"rotation,omitempty"`
	KnownIssues  []string `yaml:"known_issues,omitempty"`
}

// inherit fills the fields of v left empty from its resolved parent.
func (v *Variant) inherit(p *Variant) {
	if v.Year == 0 {
		v.Year = p.Year
	}
	if v.Manufacturer == "" {
		v.Manufacturer = p.Manufacturer
	}
	if v.Block == "" {
		v.Block = p.Block
	}
	if v.Ports == "" {
		v.Ports = p.Ports
	}
	if v.Init == "" {
		v.Init = p.Init
	}
	if v.Controls == "" {
		v.Controls = p.Controls
	}
	if v.Rotation == ROT0 {
		v.Rotation = p.Rotation
	}
}

// Game is the fully resolved description of a variant.
type Game struct {
	Variant
	Machine *Block
	PortSet *input.PortSet
	ROMSet  *romset.Set
	Maps    map[string]*hwio.AddressMap // by CPU tag
}

// IsClone reports whether g is a clone of another variant.
func (g *Game) IsClone() bool { return g.Parent != "" }

// MainCPU returns the first CPU of the machine.
func (g *Game) MainCPU() *CPU {
	if len(g.Machine.CPUs) == 0 {
		return nil
	}
	return &g.Machine.CPUs[0]
}

// Map returns the address map of the main CPU.
func (g *Game) Map() *hwio.AddressMap {
	if cpu := g.MainCPU(); cpu != nil {
		return g.Maps[cpu.Tag]
	}
	return nil
}

// clone returns a copy of g whose machine description may be modified.
// Ports, ROMs and address maps are immutable and shared.
func (g *Game) clone() *Game {
	c := *g
	c.KnownIssues = slices.Clone(g.KnownIssues)
	c.Machine = g.Machine.Clone()
	c.Maps = maps.Clone(g.Maps)
	return &c
}
