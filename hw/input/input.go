// Package input describes the input ports of a machine: the logical meaning
// of each bit of a 16-bit port word, and the settings of dip switches.
package input

//go:generate go tool stringer -type=Type -linecomment

// Type is the logical input connected to a port bit.
type Type uint8

const (
	Unused        Type = iota // unused
	Unknown                   // unknown
	JoystickUp                // up
	JoystickDown              // down
	JoystickLeft              // left
	JoystickRight             // right
	Button1                   // button1
	Button2                   // button2
	Button3                   // button3
	Button4                   // button4
	Button5                   // button5
	Button6                   // button6
	Coin1                     // coin1
	Coin2                     // coin2
	Coin3                     // coin3
	Coin4                     // coin4
	Start1                    // start1
	Start2                    // start2
	Start3                    // start3
	Start4                    // start4
	Tilt                      // tilt
	Service                   // service
	Service1                  // service1
	VolumeDown                // volume-down
	VolumeUp                  // volume-up
)

// Flags qualify a port bit.
type Flags uint8

const (
	Way8       Flags = 1 << iota // 8-way joystick
	Toggle                       // each press flips the bit
	ActiveHigh                   // bit reads 1 when pressed (default is active low)
)

// Bit describes the bits of a port word selected by Mask.
type Bit struct {
	Mask   uint16
	Type   Type
	Player int // 1-based, 0 for shared inputs
	Flags  Flags
	Name   string
}

// released returns the value of the bit when the input is not pressed.
func (b Bit) released() uint16 {
	if b.Flags&ActiveHigh != 0 {
		return 0
	}
	return b.Mask
}

// Setting is one position of a dip switch.
type Setting struct {
	Value uint16
	Label string
}

// Dip is a multi-position switch occupying the bits selected by Mask.
type Dip struct {
	Mask     uint16
	Default  uint16
	Name     string
	Settings []Setting
}

// Setting returns the setting with the given label.
func (d *Dip) Setting(label string) (Setting, bool) {
	for _, s := range d.Settings {
		if s.Label == label {
			return s, true
		}
	}
	return Setting{}, false
}

// Current returns the setting matching the dip bits of v.
func (d *Dip) Current(v uint16) (Setting, bool) {
	for _, s := range d.Settings {
		if s.Value == v&d.Mask {
			return s, true
		}
	}
	return Setting{}, false
}

// Port is a 16-bit input word. Bits and dips partition the 16 bits.
type Port struct {
	Tag  string
	Bits []Bit
	Dips []Dip
}

// Default returns the value of the port when no input is pressed and all
// dips are in their default position.
func (p *Port) Default() uint16 {
	var v uint16
	for _, b := range p.Bits {
		v |= b.released()
	}
	for _, d := range p.Dips {
		v |= d.Default & d.Mask
	}
	return v
}

// Dip returns the dip switch with the given name.
func (p *Port) Dip(name string) (*Dip, bool) {
	for i := range p.Dips {
		if p.Dips[i].Name == name {
			return &p.Dips[i], true
		}
	}
	return nil, false
}

// PortSet is the ordered list of ports read by a machine. A set may be
// declared as a diff over Base: its ports replace the base ports with the
// same tag, the other base ports are inherited.
type PortSet struct {
	Name  string
	Base  string
	Ports []Port
}

// Port returns the index of the port with the given tag, or -1.
func (ps *PortSet) Port(tag string) int {
	for i := range ps.Ports {
		if ps.Ports[i].Tag == tag {
			return i
		}
	}
	return -1
}

// Defaults returns the default value of all ports.
func (ps *PortSet) Defaults() []uint16 {
	vals := make([]uint16, len(ps.Ports))
	for i := range ps.Ports {
		vals[i] = ps.Ports[i].Default()
	}
	return vals
}

// Override returns a new set made of ps's ports, where ports redeclared by
// child are replaced, and new ports of child are appended. Port contents are
// shared with ps and child, not copied.
func (ps *PortSet) Override(child *PortSet) *PortSet {
	out := &PortSet{Name: child.Name, Ports: append([]Port(nil), ps.Ports...)}
	for _, p := range child.Ports {
		if i := out.Port(p.Tag); i >= 0 {
			out.Ports[i] = p
		} else {
			out.Ports = append(out.Ports, p)
		}
	}
	return out
}
