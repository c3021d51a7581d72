package input

import (
	"fmt"

	"tunit/hw/hwdefs"
)

// Validate checks that the bits and dips of each port partition the 16 bits
// of the port word, that dip names are unique within a port, and that every
// dip has exactly one setting matching its default.
func (ps *PortSet) Validate() error {
	seen := make(map[string]bool, len(ps.Ports))
	for i := range ps.Ports {
		p := &ps.Ports[i]
		if p.Tag == "" {
			return hwdefs.Errorf(hwdefs.BadPorts, ps.Name, "port #%d has no tag", i)
		}
		if seen[p.Tag] {
			return hwdefs.Errorf(hwdefs.BadPorts, ps.Name, "duplicate port %s", p.Tag)
		}
		seen[p.Tag] = true
		if err := p.validate(); err != nil {
			return hwdefs.Errorf(hwdefs.BadPorts, ps.Name, "port %s: %w", p.Tag, err)
		}
	}
	return nil
}

func (p *Port) validate() error {
	var used uint16
	claim := func(mask uint16) bool {
		if mask == 0 || used&mask != 0 {
			return false
		}
		used |= mask
		return true
	}

	for _, b := range p.Bits {
		if !claim(b.Mask) {
			return fmt.Errorf("bit mask %#04x is empty or overlaps", b.Mask)
		}
	}
	names := make(map[string]bool, len(p.Dips))
	for i := range p.Dips {
		d := &p.Dips[i]
		if names[d.Name] {
			return fmt.Errorf("duplicate dip %q", d.Name)
		}
		names[d.Name] = true
		if !claim(d.Mask) {
			return fmt.Errorf("dip %q: mask %#04x is empty or overlaps", d.Name, d.Mask)
		}
		if err := d.validate(); err != nil {
			return err
		}
	}
	if used != 0xffff {
		return fmt.Errorf("bits %#04x are not declared", ^used)
	}
	return nil
}

func (d *Dip) validate() error {
	if d.Default&^d.Mask != 0 {
		return fmt.Errorf("dip %q: default %#04x outside of mask %#04x", d.Name, d.Default, d.Mask)
	}
	ndef := 0
	for _, s := range d.Settings {
		if s.Value&^d.Mask != 0 {
			return fmt.Errorf("dip %q: setting %q outside of mask %#04x", d.Name, s.Label, d.Mask)
		}
		if s.Value == d.Default {
			ndef++
		}
	}
	if ndef != 1 {
		return fmt.Errorf("dip %q: %d settings match the default, want 1", d.Name, ndef)
	}
	return nil
}
