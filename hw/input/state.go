package input

import (
	"fmt"
	"sync/atomic"

	"tunit/emu/log"
	"tunit/hw/hwio"
)

// State holds the live value of the ports of a PortSet. The input polling
// collaborator updates it while the CPU reads it, so values are atomic.
type State struct {
	set  *PortSet
	vals []atomic.Uint32
}

// NewState returns the live state of ps, initialized with default values.
func NewState(ps *PortSet) *State {
	s := &State{set: ps, vals: make([]atomic.Uint32, len(ps.Ports))}
	s.Reset()
	return s
}

// Reset releases all inputs and restores default dip settings.
func (s *State) Reset() {
	for i := range s.set.Ports {
		s.vals[i].Store(uint32(s.set.Ports[i].Default()))
	}
}

func (s *State) Ports() *PortSet { return s.set }

func (s *State) valid(port int) bool { return port >= 0 && port < len(s.vals) }

// Read returns the current value of the port at index port. Out of range
// ports read as all ones.
func (s *State) Read(port int) uint16 {
	if !s.valid(port) {
		return 0xffff
	}
	return uint16(s.vals[port].Load())
}

// Write forces the value of a whole port word. Out of range ports are
// ignored.
func (s *State) Write(port int, val uint16) {
	if !s.valid(port) {
		log.ModInput.WarnZ("write to unknown port").Int("port", port).End()
		return
	}
	s.vals[port].Store(uint32(val))
}

func (s *State) update(port int, f func(uint16) uint16) {
	for {
		old := s.vals[port].Load()
		if s.vals[port].CompareAndSwap(old, uint32(f(uint16(old)))) {
			return
		}
	}
}

// Set presses or releases the inputs of a port selected by mask, honoring
// the polarity of each bit. Pressing a toggle input flips it, releasing it
// does nothing. Out of range ports are ignored.
func (s *State) Set(port int, mask uint16, pressed bool) {
	if !s.valid(port) {
		log.ModInput.WarnZ("set on unknown port").Int("port", port).End()
		return
	}
	p := &s.set.Ports[port]
	s.update(port, func(v uint16) uint16 {
		for _, b := range p.Bits {
			m := b.Mask & mask
			if m == 0 {
				continue
			}
			if b.Flags&Toggle != 0 {
				if pressed {
					v ^= m
				}
				continue
			}
			hwio.SetBits16(&v, m, pressed == (b.Flags&ActiveHigh != 0))
		}
		return v
	})
}

// Press presses or releases the input of the given type and player, wherever
// it is mapped. It reports whether such an input exists.
func (s *State) Press(typ Type, player int, pressed bool) bool {
	found := false
	for i := range s.set.Ports {
		for _, b := range s.set.Ports[i].Bits {
			if b.Type == typ && b.Player == player {
				s.Set(i, b.Mask, pressed)
				found = true
			}
		}
	}
	return found
}

// SetDip moves a dip switch to the setting with the given label.
func (s *State) SetDip(port int, name, label string) error {
	if !s.valid(port) {
		return fmt.Errorf("%s: no port #%d", s.set.Name, port)
	}
	p := &s.set.Ports[port]
	d, ok := p.Dip(name)
	if !ok {
		return fmt.Errorf("port %s: no dip %q", p.Tag, name)
	}
	st, ok := d.Setting(label)
	if !ok {
		return fmt.Errorf("port %s: dip %q has no setting %q", p.Tag, name, label)
	}

	log.ModInput.DebugZ("set dip").
		String("port", p.Tag).
		String("dip", name).
		String("setting", label).
		End()

	s.update(port, func(v uint16) uint16 {
		hwio.ClearBits16(&v, d.Mask)
		return v | st.Value
	})
	return nil
}

// Apply applies a list of dip assignments.
func (s *State) Apply(assigns []Assignment) error {
	for _, a := range assigns {
		i := s.set.Port(a.Port)
		if i < 0 {
			return fmt.Errorf("%s: no port %q", s.set.Name, a.Port)
		}
		if err := s.SetDip(i, a.Dip, a.Setting); err != nil {
			return err
		}
	}
	return nil
}
