package machine

import "slices"

// apply overlays the fields set by o onto b, which must be owned by the
// caller. o is not modified and none of its slices are retained.
func (b *Block) apply(o *Block) {
	for _, c := range o.CPUs {
		if cur, ok := b.CPU(c.Tag); ok {
			*cur = c
		} else {
			b.CPUs = append(b.CPUs, c)
		}
	}
	if o.Timing != nil {
		if b.Timing == nil {
			b.Timing = &Timing{}
		}
		b.Timing.apply(o.Timing)
	}
	if o.Video != nil {
		v := *o.Video
		b.Video = &v
	}
	if o.Audio != nil {
		if b.Audio == nil {
			b.Audio = &Audio{}
		}
		b.Audio.apply(o.Audio)
	}
	if o.NVRAM != nil {
		n := *o.NVRAM
		b.NVRAM = &n
	}
	if o.Init != "" {
		b.Init = o.Init
	}
}

// apply overrides the timing fields set by o. An explicit blanking duration
// is dropped when o changes the parameters it would be derived from, unless
// o sets one itself.
func (t *Timing) apply(o *Timing) {
	geometry := false
	if o.Refresh != 0 {
		t.Refresh = o.Refresh
		geometry = true
	}
	if o.ScanTotal != 0 {
		t.ScanTotal = o.ScanTotal
		geometry = true
	}
	if o.ScanVisible != 0 {
		t.ScanVisible = o.ScanVisible
		geometry = true
	}
	switch {
	case o.VBlank != 0:
		t.VBlank = o.VBlank
	case geometry:
		t.VBlank = 0
	}
}

func (a *Audio) apply(o *Audio) {
	if o.Board != "" {
		a.Board = o.Board
	}
	for _, attr := range o.Attributes {
		if !slices.Contains(a.Attributes, attr) {
			a.Attributes = append(a.Attributes, attr)
		}
	}
	for _, c := range o.Chips {
		c.Samples = slices.Clone(c.Samples)
		if cur, ok := a.Chip(c.Tag); ok {
			*cur = c
		} else {
			a.Chips = append(a.Chips, c)
		}
	}
}
