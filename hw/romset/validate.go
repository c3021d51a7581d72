package romset

import (
	"encoding/hex"
	"fmt"

	"tunit/hw/hwdefs"
)

// Validate checks that every load stays inside its region, and that no two
// loads write to the same bytes, reloads included.
func (s *Set) Validate() error {
	seen := make(map[string]bool, len(s.Regions))
	for i := range s.Regions {
		r := &s.Regions[i]
		if r.Tag == "" {
			return hwdefs.Errorf(hwdefs.BadROM, s.Name, "region #%d has no tag", i)
		}
		if seen[r.Tag] {
			return hwdefs.Errorf(hwdefs.BadROM, s.Name, "duplicate region %s", r.Tag)
		}
		seen[r.Tag] = true
		if err := r.validate(); err != nil {
			return hwdefs.Errorf(hwdefs.BadROM, s.Name, "region %s: %w", r.Tag, err)
		}
	}
	return nil
}

func (r *Region) validate() error {
	if r.Length == 0 {
		return fmt.Errorf("zero length")
	}
	if r.Role == 0 {
		return fmt.Errorf("no role")
	}
	for i := range r.Loads {
		l := &r.Loads[i]
		if l.File == "" || l.Length == 0 {
			return fmt.Errorf("load #%d: no file or zero length", i)
		}
		if l.SHA1 != "" {
			if b, err := hex.DecodeString(l.SHA1); err != nil || len(b) != 20 {
				return fmt.Errorf("%s: malformed sha1 %q", l, l.SHA1)
			}
		}
		for _, off := range l.offsets() {
			if uint64(off)+uint64(l.span()) > uint64(r.Length) {
				return fmt.Errorf("%s: writes outside region (offset %06x, region length %06x)", l, off, r.Length)
			}
		}
		for j := range r.Loads[:i] {
			if overlaps(l, &r.Loads[j]) {
				return fmt.Errorf("%s overlaps %s", l, r.Loads[j])
			}
		}
	}
	return nil
}

// overlaps reports whether a and b write to the same bytes, at their
// offset or at any of their reloads. Byte16 loads on lanes of different
// parity never overlap.
func overlaps(a, b *Load) bool {
	for _, aoff := range a.offsets() {
		for _, boff := range b.offsets() {
			if aoff >= boff+b.span() || boff >= aoff+a.span() {
				continue
			}
			if a.Mode == Byte16 && b.Mode == Byte16 && aoff&1 != boff&1 {
				continue
			}
			return true
		}
	}
	return false
}
