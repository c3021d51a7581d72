package romset

import (
	"tunit/hw/hwdefs"
)

// Override returns the set obtained by applying the diff child over s:
//   - a child region with a non-zero Length replaces the parent region with
//     the same tag, or is appended if the parent has none;
//   - a child region with a zero Length patches the parent region: each of
//     its loads replaces the parent load at the same offset, or is appended.
//
// s and child are not modified, regions which are not redeclared are shared.
func (s *Set) Override(child *Set) (*Set, error) {
	out := &Set{Name: child.Name, Regions: append([]Region(nil), s.Regions...)}
	for _, cr := range child.Regions {
		i := -1
		for j := range out.Regions {
			if out.Regions[j].Tag == cr.Tag {
				i = j
				break
			}
		}

		switch {
		case cr.Length != 0 && i < 0:
			out.Regions = append(out.Regions, cr)
		case cr.Length != 0:
			out.Regions[i] = cr
		case i < 0:
			return nil, hwdefs.Errorf(hwdefs.BadROM, child.Name, "patched region %s does not exist in %s", cr.Tag, s.Name)
		default:
			out.Regions[i] = out.Regions[i].patch(cr.Loads)
		}
	}
	return out, nil
}

func (r Region) patch(loads []Load) Region {
	r.Loads = append([]Load(nil), r.Loads...)
	for _, l := range loads {
		replaced := false
		for i := range r.Loads {
			if r.Loads[i].Offset == l.Offset {
				r.Loads[i] = l
				replaced = true
				break
			}
		}
		if !replaced {
			r.Loads = append(r.Loads, l)
		}
	}
	return r
}
