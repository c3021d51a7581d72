// Package romset describes the ROM regions of a machine and how ROM files
// are loaded into them.
package romset

import "fmt"

//go:generate go tool stringer -type=Role,Mode -linecomment

// Role is the purpose of a ROM region.
type Role uint8

const (
	Program      Role = iota + 1 // program
	SoundProgram                 // sound-program
	SoundSample                  // sound-sample
	Graphics                     // graphics
	Scratch                      // scratch
	User                         // user
)

// Mode is the way file data is laid out in a region.
type Mode uint8

const (
	// Linear copies file bytes to consecutive region bytes.
	Linear Mode = iota // linear
	// Byte16 copies file bytes to every other region byte, the parity of the
	// load offset selecting the low or high byte of 16-bit words.
	Byte16 // byte16
)

// Load copies a ROM file into a region.
type Load struct {
	File   string
	Offset uint32 // destination offset in the region
	Length uint32 // file length
	CRC    uint32
	SHA1   string
	Mode   Mode
	Reload []uint32 // offsets at which the same data is loaded again
}

// span returns the number of region bytes spanned by l, from its first to
// its last written byte.
func (l *Load) span() uint32 {
	if l.Mode == Byte16 && l.Length > 0 {
		return 2*l.Length - 1
	}
	return l.Length
}

// offsets returns the offsets at which l is loaded, reloads included.
func (l *Load) offsets() []uint32 {
	return append([]uint32{l.Offset}, l.Reload...)
}

func (l Load) String() string {
	return fmt.Sprintf("%s@%06x+%x", l.File, l.Offset, l.Length)
}

// Region is a named memory area filled from ROM files.
type Region struct {
	Tag     string
	Role    Role
	Length  uint32
	Width   int  // data bus width in bits, 0 for 8
	Dispose bool // the region may be freed once the machine is initialized
	Loads   []Load
}

// Set is the ordered list of regions of a machine. A set belonging to a
// clone is declared as a diff over its parent's set, see Override.
type Set struct {
	Name    string
	Regions []Region
}

// Region returns the region with the given tag.
func (s *Set) Region(tag string) (*Region, bool) {
	for i := range s.Regions {
		if s.Regions[i].Tag == tag {
			return &s.Regions[i], true
		}
	}
	return nil, false
}

// Files returns the names of all files loaded by the set, in load order.
func (s *Set) Files() []string {
	var files []string
	seen := make(map[string]bool)
	for _, r := range s.Regions {
		for _, l := range r.Loads {
			if !seen[l.File] {
				seen[l.File] = true
				files = append(files, l.File)
			}
		}
	}
	return files
}

// Size returns the total size of all regions.
func (s *Set) Size() uint64 {
	var n uint64
	for _, r := range s.Regions {
		n += uint64(r.Length)
	}
	return n
}
