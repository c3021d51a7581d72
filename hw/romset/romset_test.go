package romset

import (
	"archive/zip"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tunit/hw/hwdefs"
)

func testSet() *Set {
	return &Set{
		Name: "game",
		Regions: []Region{
			{Tag: "cpu", Role: Program, Length: 0x10, Width: 16, Loads: []Load{
				{File: "even.bin", Offset: 0x0, Length: 0x8, Mode: Byte16},
				{File: "odd.bin", Offset: 0x1, Length: 0x8, Mode: Byte16},
			}},
			{Tag: "gfx", Role: Graphics, Length: 0x20, Dispose: true, Loads: []Load{
				{File: "gfx0.bin", Offset: 0x00, Length: 0x8},
				{File: "gfx1.bin", Offset: 0x08, Length: 0x8, Reload: []uint32{0x18}},
			}},
		},
	}
}

func TestSetValidate(t *testing.T) {
	if err := testSet().Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	tests := []struct {
		name   string
		modify func(s *Set)
	}{
		{"out of bounds", func(s *Set) { s.Regions[1].Loads[1].Offset = 0x1c }},
		{"reload out of bounds", func(s *Set) { s.Regions[1].Loads[1].Reload[0] = 0x19 }},
		{"byte16 out of bounds", func(s *Set) { s.Regions[0].Loads[1].Length = 0x9 }},
		{"overlap", func(s *Set) { s.Regions[1].Loads[1].Offset = 0x04 }},
		{"reload overlaps other load", func(s *Set) { s.Regions[1].Loads[1].Reload[0] = 0x04 }},
		{"load overlaps other reload", func(s *Set) { s.Regions[1].Loads[0].Offset = 0x14 }},
		{"same lane", func(s *Set) { s.Regions[0].Loads[1].Offset = 0x0 }},
		{"zero length region", func(s *Set) { s.Regions[1].Length = 0 }},
		{"duplicate region", func(s *Set) { s.Regions[1].Tag = "cpu" }},
		{"no role", func(s *Set) { s.Regions[1].Role = 0 }},
		{"bad sha1", func(s *Set) { s.Regions[1].Loads[0].SHA1 = "1234" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSet()
			tt.modify(s)
			err := s.Validate()
			if !hwdefs.IsKind(err, hwdefs.BadROM) {
				t.Errorf("Validate() = %v, want BadROM error", err)
			}
		})
	}
}

func TestSetOverride(t *testing.T) {
	parent := testSet()
	child := &Set{
		Name: "clone",
		Regions: []Region{
			{Tag: "cpu", Loads: []Load{
				{File: "odd-r2.bin", Offset: 0x1, Length: 0x8, Mode: Byte16},
			}},
		},
	}

	got, err := parent.Override(child)
	if err != nil {
		t.Fatal(err)
	}
	if err := got.Validate(); err != nil {
		t.Fatal(err)
	}

	// Every region keeps its length and load count, only one load differs.
	if len(got.Regions) != len(parent.Regions) {
		t.Fatalf("got %d regions, want %d", len(got.Regions), len(parent.Regions))
	}
	ndiff := 0
	for i := range parent.Regions {
		pr, cr := &parent.Regions[i], &got.Regions[i]
		if pr.Length != cr.Length || len(pr.Loads) != len(cr.Loads) {
			t.Errorf("region %s: length %x/%d, want %x/%d", pr.Tag, cr.Length, len(cr.Loads), pr.Length, len(pr.Loads))
			continue
		}
		for j := range pr.Loads {
			if !cmp.Equal(pr.Loads[j], cr.Loads[j]) {
				ndiff++
				if diff := cmp.Diff(child.Regions[0].Loads[0], cr.Loads[j]); diff != "" {
					t.Errorf("replaced load differs (-want +got):\n%s", diff)
				}
			}
		}
	}
	if ndiff != 1 {
		t.Errorf("%d loads differ from parent, want 1", ndiff)
	}
	if parent.Regions[0].Loads[1].File != "odd.bin" {
		t.Errorf("parent set was modified")
	}

	// Full region replacement.
	child.Regions = []Region{{Tag: "gfx", Role: Graphics, Length: 0x8, Loads: []Load{{File: "small.bin", Length: 0x8}}}}
	got, err = parent.Override(child)
	if err != nil {
		t.Fatal(err)
	}
	if r, _ := got.Region("gfx"); r.Length != 0x8 || len(r.Loads) != 1 {
		t.Errorf("gfx region was not replaced: %+v", r)
	}

	// Patching an unknown region.
	child.Regions = []Region{{Tag: "snd", Loads: []Load{{File: "snd.bin", Length: 0x8}}}}
	if _, err := parent.Override(child); !hwdefs.IsKind(err, hwdefs.BadROM) {
		t.Errorf("Override() = %v, want BadROM", err)
	}
}

func fill(n int, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v + byte(i)
	}
	return b
}

func checksums(set *Set, files map[string][]byte) {
	for ri := range set.Regions {
		for li := range set.Regions[ri].Loads {
			l := &set.Regions[ri].Loads[li]
			sum := sha1.Sum(files[l.File])
			l.CRC = crc32.ChecksumIEEE(files[l.File])
			l.SHA1 = hex.EncodeToString(sum[:])
		}
	}
}

func testFiles() map[string][]byte {
	return map[string][]byte{
		"even.bin": fill(8, 0x00),
		"odd.bin":  fill(8, 0x80),
		"gfx0.bin": fill(8, 0x10),
		"gfx1.bin": fill(8, 0x20),
	}
}

func writeDir(t *testing.T, files map[string][]byte) string {
	t.Helper()

	dir := t.TempDir()
	for name, buf := range files {
		if err := os.WriteFile(filepath.Join(dir, name), buf, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func writeZip(t *testing.T, files map[string][]byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "game.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, buf := range files {
		w, err := zw.Create("game/" + name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(buf); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoader(t *testing.T) {
	files := testFiles()
	set := testSet()
	checksums(set, files)

	z, err := OpenZip(writeZip(t, files))
	if err != nil {
		t.Fatal(err)
	}
	defer z.Close()

	for _, src := range []Source{DirSource(writeDir(t, files)), z} {
		t.Run(src.String(), func(t *testing.T) {
			ld := Loader{Source: src, Parallel: 2}
			img, rep, err := ld.Load(context.Background(), set)
			if err != nil {
				t.Fatal(err)
			}
			if !rep.OK() {
				t.Errorf("unexpected mismatches: %v", rep.Mismatches)
			}
			if rep.Files != 4 || rep.Bytes != 32 {
				t.Errorf("report = %+v, want 4 files, 32 bytes", rep)
			}

			cpu := []byte{
				0x00, 0x80, 0x01, 0x81, 0x02, 0x82, 0x03, 0x83,
				0x04, 0x84, 0x05, 0x85, 0x06, 0x86, 0x07, 0x87,
			}
			if diff := cmp.Diff(cpu, img.Region("cpu")); diff != "" {
				t.Errorf("cpu region differs (-want +got):\n%s", diff)
			}

			var gfx []byte
			gfx = append(gfx, files["gfx0.bin"]...)
			gfx = append(gfx, files["gfx1.bin"]...)
			gfx = append(gfx, make([]byte, 8)...)
			gfx = append(gfx, files["gfx1.bin"]...) // reload
			if diff := cmp.Diff(gfx, img.Region("gfx")); diff != "" {
				t.Errorf("gfx region differs (-want +got):\n%s", diff)
			}

			img.Dispose()
			if img.Region("gfx") != nil || img.Region("cpu") == nil {
				t.Errorf("Dispose should only free disposable regions")
			}
		})
	}
}

func TestLoaderMismatch(t *testing.T) {
	files := testFiles()
	set := testSet()
	checksums(set, files)

	files["gfx0.bin"] = fill(8, 0x11)    // bad checksum
	files["odd.bin"] = fill(4, 0x80)     // short file
	files["gfx1.bin"] = fill(0x10, 0x20) // long file

	ld := Loader{Source: DirSource(writeDir(t, files))}
	img, rep, err := ld.Load(context.Background(), set)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, m := range rep.Mismatches {
		got = append(got, m.File)
	}
	if diff := cmp.Diff([]string{"odd.bin", "gfx0.bin", "gfx1.bin"}, got); diff != "" {
		t.Errorf("mismatches differs (-want +got):\n%s", diff)
	}

	// Data is loaded anyway.
	if got := img.Region("gfx")[0]; got != 0x11 {
		t.Errorf("gfx[0] = %02x, want 11", got)
	}
	if got := img.Region("cpu")[9]; got != 0x00 {
		t.Errorf("cpu[9] = %02x, want 00 (short file)", got)
	}
	if got := img.Region("gfx")[0x10]; got != 0x00 {
		t.Errorf("gfx[0x10] = %02x, want 00 (long file is truncated)", got)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	files := testFiles()
	delete(files, "gfx1.bin")

	ld := Loader{Source: DirSource(writeDir(t, files))}
	_, _, err := ld.Load(context.Background(), testSet())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() = %v, want ErrNotFound", err)
	}
}

func TestFind(t *testing.T) {
	files := testFiles()
	parentDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(parentDir, "game"), 0755); err != nil {
		t.Fatal(err)
	}
	for name, buf := range files {
		if err := os.WriteFile(filepath.Join(parentDir, "game", name), buf, 0644); err != nil {
			t.Fatal(err)
		}
	}
	cloneDir := writeDir(t, nil)
	if err := os.Mkdir(filepath.Join(cloneDir, "clone"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cloneDir, "clone", "odd.bin"), fill(8, 0x40), 0644); err != nil {
		t.Fatal(err)
	}

	ss, err := Find([]string{cloneDir, parentDir}, "clone", "game")
	if err != nil {
		t.Fatal(err)
	}
	defer ss.Close()

	buf, err := ss.ReadFile("odd.bin")
	if err != nil {
		t.Fatal(err)
	}
	if buf[0] != 0x40 {
		t.Errorf("odd.bin should be read from the clone directory first")
	}
	if _, err := ss.ReadFile("gfx0.bin"); err != nil {
		t.Errorf("gfx0.bin should be read from the parent directory: %v", err)
	}
	if _, err := ss.ReadFile("nope.bin"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadFile(nope.bin) = %v, want ErrNotFound", err)
	}

	if _, err := Find([]string{cloneDir}, "other"); err == nil {
		t.Errorf("Find should fail when no source exists")
	}
}
