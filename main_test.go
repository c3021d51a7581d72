package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tunit/emu"
	"tunit/hw/machine"
	"tunit/hw/nvram"
	"tunit/hw/tunit"
)

func testRegistry(t *testing.T, overlays ...string) *machine.Registry {
	t.Helper()
	reg, err := loadRegistry(overlays)
	if err != nil {
		t.Fatal(err)
	}
	return reg
}

func TestListVariants(t *testing.T) {
	reg := testRegistry(t)

	var buf bytes.Buffer
	listVariants(&buf, reg, false)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 17 {
		t.Fatalf("got %d lines, want header + 16 variants:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "mk ") || !strings.Contains(lines[1], "Mortal Kombat") {
		t.Errorf("first variant line = %q", lines[1])
	}

	buf.Reset()
	listVariants(&buf, reg, true)
	lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Errorf("got %d lines, want header + 4 parents:\n%s", len(lines), buf.String())
	}
}

func TestOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	err := os.WriteFile(path, []byte(`
variants:
  - name: mkla1
    parent: mk
    description: Mortal Kombat (rev 1.0 08-09-92)
`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	reg := testRegistry(t, path)
	g, err := reg.ComposeVariant("mkla1")
	if err != nil {
		t.Fatal(err)
	}
	if g.Block != "mk" || g.ROMSet.Name != "mk" {
		t.Errorf("mkla1: block %q, roms %q", g.Block, g.ROMSet.Name)
	}
}

func TestResolve(t *testing.T) {
	reg := testRegistry(t)
	cfg := emu.DefaultConfig()
	cfg.NVRAM.Disabled = true

	var buf bytes.Buffer
	err := resolve(&buf, reg, &cfg, Resolve{
		Variant: "nbajam",
		Addr:    []hexAddr{0x01600010, 0x08000000},
		Dir:     "read",
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"01600010", "input", "offset 0x1", "08000000", "open bus"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestResolveNVRAM(t *testing.T) {
	reg := testRegistry(t)

	dir := t.TempDir()
	cmos := make([]byte, 2*tunit.CMOSWords)
	cmos[0], cmos[1] = 0xfe, 0xca
	if err := os.WriteFile(nvram.Dir(dir).Path("nbajam"), cmos, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := emu.DefaultConfig()
	cfg.NVRAM.Dir = dir
	args := Resolve{Variant: "nbajam", Addr: []hexAddr{0x01400000}, Dir: "read"}

	var buf bytes.Buffer
	if err := resolve(&buf, reg, &cfg, args); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "value cafe") {
		t.Errorf("CMOS not loaded from nvram:\n%s", buf.String())
	}

	buf.Reset()
	cfg.NVRAM.Disabled = true
	if err := resolve(&buf, reg, &cfg, args); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "value 0000") {
		t.Errorf("CMOS loaded with nvram disabled:\n%s", buf.String())
	}
}

func TestShowMap(t *testing.T) {
	reg := testRegistry(t)
	cfg := emu.DefaultConfig()
	cfg.NVRAM.Disabled = true

	var buf bytes.Buffer
	if err := showMap(&buf, reg, &cfg, Map{Variant: "mk2", Dir: "write"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "read:") {
		t.Errorf("read table shown:\n%s", out)
	}
	for _, want := range []string{"01480000-014fffff", "cmos_enable", "01d81060-01d8107f", "watchdog"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestPrintInfo(t *testing.T) {
	reg := testRegistry(t)
	g, err := reg.ComposeVariant("nbajamt2")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	printInfo(&buf, g)
	out := buf.String()
	for _, want := range []string{"parent:", "nbajam", "TMS34010", "frame 18.7", "williams_adpcm", "known issue:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestVerifyMissing(t *testing.T) {
	reg := testRegistry(t)

	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "mk.zip"))
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("mks-u3.rom")
	if err != nil {
		t.Fatal(err)
	}
	w.Write(make([]byte, 16))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	var buf bytes.Buffer
	if err := verify(&buf, reg, Verify{Variant: "mk", ROMs: []string{dir}}); err == nil {
		t.Errorf("incomplete ROM set verified:\n%s", buf.String())
	}
	if err := verify(&buf, reg, Verify{Variant: "mk", ROMs: []string{t.TempDir()}}); err == nil {
		t.Errorf("missing ROM archive verified")
	}
}
