package machine

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-faster/jx"
	"github.com/google/go-cmp/cmp"

	"tunit/hw/hwdefs"
	"tunit/hw/hwio"
	"tunit/hw/input"
	"tunit/hw/romset"
)

func testPorts() []*input.PortSet {
	return []*input.PortSet{
		{Name: "base", Ports: []input.Port{
			{Tag: "IN0", Bits: []input.Bit{
				{Mask: 0x0001, Type: input.Button1, Player: 1},
				{Mask: 0xfffe, Type: input.Unused},
			}},
		}},
		{Name: "child", Base: "base", Ports: []input.Port{
			{Tag: "IN1", Bits: []input.Bit{{Mask: 0xffff, Type: input.Unused}}},
		}},
	}
}

func testROMs() []*romset.Set {
	return []*romset.Set{
		{Name: "game", Regions: []romset.Region{
			{Tag: "user1", Role: romset.Program, Length: 0x40, Width: 16, Loads: []romset.Load{
				{File: "p0.bin", Offset: 0x00, Length: 0x10, Mode: romset.Byte16},
				{File: "p1.bin", Offset: 0x01, Length: 0x10, Mode: romset.Byte16},
				{File: "p2.bin", Offset: 0x20, Length: 0x10},
			}},
			{Tag: "gfx1", Role: romset.Graphics, Length: 0x20, Loads: []romset.Load{
				{File: "g0.bin", Offset: 0x00, Length: 0x20},
			}},
		}},
		{Name: "gamer1", Regions: []romset.Region{
			{Tag: "user1", Loads: []romset.Load{
				{File: "p1r1.bin", Offset: 0x01, Length: 0x10, Mode: romset.Byte16},
			}},
		}},
	}
}

func testMap() *hwio.AddressMap {
	return &hwio.AddressMap{
		Name: "main",
		Read: []hwio.Range{
			{Start: 0x0000, End: 0x0fff, Handler: hwio.HandlerNop, Shift: 4},
		},
		Write: []hwio.Range{
			{Start: 0x0000, End: 0x0fff, Handler: hwio.HandlerNop, Shift: 4},
		},
	}
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()

	r := NewRegistry()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(r.AddBlock(
		&Block{
			Name: "core",
			CPUs: []CPU{{Tag: "main", Type: "TMS34010", Clock: 6250000, Map: "main"}},
			Timing: &Timing{
				Refresh:     54,
				ScanTotal:   288,
				ScanVisible: 254,
			},
			NVRAM: &NVRAM{Handler: "generic_0fill"},
			Init:  "core",
		},
		&Block{
			Name:  "sound",
			CPUs:  []CPU{{Tag: "sound", Type: "M6809", Clock: 2000000}},
			Audio: &Audio{Board: "williams_adpcm", Chips: []SoundChip{{Tag: "dac", Type: "DAC"}}},
		},
		&Block{
			Name:    "game",
			Imports: []string{"core", "sound"},
			Audio: &Audio{
				Attributes: []string{AttrStereo},
				Chips:      []SoundChip{{Tag: "samples", Type: "SAMPLES", Channels: 2, Pack: "game"}},
			},
		},
		&Block{
			Name:    "game253",
			Imports: []string{"game"},
			Timing:  &Timing{ScanVisible: 253},
		},
	))
	must(r.AddPorts(testPorts()...))
	must(r.AddROMs(testROMs()...))
	must(r.AddMap(testMap()))
	must(r.AddVariant(
		&Variant{Name: "game", Year: 1992, Manufacturer: "Midway", Description: "Game", Block: "game", Ports: "base", ROMs: "game", Init: "game"},
		&Variant{Name: "gamer1", Parent: "game", Description: "Game rev 1", ROMs: "gamer1", Ports: "child"},
		&Variant{Name: "gamer2", Parent: "gamer1", Description: "Game rev 2", Block: "game253", KnownIssues: []string{"page flipping"}},
	))
	return r
}

func TestVBlankDuration(t *testing.T) {
	want := time.Duration(math.Round(float64(time.Second) * (288 - 254) / (54 * 288)))
	got := VBlankDuration(54, 288, 254)
	if d := got - want; d < -time.Nanosecond || d > time.Nanosecond {
		t.Errorf("VBlankDuration(54, 288, 254) = %v, want %v", got, want)
	}

	got253 := VBlankDuration(54, 288, 253)
	if got253 <= got {
		t.Errorf("VBlankDuration(54, 288, 253) = %v, want more than %v", got253, got)
	}

	// 53.204950Hz, 288 lines, 254 visible.
	if got := VBlankDuration(53.204950, 288, 254); got.Microseconds() != 2218 {
		t.Errorf("VBlankDuration(MKLA5) = %v, want 2218µs", got)
	}

	for _, tt := range []struct {
		refresh        float64
		total, visible int
	}{
		{0, 288, 254},
		{54, 0, 0},
		{54, 288, 288},
		{54, 288, 300},
	} {
		if got := VBlankDuration(tt.refresh, tt.total, tt.visible); got != 0 {
			t.Errorf("VBlankDuration(%v, %d, %d) = %v, want 0", tt.refresh, tt.total, tt.visible, got)
		}
	}
}

func TestFramePeriod(t *testing.T) {
	tm := &Timing{Refresh: 50}
	if got := tm.FramePeriod(); got != 20*time.Millisecond {
		t.Errorf("FramePeriod(50Hz) = %v, want 20ms", got)
	}
	tm = &Timing{}
	if got := tm.FramePeriod(); got != 0 {
		t.Errorf("FramePeriod(0Hz) = %v, want 0", got)
	}
}

func TestComposeTimingOverride(t *testing.T) {
	r := testRegistry(t)

	base, err := r.Compose("game")
	if err != nil {
		t.Fatal(err)
	}
	over, err := r.Compose("game253")
	if err != nil {
		t.Fatal(err)
	}

	want := Timing{Refresh: 54, ScanTotal: 288, ScanVisible: 253}
	if diff := cmp.Diff(want, *over.Timing); diff != "" {
		t.Errorf("game253 timing mismatch (-want +got):\n%s", diff)
	}
	if base.Timing.VBlankDuration() == over.Timing.VBlankDuration() {
		t.Errorf("vblank not re-derived after scan override: %v", over.Timing.VBlankDuration())
	}
	if got, want := over.Timing.VBlankDuration(), VBlankDuration(54, 288, 253); got != want {
		t.Errorf("vblank = %v, want %v", got, want)
	}
}

func TestTimingApplyExplicitVBlank(t *testing.T) {
	tm := Timing{Refresh: 60, ScanTotal: 262, ScanVisible: 240, VBlank: time.Millisecond}

	tm.apply(&Timing{VBlank: 2 * time.Millisecond})
	if tm.VBlankDuration() != 2*time.Millisecond {
		t.Errorf("explicit vblank override: got %v", tm.VBlankDuration())
	}

	tm.apply(&Timing{ScanVisible: 224})
	if got, want := tm.VBlankDuration(), VBlankDuration(60, 262, 224); got != want {
		t.Errorf("vblank after geometry change = %v, want derived %v", got, want)
	}
}

func TestCompose3Levels(t *testing.T) {
	r := NewRegistry()
	err := r.AddBlock(
		&Block{Name: "l1", CPUs: []CPU{{Tag: "main", Type: "TMS34010", Clock: 50000000 / 8}}},
		&Block{Name: "l2", Imports: []string{"l1"}, Audio: &Audio{Board: "dcs"}},
		&Block{Name: "l3", Imports: []string{"l2"}, Video: &Video{Type: "raster", Width: 400, Height: 256}},
	)
	if err != nil {
		t.Fatal(err)
	}

	got, err := r.Compose("l3")
	if err != nil {
		t.Fatal(err)
	}
	want := &Block{
		Name:    "l3",
		Imports: []string{"l2"},
		CPUs:    []CPU{{Tag: "main", Type: "TMS34010", Clock: 6250000}},
		Audio:   &Audio{Board: "dcs"},
		Video:   &Video{Type: "raster", Width: 400, Height: 256},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compose(l3) mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeCPUReplaced(t *testing.T) {
	r := NewRegistry()
	err := r.AddBlock(
		&Block{Name: "a", CPUs: []CPU{{Tag: "main", Type: "TMS34010", Clock: 1, Map: "a"}}},
		&Block{Name: "b", Imports: []string{"a"}, CPUs: []CPU{{Tag: "main", Type: "TMS34020", Clock: 2}}},
	)
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.Compose("b")
	if err != nil {
		t.Fatal(err)
	}
	want := []CPU{{Tag: "main", Type: "TMS34020", Clock: 2}}
	if diff := cmp.Diff(want, got.CPUs); diff != "" {
		t.Errorf("cpus mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeAudioMerge(t *testing.T) {
	r := testRegistry(t)
	b, err := r.Compose("game")
	if err != nil {
		t.Fatal(err)
	}
	if b.Audio.Board != "williams_adpcm" {
		t.Errorf("board = %q, want inherited williams_adpcm", b.Audio.Board)
	}
	if !b.Audio.Stereo() {
		t.Errorf("stereo attribute not merged")
	}
	if _, ok := b.Audio.Chip("dac"); !ok {
		t.Errorf("imported chip dac missing")
	}
	if _, ok := b.Audio.Chip("samples"); !ok {
		t.Errorf("own chip samples missing")
	}
	if len(b.CPUs) != 2 {
		t.Errorf("got %d cpus, want 2", len(b.CPUs))
	}
}

func TestComposeIdempotent(t *testing.T) {
	r := testRegistry(t)

	b1, err := r.Compose("game253")
	if err != nil {
		t.Fatal(err)
	}
	b1.Timing.ScanVisible = 1
	b1.Audio.Chips[0].Tag = "mutated"

	b2, err := r.Compose("game253")
	if err != nil {
		t.Fatal(err)
	}
	b3, err := r.Compose("game253")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(b2, b3); diff != "" {
		t.Errorf("composition not idempotent (-first +second):\n%s", diff)
	}
	if b2.Timing.ScanVisible != 253 {
		t.Errorf("caller mutation leaked into registry")
	}

	g1, err := r.ComposeVariant("gamer2")
	if err != nil {
		t.Fatal(err)
	}
	g2, err := r.ComposeVariant("gamer2")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(g1, g2); diff != "" {
		t.Errorf("variant composition not idempotent (-first +second):\n%s", diff)
	}
}

func TestComposeErrors(t *testing.T) {
	tests := []struct {
		name   string
		blocks []*Block
		kind   hwdefs.ErrorKind
	}{
		{
			name:   "self import",
			blocks: []*Block{{Name: "x", Imports: []string{"x"}}},
			kind:   hwdefs.ImportCycle,
		},
		{
			name: "3 cycle",
			blocks: []*Block{
				{Name: "x", Imports: []string{"y"}},
				{Name: "y", Imports: []string{"z"}},
				{Name: "z", Imports: []string{"x"}},
			},
			kind: hwdefs.ImportCycle,
		},
		{
			name:   "unknown import",
			blocks: []*Block{{Name: "x", Imports: []string{"nope"}}},
			kind:   hwdefs.UnknownName,
		},
		{
			name:   "bad scan",
			blocks: []*Block{{Name: "x", Timing: &Timing{ScanTotal: 200, ScanVisible: 300}}},
			kind:   hwdefs.BadRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			if err := r.AddBlock(tt.blocks...); err != nil {
				t.Fatal(err)
			}
			_, err := r.Compose("x")
			if !hwdefs.IsKind(err, tt.kind) {
				t.Errorf("Compose(x) error = %v, want %v", err, tt.kind)
			}
			if err := r.Validate(); !hwdefs.IsKind(err, tt.kind) {
				t.Errorf("Validate() error = %v, want %v", err, tt.kind)
			}
		})
	}

	r := NewRegistry()
	if _, err := r.Compose("nope"); !hwdefs.IsKind(err, hwdefs.UnknownName) {
		t.Errorf("Compose(nope) error = %v, want UnknownName", err)
	}
	if err := r.AddBlock(&Block{Name: "x"}, &Block{Name: "x"}); !hwdefs.IsKind(err, hwdefs.DuplicateName) {
		t.Errorf("AddBlock(duplicate) error = %v, want DuplicateName", err)
	}
}

func TestComposeVariant(t *testing.T) {
	r := testRegistry(t)
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	parent, err := r.ComposeVariant("game")
	if err != nil {
		t.Fatal(err)
	}
	clone, err := r.ComposeVariant("gamer1")
	if err != nil {
		t.Fatal(err)
	}

	if clone.Block != "game" || clone.Year != 1992 || clone.Manufacturer != "Midway" || clone.Init != "game" {
		t.Errorf("inherited fields: block=%q year=%d manufacturer=%q init=%q", clone.Block, clone.Year, clone.Manufacturer, clone.Init)
	}
	if !clone.IsClone() || parent.IsClone() {
		t.Errorf("IsClone: parent=%v clone=%v", parent.IsClone(), clone.IsClone())
	}
	if clone.Map() == nil || clone.Map().Name != "main" {
		t.Errorf("main cpu map not resolved: %v", clone.Map())
	}

	// A single overridden load: every other load is unchanged.
	pr, _ := parent.ROMSet.Region("user1")
	cr, _ := clone.ROMSet.Region("user1")
	if pr.Length != cr.Length {
		t.Errorf("region length %#x, want parent's %#x", cr.Length, pr.Length)
	}
	if len(pr.Loads) != len(cr.Loads) {
		t.Fatalf("got %d loads, want parent's %d", len(cr.Loads), len(pr.Loads))
	}
	changed := 0
	for i := range pr.Loads {
		if !cmp.Equal(pr.Loads[i], cr.Loads[i]) {
			changed++
			if cr.Loads[i].File != "p1r1.bin" {
				t.Errorf("load %d = %v, want p1r1.bin", i, cr.Loads[i])
			}
		}
	}
	if changed != 1 {
		t.Errorf("%d loads changed, want 1", changed)
	}
	pg, _ := parent.ROMSet.Region("gfx1")
	cg, _ := clone.ROMSet.Region("gfx1")
	if diff := cmp.Diff(pg, cg); diff != "" {
		t.Errorf("gfx1 region mismatch (-parent +clone):\n%s", diff)
	}

	// Port set with base applied.
	if got := len(clone.PortSet.Ports); got != 2 {
		t.Errorf("clone has %d ports, want 2", got)
	}

	// Grandchild inherits the ROM set of its parent, and its own block.
	gc, err := r.ComposeVariant("gamer2")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(clone.ROMSet, gc.ROMSet); diff != "" {
		t.Errorf("gamer2 roms mismatch (-gamer1 +gamer2):\n%s", diff)
	}
	if gc.Machine.Timing.ScanVisible != 253 {
		t.Errorf("gamer2 scan visible = %d, want 253", gc.Machine.Timing.ScanVisible)
	}
	if gc.Ports != "child" {
		t.Errorf("gamer2 ports = %q, want inherited child", gc.Ports)
	}
}

func TestComposeVariantErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Registry) error
		kind   hwdefs.ErrorKind
	}{
		{
			name: "parent cycle",
			modify: func(r *Registry) error {
				return r.AddVariant(
					&Variant{Name: "x", Parent: "y", Block: "game", Ports: "base", ROMs: "game"},
					&Variant{Name: "y", Parent: "x"},
				)
			},
			kind: hwdefs.ParentCycle,
		},
		{
			name: "unknown parent",
			modify: func(r *Registry) error {
				return r.AddVariant(&Variant{Name: "x", Parent: "nope"})
			},
			kind: hwdefs.UnknownName,
		},
		{
			name: "unknown block",
			modify: func(r *Registry) error {
				return r.AddVariant(&Variant{Name: "x", Block: "nope", Ports: "base", ROMs: "game"})
			},
			kind: hwdefs.UnknownName,
		},
		{
			name: "unknown roms",
			modify: func(r *Registry) error {
				return r.AddVariant(&Variant{Name: "x", Block: "game", Ports: "base", ROMs: "nope"})
			},
			kind: hwdefs.UnknownName,
		},
		{
			name: "patch without parent",
			modify: func(r *Registry) error {
				return r.AddVariant(&Variant{Name: "x", Block: "game", Ports: "base", ROMs: "gamer1"})
			},
			kind: hwdefs.BadROM,
		},
		{
			name: "port base cycle",
			modify: func(r *Registry) error {
				err := r.AddPorts(
					&input.PortSet{Name: "p1", Base: "p2"},
					&input.PortSet{Name: "p2", Base: "p1"},
				)
				if err != nil {
					return err
				}
				return r.AddVariant(&Variant{Name: "x", Block: "game", Ports: "p1", ROMs: "game"})
			},
			kind: hwdefs.ParentCycle,
		},
		{
			name: "unknown map",
			modify: func(r *Registry) error {
				err := r.AddBlock(&Block{Name: "nomap", CPUs: []CPU{{Tag: "main", Map: "nope"}}})
				if err != nil {
					return err
				}
				return r.AddVariant(&Variant{Name: "x", Block: "nomap", Ports: "base", ROMs: "game"})
			},
			kind: hwdefs.UnknownName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRegistry(t)
			if err := tt.modify(r); err != nil {
				t.Fatal(err)
			}
			_, err := r.ComposeVariant("x")
			if !hwdefs.IsKind(err, tt.kind) {
				t.Errorf("ComposeVariant(x) error = %v, want %v", err, tt.kind)
			}
		})
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("common.yaml", `
blocks:
  - name: game_fast
    imports: [game]
    timing: {refresh: 60}
variants:
  - name: gamefast
    parent: game
    block: game_fast
    description: from include
`)
	write("main.yaml", `
include: [common.yaml]
variants:
  - name: gamefast
    parent: game
    block: game_fast
    description: Game (60Hz)
    known_issues: [none]
`)

	o, err := LoadOverlay(filepath.Join(dir, "main.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(o.Blocks) != 1 || len(o.Variants) != 1 {
		t.Fatalf("got %d blocks and %d variants, want 1 and 1", len(o.Blocks), len(o.Variants))
	}
	if o.Variants[0].Description != "Game (60Hz)" {
		t.Errorf("description = %q, including file must win", o.Variants[0].Description)
	}

	r := testRegistry(t)
	if err := r.Apply(o); err != nil {
		t.Fatal(err)
	}
	g, err := r.ComposeVariant("gamefast")
	if err != nil {
		t.Fatal(err)
	}
	want := Timing{Refresh: 60, ScanTotal: 288, ScanVisible: 254}
	if diff := cmp.Diff(want, *g.Machine.Timing); diff != "" {
		t.Errorf("timing mismatch (-want +got):\n%s", diff)
	}

	write("loop.yaml", "include: [loop.yaml]\n")
	if _, err := LoadOverlay(filepath.Join(dir, "loop.yaml")); err == nil {
		t.Errorf("include cycle not detected")
	}
}

func TestApplyLeavesRegistryOnError(t *testing.T) {
	good := &Block{Name: "game_ntsc", Imports: []string{"game"}, Timing: &Timing{Refresh: 59.94}}
	tests := []struct {
		name string
		o    *Overlay
		kind hwdefs.ErrorKind
	}{
		{"unknown block", &Overlay{
			Blocks:   []*Block{good},
			Variants: []*Variant{{Name: "gamentsc", Parent: "game", Block: "nosuch"}},
		}, hwdefs.UnknownName},
		{"unknown parent", &Overlay{
			Blocks:   []*Block{good},
			Variants: []*Variant{{Name: "gamentsc", Parent: "nosuch"}},
		}, hwdefs.UnknownName},
		{"duplicate variant", &Overlay{
			Blocks:   []*Block{good},
			Variants: []*Variant{{Name: "gamer1", Parent: "game"}},
		}, hwdefs.DuplicateName},
		{"duplicate in overlay", &Overlay{
			Blocks: []*Block{good, {Name: "game_ntsc"}},
		}, hwdefs.DuplicateName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRegistry(t)
			blocks, variants := r.Blocks(), r.Variants()

			err := r.Apply(tt.o)
			if !hwdefs.IsKind(err, tt.kind) {
				t.Fatalf("Apply() = %v, want %v error", err, tt.kind)
			}
			if diff := cmp.Diff(blocks, r.Blocks()); diff != "" {
				t.Errorf("blocks changed (-before +after):\n%s", diff)
			}
			if diff := cmp.Diff(variants, r.Variants()); diff != "" {
				t.Errorf("variants changed (-before +after):\n%s", diff)
			}
			if err := r.Validate(); err != nil {
				t.Errorf("Validate() after failed Apply = %v", err)
			}
		})
	}
}

func TestGameEncode(t *testing.T) {
	r := testRegistry(t)
	g, err := r.ComposeVariant("gamer2")
	if err != nil {
		t.Fatal(err)
	}
	buf, err := g.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	var name, parent string
	var regions int
	d := jx.DecodeBytes(buf)
	err = d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "name":
			name, err = d.Str()
			return err
		case "parent":
			parent, err = d.Str()
			return err
		case "roms":
			return d.Arr(func(d *jx.Decoder) error {
				regions++
				return d.Skip()
			})
		default:
			return d.Skip()
		}
	})
	if err != nil {
		t.Fatalf("invalid json %s: %v", buf, err)
	}
	if name != "gamer2" || parent != "gamer1" || regions != 2 {
		t.Errorf("decoded name=%q parent=%q regions=%d", name, parent, regions)
	}
}
