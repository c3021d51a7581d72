package hwio_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tunit/hw/hwdefs"
	"tunit/hw/hwio"
)

// tag is a handler that returns its own identifier on reads.
type tag uint16

func (t tag) Read16(uint32, bool) uint16 { return uint16(t) }
func (t tag) Write16(uint32, uint16)     {}

func TestTableOverlay(t *testing.T) {
	type decl struct{ start, end uint32 }
	tests := []struct {
		name  string
		decls []decl
	}{
		{"disjoint", []decl{{0x10, 0x1f}, {0x30, 0x3f}, {0x20, 0x2f}}},
		{"inner", []decl{{0x00, 0xff}, {0x40, 0x4f}}},
		{"left", []decl{{0x40, 0x7f}, {0x20, 0x4f}}},
		{"right", []decl{{0x40, 0x7f}, {0x70, 0x9f}}},
		{"cover", []decl{{0x40, 0x4f}, {0x50, 0x5f}, {0x30, 0x6f}}},
		{"stacked", []decl{{0x00, 0xff}, {0x10, 0xef}, {0x20, 0xdf}, {0x80, 0x80}}},
		{"same", []decl{{0x10, 0x1f}, {0x10, 0x1f}}},
		{"edges", []decl{{0x00, 0x00}, {0xff, 0xff}, {0x00, 0xff}, {0x7f, 0x80}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := hwio.NewTable("bus", hwio.OpenBus{Value: 0xFFFF})
			for i, d := range tt.decls {
				err := tbl.Map(hwio.Mapping{Start: d.start, End: d.end, Name: fmt.Sprint(i), Handler: tag(i)})
				if err != nil {
					t.Fatal(err)
				}
			}

			// The last declaration covering an address wins, the open bus
			// serves the others.
			for addr := uint32(0); addr < 0x200; addr++ {
				want := uint16(0xFFFF)
				for i, d := range tt.decls {
					if addr >= d.start && addr <= d.end {
						want = uint16(i)
					}
				}
				if got := tbl.Read16(addr, false); got != want {
					t.Errorf("Read16(%04x) = %04x, want %04x", addr, got, want)
				}
			}

			spans := tbl.Spans()
			for i := 1; i < len(spans); i++ {
				if spans[i].Start <= spans[i-1].End {
					t.Errorf("spans %d and %d overlap: %+v %+v", i-1, i, spans[i-1], spans[i])
				}
			}
		})
	}
}

func TestTableOffset(t *testing.T) {
	// Bit addressed space, mapped to 16-bit words.
	ram := hwio.NewMem("ram", 0x100, hwio.MemFlagReadWrite)
	tbl := hwio.NewTable("bus", nil)
	err := tbl.Map(hwio.Mapping{Start: 0x01000000, End: 0x01000fff, Shift: 4, Name: "ram", Handler: ram.Handler()})
	if err != nil {
		t.Fatal(err)
	}

	// An overlay keeps the offsets of the range it was cut from.
	err = tbl.Map(hwio.Mapping{Start: 0x01000400, End: 0x010004ff, Shift: 4, Name: "nop", Handler: hwio.Nop{}})
	if err != nil {
		t.Fatal(err)
	}

	tbl.Write16(0x01000010, 0x1234)
	if ram.Data[1] != 0x1234 {
		t.Errorf("ram[1] = %04x, want 1234", ram.Data[1])
	}
	tbl.Write16(0x01000500, 0x5678)
	if ram.Data[0x50] != 0x5678 {
		t.Errorf("ram[0x50] = %04x, want 5678", ram.Data[0x50])
	}

	h, off := tbl.Resolve(0x01000410)
	if _, ok := h.(hwio.Nop); !ok || off != 1 {
		t.Errorf("Resolve(01000410) = %T, %x; want hwio.Nop, 1", h, off)
	}
	h, off = tbl.Resolve(0x20000000)
	if _, ok := h.(hwio.OpenBus); !ok || off != 0x20000000 {
		t.Errorf("Resolve(20000000) = %T, %x; want hwio.OpenBus, 20000000", h, off)
	}
}

func TestTableErrors(t *testing.T) {
	tbl := hwio.NewTable("bus", nil)

	err := tbl.Map(hwio.Mapping{Start: 0x20, End: 0x10, Name: "bad", Handler: hwio.Nop{}})
	if !hwdefs.IsKind(err, hwdefs.BadRange) {
		t.Errorf("Map(end < start) error = %v, want BadRange", err)
	}
	err = tbl.Map(hwio.Mapping{Start: 0x10, End: 0x20, Name: "nil"})
	if !hwdefs.IsKind(err, hwdefs.UnknownHandler) {
		t.Errorf("Map(nil handler) error = %v, want UnknownHandler", err)
	}
}

func testAddressMap() *hwio.AddressMap {
	return &hwio.AddressMap{
		Name: "test",
		Read: []hwio.Range{
			{Start: 0x0000, End: 0x0fff, Handler: hwio.HandlerRAM, Store: "ram", Shift: 4},
			{Start: 0x1000, End: 0x1fff, Handler: hwio.HandlerROM, Store: "rom", Shift: 4},
			{Start: 0x2000, End: 0x200f, Handler: "status"},
		},
		Write: []hwio.Range{
			{Start: 0x0000, End: 0x0fff, Handler: hwio.HandlerRAM, Store: "ram", Shift: 4},
			{Start: 0x1000, End: 0x1fff, Handler: hwio.HandlerROM, Store: "rom", Shift: 4},
			{Start: 0x0800, End: 0x08ff, Handler: hwio.HandlerNop},
		},
	}
}

func TestAddressMapBuild(t *testing.T) {
	rom := make([]byte, 0x200)
	copy(rom, []byte{0x34, 0x12, 0x78, 0x56})
	stores := hwio.Stores{
		"ram": hwio.NewMem("ram", 0x100, hwio.MemFlagReadWrite),
		"rom": hwio.MemFromBytes("rom", rom, hwio.MemFlagReadOnly),
	}
	status := &hwio.Reg16{Name: "status", Value: 0x0042}

	bus, err := testAddressMap().Build(hwio.Handlers{"status": status}, stores, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bus.Read.Sealed() || !bus.Write.Sealed() {
		t.Errorf("built tables should be sealed")
	}

	bus.Write16(0x0010, 0xAAAA)
	bus.Write16(0x0800, 0xBBBB) // nop overlay
	bus.Write16(0x1000, 0xCCCC) // rom
	for _, tc := range []struct {
		addr uint32
		want uint16
	}{
		{0x0010, 0xAAAA},
		{0x0800, 0x0000},
		{0x1000, 0x1234},
		{0x1010, 0x5678},
		{0x2000, 0x0042},
		{0x3000, hwio.DefaultOpenBus},
	} {
		if got := bus.Read16(tc.addr); got != tc.want {
			t.Errorf("Read16(%04x) = %04x, want %04x", tc.addr, got, tc.want)
		}
	}

	var names []string
	for _, sp := range bus.Write.Spans() {
		names = append(names, fmt.Sprintf("%04x-%04x %s", sp.Start, sp.End, sp.Name))
	}
	want := []string{
		"0000-07ff ram",
		"0800-08ff nop",
		"0900-0fff ram",
		"1000-1fff rom",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("write spans differs (-want +got):\n%s", diff)
	}

	h, off := bus.Resolve(hwio.Read, 0x2005)
	if h != status || off != 5 {
		t.Errorf("Resolve(read, 2005) = %v, %d", h, off)
	}
}

func TestAddressMapBuildErrors(t *testing.T) {
	stores := func() hwio.Stores {
		return hwio.Stores{
			"ram": hwio.NewMem("ram", 0x100, hwio.MemFlagReadWrite),
			"rom": hwio.NewMem("rom", 0x100, hwio.MemFlagReadOnly),
		}
	}
	handlers := hwio.Handlers{"status": hwio.Nop{}}

	tests := []struct {
		name   string
		modify func(am *hwio.AddressMap, s hwio.Stores)
		kind   hwdefs.ErrorKind
	}{
		{"end before start", func(am *hwio.AddressMap, _ hwio.Stores) { am.Read[0].Start, am.Read[0].End = 1, 0 }, hwdefs.BadRange},
		{"unknown handler", func(am *hwio.AddressMap, _ hwio.Stores) { am.Read[2].Handler = "dma" }, hwdefs.UnknownHandler},
		{"missing store", func(am *hwio.AddressMap, s hwio.Stores) { delete(s, "rom") }, hwdefs.UnknownName},
		{"store too small", func(am *hwio.AddressMap, s hwio.Stores) { s["ram"] = hwio.NewMem("ram", 0x80, 0) }, hwdefs.BadRange},
		{"empty handler", func(am *hwio.AddressMap, _ hwio.Stores) { am.Write[2].Handler = "" }, hwdefs.UnknownHandler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			am, s := testAddressMap(), stores()
			tt.modify(am, s)
			_, err := am.Build(handlers, s, nil)
			if !hwdefs.IsKind(err, tt.kind) {
				t.Errorf("Build() error = %v, want kind %s", err, tt.kind)
			}
		})
	}
}
