package nvram

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tunit/hw/hwio"
)

func TestLoadSave(t *testing.T) {
	d := Dir(t.TempDir())

	mem := hwio.NewMem("cmos", 4, hwio.MemFlagReadWrite)
	mem.Data[0] = 0x1234
	saved, err := d.Load("mk", mem, 0)
	if err != nil {
		t.Fatal(err)
	}
	if saved {
		t.Errorf("Load reported saved memory in an empty dir")
	}
	if diff := cmp.Diff([]uint16{0, 0, 0, 0}, mem.Data); diff != "" {
		t.Errorf("zero fill mismatch (-want +got):\n%s", diff)
	}

	mem.Data = []uint16{0xdead, 0xbeef, 0x0001, 0x8000}
	if err := d.Save("mk", mem); err != nil {
		t.Fatal(err)
	}
	buf, err := os.ReadFile(d.Path("mk"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0xad, 0xde, 0xef, 0xbe, 0x01, 0x00, 0x00, 0x80}, buf); diff != "" {
		t.Errorf("file content mismatch (-want +got):\n%s", diff)
	}

	mem2 := hwio.NewMem("cmos", 4, hwio.MemFlagReadWrite)
	saved, err = d.Load("mk", mem2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !saved {
		t.Errorf("Load did not find saved memory")
	}
	if diff := cmp.Diff(mem.Data, mem2.Data); diff != "" {
		t.Errorf("reloaded memory mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(string(d))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d files in nvram dir, want 1", len(entries))
	}
}

func TestLoadSizeMismatch(t *testing.T) {
	d := Dir(t.TempDir())
	if err := os.WriteFile(d.Path("mk"), []byte{0x01, 0x02}, 0644); err != nil {
		t.Fatal(err)
	}

	mem := hwio.NewMem("cmos", 2, hwio.MemFlagReadWrite)
	mem.Data[1] = 0x5555
	if _, err := d.Load("mk", mem, 0xff); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint16{0x0201, 0xffff}, mem.Data); diff != "" {
		t.Errorf("memory mismatch (-want +got):\n%s", diff)
	}
}
