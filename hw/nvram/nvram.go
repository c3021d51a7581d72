// Package nvram persists the battery-backed memory of a machine between
// runs.
package nvram

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"tunit/emu/log"
	"tunit/hw/hwio"
)

const ext = ".nv"

// Dir stores one file per variant, named after it.
type Dir string

// Path returns the file holding the memory of variant.
func (d Dir) Path(variant string) string {
	return filepath.Join(string(d), variant+ext)
}

// Load fills mem with the saved memory of variant. When nothing was saved
// yet, mem is filled with fill and Load reports false.
func (d Dir) Load(variant string, mem *hwio.Mem, fill byte) (bool, error) {
	buf, err := os.ReadFile(d.Path(variant))
	if errors.Is(err, fs.ErrNotExist) {
		Fill(mem, fill)
		log.ModNVRAM.DebugZ("no saved nvram").String("variant", variant).Uint("fill", uint64(fill)).End()
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("nvram: %w", err)
	}

	if len(buf) != 2*len(mem.Data) {
		log.ModNVRAM.WarnZ("nvram size mismatch").
			String("variant", variant).
			Int("want", 2*len(mem.Data)).
			Int("got", len(buf)).
			End()
		Fill(mem, fill)
	}
	mem.Load(buf)
	log.ModNVRAM.DebugZ("nvram loaded").String("variant", variant).Int("size", len(buf)).End()
	return true, nil
}

// Save writes the content of mem as the memory of variant. The previous
// file is replaced only once the new one is completely written.
func (d Dir) Save(variant string, mem *hwio.Mem) error {
	if err := os.MkdirAll(string(d), 0755); err != nil {
		return fmt.Errorf("nvram: %w", err)
	}
	f, err := os.CreateTemp(string(d), variant+"-*"+ext)
	if err != nil {
		return fmt.Errorf("nvram: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(mem.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("nvram: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("nvram: %w", err)
	}
	if err := os.Rename(f.Name(), d.Path(variant)); err != nil {
		return fmt.Errorf("nvram: %w", err)
	}
	log.ModNVRAM.DebugZ("nvram saved").String("variant", variant).Int("size", 2*len(mem.Data)).End()
	return nil
}

// Fill sets every byte of mem to b.
func Fill(mem *hwio.Mem, b byte) {
	w := uint16(b)<<8 | uint16(b)
	for i := range mem.Data {
		mem.Data[i] = w
	}
}
