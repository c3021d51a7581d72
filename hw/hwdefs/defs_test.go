package hwdefs

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigErrorWrap(t *testing.T) {
	inner := Errorf(ImportCycle, "tunit_core", "tunit_core -> tunit_adpcm -> tunit_core")
	outer := Errorf(UnknownName, "mk", "composing block: %w", inner)

	if !IsKind(outer, UnknownName) {
		t.Errorf("IsKind(outer, UnknownName) = false")
	}
	if !IsKind(outer, ImportCycle) {
		t.Errorf("IsKind(outer, ImportCycle) = false, want the wrapped kind to be found")
	}
	if IsKind(outer, BadROM) {
		t.Errorf("IsKind(outer, BadROM) = true")
	}

	var ce *ConfigError
	if !errors.As(fmt.Errorf("ctx: %w", inner), &ce) || ce.Kind != ImportCycle {
		t.Errorf("errors.As failed to find the ConfigError")
	}
}

func TestConfigErrorString(t *testing.T) {
	err := Errorf(BadRange, "readmem", "end %08x < start %08x", 0x10, 0x20)
	want := "BadRange: readmem: end 00000010 < start 00000020"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
