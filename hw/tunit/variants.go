package tunit

import (
	"fmt"
	"slices"

	"tunit/hw/machine"
)

// Driver init names.
var inits = []string{
	"mk", "mkr4", "mk2", "mk2r21", "mk2r14", "jdreddp", "nbajam", "nbajam20", "nbajamte",
}

// KnownInit reports whether name is a driver init of the family.
func KnownInit(name string) bool { return slices.Contains(inits, name) }

// IssuePageFlip documents the NBA Jam display discrepancy. The hardware
// behavior is not established, so it is reported rather than worked around.
const IssuePageFlip = "page flipping seems off (or a blank-the-screen bit is missing)"

func mk2clone(name, manufacturer, desc string) *machine.Variant {
	return &machine.Variant{
		Name:         name,
		Parent:       "mk2",
		Year:         1993,
		Manufacturer: manufacturer,
		Description:  desc,
		ROMs:         name,
		Bootstrap:    name + "_bootstrap",
	}
}

func nbajamte(name, desc string) *machine.Variant {
	return &machine.Variant{
		Name:        name,
		Parent:      "nbajam",
		Year:        1994,
		Description: desc,
		Block:       BlockTunitADPCM,
		Ports:       "nbajamte",
		ROMs:        name,
		Init:        "nbajamte",
		KnownIssues: []string{IssuePageFlip},
	}
}

// Variants returns the game variants of the family, parents first.
func Variants() []*machine.Variant {
	return []*machine.Variant{
		{
			Name: "mk", Year: 1992, Manufacturer: "Midway",
			Description: "Mortal Kombat (rev 5.0 T-Unit 03-19-93)",
			Block:       BlockMK, Ports: "mk", ROMs: "mk", Init: "mk",
		},
		{
			Name: "mkr4", Parent: "mk",
			Description: "Mortal Kombat (rev 4.0 T-Unit 02-11-93)",
			ROMs:        "mkr4", Init: "mkr4",
		},
		{
			Name: "mk2", Year: 1993, Manufacturer: "Midway",
			Description: "Mortal Kombat II (rev L3.1)",
			Block:       BlockTunitDCS, Ports: "mk2", ROMs: "mk2", Init: "mk2",
			Controls: "generic_ctrl", Bootstrap: "mk2_bootstrap",
		},
		mk2clone("mk2r32", "Midway", "Mortal Kombat II (rev L3.2 (European))"),
		withInit(mk2clone("mk2r21", "Midway", "Mortal Kombat II (rev L2.1)"), "mk2r21"),
		withInit(mk2clone("mk2r14", "Midway", "Mortal Kombat II (rev L1.4)"), "mk2r14"),
		mk2clone("mk2r42", "hack", "Mortal Kombat II (rev L4.2, hack)"),
		mk2clone("mk2r91", "hack", "Mortal Kombat II (rev L9.1, hack)"),
		mk2clone("mk2chal", "hack", "Mortal Kombat II Challenger (hack)"),
		{
			Name: "jdreddp", Year: 1993, Manufacturer: "Midway",
			Description: "Judge Dredd (rev LA1, prototype)",
			Block:       BlockTunitADPCM, Ports: "jdreddp", ROMs: "jdreddp", Init: "jdreddp",
		},
		{
			Name: "nbajam", Year: 1993, Manufacturer: "Midway",
			Description: "NBA Jam (rev 3.01 04-07-93)",
			Block:       BlockNBAJam, Ports: "nbajam", ROMs: "nbajam", Init: "nbajam",
			KnownIssues: []string{IssuePageFlip},
		},
		{
			Name: "nbajamr2", Parent: "nbajam",
			Description: "NBA Jam (rev 2.00 02-10-93)",
			ROMs:        "nbajamr2", Init: "nbajam20",
			KnownIssues: []string{IssuePageFlip},
		},
		nbajamte("nbajamte", "NBA Jam TE (rev 4.0 03-23-94)"),
		nbajamte("nbajamt1", "NBA Jam TE (rev 1.0 01-17-94)"),
		nbajamte("nbajamt2", "NBA Jam TE (rev 2.0 01-28-94)"),
		nbajamte("nbajamt3", "NBA Jam TE (rev 3.0 03-04-94)"),
	}
}

func withInit(v *machine.Variant, init string) *machine.Variant {
	v.Init = init
	return v
}

// Register declares the whole family in r.
func Register(r *machine.Registry) error {
	if err := r.AddMap(AddressMap()); err != nil {
		return err
	}
	if err := r.AddBlock(Blocks()...); err != nil {
		return err
	}
	if err := r.AddPorts(PortSets()...); err != nil {
		return err
	}
	if err := r.AddROMs(ROMSets()...); err != nil {
		return err
	}
	if err := r.AddVariant(Variants()...); err != nil {
		return err
	}
	for _, name := range r.Variants() {
		if v, _ := r.Variant(name); v.Init != "" && !KnownInit(v.Init) {
			return fmt.Errorf("variant %s: unknown driver init %q", name, v.Init)
		}
	}
	return nil
}

// NewRegistry returns a registry holding the family, validated.
func NewRegistry() (*machine.Registry, error) {
	r := machine.NewRegistry()
	if err := Register(r); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
