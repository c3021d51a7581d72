package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"

	"tunit/emu"
	"tunit/emu/log"
	"tunit/hw/hwio"
	"tunit/hw/machine"
	"tunit/hw/romset"
	"tunit/hw/tunit"
)

func main() {
	cli := parseArgs(os.Args[1:])

	var cfg emu.Config
	if cli.Config == "" {
		cfg = emu.LoadConfigOrDefault()
	} else {
		var err error
		cfg, err = emu.LoadConfig(cli.Config)
		checkf(err, "failed to load configuration")
	}
	mask, err := cfg.LogMask()
	checkf(err, "invalid configuration")
	log.EnableDebugModules(mask)

	if cli.mode == versionMode {
		printVersion(os.Stdout)
		return
	}

	reg, err := loadRegistry(append(cfg.General.Overlays, cli.Overlay...))
	checkf(err, "invalid machine declarations")

	switch cli.mode {
	case listMode:
		listVariants(os.Stdout, reg, cli.List.Parents)
	case infoMode:
		checkf(showInfo(reg, cli.Info), "info")
	case mapMode:
		checkf(showMap(os.Stdout, reg, &cfg, cli.Map), "map")
	case resolveMode:
		checkf(resolve(os.Stdout, reg, &cfg, cli.Resolve), "resolve")
	case verifyMode:
		if len(cli.Verify.ROMs) == 0 {
			cli.Verify.ROMs = cfg.ROMs.Paths
		}
		if cli.Verify.Parallel == 0 {
			cli.Verify.Parallel = cfg.ROMs.Parallel
		}
		checkf(verify(os.Stdout, reg, cli.Verify), "verify")
	}
}

// loadRegistry returns the T-unit family registry, extended with the
// declarations of the overlay files.
func loadRegistry(overlays []string) (*machine.Registry, error) {
	reg, err := tunit.NewRegistry()
	if err != nil {
		return nil, err
	}
	if len(overlays) == 0 {
		return reg, nil
	}
	for _, path := range overlays {
		o, err := machine.LoadOverlay(path)
		if err != nil {
			return nil, err
		}
		if err := reg.Apply(o); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return reg, reg.Validate()
}

func listVariants(w io.Writer, reg *machine.Registry, parents bool) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPARENT\tYEAR\tMANUFACTURER\tDESCRIPTION")
	for _, name := range reg.Variants() {
		g, err := reg.ComposeVariant(name)
		if err != nil {
			log.ModCfg.ErrorZ("invalid variant").String("name", name).Error("err", err).End()
			continue
		}
		if parents && g.IsClone() {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", g.Name, g.Parent, g.Year, g.Manufacturer, g.Description)
	}
	tw.Flush()
}

func showInfo(reg *machine.Registry, args Info) error {
	g, err := reg.ComposeVariant(args.Variant)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if args.Out.w != nil {
		defer args.Out.Close()
		w = &args.Out
	}

	switch {
	case args.JSON:
		buf, err := g.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", buf)
		return err
	case args.Dump:
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(w, g)
		return nil
	}

	printInfo(w, g)
	return nil
}

func printInfo(w io.Writer, g *machine.Game) {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "name:\t%s\n", g.Name)
	if g.IsClone() {
		fmt.Fprintf(tw, "parent:\t%s\n", g.Parent)
	}
	fmt.Fprintf(tw, "description:\t%s\n", g.Description)
	fmt.Fprintf(tw, "year:\t%d\n", g.Year)
	fmt.Fprintf(tw, "manufacturer:\t%s\n", g.Manufacturer)
	fmt.Fprintf(tw, "init:\t%s\n", g.Init)
	fmt.Fprintf(tw, "rotation:\t%s\n", g.Rotation)

	m := g.Machine
	for _, cpu := range m.CPUs {
		fmt.Fprintf(tw, "cpu %s:\t%s @ %d Hz", cpu.Tag, cpu.Type, cpu.Clock)
		if cpu.Map != "" {
			fmt.Fprintf(tw, ", map %s", cpu.Map)
		}
		fmt.Fprintln(tw)
	}
	if t := m.Timing; t != nil {
		fmt.Fprintf(tw, "refresh:\t%.6f Hz, frame %v, %d/%d lines, vblank %v\n", t.Refresh, t.FramePeriod(), t.ScanVisible, t.ScanTotal, t.VBlankDuration())
	}
	if v := m.Video; v != nil {
		fmt.Fprintf(tw, "screen:\t%dx%d, visible %dx%d, %d colors\n", v.Width, v.Height, v.Visible.Width(), v.Visible.Height(), v.Palette)
	}
	if a := m.Audio; a != nil {
		fmt.Fprintf(tw, "sound board:\t%s (stereo: %v)\n", a.Board, a.Stereo())
		for _, c := range a.Chips {
			fmt.Fprintf(tw, "sound %s:\t%s", c.Tag, c.Type)
			if c.Pack != "" {
				fmt.Fprintf(tw, ", pack %s (%d samples)", c.Pack, len(c.Samples))
			}
			fmt.Fprintln(tw)
		}
	}
	if nv := m.NVRAM; nv != nil {
		fmt.Fprintf(tw, "nvram:\t%s\n", nv.Handler)
	}
	fmt.Fprintf(tw, "ports:\t%s (%d)\n", g.PortSet.Name, len(g.PortSet.Ports))
	for _, r := range g.ROMSet.Regions {
		fmt.Fprintf(tw, "region %s:\t%s, %#x bytes, %d files\n", r.Tag, r.Role, r.Length, len(r.Loads))
	}
	for _, issue := range g.KnownIssues {
		fmt.Fprintf(tw, "known issue:\t%s\n", issue)
	}
}

// newMachine builds an instance of a variant with stub collaborators. CMOS
// is loaded from the configured NVRAM directory; callers never save it back.
func newMachine(reg *machine.Registry, cfg *emu.Config, variant string) (*tunit.Machine, error) {
	g, err := reg.ComposeVariant(variant)
	if err != nil {
		return nil, err
	}
	return tunit.NewMachine(g, tunit.Options{
		Handlers:   tunit.StubHandlers(),
		NVRAM:      cfg.NVRAMDir(),
		StrictCMOS: cfg.NVRAM.StrictCMOS,
		Dips:       cfg.DipsFor(g.Name, g.Parent),
	})
}

func showMap(w io.Writer, reg *machine.Registry, cfg *emu.Config, args Map) error {
	m, err := newMachine(reg, cfg, args.Variant)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	defer tw.Flush()
	for _, dir := range directions(args.Dir) {
		fmt.Fprintf(tw, "%s:\n", dir)
		for _, sp := range m.Bus.Table(dir).Spans() {
			fmt.Fprintf(tw, "  %08x-%08x\t%s\n", sp.Start, sp.End, sp.Name)
		}
	}
	return nil
}

func resolve(w io.Writer, reg *machine.Registry, cfg *emu.Config, args Resolve) error {
	m, err := newMachine(reg, cfg, args.Variant)
	if err != nil {
		return err
	}

	dir := directions(args.Dir)[0]
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	defer tw.Flush()
	for _, addr := range args.Addr {
		sp, ok := m.Bus.Table(dir).Lookup(uint32(addr))
		if !ok {
			fmt.Fprintf(tw, "%s\t%s\topen bus\n", addr, dir)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\toffset %#x\t[%08x-%08x]", addr, dir, sp.Name, sp.Offset(uint32(addr)), sp.Start, sp.End)
		if dir == hwio.Read {
			fmt.Fprintf(tw, "\tvalue %04x", m.Bus.Peek16(uint32(addr)))
		}
		fmt.Fprintln(tw)
	}
	return nil
}

func verify(w io.Writer, reg *machine.Registry, args Verify) error {
	g, err := reg.ComposeVariant(args.Variant)
	if err != nil {
		return err
	}

	names := []string{g.Name}
	if g.IsClone() {
		names = append(names, g.Parent)
	}
	src, err := romset.Find(args.ROMs, names...)
	if err != nil {
		return err
	}
	defer src.Close()

	ldr := romset.Loader{Source: src, Parallel: args.Parallel}
	img, rep, err := ldr.Load(context.Background(), g.ROMSet)
	if err != nil {
		return err
	}
	img.Dispose()

	fmt.Fprintf(w, "%s: %d files, %d bytes read from %s\n", rep.Set, rep.Files, rep.Bytes, src)
	for _, mm := range rep.Mismatches {
		fmt.Fprintf(w, "  %v\n", mm)
	}
	if !rep.OK() {
		return errors.New("bad ROM files")
	}
	fmt.Fprintln(w, "ok")
	return nil
}

func printVersion(w io.Writer) {
	version := "(devel)"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		version = bi.Main.Version
	}
	fmt.Fprintf(w, "tunit %s\n", version)
}
