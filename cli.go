package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"tunit/emu/log"
	"tunit/hw/hwio"
)

type mode byte

const (
	listMode    mode = iota // List game variants
	infoMode                // Show a variant's composed configuration
	mapMode                 // Show a variant's address map
	resolveMode             // Resolve an address
	verifyMode              // Verify ROM files
	versionMode             // Show tunit version
)

type (
	CLI struct {
		List    List    `cmd:"" help:"List game variants. (default command)" default:"true"`
		Info    Info    `cmd:"" help:"Show the composed configuration of a variant."`
		Map     Map     `cmd:"" help:"Show the address map of a variant."`
		Resolve Resolve `cmd:"" help:"Show which handler serves an address."`
		Verify  Verify  `cmd:"" help:"Verify the ROM files of a variant."`
		Version Version `cmd:"" help:"Show tunit version."`

		Log     logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
		Config  string     `help:"${config_help}" type:"existingfile" placeholder:"FILE"`
		Overlay []string   `help:"${overlay_help}" type:"existingfile" placeholder:"FILE"`

		mode mode
	}

	List struct {
		Parents bool `help:"Only list parent variants."`
	}

	Info struct {
		Variant string  `arg:"" help:"Variant name."`
		JSON    bool    `name:"json" help:"Output JSON." xor:"format"`
		Dump    bool    `name:"dump" help:"Dump raw Go structures." xor:"format"`
		Out     outfile `name:"out" help:"Write output to file." placeholder:"FILE|stdout|stderr"`
	}

	Map struct {
		Variant string `arg:"" help:"Variant name."`
		Dir     string `name:"dir" help:"Access direction (${enum})." enum:"read,write,both" default:"both"`
	}

	Resolve struct {
		Variant string    `arg:"" help:"Variant name."`
		Addr    []hexAddr `arg:"" help:"Bit addresses, in hexadecimal."`
		Dir     string    `name:"dir" help:"Access direction (${enum})." enum:"read,write" default:"read"`
	}

	Verify struct {
		Variant  string   `arg:"" help:"Variant name."`
		ROMs     []string `name:"roms" help:"${roms_help}" type:"path" placeholder:"DIR"`
		Parallel int      `name:"parallel" help:"Maximum number of files read concurrently."`
	}

	Version struct{}
)

var vars = kong.Vars{
	"log_help":     "Enable logging for specified modules.",
	"config_help":  "Configuration file, instead of the one in the tunit config directory.",
	"overlay_help": "YAML file declaring additional blocks and variants.",
	"roms_help":    "Directories holding ROM archives. Overrides the configuration.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("tunit"),
		kong.Description("Midway T-unit machine descriptions."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch strings.Fields(ctx.Command())[0] {
	case "list":
		cfg.mode = listMode
	case "info":
		cfg.mode = infoMode
	case "map":
		cfg.mode = mapMode
	case "resolve":
		cfg.mode = resolveMode
	case "verify":
		cfg.mode = verifyMode
	case "version":
		cfg.mode = versionMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
	var strs []string
	for _, m := range log.ModuleNames() {
		strs = append(strs, "    - "+m)
	}

	fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false

	var names []string
	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		if v == "no" {
			nolog = true
			continue
		}
		names = append(names, v)
	}

	mask, err := log.ParseModules(names)
	if err != nil {
		return err
	}

	if nolog {
		if mask != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	log.EnableDebugModules(mask)
	return nil
}

// hexAddr is a 32-bit address given in hexadecimal, with or without 0x
// prefix.
type hexAddr uint32

// Decode implements kong.MapperValue interface.
func (a *hexAddr) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	s, ok := tok.Value.(string)
	if !ok {
		return fmt.Errorf("expected an address, got %v", tok.Value)
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 32)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", s, err)
	}
	*a = hexAddr(v)
	return nil
}

func (a hexAddr) String() string { return fmt.Sprintf("%08x", uint32(a)) }

func directions(s string) []hwio.Direction {
	switch s {
	case "read":
		return []hwio.Direction{hwio.Read}
	case "write":
		return []hwio.Direction{hwio.Write}
	}
	return []hwio.Direction{hwio.Read, hwio.Write}
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
