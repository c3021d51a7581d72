package machine

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"tunit/emu/log"
	"tunit/hw/hwdefs"
	"tunit/hw/hwio"
	"tunit/hw/input"
	"tunit/hw/romset"
)

// A Registry holds the declarations of blocks, variants, port sets, ROM sets
// and address maps, and resolves them. Resolutions are memoized: declaring
// anything new invalidates them.
type Registry struct {
	mu sync.Mutex

	blocks   map[string]*Block
	variants map[string]*Variant
	order    []string // variants, in declaration order
	ports    map[string]*input.PortSet
	roms     map[string]*romset.Set
	maps     map[string]*hwio.AddressMap

	composed map[string]*Block
	portsets map[string]*input.PortSet
	games    map[string]*Game
}

func NewRegistry() *Registry {
	r := &Registry{
		blocks:   make(map[string]*Block),
		variants: make(map[string]*Variant),
		ports:    make(map[string]*input.PortSet),
		roms:     make(map[string]*romset.Set),
		maps:     make(map[string]*hwio.AddressMap),
	}
	r.reset()
	return r
}

func (r *Registry) reset() {
	r.composed = make(map[string]*Block)
	r.portsets = make(map[string]*input.PortSet)
	r.games = make(map[string]*Game)
}

func declare[T any](r *Registry, m map[string]T, name string, v T) error {
	if name == "" {
		return hwdefs.Errorf(hwdefs.UnknownName, "<empty>", "declaration without a name")
	}
	if _, ok := m[name]; ok {
		return hwdefs.Errorf(hwdefs.DuplicateName, name, "already declared")
	}
	m[name] = v
	r.reset()
	return nil
}

// AddBlock declares hardware configuration blocks.
func (r *Registry) AddBlock(blocks ...*Block) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range blocks {
		if err := declare(r, r.blocks, b.Name, b); err != nil {
			return err
		}
	}
	return nil
}

// AddVariant declares game variants.
func (r *Registry) AddVariant(variants ...*Variant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range variants {
		if err := declare(r, r.variants, v.Name, v); err != nil {
			return err
		}
		r.order = append(r.order, v.Name)
	}
	return nil
}

// AddPorts declares input port sets.
func (r *Registry) AddPorts(sets ...*input.PortSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ps := range sets {
		if err := declare(r, r.ports, ps.Name, ps); err != nil {
			return err
		}
	}
	return nil
}

// AddROMs declares ROM sets.
func (r *Registry) AddROMs(sets ...*romset.Set) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range sets {
		if err := declare(r, r.roms, s.Name, s); err != nil {
			return err
		}
	}
	return nil
}

// AddMap declares address maps.
func (r *Registry) AddMap(maps ...*hwio.AddressMap) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range maps {
		if err := declare(r, r.maps, m.Name, m); err != nil {
			return err
		}
	}
	return nil
}

// Variants returns the names of all variants, in declaration order.
func (r *Registry) Variants() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.order)
}

// Blocks returns the names of all blocks, sorted.
func (r *Registry) Blocks() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.blocks))
	for name := range r.blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variant returns the declaration of a variant, as written.
func (r *Registry) Variant(name string) (*Variant, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.variants[name]
	return v, ok
}

// Compose returns the block obtained by applying, in order, the composed
// imports of the named block and then its own fields. The result belongs to
// the caller.
func (r *Registry) Compose(name string) (*Block, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, err := r.compose(name, nil)
	if err != nil {
		return nil, err
	}
	return b.Clone(), nil
}

func cycle(path []string, name string) string {
	i := slices.Index(path, name)
	return strings.Join(slices.Concat(path[i:], []string{name}), " -> ")
}

func (r *Registry) compose(name string, path []string) (*Block, error) {
	if b, ok := r.composed[name]; ok {
		return b, nil
	}
	if slices.Contains(path, name) {
		return nil, hwdefs.Errorf(hwdefs.ImportCycle, name, "%s", cycle(path, name))
	}
	decl, ok := r.blocks[name]
	if !ok {
		return nil, hwdefs.Errorf(hwdefs.UnknownName, name, "no such block")
	}

	path = append(path, name)
	out := &Block{Name: name, Imports: slices.Clone(decl.Imports)}
	for _, imp := range decl.Imports {
		if _, ok := r.blocks[imp]; !ok {
			return nil, hwdefs.Errorf(hwdefs.UnknownName, name, "imports unknown block %q", imp)
		}
		ib, err := r.compose(imp, path)
		if err != nil {
			return nil, err
		}
		out.apply(ib)
	}
	out.apply(decl)

	if t := out.Timing; t != nil && t.ScanTotal != 0 && t.ScanVisible > t.ScanTotal {
		return nil, hwdefs.Errorf(hwdefs.BadRange, name, "%d visible lines out of %d", t.ScanVisible, t.ScanTotal)
	}

	r.composed[name] = out
	log.ModCfg.DebugZ("block composed").
		String("name", name).
		Int("imports", len(decl.Imports)).
		Int("cpus", len(out.CPUs)).
		End()
	return out, nil
}

// PortSet returns the named port set, with its base sets applied.
func (r *Registry) PortSet(name string) (*input.PortSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.portSet(name, nil)
}

func (r *Registry) portSet(name string, path []string) (*input.PortSet, error) {
	if ps, ok := r.portsets[name]; ok {
		return ps, nil
	}
	if slices.Contains(path, name) {
		return nil, hwdefs.Errorf(hwdefs.ParentCycle, name, "%s", cycle(path, name))
	}
	decl, ok := r.ports[name]
	if !ok {
		return nil, hwdefs.Errorf(hwdefs.UnknownName, name, "no such port set")
	}

	ps := decl
	if decl.Base != "" {
		base, err := r.portSet(decl.Base, append(path, name))
		if err != nil {
			return nil, err
		}
		ps = base.Override(decl)
	}
	if err := ps.Validate(); err != nil {
		return nil, err
	}
	r.portsets[name] = ps
	return ps, nil
}

// ComposeVariant returns the resolved description of the named variant. The
// machine description of the result belongs to the caller, port sets, ROM
// sets and address maps are shared and must not be modified.
func (r *Registry) ComposeVariant(name string) (*Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, err := r.resolve(name, nil)
	if err != nil {
		return nil, err
	}
	return g.clone(), nil
}

func (r *Registry) resolve(name string, path []string) (*Game, error) {
	if g, ok := r.games[name]; ok {
		return g, nil
	}
	if slices.Contains(path, name) {
		return nil, hwdefs.Errorf(hwdefs.ParentCycle, name, "%s", cycle(path, name))
	}
	decl, ok := r.variants[name]
	if !ok {
		return nil, hwdefs.Errorf(hwdefs.UnknownName, name, "no such variant")
	}

	g := &Game{Variant: *decl}
	g.KnownIssues = slices.Clone(decl.KnownIssues)

	var parent *Game
	if decl.Parent != "" {
		if _, ok := r.variants[decl.Parent]; !ok {
			return nil, hwdefs.Errorf(hwdefs.UnknownName, name, "unknown parent %q", decl.Parent)
		}
		p, err := r.resolve(decl.Parent, append(path, name))
		if err != nil {
			return nil, err
		}
		parent = p
		g.inherit(&p.Variant)
	}

	var err error
	if g.Block == "" {
		return nil, hwdefs.Errorf(hwdefs.UnknownName, name, "no machine block")
	}
	if g.Machine, err = r.compose(g.Block, nil); err != nil {
		return nil, fmt.Errorf("%s: machine: %w", name, err)
	}

	if g.Ports == "" {
		return nil, hwdefs.Errorf(hwdefs.UnknownName, name, "no port set")
	}
	if g.PortSet, err = r.portSet(g.Ports, nil); err != nil {
		return nil, fmt.Errorf("%s: ports: %w", name, err)
	}

	switch {
	case g.ROMs == "" && parent != nil:
		g.ROMs = parent.ROMs
		g.ROMSet = parent.ROMSet
	case g.ROMs == "":
		return nil, hwdefs.Errorf(hwdefs.UnknownName, name, "no ROM set")
	default:
		set, ok := r.roms[g.ROMs]
		if !ok {
			return nil, hwdefs.Errorf(hwdefs.UnknownName, name, "unknown ROM set %q", g.ROMs)
		}
		if parent != nil {
			if set, err = parent.ROMSet.Override(set); err != nil {
				return nil, fmt.Errorf("%s: roms: %w", name, err)
			}
		}
		if err := set.Validate(); err != nil {
			return nil, fmt.Errorf("%s: roms: %w", name, err)
		}
		g.ROMSet = set
	}

	g.Maps = make(map[string]*hwio.AddressMap)
	for _, cpu := range g.Machine.CPUs {
		if cpu.Map == "" {
			continue
		}
		m, ok := r.maps[cpu.Map]
		if !ok {
			return nil, hwdefs.Errorf(hwdefs.UnknownName, name, "cpu %s: unknown address map %q", cpu.Tag, cpu.Map)
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("%s: cpu %s: %w", name, cpu.Tag, err)
		}
		g.Maps[cpu.Tag] = m
	}

	r.games[name] = g
	log.ModCfg.DebugZ("variant resolved").
		String("name", name).
		String("parent", g.Parent).
		String("block", g.Block).
		Int("regions", len(g.ROMSet.Regions)).
		End()
	return g, nil
}

// Validate resolves every declared block and variant, and returns all the
// errors found.
func (r *Registry) Validate() error {
	var errs []error
	for _, name := range r.Blocks() {
		if _, err := r.Compose(name); err != nil {
			errs = append(errs, err)
		}
	}
	for _, name := range r.Variants() {
		if _, err := r.ComposeVariant(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
