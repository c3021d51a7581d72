package machine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"tunit/emu/log"
	"tunit/hw/hwdefs"
)

// Overlay holds blocks and variants declared in YAML files, in addition to
// the built-in declarations.
//
//	include:
//	  - common.yaml
//	blocks:
//	  - name: mk_ntsc
//	    imports: [mk]
//	    timing: {refresh: 59.94}
//	variants:
//	  - name: mkntsc
//	    parent: mk
//	    block: mk_ntsc
//	    description: Mortal Kombat (NTSC timing)
type Overlay struct {
	Include  []string   `yaml:"include"`
	Blocks   []*Block   `yaml:"blocks"`
	Variants []*Variant `yaml:"variants"`
}

// LoadOverlay reads an overlay file and the files it includes, relative to
// its directory. Declarations of the including file replace the included
// declarations with the same name.
func LoadOverlay(path string) (*Overlay, error) {
	return loadOverlay(path, nil)
}

func loadOverlay(path string, stack []string) (*Overlay, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	for _, p := range stack {
		if p == abs {
			return nil, fmt.Errorf("overlay %s: include cycle", path)
		}
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	var cfg Overlay
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("overlay %s: %w", path, err)
	}
	log.ModCfg.DebugZ("overlay read").String("path", path).Int("includes", len(cfg.Include)).End()

	out := &Overlay{}
	for _, inc := range cfg.Include {
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(filepath.Dir(path), inc)
		}
		sub, err := loadOverlay(inc, append(stack, abs))
		if err != nil {
			return nil, err
		}
		out.merge(sub)
	}

	// Own declarations are applied last, over those of the includes.
	out.merge(&cfg)
	return out, nil
}

func (o *Overlay) merge(sub *Overlay) {
	for _, b := range sub.Blocks {
		o.Blocks = replaceOrAppend(o.Blocks, b, func(x *Block) bool { return x.Name == b.Name })
	}
	for _, v := range sub.Variants {
		o.Variants = replaceOrAppend(o.Variants, v, func(x *Variant) bool { return x.Name == v.Name })
	}
}

func replaceOrAppend[T any](s []T, v T, same func(T) bool) []T {
	for i := range s {
		if same(s[i]) {
			s[i] = v
			return s
		}
	}
	return append(s, v)
}

// Apply declares the blocks and variants of o in r. Overlay declarations
// cannot replace declarations already present in r. The new declarations
// are resolved against r; on any error r is left unchanged.
func (r *Registry) Apply(o *Overlay) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkOverlay(o); err != nil {
		return err
	}
	for _, b := range o.Blocks {
		r.blocks[b.Name] = b
	}
	for _, v := range o.Variants {
		r.variants[v.Name] = v
		r.order = append(r.order, v.Name)
	}
	r.reset()

	var errs []error
	for _, b := range o.Blocks {
		if _, err := r.compose(b.Name, nil); err != nil {
			errs = append(errs, err)
		}
	}
	for _, v := range o.Variants {
		if _, err := r.resolve(v.Name, nil); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		r.withdraw(o)
		return err
	}
	log.ModCfg.DebugZ("overlay applied").Int("blocks", len(o.Blocks)).Int("variants", len(o.Variants)).End()
	return nil
}

// checkOverlay checks that the names declared by o are set, and unique
// within o and r.
func (r *Registry) checkOverlay(o *Overlay) error {
	blocks := make(map[string]bool, len(o.Blocks))
	for i, b := range o.Blocks {
		if b == nil || b.Name == "" {
			return hwdefs.Errorf(hwdefs.UnknownName, "<empty>", "block #%d has no name", i)
		}
		if _, ok := r.blocks[b.Name]; ok || blocks[b.Name] {
			return hwdefs.Errorf(hwdefs.DuplicateName, b.Name, "already declared")
		}
		blocks[b.Name] = true
	}
	variants := make(map[string]bool, len(o.Variants))
	for i, v := range o.Variants {
		if v == nil || v.Name == "" {
			return hwdefs.Errorf(hwdefs.UnknownName, "<empty>", "variant #%d has no name", i)
		}
		if _, ok := r.variants[v.Name]; ok || variants[v.Name] {
			return hwdefs.Errorf(hwdefs.DuplicateName, v.Name, "already declared")
		}
		variants[v.Name] = true
	}
	return nil
}

// withdraw removes the declarations of an overlay just applied.
func (r *Registry) withdraw(o *Overlay) {
	for _, b := range o.Blocks {
		delete(r.blocks, b.Name)
	}
	for _, v := range o.Variants {
		delete(r.variants, v.Name)
	}
	r.order = r.order[:len(r.order)-len(o.Variants)]
	r.reset()
}
