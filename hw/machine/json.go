package machine

import (
	"github.com/go-faster/jx"

	"tunit/hw/romset"
)

// MarshalJSON encodes the resolved description of g.
func (g *Game) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	g.Encode(&e)
	return e.Bytes(), nil
}

// Encode writes g as a JSON object to e.
func (g *Game) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { e.Str(g.Name) })
		if g.Parent != "" {
			e.Field("parent", func(e *jx.Encoder) { e.Str(g.Parent) })
		}
		e.Field("year", func(e *jx.Encoder) { e.Int(g.Year) })
		e.Field("manufacturer", func(e *jx.Encoder) { e.Str(g.Manufacturer) })
		e.Field("description", func(e *jx.Encoder) { e.Str(g.Description) })
		e.Field("rotation", func(e *jx.Encoder) { e.Int(int(g.Rotation)) })
		e.Field("init", func(e *jx.Encoder) { e.Str(g.Init) })
		if g.Bootstrap != "" {
			e.Field("bootstrap", func(e *jx.Encoder) { e.Str(g.Bootstrap) })
		}
		if len(g.KnownIssues) > 0 {
			e.Field("known_issues", func(e *jx.Encoder) { encodeStrings(e, g.KnownIssues) })
		}
		e.Field("machine", func(e *jx.Encoder) { g.Machine.Encode(e) })
		e.Field("ports", func(e *jx.Encoder) { e.Str(g.PortSet.Name) })
		e.Field("roms", func(e *jx.Encoder) { encodeROMs(e, g.ROMSet) })
	})
}

// Encode writes b as a JSON object to e.
func (b *Block) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { e.Str(b.Name) })
		if len(b.Imports) > 0 {
			e.Field("imports", func(e *jx.Encoder) { encodeStrings(e, b.Imports) })
		}
		e.Field("cpus", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, c := range b.CPUs {
					e.Obj(func(e *jx.Encoder) {
						e.Field("tag", func(e *jx.Encoder) { e.Str(c.Tag) })
						e.Field("type", func(e *jx.Encoder) { e.Str(c.Type) })
						e.Field("clock", func(e *jx.Encoder) { e.UInt64(c.Clock) })
						if c.Map != "" {
							e.Field("map", func(e *jx.Encoder) { e.Str(c.Map) })
						}
					})
				}
			})
		})
		if t := b.Timing; t != nil {
			e.Field("timing", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					e.Field("refresh", func(e *jx.Encoder) { e.Float64(t.Refresh) })
					e.Field("scan_total", func(e *jx.Encoder) { e.Int(t.ScanTotal) })
					e.Field("scan_visible", func(e *jx.Encoder) { e.Int(t.ScanVisible) })
					e.Field("vblank_us", func(e *jx.Encoder) { e.Int64(t.VBlankDuration().Microseconds()) })
				})
			})
		}
		if v := b.Video; v != nil {
			e.Field("video", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					e.Field("type", func(e *jx.Encoder) { e.Str(v.Type) })
					e.Field("width", func(e *jx.Encoder) { e.Int(v.Width) })
					e.Field("height", func(e *jx.Encoder) { e.Int(v.Height) })
					e.Field("visible", func(e *jx.Encoder) {
						e.Arr(func(e *jx.Encoder) {
							e.Int(v.Visible.MinX)
							e.Int(v.Visible.MaxX)
							e.Int(v.Visible.MinY)
							e.Int(v.Visible.MaxY)
						})
					})
					e.Field("palette", func(e *jx.Encoder) { e.Int(v.Palette) })
				})
			})
		}
		if a := b.Audio; a != nil {
			e.Field("audio", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					e.Field("board", func(e *jx.Encoder) { e.Str(a.Board) })
					e.Field("stereo", func(e *jx.Encoder) { e.Bool(a.Stereo()) })
					e.Field("chips", func(e *jx.Encoder) {
						e.Arr(func(e *jx.Encoder) {
							for _, c := range a.Chips {
								e.Obj(func(e *jx.Encoder) {
									e.Field("tag", func(e *jx.Encoder) { e.Str(c.Tag) })
									e.Field("type", func(e *jx.Encoder) { e.Str(c.Type) })
									if c.Pack != "" {
										e.Field("pack", func(e *jx.Encoder) { e.Str(c.Pack) })
										e.Field("samples", func(e *jx.Encoder) { e.Int(len(c.Samples)) })
									}
								})
							}
						})
					})
				})
			})
		}
		if b.NVRAM != nil {
			e.Field("nvram", func(e *jx.Encoder) { e.Str(b.NVRAM.Handler) })
		}
		if b.Init != "" {
			e.Field("init", func(e *jx.Encoder) { e.Str(b.Init) })
		}
	})
}

func encodeROMs(e *jx.Encoder, s *romset.Set) {
	e.Arr(func(e *jx.Encoder) {
		for _, r := range s.Regions {
			e.Obj(func(e *jx.Encoder) {
				e.Field("tag", func(e *jx.Encoder) { e.Str(r.Tag) })
				e.Field("role", func(e *jx.Encoder) { e.Str(r.Role.String()) })
				e.Field("length", func(e *jx.Encoder) { e.UInt32(r.Length) })
				e.Field("loads", func(e *jx.Encoder) {
					e.Arr(func(e *jx.Encoder) {
						for _, l := range r.Loads {
							e.Obj(func(e *jx.Encoder) {
								e.Field("file", func(e *jx.Encoder) { e.Str(l.File) })
								e.Field("offset", func(e *jx.Encoder) { e.UInt32(l.Offset) })
								e.Field("length", func(e *jx.Encoder) { e.UInt32(l.Length) })
								e.Field("mode", func(e *jx.Encoder) { e.Str(l.Mode.String()) })
							})
						}
					})
				})
			})
		}
	})
}

func encodeStrings(e *jx.Encoder, ss []string) {
	e.Arr(func(e *jx.Encoder) {
		for _, s := range ss {
			e.Str(s)
		}
	})
}
