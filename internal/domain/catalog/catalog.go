package catalog

import "fmt"

// ===============================
// Equipment Type Catalog
// ===============================

// Type describes one equipment record type. Slug is the wire identifier
// (route segment, stored data_type); Label is the display name written to
// history entries.
type Type struct {
	Slug  string
	Label string
}

// builtin is the closed set of equipment types the console manages.
var builtin = []Type{
	{Slug: "bus", Label: "Bus"},
	{Slug: "generator", Label: "Generator"},
	{Slug: "load", Label: "Load"},
	{Slug: "transformer-two-winding", Label: "Transformer Two Winding"},
	{Slug: "transformer-three-winding", Label: "Transformer Three Winding"},
	{Slug: "transmission-line", Label: "Transmission Line"},
	{Slug: "shunt-capacitor", Label: "Shunt Capacitor"},
	{Slug: "shunt-reactor", Label: "Shunt Reactor"},
	{Slug: "series-capacitor", Label: "Series Capacitor"},
	{Slug: "shunt-fact", Label: "Shunt Fact"},
	{Slug: "series-fact", Label: "Series Fact"},
	{Slug: "lcc-hvdc-link", Label: "LCC-HVDC Link"},
	{Slug: "vsc-hvdc-link", Label: "VSC-HVDC Link"},
	{Slug: "ibr", Label: "IBR"},
	{Slug: "turbine", Label: "Turbine"},
	{Slug: "excitation-system", Label: "Excitation System"},
	{Slug: "single-line-diagram", Label: "Single Line Diagram"},
}

// Registry resolves data type slugs. It is built once at startup; building
// fails on duplicate slugs so a typo in the table cannot silently shadow an
// entry.
type Registry struct {
	byStr   map[string]Type
	ordered []Type
}

func New() (*Registry, error) {
	return newRegistry(builtin)
}

func newRegistry(types []Type) (*Registry, error) {
	r := &Registry{
		byStr:   make(map[string]Type, len(types)),
		ordered: make([]Type, 0, len(types)),
	}

	for _, t := range types {
		if t.Slug == "" || t.Label == "" {
			return nil, fmt.Errorf("catalog: incomplete type %+v", t)
		}
		if _, dup := r.byStr[t.Slug]; dup {
			return nil, fmt.Errorf("catalog: duplicate slug %q", t.Slug)
		}
		r.byStr[t.Slug] = t
		r.ordered = append(r.ordered, t)
	}

	return r, nil
}

// Resolve returns the type for slug, or false for anything outside the
// catalog.
func (r *Registry) Resolve(slug string) (Type, bool) {
	t, ok := r.byStr[slug]
	return t, ok
}

// Types returns the catalog in declaration order.
func (r *Registry) Types() []Type {
	out := make([]Type, len(r.ordered))
	copy(out, r.ordered)
	return out
}
