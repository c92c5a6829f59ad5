// Package meter projects the configuration set through 23 named lenses,
// each a declarative filter plus a classification table, and produces
// labeled, explainable readings.
package meter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/okian/astroclimate/internal/domain/model"
	"github.com/okian/astroclimate/internal/domain/types"
)

// Filter is a declarative predicate over configuration records. All set
// fields must match (conjunction); an empty field matches everything. A
// meter definition is a value, not a bespoke function, which keeps all 23
// meters mechanically uniform.
type Filter struct {
	// NatalBodies matches the natal body against the set.
	NatalBodies []types.Body
	// TransitBodies matches the transiting body against the set.
	TransitBodies []types.Body
	// AnyBodies matches when either the natal or the transiting body is
	// in the set.
	AnyBodies []types.Body
	// Houses matches the natal house placement against the set.
	Houses []int
	// Hardness matches the aspect's hardness class. Empty matches any.
	Hardness types.Hardness
}

// Matches reports whether the configuration passes every set predicate.
func (f Filter) Matches(cfg model.Configuration) bool {
	if len(f.NatalBodies) > 0 && !containsBody(f.NatalBodies, cfg.NatalBody) {
		return false
	}
	if len(f.TransitBodies) > 0 && !containsBody(f.TransitBodies, cfg.TransitBody) {
		return false
	}
	if len(f.AnyBodies) > 0 &&
		!containsBody(f.AnyBodies, cfg.NatalBody) &&
		!containsBody(f.AnyBodies, cfg.TransitBody) {
		return false
	}
	if len(f.Houses) > 0 && !containsInt(f.Houses, cfg.NatalHouse) {
		return false
	}
	if f.Hardness != "" && cfg.Aspect.Hardness() != f.Hardness {
		return false
	}
	return true
}

// Apply returns the subset of configs passing the filter, in input order.
func (f Filter) Apply(configs []model.Configuration) []model.Configuration {
	out := make([]model.Configuration, 0, len(configs))
	for _, cfg := range configs {
		if f.Matches(cfg) {
			out = append(out, cfg)
		}
	}
	return out
}

// Key returns a canonical identity string for the filter, used for
// request-scoped memoization of filtered subsets. Identical filters share
// one key regardless of field ordering.
func (f Filter) Key() string {
	var b strings.Builder
	writeBodies := func(prefix string, bodies []types.Body) {
		b.WriteString(prefix)
		names := make([]string, len(bodies))
		for i, body := range bodies {
			names[i] = string(body)
		}
		sort.Strings(names)
		b.WriteString(strings.Join(names, ","))
		b.WriteByte(';')
	}
	writeBodies("n=", f.NatalBodies)
	writeBodies("t=", f.TransitBodies)
	writeBodies("a=", f.AnyBodies)

	houses := append([]int(nil), f.Houses...)
	sort.Ints(houses)
	b.WriteString("h=")
	for i, h := range houses {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(h))
	}
	b.WriteString(";c=")
	b.WriteString(string(f.Hardness))
	return b.String()
}

func containsBody(set []types.Body, b types.Body) bool {
	for _, candidate := range set {
		if candidate == b {
			return true
		}
	}
	return false
}

func containsInt(set []int, v int) bool {
	for _, candidate := range set {
		if candidate == v {
			return true
		}
	}
	return false
}
