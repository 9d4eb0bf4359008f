// Package strips provides the ground STRIPS primitives the planners
// operate on: propositions, proposition sets, and ground actions.
//
// Key components:
//   - Proposition: an immutable ground atom (predicate + arguments)
//   - State: a set of propositions keyed by canonical form
//   - Action: a ground operator with preconditions and add/delete effects
package strips

import (
	"encoding/json"
	"sort"
	"strings"
)

// Proposition is a ground, true/false fact about the world, identified
// by a predicate name applied to concrete object identifiers.
// Two propositions are equal iff their canonical keys are equal.
type Proposition struct {
	// Predicate is the predicate name, e.g. "AmbulanceFree"
	Predicate string

	// Args is the ordered list of object identifiers the predicate
	// applies to; empty for nullary facts like "RainyConditions"
	Args []string
}

// Prop constructs a proposition from a predicate and its arguments.
func Prop(predicate string, args ...string) Proposition {
	return Proposition{Predicate: predicate, Args: args}
}

// Key returns the canonical form of the proposition, e.g.
// "AmbulanceAt(A1, hospital_h1)" or "RainyConditions".
func (p Proposition) Key() string {
	if len(p.Args) == 0 {
		return p.Predicate
	}
	return p.Predicate + "(" + strings.Join(p.Args, ", ") + ")"
}

// String returns the canonical key.
func (p Proposition) String() string {
	return p.Key()
}

// Equal reports whether two propositions have the same canonical key.
func (p Proposition) Equal(other Proposition) bool {
	return p.Key() == other.Key()
}

// Mentions reports whether any argument of the proposition is the
// given object identifier. Matching is structural, not substring-based.
func (p Proposition) Mentions(id string) bool {
	for _, arg := range p.Args {
		if arg == id {
			return true
		}
	}
	return false
}

// MarshalJSON serializes the proposition as its canonical key.
func (p Proposition) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Key())
}

// State is a set of propositions keyed by canonical form.
type State map[string]Proposition

// NewState creates a state containing the given propositions.
func NewState(props ...Proposition) State {
	s := make(State, len(props))
	for _, p := range props {
		s.Add(p)
	}
	return s
}

// Add inserts a proposition into the state.
func (s State) Add(p Proposition) {
	s[p.Key()] = p
}

// Remove deletes a proposition from the state if present.
func (s State) Remove(p Proposition) {
	delete(s, p.Key())
}

// Contains reports whether the proposition is in the state.
func (s State) Contains(p Proposition) bool {
	_, ok := s[p.Key()]
	return ok
}

// ContainsAll reports whether every proposition in other is in s.
func (s State) ContainsAll(other State) bool {
	for key := range other {
		if _, ok := s[key]; !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	for key, p := range s {
		out[key] = p
	}
	return out
}

// Union returns a new state containing the propositions of both sets.
// Neither input is modified.
func (s State) Union(other State) State {
	out := s.Clone()
	for key, p := range other {
		out[key] = p
	}
	return out
}

// Keys returns the canonical keys in sorted order. Planners iterate
// states through Keys so results are deterministic.
func (s State) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Props returns the propositions sorted by canonical key.
func (s State) Props() []Proposition {
	props := make([]Proposition, 0, len(s))
	for _, key := range s.Keys() {
		props = append(props, s[key])
	}
	return props
}

// MarshalJSON serializes the state as a sorted array of canonical keys.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Keys())
}
