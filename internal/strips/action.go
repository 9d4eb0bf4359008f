package strips

// Action is a ground STRIPS operator.
type Action struct {
	// Name uniquely identifies the ground action, e.g.
	// "StartTransportToAccident(A1, ACC3)"
	Name string

	// Preconditions must all hold for the action to be applicable
	Preconditions State

	// AddEffects are the propositions the action makes true
	AddEffects State

	// DelEffects are the propositions the action makes false.
	// They are tracked for completeness but ignored during
	// planning-graph expansion.
	DelEffects State
}

// ApplicableIn reports whether every precondition holds in the state.
func (a Action) ApplicableIn(s State) bool {
	return s.ContainsAll(a.Preconditions)
}

// Apply returns the state resulting from executing the action:
// delete effects are removed, then add effects are inserted.
// The input state is not modified.
func (a Action) Apply(s State) State {
	out := s.Clone()
	for _, p := range a.DelEffects {
		out.Remove(p)
	}
	for _, p := range a.AddEffects {
		out.Add(p)
	}
	return out
}
