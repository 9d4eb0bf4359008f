// Package pop builds a partial-order plan over the ground response
// actions: ordering constraints form a DAG, causal links justify why
// orderings exist, and contingent branches mark decision points the
// planner defers to the runtime executor.
package pop

import (
	"sort"

	"github.com/cityops/dispatchplan/internal/strips"
)

// Synthetic node ids present in every plan.
const (
	StartID  = "Start"
	FinishID = "Finish"
)

// Action is a plan node: a ground action wrapped with a stable
// identifier distinct from its name.
type Action struct {
	// ID is the stable node identifier used in orderings and links
	ID string `json:"id"`

	// Name is the ground action name, empty only for Start/Finish
	Name string `json:"name"`

	// Preconditions are the propositions the action requires
	Preconditions strips.State `json:"preconditions"`

	// Effects are the propositions the action asserts
	Effects strips.State `json:"effects"`
}

// Ordering is a directed before/after edge between two plan nodes.
type Ordering struct {
	// Before must execute before After
	Before string `json:"before"`

	// After must execute after Before
	After string `json:"after"`
}

// CausalLink records that the producer's effect satisfies the
// consumer's precondition.
type CausalLink struct {
	// Producer is the node whose effects include Prop
	Producer string `json:"producer"`

	// Prop is the supported proposition
	Prop strips.Proposition `json:"proposition"`

	// Consumer is the node whose preconditions include Prop
	Consumer string `json:"consumer"`
}

// Branch is a contingent continuation keyed by a runtime-observable
// condition. Branches are mutually exclusive alternatives; the planner
// never chooses one.
type Branch struct {
	// Condition is the proposition observed only during execution
	Condition strips.Proposition `json:"condition"`

	// Actions are the node ids to execute if the condition holds
	Actions []string `json:"actions"`

	// Rationale is a human-readable explanation of the branch
	Rationale string `json:"rationale"`
}

// Plan is a partial-order plan. Actions with no ordering edge between
// them, directly or transitively, may be dispatched concurrently by a
// downstream executor.
type Plan struct {
	// Actions maps node id to plan node, including Start and Finish
	Actions map[string]Action `json:"actions"`

	// Orderings is the set of directed before/after edges
	Orderings []Ordering `json:"orderings"`

	// CausalLinks justify orderings by produced propositions
	CausalLinks []CausalLink `json:"causal_links"`

	// Branches is the ordered list of contingent decision points
	Branches []Branch `json:"branches"`
}

// NewPlan creates an empty plan.
func NewPlan() *Plan {
	return &Plan{
		Actions:     make(map[string]Action),
		Orderings:   []Ordering{},
		CausalLinks: []CausalLink{},
		Branches:    []Branch{},
	}
}

// AddAction registers a plan node.
func (p *Plan) AddAction(a Action) {
	p.Actions[a.ID] = a
}

// AddOrdering records a before/after constraint.
func (p *Plan) AddOrdering(before, after string) {
	p.Orderings = append(p.Orderings, Ordering{Before: before, After: after})
}

// AddCausalLink records a causal justification.
func (p *Plan) AddCausalLink(producer string, prop strips.Proposition, consumer string) {
	p.CausalLinks = append(p.CausalLinks, CausalLink{Producer: producer, Prop: prop, Consumer: consumer})
}

// AddBranch appends a contingent branch.
func (p *Plan) AddBranch(b Branch) {
	p.Branches = append(p.Branches, b)
}

// ActionIDs returns all node ids in sorted order.
func (p *Plan) ActionIDs() []string {
	ids := make([]string, 0, len(p.Actions))
	for id := range p.Actions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// successors returns the adjacency map of the ordering graph.
func (p *Plan) successors() map[string][]string {
	next := make(map[string][]string, len(p.Actions))
	for _, o := range p.Orderings {
		next[o.Before] = append(next[o.Before], o.After)
	}
	return next
}

// OrderedBefore reports whether a must execute before b, directly or
// transitively.
func (p *Plan) OrderedBefore(a, b string) bool {
	if a == b {
		return false
	}
	next := p.successors()
	seen := map[string]bool{a: true}
	stack := []string{a}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, succ := range next[node] {
			if succ == b {
				return true
			}
			if !seen[succ] {
				seen[succ] = true
				stack = append(stack, succ)
			}
		}
	}
	return false
}
