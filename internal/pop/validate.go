package pop

import (
	"errors"
	"fmt"
)

// ErrInvalidPlan indicates a constructed plan violates a structural
// invariant.
var ErrInvalidPlan = errors.New("invalid plan")

// Validate checks the plan's structural invariants:
//   - every ordering references known node ids
//   - the ordering graph is acyclic
//   - Start has no incoming edges and no preconditions; Finish has no
//     outgoing edges
//   - every causal link's proposition is produced by its producer,
//     required by its consumer, and the producer is ordered before the
//     consumer
//   - branch actions reference known ids and are pairwise disjoint
//     across branches
func (p *Plan) Validate() error {
	for _, o := range p.Orderings {
		if _, ok := p.Actions[o.Before]; !ok {
			return fmt.Errorf("ordering references unknown node %q: %w", o.Before, ErrInvalidPlan)
		}
		if _, ok := p.Actions[o.After]; !ok {
			return fmt.Errorf("ordering references unknown node %q: %w", o.After, ErrInvalidPlan)
		}
	}

	if cycle := p.findCycle(); cycle != "" {
		return fmt.Errorf("ordering cycle through %q: %w", cycle, ErrInvalidPlan)
	}

	if start, ok := p.Actions[StartID]; ok {
		if len(start.Preconditions) != 0 {
			return fmt.Errorf("Start must have no preconditions: %w", ErrInvalidPlan)
		}
	}
	for _, o := range p.Orderings {
		if o.After == StartID {
			return fmt.Errorf("Start must have no incoming orderings: %w", ErrInvalidPlan)
		}
		if o.Before == FinishID {
			return fmt.Errorf("Finish must have no outgoing orderings: %w", ErrInvalidPlan)
		}
	}

	for _, link := range p.CausalLinks {
		producer, ok := p.Actions[link.Producer]
		if !ok {
			return fmt.Errorf("causal link references unknown producer %q: %w", link.Producer, ErrInvalidPlan)
		}
		consumer, ok := p.Actions[link.Consumer]
		if !ok {
			return fmt.Errorf("causal link references unknown consumer %q: %w", link.Consumer, ErrInvalidPlan)
		}
		if !producer.Effects.Contains(link.Prop) {
			return fmt.Errorf("%s does not produce %s: %w", link.Producer, link.Prop, ErrInvalidPlan)
		}
		if !consumer.Preconditions.Contains(link.Prop) {
			return fmt.Errorf("%s does not require %s: %w", link.Consumer, link.Prop, ErrInvalidPlan)
		}
		if !p.OrderedBefore(link.Producer, link.Consumer) {
			return fmt.Errorf("%s is not ordered before %s: %w", link.Producer, link.Consumer, ErrInvalidPlan)
		}
	}

	claimed := make(map[string]int)
	for i, branch := range p.Branches {
		for _, id := range branch.Actions {
			if _, ok := p.Actions[id]; !ok {
				return fmt.Errorf("branch %d references unknown node %q: %w", i, id, ErrInvalidPlan)
			}
			if prev, ok := claimed[id]; ok && prev != i {
				return fmt.Errorf("node %q appears in branches %d and %d: %w", id, prev, i, ErrInvalidPlan)
			}
			claimed[id] = i
		}
	}

	return nil
}

// findCycle returns a node id on an ordering cycle, or "" if the
// ordering graph is a DAG.
func (p *Plan) findCycle() string {
	next := p.successors()

	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make(map[string]int, len(p.Actions))

	var visit func(node string) string
	visit = func(node string) string {
		state[node] = inStack
		for _, succ := range next[node] {
			switch state[succ] {
			case inStack:
				return succ
			case unvisited:
				if hit := visit(succ); hit != "" {
					return hit
				}
			}
		}
		state[node] = done
		return ""
	}

	for _, id := range p.ActionIDs() {
		if state[id] == unvisited {
			if hit := visit(id); hit != "" {
				return hit
			}
		}
	}
	return ""
}
