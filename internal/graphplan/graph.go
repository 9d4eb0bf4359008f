// Package graphplan implements a relaxed GraphPlan-style planner:
// layered forward expansion of reachable propositions, followed by
// backward extraction of a linear action sequence.
//
// Mutual exclusion between actions or propositions at the same layer
// is deliberately not tracked. This is sound only because the target
// domain is small and acyclic enough that false positives do not occur
// in practice; the test suite exercises the canonical scenario under
// this assumption.
package graphplan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cityops/dispatchplan/internal/strips"
)

// ErrPlanNotFound indicates the goal set is not reachable within the
// level budget.
var ErrPlanNotFound = errors.New("plan not found")

// DefaultMaxLevels is the default level budget for graph expansion.
const DefaultMaxLevels = 8

// PlanGraph is the layered reachability structure built by Build.
// PropositionLayers[i+1] is PropositionLayers[i] plus the add effects
// of every action in ActionLayers[i]; layers only grow because delete
// effects are ignored during expansion.
type PlanGraph struct {
	// PropositionLayers is the sequence P0..Pn of proposition sets
	PropositionLayers []strips.State

	// ActionLayers is the sequence A0..A(n-1) of applicable-action sets
	ActionLayers [][]strips.Action
}

// Build expands the planning graph from the initial state until the
// goals are covered by a proposition layer or maxLevels is exhausted.
// On success it returns the graph and the index of the first layer
// that covers the goals. If maxLevels is not positive,
// DefaultMaxLevels is used.
func Build(initial strips.State, actions []strips.Action, goals strips.State, maxLevels int) (*PlanGraph, int, error) {
	if maxLevels <= 0 {
		maxLevels = DefaultMaxLevels
	}

	graph := &PlanGraph{
		PropositionLayers: []strips.State{initial.Clone()},
	}

	for level := 0; level < maxLevels; level++ {
		current := graph.PropositionLayers[len(graph.PropositionLayers)-1]

		applicable := make([]strips.Action, 0, len(actions))
		for _, action := range actions {
			if action.ApplicableIn(current) {
				applicable = append(applicable, action)
			}
		}
		graph.ActionLayers = append(graph.ActionLayers, applicable)

		next := current.Clone()
		for _, action := range applicable {
			for _, effect := range action.AddEffects {
				next.Add(effect)
			}
		}
		graph.PropositionLayers = append(graph.PropositionLayers, next)

		if next.ContainsAll(goals) {
			return graph, level + 1, nil
		}
	}

	return nil, 0, fmt.Errorf("goals %s not reachable within %d levels: %w",
		strings.Join(goals.Keys(), ", "), maxLevels, ErrPlanNotFound)
}
