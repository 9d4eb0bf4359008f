package graphplan

import (
	"fmt"

	"github.com/cityops/dispatchplan/internal/strips"
)

// ExtractLinearPlan walks the planning graph backward from the goal
// layer and selects a supporting action for every goal proposition not
// already true in the previous layer. Supporters contribute their own
// preconditions as new subgoals; the collected actions are reversed
// into execution order and deduplicated, keeping each action's first
// occurrence.
//
// Supporter selection is "first in layer order", so the result is a
// valid sequence but not necessarily a minimal one.
//
// A goal with no supporter at some layer must either have received a
// supporter at a later layer already, or be true in the layer-0
// proposition set. Anything else means the graph cannot justify the
// goal, and extraction fails instead of silently dropping it.
func ExtractLinearPlan(graph *PlanGraph, goalLayer int, goals strips.State) ([]strips.Action, error) {
	if goalLayer <= 0 || goalLayer >= len(graph.PropositionLayers) {
		return nil, fmt.Errorf("goal layer %d out of range: %w", goalLayer, ErrPlanNotFound)
	}

	var chosen []strips.Action
	currentGoals := goals.Clone()
	supported := make(map[string]bool)

	for level := goalLayer; level >= 1; level-- {
		previous := graph.PropositionLayers[level-1]
		layerActions := graph.ActionLayers[level-1]
		subgoals := strips.NewState()

		for _, goal := range currentGoals.Props() {
			// Already true before this layer: nothing to do here.
			if previous.Contains(goal) {
				continue
			}

			var supporter *strips.Action
			for i := range layerActions {
				if layerActions[i].AddEffects.Contains(goal) {
					supporter = &layerActions[i]
					break
				}
			}

			if supporter == nil {
				if supported[goal.Key()] {
					// Justified by a supporter chosen at a later layer.
					continue
				}
				if graph.PropositionLayers[0].Contains(goal) {
					continue
				}
				return nil, fmt.Errorf("no action supports goal %s: %w", goal, ErrPlanNotFound)
			}

			supported[goal.Key()] = true
			chosen = append(chosen, *supporter)
			subgoals = subgoals.Union(supporter.Preconditions)
		}

		currentGoals = currentGoals.Union(subgoals)
	}

	// Reverse into forward order, keep the first occurrence of each action.
	seen := make(map[string]bool, len(chosen))
	plan := make([]strips.Action, 0, len(chosen))
	for i := len(chosen) - 1; i >= 0; i-- {
		action := chosen[i]
		if seen[action.Name] {
			continue
		}
		seen[action.Name] = true
		plan = append(plan, action)
	}

	return plan, nil
}
