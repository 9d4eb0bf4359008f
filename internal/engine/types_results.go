package engine

import (
	"github.com/cityops/dispatchplan/internal/domain"
	"github.com/cityops/dispatchplan/internal/graphplan"
	"github.com/cityops/dispatchplan/internal/pop"
	"github.com/cityops/dispatchplan/internal/strips"
)

// LinearPlanResult is the result of a linear planning request.
type LinearPlanResult struct {
	// Domain is the ground domain the plan was extracted from
	Domain *domain.Domain

	// Graph is the expanded planning graph
	Graph *graphplan.PlanGraph

	// GoalLayer is the first proposition layer covering the goals
	GoalLayer int

	// Steps is the committed action sequence in execution order
	Steps []strips.Action
}

// PartialOrderResult is the result of a partial-order planning request.
type PartialOrderResult struct {
	// Domain is the ground domain the plan was built from
	Domain *domain.Domain

	// Plan is the validated partial-order plan
	Plan *pop.Plan
}
