// Package engine orchestrates planning requests against a scenario
// snapshot. It is the main API surface called by the CLI: each
// operation takes a request struct, builds the ground domain, runs the
// appropriate planner, and returns a result struct.
//
// Planning is a pure function of the snapshot: the engine holds no
// mutable state and every request constructs fresh data structures.
package engine

import (
	"github.com/cityops/dispatchplan/internal/domain"
	"github.com/cityops/dispatchplan/internal/graphplan"
	"github.com/cityops/dispatchplan/internal/pop"
	"github.com/cityops/dispatchplan/internal/scenario"
)

// Engine plans emergency responses over a world-state snapshot.
type Engine struct {
	snapshot *scenario.Snapshot
}

// New creates an Engine over the given snapshot.
func New(snapshot *scenario.Snapshot) *Engine {
	return &Engine{snapshot: snapshot}
}

// LinearPlan builds the domain, expands the planning graph, and
// extracts a committed linear plan.
func (e *Engine) LinearPlan(req *LinearPlanRequest) (*LinearPlanResult, error) {
	d, err := domain.Build(e.snapshot, domainRequest(req.AccidentID, req.AmbulanceID, req.PrimaryHospitalID, req.SecondaryHospitalID))
	if err != nil {
		return nil, err
	}

	graph, goalLayer, err := graphplan.Build(d.Initial, d.Actions, d.Goals, req.MaxLevels)
	if err != nil {
		return nil, err
	}

	steps, err := graphplan.ExtractLinearPlan(graph, goalLayer, d.Goals)
	if err != nil {
		return nil, err
	}

	return &LinearPlanResult{
		Domain:    d,
		Graph:     graph,
		GoalLayer: goalLayer,
		Steps:     steps,
	}, nil
}

// PartialOrderPlan builds the domain and derives a validated
// partial-order plan with contingent branches.
func (e *Engine) PartialOrderPlan(req *PartialOrderRequest) (*PartialOrderResult, error) {
	d, err := domain.Build(e.snapshot, domainRequest(req.AccidentID, req.AmbulanceID, req.PrimaryHospitalID, req.SecondaryHospitalID))
	if err != nil {
		return nil, err
	}

	plan, err := pop.BuildPlan(d)
	if err != nil {
		return nil, err
	}

	return &PartialOrderResult{Domain: d, Plan: plan}, nil
}

// Domain builds and returns the ground planning domain.
func (e *Engine) Domain(req *DomainRequest) (*domain.Domain, error) {
	return domain.Build(e.snapshot, domainRequest(req.AccidentID, req.AmbulanceID, req.PrimaryHospitalID, req.SecondaryHospitalID))
}

// domainRequest fills unset ids with the canonical defaults.
func domainRequest(accident, ambulance, primary, secondary string) domain.Request {
	if accident == "" {
		accident = scenario.DefaultAccidentID
	}
	if ambulance == "" {
		ambulance = scenario.DefaultAmbulanceID
	}
	if primary == "" {
		primary = scenario.DefaultPrimaryHospitalID
	}
	if secondary == "" {
		secondary = scenario.DefaultSecondaryHospitalID
	}
	return domain.Request{
		AccidentID:          accident,
		AmbulanceID:         ambulance,
		PrimaryHospitalID:   primary,
		SecondaryHospitalID: secondary,
	}
}
