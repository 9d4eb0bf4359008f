package engine

import (
	"errors"
	"testing"

	"github.com/cityops/dispatchplan/internal/scenario"
)

func TestEngine_LinearPlan(t *testing.T) {
	eng := New(scenario.Default())

	result, err := eng.LinearPlan(&LinearPlanRequest{})
	if err != nil {
		t.Fatalf("LinearPlan failed: %v", err)
	}

	if result.GoalLayer < 1 {
		t.Errorf("goal layer = %d, want >= 1", result.GoalLayer)
	}
	if len(result.Steps) == 0 {
		t.Fatal("expected a non-empty plan")
	}
	if result.Domain.Request.AccidentID != scenario.DefaultAccidentID {
		t.Errorf("default accident = %q, want %q", result.Domain.Request.AccidentID, scenario.DefaultAccidentID)
	}

	// The committed plan executes forward from the initial state.
	state := result.Domain.Initial.Clone()
	for i, step := range result.Steps {
		if !step.ApplicableIn(state) {
			t.Fatalf("step %d (%s) has unmet preconditions", i+1, step.Name)
		}
		state = state.Union(step.AddEffects)
	}
	if !state.ContainsAll(result.Domain.Goals) {
		t.Error("plan does not achieve the goals")
	}
}

func TestEngine_LinearPlan_NotFound(t *testing.T) {
	eng := New(scenario.Default())

	result, err := eng.LinearPlan(&LinearPlanRequest{AccidentID: "ACC9"})
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if !errors.Is(err, scenario.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if result != nil {
		t.Error("no result may be returned on lookup failure")
	}
}

func TestEngine_PartialOrderPlan(t *testing.T) {
	eng := New(scenario.Default())

	result, err := eng.PartialOrderPlan(&PartialOrderRequest{})
	if err != nil {
		t.Fatalf("PartialOrderPlan failed: %v", err)
	}

	if err := result.Plan.Validate(); err != nil {
		t.Errorf("plan failed validation: %v", err)
	}
	if len(result.Plan.Branches) != 2 {
		t.Errorf("expected 2 branches, got %d", len(result.Plan.Branches))
	}
}

func TestEngine_Domain(t *testing.T) {
	eng := New(scenario.Default())

	d, err := eng.Domain(&DomainRequest{})
	if err != nil {
		t.Fatalf("Domain failed: %v", err)
	}
	if len(d.Actions) != 7 {
		t.Errorf("expected 7 ground actions, got %d", len(d.Actions))
	}
	if len(d.Goals) != 2 {
		t.Errorf("expected 2 goals, got %d", len(d.Goals))
	}
}
