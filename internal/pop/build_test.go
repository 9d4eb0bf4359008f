package pop

import (
	"testing"

	"github.com/cityops/dispatchplan/internal/domain"
	"github.com/cityops/dispatchplan/internal/scenario"
	"github.com/cityops/dispatchplan/internal/strips"
)

func canonicalPlan(t *testing.T) *Plan {
	t.Helper()
	d, err := domain.Build(scenario.Default(), domain.Request{
		AccidentID:          "ACC3",
		AmbulanceID:         "A1",
		PrimaryHospitalID:   "H1",
		SecondaryHospitalID: "H2",
	})
	if err != nil {
		t.Fatalf("failed to build canonical domain: %v", err)
	}
	plan, err := BuildPlan(d)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	return plan
}

func TestBuildPlan_Nodes(t *testing.T) {
	plan := canonicalPlan(t)

	wantIDs := []string{
		StartID, FinishID, ReconID, DiversionID, PredeployID,
		NotifyID, TransportID, DeliverID, RerouteID,
	}
	for _, id := range wantIDs {
		if _, ok := plan.Actions[id]; !ok {
			t.Errorf("plan missing node %q", id)
		}
	}
	if len(plan.Actions) != len(wantIDs) {
		t.Errorf("expected %d nodes, got %d", len(wantIDs), len(plan.Actions))
	}

	start := plan.Actions[StartID]
	if len(start.Preconditions) != 0 {
		t.Error("Start must have no preconditions")
	}
	if !start.Effects.Contains(strips.Prop("AmbulanceFree", "A1")) {
		t.Error("Start effects must carry the initial state")
	}

	finish := plan.Actions[FinishID]
	if len(finish.Effects) != 0 {
		t.Error("Finish must have no effects")
	}
	if !finish.Preconditions.Contains(strips.Prop("AccidentServed", "ACC3")) {
		t.Error("Finish preconditions must equal the goal set")
	}
}

func TestBuildPlan_Acyclic(t *testing.T) {
	plan := canonicalPlan(t)

	if cycle := plan.findCycle(); cycle != "" {
		t.Errorf("ordering graph has a cycle through %q", cycle)
	}
}

func TestBuildPlan_OrderingStructure(t *testing.T) {
	plan := canonicalPlan(t)

	mustPrecede := []struct{ before, after string }{
		{StartID, ReconID},
		{StartID, FinishID},
		{ReconID, TransportID},
		{PredeployID, TransportID},
		{DiversionID, TransportID},
		{NotifyID, DeliverID},
		{TransportID, DeliverID},
		{TransportID, RerouteID},
		{DeliverID, FinishID},
		{RerouteID, FinishID},
	}
	for _, tt := range mustPrecede {
		if !plan.OrderedBefore(tt.before, tt.after) {
			t.Errorf("expected %s to be ordered before %s", tt.before, tt.after)
		}
	}

	// Preparatory actions are concurrent with each other, and so are
	// the two delivery alternatives.
	unordered := []struct{ a, b string }{
		{ReconID, PredeployID},
		{ReconID, DiversionID},
		{ReconID, NotifyID},
		{PredeployID, NotifyID},
		{DeliverID, RerouteID},
	}
	for _, tt := range unordered {
		if plan.OrderedBefore(tt.a, tt.b) || plan.OrderedBefore(tt.b, tt.a) {
			t.Errorf("expected %s and %s to be unordered", tt.a, tt.b)
		}
	}
}

func TestBuildPlan_CausalLinkValidity(t *testing.T) {
	plan := canonicalPlan(t)

	if len(plan.CausalLinks) == 0 {
		t.Fatal("expected causal links")
	}

	for _, link := range plan.CausalLinks {
		producer, ok := plan.Actions[link.Producer]
		if !ok {
			t.Fatalf("unknown producer %q", link.Producer)
		}
		consumer, ok := plan.Actions[link.Consumer]
		if !ok {
			t.Fatalf("unknown consumer %q", link.Consumer)
		}
		if !producer.Effects.Contains(link.Prop) {
			t.Errorf("%s does not produce %s", link.Producer, link.Prop)
		}
		if !consumer.Preconditions.Contains(link.Prop) {
			t.Errorf("%s does not require %s", link.Consumer, link.Prop)
		}
		if !plan.OrderedBefore(link.Producer, link.Consumer) {
			t.Errorf("%s not ordered before %s", link.Producer, link.Consumer)
		}
	}
}

func TestBuildPlan_ExpectedCausalLinks(t *testing.T) {
	plan := canonicalPlan(t)

	has := func(producer, key, consumer string) bool {
		for _, link := range plan.CausalLinks {
			if link.Producer == producer && link.Consumer == consumer && link.Prop.Key() == key {
				return true
			}
		}
		return false
	}

	want := []struct{ producer, prop, consumer string }{
		{ReconID, "AccidentLocationConfirmed(ACC3)", TransportID},
		{PredeployID, "AmbulanceAt(A1, nayapalli_chowk)", TransportID},
		{DiversionID, "TrafficDiverted(stadium_corridor)", TransportID},
		{NotifyID, "HospitalNotified(H1)", DeliverID},
		{TransportID, "AmbulanceEnRoute(A1, ACC3)", DeliverID},
		{TransportID, "AmbulanceEnRoute(A1, ACC3)", RerouteID},
		{StartID, "AccidentReported(ACC3)", ReconID},
	}
	for _, tt := range want {
		if !has(tt.producer, tt.prop, tt.consumer) {
			t.Errorf("missing causal link %s --[%s]--> %s", tt.producer, tt.prop, tt.consumer)
		}
	}

	// The reroute CT condition is a runtime contingency; nothing in
	// the plan produces it, so no link may claim to.
	for _, link := range plan.CausalLinks {
		if link.Prop.Key() == "CTAvailable(H2)" {
			t.Errorf("unexpected causal link for the contingent condition: %s --> %s", link.Producer, link.Consumer)
		}
	}
}

func TestBuildPlan_Branches(t *testing.T) {
	plan := canonicalPlan(t)

	if len(plan.Branches) != 2 {
		t.Fatalf("expected 2 branches, got %d", len(plan.Branches))
	}

	reroute := plan.Branches[0]
	if reroute.Condition.Key() != "CTAvailable(H2)" {
		t.Errorf("branch 0 condition = %s, want CTAvailable(H2)", reroute.Condition)
	}
	if len(reroute.Actions) != 1 || reroute.Actions[0] != RerouteID {
		t.Errorf("branch 0 actions = %v, want [%s]", reroute.Actions, RerouteID)
	}

	deliver := plan.Branches[1]
	if deliver.Condition.Key() != "CTOffline(H2)" {
		t.Errorf("branch 1 condition = %s, want CTOffline(H2)", deliver.Condition)
	}
	if len(deliver.Actions) != 1 || deliver.Actions[0] != DeliverID {
		t.Errorf("branch 1 actions = %v, want [%s]", deliver.Actions, DeliverID)
	}

	if reroute.Rationale == "" || deliver.Rationale == "" {
		t.Error("branches must carry a rationale")
	}
}

func TestBuildPlan_BranchExclusivity(t *testing.T) {
	plan := canonicalPlan(t)

	claimed := make(map[string]int)
	for i, branch := range plan.Branches {
		for _, id := range branch.Actions {
			if prev, ok := claimed[id]; ok {
				t.Errorf("node %q appears in branches %d and %d", id, prev, i)
			}
			claimed[id] = i
		}
	}
}

func TestBuildPlan_Validates(t *testing.T) {
	plan := canonicalPlan(t)
	if err := plan.Validate(); err != nil {
		t.Errorf("constructed plan failed validation: %v", err)
	}
}
