package pop

import (
	"fmt"
	"sort"

	"github.com/cityops/dispatchplan/internal/domain"
	"github.com/cityops/dispatchplan/internal/strips"
)

// Node ids for the ground response actions.
const (
	ReconID     = "DroneRecon"
	DiversionID = "RequestDiversion"
	PredeployID = "Predeploy"
	NotifyID    = "NotifyHospital"
	TransportID = "StartTransport"
	DeliverID   = "DeliverPrimary"
	RerouteID   = "RerouteSecondary"
)

// BuildPlan constructs a partial-order plan over the domain's ground
// actions.
//
// The preparatory actions (reconnaissance, diversion, pre-deployment,
// notification) are unordered with respect to each other and may run
// concurrently; the transport action waits for the preparatory phase;
// the two delivery alternatives are each ordered after transport but
// unordered with respect to each other, and the choice between them is
// deferred to the runtime executor through the plan's branches.
func BuildPlan(d *domain.Domain) (*Plan, error) {
	plan := NewPlan()

	plan.AddAction(Action{
		ID:            StartID,
		Name:          StartID,
		Preconditions: strips.NewState(),
		Effects:       d.Initial.Clone(),
	})
	plan.AddAction(Action{
		ID:            FinishID,
		Name:          FinishID,
		Preconditions: d.Goals.Clone(),
		Effects:       strips.NewState(),
	})

	wrap := func(role domain.Role, id string) error {
		ground, ok := d.ByRole(role)
		if !ok {
			return fmt.Errorf("domain has no action for role %q", role)
		}
		plan.AddAction(Action{
			ID:            id,
			Name:          ground.Name,
			Preconditions: ground.Preconditions.Clone(),
			Effects:       ground.AddEffects.Clone(),
		})
		return nil
	}

	required := []struct {
		role domain.Role
		id   string
	}{
		{domain.RoleRecon, ReconID},
		{domain.RolePredeploy, PredeployID},
		{domain.RoleNotify, NotifyID},
		{domain.RoleTransport, TransportID},
		{domain.RoleDeliverPrimary, DeliverID},
		{domain.RoleRerouteSecondary, RerouteID},
	}
	for _, r := range required {
		if err := wrap(r.role, r.id); err != nil {
			return nil, err
		}
	}

	// The diversion action exists only when the snapshot names a
	// congested corridor.
	_, hasDiversion := d.ByRole(domain.RoleDiversion)
	if hasDiversion {
		if err := wrap(domain.RoleDiversion, DiversionID); err != nil {
			return nil, err
		}
	}

	// Start precedes every other node.
	for _, id := range plan.ActionIDs() {
		if id != StartID {
			plan.AddOrdering(StartID, id)
		}
	}

	// Preparatory phase precedes transport.
	plan.AddOrdering(ReconID, TransportID)
	plan.AddOrdering(PredeployID, TransportID)
	if hasDiversion {
		plan.AddOrdering(DiversionID, TransportID)
	}

	// Notification precedes primary delivery.
	plan.AddOrdering(NotifyID, DeliverID)

	// Transport precedes both delivery alternatives.
	plan.AddOrdering(TransportID, DeliverID)
	plan.AddOrdering(TransportID, RerouteID)

	// Either alternative completes the plan.
	plan.AddOrdering(DeliverID, FinishID)
	plan.AddOrdering(RerouteID, FinishID)

	deriveCausalLinks(plan)

	secondary := d.Request.SecondaryHospitalID
	plan.AddBranch(Branch{
		Condition: strips.Prop("CTAvailable", secondary),
		Actions:   []string{RerouteID},
		Rationale: fmt.Sprintf("If the CT scanner at %s becomes available while the ambulance is en route, reroute mid-way to %s for faster imaging.", secondary, secondary),
	})
	plan.AddBranch(Branch{
		Condition: strips.Prop("CTOffline", secondary),
		Actions:   []string{DeliverID},
		Rationale: fmt.Sprintf("If the CT scanner at %s remains offline, continue with the baseline plan and deliver the patient to %s.", secondary, d.Request.PrimaryHospitalID),
	})

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// deriveCausalLinks records, for each node and each of its
// preconditions, the transitively-earlier node whose effects assert
// the proposition. When several producers qualify, a real action wins
// over Start, then the lexicographically smallest id; a precondition
// with no earlier producer is a runtime contingency and gets no link.
func deriveCausalLinks(plan *Plan) {
	for _, consumerID := range plan.ActionIDs() {
		if consumerID == StartID {
			continue
		}
		consumer := plan.Actions[consumerID]

		for _, prop := range consumer.Preconditions.Props() {
			producer := pickProducer(plan, consumerID, prop)
			if producer != "" {
				plan.AddCausalLink(producer, prop, consumerID)
			}
		}
	}
}

// pickProducer selects the producer for a consumer precondition.
func pickProducer(plan *Plan, consumerID string, prop strips.Proposition) string {
	var candidates []string
	for _, producerID := range plan.ActionIDs() {
		if producerID == consumerID || !plan.OrderedBefore(producerID, consumerID) {
			continue
		}
		if plan.Actions[producerID].Effects.Contains(prop) {
			candidates = append(candidates, producerID)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sort.Strings(candidates)
	for _, id := range candidates {
		if id != StartID {
			return id
		}
	}
	return StartID
}
