package domain

import (
	"github.com/cityops/dispatchplan/internal/scenario"
	"github.com/cityops/dispatchplan/internal/strips"
)

// Build constructs the ground planning domain for the requested
// accident. All referenced ids are resolved against the snapshot up
// front: if any is absent, Build returns the lookup error and no
// partial domain.
//
// The mapping from world facts to propositions is deterministic and
// total. Every hospital, ambulance, and accident in the snapshot
// contributes its facts to the initial state; the action catalog is
// grounded on the requested objects only.
func Build(snap *scenario.Snapshot, req Request) (*Domain, error) {
	accident, err := snap.Accident(req.AccidentID)
	if err != nil {
		return nil, err
	}
	ambulance, err := snap.Ambulance(req.AmbulanceID)
	if err != nil {
		return nil, err
	}
	primary, err := snap.Hospital(req.PrimaryHospitalID)
	if err != nil {
		return nil, err
	}
	secondary, err := snap.Hospital(req.SecondaryHospitalID)
	if err != nil {
		return nil, err
	}

	d := &Domain{
		Initial: buildInitialState(snap),
		Goals: strips.NewState(
			strips.Prop("AccidentServed", accident.ID),
			strips.Prop("PatientAt", accident.ID, primary.ID),
		),
		Request: req,
		roles:   make(map[Role]int),
	}

	add := func(role Role, a strips.Action) {
		d.roles[role] = len(d.Actions)
		d.Actions = append(d.Actions, a)
	}

	add(RoleRecon, strips.Action{
		Name: "TriggerDroneRecon(" + accident.ID + ")",
		Preconditions: strips.NewState(
			strips.Prop("ControlRoomOperational"),
			strips.Prop("AccidentReported", accident.ID),
		),
		AddEffects: strips.NewState(
			strips.Prop("DroneReconDone", accident.ID),
			strips.Prop("AccidentLocationConfirmed", accident.ID),
		),
		DelEffects: strips.NewState(),
	})

	transportPre := strips.NewState(
		strips.Prop("AmbulanceFree", ambulance.ID),
		strips.Prop("AmbulanceAt", ambulance.ID, snap.StagingNode),
		strips.Prop("AccidentLocationConfirmed", accident.ID),
	)

	// The diversion action and its effect on the transport
	// preconditions exist only when the snapshot names a congested
	// corridor.
	if snap.TrafficCorridor != "" {
		add(RoleDiversion, strips.Action{
			Name: "RequestTrafficDiversion(" + snap.TrafficCorridor + ")",
			Preconditions: strips.NewState(
				strips.Prop("ControlRoomOperational"),
				strips.Prop("StadiumTrafficLikely"),
			),
			AddEffects: strips.NewState(
				strips.Prop("TrafficDiverted", snap.TrafficCorridor),
			),
			DelEffects: strips.NewState(),
		})
		transportPre.Add(strips.Prop("TrafficDiverted", snap.TrafficCorridor))
	}

	add(RolePredeploy, strips.Action{
		Name: "PreDeployAmbulanceNearHotspot(" + ambulance.ID + ", " + snap.StagingNode + ")",
		Preconditions: strips.NewState(
			strips.Prop("AmbulanceFree", ambulance.ID),
			strips.Prop("AmbulanceAt", ambulance.ID, ambulance.Node),
		),
		AddEffects: strips.NewState(
			strips.Prop("AmbulanceAt", ambulance.ID, snap.StagingNode),
			strips.Prop("AmbulancePredeployed", ambulance.ID),
		),
		DelEffects: strips.NewState(
			strips.Prop("AmbulanceAt", ambulance.ID, ambulance.Node),
		),
	})

	add(RoleNotify, strips.Action{
		Name: "NotifyHospital(" + primary.ID + ")",
		Preconditions: strips.NewState(
			strips.Prop("ControlRoomOperational"),
			strips.Prop("AccidentHighRisk", accident.ID),
			strips.Prop("Hospital", primary.ID),
		),
		AddEffects: strips.NewState(
			strips.Prop("HospitalNotified", primary.ID),
		),
		DelEffects: strips.NewState(),
	})

	add(RoleTransport, strips.Action{
		Name:          "StartTransportToAccident(" + ambulance.ID + ", " + accident.ID + ")",
		Preconditions: transportPre,
		AddEffects: strips.NewState(
			strips.Prop("AmbulanceEnRoute", ambulance.ID, accident.ID),
			strips.Prop("AmbulanceBusy", ambulance.ID),
		),
		DelEffects: strips.NewState(
			strips.Prop("AmbulanceFree", ambulance.ID),
		),
	})

	add(RoleDeliverPrimary, strips.Action{
		Name: "DeliverPatient(" + ambulance.ID + ", " + accident.ID + ", " + primary.ID + ")",
		Preconditions: strips.NewState(
			strips.Prop("AmbulanceEnRoute", ambulance.ID, accident.ID),
			strips.Prop("HospitalNotified", primary.ID),
		),
		AddEffects: strips.NewState(
			strips.Prop("PatientAt", accident.ID, primary.ID),
			strips.Prop("AccidentServed", accident.ID),
			strips.Prop("AmbulanceFree", ambulance.ID),
			strips.Prop("AmbulanceAt", ambulance.ID, primary.Node),
		),
		DelEffects: strips.NewState(
			strips.Prop("AccidentNotServed", accident.ID),
			strips.Prop("AmbulanceEnRoute", ambulance.ID, accident.ID),
			strips.Prop("AmbulanceBusy", ambulance.ID),
		),
	})

	add(RoleRerouteSecondary, strips.Action{
		Name: "RerouteMidJourney(" + ambulance.ID + ", " + accident.ID + ", " + secondary.ID + ")",
		Preconditions: strips.NewState(
			strips.Prop("AmbulanceEnRoute", ambulance.ID, accident.ID),
			strips.Prop("CTAvailable", secondary.ID),
		),
		AddEffects: strips.NewState(
			strips.Prop("PatientAt", accident.ID, secondary.ID),
			strips.Prop("AccidentServed", accident.ID),
			strips.Prop("AmbulanceFree", ambulance.ID),
		),
		DelEffects: strips.NewState(
			strips.Prop("AccidentNotServed", accident.ID),
			strips.Prop("AmbulanceEnRoute", ambulance.ID, accident.ID),
			strips.Prop("AmbulanceBusy", ambulance.ID),
		),
	})

	return d, nil
}

// buildInitialState maps every snapshot record to its propositions.
func buildInitialState(snap *scenario.Snapshot) strips.State {
	initial := strips.NewState()

	for _, h := range snap.Hospitals() {
		initial.Add(strips.Prop("Hospital", h.ID))
		if h.TraumaCenter {
			initial.Add(strips.Prop("TraumaCenter", h.ID))
		}
		switch h.CTStatus {
		case scenario.CTOffline:
			initial.Add(strips.Prop("CTOffline", h.ID))
		default:
			initial.Add(strips.Prop("CTAvailable", h.ID))
		}
	}

	for _, a := range snap.Ambulances() {
		if a.Available {
			initial.Add(strips.Prop("AmbulanceFree", a.ID))
		} else {
			initial.Add(strips.Prop("AmbulanceBusy", a.ID))
		}
		initial.Add(strips.Prop("AmbulanceAt", a.ID, a.Node))
	}

	for _, acc := range snap.Accidents() {
		initial.Add(strips.Prop("AccidentReported", acc.ID))
		initial.Add(strips.Prop("AccidentNotServed", acc.ID))
		if acc.Risk == scenario.RiskHigh {
			initial.Add(strips.Prop("AccidentHighRisk", acc.ID))
		}
	}

	if snap.Weather == scenario.WeatherRain {
		initial.Add(strips.Prop("RainyConditions"))
	}
	if snap.TrafficCorridor != "" {
		initial.Add(strips.Prop("StadiumTrafficLikely"))
	}
	if snap.ControlRoomOperational {
		initial.Add(strips.Prop("ControlRoomOperational"))
	}

	return initial
}
