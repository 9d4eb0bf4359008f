// Package domain translates a scenario snapshot into a ground STRIPS
// planning domain: an initial proposition set, a catalog of ground
// actions for resolving one designated accident, and a goal set.
package domain

import (
	"github.com/cityops/dispatchplan/internal/strips"
)

// Role identifies the structural role a ground action plays in the
// response plan. Roles give the partial-order planner structural
// access to specific actions without matching on action names.
type Role string

const (
	// RoleRecon confirms the accident location via drone reconnaissance
	RoleRecon Role = "recon"

	// RoleDiversion requests a traffic diversion on the congested corridor
	RoleDiversion Role = "diversion"

	// RolePredeploy moves the ambulance to the staging node
	RolePredeploy Role = "predeploy"

	// RoleNotify alerts the primary hospital
	RoleNotify Role = "notify"

	// RoleTransport starts the ambulance run to the accident
	RoleTransport Role = "transport"

	// RoleDeliverPrimary delivers the patient to the primary hospital
	RoleDeliverPrimary Role = "deliver_primary"

	// RoleRerouteSecondary reroutes mid-journey to the secondary hospital
	RoleRerouteSecondary Role = "reroute_secondary"
)

// Request names the snapshot objects the domain is built around.
type Request struct {
	// AccidentID is the accident to resolve
	AccidentID string

	// AmbulanceID is the ambulance assigned to the accident
	AmbulanceID string

	// PrimaryHospitalID is the planned delivery destination
	PrimaryHospitalID string

	// SecondaryHospitalID is the contingent alternative destination
	SecondaryHospitalID string
}

// Domain is a ground STRIPS planning domain. It is constructed once
// per planning request and immutable afterward.
type Domain struct {
	// Initial is the initial-state proposition set
	Initial strips.State

	// Actions is the catalog of ground actions in a fixed order
	Actions []strips.Action

	// Goals is the goal proposition set
	Goals strips.State

	// Request records the object ids the domain was built around
	Request Request

	roles map[Role]int
}

// ByRole returns the ground action playing the given role.
func (d *Domain) ByRole(role Role) (strips.Action, bool) {
	idx, ok := d.roles[role]
	if !ok {
		return strips.Action{}, false
	}
	return d.Actions[idx], true
}
