package engine

// LinearPlanRequest asks for a committed linear action sequence.
type LinearPlanRequest struct {
	// AccidentID is the accident to resolve (default ACC3)
	AccidentID string

	// AmbulanceID is the assigned ambulance (default A1)
	AmbulanceID string

	// PrimaryHospitalID is the planned destination (default H1)
	PrimaryHospitalID string

	// SecondaryHospitalID is the contingent destination (default H2)
	SecondaryHospitalID string

	// MaxLevels bounds the planning-graph expansion; non-positive
	// values use the graphplan default
	MaxLevels int
}

// PartialOrderRequest asks for a partial-order plan with branches.
type PartialOrderRequest struct {
	// AccidentID is the accident to resolve (default ACC3)
	AccidentID string

	// AmbulanceID is the assigned ambulance (default A1)
	AmbulanceID string

	// PrimaryHospitalID is the planned destination (default H1)
	PrimaryHospitalID string

	// SecondaryHospitalID is the contingent destination (default H2)
	SecondaryHospitalID string
}

// DomainRequest asks for the ground planning domain itself.
type DomainRequest struct {
	// AccidentID is the accident to resolve (default ACC3)
	AccidentID string

	// AmbulanceID is the assigned ambulance (default A1)
	AmbulanceID string

	// PrimaryHospitalID is the planned destination (default H1)
	PrimaryHospitalID string

	// SecondaryHospitalID is the contingent destination (default H2)
	SecondaryHospitalID string
}
