package scenario

// Canonical object ids used as defaults by the planning driver.
const (
	DefaultAccidentID          = "ACC3"
	DefaultAmbulanceID         = "A1"
	DefaultPrimaryHospitalID   = "H1"
	DefaultSecondaryHospitalID = "H2"
)

// Default builds the canonical scenario: a rainy Saturday evening with
// stadium-corridor congestion, two hospitals (H1 trauma with CT
// available, H2 closer but CT offline), two free ambulances, and three
// reported accidents of which ACC3 is the high-risk SUV rollover the
// planner is asked to resolve.
func Default() *Snapshot {
	file := &File{
		Weather:                WeatherRain,
		TrafficCorridor:        "stadium_corridor",
		StagingNode:            "nayapalli_chowk",
		ControlRoomOperational: true,
		Hospitals: []Hospital{
			{
				ID:           "H1",
				Name:         "H1 Trauma Hospital",
				Node:         "hospital_h1",
				TraumaCenter: true,
				CTStatus:     CTAvailable,
			},
			{
				ID:           "H2",
				Name:         "H2 General Hospital",
				Node:         "hospital_h2",
				TraumaCenter: false,
				CTStatus:     CTOffline,
			},
		},
		Ambulances: []Ambulance{
			{ID: "A1", Node: "hospital_h1", Available: true},
			{ID: "A2", Node: "hospital_h2", Available: true},
		},
		Accidents: []Accident{
			{
				ID:          "ACC1",
				Node:        "jaydev_vihar_flyover",
				Description: "High-speed bike collision near Jaydev Vihar flyover",
				Risk:        RiskMedium,
			},
			{
				ID:          "ACC2",
				Node:        "rupali_square",
				Description: "Car-auto crash at Rupali Square",
				Risk:        RiskLow,
			},
			{
				ID:          "ACC3",
				Node:        "airport_approach",
				Description: "SUV rollover near Airport approach road with airbags deployed",
				Risk:        RiskHigh,
			},
		},
	}
	return file.Index()
}
