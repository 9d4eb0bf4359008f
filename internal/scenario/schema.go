// Package scenario defines the world-state snapshot the planner
// consumes: hospitals, ambulances, accidents, and ambient conditions.
//
// Snapshots are built either from the canonical built-in scenario or
// from a YAML scenario file, and expose O(1) id-indexed lookup with a
// single centralized not-found error path.
package scenario

import "errors"

// ErrNotFound indicates a referenced object id is absent from the snapshot.
var ErrNotFound = errors.New("not found")

// CTStatus is the operational status of a hospital's CT scanner.
type CTStatus string

const (
	CTAvailable CTStatus = "available"
	CTOffline   CTStatus = "offline"
)

// RiskLevel is the assessed deterioration risk of an accident.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Weather is the ambient weather condition for the snapshot.
type Weather string

const (
	WeatherClear Weather = "clear"
	WeatherRain  Weather = "rain"
)

// Hospital is a hospital record in the snapshot.
type Hospital struct {
	// ID is the hospital identifier, e.g. "H1"
	ID string `yaml:"id" json:"id"`

	// Name is the human-readable hospital name
	Name string `yaml:"name" json:"name"`

	// Node is the hospital's node id in the road network
	Node string `yaml:"node" json:"node"`

	// TraumaCenter indicates the hospital is a trauma center
	TraumaCenter bool `yaml:"traumaCenter" json:"traumaCenter"`

	// CTStatus is the current availability of the CT scanner
	CTStatus CTStatus `yaml:"ctStatus" json:"ctStatus"`
}

// Ambulance is an ambulance record in the snapshot.
type Ambulance struct {
	// ID is the ambulance identifier, e.g. "A1"
	ID string `yaml:"id" json:"id"`

	// Node is the ambulance's current node in the road network
	Node string `yaml:"node" json:"node"`

	// Available indicates the ambulance is free for dispatch
	Available bool `yaml:"available" json:"available"`
}

// Accident is an accident record in the snapshot.
type Accident struct {
	// ID is the accident identifier, e.g. "ACC3"
	ID string `yaml:"id" json:"id"`

	// Node is the accident's location node in the road network
	Node string `yaml:"node" json:"node"`

	// Description is a short human-readable summary
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Risk is the assessed deterioration risk
	Risk RiskLevel `yaml:"risk" json:"risk"`
}

// File is the on-disk YAML representation of a scenario.
type File struct {
	// Weather is the ambient weather condition
	Weather Weather `yaml:"weather"`

	// TrafficCorridor is the congested corridor id, empty if none
	TrafficCorridor string `yaml:"trafficCorridor,omitempty"`

	// StagingNode is the pre-deployment staging node near the hotspot
	StagingNode string `yaml:"stagingNode"`

	// ControlRoomOperational indicates the control room is online
	ControlRoomOperational bool `yaml:"controlRoomOperational"`

	// Hospitals is the list of hospital records
	Hospitals []Hospital `yaml:"hospitals"`

	// Ambulances is the list of ambulance records
	Ambulances []Ambulance `yaml:"ambulances"`

	// Accidents is the list of accident records
	Accidents []Accident `yaml:"accidents"`
}
