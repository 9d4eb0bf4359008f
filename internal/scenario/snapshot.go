package scenario

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Snapshot is an id-indexed, read-only view of the world state at
// planning time.
type Snapshot struct {
	// Weather is the ambient weather condition
	Weather Weather

	// TrafficCorridor is the congested corridor id, empty if none
	TrafficCorridor string

	// StagingNode is the pre-deployment staging node near the hotspot
	StagingNode string

	// ControlRoomOperational indicates the control room is online
	ControlRoomOperational bool

	hospitals  map[string]Hospital
	ambulances map[string]Ambulance
	accidents  map[string]Accident
}

// Index builds an id-indexed snapshot from the file representation.
func (f *File) Index() *Snapshot {
	snap := &Snapshot{
		Weather:                f.Weather,
		TrafficCorridor:        f.TrafficCorridor,
		StagingNode:            f.StagingNode,
		ControlRoomOperational: f.ControlRoomOperational,
		hospitals:              make(map[string]Hospital, len(f.Hospitals)),
		ambulances:             make(map[string]Ambulance, len(f.Ambulances)),
		accidents:              make(map[string]Accident, len(f.Accidents)),
	}
	for _, h := range f.Hospitals {
		snap.hospitals[h.ID] = h
	}
	for _, a := range f.Ambulances {
		snap.ambulances[a.ID] = a
	}
	for _, acc := range f.Accidents {
		snap.accidents[acc.ID] = acc
	}
	return snap
}

// Load reads and indexes a YAML scenario file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	return file.Index(), nil
}

// Hospital returns the hospital with the given id.
func (s *Snapshot) Hospital(id string) (Hospital, error) {
	h, ok := s.hospitals[id]
	if !ok {
		return Hospital{}, fmt.Errorf("hospital %s: %w", id, ErrNotFound)
	}
	return h, nil
}

// Ambulance returns the ambulance with the given id.
func (s *Snapshot) Ambulance(id string) (Ambulance, error) {
	a, ok := s.ambulances[id]
	if !ok {
		return Ambulance{}, fmt.Errorf("ambulance %s: %w", id, ErrNotFound)
	}
	return a, nil
}

// Accident returns the accident with the given id.
func (s *Snapshot) Accident(id string) (Accident, error) {
	acc, ok := s.accidents[id]
	if !ok {
		return Accident{}, fmt.Errorf("accident %s: %w", id, ErrNotFound)
	}
	return acc, nil
}

// Hospitals returns all hospital records sorted by id.
func (s *Snapshot) Hospitals() []Hospital {
	out := make([]Hospital, 0, len(s.hospitals))
	for _, h := range s.hospitals {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Ambulances returns all ambulance records sorted by id.
func (s *Snapshot) Ambulances() []Ambulance {
	out := make([]Ambulance, 0, len(s.ambulances))
	for _, a := range s.ambulances {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Accidents returns all accident records sorted by id.
func (s *Snapshot) Accidents() []Accident {
	out := make([]Accident, 0, len(s.accidents))
	for _, acc := range s.accidents {
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
