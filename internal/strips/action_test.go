package strips

import "testing"

func TestAction_ApplicableIn(t *testing.T) {
	action := Action{
		Name: "StartTransportToAccident(A1, ACC3)",
		Preconditions: NewState(
			Prop("AmbulanceFree", "A1"),
			Prop("AccidentLocationConfirmed", "ACC3"),
		),
		AddEffects: NewState(Prop("AmbulanceEnRoute", "A1", "ACC3")),
		DelEffects: NewState(Prop("AmbulanceFree", "A1")),
	}

	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{
			name: "all preconditions hold",
			state: NewState(
				Prop("AmbulanceFree", "A1"),
				Prop("AccidentLocationConfirmed", "ACC3"),
				Prop("RainyConditions"),
			),
			want: true,
		},
		{
			name:  "missing precondition",
			state: NewState(Prop("AmbulanceFree", "A1")),
			want:  false,
		},
		{
			name:  "empty state",
			state: NewState(),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := action.ApplicableIn(tt.state)
			if got != tt.want {
				t.Errorf("ApplicableIn() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAction_Apply(t *testing.T) {
	action := Action{
		Name:          "DeliverPatient(A1, ACC3, H1)",
		Preconditions: NewState(Prop("AmbulanceEnRoute", "A1", "ACC3")),
		AddEffects: NewState(
			Prop("PatientAt", "ACC3", "H1"),
			Prop("AccidentServed", "ACC3"),
			Prop("AmbulanceFree", "A1"),
		),
		DelEffects: NewState(
			Prop("AccidentNotServed", "ACC3"),
			Prop("AmbulanceEnRoute", "A1", "ACC3"),
		),
	}

	before := NewState(
		Prop("AmbulanceEnRoute", "A1", "ACC3"),
		Prop("AccidentNotServed", "ACC3"),
		Prop("Hospital", "H1"),
	)

	after := action.Apply(before)

	for _, p := range action.AddEffects.Props() {
		if !after.Contains(p) {
			t.Errorf("expected add effect %s to hold after apply", p)
		}
	}
	for _, p := range action.DelEffects.Props() {
		if after.Contains(p) {
			t.Errorf("expected delete effect %s to be removed after apply", p)
		}
	}
	if !after.Contains(Prop("Hospital", "H1")) {
		t.Error("unrelated proposition must survive apply")
	}

	// The input state must be untouched
	if !before.Contains(Prop("AmbulanceEnRoute", "A1", "ACC3")) {
		t.Error("Apply must not mutate the input state")
	}
	if before.Contains(Prop("PatientAt", "ACC3", "H1")) {
		t.Error("Apply must not mutate the input state")
	}
}
