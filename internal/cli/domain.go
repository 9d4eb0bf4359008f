package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cityops/dispatchplan/internal/engine"
	"github.com/cityops/dispatchplan/internal/strips"
)

var (
	domainAccident  string
	domainAmbulance string
	domainPrimary   string
	domainSecondary string
)

var domainCmd = &cobra.Command{
	Use:   "domain",
	Short: "Show the ground planning domain for an accident",
	Long: `Print the initial-state propositions, the ground action catalog with
preconditions and effects, and the goal set the planners work from.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		eng := engine.New(snap)
		d, err := eng.Domain(&engine.DomainRequest{
			AccidentID:          domainAccident,
			AmbulanceID:         domainAmbulance,
			PrimaryHospitalID:   domainPrimary,
			SecondaryHospitalID: domainSecondary,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printDomainJSON(d.Initial, d.Actions, d.Goals)
		}

		PrintSection(fmt.Sprintf("Planning domain for %s", d.Request.AccidentID))

		PrintSubsection("Initial state:")
		PrintList(d.Initial.Keys(), 2)

		PrintSubsection("Actions:")
		for _, action := range d.Actions {
			PrintLabelValue("action", action.Name)
			PrintInfo(fmt.Sprintf("      pre: %v", action.Preconditions.Keys()))
			PrintInfo(fmt.Sprintf("      add: %v", action.AddEffects.Keys()))
			if len(action.DelEffects) > 0 {
				PrintInfo(fmt.Sprintf("      del: %v", action.DelEffects.Keys()))
			}
		}

		PrintSubsection("Goals:")
		PrintList(d.Goals.Keys(), 2)
		return nil
	},
}

// domainOutput is the JSON shape of a ground domain.
type domainOutput struct {
	Initial []string           `json:"initial"`
	Actions []domainActionView `json:"actions"`
	Goals   []string           `json:"goals"`
}

type domainActionView struct {
	Name          string   `json:"name"`
	Preconditions []string `json:"preconditions"`
	AddEffects    []string `json:"add_effects"`
	DelEffects    []string `json:"del_effects,omitempty"`
}

func printDomainJSON(initial strips.State, actions []strips.Action, goals strips.State) error {
	out := domainOutput{
		Initial: initial.Keys(),
		Goals:   goals.Keys(),
		Actions: make([]domainActionView, 0, len(actions)),
	}
	for _, action := range actions {
		out.Actions = append(out.Actions, domainActionView{
			Name:          action.Name,
			Preconditions: action.Preconditions.Keys(),
			AddEffects:    action.AddEffects.Keys(),
			DelEffects:    action.DelEffects.Keys(),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	domainCmd.Flags().StringVarP(&domainAccident, "accident", "a", "", "Accident id (default ACC3)")
	domainCmd.Flags().StringVar(&domainAmbulance, "ambulance", "", "Ambulance id (default A1)")
	domainCmd.Flags().StringVar(&domainPrimary, "primary", "", "Primary hospital id (default H1)")
	domainCmd.Flags().StringVar(&domainSecondary, "secondary", "", "Secondary hospital id (default H2)")
}
