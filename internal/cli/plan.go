package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cityops/dispatchplan/internal/engine"
)

var (
	planAccident  string
	planAmbulance string
	planPrimary   string
	planSecondary string
	planMaxLevels int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a committed linear action sequence for an accident",
	Long: `Build the ground planning domain for the designated accident, expand
a planning graph until the goals are reachable, and extract a single
linear plan in execution order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		eng := engine.New(snap)
		result, err := eng.LinearPlan(&engine.LinearPlanRequest{
			AccidentID:          planAccident,
			AmbulanceID:         planAmbulance,
			PrimaryHospitalID:   planPrimary,
			SecondaryHospitalID: planSecondary,
			MaxLevels:           planMaxLevels,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printLinearPlanJSON(result)
		}

		PrintSection(fmt.Sprintf("Linear plan for %s", result.Domain.Request.AccidentID))
		PrintLabelValue("Goal layer", fmt.Sprintf("%d", result.GoalLayer))
		PrintSubsection("Steps:")
		steps := make([]string, 0, len(result.Steps))
		for _, step := range result.Steps {
			steps = append(steps, step.Name)
		}
		PrintNumberedList(steps, 1)
		return nil
	},
}

// linearPlanOutput is the JSON shape of a linear plan.
type linearPlanOutput struct {
	Accident  string           `json:"accident"`
	GoalLayer int              `json:"goal_layer"`
	Steps     []linearStepView `json:"steps"`
}

type linearStepView struct {
	Name string `json:"name"`
}

func printLinearPlanJSON(result *engine.LinearPlanResult) error {
	out := linearPlanOutput{
		Accident:  result.Domain.Request.AccidentID,
		GoalLayer: result.GoalLayer,
		Steps:     make([]linearStepView, 0, len(result.Steps)),
	}
	for _, step := range result.Steps {
		out.Steps = append(out.Steps, linearStepView{Name: step.Name})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	planCmd.Flags().StringVarP(&planAccident, "accident", "a", "", "Accident id (default ACC3)")
	planCmd.Flags().StringVar(&planAmbulance, "ambulance", "", "Ambulance id (default A1)")
	planCmd.Flags().StringVar(&planPrimary, "primary", "", "Primary hospital id (default H1)")
	planCmd.Flags().StringVar(&planSecondary, "secondary", "", "Secondary hospital id (default H2)")
	planCmd.Flags().IntVar(&planMaxLevels, "max-levels", 0, "Planning-graph level budget (default 8)")
}
