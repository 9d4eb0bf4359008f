package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cityops/dispatchplan/internal/engine"
)

var (
	popAccident  string
	popAmbulance string
	popPrimary   string
	popSecondary string
)

var popCmd = &cobra.Command{
	Use:   "pop",
	Short: "Compute a partial-order plan with contingent branches",
	Long: `Build a partially ordered plan for the designated accident: actions
with no ordering constraint between them may run concurrently, causal
links justify every ordering, and branch points defer the delivery
decision to the executor at runtime.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		eng := engine.New(snap)
		result, err := eng.PartialOrderPlan(&engine.PartialOrderRequest{
			AccidentID:          popAccident,
			AmbulanceID:         popAmbulance,
			PrimaryHospitalID:   popPrimary,
			SecondaryHospitalID: popSecondary,
		})
		if err != nil {
			return err
		}

		plan := result.Plan

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(plan)
		}

		PrintSection(fmt.Sprintf("Partial-order plan for %s", result.Domain.Request.AccidentID))

		PrintSubsection("Actions:")
		for _, id := range plan.ActionIDs() {
			action := plan.Actions[id]
			PrintLabelValue(id, action.Name)
			if len(action.Preconditions) > 0 {
				PrintInfo(fmt.Sprintf("      pre: %v", action.Preconditions.Keys()))
			}
			if len(action.Effects) > 0 {
				PrintInfo(fmt.Sprintf("      eff: %v", action.Effects.Keys()))
			}
		}

		PrintSubsection("Ordering constraints (before -> after):")
		orderings := make([]string, 0, len(plan.Orderings))
		for _, o := range plan.Orderings {
			orderings = append(orderings, fmt.Sprintf("%s -> %s", o.Before, o.After))
		}
		PrintList(orderings, 2)

		PrintSubsection("Causal links (producer --[proposition]--> consumer):")
		links := make([]string, 0, len(plan.CausalLinks))
		for _, link := range plan.CausalLinks {
			links = append(links, fmt.Sprintf("%s --[%s]--> %s", link.Producer, link.Prop, link.Consumer))
		}
		PrintList(links, 2)

		PrintSubsection("Contingency branches:")
		for _, branch := range plan.Branches {
			PrintInfo(fmt.Sprintf("    IF %s:", branch.Condition))
			PrintInfo(fmt.Sprintf("      THEN execute: %v", branch.Actions))
			if branch.Rationale != "" {
				PrintInfo(fmt.Sprintf("      (%s)", branch.Rationale))
			}
		}
		return nil
	},
}

func init() {
	popCmd.Flags().StringVarP(&popAccident, "accident", "a", "", "Accident id (default ACC3)")
	popCmd.Flags().StringVar(&popAmbulance, "ambulance", "", "Ambulance id (default A1)")
	popCmd.Flags().StringVar(&popPrimary, "primary", "", "Primary hospital id (default H1)")
	popCmd.Flags().StringVar(&popSecondary, "secondary", "", "Secondary hospital id (default H2)")
}
