package main

import "github.com/spf13/cobra"

var campaignCmd = &cobra.Command{
	Use:   "campaign <id>",
	Short: "Deep dive into one campaign",
	Args:  cobra.ExactArgs(1),
	RunE:  runCampaign,
}

var trajectoryCmd = &cobra.Command{
	Use:   "trajectory <id>",
	Short: "Actual, trend and required spend series of one campaign",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrajectory,
}

func init() {
	rootCmd.AddCommand(campaignCmd, trajectoryCmd)
}

func runCampaign(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	today, err := asOf()
	if err != nil {
		return err
	}
	svc, err := newUseCase(cmd)
	if err != nil {
		return err
	}
	report, err := svc.GetCampaign(cmd.Context(), id, today)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), report)
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	today, err := asOf()
	if err != nil {
		return err
	}
	svc, err := newUseCase(cmd)
	if err != nil {
		return err
	}
	traj, err := svc.GetTrajectory(cmd.Context(), id, today)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), traj)
}
