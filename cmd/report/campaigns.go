package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pacing-radar/internal/core/domain"
	"pacing-radar/internal/core/port"
)

var (
	flagRisk       string
	flagWithinDays int
)

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "Priority list ordered by risk score",
	Args:  cobra.NoArgs,
	RunE:  runCampaigns,
}

func init() {
	campaignsCmd.Flags().StringVarP(&flagRisk, "risk", "r", "", "Keep one tier: Red, Yellow or Green")
	campaignsCmd.Flags().IntVar(&flagWithinDays, "within-days", -1, "Keep campaigns ending within N days")
	rootCmd.AddCommand(campaignsCmd)
}

func runCampaigns(cmd *cobra.Command, _ []string) error {
	req := port.ListReq{}

	var err error
	if req.AsOf, err = asOf(); err != nil {
		return err
	}
	if flagRisk != "" {
		tier := domain.Tier(flagRisk)
		if !tier.Valid() {
			return fmt.Errorf("invalid --risk %q: want Red, Yellow or Green", flagRisk)
		}
		req.Tier = &tier
	}
	if flagWithinDays >= 0 {
		n := flagWithinDays
		req.WithinDays = &n
	}

	svc, err := newUseCase(cmd)
	if err != nil {
		return err
	}
	resp, err := svc.ListCampaigns(cmd.Context(), req)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), resp)
}
