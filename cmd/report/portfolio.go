package main

import "github.com/spf13/cobra"

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio totals and cumulative opportunity curve",
	Args:  cobra.NoArgs,
	RunE:  runPortfolio,
}

func init() {
	rootCmd.AddCommand(portfolioCmd)
}

func runPortfolio(cmd *cobra.Command, _ []string) error {
	today, err := asOf()
	if err != nil {
		return err
	}
	svc, err := newUseCase(cmd)
	if err != nil {
		return err
	}
	portfolio, err := svc.GetPortfolio(cmd.Context(), today)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), portfolio)
}
