package main

import (
	"agencyhub/cmd"
	"agencyhub/internal/logger"
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agencyhub-script",
	Short: "Operational scripts for the agencyhub backend",
}

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Send the insight digest email to every organization",
	RunE: func(c *cobra.Command, args []string) error {
		deps, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps.ApiHandler)

		ctx := logger.AddToContext(context.Background(), logger.New())
		return deps.InsightDigestApp.SendInsightDigests(ctx)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [organization-id] [file]",
	Short: "Export an organization's opportunities to a CSV file",
	Args:  cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		organizationID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid organization id: %w", err)
		}

		deps, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps.ApiHandler)

		f, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		return deps.ExportService.ExportOpportunitiesCSV(organizationID, f)
	},
}

func main() {
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(exportCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
