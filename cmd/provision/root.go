package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"realeagent/internal/platform/logger"
	"realeagent/internal/provisioning"
)

// clientFactory builds the processor admin client for a location.
type clientFactory func(ctx context.Context, location string) (provisioning.Client, error)

type options struct {
	project  string
	location string
	out      string
	logLevel string
}

func newRootCmd(newClient clientFactory) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create the document processors used by the extractor",
		Long: `Ensures the Lead Paint, CA RPA and BIA custom extraction processors and the
generic Form Parser exist, then writes their ids to a YAML file the
document-extractor reads through PROCESSOR_CONFIG.

Existing processors are matched by display name and never recreated.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProvision(cmd, opts, newClient)
		},
	}

	cmd.Flags().StringVar(&opts.project, "project", os.Getenv("PROJECT_ID"), "cloud project id (default $PROJECT_ID)")
	cmd.Flags().StringVar(&opts.location, "location", "us", "processor location")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "processors.yaml", "processor file to write")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level")
	return cmd
}

func runProvision(cmd *cobra.Command, opts *options, newClient clientFactory) error {
	if opts.project == "" {
		return errors.New("--project or PROJECT_ID is required")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewWithWriter(cmd.ErrOrStderr(), "provision", opts.logLevel)
	client, err := newClient(ctx, opts.location)
	if err != nil {
		return fmt.Errorf("create processor client: %w", err)
	}

	manager := provisioning.NewManager(client, opts.project, opts.location, provisioning.WithLogger(log))
	results, ensureErr := manager.EnsureAll(ctx, provisioning.StandardProcessors)

	for _, r := range results {
		cmd.Printf("%-12s %-8s %s\n", r.Key, r.Status, r.ID)
	}
	if len(results) > 0 {
		if err := provisioning.WriteProcessorFile(opts.out, results); err != nil {
			return err
		}
		cmd.Printf("wrote %s\n", opts.out)
	}
	if ensureErr != nil {
		return fmt.Errorf("some processors were not provisioned: %w", ensureErr)
	}
	return nil
}
