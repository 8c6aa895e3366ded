package main

import (
	"context"
	"fmt"

	"ifcfg-agent/internal/infrastructure/config"
	"ifcfg-agent/internal/infrastructure/container"

	"github.com/spf13/cobra"
)

// newApplyCommand builds the one-shot apply command: read a YAML
// declarations file, build and write every record, restart the network
// service if anything changed.
func newApplyCommand() *cobra.Command {
	var declarationsPath string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply interface declarations from a YAML file once",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := config.NewEnvironmentConfigLoader().Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			appContainer, err := container.NewContainer(cfg, logger)
			if err != nil {
				return err
			}
			defer appContainer.Close()

			declarations, err := appContainer.GetDeclarationsLoader().Load(declarationsPath)
			if err != nil {
				return err
			}

			output, err := appContainer.GetApplyUseCase().Execute(context.Background(), declarations)
			if err != nil {
				return err
			}

			logger.WithFields(map[string]interface{}{
				"processed": output.Processed,
				"failed":    output.Failed,
				"changed":   output.Changed,
			}).Info("apply finished")

			if output.Failed > 0 {
				return fmt.Errorf("%d of %d declarations failed", output.Failed, len(declarations))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&declarationsPath, "file", "f", "/etc/ifcfg-agent/interfaces.yaml",
		"path to the interface declarations file")

	return cmd
}
