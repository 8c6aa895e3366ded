package usecases

import (
	"context"

	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"
	"ifcfg-agent/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// ApplyConfigurationUseCase builds, renders and writes a batch of
// interface declarations, restarting the network service once when any
// file content changed. Failures are isolated per interface.
type ApplyConfigurationUseCase struct {
	builder  *BuildConfigurationUseCase
	renderer interfaces.Renderer
	writer   interfaces.ConfigWriter
	service  interfaces.ServiceController
	logger   *logrus.Logger
}

// NewApplyConfigurationUseCase creates a new ApplyConfigurationUseCase.
func NewApplyConfigurationUseCase(
	builder *BuildConfigurationUseCase,
	renderer interfaces.Renderer,
	writer interfaces.ConfigWriter,
	service interfaces.ServiceController,
	logger *logrus.Logger,
) *ApplyConfigurationUseCase {
	return &ApplyConfigurationUseCase{
		builder:  builder,
		renderer: renderer,
		writer:   writer,
		service:  service,
		logger:   logger,
	}
}

// ApplyResult is the per-declaration outcome.
type ApplyResult struct {
	DeclarationID int
	Interface     string
	Changed       bool
	Err           error
}

// ApplyOutput summarizes one apply run.
type ApplyOutput struct {
	Results   []ApplyResult
	Processed int
	Failed    int
	Changed   int
}

// Execute applies all declarations. The conflicting network management
// daemon is disabled once up front; the network service is restarted at
// the end only when at least one file changed.
func (uc *ApplyConfigurationUseCase) Execute(ctx context.Context, declarations []entities.Declaration) (*ApplyOutput, error) {
	if len(declarations) == 0 {
		return &ApplyOutput{}, nil
	}

	if err := uc.service.DisableNetworkManager(ctx); err != nil {
		return nil, errors.NewNetworkError("failed to disable NetworkManager", err)
	}

	output := &ApplyOutput{}
	for _, decl := range declarations {
		result := uc.applyOne(decl)
		output.Results = append(output.Results, result)
		if result.Err != nil {
			output.Failed++
			metrics.RecordsBuilt.WithLabelValues("failed").Inc()
			metrics.ErrorsTotal.WithLabelValues(errorLabel(result.Err)).Inc()
			continue
		}
		output.Processed++
		metrics.RecordsBuilt.WithLabelValues("success").Inc()
		if result.Changed {
			output.Changed++
		}
	}

	if output.Changed > 0 {
		if err := uc.service.RestartNetwork(ctx); err != nil {
			return output, errors.NewNetworkError("failed to restart network service", err)
		}
		metrics.ServiceRestarts.Inc()
		uc.logger.WithField("changed_files", output.Changed).Info("network service restarted")
	}

	return output, nil
}

// errorLabel maps a failure to its metrics label.
func errorLabel(err error) string {
	switch {
	case errors.IsValidationError(err):
		return "validation"
	case errors.IsResolutionError(err):
		return "resolution"
	case errors.IsNetworkError(err):
		return "network"
	default:
		return "system"
	}
}

// applyOne processes a single declaration end to end. A validation or
// resolution failure leaves the destination file untouched.
func (uc *ApplyConfigurationUseCase) applyOne(decl entities.Declaration) ApplyResult {
	result := ApplyResult{DeclarationID: decl.ID}

	built, err := uc.builder.Execute(BuildInput{Identifier: decl.Identifier, Params: decl.Params})
	if err != nil {
		uc.logger.WithFields(logrus.Fields{
			"declaration_id": decl.ID,
			"identifier":     decl.Identifier.String(),
		}).WithError(err).Error("failed to build configuration record")
		result.Err = err
		return result
	}
	result.Interface = built.Config.Name

	content, err := uc.renderer.Render(built.Config)
	if err != nil {
		result.Err = errors.NewSystemError("failed to render configuration", err)
		return result
	}

	changed, err := uc.writer.WriteIfChanged(built.FilePath, content)
	if err != nil {
		result.Err = errors.NewSystemError("failed to write configuration file", err)
		return result
	}
	result.Changed = changed

	if changed {
		metrics.FilesWritten.Inc()
		uc.logger.WithFields(logrus.Fields{
			"interface": built.Config.Name,
			"file_path": built.FilePath,
		}).Info("configuration file updated")
	} else {
		uc.logger.WithFields(logrus.Fields{
			"interface": built.Config.Name,
			"file_path": built.FilePath,
		}).Debug("configuration file already up to date")
	}

	return result
}
