package usecases

import (
	"time"

	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/services"
	"ifcfg-agent/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// BuildConfigurationUseCase is the single entry point turning one
// interface declaration into a fully resolved configuration record plus
// its destination path. Resolution and normalization are synchronous,
// terminating computations with no shared state between invocations.
type BuildConfigurationUseCase struct {
	resolver   *services.IdentityResolver
	normalizer *services.Normalizer
	logger     *logrus.Logger
}

// NewBuildConfigurationUseCase creates a new BuildConfigurationUseCase.
func NewBuildConfigurationUseCase(
	resolver *services.IdentityResolver,
	normalizer *services.Normalizer,
	logger *logrus.Logger,
) *BuildConfigurationUseCase {
	return &BuildConfigurationUseCase{
		resolver:   resolver,
		normalizer: normalizer,
		logger:     logger,
	}
}

// BuildInput is the use case input.
type BuildInput struct {
	Identifier entities.Identifier
	Params     entities.InterfaceParams
}

// BuildOutput is the use case output.
type BuildOutput struct {
	Config   *entities.InterfaceConfig
	FilePath string
}

// Execute resolves the identifier and normalizes the parameters.
// Failure at either step aborts with no record produced.
func (uc *BuildConfigurationUseCase) Execute(input BuildInput) (*BuildOutput, error) {
	start := time.Now()
	defer func() {
		metrics.BuildDuration.Observe(time.Since(start).Seconds())
	}()

	name, err := uc.resolver.Resolve(input.Identifier)
	if err != nil {
		return nil, err
	}

	cfg, err := uc.normalizer.Normalize(name, input.Params)
	if err != nil {
		return nil, err
	}

	uc.logger.WithFields(logrus.Fields{
		"identifier": input.Identifier.String(),
		"interface":  cfg.Name,
		"shape":      cfg.Shape.String(),
		"file_path":  cfg.FilePath,
	}).Debug("configuration record built")

	return &BuildOutput{Config: cfg, FilePath: cfg.FilePath}, nil
}
