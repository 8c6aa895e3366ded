package container

import (
	"database/sql"
	"fmt"

	"ifcfg-agent/internal/application/usecases"
	"ifcfg-agent/internal/domain/interfaces"
	"ifcfg-agent/internal/domain/services"
	"ifcfg-agent/internal/infrastructure/adapters"
	"ifcfg-agent/internal/infrastructure/config"
	"ifcfg-agent/internal/infrastructure/health"
	"ifcfg-agent/internal/infrastructure/persistence"
	"ifcfg-agent/internal/infrastructure/render"
	infraservices "ifcfg-agent/internal/infrastructure/services"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

// Container wires the application's dependencies. OS family detection
// is a fail-fast precondition here: construction fails on unsupported
// platforms before any record can be built.
type Container struct {
	config *config.Config
	logger *logrus.Logger

	// Infrastructure adapters
	fileSystem      interfaces.FileSystem
	commandExecutor interfaces.CommandExecutor
	clock           interfaces.Clock
	osDetector      interfaces.OSDetector
	osFamily        interfaces.OSFamily

	// Services
	healthService *health.HealthService

	// Repository, only connected in daemon mode
	repository interfaces.DeclarationRepository
	db         *sql.DB

	// Use cases
	buildUseCase *usecases.BuildConfigurationUseCase
	applyUseCase *usecases.ApplyConfigurationUseCase

	// Loaders
	declarationsLoader *config.DeclarationsLoader
}

// NewContainer creates a new Container.
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	container := &Container{
		config: cfg,
		logger: logger,
	}

	if err := container.initializeInfrastructure(); err != nil {
		return nil, err
	}
	container.initializeServices()
	container.initializeUseCases()

	return container, nil
}

// initializeInfrastructure sets up adapters and detects the OS family.
func (c *Container) initializeInfrastructure() error {
	c.fileSystem = adapters.NewRealFileSystem()
	c.commandExecutor = adapters.NewRealCommandExecutor()
	c.clock = adapters.NewRealClock()
	c.osDetector = adapters.NewRealOSDetector(c.fileSystem)

	family, err := c.osDetector.DetectFamily()
	if err != nil {
		return fmt.Errorf("refusing to start on unsupported platform: %w", err)
	}
	c.osFamily = family
	c.logger.WithField("os_family", family).Info("operating system family detected")

	return nil
}

// initializeServices sets up supporting services.
func (c *Container) initializeServices() {
	c.healthService = health.NewHealthService(c.clock, c.logger)
	c.healthService.SetOSFamily(string(c.osFamily))
	c.declarationsLoader = config.NewDeclarationsLoader(c.fileSystem)
}

// initializeUseCases wires the build and apply pipelines.
func (c *Container) initializeUseCases() {
	resolver := services.NewIdentityResolver(adapters.NewNetlinkLocator())
	normalizer := services.NewNormalizer(adapters.NewFamilyPathResolver(c.osFamily))

	c.buildUseCase = usecases.NewBuildConfigurationUseCase(resolver, normalizer, c.logger)

	backup := infraservices.NewBackupService(
		c.fileSystem, c.clock, c.logger, c.config.Agent.BackupDirectory)
	writer := render.NewDiffWriter(c.fileSystem, backup, c.logger)
	control := infraservices.NewNetworkControl(c.commandExecutor, c.logger)

	c.applyUseCase = usecases.NewApplyConfigurationUseCase(
		c.buildUseCase,
		render.NewIfcfgRenderer(),
		writer,
		control,
		c.logger,
	)
}

// ConnectDatabase opens the declaration database for daemon mode.
func (c *Container) ConnectDatabase() error {
	db, err := sql.Open("mysql", c.buildDSN())
	if err != nil {
		return err
	}

	db.SetMaxOpenConns(c.config.Database.MaxOpenConns)
	db.SetMaxIdleConns(c.config.Database.MaxIdleConns)
	db.SetConnMaxLifetime(c.config.Database.MaxLifetime)

	if err := db.Ping(); err != nil {
		return err
	}

	c.db = db
	c.repository = persistence.NewMySQLRepository(db, c.logger)
	return nil
}

// buildDSN builds the database connection string.
func (c *Container) buildDSN() string {
	cfg := c.config.Database
	return cfg.User + ":" + cfg.Password + "@tcp(" + cfg.Host + ":" + cfg.Port + ")/" + cfg.Database + "?parseTime=true"
}

// GetConfig returns the configuration.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetOSFamily returns the detected OS family.
func (c *Container) GetOSFamily() interfaces.OSFamily {
	return c.osFamily
}

// GetHealthService returns the health service.
func (c *Container) GetHealthService() *health.HealthService {
	return c.healthService
}

// GetBuildUseCase returns the record build use case.
func (c *Container) GetBuildUseCase() *usecases.BuildConfigurationUseCase {
	return c.buildUseCase
}

// GetApplyUseCase returns the apply use case.
func (c *Container) GetApplyUseCase() *usecases.ApplyConfigurationUseCase {
	return c.applyUseCase
}

// GetDeclarationsLoader returns the YAML declarations loader.
func (c *Container) GetDeclarationsLoader() *config.DeclarationsLoader {
	return c.declarationsLoader
}

// GetRepository returns the declaration repository. Nil until
// ConnectDatabase succeeds.
func (c *Container) GetRepository() interfaces.DeclarationRepository {
	return c.repository
}

// Close releases container resources.
func (c *Container) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
