package services

import (
	"fmt"
	"path/filepath"

	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// BackupService keeps a timestamped copy of an interface configuration
// file before it is overwritten.
type BackupService struct {
	fileSystem interfaces.FileSystem
	clock      interfaces.Clock
	logger     *logrus.Logger
	backupDir  string
}

// NewBackupService creates a new BackupService.
func NewBackupService(
	fs interfaces.FileSystem,
	clock interfaces.Clock,
	logger *logrus.Logger,
	backupDir string,
) *BackupService {
	return &BackupService{
		fileSystem: fs,
		clock:      clock,
		logger:     logger,
		backupDir:  backupDir,
	}
}

// CreateBackup copies the current content of configPath into the backup
// directory. A missing original is not an error; there is nothing to
// preserve for a first-time write.
func (s *BackupService) CreateBackup(interfaceName, configPath string) error {
	if err := s.fileSystem.MkdirAll(s.backupDir, 0755); err != nil {
		return errors.NewSystemError("failed to create backup directory", err)
	}

	if !s.fileSystem.Exists(configPath) {
		s.logger.WithFields(logrus.Fields{
			"interface": interfaceName,
			"path":      configPath,
		}).Debug("no existing configuration file to back up")
		return nil
	}

	content, err := s.fileSystem.ReadFile(configPath)
	if err != nil {
		return errors.NewSystemError("failed to read configuration file for backup", err)
	}

	// e.g. eth0_20250108_150405
	timestamp := s.clock.Now().Format("20060102_150405")
	backupPath := filepath.Join(s.backupDir, fmt.Sprintf("%s_%s", interfaceName, timestamp))

	if err := s.fileSystem.WriteFile(backupPath, content, 0644); err != nil {
		return errors.NewSystemError("failed to write backup file", err)
	}

	s.logger.WithFields(logrus.Fields{
		"interface":   interfaceName,
		"backup_path": backupPath,
	}).Info("configuration backup created")

	return nil
}
