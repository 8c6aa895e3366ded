package render

import (
	"bytes"
	"path/filepath"
	"strings"

	"ifcfg-agent/internal/domain/constants"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// DiffWriter persists rendered content only when it differs from what
// is already on disk, so the caller can restart the network service
// exactly when needed. Before overwriting an existing file the previous
// content is handed to the backup service.
type DiffWriter struct {
	fileSystem interfaces.FileSystem
	backup     interfaces.BackupService
	logger     *logrus.Logger
}

// NewDiffWriter creates a new DiffWriter. backup may be nil when no
// backups are wanted.
func NewDiffWriter(fs interfaces.FileSystem, backup interfaces.BackupService, logger *logrus.Logger) *DiffWriter {
	return &DiffWriter{fileSystem: fs, backup: backup, logger: logger}
}

// WriteIfChanged writes content to path and reports whether the file
// content changed. A missing file always counts as changed.
func (w *DiffWriter) WriteIfChanged(path string, content []byte) (bool, error) {
	exists := w.fileSystem.Exists(path)
	if exists {
		existing, err := w.fileSystem.ReadFile(path)
		if err != nil {
			return false, errors.NewSystemError("failed to read existing configuration file", err)
		}
		if bytes.Equal(existing, content) {
			return false, nil
		}
	}

	if exists && w.backup != nil {
		name := strings.TrimPrefix(filepath.Base(path), "ifcfg-")
		if err := w.backup.CreateBackup(name, path); err != nil {
			w.logger.WithError(err).WithField("file_path", path).Warn("backup failed, overwriting anyway")
		}
	}

	if err := w.fileSystem.WriteFile(path, content, constants.ConfigFilePermission); err != nil {
		return false, errors.NewSystemError("failed to write configuration file", err)
	}

	w.logger.WithField("file_path", path).Debug("configuration file written")
	return true, nil
}
