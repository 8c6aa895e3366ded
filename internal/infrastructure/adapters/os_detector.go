package adapters

import (
	"bufio"
	"fmt"
	"strings"

	"ifcfg-agent/internal/domain/constants"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"
)

// RealOSDetector is an OSDetector reading /etc/os-release.
type RealOSDetector struct {
	fileSystem interfaces.FileSystem
}

// NewRealOSDetector creates a new RealOSDetector.
func NewRealOSDetector(fs interfaces.FileSystem) interfaces.OSDetector {
	return &RealOSDetector{fileSystem: fs}
}

// DetectFamily returns the operating system family. Families the agent
// cannot write interface configuration for fail detection; the caller
// treats that as fatal before any record is built.
func (d *RealOSDetector) DetectFamily() (interfaces.OSFamily, error) {
	releaseInfo, err := d.parseOSRelease()
	if err != nil {
		return "", errors.NewSystemError("OS detection failed: cannot read /etc/os-release", err)
	}

	id, ok := releaseInfo["ID"]
	if !ok {
		return "", errors.NewSystemError("OS detection failed: no ID field in /etc/os-release", nil)
	}
	idLike := releaseInfo["ID_LIKE"]

	switch {
	case id == "rhel" || id == "centos" || id == "rocky" || id == "almalinux" || id == "oracle" ||
		strings.Contains(idLike, "rhel") || strings.Contains(idLike, "fedora"):
		return interfaces.OSFamilyRHEL, nil
	case id == "sles" || id == "opensuse-leap" || strings.Contains(idLike, "suse"):
		return interfaces.OSFamilySUSE, nil
	}

	return "", errors.NewSystemError(fmt.Sprintf("unsupported OS family. ID: %q, ID_LIKE: %q", id, idLike), nil)
}

// parseOSRelease parses /etc/os-release into a map.
func (d *RealOSDetector) parseOSRelease() (map[string]string, error) {
	content, err := d.fileSystem.ReadFile(constants.OSReleaseFile)
	if err != nil {
		return nil, err
	}

	releaseInfo := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			key := strings.TrimSpace(parts[0])
			value := strings.Trim(strings.TrimSpace(parts[1]), "\"")
			releaseInfo[key] = value
		}
	}

	return releaseInfo, nil
}
