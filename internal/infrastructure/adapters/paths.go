package adapters

import (
	"ifcfg-agent/internal/domain/constants"
	"ifcfg-agent/internal/domain/interfaces"
)

// FamilyPathResolver maps the detected OS family to the directory the
// network service reads interface configuration from.
type FamilyPathResolver struct {
	family interfaces.OSFamily
}

// NewFamilyPathResolver creates a resolver for a detected family.
func NewFamilyPathResolver(family interfaces.OSFamily) *FamilyPathResolver {
	return &FamilyPathResolver{family: family}
}

// ConfigDir returns the family's configuration directory.
func (r *FamilyPathResolver) ConfigDir() string {
	if r.family == interfaces.OSFamilySUSE {
		return constants.SUSENetworkDir
	}
	return constants.RHELNetworkScriptsDir
}
