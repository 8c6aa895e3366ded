package services

import (
	"fmt"

	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"
)

// IdentityResolver maps an interface identifier to its canonical device
// name.
type IdentityResolver struct {
	locator interfaces.InterfaceLocator
}

// NewIdentityResolver creates a new IdentityResolver.
func NewIdentityResolver(locator interfaces.InterfaceLocator) *IdentityResolver {
	return &IdentityResolver{locator: locator}
}

// Resolve returns the canonical name for the identifier. A hardware
// address with no matching device is fatal: no fallback name is
// invented. Literal names pass through verbatim.
func (r *IdentityResolver) Resolve(id entities.Identifier) (string, error) {
	switch id.Kind() {
	case entities.IdentifierSequence:
		name, err := r.locator.NameBySequence(id.Index())
		if err != nil {
			return "", errors.NewResolutionError(
				fmt.Sprintf("no interface found at sequence position %d", id.Index()), err)
		}
		return name, nil

	case entities.IdentifierHardwareAddress:
		name, err := r.locator.NameByHardwareAddress(id.Value())
		if err != nil {
			return "", errors.NewResolutionError(
				fmt.Sprintf("no interface found for given hardware address %s", id.Value()), err)
		}
		return name, nil

	default:
		return id.Value(), nil
	}
}
