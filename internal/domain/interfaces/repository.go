package interfaces

import (
	"context"

	"ifcfg-agent/internal/domain/entities"
)

// DeclarationRepository supplies interface declarations for a node and
// records the outcome of applying them.
type DeclarationRepository interface {
	// GetPendingDeclarations returns declarations not yet applied on
	// the given node.
	GetPendingDeclarations(ctx context.Context, nodeName string) ([]entities.Declaration, error)

	// MarkApplied records whether a declaration was applied
	// successfully.
	MarkApplied(ctx context.Context, id int, success bool) error

	// Ping checks connectivity.
	Ping(ctx context.Context) error
}
