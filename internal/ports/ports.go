package ports

import (
	"context"

	"carboncalc/internal/domain"
)

// Calculations is the record lifecycle consumed by the API surface.
type Calculations interface {
	Start(ctx context.Context, contact domain.Contact) (id string, err error)
	UpdateInfo(ctx context.Context, id string, m domain.Measurements) (success bool, err error)
	Result(ctx context.Context, id string) (domain.Emissions, error)
}
