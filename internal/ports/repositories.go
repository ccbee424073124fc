package ports

import (
	"context"

	"carboncalc/internal/domain"
)

// CalculationRepository persists calculation records keyed by id.
// Fetch returns the store's not-found error when the id is unknown.
type CalculationRepository interface {
	Create(ctx context.Context, contact domain.Contact) (id string, err error)
	Fetch(ctx context.Context, id string) (domain.Calculation, error)
	Save(ctx context.Context, calc domain.Calculation) error
}

// EmissionFactorRepository is the read-only factor table.
// Unknown regions and modes report found=false rather than an error.
type EmissionFactorRepository interface {
	EnergyFactor(ctx context.Context, regionCode string) (factor float64, found bool, err error)
	TransportFactor(ctx context.Context, mode domain.TransportMode) (factor float64, found bool, err error)
	SolidWasteFactor(ctx context.Context) (domain.SolidWasteFactor, error)
}

// Errors returned by repository implementations. Adapters may wrap them.
var (
	ErrNotFound           = errString("not found")
	ErrNoSolidWasteFactor = errString("solid waste emission factor not configured")
)

type errString string

func (e errString) Error() string { return string(e) }
