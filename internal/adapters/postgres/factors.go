package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"carboncalc/internal/domain"
	"carboncalc/internal/ports"
)

// EmissionFactorRepository

func (db *DB) EnergyFactor(ctx context.Context, regionCode string) (float64, bool, error) {
	var f float64
	err := db.Pool.QueryRow(ctx, `SELECT factor FROM energy_emission_factors WHERE uf = $1`, regionCode).Scan(&f)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return f, true, nil
}

func (db *DB) TransportFactor(ctx context.Context, mode domain.TransportMode) (float64, bool, error) {
	if !mode.Valid() {
		return 0, false, nil
	}
	var f float64
	err := db.Pool.QueryRow(ctx, `SELECT factor FROM transportation_emission_factors WHERE type = $1`, mode.String()).Scan(&f)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return f, true, nil
}

// SolidWasteFactor reads the singleton row. The table is expected to hold
// exactly one; with more, whichever row postgres returns first wins.
func (db *DB) SolidWasteFactor(ctx context.Context) (domain.SolidWasteFactor, error) {
	var out domain.SolidWasteFactor
	err := db.Pool.QueryRow(ctx, `
		SELECT recyclable_factor, non_recyclable_factor
		FROM solid_waste_emission_factors
		LIMIT 1
	`).Scan(&out.RecyclableFactor, &out.NonRecyclableFactor)
	if errors.Is(err, pgx.ErrNoRows) {
		return out, ports.ErrNoSolidWasteFactor
	}
	return out, err
}
