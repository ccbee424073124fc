package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"carboncalc/internal/domain"
)

// CalculationRepository

func (db *DB) Create(ctx context.Context, contact domain.Contact) (string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO calculations (name, email, phone_number, uf)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text
	`, contact.Name, contact.Email, contact.PhoneNumber, contact.RegionCode).Scan(&id)
	return id, err
}

func (db *DB) Fetch(ctx context.Context, id string) (domain.Calculation, error) {
	// ids are uuids; anything else can't exist
	if _, err := uuid.Parse(id); err != nil {
		return domain.Calculation{}, ErrNotFound
	}
	var (
		c         domain.Calculation
		transport []byte
	)
	err := db.Pool.QueryRow(ctx, `
		SELECT id::text, name, email, phone_number, uf,
		       energy_consumption, transportation, solid_waste_total, recycle_percentage
		FROM calculations
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber, &c.RegionCode,
		&c.EnergyConsumption, &transport, &c.SolidWasteTotal, &c.RecyclePercentage)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Calculation{}, ErrNotFound
	}
	if err != nil {
		return domain.Calculation{}, err
	}
	if transport != nil {
		if err := json.Unmarshal(transport, &c.Transportation); err != nil {
			return domain.Calculation{}, fmt.Errorf("decode transportation for %s: %w", id, err)
		}
		if c.Transportation == nil {
			c.Transportation = []domain.TransportEntry{}
		}
	}
	return c, nil
}

// Save upserts the full record by id. Transportation is stored by mode name,
// so every entry must carry a valid mode.
func (db *DB) Save(ctx context.Context, c domain.Calculation) error {
	if _, err := uuid.Parse(c.ID); err != nil {
		return fmt.Errorf("save calculation: invalid id %q: %w", c.ID, err)
	}
	for i, t := range c.Transportation {
		if !t.Mode.Valid() {
			return fmt.Errorf("save calculation %s: transportation[%d]: %w", c.ID, i, domain.ErrUnknownTransportMode)
		}
	}
	var transport []byte
	if c.Transportation != nil {
		var err error
		if transport, err = json.Marshal(c.Transportation); err != nil {
			return fmt.Errorf("encode transportation: %w", err)
		}
	}
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO calculations (id, name, email, phone_number, uf,
		                          energy_consumption, transportation, solid_waste_total, recycle_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
		    name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    phone_number = EXCLUDED.phone_number,
		    uf = EXCLUDED.uf,
		    energy_consumption = EXCLUDED.energy_consumption,
		    transportation = EXCLUDED.transportation,
		    solid_waste_total = EXCLUDED.solid_waste_total,
		    recycle_percentage = EXCLUDED.recycle_percentage,
		    updated_at = now()
	`, c.ID, c.Name, c.Email, c.PhoneNumber, c.RegionCode,
		c.EnergyConsumption, transport, c.SolidWasteTotal, c.RecyclePercentage)
	return err
}
