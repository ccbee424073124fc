package calculations

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"carboncalc/internal/domain"
	"carboncalc/internal/ports"
)

var (
	ErrNotFound      = errString("calculation not found")
	ErrConfiguration = errString("emission factor configuration error")
)

type errString string

func (e errString) Error() string { return string(e) }

// Service runs the calculation lifecycle: start, update info, compute result.
type Service struct {
	calcs   ports.CalculationRepository
	factors ports.EmissionFactorRepository
	log     zerolog.Logger
}

func New(calcs ports.CalculationRepository, factors ports.EmissionFactorRepository, log zerolog.Logger) *Service {
	return &Service{calcs: calcs, factors: factors, log: log.With().Str("component", "calculations").Logger()}
}

// Start creates a record holding only the contact fields.
func (s *Service) Start(ctx context.Context, contact domain.Contact) (string, error) {
	id, err := s.calcs.Create(ctx, contact)
	if err != nil {
		return "", fmt.Errorf("create calculation: %w", err)
	}
	s.log.Debug().Str("id", id).Str("region", contact.RegionCode).Msg("calculation started")
	return id, nil
}

// UpdateInfo replaces the measurement fields of an existing record. An unknown
// id is reported as success=false with a nil error and nothing is written.
func (s *Service) UpdateInfo(ctx context.Context, id string, m domain.Measurements) (bool, error) {
	calc, err := s.calcs.Fetch(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("fetch calculation %s: %w", id, err)
	}
	m.Apply(&calc)
	if err := s.calcs.Save(ctx, calc); err != nil {
		return false, fmt.Errorf("save calculation %s: %w", id, err)
	}
	s.log.Debug().Str("id", id).Int("transport_entries", len(calc.Transportation)).Msg("calculation info updated")
	return true, nil
}

// Result computes the emissions breakdown without persisting anything.
func (s *Service) Result(ctx context.Context, id string) (domain.Emissions, error) {
	calc, err := s.calcs.Fetch(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return domain.Emissions{}, ErrNotFound
	}
	if err != nil {
		return domain.Emissions{}, fmt.Errorf("fetch calculation %s: %w", id, err)
	}

	var out domain.Emissions
	if out.Energy, err = s.energy(ctx, calc); err != nil {
		return domain.Emissions{}, err
	}
	if out.Transportation, err = s.transportation(ctx, calc); err != nil {
		return domain.Emissions{}, err
	}
	if out.SolidWaste, err = s.solidWaste(ctx, calc); err != nil {
		if errors.Is(err, ErrConfiguration) {
			s.log.Error().Err(err).Str("id", id).Msg("solid waste factor missing")
		}
		return domain.Emissions{}, err
	}
	out.Total = out.Energy + out.Transportation + out.SolidWaste
	return out, nil
}

// Unknown regions contribute zero.
func (s *Service) energy(ctx context.Context, calc domain.Calculation) (float64, error) {
	if calc.EnergyConsumption == nil {
		return 0, nil
	}
	factor, _, err := s.factors.EnergyFactor(ctx, calc.RegionCode)
	if err != nil {
		return 0, fmt.Errorf("energy factor %q: %w", calc.RegionCode, err)
	}
	return float64(*calc.EnergyConsumption) * factor, nil
}

// Modes missing from the factor table contribute zero.
func (s *Service) transportation(ctx context.Context, calc domain.Calculation) (float64, error) {
	if calc.Transportation == nil {
		return 0, nil
	}
	var sum float64
	for _, t := range calc.Transportation {
		factor, _, err := s.factors.TransportFactor(ctx, t.Mode)
		if err != nil {
			return 0, fmt.Errorf("transport factor %s: %w", t.Mode, err)
		}
		sum += float64(t.MonthlyDistance) * factor
	}
	return sum, nil
}

// The waste factor is only looked up when waste data is present; a missing
// singleton is a configuration error. A nil percentage counts as 0.
func (s *Service) solidWaste(ctx context.Context, calc domain.Calculation) (float64, error) {
	if calc.SolidWasteTotal == nil {
		return 0, nil
	}
	factor, err := s.factors.SolidWasteFactor(ctx)
	if errors.Is(err, ports.ErrNoSolidWasteFactor) {
		return 0, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if err != nil {
		return 0, fmt.Errorf("solid waste factor: %w", err)
	}
	var pct float64
	if calc.RecyclePercentage != nil {
		pct = *calc.RecyclePercentage
	}
	total := float64(*calc.SolidWasteTotal)
	recyclable := total * pct
	nonRecyclable := total * (1 - pct)
	return recyclable*factor.RecyclableFactor + nonRecyclable*factor.NonRecyclableFactor, nil
}
