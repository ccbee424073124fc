// Package memory provides in-process stores used by tests and by local runs
// without a database.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"carboncalc/internal/domain"
	"carboncalc/internal/ports"
)

var ErrNotFound = ports.ErrNotFound

var (
	_ ports.CalculationRepository    = (*CalculationStore)(nil)
	_ ports.EmissionFactorRepository = (*FactorTable)(nil)
)

// CalculationStore keeps records in a map. Saves are last-write-wins.
type CalculationStore struct {
	mu   sync.RWMutex
	recs map[string]domain.Calculation
}

func NewCalculationStore() *CalculationStore {
	return &CalculationStore{recs: make(map[string]domain.Calculation)}
}

func (s *CalculationStore) Create(ctx context.Context, contact domain.Contact) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var id string
	for {
		id = uuid.NewString()
		if _, taken := s.recs[id]; !taken {
			break
		}
	}
	s.recs[id] = domain.Calculation{
		ID:          id,
		Name:        contact.Name,
		Email:       contact.Email,
		PhoneNumber: contact.PhoneNumber,
		RegionCode:  contact.RegionCode,
	}
	return id, nil
}

func (s *CalculationStore) Fetch(ctx context.Context, id string) (domain.Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.recs[id]
	if !ok {
		return domain.Calculation{}, ErrNotFound
	}
	return clone(c), nil
}

func (s *CalculationStore) Save(ctx context.Context, calc domain.Calculation) error {
	if calc.ID == "" {
		return fmt.Errorf("save calculation: empty id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[calc.ID] = clone(calc)
	return nil
}

// Len reports the number of stored records.
func (s *CalculationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recs)
}

// clone copies the pointer and slice fields so callers never share state with the map.
func clone(c domain.Calculation) domain.Calculation {
	out := c
	if c.EnergyConsumption != nil {
		v := *c.EnergyConsumption
		out.EnergyConsumption = &v
	}
	if c.SolidWasteTotal != nil {
		v := *c.SolidWasteTotal
		out.SolidWasteTotal = &v
	}
	if c.RecyclePercentage != nil {
		v := *c.RecyclePercentage
		out.RecyclePercentage = &v
	}
	if c.Transportation != nil {
		out.Transportation = append([]domain.TransportEntry{}, c.Transportation...)
	}
	return out
}
