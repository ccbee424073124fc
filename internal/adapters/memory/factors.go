package memory

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"carboncalc/internal/domain"
	"carboncalc/internal/ports"
)

// FactorTable is a read-only emission factor store. A nil SolidWaste means the
// singleton record is missing.
type FactorTable struct {
	Energy     map[string]float64
	Transport  map[domain.TransportMode]float64
	SolidWaste *domain.SolidWasteFactor
}

// factorFile is the YAML layout:
//
//	energy:
//	  SP: 0.05
//	transportation:
//	  CAR: 0.2
//	solid_waste:
//	  recyclable: 0.02
//	  non_recyclable: 0.05
type factorFile struct {
	Energy     map[string]float64 `yaml:"energy"`
	Transport  map[string]float64 `yaml:"transportation"`
	SolidWaste *struct {
		Recyclable    float64 `yaml:"recyclable"`
		NonRecyclable float64 `yaml:"non_recyclable"`
	} `yaml:"solid_waste"`
}

func LoadFactorFile(path string) (*FactorTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open factor file: %w", err)
	}
	defer f.Close()
	return ReadFactors(f)
}

// ReadFactors decodes a YAML factor table. Unknown transport mode names are rejected.
func ReadFactors(r io.Reader) (*FactorTable, error) {
	var raw factorFile
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode factor file: %w", err)
	}
	t := &FactorTable{
		Energy:    make(map[string]float64, len(raw.Energy)),
		Transport: make(map[domain.TransportMode]float64, len(raw.Transport)),
	}
	for region, f := range raw.Energy {
		t.Energy[region] = f
	}
	for name, f := range raw.Transport {
		mode, err := domain.ParseTransportMode(name)
		if err != nil {
			return nil, fmt.Errorf("factor file: %w", err)
		}
		t.Transport[mode] = f
	}
	if raw.SolidWaste != nil {
		t.SolidWaste = &domain.SolidWasteFactor{
			RecyclableFactor:    raw.SolidWaste.Recyclable,
			NonRecyclableFactor: raw.SolidWaste.NonRecyclable,
		}
	}
	return t, nil
}

func (t *FactorTable) EnergyFactor(ctx context.Context, regionCode string) (float64, bool, error) {
	f, ok := t.Energy[regionCode]
	return f, ok, nil
}

func (t *FactorTable) TransportFactor(ctx context.Context, mode domain.TransportMode) (float64, bool, error) {
	f, ok := t.Transport[mode]
	return f, ok, nil
}

func (t *FactorTable) SolidWasteFactor(ctx context.Context) (domain.SolidWasteFactor, error) {
	if t.SolidWaste == nil {
		return domain.SolidWasteFactor{}, ports.ErrNoSolidWasteFactor
	}
	return *t.SolidWaste, nil
}
