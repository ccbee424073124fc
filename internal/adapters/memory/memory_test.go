package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carboncalc/internal/domain"
	"carboncalc/internal/ports"
)

func TestCalculationStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewCalculationStore()

	id, err := s.Create(ctx, domain.Contact{Name: "Ana", RegionCode: "RJ"})
	require.NoError(t, err)

	c, err := s.Fetch(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, c.ID)
	assert.Equal(t, "RJ", c.RegionCode)

	energy := 42
	c.EnergyConsumption = &energy
	c.Transportation = []domain.TransportEntry{{Mode: domain.TransportCar, MonthlyDistance: 3}}
	require.NoError(t, s.Save(ctx, c))

	// mutating the caller's copy must not leak into the store
	energy = 7
	c.Transportation[0].MonthlyDistance = 99

	got, err := s.Fetch(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.EnergyConsumption)
	assert.Equal(t, 42, *got.EnergyConsumption)
	assert.Equal(t, 3, got.Transportation[0].MonthlyDistance)
}

func TestCalculationStoreNotFound(t *testing.T) {
	_, err := NewCalculationStore().Fetch(context.Background(), "nope")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestCalculationStoreSaveRequiresID(t *testing.T) {
	assert.Error(t, NewCalculationStore().Save(context.Background(), domain.Calculation{}))
}

func TestReadFactors(t *testing.T) {
	ctx := context.Background()
	table, err := ReadFactors(strings.NewReader(`
energy:
  SP: 0.05
transportation:
  CAR: 0.2
  BUS: 0.1
solid_waste:
  recyclable: 0.02
  non_recyclable: 0.05
`))
	require.NoError(t, err)

	f, ok, err := table.EnergyFactor(ctx, "SP")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0.05, f)

	f, ok, err = table.EnergyFactor(ctx, "XX")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, f)

	f, ok, err = table.TransportFactor(ctx, domain.TransportBus)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0.1, f)

	_, ok, err = table.TransportFactor(ctx, domain.TransportPlane)
	require.NoError(t, err)
	assert.False(t, ok)

	sw, err := table.SolidWasteFactor(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SolidWasteFactor{RecyclableFactor: 0.02, NonRecyclableFactor: 0.05}, sw)
}

func TestReadFactorsWithoutSolidWaste(t *testing.T) {
	table, err := ReadFactors(strings.NewReader("energy:\n  SP: 0.05\n"))
	require.NoError(t, err)

	_, err = table.SolidWasteFactor(context.Background())
	assert.ErrorIs(t, err, ports.ErrNoSolidWasteFactor)
}

func TestReadFactorsRejectsUnknownMode(t *testing.T) {
	_, err := ReadFactors(strings.NewReader("transportation:\n  TRAIN: 0.03\n"))
	assert.ErrorIs(t, err, domain.ErrUnknownTransportMode)
}

func TestLoadFactorFileShipped(t *testing.T) {
	table, err := LoadFactorFile("../../../config/factors.yaml")
	require.NoError(t, err)
	for _, m := range domain.TransportModes() {
		_, ok, err := table.TransportFactor(context.Background(), m)
		require.NoError(t, err)
		assert.True(t, ok, m.String())
	}
	_, err = table.SolidWasteFactor(context.Background())
	assert.NoError(t, err)
}
