package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carboncalc/internal/domain"
	"carboncalc/internal/ports"
)

// These tests need a disposable database; they migrate it up.
func testDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Connect(ctx, url, PoolOptions{})
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx, "up", zerolog.Nop()))
	return db
}

func TestCalculationsRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	id, err := db.Create(ctx, domain.Contact{Name: "Ana", Email: "ana@example.com", RegionCode: "SP"})
	require.NoError(t, err)

	c, err := db.Fetch(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)
	assert.Nil(t, c.EnergyConsumption)
	assert.Nil(t, c.Transportation)

	energy, waste, pct := 200, 10, 0.3
	c.EnergyConsumption = &energy
	c.SolidWasteTotal = &waste
	c.RecyclePercentage = &pct
	c.Transportation = []domain.TransportEntry{{Mode: domain.TransportCar, MonthlyDistance: 100}}
	require.NoError(t, db.Save(ctx, c))

	got, err := db.Fetch(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	c.Transportation = []domain.TransportEntry{}
	require.NoError(t, db.Save(ctx, c))
	got, err = db.Fetch(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, got.Transportation)
	assert.Empty(t, got.Transportation)
}

func TestFetchUnknown(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	_, err := db.Fetch(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ports.ErrNotFound)
	_, err = db.Fetch(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestSeededFactors(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	f, ok, err := db.EnergyFactor(ctx, "SP")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Greater(t, f, 0.0)

	_, ok, err = db.EnergyFactor(ctx, "XX")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = db.TransportFactor(ctx, domain.TransportCar)
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = db.TransportFactor(ctx, domain.TransportUnknown)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = db.SolidWasteFactor(ctx)
	assert.NoError(t, err)
}
