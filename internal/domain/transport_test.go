package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransportMode(t *testing.T) {
	for _, m := range TransportModes() {
		got, err := ParseTransportMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseTransportMode("car")
	assert.ErrorIs(t, err, ErrUnknownTransportMode)
	_, err = ParseTransportMode("")
	assert.ErrorIs(t, err, ErrUnknownTransportMode)
}

func TestTransportModeValid(t *testing.T) {
	assert.False(t, TransportUnknown.Valid())
	assert.False(t, TransportMode(99).Valid())
	assert.True(t, TransportPlane.Valid())
	assert.Equal(t, "TransportMode(99)", TransportMode(99).String())
}

func TestTransportEntryJSON(t *testing.T) {
	b, err := json.Marshal([]TransportEntry{{Mode: TransportBus, MonthlyDistance: 50}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"BUS","monthlyDistance":50}]`, string(b))

	var entries []TransportEntry
	require.NoError(t, json.Unmarshal([]byte(`[{"type":"PUBLIC_TRANSPORT","monthlyDistance":12}]`), &entries))
	assert.Equal(t, []TransportEntry{{Mode: TransportPublic, MonthlyDistance: 12}}, entries)

	err = json.Unmarshal([]byte(`[{"type":"TRAIN","monthlyDistance":1}]`), &entries)
	assert.ErrorIs(t, err, ErrUnknownTransportMode)

	_, err = json.Marshal(TransportEntry{})
	assert.Error(t, err)
}

func TestMeasurementsApplyReplacesEverything(t *testing.T) {
	energy, waste, pct := 100, 4, 0.5
	c := Calculation{
		ID:                "abc",
		RegionCode:        "SP",
		EnergyConsumption: &energy,
		Transportation:    []TransportEntry{{Mode: TransportCar, MonthlyDistance: 1}},
		SolidWasteTotal:   &waste,
		RecyclePercentage: &pct,
	}

	src := []TransportEntry{{Mode: TransportBus, MonthlyDistance: 2}}
	Measurements{Transportation: src}.Apply(&c)
	src[0].MonthlyDistance = 99

	assert.Equal(t, "abc", c.ID)
	assert.Equal(t, "SP", c.RegionCode)
	assert.Nil(t, c.EnergyConsumption)
	assert.Nil(t, c.SolidWasteTotal)
	assert.Nil(t, c.RecyclePercentage)
	assert.Equal(t, []TransportEntry{{Mode: TransportBus, MonthlyDistance: 2}}, c.Transportation)

	Measurements{}.Apply(&c)
	assert.Nil(t, c.Transportation)
}
