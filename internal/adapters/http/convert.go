package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	api "carboncalc/internal/api"
	"carboncalc/internal/domain"
)

func contactFromAPI(b *api.StartCalcRequest) domain.Contact {
	region := b.Uf
	if region == "" {
		region = b.RegionCode
	}
	return domain.Contact{Name: b.Name, Email: b.Email, PhoneNumber: b.PhoneNumber, RegionCode: region}
}

// measurementsFromAPI validates the body. transportationEntries is read when
// transportation is absent. A null or missing list stays nil; an empty one
// stays empty. The id is not checked here: an empty id is simply unknown.
func measurementsFromAPI(b *api.UpdateInfoRequest) (domain.Measurements, error) {
	var m domain.Measurements
	if b.EnergyConsumption != nil && *b.EnergyConsumption < 0 {
		return m, fmt.Errorf("energyConsumption must not be negative")
	}
	if b.SolidWasteTotal != nil && *b.SolidWasteTotal < 0 {
		return m, fmt.Errorf("solidWasteTotal must not be negative")
	}
	if p := b.RecyclePercentage; p != nil && (*p < 0 || *p > 1) {
		return m, fmt.Errorf("recyclePercentage must be between 0 and 1")
	}
	entries := b.Transportation
	if entries == nil {
		entries = b.TransportationEntries
	}
	if entries != nil {
		m.Transportation = make([]domain.TransportEntry, 0, len(*entries))
		for i, t := range *entries {
			mode, err := domain.ParseTransportMode(string(t.Type))
			if err != nil {
				return m, fmt.Errorf("transportation[%d]: %w", i, err)
			}
			if t.MonthlyDistance < 0 {
				return m, fmt.Errorf("transportation[%d]: monthlyDistance must not be negative", i)
			}
			m.Transportation = append(m.Transportation, domain.TransportEntry{Mode: mode, MonthlyDistance: t.MonthlyDistance})
		}
	}
	m.EnergyConsumption = b.EnergyConsumption
	m.SolidWasteTotal = b.SolidWasteTotal
	m.RecyclePercentage = b.RecyclePercentage
	return m, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
