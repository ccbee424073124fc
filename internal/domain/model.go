package domain

// Core domain models used internally. Wire shapes live in the http adapter;
// keep these decoupled from JSON and SQL naming.

// Calculation is a single footprint survey. ID is assigned once by the record
// store and never changes. Measurement fields stay nil until the info update.
type Calculation struct {
	ID          string
	Name        string
	Email       string
	PhoneNumber string
	RegionCode  string

	EnergyConsumption *int             // kWh per month
	Transportation    []TransportEntry // nil until updated
	SolidWasteTotal   *int             // kg per month
	RecyclePercentage *float64         // 0.0 - 1.0
}

type TransportEntry struct {
	Mode            TransportMode
	MonthlyDistance int
}

// Contact holds the fields set when a calculation is started.
type Contact struct {
	Name        string
	Email       string
	PhoneNumber string
	RegionCode  string
}

// Measurements replace the measurement fields of a Calculation wholesale.
type Measurements struct {
	EnergyConsumption *int
	Transportation    []TransportEntry
	SolidWasteTotal   *int
	RecyclePercentage *float64
}

// Apply overwrites every measurement field of c, including with nil values.
func (m Measurements) Apply(c *Calculation) {
	c.EnergyConsumption = m.EnergyConsumption
	c.SolidWasteTotal = m.SolidWasteTotal
	c.RecyclePercentage = m.RecyclePercentage
	if m.Transportation == nil {
		c.Transportation = nil
		return
	}
	c.Transportation = make([]TransportEntry, len(m.Transportation))
	copy(c.Transportation, m.Transportation)
}

// SolidWasteFactor is the singleton waste factor record.
type SolidWasteFactor struct {
	RecyclableFactor    float64
	NonRecyclableFactor float64
}

// Emissions is the computed breakdown for one calculation.
type Emissions struct {
	Energy         float64
	Transportation float64
	SolidWaste     float64
	Total          float64
}
