package domain

import (
	"encoding/json"
	"fmt"
)

// TransportMode is the closed set of transportation categories.
type TransportMode int

const (
	TransportUnknown TransportMode = iota
	TransportCar
	TransportMotorcycle
	TransportBus
	TransportPublic
	TransportBicycle
	TransportPlane
)

var transportNames = map[TransportMode]string{
	TransportCar:        "CAR",
	TransportMotorcycle: "MOTORCYCLE",
	TransportBus:        "BUS",
	TransportPublic:     "PUBLIC_TRANSPORT",
	TransportBicycle:    "BICYCLE",
	TransportPlane:      "PLANE",
}

var ErrUnknownTransportMode = errString("unknown transport mode")

type errString string

func (e errString) Error() string { return string(e) }

// TransportModes lists every valid mode in declaration order.
func TransportModes() []TransportMode {
	return []TransportMode{TransportCar, TransportMotorcycle, TransportBus, TransportPublic, TransportBicycle, TransportPlane}
}

func ParseTransportMode(s string) (TransportMode, error) {
	for m, name := range transportNames {
		if name == s {
			return m, nil
		}
	}
	return TransportUnknown, fmt.Errorf("%w: %q", ErrUnknownTransportMode, s)
}

func (m TransportMode) Valid() bool {
	_, ok := transportNames[m]
	return ok
}

func (m TransportMode) String() string {
	if name, ok := transportNames[m]; ok {
		return name
	}
	return fmt.Sprintf("TransportMode(%d)", int(m))
}

func (m TransportMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTransportMode, int(m))
	}
	return []byte(transportNames[m]), nil
}

func (m *TransportMode) UnmarshalText(b []byte) error {
	parsed, err := ParseTransportMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

var (
	_ json.Marshaler   = TransportEntry{}
	_ json.Unmarshaler = (*TransportEntry)(nil)
)

type transportEntryJSON struct {
	Type            TransportMode `json:"type"`
	MonthlyDistance int           `json:"monthlyDistance"`
}

// TransportEntry is stored as a JSON document by the postgres adapter, so it
// carries its own stable encoding.
func (e TransportEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(transportEntryJSON{Type: e.Mode, MonthlyDistance: e.MonthlyDistance})
}

func (e *TransportEntry) UnmarshalJSON(b []byte) error {
	var raw transportEntryJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	e.Mode = raw.Type
	e.MonthlyDistance = raw.MonthlyDistance
	return nil
}
