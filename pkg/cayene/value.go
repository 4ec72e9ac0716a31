package cayene

// Value is one decoded sensor reading. The concrete type depends on the
// data type that produced it: Unsigned for raw counters and flags,
// Decimal for scaled readings, Vector and Location for multi-field
// records.
type Value interface {
	isValue()
}

// Unsigned is a raw unsigned integer reading.
type Unsigned uint64

func (Unsigned) isValue() {}

// Decimal is a scaled, possibly negative reading.
type Decimal float64

func (Decimal) isValue() {}

// Vector holds a three-axis reading such as an accelerometer sample.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (Vector) isValue() {}

// Location holds a GPS fix.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

func (Location) isValue() {}

// Payload maps "<TypeName>_<channel>" keys to decoded readings.
type Payload map[string]Value
