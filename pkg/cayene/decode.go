package cayene

import (
	"errors"
	"fmt"
)

// Decode failure modes. Wrapped errors can be classified with errors.Is.
var (
	ErrPayloadEmpty     = errors.New("payload empty")
	ErrUnknownDataType  = errors.New("unknown data type")
	ErrBadPayloadFormat = errors.New("bad payload format")
)

// Decode scans the payload in a single forward pass and returns the
// decoded readings. Each record is a channel byte, a type identifier
// byte, and a value of the type's registered width. Decoding is
// all-or-nothing: any malformed record fails the whole payload and no
// partial result is returned. A record repeating a (type, channel)
// pair overwrites the earlier reading.
func (d *Decoder) Decode(payload []byte) (Payload, error) {
	if len(payload) == 0 {
		return nil, ErrPayloadEmpty
	}
	decoded := make(Payload)
	i := 0
	for i+1 < len(payload) {
		channel := payload[i]
		typeID := payload[i+1]
		i += 2
		td, ok := d.registry.Lookup(typeID)
		if !ok {
			return nil, fmt.Errorf("%w: 0x%02X at offset %d", ErrUnknownDataType, typeID, i-1)
		}
		if i+td.Width > len(payload) {
			return nil, fmt.Errorf("%w: %s needs %d value bytes, %d remain",
				ErrBadPayloadFormat, td.Name, td.Width, len(payload)-i)
		}
		decoded[fmt.Sprintf("%s_%d", td.Name, channel)] = td.Decode(payload[i : i+td.Width])
		i += td.Width
	}
	if i != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing byte(s) cannot form a record",
			ErrBadPayloadFormat, len(payload)-i)
	}
	return decoded, nil
}
