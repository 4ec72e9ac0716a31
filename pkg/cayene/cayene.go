// Package cayene decodes Cayenne LPP sensor payloads into named,
// channel-qualified readings.
package cayene

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// Decoder decodes payloads against its type registry. A Decoder is safe
// for concurrent Decode calls; register extension types before sharing
// it.
type Decoder struct {
	registry *Registry
}

// NewDecoder returns a decoder with the standard data types registered.
func NewDecoder() *Decoder {
	return &Decoder{registry: NewRegistry()}
}

// NewDecoderWithOptions returns a decoder configured with custom
// options.
func NewDecoderWithOptions(opts Options) (*Decoder, error) {
	d := NewDecoder()
	if err := opts.apply(d); err != nil {
		return nil, err
	}
	return d, nil
}

// AddDataType registers an extension type decoded as a big-endian
// unsigned integer of width bytes (1 to 8). It reports whether the
// registration happened; an already registered identifier is left
// untouched.
func (d *Decoder) AddDataType(id byte, name string, width int) bool {
	if width < 1 || width > 8 {
		return false
	}
	return d.registry.Register(id, name, width, unsignedBE)
}

// RegisterDataType registers an extension type with its own decode
// behavior. Same no-overwrite rules as AddDataType.
func (d *Decoder) RegisterDataType(id byte, name string, width int, fn DecodeFunc) bool {
	return d.registry.Register(id, name, width, fn)
}

// Registry exposes the decoder's type registry for introspection.
func (d *Decoder) Registry() *Registry {
	return d.registry
}

// Result captures the outcome of DecodeHex.
type Result struct {
	RawHex    string
	ByteCount int
	Readings  Payload
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"byte_count": r.ByteCount,
		"raw_hex":    r.RawHex,
	}
	if len(r.Readings) > 0 {
		summary["readings"] = r.Readings
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("bytes:%d raw:%s (marshal error: %v)", r.ByteCount, r.RawHex, err)
	}
	return string(data)
}

// DecodeHex decodes a hex-encoded payload. Whitespace, '|' and '_'
// separators and an optional 0x prefix are accepted.
func (d *Decoder) DecodeHex(raw string) (Result, error) {
	data, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}
	readings, err := d.Decode(data)
	if err != nil {
		return Result{}, err
	}
	return Result{
		RawHex:    strings.ToUpper(stripSeparators(raw)),
		ByteCount: len(data),
		Readings:  readings,
	}, nil
}

func decodeHex(input string) ([]byte, error) {
	clean := stripSeparators(input)
	if strings.HasPrefix(clean, "0X") || strings.HasPrefix(clean, "0x") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex payload must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func stripSeparators(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
