package cayene

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeHex(t *testing.T) {
	decoder := NewDecoder()
	result, err := decoder.DecodeHex(" |01_67 0190| ")
	require.NoError(t, err)
	require.Equal(t, 4, result.ByteCount)
	require.Equal(t, Decimal(40.0), result.Readings["Temperature_1"])
}

func TestDecodeHexPrefix(t *testing.T) {
	decoder := NewDecoder()
	result, err := decoder.DecodeHex("0x01670190")
	require.NoError(t, err)
	require.Equal(t, 4, result.ByteCount)
}

func TestDecodeHexOddLength(t *testing.T) {
	decoder := NewDecoder()
	_, err := decoder.DecodeHex("ABC")
	require.Error(t, err)
}

func TestDecodeHexBadPayload(t *testing.T) {
	decoder := NewDecoder()
	_, err := decoder.DecodeHex("01FF00")
	require.ErrorIs(t, err, ErrUnknownDataType)
}

func TestAddDataType(t *testing.T) {
	decoder := NewDecoder()
	require.True(t, decoder.AddDataType(0x0C, "Counter", 3))
	require.False(t, decoder.AddDataType(0x0C, "Counter", 3))
	require.False(t, decoder.AddDataType(0x0D, "Too Wide", 9))
	require.False(t, decoder.AddDataType(TypeTemperature, "Clash", 2))

	decoded, err := decoder.Decode([]byte{0x01, 0x0C, 0x01, 0x00, 0x02})
	require.NoError(t, err)
	require.Equal(t, Unsigned(0x010002), decoded["Counter_1"])
}

func TestRegisterDataType(t *testing.T) {
	decoder := NewDecoder()
	ok := decoder.RegisterDataType(0x0E, "Battery", 1, func(data []byte) Value {
		return Decimal(float64(data[0]) / 2)
	})
	require.True(t, ok)

	decoded, err := decoder.Decode([]byte{0x04, 0x0E, 0xC9})
	require.NoError(t, err)
	require.Equal(t, Decimal(100.5), decoded["Battery_4"])
}

func TestNewDecoderWithOptionsTypesFile(t *testing.T) {
	decoder, err := NewDecoderWithOptions(Options{
		TypesFile: filepath.Join("testdata", "exttypes.yaml"),
	})
	require.NoError(t, err)

	// Voltage: signed 16-bit, scale 100.
	decoded, err := decoder.Decode([]byte{0x01, 0x0C, 0xFF, 0x38})
	require.NoError(t, err)
	require.Equal(t, Decimal(-2.0), decoded["Voltage_1"])

	// Pulse Count: unsigned, scale 1, stays integral.
	decoded, err = decoder.Decode([]byte{0x02, 0x0D, 0x00, 0x00, 0x03, 0xE8})
	require.NoError(t, err)
	require.Equal(t, Unsigned(1000), decoded["Pulse Count_2"])

	// Energy: unsigned with scale, becomes decimal.
	decoded, err = decoder.Decode([]byte{0x03, 0x0E, 0x30, 0x39})
	require.NoError(t, err)
	require.Equal(t, Decimal(12.345), decoded["Energy_3"])
}

func TestNewDecoderWithOptionsMissingFile(t *testing.T) {
	_, err := NewDecoderWithOptions(Options{TypesFile: filepath.Join("testdata", "nope.yaml")})
	require.Error(t, err)
}

func TestResultString(t *testing.T) {
	decoder := NewDecoder()
	result, err := decoder.DecodeHex("01670190")
	require.NoError(t, err)
	rendered := result.String()
	require.Contains(t, rendered, "Temperature_1")
	require.Contains(t, rendered, "\"byte_count\": 4")
}
