package cayene

import "encoding/binary"

// Standard Cayenne LPP type identifiers.
const (
	TypeDigitalInput  = 0x00
	TypeDigitalOutput = 0x01
	TypeAnalogInput   = 0x02
	TypeAnalogOutput  = 0x03
	TypeLuminosity    = 0x65
	TypePresence      = 0x66
	TypeTemperature   = 0x67
	TypeHumidity      = 0x68
	TypeAccelerometer = 0x71
	TypeBarometer     = 0x73
	TypeGyrometer     = 0x86
	TypeGPS           = 0x88
)

var builtinTypes = []TypeDescriptor{
	{ID: TypeDigitalInput, Name: "Digital Input", Width: 1, Builtin: true, Decode: decodeRawByte},
	{ID: TypeDigitalOutput, Name: "Digital Output", Width: 1, Builtin: true, Decode: decodeRawByte},
	{ID: TypeAnalogInput, Name: "Analog Input", Width: 2, Builtin: true, Decode: decodeScaledInt16(100)},
	{ID: TypeAnalogOutput, Name: "Analog Output", Width: 2, Builtin: true, Decode: decodeScaledInt16(100)},
	{ID: TypeLuminosity, Name: "Luminosity", Width: 2, Builtin: true, Decode: decodeUint16},
	{ID: TypePresence, Name: "Presence", Width: 1, Builtin: true, Decode: decodeRawByte},
	{ID: TypeTemperature, Name: "Temperature", Width: 2, Builtin: true, Decode: decodeScaledInt16(10)},
	{ID: TypeHumidity, Name: "Humidity", Width: 2, Builtin: true, Decode: decodeScaledUint16(10)},
	{ID: TypeAccelerometer, Name: "Accelerometer", Width: 6, Builtin: true, Decode: decodeAccelerometer},
	{ID: TypeBarometer, Name: "Barometer", Width: 2, Builtin: true, Decode: decodeScaledUint16(10)},
	{ID: TypeGyrometer, Name: "Gyrometer", Width: 2, Builtin: true, Decode: decodeScaledInt16(100)},
	{ID: TypeGPS, Name: "GPS", Width: 9, Builtin: true, Decode: decodeGPS},
}

func decodeRawByte(data []byte) Value {
	return Unsigned(data[0])
}

func decodeUint16(data []byte) Value {
	return Unsigned(binary.BigEndian.Uint16(data))
}

func decodeScaledInt16(scale float64) DecodeFunc {
	return func(data []byte) Value {
		return Decimal(float64(int16(binary.BigEndian.Uint16(data))) / scale)
	}
}

func decodeScaledUint16(scale float64) DecodeFunc {
	return func(data []byte) Value {
		return Decimal(float64(binary.BigEndian.Uint16(data)) / scale)
	}
}

func decodeAccelerometer(data []byte) Value {
	return Vector{
		X: float64(int16(binary.BigEndian.Uint16(data[0:2]))) / 1000,
		Y: float64(int16(binary.BigEndian.Uint16(data[2:4]))) / 1000,
		Z: float64(int16(binary.BigEndian.Uint16(data[4:6]))) / 1000,
	}
}

func decodeGPS(data []byte) Value {
	return Location{
		Latitude:  float64(int24BE(data[0:3])) / 10000,
		Longitude: float64(int24BE(data[3:6])) / 10000,
		Altitude:  float64(int24BE(data[6:9])) / 100,
	}
}

// int24BE reads a big-endian two's-complement 24-bit integer, a wire
// width with no native Go counterpart.
func int24BE(b []byte) int64 {
	v := int64(b[0])<<16 | int64(b[1])<<8 | int64(b[2])
	if v > 0x7FFFFF {
		v -= 1 << 24
	}
	return v
}

// unsignedBE reads up to 8 bytes as a big-endian unsigned integer. It
// backs the default decode behavior of caller-registered types.
func unsignedBE(data []byte) Value {
	var v uint64
	for _, b := range data {
		v = v<<8 | uint64(b)
	}
	return Unsigned(v)
}

// signedBE reads up to 8 bytes as a big-endian two's-complement signed
// integer.
func signedBE(data []byte) int64 {
	var v uint64
	for _, b := range data {
		v = v<<8 | uint64(b)
	}
	bits := uint(len(data)) * 8
	if bits < 64 && v >= 1<<(bits-1) {
		return int64(v) - int64(1)<<bits
	}
	return int64(v)
}
