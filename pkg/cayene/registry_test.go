package cayene

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRegistryBuiltins(t *testing.T) {
	r := NewRegistry()
	td, ok := r.Lookup(TypeTemperature)
	require.True(t, ok)
	require.Equal(t, "Temperature", td.Name)
	require.Equal(t, 2, td.Width)
	require.True(t, td.Builtin)
	require.NotNil(t, td.Decode)

	td, ok = r.Lookup(TypeGPS)
	require.True(t, ok)
	require.Equal(t, 9, td.Width)

	_, ok = r.Lookup(0xFF)
	require.False(t, ok)
}

func TestRegisterFirstWins(t *testing.T) {
	r := NewRegistry()
	require.True(t, r.Register(0x0C, "Voltage", 2, unsignedBE))
	require.False(t, r.Register(0x0C, "Current", 2, unsignedBE))

	td, ok := r.Lookup(0x0C)
	require.True(t, ok)
	require.Equal(t, "Voltage", td.Name)
	require.False(t, td.Builtin)
}

func TestRegisterRejectsBuiltinID(t *testing.T) {
	r := NewRegistry()
	require.False(t, r.Register(TypeTemperature, "Not Temperature", 4, unsignedBE))
	td, _ := r.Lookup(TypeTemperature)
	require.Equal(t, "Temperature", td.Name)
}

func TestRegisterRejectsMalformedDescriptor(t *testing.T) {
	r := NewRegistry()
	require.False(t, r.Register(0x0C, "", 2, unsignedBE))
	require.False(t, r.Register(0x0C, "Voltage", 0, unsignedBE))
	require.False(t, r.Register(0x0C, "Voltage", 2, nil))
	_, ok := r.Lookup(0x0C)
	require.False(t, ok)
}

func TestTypesSortedSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Register(0x0C, "Voltage", 2, unsignedBE)
	types := r.Types()
	require.Len(t, types, 13)
	for i := 1; i < len(types); i++ {
		require.Less(t, types[i-1].ID, types[i].ID)
	}
}
