package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	alu, err := Lookup("Aluminium")
	require.NoError(t, err)
	assert.Equal(t, 160.0, alu.FyMPa)
	assert.Equal(t, 70000.0, alu.EMPa)

	steel, err := Lookup("Steel")
	require.NoError(t, err)
	assert.Equal(t, 275.0, steel.FyMPa)
	assert.Equal(t, 210000.0, steel.EMPa)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("Timber")
	assert.ErrorIs(t, err, ErrInvalidMaterial)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"Aluminium", "Steel"}, Names())
}
