package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalTeamNumber(t *testing.T) {
	require.Equal(t, "1234A", CanonicalTeamNumber("1234a"))
	require.Equal(t, "1234A", CanonicalTeamNumber("  1234A\n"))
	require.Equal(t, "99", CanonicalTeamNumber("99"))
}

func TestIsTeamNumber(t *testing.T) {
	require.True(t, IsTeamNumber("1234a"))
	require.True(t, IsTeamNumber("8"))
	require.True(t, IsTeamNumber("12345B"))
	require.False(t, IsTeamNumber(""))
	require.False(t, IsTeamNumber("Robotics Club"))
	require.False(t, IsTeamNumber("1234AB"))
}

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "lincoln high", NormalizeName("  Lincoln\t High \n"))
}
