package pitch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculatePID(t *testing.T) {
	kp, ki, kd, err := CalculatePID(2.0, 10.0, 0, 0, 0, "ziegler-nichols")
	require.NoError(t, err)
	require.NotZero(t, kp)
	require.NotZero(t, ki)
	require.NotZero(t, kd)

	// classic is an alias
	_, _, _, err = CalculatePID(2.0, 10.0, 0, 0, 0, "classic")
	require.NoError(t, err)
}

func TestCalculatePIDUnknownAlgorithm(t *testing.T) {
	_, _, _, err := CalculatePID(2.0, 10.0, 0, 0, 0, "bogus")
	require.Error(t, err)
}
