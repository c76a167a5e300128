package mqtt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	s := NewSample(3)
	require.False(t, s.Ready())
	require.False(t, s.Ready())
	require.True(t, s.Ready())
	require.False(t, s.Ready())
	require.False(t, s.Ready())
	require.True(t, s.Ready())
}
