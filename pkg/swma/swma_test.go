package swma

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlidingWindow(t *testing.T) {
	s := NewSlidingWindow(4)

	require.Equal(t, 1.0, s.Add(4))
	require.Equal(t, 2.0, s.Add(4))
	require.Equal(t, 3.0, s.Add(4))
	require.Equal(t, 4.0, s.Add(4))

	// oldest value rolls off
	require.Equal(t, 5.0, s.Add(8))
	require.Equal(t, 5.0, s.Average())
}

func TestMax(t *testing.T) {
	s := NewSlidingWindow(3)
	s.Add(2)
	s.Add(9)
	s.Add(4)
	require.Equal(t, 9.0, s.Max())

	s.Add(1)
	s.Add(1)
	s.Add(1)
	require.Equal(t, 1.0, s.Max())
}

func TestReset(t *testing.T) {
	s := NewSlidingWindow(3)
	s.Add(6)
	s.Add(6)
	s.Reset()
	require.Equal(t, 0.0, s.Sum())
	require.Equal(t, 3, s.WindowSize())
	require.Equal(t, 2.0, s.Add(6))
}
