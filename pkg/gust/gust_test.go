package gust

import (
	"testing"

	"github.com/mikesmitty/breezy-boy/pkg/wind"
	"github.com/stretchr/testify/require"
)

func TestGustFilter(t *testing.T) {
	input := make(chan wind.Reading, 2)
	out, run := NewGustFilter(input)

	input <- wind.Reading{Speed: 60}
	input <- wind.Reading{Speed: 120}
	close(input)

	done := make(chan error, 1)
	go func() { done <- run() }()

	// window of 60 samples, so each reading adds 1/60th of its speed
	require.InDelta(t, 1.0, <-out, 1e-12)
	require.InDelta(t, 3.0, <-out, 1e-12)
	require.NoError(t, <-done)
}
