package stream_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuanswe/streamkit/stream"
	"testing"
)

func TestParseStrategy(t *testing.T) {
	for _, s := range strategies {
		parsed, err := stream.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	parsed, err := stream.ParseStrategy("OWN-BUFFERING")
	require.NoError(t, err)
	assert.Equal(t, stream.OwnBuffering, parsed)

	_, err = stream.ParseStrategy("zero-copy")
	assert.Error(t, err)
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "bytewise", stream.Bytewise.String())
	assert.Equal(t, "Strategy(42)", stream.Strategy(42).String())
}
