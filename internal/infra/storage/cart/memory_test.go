package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_LoadMissingKey(t *testing.T) {
	s := NewMemoryStorage()

	data, err := s.Load(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryStorage_SaveCopiesData(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	payload := []byte(`[{"id":"1"}]`)
	require.NoError(t, s.Save(ctx, "k", payload))
	payload[0] = 'X'

	data, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))

	data[0] = 'Y'
	again, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(again))
}
