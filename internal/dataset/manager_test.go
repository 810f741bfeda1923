package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitManager(t *testing.T) {
	cfg := fixtureConfig(t, fixturePath(t, "bankruptcy_sample.zip"))

	manager, err := InitManager(context.Background(), cfg)
	require.NoError(t, err)
	defer manager.Shutdown()

	assert.Equal(t, []int{1, 2}, manager.Horizons())
	assert.False(t, manager.LastUpdated().IsZero())

	table, err := manager.Table(1)
	require.NoError(t, err)
	assert.Equal(t, 10, table.NumSamples())
	assert.Equal(t, 4, table.NumFeatures())
	assert.Equal(t, 3, table.BankruptCount())

	table, err = manager.Table(2)
	require.NoError(t, err)
	assert.Equal(t, 6, table.NumSamples())
	assert.Equal(t, 2, table.BankruptCount())

	_, err = manager.Table(9)
	assert.Error(t, err)
}

func TestInitManager_ImportsSamples(t *testing.T) {
	cfg := fixtureConfig(t, fixturePath(t, "bankruptcy_sample.zip"))

	manager, err := InitManager(context.Background(), cfg)
	require.NoError(t, err)
	defer manager.Shutdown()

	ctx := context.Background()

	count, err := manager.DB.SampleCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)

	bankrupt, err := manager.DB.LabelCount(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), bankrupt)

	horizons, err := manager.DB.Horizons(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, horizons)
}

func TestInitManager_Idempotent(t *testing.T) {
	cfg := fixtureConfig(t, fixturePath(t, "bankruptcy_sample.zip"))

	first, err := InitManager(context.Background(), cfg)
	require.NoError(t, err)
	first.Shutdown()

	// Second run reuses the already provisioned directory.
	second, err := InitManager(context.Background(), cfg)
	require.NoError(t, err)
	defer second.Shutdown()

	table, err := second.Table(1)
	require.NoError(t, err)
	assert.Equal(t, 10, table.NumSamples())
}
