package plant_test

import (
	"testing"

	"perfumery/internal/core/domain/model/plant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	t.Run("should name statuses in upper case", func(t *testing.T) {
		assert.Equal(t, "PLANTED", plant.Planted.String())
		assert.Equal(t, "HARVESTED", plant.Harvested.String())
		assert.Equal(t, "PROCESSED", plant.Processed.String())
		assert.Equal(t, "UNKNOWN", plant.Status(42).String())
	})

	t.Run("should validate range", func(t *testing.T) {
		require.Error(t, plant.Unknown.Validate())
		require.Error(t, plant.Status(9).Validate())
		require.NoError(t, plant.Processed.Validate())
	})

	t.Run("harvest is allowed only from planted", func(t *testing.T) {
		next, err := plant.Planted.Harvest()
		require.NoError(t, err)
		assert.Equal(t, plant.Harvested, next)

		for _, s := range []plant.Status{plant.Harvested, plant.Processed, plant.Unknown} {
			_, err = s.Harvest()
			require.Error(t, err, s.String())
		}
	})

	t.Run("process is allowed from every valid status", func(t *testing.T) {
		for _, s := range []plant.Status{plant.Planted, plant.Harvested, plant.Processed} {
			next, err := s.Process()
			require.NoError(t, err)
			assert.Equal(t, plant.Processed, next)
		}

		_, err := plant.Unknown.Process()
		require.Error(t, err)
	})
}
