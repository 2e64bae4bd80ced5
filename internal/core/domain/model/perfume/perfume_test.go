package perfume_test

import (
	"testing"
	"time"

	"perfumery/internal/core/domain/model/perfume"
	"perfumery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bottledAt = time.Date(2026, time.February, 10, 9, 30, 0, 0, time.UTC)

func TestNewPerfume(t *testing.T) {
	t.Run("should bottle an available perfume with shelf life", func(t *testing.T) {
		p, err := perfume.NewPerfume("Nocturne", perfume.TypePerfume, 150, []int64{1, 2, 3}, bottledAt)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "Nocturne", p.Name())
		assert.Equal(t, perfume.TypePerfume, p.Type())
		assert.Equal(t, 150, p.NetVolumeMl())
		assert.Equal(t, perfume.Available, p.Status())
		assert.Equal(t, []int64{1, 2, 3}, p.SourcePlantIDs())
		assert.Equal(t, bottledAt.AddDate(0, 0, 365), p.ExpiresAt())
		assert.Empty(t, p.Serial())
	})

	t.Run("should not share the source id slice", func(t *testing.T) {
		ids := []int64{4, 5}
		p, err := perfume.NewPerfume("Nocturne", perfume.TypeCologne, 200, ids, bottledAt)
		require.NoError(t, err)

		ids[0] = 99
		got := p.SourcePlantIDs()
		got[1] = 98

		assert.Equal(t, []int64{4, 5}, p.SourcePlantIDs())
	})

	t.Run("should accept volume bounds", func(t *testing.T) {
		for _, ml := range []int{perfume.MinBottleVolumeMl, perfume.MaxBottleVolumeMl} {
			_, err := perfume.NewPerfume("Edge", perfume.TypePerfume, ml, []int64{1}, bottledAt)
			require.NoError(t, err)
		}
	})

	t.Run("should join every validation failure", func(t *testing.T) {
		p, err := perfume.NewPerfume("", perfume.UnknownType, 100, nil, time.Time{})

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "source plant ids")
	})
}

func TestPerfume_AssignID(t *testing.T) {
	t.Run("should issue serial from id and bottling year", func(t *testing.T) {
		p, _ := perfume.NewPerfume("Nocturne", perfume.TypePerfume, 150, []int64{1}, bottledAt)

		require.NoError(t, p.AssignID(31))

		assert.Equal(t, int64(31), p.ID())
		assert.Equal(t, "PP-2026-31", p.Serial())
	})

	t.Run("should refuse a different id once assigned", func(t *testing.T) {
		p, _ := perfume.NewPerfume("Nocturne", perfume.TypePerfume, 150, []int64{1}, bottledAt)
		require.NoError(t, p.AssignID(31))

		require.Error(t, p.AssignID(32))
		assert.Equal(t, "PP-2026-31", p.Serial())
	})

	t.Run("should refuse non positive ids", func(t *testing.T) {
		p, _ := perfume.NewPerfume("Nocturne", perfume.TypePerfume, 150, []int64{1}, bottledAt)

		require.Error(t, p.AssignID(0))
	})
}

func TestPerfume_Reserve(t *testing.T) {
	p, _ := perfume.NewPerfume("Nocturne", perfume.TypePerfume, 150, []int64{1}, bottledAt)

	require.NoError(t, p.Reserve())
	assert.Equal(t, perfume.Reserved, p.Status())

	require.ErrorIs(t, p.Reserve(), errs.ErrValueIsInvalid)
}

func TestRestorePerfume(t *testing.T) {
	expires := bottledAt.AddDate(1, 0, 0)

	p, err := perfume.RestorePerfume(7, "Aube", perfume.TypeCologne, 250, "PP-2026-7", []int64{9}, perfume.Reserved, bottledAt, expires)

	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID())
	assert.Equal(t, "PP-2026-7", p.Serial())
	assert.Equal(t, perfume.Reserved, p.Status())
	assert.Equal(t, expires, p.ExpiresAt())
}

func TestParseType(t *testing.T) {
	got, err := perfume.ParseType("cologne")
	require.NoError(t, err)
	assert.Equal(t, perfume.TypeCologne, got)
	assert.Equal(t, "COLOGNE", got.String())

	_, err = perfume.ParseType("eau de toilette")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
