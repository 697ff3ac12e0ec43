package stats_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anglerlog/anglerlog/internal/domain"
	"github.com/anglerlog/anglerlog/internal/stats"
)

func fingerprintFixture() []domain.Trip {
	d := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Trip{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Date: &d, UpdatedAt: d},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), UpdatedAt: d},
	}
}

func TestFingerprint_StableForSameContent(t *testing.T) {
	trips := fingerprintFixture()

	assert.Equal(t, stats.Fingerprint(trips), stats.Fingerprint(trips))
}

func TestFingerprint_ChangesOnEdit(t *testing.T) {
	trips := fingerprintFixture()
	before := stats.Fingerprint(trips)

	trips[0].UpdatedAt = trips[0].UpdatedAt.Add(time.Second)

	assert.NotEqual(t, before, stats.Fingerprint(trips))
}

func TestFingerprint_ChangesOnInsertAndDelete(t *testing.T) {
	trips := fingerprintFixture()
	before := stats.Fingerprint(trips)

	assert.NotEqual(t, before, stats.Fingerprint(trips[:1]))
	assert.NotEqual(t, before, stats.Fingerprint(append(trips, domain.Trip{ID: uuid.New()})))
}

func TestSnapshotCache_HitAndMiss(t *testing.T) {
	var c stats.SnapshotCache[int]

	_, ok := c.Get(1)
	require.False(t, ok)

	c.Put(1, 42)

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, 42, got)

	_, ok = c.Get(2)
	assert.False(t, ok, "a different key must miss")
}

func TestSnapshotCache_Invalidate(t *testing.T) {
	var c stats.SnapshotCache[string]
	c.Put(7, "cached")

	c.Invalidate()

	_, ok := c.Get(7)
	assert.False(t, ok)
}
