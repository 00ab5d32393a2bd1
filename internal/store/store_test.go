package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/commute-stats/internal/domain"
	"github.com/pkordes/commute-stats/internal/store"
)

// validRecord is one well-formed upstream activity record.
const validRecord = `{
	"id": 123456,
	"start_date": "2025-03-02T15:00:00Z",
	"distance": 5000.5,
	"moving_time": 1200,
	"elapsed_time": 1500,
	"commute": true,
	"type": "Ride",
	"total_elevation_gain": 42.5,
	"kudos_count": 3,
	"total_photo_count": 1
}`

// ---- Parse tests -----------------------------------------------------------

func TestParse_validRecord(t *testing.T) {
	activities, err := store.Parse([]byte("[" + validRecord + "]"))

	require.NoError(t, err)
	require.Len(t, activities, 1)

	a := activities[0]
	assert.EqualValues(t, 123456, a.ID)
	assert.Equal(t, time.Date(2025, 3, 2, 15, 0, 0, 0, time.UTC), a.StartDate)
	assert.Equal(t, 5000.5, a.Distance)
	assert.Equal(t, 1200, a.MovingTime)
	assert.Equal(t, 1500, a.ElapsedTime)
	assert.True(t, a.Commute)
	assert.Equal(t, "Ride", a.Type)
	assert.Equal(t, 42.5, a.TotalElevationGain)
	assert.Equal(t, 3, a.KudosCount)
	assert.Equal(t, 1, a.TotalPhotoCount)
}

func TestParse_emptyArray(t *testing.T) {
	activities, err := store.Parse([]byte(`[]`))

	require.NoError(t, err)
	assert.NotNil(t, activities)
	assert.Empty(t, activities)
}

func TestParse_optionalFieldsDefault(t *testing.T) {
	record := `[{
		"id": 1,
		"start_date": "2025-01-01T08:00:00Z",
		"distance": 0,
		"moving_time": 0,
		"elapsed_time": 0,
		"commute": false
	}]`

	activities, err := store.Parse([]byte(record))

	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Empty(t, activities[0].Type)
	assert.Zero(t, activities[0].TotalElevationGain)
	assert.Zero(t, activities[0].KudosCount)
}

func TestParse_missingRequiredField(t *testing.T) {
	// No "commute" key at all, as opposed to commute: false.
	record := `[{
		"id": 1,
		"start_date": "2025-01-01T08:00:00Z",
		"distance": 100,
		"moving_time": 60,
		"elapsed_time": 90
	}]`

	_, err := store.Parse([]byte(record))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
	assert.ErrorContains(t, err, `"commute"`)
}

func TestParse_badStartDate(t *testing.T) {
	// Offset timestamps are not the upstream format; only Z-suffixed UTC is accepted.
	record := `[{
		"id": 1,
		"start_date": "2025-01-01T08:00:00+02:00",
		"distance": 100,
		"moving_time": 60,
		"elapsed_time": 90,
		"commute": true
	}]`

	_, err := store.Parse([]byte(record))

	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestParse_negativeDistance(t *testing.T) {
	record := `[{
		"id": 1,
		"start_date": "2025-01-01T08:00:00Z",
		"distance": -5,
		"moving_time": 60,
		"elapsed_time": 90,
		"commute": true
	}]`

	_, err := store.Parse([]byte(record))

	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestParse_elapsedLessThanMoving(t *testing.T) {
	record := `[{
		"id": 1,
		"start_date": "2025-01-01T08:00:00Z",
		"distance": 100,
		"moving_time": 90,
		"elapsed_time": 60,
		"commute": true
	}]`

	_, err := store.Parse([]byte(record))

	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestParse_reportsRecordIndex(t *testing.T) {
	bad := `[` + validRecord + `, {"id": 2}]`

	_, err := store.Parse([]byte(bad))

	require.Error(t, err)
	assert.ErrorContains(t, err, "record 1")
}

func TestParse_notAnArray(t *testing.T) {
	_, err := store.Parse([]byte(`{"id": 1}`))

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrMalformedRecord)
}

// ---- FileStore tests -------------------------------------------------------

func TestFileStore_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, os.WriteFile(path, []byte("["+validRecord+"]"), 0o644))

	activities, err := store.NewFileStore(path).Load()

	require.NoError(t, err)
	assert.Len(t, activities, 1)
}

func TestFileStore_Load_missingFile(t *testing.T) {
	_, err := store.NewFileStore(filepath.Join(t.TempDir(), "nope.json")).Load()

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
