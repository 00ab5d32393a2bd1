// Package store contains all activity data access for the commute stats
// application. No business logic lives here, only decoding and validation:
// raw JSON records become typed domain.Activity values exactly once, at this
// boundary, so nothing downstream ever touches an unvalidated field.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pkordes/commute-stats/internal/domain"
)

// startDateLayout is the upstream timestamp format: ISO-8601 UTC with
// second precision and a literal Z suffix.
const startDateLayout = "2006-01-02T15:04:05Z"

// rawActivity mirrors one upstream JSON record. Required fields are
// pointers so a missing key is distinguishable from a zero value; optional
// fields default silently.
type rawActivity struct {
	ID          *int64   `json:"id"`
	StartDate   *string  `json:"start_date"`
	Distance    *float64 `json:"distance"`
	MovingTime  *int     `json:"moving_time"`
	ElapsedTime *int     `json:"elapsed_time"`
	Commute     *bool    `json:"commute"`

	Type               string  `json:"type"`
	TotalElevationGain float64 `json:"total_elevation_gain"`
	KudosCount         int     `json:"kudos_count"`
	TotalPhotoCount    int     `json:"total_photo_count"`
}

// FileStore reads the activity history from a pre-fetched local JSON file.
type FileStore struct {
	path string
}

// NewFileStore constructs a FileStore reading from path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and validates the full activity list. An unreadable file or
// any malformed record is fatal; there is nothing transient about reading
// a local file, so no retry.
func (s *FileStore) Load() ([]domain.Activity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("store.FileStore.Load: %w", err)
	}

	activities, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("store.FileStore.Load: %w", err)
	}
	return activities, nil
}

// Parse decodes a JSON array of activity records, validating each one.
// Decoding stops at the first malformed record: a missing required field or
// a contract-violating value wraps domain.ErrMalformedRecord.
// An empty array yields an empty slice, never an error.
func Parse(data []byte) ([]domain.Activity, error) {
	var raw []rawActivity
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("store.Parse: %w", err)
	}

	activities := make([]domain.Activity, 0, len(raw))
	for i, r := range raw {
		a, err := r.validate()
		if err != nil {
			return nil, fmt.Errorf("store.Parse: record %d: %w", i, err)
		}
		activities = append(activities, a)
	}
	return activities, nil
}

// validate checks one raw record against the data contract and converts it.
func (r rawActivity) validate() (domain.Activity, error) {
	required := []struct {
		name    string
		missing bool
	}{
		{"id", r.ID == nil},
		{"start_date", r.StartDate == nil},
		{"distance", r.Distance == nil},
		{"moving_time", r.MovingTime == nil},
		{"elapsed_time", r.ElapsedTime == nil},
		{"commute", r.Commute == nil},
	}
	for _, f := range required {
		if f.missing {
			return domain.Activity{}, fmt.Errorf("%w: missing field %q", domain.ErrMalformedRecord, f.name)
		}
	}

	start, err := time.Parse(startDateLayout, *r.StartDate)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("%w: bad start_date %q", domain.ErrMalformedRecord, *r.StartDate)
	}

	switch {
	case *r.Distance < 0:
		return domain.Activity{}, fmt.Errorf("%w: negative distance", domain.ErrMalformedRecord)
	case *r.MovingTime < 0:
		return domain.Activity{}, fmt.Errorf("%w: negative moving_time", domain.ErrMalformedRecord)
	case *r.ElapsedTime < *r.MovingTime:
		return domain.Activity{}, fmt.Errorf("%w: elapsed_time %d < moving_time %d",
			domain.ErrMalformedRecord, *r.ElapsedTime, *r.MovingTime)
	}

	return domain.Activity{
		ID:                 *r.ID,
		StartDate:          start.UTC(),
		Distance:           *r.Distance,
		MovingTime:         *r.MovingTime,
		ElapsedTime:        *r.ElapsedTime,
		Commute:            *r.Commute,
		Type:               r.Type,
		TotalElevationGain: r.TotalElevationGain,
		KudosCount:         r.KudosCount,
		TotalPhotoCount:    r.TotalPhotoCount,
	}, nil
}
