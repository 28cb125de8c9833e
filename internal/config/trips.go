package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

type tripsFile struct {
	Trips []models.Trip `yaml:"trips"`
}

// LoadTrips reads dashboard trips from a YAML file:
//
//	trips:
//	  - name: London to Paris
//	    query: {from: LOND, to: PARI, depart: "2026-12-01"}
//
// Trips without an id get a generated one. Every query is normalized and
// validated; the first invalid trip fails the whole file.
func LoadTrips(path string) ([]models.Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading trips file: %w", err)
	}

	var f tripsFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error decoding trips file: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Trips))
	for i := range f.Trips {
		trip := &f.Trips[i]
		if trip.ID == "" {
			trip.ID = uuid.NewString()
		}
		if _, dup := seen[trip.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate trip id %q", ErrInvalidTripsFile, trip.ID)
		}
		seen[trip.ID] = struct{}{}

		if trip.Name == "" {
			trip.Name = trip.Query.FromID + " → " + trip.Query.ToID
		}

		trip.Query = trip.Query.Normalize()
		if err = trip.Query.Validate(); err != nil {
			return nil, errors.Join(fmt.Errorf("%w: trip %q", ErrInvalidTripsFile, trip.Name), err)
		}
	}

	return f.Trips, nil
}
