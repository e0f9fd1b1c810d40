// Package cities serves the read-only city catalogue the API exposes.
package cities

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/clear-route/cityinfo-api/internal/config"
)

// ErrNotFound is returned when a city or point of interest does not exist.
var ErrNotFound = errors.New("not found")

type City struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description,omitempty"`
	NumberOfPOIs     int               `json:"numberOfPointsOfInterest"`
	PointsOfInterest []PointOfInterest `json:"pointsOfInterest,omitempty"`
}

type PointOfInterest struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Store holds the cities loaded at startup. It is never written after
// NewStore returns, so concurrent reads need no locking.
type Store struct {
	cities map[int]City
	ids    []int
}

func NewStore(seed []config.City) (*Store, error) {
	s := &Store{cities: make(map[int]City, len(seed))}

	for _, c := range seed {
		if _, ok := s.cities[c.ID]; ok {
			return nil, fmt.Errorf("duplicate city id %d", c.ID)
		}

		pois := make([]PointOfInterest, 0, len(c.PointsOfInterest))
		for _, p := range c.PointsOfInterest {
			pois = append(pois, PointOfInterest{ID: p.ID, Name: p.Name, Description: p.Description})
		}

		sort.Slice(pois, func(i, j int) bool { return pois[i].ID < pois[j].ID })

		s.cities[c.ID] = City{
			ID:               c.ID,
			Name:             c.Name,
			Description:      c.Description,
			NumberOfPOIs:     len(pois),
			PointsOfInterest: pois,
		}
		s.ids = append(s.ids, c.ID)
	}

	sort.Ints(s.ids)

	return s, nil
}

// List returns all cities ordered by id, without their points of interest.
// A non-empty name keeps only cities whose name matches it, ignoring case.
func (s *Store) List(name string) []City {
	out := make([]City, 0, len(s.ids))
	name = strings.TrimSpace(name)

	for _, id := range s.ids {
		c := s.cities[id]
		if name != "" && !strings.EqualFold(name, c.Name) {
			continue
		}

		c.PointsOfInterest = nil
		out = append(out, c)
	}

	return out
}

// Get returns the city with id, including its points of interest.
func (s *Store) Get(id int) (City, error) {
	c, ok := s.cities[id]
	if !ok {
		return City{}, fmt.Errorf("city %d: %w", id, ErrNotFound)
	}

	c.PointsOfInterest = append([]PointOfInterest(nil), c.PointsOfInterest...)

	return c, nil
}

func (s *Store) PointsOfInterest(cityID int) ([]PointOfInterest, error) {
	c, err := s.Get(cityID)
	if err != nil {
		return nil, err
	}

	if c.PointsOfInterest == nil {
		return []PointOfInterest{}, nil
	}

	return c.PointsOfInterest, nil
}

func (s *Store) PointOfInterest(cityID, poiID int) (PointOfInterest, error) {
	pois, err := s.PointsOfInterest(cityID)
	if err != nil {
		return PointOfInterest{}, err
	}

	for _, p := range pois {
		if p.ID == poiID {
			return p, nil
		}
	}

	return PointOfInterest{}, fmt.Errorf("point of interest %d in city %d: %w", poiID, cityID, ErrNotFound)
}

// Len returns the number of cities.
func (s *Store) Len() int {
	return len(s.ids)
}
