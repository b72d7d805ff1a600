package services

import (
	"sync"
	"time"

	"MedivaDesk/models"
)

// GenderSlice is one slice of the dashboard's gender distribution chart.
type GenderSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Recap is the dashboard summary over the full patient collection.
type Recap struct {
	TotalPatients      int           `json:"totalPatients"`
	MalePatients       int           `json:"malePatients"`
	FemalePatients     int           `json:"femalePatients"`
	GenderDistribution []GenderSlice `json:"genderDistribution"`
}

// BuildRecap computes the summary. Zero-valued categories are left out of
// the distribution so the chart never draws empty slices.
func BuildRecap(patients []models.Patient) Recap {
	r := Recap{TotalPatients: len(patients)}
	for _, p := range patients {
		switch p.Gender {
		case models.GenderMale:
			r.MalePatients++
		case models.GenderFemale:
			r.FemalePatients++
		}
	}
	for _, s := range []GenderSlice{
		{Name: models.GenderMale, Value: r.MalePatients},
		{Name: models.GenderFemale, Value: r.FemalePatients},
	} {
		if s.Value > 0 {
			r.GenderDistribution = append(r.GenderDistribution, s)
		}
	}
	return r
}

// RecapCache keeps the last computed recap so the dashboard can still show
// numbers when the storage API is unreachable. The daily job refreshes it.
type RecapCache struct {
	mu        sync.RWMutex
	recap     Recap
	updatedAt time.Time
	ok        bool
}

// Set replaces the cached recap.
func (c *RecapCache) Set(r Recap) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recap = r
	c.updatedAt = time.Now()
	c.ok = true
}

// Get returns the cached recap, when it was computed, and whether one has
// ever been stored.
func (c *RecapCache) Get() (Recap, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.recap, c.updatedAt, c.ok
}
