package entities

import (
	"bytes"
	"encoding/json"
	"time"
)

type Plant struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	Name              string        `json:"name"`
	Type              string        `json:"type"`
	PlantedDate       string        `json:"planted_date"`       // YYYY-MM-DD
	Location          string        `json:"location"`           // "Bed N" when bed coords are set
	WateringFrequency string        `json:"watering_frequency"` // free text, e.g. "Every 3 days"
	LastWatered       string        `json:"last_watered"`       // YYYY-MM-DD
	BedRow            *int          `json:"bed_row"`            // 0..2
	BedCol            *int          `json:"bed_col"`            // 0..2
	PlantingArea      *PlantingArea `json:"planting_area" gorm:"serializer:json"`

	// Metadata pass-through (Perenual enrichment), stored as-is.
	ScientificName string `json:"scientific_name"`
	Sunlight       string `json:"sunlight"`
	WateringNeeds  string `json:"watering_needs"`
	Cycle          string `json:"cycle"`
	HardinessZones string `json:"hardiness_zones"`
	Description    string `json:"description"`
	PerenualID     *int   `json:"perenual_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBed reports whether the plant has a complete bed coordinate pair.
func (p *Plant) HasBed() bool { return p.BedRow != nil && p.BedCol != nil }

// PlantingArea is a rectangle inside a bed, in percent coordinates.
type PlantingArea struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// UnmarshalJSON accepts either an object or the legacy form where the
// client sends the rectangle pre-serialized as a JSON string.
func (a *PlantingArea) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var inner string
		if err := json.Unmarshal(b, &inner); err != nil {
			return err
		}
		b = []byte(inner)
	}
	type alias PlantingArea
	var v alias
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*a = PlantingArea(v)
	return nil
}
