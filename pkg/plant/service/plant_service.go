package service

import (
	"errors"

	"garden/entities"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrBedOutOfRange = errors.New("bed_row and bed_col must be between 0 and 2")
)

// PlantInput carries every caller-settable field for create and update.
type PlantInput struct {
	Name              string
	Type              string
	PlantedDate       string
	Location          string
	WateringFrequency string
	BedRow            *int
	BedCol            *int
	PlantingArea      *entities.PlantingArea

	ScientificName string
	Sunlight       string
	WateringNeeds  string
	Cycle          string
	HardinessZones string
	Description    string
	PerenualID     *int
}

type PlantService interface {
	List() ([]entities.Plant, error)
	Get(id uint) (*entities.Plant, error)
	Create(in PlantInput) (*entities.Plant, error)
	Update(id uint, in PlantInput) error
	Water(id uint) error
	Delete(id uint) error
}
