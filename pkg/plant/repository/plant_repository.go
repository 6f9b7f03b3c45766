package repository

import "garden/entities"

type PlantRepository interface {
	ListAll() ([]entities.Plant, error)
	FindByID(id uint) (*entities.Plant, error)
	Create(p *entities.Plant) error
	// Update overwrites the mutable columns of the row with id, leaving
	// last_watered alone. Unknown ids are a silent no-op.
	Update(id uint, p *entities.Plant) error
	SetLastWatered(id uint, date string) error
	Delete(id uint) error
}
