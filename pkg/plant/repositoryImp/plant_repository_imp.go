package repositoryImp

import (
	"garden/entities"
	"garden/pkg/plant/repository"
	"gorm.io/gorm"
)

type plantRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantRepository { return &plantRepo{db} }

func (r *plantRepo) ListAll() ([]entities.Plant, error) {
	var out []entities.Plant
	if err := r.db.Order("id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *plantRepo) FindByID(id uint) (*entities.Plant, error) {
	var p entities.Plant
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantRepo) Create(p *entities.Plant) error { return r.db.Create(p).Error }

// mutable is every column the update endpoint overwrites. last_watered
// is deliberately not here.
var mutable = []string{
	"name", "type", "planted_date", "location", "watering_frequency",
	"bed_row", "bed_col", "planting_area",
	"scientific_name", "sunlight", "watering_needs", "cycle",
	"hardiness_zones", "description", "perenual_id",
}

func (r *plantRepo) Update(id uint, p *entities.Plant) error {
	return r.db.Model(&entities.Plant{}).Where("id = ?", id).Select(mutable).Updates(p).Error
}

func (r *plantRepo) SetLastWatered(id uint, date string) error {
	return r.db.Model(&entities.Plant{}).Where("id = ?", id).Update("last_watered", date).Error
}

func (r *plantRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Plant{}, id).Error
}
