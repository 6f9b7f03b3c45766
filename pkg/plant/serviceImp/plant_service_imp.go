package serviceImp

import (
	"fmt"
	"strings"
	"time"

	"garden/entities"
	repo "garden/pkg/plant/repository"
	"garden/pkg/plant/service"
)

type plantSvc struct{ r repo.PlantRepository }

func New(r repo.PlantRepository) service.PlantService { return &plantSvc{r} }

func (s *plantSvc) List() ([]entities.Plant, error) { return s.r.ListAll() }

func (s *plantSvc) Get(id uint) (*entities.Plant, error) { return s.r.FindByID(id) }

func (s *plantSvc) Create(in service.PlantInput) (*entities.Plant, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	p := fromInput(in)
	p.LastWatered = today()
	if err := s.r.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *plantSvc) Update(id uint, in service.PlantInput) error {
	if err := validate(in); err != nil {
		return err
	}
	// No existence check: updating an unknown id succeeds as a no-op.
	return s.r.Update(id, fromInput(in))
}

func (s *plantSvc) Water(id uint) error { return s.r.SetLastWatered(id, today()) }

func (s *plantSvc) Delete(id uint) error { return s.r.Delete(id) }

func validate(in service.PlantInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return service.ErrNameRequired
	}
	for _, v := range []*int{in.BedRow, in.BedCol} {
		if v != nil && (*v < 0 || *v > 2) {
			return service.ErrBedOutOfRange
		}
	}
	return nil
}

func fromInput(in service.PlantInput) *entities.Plant {
	p := &entities.Plant{
		Name:              in.Name,
		Type:              in.Type,
		PlantedDate:       in.PlantedDate,
		Location:          in.Location,
		WateringFrequency: in.WateringFrequency,
		BedRow:            in.BedRow,
		BedCol:            in.BedCol,
		PlantingArea:      in.PlantingArea,
		ScientificName:    in.ScientificName,
		Sunlight:          in.Sunlight,
		WateringNeeds:     in.WateringNeeds,
		Cycle:             in.Cycle,
		HardinessZones:    in.HardinessZones,
		Description:       in.Description,
		PerenualID:        in.PerenualID,
	}
	// A complete coordinate pair wins over any caller-supplied label.
	if p.HasBed() {
		p.Location = fmt.Sprintf("Bed %d", *p.BedRow*3 + *p.BedCol + 1)
	}
	return p
}

func today() string { return time.Now().Format("2006-01-02") }
