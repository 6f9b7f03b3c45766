package layout

import (
	"garden/entities"
	"garden/pkg/icons"
)

// Size is the fixed side of the bed grid; each bed is a 4x8 ft plot.
const Size = 3

type BedPlant struct {
	ID   uint                   `json:"id"`
	Name string                 `json:"name"`
	Icon string                 `json:"icon"`
	Area *entities.PlantingArea `json:"area"` // nil = no area marked
}

type Bed struct {
	Row    int        `json:"row"`
	Col    int        `json:"col"`
	Plants []BedPlant `json:"plants"`
}

// Grid buckets plants into the 3x3 bed grid. A plant needs both
// coordinates to place; coordinates outside the grid (legacy rows) are
// skipped the same as missing ones.
func Grid(plants []entities.Plant) [Size][Size]Bed {
	var grid [Size][Size]Bed
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			grid[r][c] = Bed{Row: r, Col: c}
		}
	}
	for _, p := range plants {
		if !p.HasBed() {
			continue
		}
		r, c := *p.BedRow, *p.BedCol
		if r < 0 || r >= Size || c < 0 || c >= Size {
			continue
		}
		grid[r][c].Plants = append(grid[r][c].Plants, BedPlant{
			ID:   p.ID,
			Name: p.Name,
			Icon: icons.ForType(p.Type),
			Area: p.PlantingArea,
		})
	}
	return grid
}
