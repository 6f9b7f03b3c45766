package layout

import (
	"testing"

	"garden/entities"
)

func intp(v int) *int { return &v }

func TestGridBuckets(t *testing.T) {
	plants := []entities.Plant{
		{ID: 1, Name: "Tomato", Type: "tomato", BedRow: intp(0), BedCol: intp(0)},
		{ID: 2, Name: "Basil", Type: "basil", BedRow: intp(0), BedCol: intp(0)},
		{ID: 3, Name: "Rowless", BedCol: intp(1)},
		{ID: 4, Name: "Colless", BedRow: intp(1)},
		{ID: 5, Name: "Corner", Type: "pea", BedRow: intp(2), BedCol: intp(2)},
	}
	grid := Grid(plants)

	if n := len(grid[0][0].Plants); n != 2 {
		t.Fatalf("expected 2 plants in bed (0,0), got %d", n)
	}
	if grid[0][0].Plants[0].Icon != "🍅" {
		t.Fatalf("expected tomato icon, got %q", grid[0][0].Plants[0].Icon)
	}
	if n := len(grid[2][2].Plants); n != 1 || grid[2][2].Plants[0].ID != 5 {
		t.Fatalf("unexpected bed (2,2): %+v", grid[2][2].Plants)
	}

	total := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			total += len(grid[r][c].Plants)
		}
	}
	if total != 3 {
		t.Fatalf("plants with an incomplete coordinate pair must not be placed; placed %d", total)
	}
}

func TestGridSkipsOutOfRangeCoordinates(t *testing.T) {
	plants := []entities.Plant{
		{ID: 1, Name: "Legacy", BedRow: intp(5), BedCol: intp(0)},
		{ID: 2, Name: "Negative", BedRow: intp(-1), BedCol: intp(1)},
	}
	grid := Grid(plants)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if len(grid[r][c].Plants) != 0 {
				t.Fatalf("bed (%d,%d) should be empty", r, c)
			}
		}
	}
}

func TestGridCarriesPlantingArea(t *testing.T) {
	area := &entities.PlantingArea{X: 10, Y: 20, Width: 30, Height: 40}
	plants := []entities.Plant{
		{ID: 1, Name: "Marked", BedRow: intp(1), BedCol: intp(1), PlantingArea: area},
		{ID: 2, Name: "Unmarked", BedRow: intp(1), BedCol: intp(1)},
	}
	grid := Grid(plants)
	bed := grid[1][1]
	if len(bed.Plants) != 2 {
		t.Fatalf("expected 2 plants, got %d", len(bed.Plants))
	}
	if bed.Plants[0].Area == nil || bed.Plants[0].Area.Width != 30 {
		t.Fatalf("expected area passthrough, got %+v", bed.Plants[0].Area)
	}
	if bed.Plants[1].Area != nil {
		t.Fatalf("expected nil area for unmarked plant")
	}
}
