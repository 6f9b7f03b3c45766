package serviceImp

import (
	"errors"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"garden/entities"
	"garden/pkg/plant/repositoryImp"
	"garden/pkg/plant/service"
)

func newTestService(t *testing.T) service.PlantService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.Plant{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return New(repositoryImp.New(db))
}

func intp(v int) *int { return &v }

func todayStr() string { return time.Now().Format("2006-01-02") }

func TestCreateDerivesBedLocationAndLastWatered(t *testing.T) {
	svc := newTestService(t)
	p, err := svc.Create(service.PlantInput{Name: "Tomato", BedRow: intp(1), BedCol: intp(2)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Location != "Bed 6" {
		t.Fatalf("expected location Bed 6, got %q", p.Location)
	}
	if p.LastWatered != todayStr() {
		t.Fatalf("expected last_watered %s, got %s", todayStr(), p.LastWatered)
	}
}

func TestCreateKeepsCallerLocationWithoutFullBedPair(t *testing.T) {
	svc := newTestService(t)
	p, err := svc.Create(service.PlantInput{Name: "Fern", Location: "Windowsill", BedRow: intp(1)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Location != "Windowsill" {
		t.Fatalf("expected caller location kept, got %q", p.Location)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Create(service.PlantInput{Name: "   "}); !errors.Is(err, service.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := svc.Create(service.PlantInput{Name: "Bean", BedRow: intp(3), BedCol: intp(0)}); !errors.Is(err, service.ErrBedOutOfRange) {
		t.Fatalf("expected ErrBedOutOfRange, got %v", err)
	}
	if _, err := svc.Create(service.PlantInput{Name: "Bean", BedRow: intp(0), BedCol: intp(-1)}); !errors.Is(err, service.ErrBedOutOfRange) {
		t.Fatalf("expected ErrBedOutOfRange, got %v", err)
	}
}

func TestCreateGetRoundTrip(t *testing.T) {
	svc := newTestService(t)
	area := &entities.PlantingArea{X: 10, Y: 10, Width: 50, Height: 25}
	created, err := svc.Create(service.PlantInput{
		Name:              "Pepper",
		Type:              "pepper",
		PlantedDate:       "2026-05-01",
		WateringFrequency: "Every 3 days",
		BedRow:            intp(0),
		BedCol:            intp(1),
		PlantingArea:      area,
		ScientificName:    "Capsicum annuum",
		PerenualID:        intp(42),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Pepper" || got.Type != "pepper" || got.PlantedDate != "2026-05-01" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Location != "Bed 2" {
		t.Fatalf("expected Bed 2, got %q", got.Location)
	}
	if got.PlantingArea == nil || got.PlantingArea.Width != 50 {
		t.Fatalf("planting area lost: %+v", got.PlantingArea)
	}
	if got.ScientificName != "Capsicum annuum" || got.PerenualID == nil || *got.PerenualID != 42 {
		t.Fatalf("metadata lost: %+v", got)
	}
}

func TestUpdateOverwritesButKeepsLastWatered(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.Create(service.PlantInput{Name: "Lettuce", Type: "lettuce", WateringFrequency: "daily"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = svc.Update(created.ID, service.PlantInput{Name: "Romaine", BedRow: intp(2), BedCol: intp(0)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Romaine" || got.Location != "Bed 7" {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.Type != "" || got.WateringFrequency != "" {
		t.Fatalf("full overwrite should clear omitted fields: %+v", got)
	}
	if got.LastWatered != created.LastWatered {
		t.Fatalf("last_watered must survive update: %q vs %q", got.LastWatered, created.LastWatered)
	}
}

func TestWaterTouchesOnlyLastWatered(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.Create(service.PlantInput{Name: "Mint", Type: "mint"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Water(created.ID); err != nil {
		t.Fatalf("water: %v", err)
	}
	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.LastWatered != todayStr() {
		t.Fatalf("expected last_watered today, got %q", got.LastWatered)
	}
	if got.Name != "Mint" || got.Type != "mint" {
		t.Fatalf("water must not touch other fields: %+v", got)
	}
}

func TestMutationsOnUnknownIDAreNoOps(t *testing.T) {
	svc := newTestService(t)
	if err := svc.Update(9999, service.PlantInput{Name: "Ghost"}); err != nil {
		t.Fatalf("update unknown id: %v", err)
	}
	if err := svc.Water(9999); err != nil {
		t.Fatalf("water unknown id: %v", err)
	}
	if err := svc.Delete(9999); err != nil {
		t.Fatalf("delete unknown id: %v", err)
	}
	plants, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(plants) != 0 {
		t.Fatalf("no-op mutations must not create records, got %d", len(plants))
	}
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestService(t)
	for _, name := range []string{"First", "Second", "Third"} {
		if _, err := svc.Create(service.PlantInput{Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	plants, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(plants) != 3 || plants[0].Name != "Third" || plants[2].Name != "First" {
		t.Fatalf("expected id DESC ordering, got %+v", plants)
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	svc := newTestService(t)
	created, err := svc.Create(service.PlantInput{Name: "Tulip"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(created.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record gone, got %v", err)
	}
}
