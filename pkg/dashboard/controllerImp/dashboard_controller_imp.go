package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"garden/entities"
	"garden/pkg/icons"
	"garden/pkg/layout"
	"garden/pkg/plant/service"
	"garden/pkg/schedule"
)

type DashboardCtrl struct{ s service.PlantService }

func New(s service.PlantService) *DashboardCtrl { return &DashboardCtrl{s} }

// PlantView is a plant plus the derived display fields the template needs.
type PlantView struct {
	entities.Plant
	DaysAgo string
	Icon    string
}

type viewData struct {
	Plants   []PlantView
	Beds     [layout.Size][layout.Size]layout.Bed
	Schedule []schedule.Entry
	Today    string
}

// Index renders the dashboard: plant cards, the 3x3 bed grid and the
// derived watering schedule, all from a single read of the store.
func (h *DashboardCtrl) Index(c echo.Context) error {
	plants, err := h.s.List()
	if err != nil {
		return c.String(http.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	views := make([]PlantView, 0, len(plants))
	for _, p := range plants {
		views = append(views, PlantView{
			Plant:   p,
			DaysAgo: schedule.DaysAgo(p.LastWatered, now),
			Icon:    icons.ForType(p.Type),
		})
	}

	return c.Render(http.StatusOK, "dashboard.html", viewData{
		Plants:   views,
		Beds:     layout.Grid(plants),
		Schedule: schedule.Build(plants, now),
		Today:    now.Format("2006-01-02"),
	})
}
