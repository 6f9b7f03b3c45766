package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"garden/entities"
	"garden/pkg/plant/service"
)

type PlantCtrl struct{ s service.PlantService }

func New(s service.PlantService) *PlantCtrl { return &PlantCtrl{s} }

type plantReq struct {
	Name              string                 `json:"name"`
	Type              string                 `json:"type"`
	PlantedDate       string                 `json:"planted_date"`
	Location          string                 `json:"location"`
	WateringFrequency string                 `json:"watering_frequency"`
	BedRow            *int                   `json:"bed_row"`
	BedCol            *int                   `json:"bed_col"`
	PlantingArea      *entities.PlantingArea `json:"planting_area"`
	ScientificName    string                 `json:"scientific_name"`
	Sunlight          string                 `json:"sunlight"`
	WateringNeeds     string                 `json:"watering_needs"`
	Cycle             string                 `json:"cycle"`
	HardinessZones    string                 `json:"hardiness_zones"`
	Description       string                 `json:"description"`
	PerenualID        *int                   `json:"perenual_id"`
}

func (r plantReq) toInput() service.PlantInput {
	return service.PlantInput{
		Name:              r.Name,
		Type:              r.Type,
		PlantedDate:       r.PlantedDate,
		Location:          r.Location,
		WateringFrequency: r.WateringFrequency,
		BedRow:            r.BedRow,
		BedCol:            r.BedCol,
		PlantingArea:      r.PlantingArea,
		ScientificName:    r.ScientificName,
		Sunlight:          r.Sunlight,
		WateringNeeds:     r.WateringNeeds,
		Cycle:             r.Cycle,
		HardinessZones:    r.HardinessZones,
		Description:       r.Description,
		PerenualID:        r.PerenualID,
	}
}

func (h *PlantCtrl) Create(c echo.Context) error {
	var req plantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if _, err := h.s.Create(req.toInput()); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *PlantCtrl) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	p, err := h.s.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Plant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlantCtrl) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req plantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if err := h.s.Update(id, req.toInput()); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *PlantCtrl) Water(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.s.Water(id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *PlantCtrl) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.s.Delete(id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func fail(c echo.Context, err error) error {
	if errors.Is(err, service.ErrNameRequired) || errors.Is(err, service.ErrBedOutOfRange) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

func parseID(c echo.Context) (uint, error) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(v), err
}
