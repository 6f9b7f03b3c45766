package controllerImp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"garden/pkg/plant/service"
	"garden/pkg/schedule"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportCtrl struct{ s service.PlantService }

func New(s service.PlantService) *ExportCtrl { return &ExportCtrl{s} }

// Export streams the plant log as a spreadsheet, one row per plant.
func (h *ExportCtrl) Export(c echo.Context) error {
	plants, err := h.s.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	header := []interface{}{
		"ID", "Name", "Type", "Planted", "Location",
		"Watering Frequency", "Last Watered", "Last Watered (relative)",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	now := time.Now()
	for i, p := range plants {
		row := []interface{}{
			p.ID, p.Name, p.Type, p.PlantedDate, p.Location,
			p.WateringFrequency, p.LastWatered, schedule.DaysAgo(p.LastWatered, now),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="garden.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
