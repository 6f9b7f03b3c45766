package web

import (
	"embed"
	"html/template"
	"io"
	"strconv"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer plugs the embedded HTML templates into echo. The core never
// touches markup; it hands this layer already-computed view data.
type Renderer struct{ t *template.Template }

var funcs = template.FuncMap{
	// bedNumber turns grid coordinates into the human bed label (1..9).
	"bedNumber": func(row, col int) int { return row*3 + col + 1 },
	"pct":       func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
}

func NewRenderer() *Renderer {
	return &Renderer{t: template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.t.ExecuteTemplate(w, name, data)
}
