package http

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("calendar").ParseFS(templateFS, "templates/*.html"))

func (h *handler) render(c *gin.Context, status int, name string, data any) {
	c.Render(status, render.HTML{Template: templates, Name: name, Data: data})
}
