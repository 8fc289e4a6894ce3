package handler

import (
	"html/template"
	"net/http"
	"strings"

	"mis/internal/middleware"
	"mis/web"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the login and dashboard shells; data comes from the JSON API
type PageHandler struct {
	title string
}

func NewPageHandler(title string) *PageHandler {
	return &PageHandler{title: title}
}

// LoadTemplates parses the embedded page templates into the engine
func LoadTemplates(engine *gin.Engine) error {
	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)
	return nil
}

// RegisterRoutes installs the page gate ahead of the pages it guards
func (h *PageHandler) RegisterRoutes(router *gin.RouterGroup, tokens middleware.TokenChecker) {
	pages := router.Group("")
	pages.Use(middleware.PageGate(tokens))
	{
		pages.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/dashboard") })
		pages.GET("/login", h.Login)
		pages.GET("/dashboard", h.Dashboard)
		pages.GET("/dashboard/*section", h.Dashboard)
	}
}

func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Title": h.title})
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	section := strings.Trim(c.Param("section"), "/")
	c.HTML(http.StatusOK, "dashboard.html", gin.H{"Title": h.title, "Section": section})
}
