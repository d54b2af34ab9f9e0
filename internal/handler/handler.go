package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/user/onmovie/internal/config"
	"github.com/user/onmovie/internal/model"
	"github.com/user/onmovie/internal/repository"
	"github.com/user/onmovie/internal/service"
)

// developers is the constant identity stamp carried by every successful
// envelope.
var developers = model.Developers{
	Name:   "OnMovie API (TMDB)",
	Author: "OnMovie Team",
	Source: "TheMovieDB.org",
}

// Envelope is the one response type shared by every endpoint. Payload slots
// are mutually exclusive per endpoint; clients decode the whole struct
// instead of probing for keys. Movies/Series are slice pointers so a listing
// endpoint with an empty page still marshals its array key as [] instead of
// dropping it.
type Envelope struct {
	Status       bool                 `json:"status"`
	Developers   *model.Developers    `json:"developers,omitempty"`
	Message      string               `json:"message,omitempty"`
	CurrentPage  int                  `json:"current_page,omitempty"`
	TotalPages   int                  `json:"total_pages,omitempty"`
	TotalResults int                  `json:"total_results,omitempty"`
	Movies       *[]model.CatalogItem `json:"movies,omitempty"`
	Series       *[]model.CatalogItem `json:"series,omitempty"`
	Results      interface{}          `json:"results,omitempty"`
	Result       interface{}          `json:"result,omitempty"`
	Cast         []model.CastMember   `json:"cast,omitempty"`
	Crew         []model.CrewMember   `json:"crew,omitempty"`
}

// Handler carries the shared dependencies of all HTTP handlers.
type Handler struct {
	Repos   *repository.Repositories
	Config  *config.Config
	Catalog *service.CatalogService
}

// NewHandler creates the handler bundle.
func NewHandler(repos *repository.Repositories, cfg *config.Config, catalog *service.CatalogService) *Handler {
	return &Handler{
		Repos:   repos,
		Config:  cfg,
		Catalog: catalog,
	}
}

// RegisterValidators installs the custom binding rules.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("mediatype", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == model.MediaTypeMovie || s == model.MediaTypeSeries
		})
	}
}

// ok writes a success envelope, stamping the developers block.
func ok(c *gin.Context, env Envelope) {
	env.Status = true
	env.Developers = &developers
	c.JSON(http.StatusOK, env)
}

// fail writes a failure envelope.
func fail(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{
		Status:     false,
		Developers: &developers,
		Message:    message,
	})
}

// Welcome is the root route.
func (h *Handler) Welcome(c *gin.Context) {
	ok(c, Envelope{Message: "Welcome to OnMovie API powered by TMDB"})
}
