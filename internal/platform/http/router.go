package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gearlane/recon-tracker/internal/business/importer"
	"github.com/gearlane/recon-tracker/internal/business/inspection"
	"github.com/gearlane/recon-tracker/internal/repository"
)

// Deps bundles everything the HTTP layer needs.
type Deps struct {
	Vehicles    *repository.VehicleRepository
	Inspections *repository.InspectionRepository
	Sections    *repository.SectionRepository
	Locations   *repository.LocationRepository
	Contacts    *repository.ContactRepository
	Todos       *repository.TodoRepository
	Settings    *repository.SettingsRepository
	Runs        *repository.RunRepository
	Stats       *repository.StatsRepository

	Importer  *importer.Service
	Refresher *inspection.Refresher

	AllowedOrigins    string
	DefaultDealership string
	Log               zerolog.Logger
}

// Router wires HTTP handlers.
type Router struct {
	deps Deps
}

func NewRouter(deps Deps) *gin.Engine {
	r := &Router{deps: deps}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), r.corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/vehicles", r.listVehicles)
		api.POST("/vehicles", r.createVehicle)
		api.GET("/vehicles/export", r.exportVehicles)
		api.GET("/vehicles/:id", r.getVehicle)
		api.PUT("/vehicles/:id", r.updateVehicle)
		api.DELETE("/vehicles/:id", r.deleteVehicle)
		api.POST("/vehicles/:id/notes", r.addTeamNote)
		api.GET("/vehicles/:id/progress", r.getVehicleProgress)
		api.GET("/vehicles/:id/report", r.getVehicleReport)

		api.GET("/vehicles/:id/inspection", r.getInspection)
		api.PUT("/vehicles/:id/inspection", r.putInspection)
		api.POST("/vehicles/:id/inspection/:section/items/:item", r.rateItem)

		api.GET("/sections", r.listSections)
		api.PUT("/sections", r.replaceSections)
		api.POST("/sections/reset", r.resetSections)

		api.GET("/locations", r.listLocations)
		api.POST("/locations", r.createLocation)
		api.PUT("/locations/:id", r.updateLocation)
		api.DELETE("/locations/:id", r.deleteLocation)

		api.GET("/contacts", r.listContacts)
		api.POST("/contacts", r.createContact)
		api.PUT("/contacts/:id", r.updateContact)
		api.DELETE("/contacts/:id", r.deleteContact)

		api.GET("/todos", r.listTodos)
		api.POST("/todos", r.createTodo)
		api.PUT("/todos/:id", r.updateTodo)
		api.DELETE("/todos/:id", r.deleteTodo)

		api.GET("/settings", r.getSettings)
		api.PUT("/settings", r.putSettings)

		api.GET("/dashboard", r.getDashboard)
		api.GET("/stats", r.getStats)
		api.POST("/stats/refresh", r.refreshStats)

		api.POST("/import/run", r.startImport)
		api.GET("/import/status", r.getImportStatus)
		api.GET("/import/runs", r.listImportRuns)
	}

	return router
}

// dealershipID resolves the dealership scope for a request.
func (r *Router) dealershipID(c *gin.Context) string {
	if id := strings.TrimSpace(c.Query("dealershipId")); id != "" {
		return id
	}
	if id := strings.TrimSpace(c.GetHeader("X-Dealership-ID")); id != "" {
		return id
	}
	return r.deps.DefaultDealership
}

func (r *Router) corsMiddleware() gin.HandlerFunc {
	origins := strings.Split(r.deps.AllowedOrigins, ",")
	trimmed := make([]string, 0, len(origins))
	for _, o := range origins {
		if t := strings.TrimSpace(o); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := "*"
		for _, o := range trimmed {
			if o == "*" || o == origin {
				allowed = origin
				break
			}
		}
		c.Header("Access-Control-Allow-Origin", allowed)
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Dealership-ID")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		c.Next()
	}
}

// loadAggregator builds the derivation snapshot for one dealership. Vehicle
// load failures are fatal to the request; missing sections, inspections, or
// locations degrade to empty data so derivations still return defaults.
func (r *Router) loadAggregator(c *gin.Context, dealershipID string) (*inspection.Aggregator, error) {
	ctx := c.Request.Context()

	vehicles, err := r.deps.Vehicles.ListVehicles(ctx, dealershipID)
	if err != nil {
		return nil, err
	}
	sections, err := r.deps.Sections.ListSections(ctx, dealershipID)
	if err != nil {
		r.deps.Log.Warn().Err(err).Msg("sections unavailable, deriving with empty registry")
		sections = nil
	}
	if len(sections) == 0 {
		sections = inspection.DefaultSections()
	}
	inspections, err := r.deps.Inspections.FetchAllInspections(ctx, dealershipID)
	if err != nil {
		r.deps.Log.Warn().Err(err).Msg("inspections unavailable, deriving with empty data")
		inspections = nil
	}
	locations, err := r.deps.Locations.ListLocations(ctx, dealershipID)
	if err != nil {
		r.deps.Log.Warn().Err(err).Msg("locations unavailable, falling back to heuristics")
		locations = nil
	}

	return inspection.NewAggregator(vehicles, sections, inspections, locations), nil
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
