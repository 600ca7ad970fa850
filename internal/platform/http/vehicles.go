package http

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gearlane/recon-tracker/internal/business/inspection"
	"github.com/gearlane/recon-tracker/internal/repository"
	"github.com/gearlane/recon-tracker/pkg/model"
)

// vehicleView is a vehicle enriched with its derived dashboard fields.
type vehicleView struct {
	model.Vehicle
	Category     inspection.VehicleCategory `json:"category"`
	Progress     int                        `json:"progress"`
	ReadyForSale bool                       `json:"readyForSale"`
}

func (r *Router) listVehicles(c *gin.Context) {
	dealership := r.dealershipID(c)
	agg, err := r.loadAggregator(c, dealership)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	q := inspection.Query{
		Statuses:      splitParam(c.Query("status")),
		Locations:     splitParam(c.Query("location")),
		Search:        c.Query("q"),
		SectionKey:    c.Query("section"),
		SectionStatus: c.Query("sectionStatus"),
	}

	matched := agg.Filter(q)
	items := make([]vehicleView, 0, len(matched))
	for _, v := range matched {
		items = append(items, vehicleView{
			Vehicle:      v,
			Category:     agg.Category(v),
			Progress:     agg.Progress(v),
			ReadyForSale: agg.Ready(v),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"total":  len(items),
		"counts": agg.CountBuckets(q),
	})
}

func (r *Router) getVehicle(c *gin.Context) {
	dealership := r.dealershipID(c)
	v, err := r.deps.Vehicles.GetVehicle(c.Request.Context(), dealership, c.Param("id"))
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, v)
}

func (r *Router) createVehicle(c *gin.Context) {
	var v model.Vehicle
	if err := c.BindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	v.ID = ""
	saved, err := r.deps.Vehicles.SaveVehicle(c.Request.Context(), r.dealershipID(c), v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (r *Router) updateVehicle(c *gin.Context) {
	var v model.Vehicle
	if err := c.BindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	v.ID = c.Param("id")
	saved, err := r.deps.Vehicles.SaveVehicle(c.Request.Context(), r.dealershipID(c), v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (r *Router) deleteVehicle(c *gin.Context) {
	if err := r.deps.Vehicles.DeleteVehicle(c.Request.Context(), r.dealershipID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type teamNoteReq struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

func (r *Router) addTeamNote(c *gin.Context) {
	var req teamNoteReq
	if err := c.BindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	ctx := c.Request.Context()
	dealership := r.dealershipID(c)
	v, err := r.deps.Vehicles.GetVehicle(ctx, dealership, c.Param("id"))
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	v.TeamNotes = append(v.TeamNotes, model.TeamNote{
		ID:        uuid.NewString(),
		Author:    req.Author,
		Text:      req.Text,
		CreatedAt: time.Now().UTC(),
	})
	saved, err := r.deps.Vehicles.SaveVehicle(ctx, dealership, v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (r *Router) exportVehicles(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=vehicles.csv")

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	if err := writer.Write([]string{"vin", "stock", "year", "make", "model", "trim", "mileage", "color", "location", "status"}); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	err := r.deps.Vehicles.StreamAll(c.Request.Context(), r.dealershipID(c), func(v model.Vehicle) error {
		row := []string{
			v.VIN,
			v.StockNumber,
			strconv.Itoa(v.Year),
			v.Make,
			v.Model,
			v.Trim,
			strconv.Itoa(v.Mileage),
			v.Color,
			v.Location,
			v.Status,
		}
		return writer.Write(row)
	})
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
}

func (r *Router) getVehicleProgress(c *gin.Context) {
	ctx := c.Request.Context()
	dealership := r.dealershipID(c)

	v, err := r.deps.Vehicles.GetVehicle(ctx, dealership, c.Param("id"))
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Both the registry and the inspection data must have loaded before the
	// percentage is derived; failures degrade to empty data, never 100%.
	sections, err := r.deps.Sections.ListSections(ctx, dealership)
	if err != nil {
		r.deps.Log.Warn().Err(err).Msg("sections unavailable, reporting zero progress")
		sections = nil
	} else if len(sections) == 0 {
		sections = inspection.DefaultSections()
	}
	insp, err := r.deps.Inspections.GetInspection(ctx, dealership, v.ID, c.Query("inspectorId"))
	if err != nil {
		r.deps.Log.Warn().Err(err).Msg("inspection unavailable, reporting zero progress")
		insp = model.VehicleInspection{VehicleID: v.ID}
	}

	statuses := inspection.SectionStatuses(insp, sections)
	active := 0
	for _, s := range sections {
		if s.IsActive {
			active++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicleId":    v.ID,
		"statuses":     statuses,
		"progress":     inspection.CalculateProgress(statuses, active),
		"category":     inspection.CategorizeVehicle(v, statuses),
		"readyForSale": inspection.ReadyForSale(insp, sections),
	})
}
