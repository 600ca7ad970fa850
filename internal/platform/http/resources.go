package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gearlane/recon-tracker/pkg/model"
)

func (r *Router) listLocations(c *gin.Context) {
	locations, err := r.deps.Locations.ListLocations(c.Request.Context(), r.dealershipID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": locations})
}

func (r *Router) createLocation(c *gin.Context) {
	var loc model.Location
	if err := c.BindJSON(&loc); err != nil || loc.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	loc.ID = uuid.NewString()
	if err := r.deps.Locations.SaveLocation(c.Request.Context(), r.dealershipID(c), loc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, loc)
}

func (r *Router) updateLocation(c *gin.Context) {
	var loc model.Location
	if err := c.BindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	loc.ID = c.Param("id")
	if err := r.deps.Locations.SaveLocation(c.Request.Context(), r.dealershipID(c), loc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loc)
}

func (r *Router) deleteLocation(c *gin.Context) {
	if err := r.deps.Locations.DeleteLocation(c.Request.Context(), r.dealershipID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) listContacts(c *gin.Context) {
	contacts, err := r.deps.Contacts.ListContacts(c.Request.Context(), r.dealershipID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": contacts})
}

func (r *Router) createContact(c *gin.Context) {
	var contact model.Contact
	if err := c.BindJSON(&contact); err != nil || contact.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	contact.ID = uuid.NewString()
	if err := r.deps.Contacts.SaveContact(c.Request.Context(), r.dealershipID(c), contact); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (r *Router) updateContact(c *gin.Context) {
	var contact model.Contact
	if err := c.BindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	contact.ID = c.Param("id")
	if err := r.deps.Contacts.SaveContact(c.Request.Context(), r.dealershipID(c), contact); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (r *Router) deleteContact(c *gin.Context) {
	if err := r.deps.Contacts.DeleteContact(c.Request.Context(), r.dealershipID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) listTodos(c *gin.Context) {
	todos, err := r.deps.Todos.ListTodos(c.Request.Context(), r.dealershipID(c), c.Query("vehicleId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": todos})
}

func (r *Router) createTodo(c *gin.Context) {
	var todo model.Todo
	if err := c.BindJSON(&todo); err != nil || todo.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	todo.ID = uuid.NewString()
	todo.CreatedAt = time.Now().UTC()
	if err := r.deps.Todos.SaveTodo(c.Request.Context(), r.dealershipID(c), todo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, todo)
}

func (r *Router) updateTodo(c *gin.Context) {
	var todo model.Todo
	if err := c.BindJSON(&todo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	todo.ID = c.Param("id")
	if err := r.deps.Todos.SaveTodo(c.Request.Context(), r.dealershipID(c), todo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (r *Router) deleteTodo(c *gin.Context) {
	if err := r.deps.Todos.DeleteTodo(c.Request.Context(), r.dealershipID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) getSettings(c *gin.Context) {
	settings, err := r.deps.Settings.GetSettings(c.Request.Context(), r.dealershipID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (r *Router) putSettings(c *gin.Context) {
	var settings model.DealershipSettings
	if err := c.BindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := r.deps.Settings.SaveSettings(c.Request.Context(), r.dealershipID(c), settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	settings.DealershipID = r.dealershipID(c)
	c.JSON(http.StatusOK, settings)
}
