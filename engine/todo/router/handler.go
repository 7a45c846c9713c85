package router

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/todoman/todoman/engine/todo/model"
	"github.com/todoman/todoman/engine/todo/uc"
	"github.com/todoman/todoman/pkg/logger"
)

// Handler handles todo HTTP requests.
type Handler struct {
	repo uc.Repository
}

// NewHandler creates a new todo handler.
func NewHandler(repo uc.Repository) *Handler {
	return &Handler{repo: repo}
}

// Register wires the todo routes onto the given router.
func Register(r gin.IRouter, repo uc.Repository) {
	h := NewHandler(repo)
	r.GET("/todos", h.List)
	r.POST("/todos", h.Create)
	r.GET("/todos/:id", h.Get)
	r.PUT("/todos/:id", h.Update)
	r.DELETE("/todos/:id", h.Delete)
}

// parseIDParam extracts the id path parameter as an integer. A
// non-integer id is an input error, not a missing entity.
func (h *Handler) parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "todo id must be an integer"})
		return 0, false
	}
	return id, true
}

// List returns every todo in ascending id order.
func (h *Handler) List(c *gin.Context) {
	todos, err := uc.NewListTodos(h.repo).Execute(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// Get returns a single todo by id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	todo, err := uc.NewGetTodo(h.repo, id).Execute(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// Create validates the payload and inserts a new todo.
func (h *Handler) Create(c *gin.Context) {
	var input model.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	todo, err := uc.NewCreateTodo(h.repo, &input).Execute(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

// Update applies a partial update to an existing todo.
func (h *Handler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	var input model.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	todo, err := uc.NewUpdateTodo(h.repo, id, &input).Execute(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// Delete removes a todo by id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	if err := uc.NewDeleteTodo(h.repo, id).Execute(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respondError maps domain errors onto status codes. Anything that is
// neither a validation nor a not-found error is a storage failure.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, uc.ErrTodoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
	case errors.Is(err, uc.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": uc.ErrTitleRequired.Error()})
	default:
		log := logger.FromContext(c.Request.Context())
		log.Error("Storage operation failed", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
