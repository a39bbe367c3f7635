package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bkaraca/taskhive/internal/middleware"
	"github.com/bkaraca/taskhive/internal/models"
	"github.com/bkaraca/taskhive/internal/service"
	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	todoService *service.TodoService
}

func NewTodoHandler(todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

type TodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    int    `json:"priority" binding:"required"`
	Complete    bool   `json:"complete"`
}

func (r TodoRequest) input() service.TodoInput {
	return service.TodoInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Complete:    r.Complete,
	}
}

// requirePrincipal fetches the principal resolved by the auth middleware.
// Behind the middleware this never fails; the guard covers misrouting.
func requirePrincipal(c *gin.Context) (models.Principal, bool) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return models.Principal{}, false
	}
	return principal, true
}

// parseID parses a positive numeric path id. Non-numeric or non-positive
// ids behave like ids that do not exist.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// List handles GET /todos/
func (h *TodoHandler) List(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	todos, err := h.todoService.ListOwned(principal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch todos",
		})
		return
	}

	if len(todos) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "No todos found.",
		})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// Get handles GET /todos/:id
func (h *TodoHandler) Get(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": service.ErrTodoNotFound.Error(),
		})
		return
	}

	todo, err := h.todoService.Get(principal, id)
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch todo",
		})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// Create handles POST /todos/
func (h *TodoHandler) Create(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	todo, err := h.todoService.Create(principal, req.input())
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// Update handles PUT /todos/:id (full-record replace)
func (h *TodoHandler) Update(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": service.ErrTodoNotFound.Error(),
		})
		return
	}

	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	todo, err := h.todoService.Update(principal, id, req.input())
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// Delete handles DELETE /todos/:id
func (h *TodoHandler) Delete(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": service.ErrTodoNotFound.Error(),
		})
		return
	}

	if err := h.todoService.Delete(principal, id); err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete todo",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
