package handler

import (
	"errors"
	"net/http"

	"github.com/bkaraca/taskhive/internal/service"
	"github.com/bkaraca/taskhive/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	todoService *service.TodoService
}

func NewAdminHandler(todoService *service.TodoService) *AdminHandler {
	return &AdminHandler{
		todoService: todoService,
	}
}

// ListTodos handles GET /admin/todo — every todo in the store, any owner.
func (h *AdminHandler) ListTodos(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	logger.Log.Info("Admin listing all todos",
		zap.Uint("admin_id", principal.ID),
	)

	todos, err := h.todoService.ListAll(principal)
	if err != nil {
		if errors.Is(err, service.ErrAdminRequired) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch todos",
		})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// DeleteTodo handles DELETE /admin/todo/:id — removes any todo by id,
// bypassing the ownership check.
func (h *AdminHandler) DeleteTodo(c *gin.Context) {
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

	logger.Log.Info("Admin deleting todo",
		zap.Uint("admin_id", principal.ID),
		zap.Uint("todo_id", id),
	)

	if err := h.todoService.AdminDelete(principal, id); err != nil {
		switch {
		case errors.Is(err, service.ErrAdminRequired):
			c.JSON(http.StatusForbidden, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, service.ErrTodoNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to delete todo",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
