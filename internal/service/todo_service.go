package service

import (
	"errors"

	"github.com/bkaraca/taskhive/internal/models"
	"github.com/bkaraca/taskhive/internal/repository"
	"github.com/bkaraca/taskhive/pkg/logger"
	"go.uber.org/zap"
)

var (
	// ErrTodoNotFound is returned both when a todo does not exist and
	// when it belongs to another user. Non-owners must not learn that
	// an id exists.
	ErrTodoNotFound = errors.New("todo not found")
	// ErrAdminRequired guards the privileged paths even if a handler is
	// ever wired without the admin middleware.
	ErrAdminRequired = errors.New("admin access required")
)

// TodoInput carries the full replacement fields for create and update.
type TodoInput struct {
	Title       string
	Description string
	Priority    int
	Complete    bool
}

type TodoService struct {
	todoRepo *repository.TodoRepository
}

func NewTodoService(todoRepo *repository.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// ListOwned returns the caller's todos. No todos is an empty slice, not
// an error.
func (s *TodoService) ListOwned(principal models.Principal) ([]models.Todo, error) {
	return s.todoRepo.GetOwnedTodos(principal.ID)
}

func (s *TodoService) Get(principal models.Principal, todoID uint) (*models.Todo, error) {
	todo, err := s.todoRepo.GetOwnedTodoByID(todoID, principal.ID)
	if err != nil {
		logger.Log.Error("Failed to fetch todo",
			zap.Uint("todo_id", todoID),
			zap.Error(err),
		)
		return nil, err
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}

func (s *TodoService) Create(principal models.Principal, in TodoInput) (*models.Todo, error) {
	if err := validateTodoInput(in); err != nil {
		return nil, err
	}

	todo := &models.Todo{
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Complete:    in.Complete,
		OwnerID:     principal.ID,
	}

	if err := s.todoRepo.CreateTodo(todo); err != nil {
		logger.Log.Error("Failed to create todo",
			zap.Uint("owner_id", principal.ID),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Todo created",
		zap.Uint("todo_id", todo.ID),
		zap.Uint("owner_id", principal.ID),
	)

	return todo, nil
}

// Update replaces every mutable field of an owned todo. A todo owned by
// someone else fails exactly like a missing one.
func (s *TodoService) Update(principal models.Principal, todoID uint, in TodoInput) (*models.Todo, error) {
	if err := validateTodoInput(in); err != nil {
		return nil, err
	}

	todo, err := s.todoRepo.GetOwnedTodoByID(todoID, principal.ID)
	if err != nil {
		logger.Log.Error("Failed to fetch todo for update",
			zap.Uint("todo_id", todoID),
			zap.Error(err),
		)
		return nil, err
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}

	todo.Title = in.Title
	todo.Description = in.Description
	todo.Priority = in.Priority
	todo.Complete = in.Complete

	if err := s.todoRepo.SaveTodo(todo); err != nil {
		logger.Log.Error("Failed to update todo",
			zap.Uint("todo_id", todoID),
			zap.Error(err),
		)
		return nil, err
	}

	return todo, nil
}

func (s *TodoService) Delete(principal models.Principal, todoID uint) error {
	deleted, err := s.todoRepo.DeleteOwnedTodo(todoID, principal.ID)
	if err != nil {
		logger.Log.Error("Failed to delete todo",
			zap.Uint("todo_id", todoID),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return ErrTodoNotFound
	}

	logger.Log.Info("Todo deleted",
		zap.Uint("todo_id", todoID),
		zap.Uint("owner_id", principal.ID),
	)

	return nil
}

// ListAll returns every todo regardless of owner. Admin only.
func (s *TodoService) ListAll(principal models.Principal) ([]models.Todo, error) {
	if !principal.Role.IsAdmin() {
		return nil, ErrAdminRequired
	}
	return s.todoRepo.GetAllTodos()
}

// AdminDelete removes any todo by id, bypassing the ownership check.
func (s *TodoService) AdminDelete(principal models.Principal, todoID uint) error {
	if !principal.Role.IsAdmin() {
		return ErrAdminRequired
	}

	deleted, err := s.todoRepo.DeleteTodoByID(todoID)
	if err != nil {
		logger.Log.Error("Failed to delete todo (admin)",
			zap.Uint("todo_id", todoID),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return ErrTodoNotFound
	}

	logger.Log.Info("Todo deleted by admin",
		zap.Uint("todo_id", todoID),
		zap.Uint("admin_id", principal.ID),
	)

	return nil
}

func validateTodoInput(in TodoInput) error {
	if len(in.Title) < 3 || len(in.Title) > 100 {
		return errors.New("title must be between 3 and 100 characters")
	}
	if len(in.Description) < 3 || len(in.Description) > 500 {
		return errors.New("description must be between 3 and 500 characters")
	}
	if in.Priority < models.TodoPriorityMin || in.Priority > models.TodoPriorityMax {
		return errors.New("priority must be between 1 and 6")
	}
	return nil
}
