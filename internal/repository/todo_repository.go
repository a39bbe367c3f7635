package repository

import (
	"errors"

	"github.com/bkaraca/taskhive/internal/models"
	"gorm.io/gorm"
)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) CreateTodo(todo *models.Todo) error {
	return r.db.Create(todo).Error
}

// GetOwnedTodos returns every todo belonging to ownerID, oldest first.
func (r *TodoRepository) GetOwnedTodos(ownerID uint) ([]models.Todo, error) {
	var todos []models.Todo
	err := r.db.
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&todos).Error

	return todos, err
}

// GetOwnedTodoByID fetches a todo only when it belongs to ownerID.
// A todo owned by someone else is indistinguishable from an absent one.
func (r *TodoRepository) GetOwnedTodoByID(id, ownerID uint) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&todo).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &todo, nil
}

// SaveTodo writes the full record back (full-record replace, not a patch).
func (r *TodoRepository) SaveTodo(todo *models.Todo) error {
	return r.db.Save(todo).Error
}

// DeleteOwnedTodo removes a todo scoped to its owner. Returns false when
// nothing matched, either because the id is absent or owned by another user.
func (r *TodoRepository) DeleteOwnedTodo(id, ownerID uint) (bool, error) {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Todo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetAllTodos returns every todo in the store regardless of owner
// (admin path only).
func (r *TodoRepository) GetAllTodos() ([]models.Todo, error) {
	var todos []models.Todo
	err := r.db.Order("id ASC").Find(&todos).Error
	return todos, err
}

// DeleteTodoByID removes a todo by id with no ownership filter
// (admin path only). Returns false when the id does not exist.
func (r *TodoRepository) DeleteTodoByID(id uint) (bool, error) {
	result := r.db.Delete(&models.Todo{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
