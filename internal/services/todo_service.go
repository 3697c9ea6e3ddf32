// Package servicesはビジネスロジックを扱います。
package services

import (
	"go-htmx-todo/internal/models"
	"go-htmx-todo/internal/repositories"
)

// TodoService はTodo関連のビジネスロジックを扱います。
// Todoの変更はすべてこのサービスを経由します。
type TodoService struct {
	todoRepo *repositories.TodoRepository
}

// NewTodoService は新しいTodoServiceを作成します。
func NewTodoService(todoRepo *repositories.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// GetAll はすべてのTodoを取得します。
func (s *TodoService) GetAll() ([]*models.Todo, error) {
	return s.todoRepo.FindAll()
}

// GetActive は未完了のTodoを取得します。
func (s *TodoService) GetActive() ([]*models.Todo, error) {
	return s.todoRepo.FindByCompleted(false)
}

// GetCompleted は完了済みのTodoを取得します。
func (s *TodoService) GetCompleted() ([]*models.Todo, error) {
	return s.todoRepo.FindByCompleted(true)
}

// Count はTodoの総数を取得します。
func (s *TodoService) Count() (int, error) {
	return s.todoRepo.Count()
}

// CountActive は未完了のTodoの数を取得します。
func (s *TodoService) CountActive() (int, error) {
	return s.todoRepo.CountByCompleted(false)
}

// CountCompleted は完了済みのTodoの数を取得します。
func (s *TodoService) CountCompleted() (int, error) {
	return s.todoRepo.CountByCompleted(true)
}

// Save は新しいTodoを保存します。
func (s *TodoService) Save(todo *models.Todo) (*models.Todo, error) {
	return s.todoRepo.Create(todo)
}

// Edit は指定IDのTodoのタイトルのみを変更します。
func (s *TodoService) Edit(id int, title string) error {
	return s.todoRepo.UpdateTitle(id, title)
}

// Complete は指定IDのTodoの完了状態を設定します。
func (s *TodoService) Complete(id int, completed bool) error {
	return s.todoRepo.SetCompleted(id, completed)
}

// CompleteAll はすべてのTodoの完了状態を一括で設定します。
func (s *TodoService) CompleteAll(completed bool) error {
	return s.todoRepo.SetAllCompleted(completed)
}

// Delete は指定IDのTodoを削除します。
func (s *TodoService) Delete(id int) error {
	return s.todoRepo.Delete(id)
}

// DeleteCompleted は完了済みのTodoをすべて削除します。
func (s *TodoService) DeleteCompleted() error {
	return s.todoRepo.DeleteCompleted()
}
