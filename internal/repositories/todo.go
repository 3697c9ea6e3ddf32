// Package repositoriesはデータベース操作を行います。
package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"go-htmx-todo/internal/models"
)

// ErrTodoNotFound はTODOが見つからない場合のエラーです。
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository はtodosテーブルへのアクセスを提供します。
type TodoRepository struct {
	db *sql.DB
}

// NewTodoRepository は新しいTodoRepositoryを作成します。
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create は新しいTodoタスクをデータベースに挿入します。
func (r *TodoRepository) Create(t *models.Todo) (*models.Todo, error) {
	result, err := r.db.Exec("INSERT INTO todos (title, completed) VALUES (?, ?)", t.Title, t.Completed)
	if err != nil {
		log.Printf("Failed to insert todo: %v", err)
		return nil, fmt.Errorf("could not insert todo: %w", err)
	}

	// 自動採番されたIDを取得してセット
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}
	t.ID = int(id)

	return t, nil
}

// FindAll はすべてのTodoタスクを登録順に取得します。
func (r *TodoRepository) FindAll() ([]*models.Todo, error) {
	return r.queryTodos("SELECT id, title, completed FROM todos ORDER BY id")
}

// FindByCompleted は完了状態が一致するTodoタスクを登録順に取得します。
func (r *TodoRepository) FindByCompleted(completed bool) ([]*models.Todo, error) {
	return r.queryTodos("SELECT id, title, completed FROM todos WHERE completed = ? ORDER BY id", completed)
}

func (r *TodoRepository) queryTodos(query string, args ...any) ([]*models.Todo, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		log.Printf("Failed to query todos: %v", err)
		return nil, fmt.Errorf("could not query todos: %w", err)
	}
	defer rows.Close()

	var todos []*models.Todo
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed); err != nil {
			log.Printf("Failed to scan todo: %v", err)
			return nil, fmt.Errorf("could not scan todo: %w", err)
		}
		todos = append(todos, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}

	return todos, nil
}

// FindByID は指定されたIDのTodoタスクを取得します。
func (r *TodoRepository) FindByID(id int) (*models.Todo, error) {
	var t models.Todo
	err := r.db.QueryRow("SELECT id, title, completed FROM todos WHERE id = ?", id).
		Scan(&t.ID, &t.Title, &t.Completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		log.Printf("Failed to query todo by ID: %v", err)
		return nil, fmt.Errorf("could not query todo: %w", err)
	}

	return &t, nil
}

// Count はTodoタスクの総数を取得します。
func (r *TodoRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM todos").Scan(&count); err != nil {
		return 0, fmt.Errorf("could not count todos: %w", err)
	}
	return count, nil
}

// CountByCompleted は完了状態が一致するTodoタスクの数を取得します。
func (r *TodoRepository) CountByCompleted(completed bool) (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM todos WHERE completed = ?", completed).Scan(&count); err != nil {
		return 0, fmt.Errorf("could not count todos: %w", err)
	}
	return count, nil
}

// UpdateTitle は指定されたIDのTodoタスクのタイトルのみを更新します。
// 完了状態とIDは変更されません。
func (r *TodoRepository) UpdateTitle(id int, title string) error {
	result, err := r.db.Exec("UPDATE todos SET title = ? WHERE id = ?", title, id)
	if err != nil {
		log.Printf("Failed to update todo title: %v", err)
		return fmt.Errorf("could not update todo: %w", err)
	}

	return checkAffected(result)
}

// SetCompleted は指定されたIDのTodoタスクの完了状態を設定します。
func (r *TodoRepository) SetCompleted(id int, completed bool) error {
	result, err := r.db.Exec("UPDATE todos SET completed = ? WHERE id = ?", completed, id)
	if err != nil {
		log.Printf("Failed to update todo completed: %v", err)
		return fmt.Errorf("could not update todo: %w", err)
	}

	return checkAffected(result)
}

// SetAllCompleted はすべてのTodoタスクの完了状態を一括で設定します。
// 対象が0件でもエラーにはなりません。
func (r *TodoRepository) SetAllCompleted(completed bool) error {
	if _, err := r.db.Exec("UPDATE todos SET completed = ?", completed); err != nil {
		log.Printf("Failed to update all todos: %v", err)
		return fmt.Errorf("could not update todos: %w", err)
	}
	return nil
}

// Delete は指定されたIDのTodoタスクを削除します。
func (r *TodoRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		log.Printf("Failed to delete todo: %v", err)
		return fmt.Errorf("could not delete todo: %w", err)
	}

	return checkAffected(result)
}

// DeleteCompleted は完了済みのTodoタスクをすべて削除します。
// 対象が0件でもエラーにはなりません。
func (r *TodoRepository) DeleteCompleted() error {
	if _, err := r.db.Exec("DELETE FROM todos WHERE completed = ?", true); err != nil {
		log.Printf("Failed to delete completed todos: %v", err)
		return fmt.Errorf("could not delete completed todos: %w", err)
	}
	return nil
}

// checkAffected は対象の行数を確認し、0件の場合はErrTodoNotFoundを返します。
// MySQLではDSNのclientFoundRows=trueが前提です (変更された行数ではなく
// マッチした行数を数える)。
func checkAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}
