// Package testutilはテスト用のセットアップヘルパーを提供します。
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"go-htmx-todo/internal/models"
	"go-htmx-todo/internal/repositories"
	"go-htmx-todo/internal/routes"
)

// SetupTestDB はテスト用のインメモリSQLiteデータベースとルーターをセットアップします。
// 本番はMySQLですが、リポジトリのSQLは両ドライバーで動くように書かれているため、
// テストは外部コンテナなしで完結します。
func SetupTestDB(t *testing.T) (*sql.DB, *gin.Engine, *repositories.TodoRepository) {
	t.Helper()

	// modernc.org/sqlite のドライバー名は "sqlite"
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database connection: %v", err)
	}
	// :memory: は接続ごとに別のデータベースになるため、接続を1本に固定する
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	createTodoTableSQL := `
		CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`
	if _, err := db.Exec(createTodoTableSQL); err != nil {
		db.Close()
		t.Fatalf("Failed to create todos table: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := routes.SetupRouter(db)
	todoRepo := repositories.NewTodoRepository(db)

	return db, router, todoRepo
}

// CreateTestTodo はルーター経由でテスト用のTODOを作成し、作成されたレコードを返します。
// フラグメントレスポンスはIDを返さないため、リポジトリから引き直します。
func CreateTestTodo(t *testing.T, router *gin.Engine, todoRepo *repositories.TodoRepository, title string, completed bool) *models.Todo {
	t.Helper()

	todoPayload := map[string]interface{}{
		"title":     title,
		"completed": completed,
	}
	body, _ := json.Marshal(todoPayload)

	req, _ := http.NewRequest(http.MethodPost, "/todo", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code, "TODO作成に失敗しました: %s", resp.Body.String())

	todos, err := todoRepo.FindAll()
	require.NoError(t, err)
	require.NotEmpty(t, todos)

	created := todos[len(todos)-1]
	require.Equal(t, title, created.Title)
	return created
}
