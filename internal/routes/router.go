// Package routesはroutingを行います。
package routes

import (
	"database/sql"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go-htmx-todo/internal/handlers"
	"go-htmx-todo/internal/repositories"
	"go-htmx-todo/internal/services"
	"go-htmx-todo/internal/templates"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(db *sql.DB) *gin.Engine {
	r := gin.Default()

	// CORS対策
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:8080"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "HX-Request", "X-Filter"}
	r.Use(cors.New(config))

	// テンプレート
	renderer := templates.New()
	r.SetHTMLTemplate(renderer.Template())

	// リポジトリ
	todoRepo := repositories.NewTodoRepository(db)

	// サービス
	todoService := services.NewTodoService(todoRepo)

	// ハンドラー
	todoHandler := handlers.NewTodoHandler(todoService, renderer)

	// ルーティング
	r.GET("/healthz", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database connection failed", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Database connection is healthy"})
	})

	r.GET("/", todoHandler.Index)
	r.POST("/todo", todoHandler.NewTodo)
	r.PUT("/todo/:id", todoHandler.EditTodo)
	r.POST("/todo/complete_all", todoHandler.CompleteAll)
	r.POST("/todo/:id/complete", todoHandler.CompleteTodo)
	r.DELETE("/todo/completed", todoHandler.DeleteCompleted)
	r.DELETE("/todo/:id", todoHandler.DeleteTodo)

	return r
}
