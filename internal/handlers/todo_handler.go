// Package handlersはHTTPハンドラーを管理します。
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"go-htmx-todo/internal/models"
	"go-htmx-todo/internal/repositories"
	"go-htmx-todo/internal/services"
	"go-htmx-todo/internal/templates"
)

// TodoDTO は作成・編集リクエストのボディです。
type TodoDTO struct {
	ID        int    `json:"id,omitempty"`
	Title     string `json:"title" binding:"required"`
	Completed bool   `json:"completed"`
}

// TodoCompleteDTO は完了状態変更リクエストのボディです。
type TodoCompleteDTO struct {
	Completed bool `json:"completed"`
}

// TodoHandler はTodo関連のハンドラーを管理します。
type TodoHandler struct {
	service  *services.TodoService
	renderer *templates.Renderer
}

// NewTodoHandler は新しいTodoHandlerを作成します。
func NewTodoHandler(service *services.TodoService, renderer *templates.Renderer) *TodoHandler {
	return &TodoHandler{service: service, renderer: renderer}
}

// buildContext はリクエストごとにビューコンテキストを再構築します。
// X-Filterヘッダーで表示リストを絞り込みます ("active"・"completed"以外はすべて"all"扱い)。
// 3つのカウントはフィルターとは独立して計算されるため、どのリストを表示していても
// バッジの数は常に正確です。
func (h *TodoHandler) buildContext(c *gin.Context) (gin.H, error) {
	filter := c.GetHeader("X-Filter")

	var todos []*models.Todo
	var err error
	switch filter {
	case "active":
		todos, err = h.service.GetActive()
	case "completed":
		todos, err = h.service.GetCompleted()
	default:
		filter = "all"
		todos, err = h.service.GetAll()
	}
	if err != nil {
		return nil, err
	}

	todoCount, err := h.service.Count()
	if err != nil {
		return nil, err
	}
	activeTodoCount, err := h.service.CountActive()
	if err != nil {
		return nil, err
	}
	completedTodoCount, err := h.service.CountCompleted()
	if err != nil {
		return nil, err
	}

	return gin.H{
		"TodoCount":          todoCount,
		"ActiveTodoCount":    activeTodoCount,
		"CompletedTodoCount": completedTodoCount,
		"Todos":              todos,
		"Filter":             filter,
		"Oob":                false,
	}, nil
}

// htmxResponse はプライマリテンプレートとout-of-bandテンプレートを
// 共通のコンテキストでレンダリングし、改行区切りで連結してtext/htmlで返します。
// コンテキストのOobフラグを立てるため、フラグメント側で自分が
// 二次スワップ対象であることを判別できます。
func (h *TodoHandler) htmxResponse(c *gin.Context, template string, templatesOob []string) {
	if template == "" && len(templatesOob) == 0 {
		panic("handlers: template or templatesOob must be set")
	}

	ctx, err := h.buildContext(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build view context"})
		return
	}
	ctx["Oob"] = true

	names := make([]string, 0, len(templatesOob)+1)
	if template != "" {
		names = append(names, template)
	}
	names = append(names, templatesOob...)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		out, err := h.renderer.Render(name, ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render template"})
			return
		}
		parts = append(parts, out)
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(strings.Join(parts, "\n")))
}

// Index はトップページを表示します。
// HTMXからのリクエスト (HX-Requestヘッダーあり) の場合はフィルターとメインの
// フラグメントのみを返し、通常のリクエストにはページ全体を返します。
func (h *TodoHandler) Index(c *gin.Context) {
	if c.GetHeader("HX-Request") != "" {
		h.htmxResponse(c, "components/filters", []string{"components/main"})
		return
	}

	ctx, err := h.buildContext(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build view context"})
		return
	}
	c.HTML(http.StatusOK, "index.html", ctx)
}

// NewTodo は新しいTodoを作成し、メインとフッターのフラグメントを返します。
func (h *TodoHandler) NewTodo(c *gin.Context) {
	var dto TodoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	todo := &models.Todo{Title: dto.Title, Completed: dto.Completed}
	if _, err := h.service.Save(todo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save todo to database"})
		return
	}

	h.htmxResponse(c, "components/main", []string{"components/footer"})
}

// EditTodo はTodoのタイトルのみを更新し、新しいタイトルをプレーンテキストで返します。
func (h *TodoHandler) EditTodo(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var dto TodoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := h.service.Edit(id, dto.Title); err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}

	c.String(http.StatusOK, dto.Title)
}

// CompleteTodo は指定IDのTodoの完了状態を設定し、メインとフッターのフラグメントを返します。
func (h *TodoHandler) CompleteTodo(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var dto TodoCompleteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := h.service.Complete(id, dto.Completed); err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}

	h.htmxResponse(c, "components/main", []string{"components/footer"})
}

// CompleteAll はすべてのTodoの完了状態を一括で設定し、
// ヘッダー・メイン・フッターのフラグメントを返します。
func (h *TodoHandler) CompleteAll(c *gin.Context) {
	var dto TodoCompleteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := h.service.CompleteAll(dto.Completed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todos"})
		return
	}

	h.htmxResponse(c, "components/main", []string{"components/header", "components/footer"})
}

// DeleteTodo は指定IDのTodoを削除し、メインとフッターのフラグメントを返します。
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}

	h.htmxResponse(c, "components/main", []string{"components/footer"})
}

// DeleteCompleted は完了済みのTodoをすべて削除し、メインとフッターのフラグメントを返します。
func (h *TodoHandler) DeleteCompleted(c *gin.Context) {
	if err := h.service.DeleteCompleted(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete completed todos"})
		return
	}

	h.htmxResponse(c, "components/main", []string{"components/footer"})
}
