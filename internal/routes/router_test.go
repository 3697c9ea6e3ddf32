package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-htmx-todo/testutil"
)

func TestHealthz(t *testing.T) {
	db, router, _ := testutil.SetupTestDB(t)
	defer db.Close()

	req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

// DELETE /todo/completed は /todo/:id より静的ルートとして優先されること。
func TestDeleteCompletedRouteTakesPrecedence(t *testing.T) {
	db, router, todoRepo := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.CreateTestTodo(t, router, todoRepo, "Still here", false)

	req, _ := http.NewRequest(http.MethodDelete, "/todo/completed", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// :idハンドラーに落ちるとAtoiが失敗して400になる
	require.Equal(t, http.StatusOK, w.Code)

	count, err := todoRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count, "Active todos must survive DELETE /todo/completed")
}
