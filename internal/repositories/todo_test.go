package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-htmx-todo/internal/models"
	"go-htmx-todo/internal/repositories"
	"go-htmx-todo/testutil"
)

func TestTodoRepository_CreateAndFind(t *testing.T) {
	db, _, todoRepo := testutil.SetupTestDB(t)
	defer db.Close()

	created, err := todoRepo.Create(&models.Todo{Title: "First task"})
	require.NoError(t, err)
	require.NotZero(t, created.ID, "Expected a non-zero Todo ID")

	found, err := todoRepo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "First task", found.Title)
	assert.False(t, found.Completed)
}

func TestTodoRepository_FindByID_NotFound(t *testing.T) {
	db, _, todoRepo := testutil.SetupTestDB(t)
	defer db.Close()

	_, err := todoRepo.FindByID(999)
	assert.ErrorIs(t, err, repositories.ErrTodoNotFound)
}

func TestTodoRepository_FindAll_InsertionOrder(t *testing.T) {
	db, _, todoRepo := testutil.SetupTestDB(t)
	defer db.Close()

	_, err := todoRepo.Create(&models.Todo{Title: "First"})
	require.NoError(t, err)
	_, err = todoRepo.Create(&models.Todo{Title: "Second"})
	require.NoError(t, err)
	_, err = todoRepo.Create(&models.Todo{Title: "Third"})
	require.NoError(t, err)

	todos, err := todoRepo.FindAll()
	require.NoError(t, err)
	require.Len(t, todos, 3)
	assert.Equal(t, "First", todos[0].Title)
	assert.Equal(t, "Second", todos[1].Title)
	assert.Equal(t, "Third", todos[2].Title)
}

func TestTodoRepository_Counts(t *testing.T) {
	db, _, todoRepo := testutil.SetupTestDB(t)
	defer db.Close()

	_, err := todoRepo.Create(&models.Todo{Title: "Active 1"})
	require.NoError(t, err)
	_, err = todoRepo.Create(&models.Todo{Title: "Active 2"})
	require.NoError(t, err)
	_, err = todoRepo.Create(&models.Todo{Title: "Done", Completed: true})
	require.NoError(t, err)

	total, err := todoRepo.Count()
	require.NoError(t, err)
	active, err := todoRepo.CountByCompleted(false)
	require.NoError(t, err)
	completed, err := todoRepo.CountByCompleted(true)
	require.NoError(t, err)

	assert.Equal(t, 3, total)
	assert.Equal(t, 2, active)
	assert.Equal(t, 1, completed)
	// active + completed = total は常に成り立つ
	assert.Equal(t, total, active+completed)
}

func TestTodoRepository_UpdateTitle(t *testing.T) {
	db, _, todoRepo := testutil.SetupTestDB(t)
	defer db.Close()

	created, err := todoRepo.Create(&models.Todo{Title: "Before", Completed: true})
	require.NoError(t, err)

	require.NoError(t, todoRepo.UpdateTitle(created.ID, "After"))

	updated, err := todoRepo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.True(t, updated.Completed, "Expected completed to be untouched by UpdateTitle")

	assert.ErrorIs(t, todoRepo.UpdateTitle(999, "x"), repositories.ErrTodoNotFound)
}

func TestTodoRepository_SetCompleted(t *testing.T) {
	db, _, todoRepo := testutil.SetupTestDB(t)
	defer db.Close()

	created, err := todoRepo.Create(&models.Todo{Title: "Task"})
	require.NoError(t, err)

	require.NoError(t, todoRepo.SetCompleted(created.ID, true))

	updated, err := todoRepo.FindByID(created.ID)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Task", updated.Title, "Expected title to be untouched by SetCompleted")

	assert.ErrorIs(t, todoRepo.SetCompleted(999, true), repositories.ErrTodoNotFound)
}

// 値が変わらない更新でも、行が存在する限りErrTodoNotFoundにならないこと。
// (完了済みタブの二重クリックや、変更なしのEnterでの再送信で起こる)
func TestTodoRepository_NoopUpdateIsNotNotFound(t *testing.T) {
	db, _, todoRepo := testutil.SetupTestDB(t)
	defer db.Close()

	created, err := todoRepo.Create(&models.Todo{Title: "Task"})
	require.NoError(t, err)

	// 同じ完了状態を2回続けて設定する
	require.NoError(t, todoRepo.SetCompleted(created.ID, true))
	require.NoError(t, todoRepo.SetCompleted(created.ID, true))

	// 同じタイトルでの更新も同様
	require.NoError(t, todoRepo.UpdateTitle(created.ID, "Task"))
	require.NoError(t, todoRepo.UpdateTitle(created.ID, "Task"))

	found, err := todoRepo.FindByID(created.ID)
	require.NoError(t, err)
	assert.True(t, found.Completed)
	assert.Equal(t, "Task", found.Title)
}

func TestTodoRepository_SetAllCompleted(t *testing.T) {
	db, _, todoRepo := testutil.SetupTestDB(t)
	defer db.Close()

	// 対象が0件でもエラーにならない
	require.NoError(t, todoRepo.SetAllCompleted(true))

	_, err := todoRepo.Create(&models.Todo{Title: "Task 1"})
	require.NoError(t, err)
	_, err = todoRepo.Create(&models.Todo{Title: "Task 2", Completed: true})
	require.NoError(t, err)

	require.NoError(t, todoRepo.SetAllCompleted(true))

	active, err := todoRepo.CountByCompleted(false)
	require.NoError(t, err)
	assert.Equal(t, 0, active)
}

func TestTodoRepository_Delete(t *testing.T) {
	db, _, todoRepo := testutil.SetupTestDB(t)
	defer db.Close()

	created, err := todoRepo.Create(&models.Todo{Title: "Task"})
	require.NoError(t, err)

	require.NoError(t, todoRepo.Delete(created.ID))

	_, err = todoRepo.FindByID(created.ID)
	assert.ErrorIs(t, err, repositories.ErrTodoNotFound)

	assert.ErrorIs(t, todoRepo.Delete(created.ID), repositories.ErrTodoNotFound)
}

func TestTodoRepository_DeleteCompleted(t *testing.T) {
	db, _, todoRepo := testutil.SetupTestDB(t)
	defer db.Close()

	_, err := todoRepo.Create(&models.Todo{Title: "Active"})
	require.NoError(t, err)
	_, err = todoRepo.Create(&models.Todo{Title: "Done 1", Completed: true})
	require.NoError(t, err)
	_, err = todoRepo.Create(&models.Todo{Title: "Done 2", Completed: true})
	require.NoError(t, err)

	require.NoError(t, todoRepo.DeleteCompleted())

	total, err := todoRepo.Count()
	require.NoError(t, err)
	completed, err := todoRepo.CountByCompleted(true)
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	assert.Equal(t, 0, completed)

	// 対象が0件になった後でもエラーにならない
	require.NoError(t, todoRepo.DeleteCompleted())
}
