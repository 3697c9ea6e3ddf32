// Package modelsはTodoを定義します。
package models

// Todo はToDoタスクのデータベース構造体を表します。
// JSONタグ: クライアントとの通信用
// bindingタグ: Ginでのリクエストバリデーション用 (titleは必須)
type Todo struct {
	// ID: 主キー (自動採番)。一度採番されたら変更されません。
	ID int `json:"id,omitempty"`

	// Title: タスクのタイトル（必須項目）
	Title string `json:"title" binding:"required"`

	// Completed: 完了状態
	Completed bool `json:"completed"`
}
