// Package templatesは埋め込みHTMLテンプレートのレンダリングを提供します。
package templates

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates
var files embed.FS

// Renderer はテンプレート名とコンテキストからHTML文字列を生成します。
type Renderer struct {
	tmpl *template.Template
}

// New は埋め込みテンプレートをパースしてRendererを作成します。
// テンプレートはビルド時に埋め込まれるため、パース失敗はプログラマーエラーです。
func New() *Renderer {
	tmpl := template.Must(template.ParseFS(files, "templates/*.html", "templates/components/*.html"))
	return &Renderer{tmpl: tmpl}
}

// Template はパース済みテンプレートセットを返します (GinのSetHTMLTemplate用)。
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Render は指定された名前のテンプレートをコンテキストでレンダリングし、HTML文字列を返します。
func (r *Renderer) Render(name string, data any) (string, error) {
	var sb strings.Builder
	if err := r.tmpl.ExecuteTemplate(&sb, name, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
