package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"strings"

	"github.com/sngm3741/job-application/web/internal/application"
	"github.com/sngm3741/job-application/web/internal/domain"
)

const (
	// FormPage is the static input-collection page.
	FormPage = "application_form.html"
	// SubmittedPage is the confirmation page rendered after a POST.
	SubmittedPage = "application_submitted.html"
	// ErrorPage is rendered for client and server errors.
	ErrorPage = "error.html"

	layoutFile = "layout.html"
)

var pages = []string{FormPage, SubmittedPage, ErrorPage}

//go:embed templates/*.html
var embedded embed.FS

// Options configures where templates come from.
type Options struct {
	// Dir overrides the embedded templates with files on disk.
	Dir string
	// Reload re-parses templates from Dir on every render. Ignored without Dir.
	Reload bool
}

// Renderer は html/template でページを描画する。パース済みテンプレートは生成後に変更しないため
// 複数ゴルーチンから同時に利用できる。
type Renderer struct {
	fsys   fs.FS
	reload bool
	pages  map[string]*template.Template
}

// New parses every page once and returns a ready Renderer.
func New(opts Options) (*Renderer, error) {
	var fsys fs.FS
	if dir := strings.TrimSpace(opts.Dir); dir != "" {
		fsys = os.DirFS(dir)
	} else {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, fmt.Errorf("embedded templates: %w", err)
		}
		fsys = sub
	}

	parsed, err := parsePages(fsys)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		fsys:   fsys,
		reload: opts.Reload && strings.TrimSpace(opts.Dir) != "",
		pages:  parsed,
	}, nil
}

func parsePages(fsys fs.FS) (map[string]*template.Template, error) {
	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).ParseFS(fsys, layoutFile, page)
		if err != nil {
			return nil, fmt.Errorf("テンプレート %s のパースに失敗: %w", page, err)
		}
		parsed[page] = tmpl
	}
	return parsed, nil
}

// Render executes the named page into a buffer so callers never emit a partial body.
func (r *Renderer) Render(page string, data any) ([]byte, error) {
	set := r.pages
	if r.reload {
		reloaded, err := parsePages(r.fsys)
		if err != nil {
			return nil, err
		}
		set = reloaded
	}

	tmpl, ok := set[page]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("テンプレート %s の描画に失敗: %w", page, err)
	}
	return buf.Bytes(), nil
}

// ConfirmationData は確認画面テンプレートの描画コンテキストを組み立てる。
// structured では field→value のマップ、text ではエスケープ済みの行を <br> で連結した HTML を渡す。
func ConfirmationData(c application.Confirmation) map[string]any {
	var details any
	switch c.Details.Format {
	case domain.DisplayText:
		lines := c.Details.Lines()
		escaped := make([]string, len(lines))
		for i, line := range lines {
			escaped[i] = template.HTMLEscapeString(line)
		}
		details = template.HTML(strings.Join(escaped, "<br>"))
	default:
		details = c.Details.Map()
	}

	return map[string]any{
		"application_details": details,
		"application_status":  c.Status,
		"application_format":  c.Details.Format.String(),
	}
}

// ErrorData builds the render context of ErrorPage.
func ErrorData(status int, title, message string) map[string]any {
	return map[string]any{
		"status":  status,
		"title":   title,
		"message": message,
	}
}
