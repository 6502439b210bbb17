package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/brandyemurray/compare-and-save/internal/domain"
	"github.com/google/uuid"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names understood by the renderer
const (
	IndexPage   = "index.html"
	PreviewPage = "preview.html"
	PrintPage   = "print.html"
)

// FormRow is one editable product line on the input form
type FormRow struct {
	Index           int
	Name            string
	ReferencePrice  string
	CompetitorPrice string
	Carries         string
}

// FormView holds the input form state
type FormView struct {
	Competitors []string
	Competitor  string
	CheckDate   string
	StoreLabel  string
	Rows        []FormRow
	MaxRows     int
}

// PageData is passed to the index and preview pages
type PageData struct {
	Title string
	Form  FormView
	Sheet *domain.CardSheet
	Error string
}

// PrintData is passed to the standalone print document
type PrintData struct {
	Sheet     *domain.CardSheet
	AutoPrint bool
}

// Renderer renders card pages from embedded templates
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		// SVG path ids must be unique within a document
		"arcID": func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")
		},
		"add": func(a, b int) int { return a + b },
	}

	tpl, err := template.New("root").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tpl}, nil
}

// Templates exposes the parsed template set, e.g. for gin's SetHTMLTemplate
func (r *Renderer) Templates() *template.Template {
	return r.templates
}

// Render executes a named page
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	if r == nil {
		return fmt.Errorf("renderer not initialised")
	}
	return r.templates.ExecuteTemplate(w, name, data)
}

// WritePrintDocument writes the standalone print document for a sheet
func (r *Renderer) WritePrintDocument(w io.Writer, sheet *domain.CardSheet, autoPrint bool) error {
	if sheet == nil {
		return fmt.Errorf("%w: nil sheet", domain.ErrInvalidRequest)
	}
	return r.Render(w, PrintPage, PrintData{Sheet: sheet, AutoPrint: autoPrint})
}
