package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/yosssi/gohtml"

	"github.com/wolfman30/mgagency-site/internal/catalog"
	"github.com/wolfman30/mgagency-site/pkg/logging"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Options configures a Renderer.
type Options struct {
	Content Content
	Catalog *catalog.Catalog
	// Pretty indents the rendered page. Meant for development only.
	Pretty bool
	Now    func() time.Time
	Logger *logging.Logger
}

// Renderer serves the landing page and its static assets.
type Renderer struct {
	page    *template.Template
	content Content
	catalog *catalog.Catalog
	pretty  bool
	now     func() time.Time
	logger  *logging.Logger
	static  http.Handler
}

// NewRenderer parses the embedded page template.
func NewRenderer(opts Options) (*Renderer, error) {
	page, err := template.ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("site: parse templates: %w", err)
	}
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("site: static assets: %w", err)
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if opts.Content.Brand == "" {
		opts.Content.Brand = DefaultContent().Brand
	}
	return &Renderer{
		page:    page,
		content: opts.Content,
		catalog: opts.Catalog,
		pretty:  opts.Pretty,
		now:     opts.Now,
		logger:  opts.Logger,
		static:  http.FileServer(http.FS(sub)),
	}, nil
}

// Render writes the page for the given fallback outcome ("" for none).
func (r *Renderer) Render(outcome string) ([]byte, error) {
	data := pageData{
		Content: r.content,
		Catalog: r.catalog.Tags(),
		Notice:  bannerFor(outcome),
		Year:    r.now().Year(),
	}
	var buf bytes.Buffer
	if err := r.page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("site: render page: %w", err)
	}
	if r.pretty {
		return gohtml.FormatBytes(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// Page handles GET /.
func (r *Renderer) Page(w http.ResponseWriter, req *http.Request) {
	body, err := r.Render(req.URL.Query().Get("quote"))
	if err != nil {
		r.logger.Error("failed to render page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// Static serves the embedded assets. Mount it with the /static prefix stripped.
func (r *Renderer) Static() http.Handler {
	return r.static
}
