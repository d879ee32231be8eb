package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/samber/lo"

	"voice2site/internal/app/errors"
	"voice2site/internal/app/model"
)

// Theme selects the presentational template
type Theme string

const (
	ThemeCard  Theme = "card"
	ThemePlain Theme = "plain"
)

// EmptyServicesPolicy decides what happens to the services block when the list is empty
type EmptyServicesPolicy string

const (
	EmptyServicesOmit        EmptyServicesPolicy = "omit"
	EmptyServicesPlaceholder EmptyServicesPolicy = "placeholder"
)

const (
	DefaultPlaceholder = "General Services"
	defaultTitle       = "Website"
)

// Options configures a Renderer
type Options struct {
	Theme         Theme
	EmptyServices EmptyServicesPolicy
	Placeholder   string
}

// DefaultOptions renders the card theme and omits an empty services block
func DefaultOptions() Options {
	return Options{
		Theme:         ThemeCard,
		EmptyServices: EmptyServicesOmit,
		Placeholder:   DefaultPlaceholder,
	}
}

var templates = template.Must(template.New("site").Parse(layouts))

// Renderer maps a WebsiteSpec to a self-contained HTML document
type Renderer struct {
	opts Options
}

type view struct {
	Title        string
	Name         string
	Category     string
	Style        string
	Subtitle     string
	Services     []string
	ShowServices bool
}

// NewRenderer validates opts and fills in defaults for empty fields
func NewRenderer(opts Options) (*Renderer, error) {
	defaults := DefaultOptions()
	if opts.Theme == "" {
		opts.Theme = defaults.Theme
	}
	if opts.EmptyServices == "" {
		opts.EmptyServices = defaults.EmptyServices
	}
	if opts.Placeholder == "" {
		opts.Placeholder = defaults.Placeholder
	}

	switch opts.Theme {
	case ThemeCard, ThemePlain:
	default:
		return nil, errors.InvalidField("theme", fmt.Sprintf("unknown theme %q", opts.Theme))
	}
	switch opts.EmptyServices {
	case EmptyServicesOmit, EmptyServicesPlaceholder:
	default:
		return nil, errors.InvalidField("empty services policy", fmt.Sprintf("unknown policy %q", opts.EmptyServices))
	}

	return &Renderer{opts: opts}, nil
}

// Render produces the document for spec. It is total: every spec, including the empty one,
// yields a complete document. All values are emitted as escaped text.
func (r *Renderer) Render(spec model.WebsiteSpec) string {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, string(r.opts.Theme), r.view(spec)); err != nil {
		// templates are static and data is plain strings; failure means a broken template
		panic(fmt.Sprintf("render %s template: %v", r.opts.Theme, err))
	}
	return buf.String()
}

func (r *Renderer) view(spec model.WebsiteSpec) view {
	v := view{
		Title:    spec.Name,
		Name:     spec.Name,
		Category: spec.Category,
		Style:    spec.Style,
		Subtitle: strings.Join(lo.Compact([]string{spec.Category, spec.Style}), " • "),
		Services: spec.Services,
	}
	if strings.TrimSpace(v.Title) == "" {
		v.Title = defaultTitle
	}

	switch {
	case len(spec.Services) > 0:
		v.ShowServices = true
	case r.opts.EmptyServices == EmptyServicesPlaceholder:
		v.Services = []string{r.opts.Placeholder}
		v.ShowServices = true
	}
	return v
}
