// Package templates adds an HTML template renderer property to a rhino
// context, grounded on the original rhino.ext.jinja2.JinjaRenderer: a
// context property exposing a render_template(name, values) call that
// returns an Entity carrying the rendered body and content type. The
// example corpus has no Jinja2 equivalent, so this package wraps the
// standard library's html/template, with named templates described by a
// YAML manifest (parsed with gopkg.in/yaml.v3, the same library the
// ambient logging/appconfig.go uses for its own YAML config).
package templates

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arkd0ng/rhino"
)

// PropertyName is the context property name handlers use to fetch the
// renderer: rhino.Prop[*templates.Renderer](ctx, templates.PropertyName).
const PropertyName = "templates"

// ContentType is the content type every rendered Entity carries, matching
// JinjaRenderer.content_type.
const ContentType = "text/html; charset=utf-8"

// Manifest describes the named templates a Renderer should load, e.g.:
//
//	templates:
//	  index: index.html.tmpl
//	  profile: profile.html.tmpl
type Manifest struct {
	Templates map[string]string `yaml:"templates"`
}

// LoadManifest parses a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Renderer renders named templates from a directory, grounded on
// JinjaRenderer(directory).
type Renderer struct {
	dir  string
	tmpl *template.Template
}

// New parses every template named in manifest, relative to dir.
func New(dir string, manifest *Manifest) (*Renderer, error) {
	t := template.New("")
	for name, file := range manifest.Templates {
		parsed, err := template.ParseFiles(filepath.Join(dir, file))
		if err != nil {
			return nil, err
		}
		t, err = t.AddParseTree(name, parsed.Tree)
		if err != nil {
			return nil, err
		}
	}
	return &Renderer{dir: dir, tmpl: t}, nil
}

// Render executes the named template against data and returns it wrapped
// in an *rhino.Entity with the HTML content type set — mirroring
// JinjaRenderer.render_template's Entity(body=..., content_type=...)
// return value.
func (r *Renderer) Render(name string, data any) (*rhino.Entity, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return rhino.NewEntity(buf.Bytes(), ContentType), nil
}

// Install registers the "templates" context property on m, exposing the
// same *Renderer to every request (templates are parsed once at startup,
// not per-request).
func Install(m *rhino.Mapper, r *Renderer) error {
	return m.AddContextProperty(PropertyName, func(ctx *rhino.Context) (any, error) {
		return r, nil
	}, true)
}
