// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/dustin/go-humanize"
)

// Page names
const (
	Home  = "home"
	Polls = "polls"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
}

// Renderer executes the embedded page templates
type Renderer struct {
	pages map[string]*template.Template
}

// Parse loads every page on top of the shared layout
func Parse() (*Renderer, error) {
	r := &Renderer{pages: map[string]*template.Template{}}

	for _, name := range []string{Home, Polls} {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

// Render writes the named page. Output is buffered so a failed
// execution leaves w untouched.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
