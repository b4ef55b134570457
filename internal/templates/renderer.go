package templates

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dataproanalytics/workflow-crm/internal/httperr"
)

// Message is the rendered result, ready to be persisted as a
// Communication by the caller.
type Message struct {
	Subject string
	Body    string
}

// MissingVariableError names the first placeholder with no value in
// the variable map. Rendering is all-or-nothing.
type MissingVariableError struct {
	Template string
	Variable string
}

func (e MissingVariableError) Error() string {
	return fmt.Sprintf("template %s: missing variable %q", e.Template, e.Variable)
}

// ErrTemplateNotFound has the business code surfaced over HTTP.
var ErrTemplateNotFound = httperr.ErrBusiness("template_not_found")

var placeholderRe = regexp.MustCompile(`\{([a-z][a-z0-9_]*)\}`)

// Renderer fills template placeholders from a whitelist variable map.
// It is pure: no store access, no side effects; the caller persists
// the result and bumps the usage counter.
type Renderer struct {
	catalog Catalog
}

func NewRenderer(catalog Catalog) *Renderer {
	return &Renderer{catalog: catalog}
}

func (r *Renderer) Render(name string, vars map[string]string) (Message, error) {
	tpl, ok := r.catalog.Get(name)
	if !ok {
		return Message{}, ErrTemplateNotFound
	}

	for _, placeholder := range placeholders(tpl.Subject, tpl.Body) {
		if _, ok := vars[placeholder]; !ok {
			return Message{}, MissingVariableError{
				Template: name,
				Variable: placeholder,
			}
		}
	}

	return Message{
		Subject: substitute(tpl.Subject, vars),
		Body:    substitute(tpl.Body, vars),
	}, nil
}

// placeholders returns every placeholder referenced by the patterns,
// in order of first appearance.
func placeholders(patterns ...string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range patterns {
		for _, m := range placeholderRe.FindAllStringSubmatch(p, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				out = append(out, m[1])
			}
		}
	}
	return out
}

func substitute(pattern string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(pattern, func(m string) string {
		key := strings.TrimSuffix(strings.TrimPrefix(m, "{"), "}")
		if v, ok := vars[key]; ok {
			return v
		}
		return m
	})
}
