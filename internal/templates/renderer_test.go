package templates

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataproanalytics/workflow-crm/internal/httperr"
)

func fullVars(t Template) map[string]string {
	vars := make(map[string]string, len(t.Variables))
	for _, v := range t.Variables {
		vars[v] = "value-" + v
	}
	return vars
}

func TestRenderAllBuiltinsWithDeclaredVars(t *testing.T) {
	catalog := BuiltinCatalog()
	r := NewRenderer(catalog)

	for _, tpl := range catalog.List() {
		msg, err := r.Render(tpl.Name, fullVars(tpl))
		require.NoError(t, err, "template %s", tpl.Name)
		assert.NotEmpty(t, msg.Subject)
		assert.NotEmpty(t, msg.Body)
		assert.NotContains(t, msg.Subject, "{", "unsubstituted placeholder in subject of %s", tpl.Name)
		assert.NotContains(t, msg.Body, "{", "unsubstituted placeholder in body of %s", tpl.Name)
	}
}

func TestRenderMissingVariableNamesIt(t *testing.T) {
	catalog := BuiltinCatalog()
	r := NewRenderer(catalog)

	for _, tpl := range catalog.List() {
		for _, omit := range tpl.Variables {
			vars := fullVars(tpl)
			delete(vars, omit)

			_, err := r.Render(tpl.Name, vars)
			require.Error(t, err, "template %s without %s", tpl.Name, omit)

			var mv MissingVariableError
			require.True(t, errors.As(err, &mv))
			assert.Equal(t, omit, mv.Variable)
			assert.Equal(t, tpl.Name, mv.Template)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := NewRenderer(BuiltinCatalog())

	_, err := r.Render("does_not_exist", nil)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "template_not_found"))
}

func TestRenderSubstitutesValues(t *testing.T) {
	r := NewRenderer(BuiltinCatalog())

	msg, err := r.Render(NameProjectKickoff, map[string]string{
		"client_name":   "John Smith",
		"project_type":  "Market Research",
		"project_title": "E-commerce Market Analysis",
		"package_type":  "Standard",
		"due_date":      "2026-09-07",
		"seller_name":   "Jane Doe",
	})
	require.NoError(t, err)

	assert.Equal(t, "Project Kickoff - E-commerce Market Analysis", msg.Subject)
	assert.Contains(t, msg.Body, "Hi John Smith,")
	assert.Contains(t, msg.Body, "Delivery Date: 2026-09-07")
	assert.Contains(t, msg.Body, "Jane Doe")
}

func TestCatalogGetAndList(t *testing.T) {
	catalog := BuiltinCatalog()

	names := []string{
		NameInitialInquiry,
		NameProjectKickoff,
		NameProgressUpdate,
		NameDeliveryNotification,
		NameFollowUp,
	}

	for _, name := range names {
		tpl, ok := catalog.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, name, tpl.Name)
		assert.NotEmpty(t, tpl.Variables)
	}

	assert.Len(t, catalog.List(), len(names))

	_, ok := catalog.Get("nope")
	assert.False(t, ok)
}
