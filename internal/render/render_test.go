/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package render

import (
	"strings"
	"testing"

	"github.com/lumen-pages/navgen/internal/discover"
	"github.com/stretchr/testify/assert"
)

func TestFragment_NoProjects(t *testing.T) {
	assert.Equal(t, EmptyMessage, Fragment(nil))
	assert.Equal(t, EmptyMessage, Fragment([]discover.Project{}))
	assert.Contains(t, EmptyMessage, "No classified projects")
}

func TestFragment_SingleProjectWithDescription(t *testing.T) {
	projects := []discover.Project{
		{Name: "Demo", URL: "demo/", Description: "A sample"},
	}

	expected := strings.Join([]string{
		`<ul class="classified-projects">`,
		`  <li>`,
		`    <a href="demo/" title="A sample">Demo</a>`,
		`    <span class="description">A sample</span>`,
		`  </li>`,
		`</ul>`,
	}, "\n")

	assert.Equal(t, expected, Fragment(projects))
}

func TestFragment_ProjectWithoutDescription(t *testing.T) {
	projects := []discover.Project{
		{Name: "Tools", URL: "tools/"},
	}

	expected := strings.Join([]string{
		`<ul class="classified-projects">`,
		`  <li>`,
		`    <a href="tools/">Tools</a>`,
		`  </li>`,
		`</ul>`,
	}, "\n")

	result := Fragment(projects)
	assert.Equal(t, expected, result)
	assert.NotContains(t, result, "title=")
	assert.NotContains(t, result, "span")
}

func TestFragment_EscapesProjectText(t *testing.T) {
	projects := []discover.Project{
		{
			Name:        `<b>Bold & "Quoted"</b>`,
			URL:         `x/?a=1&b=2`,
			Description: `5 < 6 & "so on"`,
		},
	}

	result := Fragment(projects)

	assert.Contains(t, result, `&lt;b&gt;Bold &amp; &#34;Quoted&#34;&lt;/b&gt;`)
	assert.Contains(t, result, `href="x/?a=1&amp;b=2"`)
	assert.Contains(t, result, `title="5 &lt; 6 &amp; &#34;so on&#34;"`)
	assert.Contains(t, result, `<span class="description">5 &lt; 6 &amp; &#34;so on&#34;</span>`)

	// The raw markup must never survive into the fragment
	assert.NotContains(t, result, `<b>`)
	assert.NotContains(t, result, `"Quoted"`)
}

func TestFragment_PreservesInputOrder(t *testing.T) {
	projects := []discover.Project{
		{Name: "Alpha", URL: "a-proj/"},
		{Name: "Beta", URL: "b-proj/"},
		{Name: "Gamma", URL: "c-proj/"},
	}

	result := Fragment(projects)

	alpha := strings.Index(result, "Alpha")
	beta := strings.Index(result, "Beta")
	gamma := strings.Index(result, "Gamma")
	assert.True(t, alpha >= 0 && alpha < beta && beta < gamma,
		"projects must render in input order, got: %s", result)
}

func TestFragment_Deterministic(t *testing.T) {
	projects := []discover.Project{
		{Name: "One", URL: "one/", Description: "first"},
		{Name: "Two", URL: "two/"},
	}

	assert.Equal(t, Fragment(projects), Fragment(projects))
}
