// Package integration provides embedded shell integration snippets.
package integration

import (
	"bytes"
	_ "embed"
	"os/exec"
	"path/filepath"
	"text/template"
)

// ColdRead contains the cold-cache benchmark wrapper script.
//
//go:embed cold-read.sh
var ColdRead string

// Render renders the integration script to replace the shell path.
func Render() (string, error) {
	// First use LookPath to find the shell binary
	sh, err := exec.LookPath("sh")
	if err != nil {
		return "", err
	}

	sh = filepath.ToSlash(sh)

	// Then use text/template to substitute the shell path
	tmpl, err := template.New("cold-read").Parse(ColdRead)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"SH": sh,
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
