package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPage(t *testing.T) {
	page := "ssh -t {{.SSHPortFlag}}{{.SSHHost}}"
	assert.Equal(t, "ssh -t play.example.com", renderPage(page, "play.example.com", "22"))
	assert.Equal(t, "ssh -t -p 2222 play.example.com", renderPage(page, "play.example.com", "2222"))
}

func TestEmbeddedPageHasPlaceholders(t *testing.T) {
	assert.Contains(t, htmlPage, "{{.SSHHost}}")
	assert.Contains(t, htmlPage, "{{.SSHPortFlag}}")
}
