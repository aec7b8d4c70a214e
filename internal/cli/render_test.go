package cli

import (
	"context"
	"strings"
	"testing"

	"resumelens/internal/config"
)

func renderTestContext(cfg *config.Config) context.Context {
	return context.WithValue(context.Background(), configKey, cfg)
}

func TestRenderStyleDefaultsFromConfig(t *testing.T) {
	cfg := &config.Config{Render: config.RenderConfig{DefaultStyle: "modern"}}
	renderCmd.SetContext(renderTestContext(cfg))

	renderStyle = ""
	renderFormat = "html"
	t.Cleanup(func() { renderStyle = ""; renderFormat = "html" })

	if err := renderCmd.PreRunE(renderCmd, []string{"resume.txt"}); err != nil {
		t.Fatalf("PreRunE failed: %v", err)
	}
	if renderStyle != "modern" {
		t.Errorf("style = %q, expected the configured default", renderStyle)
	}
}

func TestRenderStyleExplicitFlagWins(t *testing.T) {
	cfg := &config.Config{Render: config.RenderConfig{DefaultStyle: "modern"}}
	renderCmd.SetContext(renderTestContext(cfg))

	renderStyle = "professional"
	renderFormat = "html"
	t.Cleanup(func() { renderStyle = ""; renderFormat = "html" })

	if err := renderCmd.PreRunE(renderCmd, []string{"resume.txt"}); err != nil {
		t.Fatalf("PreRunE failed: %v", err)
	}
	if renderStyle != "professional" {
		t.Errorf("style = %q, expected the flag value to win", renderStyle)
	}
}

func TestRenderStyleRejectsUnknown(t *testing.T) {
	cfg := &config.Config{Render: config.RenderConfig{DefaultStyle: "professional"}}
	renderCmd.SetContext(renderTestContext(cfg))

	renderStyle = "fancy"
	renderFormat = "html"
	t.Cleanup(func() { renderStyle = ""; renderFormat = "html" })

	err := renderCmd.PreRunE(renderCmd, []string{"resume.txt"})
	if err == nil {
		t.Fatal("expected an error for an unknown style")
	}
	if !strings.Contains(err.Error(), "unsupported render style") {
		t.Errorf("error = %v, expected a style validation error", err)
	}
}
