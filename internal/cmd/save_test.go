package cmd

import (
	"os"
	"strings"
	"testing"
)

func TestSaveRewritesCanonicalForm(t *testing.T) {
	// Compact JSON on disk becomes 4-space-indented on save.
	app, out, path := setupTestApp(t, "config.json", `{"a":{"b":1}}`)

	cmd := newSaveCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !strings.Contains(out.String(), "Saved ") {
		t.Errorf("save output = %q", out.String())
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if !strings.Contains(string(raw), "    \"a\"") {
		t.Errorf("saved JSON not indented with 4 spaces:\n%s", raw)
	}
}
