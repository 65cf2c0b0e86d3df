package htmlattrs_test

import (
	"errors"
	"strings"
	"testing"

	htmlattrs "github.com/goliatone/go-htmlattrs"
)

func TestAttributeString(t *testing.T) {
	rendered, err := htmlattrs.AttributeString(map[string]any{
		"class": "btn",
		"id":    "save",
	})
	if err != nil {
		t.Fatalf("attribute string: %v", err)
	}
	if got := string(rendered); got != ` class="btn" id="save"` {
		t.Fatalf("render mismatch: %q", got)
	}
}

func TestAttributeString_NilValue(t *testing.T) {
	if _, err := htmlattrs.AttributeString(map[string]any{"title": nil}); !errors.Is(err, htmlattrs.ErrNilAttributeValue) {
		t.Fatalf("expected ErrNilAttributeValue, got %v", err)
	}
}

func TestRootBuilders(t *testing.T) {
	bag := htmlattrs.FromPairs(htmlattrs.KV("data_role", "action")).AddClass("btn")
	rendered, err := bag.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(rendered); got != ` data-role="action" class="btn"` {
		t.Fatalf("render mismatch: %q", got)
	}
}

func TestRootLoadPresets(t *testing.T) {
	presets, err := htmlattrs.LoadPresets(strings.NewReader("button:\n  class: btn\n"))
	if err != nil {
		t.Fatalf("load presets: %v", err)
	}
	if _, ok := presets.Bag("button"); !ok {
		t.Fatal("expected button preset")
	}
}
