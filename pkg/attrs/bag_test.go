package attrs_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-htmlattrs/pkg/attrs"
)

func mustRender(t *testing.T, bag *attrs.Bag) string {
	t.Helper()
	rendered, err := bag.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(rendered)
}

func TestBag_AttrFirstWriteOrder(t *testing.T) {
	bag := attrs.New().
		Attr("id", "submit").
		Attr("tabindex", 0).
		Attr("disabled", true)

	want := ` id="submit" tabindex="0" disabled="true"`
	if got := mustRender(t, bag); got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}

	if diff := cmp.Diff([]string{"id", "tabindex", "disabled"}, bag.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestBag_AttrOverwriteKeepsSlot(t *testing.T) {
	bag := attrs.New().
		Attr("id", "first").
		Attr("role", "button").
		Attr("id", "second")

	want := ` id="second" role="button"`
	if got := mustRender(t, bag); got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestBag_AttrClassOverwrites(t *testing.T) {
	bag := attrs.New().
		Attr("class", "a").
		Attr("class", "b")

	if got := mustRender(t, bag); got != ` class="b"` {
		t.Fatalf("expected class overwrite, got %q", got)
	}
}

func TestBag_AddClassAccumulates(t *testing.T) {
	bag := attrs.New().AddClass("a").AddClass("b")
	if got := mustRender(t, bag); got != ` class="a b"` {
		t.Fatalf("expected accumulated classes, got %q", got)
	}

	repeated := attrs.New().AddClass("a").AddClass("a")
	if got := mustRender(t, repeated); got != ` class="a a"` {
		t.Fatalf("expected verbatim duplicates, got %q", got)
	}
}

func TestBag_AttrOverridesAccumulatedClass(t *testing.T) {
	bag := attrs.New().AddClass("a").Attr("class", "b")
	if got := mustRender(t, bag); got != ` class="b"` {
		t.Fatalf("expected authoritative overwrite, got %q", got)
	}
}

func TestBag_AddClassAfterAttr(t *testing.T) {
	bag := attrs.New().Attr("class", "c1 c2").AddClass("c3")
	if got := mustRender(t, bag); got != ` class="c1 c2 c3"` {
		t.Fatalf("expected class append, got %q", got)
	}
}

func TestBag_PairKeysNormalize(t *testing.T) {
	bag := attrs.FromPairs(
		attrs.KV("data_somedata", "x"),
		attrs.KV("aria_label", "Close"),
	)

	want := ` data-somedata="x" aria-label="Close"`
	if got := mustRender(t, bag); got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestBag_MapKeysVerbatim(t *testing.T) {
	bag := attrs.FromMap(map[string]any{"data_foo": "x"})
	if got := mustRender(t, bag); got != ` data_foo="x"` {
		t.Fatalf("expected verbatim map key, got %q", got)
	}
}

func TestBag_MergeSortsNewKeysAndKeepsSlots(t *testing.T) {
	bag := attrs.New().
		Attr("style", "width: 100%;").
		Merge(map[string]any{
			"role":  "button",
			"id":    "save",
			"style": "width: 50%;",
		})

	want := ` style="width: 50%;" id="save" role="button"`
	if got := mustRender(t, bag); got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestBag_RenderEscapesKeyAndValue(t *testing.T) {
	bag := attrs.New().Attr("value", `"rubbi&h"`)
	want := ` value="&#34;rubbi&amp;h&#34;"`
	if got := mustRender(t, bag); got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}

	hostile := attrs.New().Attr(`on<load>`, "x")
	if got := mustRender(t, hostile); got != ` on&lt;load&gt;="x"` {
		t.Fatalf("expected escaped key, got %q", got)
	}
}

func TestBag_RenderEmpty(t *testing.T) {
	if got := mustRender(t, attrs.New()); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

func TestBag_EndToEnd(t *testing.T) {
	bag := attrs.FromPairs(
		attrs.KV("style", "width: 100%;"),
		attrs.KV("class", "c1 c2"),
	).AddClass("c3")

	want := ` style="width: 100%;" class="c1 c2 c3"`
	if got := mustRender(t, bag); got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestBag_NilValueLatchesWithoutMutation(t *testing.T) {
	bag := attrs.New().Attr("id", "keep").Attr("title", nil)

	if !errors.Is(bag.Err(), attrs.ErrNilAttributeValue) {
		t.Fatalf("expected ErrNilAttributeValue, got %v", bag.Err())
	}
	if _, err := bag.Render(); !errors.Is(err, attrs.ErrNilAttributeValue) {
		t.Fatalf("expected render to surface the latched error, got %v", err)
	}
	if bag.String() != "" {
		t.Fatalf("expected Stringer to return empty on latched error")
	}

	if _, ok := bag.Get("title"); ok {
		t.Fatal("failed call must not write the entry")
	}
	if value, ok := bag.Get("id"); !ok || value != "keep" {
		t.Fatalf("prior entry must survive, got %q (present=%v)", value, ok)
	}
}

func TestBag_AttrsValidatesBeforeCommit(t *testing.T) {
	bag := attrs.New().Attrs(
		attrs.KV("id", "first"),
		attrs.KV("title", nil),
	)

	if !errors.Is(bag.Err(), attrs.ErrNilAttributeValue) {
		t.Fatalf("expected ErrNilAttributeValue, got %v", bag.Err())
	}
	if bag.Len() != 0 {
		t.Fatalf("expected no partial commit, got %d entries", bag.Len())
	}
}

func TestBag_SetErrors(t *testing.T) {
	bag := attrs.New()

	if err := bag.Set("", "x"); !errors.Is(err, attrs.ErrInvalidKeySource) {
		t.Fatalf("expected ErrInvalidKeySource for empty key, got %v", err)
	}
	if err := bag.Set("id", nil); !errors.Is(err, attrs.ErrNilAttributeValue) {
		t.Fatalf("expected ErrNilAttributeValue, got %v", err)
	}
	if bag.Err() != nil {
		t.Fatalf("Set must not latch errors, got %v", bag.Err())
	}
	if bag.Len() != 0 {
		t.Fatalf("failed Set must not mutate, got %d entries", bag.Len())
	}
}

func TestBag_SetPairNormalizes(t *testing.T) {
	bag := attrs.New()
	if err := bag.SetPair(attrs.KV("data_role", "action")); err != nil {
		t.Fatalf("set pair: %v", err)
	}
	if value, ok := bag.Get("data-role"); !ok || value != "action" {
		t.Fatalf("expected normalized key data-role, got %q (present=%v)", value, ok)
	}
}

func TestBag_CloneIsIndependent(t *testing.T) {
	original := attrs.New().Attr("id", "a").AddClass("x")
	clone := original.Clone().Attr("id", "b").AddClass("y")

	if got := mustRender(t, original); got != ` id="a" class="x"` {
		t.Fatalf("original mutated through clone: %q", got)
	}
	if got := mustRender(t, clone); got != ` id="b" class="x y"` {
		t.Fatalf("clone mismatch: %q", got)
	}
}

func TestBag_ValueStringForms(t *testing.T) {
	bag := attrs.New().
		Attr("tabindex", 0).
		Attr("async", true).
		Attr("step", 0.5)

	want := ` tabindex="0" async="true" step="0.5"`
	if got := mustRender(t, bag); got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}
