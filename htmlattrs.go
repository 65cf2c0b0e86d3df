// Package htmlattrs re-exports the attribute bag API from pkg/attrs so
// callers can depend on the module root for the common path.
package htmlattrs

import (
	"html/template"
	"io"
	"io/fs"

	"github.com/goliatone/go-htmlattrs/pkg/attrs"
)

// Bag is the ordered, mergeable attribute collection.
type Bag = attrs.Bag

// Pair is an ordered key/value contribution with a name-derived key.
type Pair = attrs.Pair

// Presets holds named attribute sets loaded from YAML.
type Presets = attrs.Presets

// Error kinds surfaced by ingestion calls.
var (
	ErrNilAttributeValue = attrs.ErrNilAttributeValue
	ErrInvalidKeySource  = attrs.ErrInvalidKeySource
)

// New returns an empty bag.
func New() *Bag { return attrs.New() }

// KV builds a Pair.
func KV(key string, value any) Pair { return attrs.KV(key, value) }

// FromPairs builds a bag from an ordered pair sequence.
func FromPairs(pairs ...Pair) *Bag { return attrs.FromPairs(pairs...) }

// FromMap builds a bag from an explicit mapping, keys verbatim.
func FromMap(values map[string]any) *Bag { return attrs.FromMap(values) }

// FromFields builds a bag from a struct field container.
func FromFields(container any) *Bag { return attrs.FromFields(container) }

// LoadPresets parses a YAML document of named attribute sets.
func LoadPresets(r io.Reader) (*Presets, error) { return attrs.LoadPresets(r) }

// LoadPresetsFS reads and parses a presets file from fsys.
func LoadPresetsFS(fsys fs.FS, path string) (*Presets, error) {
	return attrs.LoadPresetsFS(fsys, path)
}

// AttributeString renders values as a pre-escaped attribute string in one
// call, for callers that do not need the builder.
func AttributeString(values map[string]any) (template.HTMLAttr, error) {
	return attrs.FromMap(values).Render()
}
