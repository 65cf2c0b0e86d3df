package attrs

import (
	"fmt"
	"html"
	"html/template"
	"sort"
	"strings"
)

const classKey = "class"

// Pair is an ordered key/value contribution. Pairs stand in for the
// named-argument attribute syntax of template call sites, so their keys are
// name-derived: underscores normalize to hyphens when the pair is applied.
type Pair struct {
	Key   string
	Value any
}

// KV builds a Pair.
func KV(key string, value any) Pair {
	return Pair{Key: key, Value: value}
}

// Bag is a mutable, ordered attribute collection. Entries render in
// first-write order. Mutating calls validate before touching state and
// latch the first violation; Err and Render surface it. Not safe for
// concurrent mutation.
type Bag struct {
	keys   []string
	values map[string]string
	err    error
}

// New returns an empty bag.
func New() *Bag {
	return &Bag{values: make(map[string]string)}
}

// FromPairs builds a bag from an ordered pair sequence. Later pairs
// overwrite earlier ones on key collision.
func FromPairs(pairs ...Pair) *Bag {
	return New().Attrs(pairs...)
}

// FromMap builds a bag from an explicit mapping. Keys are used verbatim
// with no normalization and append in sorted order (Go maps carry no
// authoring order) so render output stays deterministic.
func FromMap(values map[string]any) *Bag {
	return New().Merge(values)
}

// FromFields builds a bag from the exported fields of a struct container.
// See MergeFields for the key derivation rules.
func FromFields(container any) *Bag {
	return New().MergeFields(container)
}

// Attr sets key to value, overwriting any previous entry. The key is used
// verbatim. Overwrite applies to class as well: a direct write is
// authoritative and replaces anything AddClass accumulated; accumulation
// only ever happens through AddClass.
func (b *Bag) Attr(key string, value any) *Bag {
	if err := b.Set(key, value); err != nil {
		return b.fail(err)
	}
	return b
}

// Set is the non-fluent form of Attr, returning the validation error at the
// call site instead of latching it.
func (b *Bag) Set(key string, value any) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKeySource)
	}
	text, err := stringifyValue(value)
	if err != nil {
		return fmt.Errorf("%w: key %q", err, key)
	}
	b.put(key, text)
	return nil
}

// SetPair applies a single pair (normalized key, overwrite semantics) and
// returns the validation error directly.
func (b *Bag) SetPair(pair Pair) error {
	staged, err := stagePairs([]Pair{pair})
	if err != nil {
		return err
	}
	b.put(staged[0].key, staged[0].value)
	return nil
}

// Attrs applies pairs in order; later pairs overwrite earlier ones on key
// collision. The whole sequence is validated before any entry is written.
func (b *Bag) Attrs(pairs ...Pair) *Bag {
	staged, err := stagePairs(pairs)
	if err != nil {
		return b.fail(err)
	}
	for _, item := range staged {
		b.put(item.key, item.value)
	}
	return b
}

// Merge folds an explicit mapping in, overwriting existing entries on
// collision. Keys are used verbatim. Previously unseen keys append in
// sorted order; keys already present keep their original slot.
func (b *Bag) Merge(values map[string]any) *Bag {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	staged := make([]entry, 0, len(keys))
	for _, key := range keys {
		if strings.TrimSpace(key) == "" {
			return b.fail(fmt.Errorf("%w: empty map key", ErrInvalidKeySource))
		}
		text, err := stringifyValue(values[key])
		if err != nil {
			return b.fail(fmt.Errorf("%w: key %q", err, key))
		}
		staged = append(staged, entry{key: key, value: text})
	}
	for _, item := range staged {
		b.put(item.key, item.value)
	}
	return b
}

// AddClass appends class to the class entry, space separated, creating the
// entry when absent. Repeated values accumulate verbatim; the bag performs
// no de-duplication.
func (b *Bag) AddClass(class string) *Bag {
	trimmed := strings.TrimSpace(class)
	if trimmed == "" {
		return b
	}
	if existing, ok := b.values[classKey]; ok && existing != "" {
		b.values[classKey] = existing + " " + trimmed
		return b
	}
	b.put(classKey, trimmed)
	return b
}

// Len reports the number of entries.
func (b *Bag) Len() int {
	return len(b.keys)
}

// Get returns the stored text for key.
func (b *Bag) Get(key string) (string, bool) {
	value, ok := b.values[key]
	return value, ok
}

// Keys returns the attribute keys in first-write order.
func (b *Bag) Keys() []string {
	return append([]string(nil), b.keys...)
}

// Err returns the first validation error latched by a fluent call, if any.
func (b *Bag) Err() error {
	return b.err
}

// Clone returns an independent copy of the bag, including any latched
// error.
func (b *Bag) Clone() *Bag {
	clone := &Bag{
		keys:   append([]string(nil), b.keys...),
		values: make(map[string]string, len(b.values)),
		err:    b.err,
	}
	for key, value := range b.values {
		clone.values[key] = value
	}
	return clone
}

// Render serializes the bag as ` key="value"` segments in first-write
// order, escaping both key and value. The empty bag renders to the empty
// string. The result is pre-escaped: embed it verbatim and never escape it
// again. A latched validation error is returned instead of output.
func (b *Bag) Render() (template.HTMLAttr, error) {
	if b.err != nil {
		return "", b.err
	}
	if len(b.keys) == 0 {
		return "", nil
	}

	var builder strings.Builder
	builder.Grow(len(b.keys) * 16)
	for _, key := range b.keys {
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(key))
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(b.values[key]))
		builder.WriteString(`"`)
	}
	return template.HTMLAttr(builder.String()), nil
}

// String implements fmt.Stringer for logging and debugging. It returns the
// rendered attribute string, or "" when the bag carries a latched error.
func (b *Bag) String() string {
	rendered, err := b.Render()
	if err != nil {
		return ""
	}
	return string(rendered)
}

func (b *Bag) put(key, value string) {
	if _, exists := b.values[key]; !exists {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
}

func (b *Bag) fail(err error) *Bag {
	if b.err == nil {
		b.err = err
	}
	return b
}
