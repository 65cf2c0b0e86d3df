package attrs

import (
	"fmt"
	"reflect"
	"strings"
)

// MergeFields flattens the exported fields of a struct (or pointer to
// struct) into attribute entries, in declaration order. The key comes from
// the `attr` tag when present, otherwise from the lower-cased field name;
// both are name-derived, so underscores normalize to hyphens. Fields tagged
// `attr:"-"` are skipped. The whole container is validated before any entry
// is written.
func (b *Bag) MergeFields(container any) *Bag {
	staged, err := stageFields(container)
	if err != nil {
		return b.fail(err)
	}
	for _, item := range staged {
		b.put(item.key, item.value)
	}
	return b
}

func stageFields(container any) ([]entry, error) {
	if isNilValue(container) {
		return nil, fmt.Errorf("%w: nil field container", ErrInvalidKeySource)
	}

	rv := reflect.ValueOf(container)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: field container must be a struct, got %T", ErrInvalidKeySource, container)
	}

	rt := rv.Type()
	out := make([]entry, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		key, skip := fieldKey(field)
		if skip {
			continue
		}
		if key == "" {
			return nil, fmt.Errorf("%w: field %s resolves to an empty key", ErrInvalidKeySource, field.Name)
		}
		text, err := stringifyValue(rv.Field(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("%w: field %s", err, field.Name)
		}
		out = append(out, entry{key: key, value: text})
	}
	return out, nil
}

func fieldKey(field reflect.StructField) (key string, skip bool) {
	if tag, ok := field.Tag.Lookup("attr"); ok {
		tag = strings.TrimSpace(tag)
		if tag == "-" {
			return "", true
		}
		return normalizeKey(tag), false
	}
	return normalizeKey(strings.ToLower(field.Name)), false
}
