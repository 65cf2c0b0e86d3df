package attrs

import (
	"fmt"
	"reflect"
	"strings"
)

// entry is a staged key/value ready to commit. Multi-entry operations build
// the full staging slice first so a failing input leaves the bag untouched.
type entry struct {
	key   string
	value string
}

// normalizeKey applies the underscore-to-hyphen substitution used for
// name-derived key sources.
func normalizeKey(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func stringifyValue(value any) (string, error) {
	if isNilValue(value) {
		return "", ErrNilAttributeValue
	}
	return fmt.Sprintf("%v", value), nil
}

func isNilValue(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func stagePairs(pairs []Pair) ([]entry, error) {
	out := make([]entry, 0, len(pairs))
	for _, pair := range pairs {
		key := normalizeKey(strings.TrimSpace(pair.Key))
		if key == "" {
			return nil, fmt.Errorf("%w: empty pair key", ErrInvalidKeySource)
		}
		text, err := stringifyValue(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q", err, key)
		}
		out = append(out, entry{key: key, value: text})
	}
	return out, nil
}
