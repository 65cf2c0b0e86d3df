package template

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-htmlattrs/pkg/attrs"
)

// RegisterHelpers installs the attribute filters on a conforming engine:
//
//	attrs        render a bag, map, or pair slice as an attribute string
//	attr_set     overwrite one attribute, param "key=value"
//	attr_class   accumulate a class, param is the class name
//
// attr_set and attr_class operate on a copy, so template expressions never
// mutate bags held in the render context. The attrs filter yields its
// result as html/template.HTMLAttr: the string is already escaped and
// engines must not escape it again.
func RegisterHelpers(engine FilterRegistrar) error {
	if engine == nil {
		return fmt.Errorf("template: engine is required")
	}

	filters := map[string]func(input any, param any) (any, error){
		"attrs":      attrsFilter,
		"attr_set":   attrSetFilter,
		"attr_class": attrClassFilter,
	}
	for name, fn := range filters {
		if err := engine.RegisterFilter(name, fn); err != nil {
			return fmt.Errorf("template: register filter %q: %w", name, err)
		}
	}
	return nil
}

func attrsFilter(input any, _ any) (any, error) {
	bag, err := coerceBag(input)
	if err != nil {
		return nil, err
	}
	rendered, err := bag.Render()
	if err != nil {
		return nil, err
	}
	// HTMLAttr carries the pre-escaped marker through to the engine bridge.
	return rendered, nil
}

func attrSetFilter(input any, param any) (any, error) {
	bag, err := coerceBag(input)
	if err != nil {
		return nil, err
	}
	raw, ok := param.(string)
	if !ok {
		return nil, fmt.Errorf("template: attr_set expects a \"key=value\" string param, got %T", param)
	}
	key, value, found := strings.Cut(raw, "=")
	if !found {
		return nil, fmt.Errorf("template: attr_set param %q is missing '='", raw)
	}

	clone := bag.Clone()
	if err := clone.Set(strings.TrimSpace(key), value); err != nil {
		return nil, err
	}
	return clone, nil
}

func attrClassFilter(input any, param any) (any, error) {
	bag, err := coerceBag(input)
	if err != nil {
		return nil, err
	}
	class, ok := param.(string)
	if !ok {
		return nil, fmt.Errorf("template: attr_class expects a string param, got %T", param)
	}
	return bag.Clone().AddClass(class), nil
}

func coerceBag(input any) (*attrs.Bag, error) {
	switch v := input.(type) {
	case nil:
		return nil, fmt.Errorf("template: nil attribute input")
	case *attrs.Bag:
		if v == nil {
			return nil, fmt.Errorf("template: nil attribute bag")
		}
		return v, nil
	case map[string]any:
		bag := attrs.FromMap(v)
		if err := bag.Err(); err != nil {
			return nil, err
		}
		return bag, nil
	case map[string]string:
		values := make(map[string]any, len(v))
		for key, value := range v {
			values[key] = value
		}
		bag := attrs.FromMap(values)
		if err := bag.Err(); err != nil {
			return nil, err
		}
		return bag, nil
	case []attrs.Pair:
		bag := attrs.FromPairs(v...)
		if err := bag.Err(); err != nil {
			return nil, err
		}
		return bag, nil
	default:
		return nil, fmt.Errorf("template: unsupported attribute input %T", input)
	}
}
