package template

import "io"

// Engine mirrors the github.com/goliatone/go-template renderer contract,
// providing the seam the attribute helpers are installed on without binding
// callers to a concrete template implementation.
type Engine interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// FilterRegistrar is the subset of Engine the helpers need.
type FilterRegistrar interface {
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
}
