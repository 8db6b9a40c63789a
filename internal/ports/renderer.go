package ports

// Renderer turns a model object into YAML text.
type Renderer interface {
	Marshal(obj any, indent int) ([]byte, error)
}
