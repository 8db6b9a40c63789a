package ports

// DocumentStore persists rendered documents next to the project.
type DocumentStore interface {
	SaveDocument(dir, name string, data []byte) (path string, err error)
	ReadDocument(path string) ([]byte, error)
}
