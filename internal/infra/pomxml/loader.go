package pomxml

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/aalvaropc/pomyaml/internal/domain"
	"github.com/aalvaropc/pomyaml/internal/ports"
)

// Loader reads pom.xml files from disk.
type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

var _ ports.ModelLoader = (*Loader)(nil)

func (l *Loader) LoadModel(path string) (*domain.Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "pomxml.load_model",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return Parse(path, b)
}

// Parse decodes a pom document held in memory. path is only used in errors.
func Parse(path string, b []byte) (*domain.Model, error) {
	var dto xmlProject
	if err := decode(b, &dto); err != nil {
		return nil, &domain.OpError{
			Op:   "pomxml.parse",
			Kind: domain.KindInvalidModel,
			Path: path,
			Err:  err,
		}
	}
	return MapProject(path, dto)
}

func decode(b []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(b))
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		return charset.NewReaderLabel(label, input)
	}
	return dec.Decode(v)
}
