package yamldoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/pomyaml/internal/domain"
	"github.com/aalvaropc/pomyaml/internal/ports"
)

type Store struct {
	fileMode os.FileMode
	validate bool
}

type Option func(*Store)

// WithFileMode sets the permission bits of written documents.
func WithFileMode(mode os.FileMode) Option {
	return func(s *Store) { s.fileMode = mode }
}

// WithValidation parses data as YAML before writing it (on by default).
func WithValidation(enabled bool) Option {
	return func(s *Store) { s.validate = enabled }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		fileMode: 0o644,
		validate: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.DocumentStore = (*Store)(nil)

// SaveDocument writes data to dir/name and returns the written path. name may
// contain subdirectories but must stay inside dir.
func (s *Store) SaveDocument(dir, name string, data []byte) (string, error) {
	if !filepath.IsLocal(name) {
		return "", &domain.OpError{
			Op:   "yamldoc.save",
			Kind: domain.KindInvalidConfig,
			Path: name,
			Err:  fmt.Errorf("output name must be a relative path inside the project: %w", domain.ErrInvalidConfig),
		}
	}
	path := filepath.Join(dir, name)

	if s.validate {
		var probe yaml.Node
		if err := yaml.Unmarshal(data, &probe); err != nil {
			return "", &domain.OpError{
				Op:   "yamldoc.validate",
				Kind: domain.KindExecution,
				Path: path,
				Err:  err,
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "yamldoc.mkdir",
			Kind: domain.KindExecution,
			Path: filepath.Dir(path),
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, s.fileMode); err != nil {
		return "", &domain.OpError{
			Op:   "yamldoc.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "yamldoc.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return path, nil
}

func (s *Store) ReadDocument(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "yamldoc.read",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return b, nil
}
