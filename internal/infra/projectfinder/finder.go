package projectfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/pomyaml/internal/domain"
	"github.com/aalvaropc/pomyaml/internal/ports"
)

// ConfigFile is the per-project tool configuration.
const ConfigFile = ".pomyaml.yaml"

// Finder locates a project root by searching upward for any of its markers.
type Finder struct {
	Markers []string // defaults to ConfigFile and pom.xml
}

func NewFinder() *Finder {
	return &Finder{Markers: []string{ConfigFile, "pom.xml"}}
}

var _ ports.ProjectLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "projectfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "projectfinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		for _, marker := range f.Markers {
			if _, err := os.Stat(filepath.Join(cur, marker)); err == nil {
				return cur, nil
			}
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "projectfinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
