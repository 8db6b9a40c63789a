package usecase

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/aalvaropc/pomyaml/internal/domain"
	"github.com/aalvaropc/pomyaml/internal/ports"
)

// CheckProject reports whether the stored document matches what convert would
// write now. It never writes.
type CheckProject struct {
	pipeline
	store ports.DocumentStore
}

func NewCheckProject(cl ports.ConfigLoader, ml ports.ModelLoader, r ports.Renderer, ds ports.DocumentStore, opts ...Option) *CheckProject {
	return &CheckProject{
		pipeline: newPipeline(cl, ml, r, opts),
		store:    ds,
	}
}

func (uc *CheckProject) Execute(ctx context.Context, root string) (domain.CheckResult, error) {
	conv, name, err := uc.render(ctx, root)
	if err != nil {
		return domain.CheckResult{}, err
	}

	res := domain.CheckResult{
		Input:  conv.Input,
		Output: filepath.Join(root, name),
	}

	stored, err := uc.store.ReadDocument(res.Output)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			res.FirstDiffLine = 1
			uc.log.Info("check.missing", "output", res.Output)
			return res, nil
		}
		return domain.CheckResult{}, err
	}

	res.FirstDiffLine = firstDiffLine(stored, conv.Bytes)
	res.UpToDate = res.FirstDiffLine == 0
	if !res.UpToDate {
		uc.log.Info("check.stale", "output", res.Output, "line", res.FirstDiffLine)
	}
	return res, nil
}

// firstDiffLine returns the 1-based line where a and b first differ, or 0 when
// they are identical.
func firstDiffLine(a, b []byte) int {
	if bytes.Equal(a, b) {
		return 0
	}
	line := 1
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return line
		}
		if a[i] == '\n' {
			line++
		}
	}
	return line
}
