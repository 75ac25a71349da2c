package source

import (
	"context"
	"fmt"
	"os"

	"github.com/idilsaglam/kanban/internal/model"
)

// File reads a {"tickets": [...]} document from disk.
type File struct {
	Path string
}

func (f File) Fetch(ctx context.Context) ([]model.WorkItem, error) {
	if err := ctx.Err(); err != nil {
		return []model.WorkItem{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return []model.WorkItem{}, fmt.Errorf("%w: read file: %v", ErrFetch, err)
	}
	return Decode(b)
}
