package gateway

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/totegamma/council-reports/internal/domain"
	"github.com/totegamma/council-reports/internal/record"
	"github.com/totegamma/council-reports/internal/usecase"
)

// DirectorySource reads collections from exported JSON files named after
// each collection, e.g. councils.json.
type DirectorySource struct {
	dir string
}

var _ usecase.RecordSource = (*DirectorySource)(nil)

func NewDirectorySource(dir string) *DirectorySource {
	return &DirectorySource{dir: dir}
}

func (s *DirectorySource) Fetch(ctx context.Context, collection domain.Collection) ([]record.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(s.dir, collection.String()+".json")
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", collection)
	}
	return decode(ctx, collection, body)
}
