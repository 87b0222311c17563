package memdb

import (
	"context"
	"os"

	"github.com/Egor213/NewsReport/internal/domain"
	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"

	"gopkg.in/yaml.v3"
)

type fixture struct {
	Articles []domain.Article  `yaml:"articles"`
	Authors  []domain.Author   `yaml:"authors"`
	Log      []domain.LogEntry `yaml:"log"`
}

// LoadStore reads a YAML dump of the articles, authors and log tables.
// Log times use RFC 3339.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return NewStore(f.Articles, f.Authors, f.Log), nil
}

// NoTx runs fn as is. A loaded Store is never written, so every call
// already reads one snapshot.
type NoTx struct{}

func (NoTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
