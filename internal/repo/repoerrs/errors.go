package repoerrs

import "errors"

var (
	ErrSchemaMismatch = errors.New("news schema is missing a relation or column")
)
