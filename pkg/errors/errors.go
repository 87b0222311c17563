package errorsUtils

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeUndefinedTable  = "42P01"
	CodeUndefinedColumn = "42703"
	CodeInvalidCatalog  = "3D000"
	CodeInvalidPassword = "28P01"
)

func Is(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsSchemaMismatch reports whether the query referenced a relation or column
// the database does not have.
func IsSchemaMismatch(err error) bool {
	return Is(err, CodeUndefinedTable) || Is(err, CodeUndefinedColumn)
}

func IsUnknownDatabase(err error) bool {
	return Is(err, CodeInvalidCatalog)
}

func WrapPathErr(err error) error {
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %w", fn, line, err)
}
