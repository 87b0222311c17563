package pgdb

import (
	"fmt"

	"github.com/Egor213/NewsReport/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"
	sq "github.com/Masterminds/squirrel"
)

// slugOf extracts the article slug a log path carries in its third
// "/"-separated segment. Paths without one yield an empty string and match no article.
func slugOf(pathColumn string) string {
	return fmt.Sprintf("split_part(%s, '/', 3)", pathColumn)
}

// dayOf is the calendar date of a timestamp column as YYYY-MM-DD text.
func dayOf(timeColumn string) string {
	return fmt.Sprintf("split_part(%s::text, ' ', 1)", timeColumn)
}

func errorPercentageOf(okColumn, errColumn string) string {
	return fmt.Sprintf("round(100.0 * %[2]s / (%[2]s + %[1]s), 2)", okColumn, errColumn)
}

func articleViewsJoin() string {
	return "log ON " + slugOf("log.path") + " = articles.slug"
}

func BuildErrorDaysStatusFilters(okStatus, errStatus string) (sq.Sqlizer, sq.Sqlizer) {
	return sq.Eq{"status": okStatus}, sq.Eq{"status": errStatus}
}

func classify(err error) error {
	if errorsUtils.IsSchemaMismatch(err) {
		return fmt.Errorf("%w: %w", repoerrs.ErrSchemaMismatch, err)
	}
	return err
}
