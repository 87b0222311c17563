package domain

const (
	DefaultArticlesLimit  = 3
	DefaultErrorThreshold = 1.0
)

type ArticleViews struct {
	Title string `db:"title" json:"title"`
	Views int64  `db:"views" json:"views"`
}

type AuthorViews struct {
	Name  string `db:"name" json:"name"`
	Views int64  `db:"views" json:"views"`
}

type ErrorDay struct {
	Date            string  `db:"day" json:"date"`
	OkCount         int64   `db:"ok_count" json:"ok_count"`
	ErrorCount      int64   `db:"error_count" json:"error_count"`
	ErrorPercentage float64 `db:"error_percentage" json:"error_percentage"`
}

type ReportOptions struct {
	ArticlesLimit  int
	ErrorThreshold float64
}

// Report holds the output of one generation run. Its fields carry no
// timestamps so two runs over unchanged data compare equal.
type Report struct {
	ArticlesLimit  int            `json:"articles_limit"`
	ErrorThreshold float64        `json:"error_threshold"`
	Articles       []ArticleViews `json:"articles"`
	Authors        []AuthorViews  `json:"authors"`
	ErrorDays      []ErrorDay     `json:"error_days"`
}

// ErrorPercentage is 100*errs/(errs+ok) rounded half up to two decimals,
// computed in integers so it agrees with numeric round(x, 2) in Postgres.
func ErrorPercentage(ok, errs int64) float64 {
	total := ok + errs
	if total == 0 {
		return 0
	}
	hundredths := (20000*errs + total) / (2 * total)
	return float64(hundredths) / 100
}
