package domain

import "time"

const (
	StatusOK       = "200 OK"
	StatusNotFound = "404 NOT FOUND"
)

type Author struct {
	ID   int    `db:"id" yaml:"id"`
	Name string `db:"name" yaml:"name"`
}

type Article struct {
	Slug   string `db:"slug" yaml:"slug"`
	Title  string `db:"title" yaml:"title"`
	Author int    `db:"author" yaml:"author"`
}

// LogEntry is one row of the web server access log.
type LogEntry struct {
	Path   string    `db:"path" yaml:"path"`
	Time   time.Time `db:"time" yaml:"time"`
	Status string    `db:"status" yaml:"status"`
}
