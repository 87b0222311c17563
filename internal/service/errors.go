package service

import "fmt"

var (
	ErrInvalidLimit      = fmt.Errorf("articles limit must be positive")
	ErrInvalidThreshold  = fmt.Errorf("error threshold must be within [0, 100]")
	ErrCannotBuildReport = fmt.Errorf("cannot build report")
	ErrCannotPublish     = fmt.Errorf("cannot publish report")
)
