package text

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/Egor213/NewsReport/internal/domain"
	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"
)

const (
	articlesHeader  = "Finding the most popular %s articles of all time:\n\n"
	authorsHeader   = "\n\nThe most popular article authors of all time:\n\n"
	errorDaysHeader = "\n\nDays with more than %g%% of requests lead to errors:\n\n"
)

var smallNumbers = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}

// spell writes counts up to ten as words, larger ones as digits.
func spell(n int) string {
	if n >= 0 && n < len(smallNumbers) {
		return smallNumbers[n]
	}
	return strconv.Itoa(n)
}

type Printer struct{}

func NewPrinter() *Printer {
	return &Printer{}
}

// Print writes the three report sections in fixed order. An empty section
// keeps its header.
func (p *Printer) Print(w io.Writer, report *domain.Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, articlesHeader, spell(report.ArticlesLimit))
	for _, a := range report.Articles {
		fmt.Fprintf(bw, "\"%s\" -- %d views\n", a.Title, a.Views)
	}

	fmt.Fprint(bw, authorsHeader)
	for _, a := range report.Authors {
		fmt.Fprintf(bw, "%s -- %d views\n", a.Name, a.Views)
	}

	fmt.Fprintf(bw, errorDaysHeader, report.ErrorThreshold)
	for _, d := range report.ErrorDays {
		fmt.Fprintf(bw, "%s -- %.2f%% errors\n", d.Date, d.ErrorPercentage)
	}

	if err := bw.Flush(); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}
