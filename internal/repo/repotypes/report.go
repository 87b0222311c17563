package repotypes

type ErrorDaysFilter struct {
	OkStatus    string
	ErrorStatus string
	// Threshold is compared against the rounded percentage.
	Threshold float64
}
