package view

import (
	"time"

	"github.com/MrJamesThe3rd/jobdocs/internal/document"
)

// FormatAmount renders an amount with two decimal places.
func FormatAmount(a document.Amount) string {
	return a.String()
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
