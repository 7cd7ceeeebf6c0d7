package helpers

import (
	"fmt"
	"log"
	"os"
	"time"
)

// ErrorReport appends per-URL failures to a plain-text report so a run's
// skipped products can be retried later without grepping structured logs.
type ErrorReport struct {
	path string
}

// NewErrorReport creates a report writer targeting path.
func NewErrorReport(path string) *ErrorReport {
	return &ErrorReport{path: path}
}

// Record appends one failure line with timestamp, URL and reason.
func (r *ErrorReport) Record(url string, err error) {
	f, fileErr := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if fileErr != nil {
		log.Printf("failed to open error report: %v\n", fileErr)
		return
	}
	defer f.Close()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	f.WriteString(fmt.Sprintf("[%s] [%s] %s\n", timestamp, url, err.Error()))
}
