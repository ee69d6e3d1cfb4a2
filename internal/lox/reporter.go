package lox

import (
	"fmt"
	"io"
)

// Reporter defines the interface for a structure that can display
// diagnostics to the user. A reporter is defined to separate error-reporting
// code from error-displaying code, and to track whether a static error or a
// runtime error has occurred so the driver can choose an exit code.
type Reporter interface {
	Report(err error)
	HadError() bool
	HadRuntimeError() bool
	// Reset clears both error flags. The REPL calls this between lines so
	// that an error on one line does not poison the next.
	Reset()
}

// SimpleReporter writes errors as-is to an inner writer.
type SimpleReporter struct {
	writer        io.Writer
	hadErr        bool
	hadRuntimeErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false, false}
}

func (reporter *SimpleReporter) Report(err error) {
	if _, isRuntimeErr := err.(*RuntimeError); isRuntimeErr {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}
