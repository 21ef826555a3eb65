// Package workflow defines the loan operations workflow boundary. The
// orchestration layer treats the workflow as opaque: it hands over a
// parsed loan file and eventually gets back a report body or an error.
package workflow

import (
	"context"

	"github.com/seantiz/loanops/internal/model"
)

// Runner executes the operations workflow once for a loan file.
// Implementations may take arbitrarily long and are not retried; the
// context is passed through so a caller can layer a deadline on top.
type Runner interface {
	Run(ctx context.Context, loan *model.LoanFile, verbose bool) (string, error)
}
