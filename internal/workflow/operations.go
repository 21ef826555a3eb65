package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/seantiz/loanops/internal/model"
)

// largeLoanThreshold marks loans that need an enhanced review section.
const largeLoanThreshold = 500_000

// OperationsRunner is the built-in post-approval operations workflow.
// It generates a markdown report covering funding verification, a
// compliance checklist, and a disbursement summary.
type OperationsRunner struct {
	logger *slog.Logger
}

// NewOperationsRunner creates the built-in operations workflow.
func NewOperationsRunner(logger *slog.Logger) *OperationsRunner {
	return &OperationsRunner{logger: logger}
}

// Run generates the operations report for the loan.
func (r *OperationsRunner) Run(ctx context.Context, loan *model.LoanFile, verbose bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if loan.LoanAmount <= 0 {
		return "", fmt.Errorf("loan %s has invalid amount %.2f", loan.LoanID, loan.LoanAmount)
	}

	if verbose {
		r.logger.Debug("running operations workflow",
			"loan_id", loan.LoanID,
			"loan_type", loan.LoanType,
			"funding_status", loan.FundingStatus,
		)
	}

	var b strings.Builder

	b.WriteString("## Funding Verification\n\n")
	fmt.Fprintf(&b, "- Borrower: %s\n", loan.BorrowerName)
	fmt.Fprintf(&b, "- Loan type: %s\n", loan.LoanType)
	fmt.Fprintf(&b, "- Principal: $%.2f\n", loan.LoanAmount)
	fmt.Fprintf(&b, "- Funding status: %s\n", fundingAssessment(loan.FundingStatus))
	b.WriteString("\n")

	b.WriteString("## Compliance Checklist\n\n")
	for _, item := range complianceChecklist(loan) {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	b.WriteString("\n")

	b.WriteString("## Disbursement Summary\n\n")
	if loan.InterestRate > 0 && loan.TermMonths > 0 {
		payment := monthlyPayment(loan.LoanAmount, loan.InterestRate, loan.TermMonths)
		fmt.Fprintf(&b, "- Term: %d months at %.2f%% APR\n", loan.TermMonths, loan.InterestRate)
		fmt.Fprintf(&b, "- Estimated monthly payment: $%.2f\n", payment)
	} else {
		b.WriteString("- Amortization schedule unavailable: rate or term missing\n")
	}

	return b.String(), nil
}

// fundingAssessment maps a funding status to its operational reading.
func fundingAssessment(status string) string {
	switch status {
	case model.FundingApproved:
		return "approved, awaiting funding schedule"
	case model.FundingScheduled:
		return "scheduled for funding"
	case model.FundingFunded:
		return "funded, pending disbursement"
	case model.FundingDisbursed:
		return "fully disbursed"
	default:
		return fmt.Sprintf("unrecognized status %q, manual review required", status)
	}
}

func complianceChecklist(loan *model.LoanFile) []string {
	items := []string{"Identity verification on file"}
	if loan.ApprovalDate != "" {
		items = append(items, fmt.Sprintf("Approval recorded on %s", loan.ApprovalDate))
	} else {
		items = append(items, "FLAG: approval date missing")
	}
	if loan.LoanAmount >= largeLoanThreshold {
		items = append(items, "FLAG: large loan, enhanced due diligence required")
	}
	return items
}

// monthlyPayment computes the standard amortized payment.
func monthlyPayment(principal, annualRatePct float64, termMonths int) float64 {
	monthlyRate := annualRatePct / 100 / 12
	if monthlyRate == 0 {
		return principal / float64(termMonths)
	}
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	return principal * monthlyRate * factor / (factor - 1)
}
