package model

// Funding status labels carried on loan files.
const (
	FundingApproved  = "approved"
	FundingScheduled = "scheduled"
	FundingFunded    = "funded"
	FundingDisbursed = "disbursed"
)

// LoanFile is a full loan record loaded from the sample loans directory.
type LoanFile struct {
	LoanID        string  `json:"loan_id"`
	BorrowerName  string  `json:"borrower_name"`
	LoanType      string  `json:"loan_type"`
	LoanAmount    float64 `json:"loan_amount"`
	InterestRate  float64 `json:"interest_rate,omitempty"`
	TermMonths    int     `json:"term_months,omitempty"`
	FundingStatus string  `json:"funding_status"`
	ApprovalDate  string  `json:"approval_date,omitempty"`
}

// Summary returns the API view of the loan file.
func (l *LoanFile) Summary() LoanSummary {
	return LoanSummary{
		LoanID:        l.LoanID,
		BorrowerName:  l.BorrowerName,
		LoanType:      l.LoanType,
		LoanAmount:    l.LoanAmount,
		FundingStatus: l.FundingStatus,
		ApprovalDate:  l.ApprovalDate,
	}
}

// LoanSummary is the listing view of a loan file.
type LoanSummary struct {
	LoanID        string  `json:"loan_id"`
	BorrowerName  string  `json:"borrower_name"`
	LoanType      string  `json:"loan_type"`
	LoanAmount    float64 `json:"loan_amount"`
	FundingStatus string  `json:"funding_status"`
	ApprovalDate  string  `json:"approval_date,omitempty"`
}
