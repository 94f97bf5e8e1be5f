package statement

import (
	"github.com/shopspring/decimal"

	"github.com/nokataxx/cashflow-app/internal/models"
)

// Assemble groups classified lines into their sections, sums the section
// subtotals, and attaches the net change and cash boundaries. It performs
// no business logic beyond grouping and summation; every figure it adds
// is a deterministic sum of figures computed upstream.
func Assemble(lines []models.CashFlowLine, beginningCash, endingCash decimal.Decimal) models.CashFlowStatement {
	stmt := models.CashFlowStatement{
		OperatingLines: []models.CashFlowLine{},
		InvestingLines: []models.CashFlowLine{},
		FinancingLines: []models.CashFlowLine{},
		NetOperating:   decimal.Zero,
		NetInvesting:   decimal.Zero,
		NetFinancing:   decimal.Zero,
		BeginningCash:  beginningCash,
		EndingCash:     endingCash,
	}

	for _, line := range lines {
		switch line.Section {
		case models.SectionOperating:
			stmt.OperatingLines = append(stmt.OperatingLines, line)
			stmt.NetOperating = stmt.NetOperating.Add(line.Amount)
		case models.SectionInvesting:
			stmt.InvestingLines = append(stmt.InvestingLines, line)
			stmt.NetInvesting = stmt.NetInvesting.Add(line.Amount)
		case models.SectionFinancing:
			stmt.FinancingLines = append(stmt.FinancingLines, line)
			stmt.NetFinancing = stmt.NetFinancing.Add(line.Amount)
		}
	}

	stmt.NetChangeInCash = stmt.NetOperating.Add(stmt.NetInvesting).Add(stmt.NetFinancing)
	return stmt
}
