package models

import "github.com/shopspring/decimal"

// AccountCategory identifies a canonical account in the taxonomy.
type AccountCategory string

const (
	CashAndEquivalents      AccountCategory = "cash_and_equivalents"
	AccountsReceivable      AccountCategory = "accounts_receivable"
	Inventory               AccountCategory = "inventory"
	PrepaidExpenses         AccountCategory = "prepaid_expenses"
	PPE                     AccountCategory = "ppe"
	AccumulatedDepreciation AccountCategory = "accumulated_depreciation"
	Investments             AccountCategory = "investments"
	IntangibleAssets        AccountCategory = "intangible_assets"
	AccountsPayable         AccountCategory = "accounts_payable"
	AccruedLiabilities      AccountCategory = "accrued_liabilities"
	DeferredRevenue         AccountCategory = "deferred_revenue"
	ShortTermDebt           AccountCategory = "short_term_debt"
	LongTermDebt            AccountCategory = "long_term_debt"
	PaidInCapital           AccountCategory = "paid_in_capital"
	TreasuryStock           AccountCategory = "treasury_stock"
	RetainedEarnings        AccountCategory = "retained_earnings"
	NetIncome               AccountCategory = "net_income"
	DepreciationExpense     AccountCategory = "depreciation_expense"
	AmortizationExpense     AccountCategory = "amortization_expense"
	GainLossOnDisposal      AccountCategory = "gain_loss_on_disposal"
	ProceedsFromAssetSale   AccountCategory = "proceeds_from_asset_sale"
	DividendsPaid           AccountCategory = "dividends_paid"
)

// Section is one of the three cash flow statement sections.
type Section string

const (
	SectionOperating Section = "operating"
	SectionInvesting Section = "investing"
	SectionFinancing Section = "financing"
)

// RawLineItem is a single (label, amount) pair as entered in the UI.
// Amounts stay as strings until the normalizer parses them into decimals,
// so malformed input is rejected instead of silently rounded.
type RawLineItem struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// RawPeriod is one period of statement data before normalization.
type RawPeriod struct {
	Label string        `json:"label"`
	Items []RawLineItem `json:"items"`
}

// LineItem is a validated line item with a resolved taxonomy category.
type LineItem struct {
	Label    string          `json:"label"`
	Category AccountCategory `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// StatementPeriod is a normalized period: one line item per category.
type StatementPeriod struct {
	Label string                       `json:"label"`
	Items map[AccountCategory]LineItem `json:"items"`
}

// Amount returns the amount recorded for category, or zero if the
// period has no line item for it.
func (p StatementPeriod) Amount(category AccountCategory) decimal.Decimal {
	if item, ok := p.Items[category]; ok {
		return item.Amount
	}
	return decimal.Zero
}

// AccountDelta is the prior-to-current change for one category.
// A category missing from one period is treated as zero on that side.
type AccountDelta struct {
	Category AccountCategory `json:"category"`
	Prior    decimal.Decimal `json:"prior"`
	Current  decimal.Decimal `json:"current"`
	Delta    decimal.Decimal `json:"delta"`
}

// CashFlowLine is one classified line of the finished statement.
type CashFlowLine struct {
	Label   string          `json:"label"`
	Amount  decimal.Decimal `json:"amount"`
	Section Section         `json:"section"`
}

// CashFlowStatement is the assembled indirect-method statement.
// NetChangeInCash always equals the sum of the three section subtotals;
// endingCash == beginningCash + netChangeInCash is verified by the
// reconciliation step, never assumed.
type CashFlowStatement struct {
	OperatingLines []CashFlowLine `json:"operating_lines"`
	InvestingLines []CashFlowLine `json:"investing_lines"`
	FinancingLines []CashFlowLine `json:"financing_lines"`

	NetOperating    decimal.Decimal `json:"net_operating"`
	NetInvesting    decimal.Decimal `json:"net_investing"`
	NetFinancing    decimal.Decimal `json:"net_financing"`
	NetChangeInCash decimal.Decimal `json:"net_change_in_cash"`
	BeginningCash   decimal.Decimal `json:"beginning_cash"`
	EndingCash      decimal.Decimal `json:"ending_cash"`
}
