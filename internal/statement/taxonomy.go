package statement

import (
	"strings"

	"github.com/nokataxx/cashflow-app/internal/models"
)

// signBehavior says how a category's numbers turn into a cash effect.
type signBehavior int

const (
	// signDelta contributes +delta (liability/equity growth is a source of cash).
	signDelta signBehavior = iota
	// signDeltaNegated contributes -delta (asset growth is a use of cash).
	signDeltaNegated
	// signCurrent contributes +current-period amount, ignoring the delta.
	// Used for income-statement flows such as net income and non-cash
	// add-backs, which are period amounts rather than balance movements.
	signCurrent
	// signCurrentNegated contributes -current-period amount. Used to reverse
	// items already included in net income (gains on disposal) and for
	// outflows reported as positive amounts (dividends paid).
	signCurrentNegated
	// signExcluded never produces a line. Cash itself is the reconciliation
	// target, not an input to it.
	signExcluded
)

// classificationRule fixes how one category is presented: which section it
// lands in, how its amount is signed, and where it sits within the section.
type classificationRule struct {
	Section  models.Section
	Behavior signBehavior
	Order    int
	Label    string
}

// classificationRules is the full rule table, one entry per taxonomy
// category. Rules are data so each one can be audited and tested on its own.
var classificationRules = map[models.AccountCategory]classificationRule{
	models.CashAndEquivalents: {Behavior: signExcluded, Label: "Cash and Cash Equivalents"},

	// Operating: net income and proxies first, then non-cash add-backs,
	// then working capital movements.
	models.NetIncome:               {Section: models.SectionOperating, Behavior: signCurrent, Order: 10, Label: "Net Income"},
	models.RetainedEarnings:        {Section: models.SectionOperating, Behavior: signDelta, Order: 11, Label: "Change in Retained Earnings"},
	models.DepreciationExpense:     {Section: models.SectionOperating, Behavior: signCurrent, Order: 20, Label: "Depreciation Expense"},
	models.AmortizationExpense:     {Section: models.SectionOperating, Behavior: signCurrent, Order: 21, Label: "Amortization Expense"},
	models.AccumulatedDepreciation: {Section: models.SectionOperating, Behavior: signDelta, Order: 22, Label: "Change in Accumulated Depreciation"},
	models.GainLossOnDisposal:      {Section: models.SectionOperating, Behavior: signCurrentNegated, Order: 23, Label: "Gain/Loss on Disposal of Assets"},
	models.AccountsReceivable:      {Section: models.SectionOperating, Behavior: signDeltaNegated, Order: 30, Label: "Change in Accounts Receivable"},
	models.Inventory:               {Section: models.SectionOperating, Behavior: signDeltaNegated, Order: 31, Label: "Change in Inventory"},
	models.PrepaidExpenses:         {Section: models.SectionOperating, Behavior: signDeltaNegated, Order: 32, Label: "Change in Prepaid Expenses"},
	models.AccountsPayable:         {Section: models.SectionOperating, Behavior: signDelta, Order: 33, Label: "Change in Accounts Payable"},
	models.AccruedLiabilities:      {Section: models.SectionOperating, Behavior: signDelta, Order: 34, Label: "Change in Accrued Liabilities"},
	models.DeferredRevenue:         {Section: models.SectionOperating, Behavior: signDelta, Order: 35, Label: "Change in Deferred Revenue"},

	models.PPE:                   {Section: models.SectionInvesting, Behavior: signDeltaNegated, Order: 40, Label: "Purchases of Property, Plant and Equipment"},
	models.Investments:           {Section: models.SectionInvesting, Behavior: signDeltaNegated, Order: 41, Label: "Purchases of Investments"},
	models.IntangibleAssets:      {Section: models.SectionInvesting, Behavior: signDeltaNegated, Order: 42, Label: "Purchases of Intangible Assets"},
	models.ProceedsFromAssetSale: {Section: models.SectionInvesting, Behavior: signCurrent, Order: 43, Label: "Proceeds from Sale of Assets"},

	models.ShortTermDebt: {Section: models.SectionFinancing, Behavior: signDelta, Order: 50, Label: "Change in Short-Term Debt"},
	models.LongTermDebt:  {Section: models.SectionFinancing, Behavior: signDelta, Order: 51, Label: "Change in Long-Term Debt"},
	models.PaidInCapital: {Section: models.SectionFinancing, Behavior: signDelta, Order: 52, Label: "Issuance of Capital Stock"},
	models.TreasuryStock: {Section: models.SectionFinancing, Behavior: signDeltaNegated, Order: 53, Label: "Purchases of Treasury Stock"},
	models.DividendsPaid: {Section: models.SectionFinancing, Behavior: signCurrentNegated, Order: 54, Label: "Dividends Paid"},
}

// labelAliases maps normalized user-facing labels to taxonomy categories.
// Lookup is case- and whitespace-insensitive.
var labelAliases = map[string]models.AccountCategory{
	"cash":                      models.CashAndEquivalents,
	"cash and equivalents":      models.CashAndEquivalents,
	"cash and cash equivalents": models.CashAndEquivalents,

	"accounts receivable": models.AccountsReceivable,
	"receivables":         models.AccountsReceivable,
	"trade receivables":   models.AccountsReceivable,

	"inventory":   models.Inventory,
	"inventories": models.Inventory,

	"prepaid expenses": models.PrepaidExpenses,
	"prepaids":         models.PrepaidExpenses,

	"ppe":                           models.PPE,
	"property plant and equipment":  models.PPE,
	"property, plant and equipment": models.PPE,
	"fixed assets":                  models.PPE,

	"accumulated depreciation": models.AccumulatedDepreciation,

	"investments":           models.Investments,
	"long-term investments": models.Investments,
	"intangible assets":     models.IntangibleAssets,
	"intangibles":           models.IntangibleAssets,

	"accounts payable": models.AccountsPayable,
	"payables":         models.AccountsPayable,
	"trade payables":   models.AccountsPayable,

	"accrued liabilities": models.AccruedLiabilities,
	"accrued expenses":    models.AccruedLiabilities,

	"deferred revenue": models.DeferredRevenue,
	"unearned revenue": models.DeferredRevenue,

	"short-term debt": models.ShortTermDebt,
	"short term debt": models.ShortTermDebt,
	"notes payable":   models.ShortTermDebt,
	"long-term debt":  models.LongTermDebt,
	"long term debt":  models.LongTermDebt,

	"paid-in capital":   models.PaidInCapital,
	"paid in capital":   models.PaidInCapital,
	"common stock":      models.PaidInCapital,
	"capital stock":     models.PaidInCapital,
	"treasury stock":    models.TreasuryStock,
	"retained earnings": models.RetainedEarnings,

	"net income": models.NetIncome,
	"net profit": models.NetIncome,
	"net loss":   models.NetIncome,

	"depreciation expense":         models.DepreciationExpense,
	"depreciation":                 models.DepreciationExpense,
	"amortization expense":         models.AmortizationExpense,
	"amortization":                 models.AmortizationExpense,
	"gain on disposal":             models.GainLossOnDisposal,
	"loss on disposal":             models.GainLossOnDisposal,
	"gain/loss on disposal":        models.GainLossOnDisposal,
	"proceeds from asset sale":     models.ProceedsFromAssetSale,
	"proceeds from sale of assets": models.ProceedsFromAssetSale,

	"dividends":      models.DividendsPaid,
	"dividends paid": models.DividendsPaid,
}

// normalizeLabel canonicalizes a label for alias lookup.
func normalizeLabel(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), " "))
}

// lookupCategory resolves a raw label to its taxonomy category.
func lookupCategory(label string) (models.AccountCategory, bool) {
	category, ok := labelAliases[normalizeLabel(label)]
	return category, ok
}
