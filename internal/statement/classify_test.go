package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nokataxx/cashflow-app/internal/models"
)

func delta(category models.AccountCategory, prior, current int64) models.AccountDelta {
	p := decimal.NewFromInt(prior)
	c := decimal.NewFromInt(current)
	return models.AccountDelta{Category: category, Prior: p, Current: c, Delta: c.Sub(p)}
}

func TestClassifyRules(t *testing.T) {
	tests := []struct {
		name        string
		delta       models.AccountDelta
		wantSection models.Section
		wantAmount  string
	}{
		{
			name:        "net income passes through at its period amount",
			delta:       delta(models.NetIncome, 0, 20),
			wantSection: models.SectionOperating,
			wantAmount:  "20",
		},
		{
			name:        "receivables increase is a use of cash",
			delta:       delta(models.AccountsReceivable, 10, 35),
			wantSection: models.SectionOperating,
			wantAmount:  "-25",
		},
		{
			name:        "inventory decrease is a source of cash",
			delta:       delta(models.Inventory, 50, 30),
			wantSection: models.SectionOperating,
			wantAmount:  "20",
		},
		{
			name:        "payables increase is a source of cash",
			delta:       delta(models.AccountsPayable, 10, 25),
			wantSection: models.SectionOperating,
			wantAmount:  "15",
		},
		{
			name:        "depreciation added back at full expense amount",
			delta:       delta(models.DepreciationExpense, 25, 30),
			wantSection: models.SectionOperating,
			wantAmount:  "30",
		},
		{
			name:        "gain on disposal reversed out of operating",
			delta:       delta(models.GainLossOnDisposal, 0, 8),
			wantSection: models.SectionOperating,
			wantAmount:  "-8",
		},
		{
			name:        "ppe purchase is an investing outflow",
			delta:       delta(models.PPE, 200, 250),
			wantSection: models.SectionInvesting,
			wantAmount:  "-50",
		},
		{
			name:        "asset sale proceeds are an investing inflow",
			delta:       delta(models.ProceedsFromAssetSale, 0, 12),
			wantSection: models.SectionInvesting,
			wantAmount:  "12",
		},
		{
			name:        "new borrowing is a financing inflow",
			delta:       delta(models.LongTermDebt, 100, 160),
			wantSection: models.SectionFinancing,
			wantAmount:  "60",
		},
		{
			name:        "debt repayment is a financing outflow",
			delta:       delta(models.LongTermDebt, 160, 100),
			wantSection: models.SectionFinancing,
			wantAmount:  "-60",
		},
		{
			name:        "treasury stock buyback is a financing outflow",
			delta:       delta(models.TreasuryStock, 0, 30),
			wantSection: models.SectionFinancing,
			wantAmount:  "-30",
		},
		{
			name:        "dividends paid are a financing outflow",
			delta:       delta(models.DividendsPaid, 0, 5),
			wantSection: models.SectionFinancing,
			wantAmount:  "-5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Classify([]models.AccountDelta{tt.delta})
			require.NoError(t, err)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantSection, lines[0].Section)
			assert.Equal(t, tt.wantAmount, lines[0].Amount.String())
		})
	}
}

func TestClassifyExcludesCash(t *testing.T) {
	lines, err := Classify([]models.AccountDelta{delta(models.CashAndEquivalents, 100, 140)})
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestClassifyDropsZeroEffectLines(t *testing.T) {
	lines, err := Classify([]models.AccountDelta{delta(models.AccountsReceivable, 40, 40)})
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestClassifyUnknownCategory(t *testing.T) {
	_, err := Classify([]models.AccountDelta{delta(models.AccountCategory("goodwill"), 0, 10)})

	var unclassifiable *UnclassifiableCategoryError
	require.ErrorAs(t, err, &unclassifiable)
	assert.Equal(t, models.AccountCategory("goodwill"), unclassifiable.Category)
}

func TestEveryCategoryHasARule(t *testing.T) {
	// The alias table is the entry point for user input; anything it can
	// produce must be classifiable.
	for label, category := range labelAliases {
		_, ok := classificationRules[category]
		assert.True(t, ok, "alias %q maps to category %q with no classification rule", label, category)
	}
}
