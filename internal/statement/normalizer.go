package statement

import (
	"github.com/shopspring/decimal"

	"github.com/nokataxx/cashflow-app/internal/models"
)

// NormalizePeriod validates one period of raw (label, amount) pairs and
// canonicalizes it into a StatementPeriod keyed by taxonomy category.
// Normalization is pure and order-independent; presentation order is
// applied later by the assembler. Unknown labels are rejected, never
// silently dropped.
func NormalizePeriod(raw models.RawPeriod) (models.StatementPeriod, error) {
	period := models.StatementPeriod{
		Label: raw.Label,
		Items: make(map[models.AccountCategory]models.LineItem, len(raw.Items)),
	}

	for _, item := range raw.Items {
		category, ok := lookupCategory(item.Label)
		if !ok {
			return models.StatementPeriod{}, &UnmappedAccountError{Label: item.Label}
		}
		if _, exists := period.Items[category]; exists {
			return models.StatementPeriod{}, &DuplicateAccountError{Label: item.Label, Category: category}
		}

		amount, err := decimal.NewFromString(item.Amount)
		if err != nil {
			return models.StatementPeriod{}, &InvalidAmountError{Label: item.Label, Raw: item.Amount}
		}

		period.Items[category] = models.LineItem{
			Label:    item.Label,
			Category: category,
			Amount:   amount,
		}
	}

	return period, nil
}
