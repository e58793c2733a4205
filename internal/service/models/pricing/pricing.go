package pricing

import (
	"errors"

	"github.com/glowpod/order-svc/internal/service/models/currency"
)

// Bundle holds the price for a unit count and the discount against
// buying the same number of units one at a time.
type Bundle struct {
	Price   int64
	Savings int64
}

// ErrUnknownUnitCount is returned when a unit count has no price table entry.
var ErrUnknownUnitCount = errors.New("unknown unit count")

// table is the sole source of truth for pricing. Prices are whole GHS.
var table = map[int]Bundle{
	1: {Price: 1500, Savings: 0},
	2: {Price: 2800, Savings: 200},
	3: {Price: 4000, Savings: 500},
}

// PriceCurrency is the currency every bundle is priced in.
const PriceCurrency = currency.CurrencyGHS

// PriceFor resolves the total price for the given unit count.
func PriceFor(numUnits int) (int64, error) {
	b, ok := table[numUnits]
	if !ok {
		return 0, ErrUnknownUnitCount
	}

	return b.Price, nil
}

// SavingsFor resolves the discount shown next to the given unit count.
func SavingsFor(numUnits int) (int64, error) {
	b, ok := table[numUnits]
	if !ok {
		return 0, ErrUnknownUnitCount
	}

	return b.Savings, nil
}

// UnitOptions returns the selectable unit counts in ascending order.
func UnitOptions() []int {
	return []int{1, 2, 3}
}
