package payment

import "github.com/shopspring/decimal"

const (
	ReasonNonPositiveAmount = "Amount must be > 0"
	ReasonAmountOverLimit   = "Amount exceeds limit"
)

var authorizationLimit = decimal.NewFromInt(5000)

// Simulate is the provider authorization decision: deterministic, no I/O.
// An empty reason means the authorization was approved.
func Simulate(amount decimal.Decimal) (bool, string) {
	if amount.Sign() <= 0 {
		return false, ReasonNonPositiveAmount
	}
	if amount.GreaterThan(authorizationLimit) {
		return false, ReasonAmountOverLimit
	}
	return true, ""
}
