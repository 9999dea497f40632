package domain

import "github.com/shopspring/decimal"

// Player-facing message formats. Currency amounts are passed pre-formatted
// with the currency symbol.
const (
	MsgExpGainedFormat     = "You have gained %d exp in the %s job."
	MsgLevelUpFormat       = "Congratulations, you are now a level %d %s."
	MsgRewardPaidFormat    = "%s has been added to your balance."
	MsgSalaryPaidFormat    = "Your salary of %s has just been paid."
	MsgJobChangedFormat    = "Your job has been changed to %s"
	MsgJobPermissionDenied = "You do not have permission to become this job."
	MsgJobDoesNotExist     = "This job does not exist."
)

// Defaults used when no configuration overrides them
const (
	DefaultCurrencySymbol     = "$"
	DefaultCurrencyName       = "dollar"
	DefaultSalaryDelaySeconds = 300
)

// FormatCurrency renders amount with two decimals behind symbol, e.g. "$1.25"
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
