package kernel

import (
	"fmt"

	"transport/internal/pkg/errs"
)

// CurrencyCode identifies a currency accepted on monetary input. All stored
// amounts are normalized to EUR; other codes are converted on the way in.
type CurrencyCode string

const (
	// CurrencyEUR is the normalization target. Conversion from EUR is identity.
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyGBP CurrencyCode = "GBP"
	CurrencyPLN CurrencyCode = "PLN"
	CurrencyCZK CurrencyCode = "CZK"
	CurrencyUAH CurrencyCode = "UAH"
)

func validCurrencyCodes() map[CurrencyCode]struct{} {
	return map[CurrencyCode]struct{}{
		CurrencyEUR: {},
		CurrencyUSD: {},
		CurrencyGBP: {},
		CurrencyPLN: {},
		CurrencyCZK: {},
		CurrencyUAH: {},
	}
}

// CurrencyCodeFromString parses and validates a currency code.
func CurrencyCodeFromString(s string) (CurrencyCode, error) {
	code := CurrencyCode(s)
	if err := code.Validate(); err != nil {
		return "", err
	}
	return code, nil
}

// String returns the ISO 4217 letter code.
func (c CurrencyCode) String() string {
	return string(c)
}

// Validate reports whether the code belongs to the supported set.
func (c CurrencyCode) Validate() error {
	if _, ok := validCurrencyCodes()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a supported currency code", string(c)))
	}
	return nil
}
