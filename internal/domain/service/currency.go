package service

// Currency is the billing currency of a service and its system allocations.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

// IsValid checks enum membership.
func (c Currency) IsValid() bool {
	return c == CurrencyEUR || c == CurrencyUSD
}

func (c Currency) String() string {
	return string(c)
}
