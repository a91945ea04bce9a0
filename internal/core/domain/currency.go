package domain

import "strings"

// Currency is a currency unit of the currency category.
type Currency struct {
	Unit
}

// LookupCurrency finds a supported currency by code, case-insensitively.
func LookupCurrency(code string) (Currency, error) {
	u, err := catalog[CategoryCurrency].Unit(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return Currency{}, err
	}
	return Currency{Unit: u}, nil
}

// StaticRate is the approximate USD-relative fallback rate for one unit of c in target.
func (c Currency) StaticRate(target Currency) float64 {
	return target.Factor / c.Factor
}

// ConvertStatic converts amount using the static USD-relative table.
func (c Currency) ConvertStatic(amount float64, target Currency) float64 {
	return amount / c.Factor * target.Factor
}
