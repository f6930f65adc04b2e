package taxprovider

import (
	"github.com/shopspring/decimal"
)

// CalculateTaxRequest is the request for calculating tax on an amount.
type CalculateTaxRequest struct {
	State         string          `json:"state"`
	ZipPostalCode string          `json:"zipPostalCode"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
}

// GetRateRequest is the request for looking up the rates of a location.
type GetRateRequest struct {
	ZipPostalCode string `json:"zipPostalCode"`
}

// TaxData is the normalized result of a tax calculation.
type TaxData struct {
	TotalTax decimal.Decimal
}

// TaxRateData is the normalized result of a rate lookup.
// TotalRate is the provider's combined rate and is passed through as-is; it
// is not required to equal the sum of the other rates.
type TaxRateData struct {
	CityRate   decimal.Decimal
	CountyRate decimal.Decimal
	StateRate  decimal.Decimal
	TotalRate  decimal.Decimal
}
