package processor

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ResponseData is the payload of a successful Outcome. It is a closed set:
// CalculateTaxResponse, GetRateResponse or NoData.
type ResponseData interface {
	isResponseData()
}

// CalculateTaxResponse is the public result of a tax calculation.
type CalculateTaxResponse struct {
	TotalTax decimal.Decimal `json:"totalTax"`
}

// GetRateResponse is the public result of a rate lookup.
type GetRateResponse struct {
	CityRate   decimal.Decimal `json:"cityRate"`
	CountyRate decimal.Decimal `json:"countyRate"`
	StateRate  decimal.Decimal `json:"stateRate"`
	TotalRate  decimal.Decimal `json:"totalRate"`
}

// MarshalJSON writes the tax as a JSON number that keeps its scale.
func (r CalculateTaxResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TotalTax json.Number `json:"totalTax"`
	}{number(r.TotalTax)})
}

// MarshalJSON writes the rates as JSON numbers that keep their scale.
func (r GetRateResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CityRate   json.Number `json:"cityRate"`
		CountyRate json.Number `json:"countyRate"`
		StateRate  json.Number `json:"stateRate"`
		TotalRate  json.Number `json:"totalRate"`
	}{number(r.CityRate), number(r.CountyRate), number(r.StateRate), number(r.TotalRate)})
}

// number renders d with its own scale, so 8.90 stays 8.90.
func number(d decimal.Decimal) json.Number {
	if d.Exponent() < 0 {
		return json.Number(d.StringFixed(-d.Exponent()))
	}
	return json.Number(d.String())
}

// NoData is a success without payload: the provider exists but is not configured.
type NoData struct{}

// MarshalJSON encodes NoData as null.
func (NoData) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (CalculateTaxResponse) isResponseData() {}
func (GetRateResponse) isResponseData()      {}
func (NoData) isResponseData()               {}

// Outcome is the uniform result of every processor operation.
// Build it with Succeeded or Failed; it cannot be changed afterwards.
type Outcome struct {
	success bool
	data    ResponseData
	errors  []ErrorResponse
}

// Succeeded returns a successful outcome. A nil data becomes NoData.
func Succeeded(data ResponseData) Outcome {
	if data == nil {
		data = NoData{}
	}
	return Outcome{success: true, data: data}
}

// Failed returns a failed outcome carrying errs in order.
// It panics when errs is empty, since a failure must explain itself.
func Failed(errs ...ErrorResponse) Outcome {
	if len(errs) == 0 {
		panic("processor: Failed requires at least one error")
	}
	return Outcome{errors: append([]ErrorResponse(nil), errs...)}
}

// Success reports whether the operation succeeded.
func (o Outcome) Success() bool {
	return o.success
}

// Data returns the payload of a successful outcome, nil on failure.
func (o Outcome) Data() ResponseData {
	return o.data
}

// Errors returns a copy of the outcome's errors. Empty on success.
func (o Outcome) Errors() []ErrorResponse {
	return append([]ErrorResponse(nil), o.errors...)
}
