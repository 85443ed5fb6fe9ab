package tax

import (
	"math"

	"github.com/samber/lo"
)

// Deduction is a caller-supplied deductible expense line.
type Deduction struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" validate:"gte=0"`
}

// PersonalTaxInput is the input record for an individual assessment.
// Amounts are annual naira figures.
type PersonalTaxInput struct {
	AnnualIncome         float64     `json:"annualIncome" validate:"gte=0"`
	ApplyPension         bool        `json:"applyPension"`
	ApplyNHF             bool        `json:"applyNHF"`
	AnnualRent           float64     `json:"annualRent" validate:"gte=0"`
	AdditionalDeductions []Deduction `json:"additionalDeductions" validate:"dive"`
	OCRDeductions        float64     `json:"ocrDeductions" validate:"gte=0"`
}

// PersonalTaxResult itemises every figure used to reach the tax due, so the
// caller can render a full statement without recomputing anything.
// EffectiveRate is in percent.
type PersonalTaxResult struct {
	GrossIncome               float64   `json:"grossIncome"`
	PensionDeduction          float64   `json:"pensionDeduction"`
	NHFDeduction              float64   `json:"nhfDeduction"`
	RentRelief                float64   `json:"rentRelief"`
	AdditionalDeductionsTotal float64   `json:"additionalDeductionsTotal"`
	OCRDeductions             float64   `json:"ocrDeductions"`
	TotalDeductions           float64   `json:"totalDeductions"`
	TaxableIncome             float64   `json:"taxableIncome"`
	TotalTax                  float64   `json:"totalTax"`
	NetIncome                 float64   `json:"netIncome"`
	EffectiveRate             float64   `json:"effectiveRate"`
	Breakdown                 []BandTax `json:"taxBreakdown"`
}

// CalculatePersonalTax computes an individual's annual tax position. Pension
// and NHF contributions are only deducted when the respective flags are set.
// Rent relief is 20% of annual rent, capped. Taxable income is floored at
// zero before the bands are applied.
func (r Rules) CalculatePersonalTax(in PersonalTaxInput) PersonalTaxResult {
	var pension, nhf float64
	if in.ApplyPension {
		pension = in.AnnualIncome * r.PensionRate
	}
	if in.ApplyNHF {
		nhf = in.AnnualIncome * r.NHFRate
	}

	rentRelief := math.Min(in.AnnualRent*r.RentReliefRate, r.RentReliefCap)

	additional := lo.SumBy(in.AdditionalDeductions, func(d Deduction) float64 {
		return d.Amount
	})

	totalDeductions := pension + nhf + rentRelief + additional + in.OCRDeductions
	taxableIncome := math.Max(0, in.AnnualIncome-totalDeductions)

	totalTax, breakdown := r.ProgressiveTax(taxableIncome)

	var effectiveRate float64
	if in.AnnualIncome > 0 {
		effectiveRate = totalTax / in.AnnualIncome * 100
	}

	return PersonalTaxResult{
		GrossIncome:               in.AnnualIncome,
		PensionDeduction:          pension,
		NHFDeduction:              nhf,
		RentRelief:                rentRelief,
		AdditionalDeductionsTotal: additional,
		OCRDeductions:             in.OCRDeductions,
		TotalDeductions:           totalDeductions,
		TaxableIncome:             taxableIncome,
		TotalTax:                  totalTax,
		NetIncome:                 in.AnnualIncome - totalDeductions - totalTax,
		EffectiveRate:             effectiveRate,
		Breakdown:                 breakdown,
	}
}
