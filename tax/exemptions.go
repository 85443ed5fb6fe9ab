package tax

import "math"

// ShareTransferInput describes a disposal of shares in a single year.
type ShareTransferInput struct {
	DisposalProceeds   float64 `json:"disposalProceeds" validate:"gte=0"`
	CostBasis          float64 `json:"costBasis" validate:"gte=0"`
	ReinvestmentAmount float64 `json:"reinvestmentAmount" validate:"gte=0"`
}

// ShareTransferResult itemises the capital gains position of a share
// disposal.
type ShareTransferResult struct {
	DisposalProceeds   float64 `json:"disposalProceeds"`
	CostBasis          float64 `json:"costBasis"`
	ReinvestmentAmount float64 `json:"reinvestmentAmount"`
	CapitalGain        float64 `json:"capitalGain"`
	Eligible           bool    `json:"eligible"`
	ExemptAmount       float64 `json:"exemptAmount"`
	TaxableGain        float64 `json:"taxableGain"`
	Tax                float64 `json:"tax"`
}

// CalculateShareTransferExemption works out the capital gains tax on a share
// disposal. Disposals with proceeds at or below the proceeds ceiling qualify
// for a base exemption on the gain plus reinvestment relief; the combined
// exemption never exceeds the gain itself.
func (r Rules) CalculateShareTransferExemption(in ShareTransferInput) ShareTransferResult {
	gain := math.Max(0, in.DisposalProceeds-in.CostBasis)
	eligible := in.DisposalProceeds <= r.ShareProceedsExemptionMax

	var exempt float64
	if eligible {
		exempt = math.Min(gain, r.ShareGainExemptionCap)
		if in.ReinvestmentAmount > 0 {
			exempt += math.Min(in.ReinvestmentAmount, gain-exempt)
		}
	}

	taxableGain := gain - exempt

	return ShareTransferResult{
		DisposalProceeds:   in.DisposalProceeds,
		CostBasis:          in.CostBasis,
		ReinvestmentAmount: in.ReinvestmentAmount,
		CapitalGain:        gain,
		Eligible:           eligible,
		ExemptAmount:       exempt,
		TaxableGain:        taxableGain,
		Tax:                taxableGain * r.CGTRate,
	}
}

// CompensationResult itemises the tax treatment of an injury or defamation
// compensation payout.
type CompensationResult struct {
	TotalCompensation float64   `json:"totalCompensation"`
	ExemptPortion     float64   `json:"exemptPortion"`
	TaxablePortion    float64   `json:"taxablePortion"`
	Tax               float64   `json:"tax"`
	Breakdown         []BandTax `json:"taxBreakdown"`
}

// CalculateCompensationExemption exempts compensation up to the statutory
// cap and taxes only the excess, running the excess alone through the
// personal bands as if it were the recipient's entire income for the year.
func (r Rules) CalculateCompensationExemption(totalCompensation float64) CompensationResult {
	exempt := math.Min(totalCompensation, r.CompensationExemptionCap)
	taxable := math.Max(0, totalCompensation-r.CompensationExemptionCap)

	tax, breakdown := r.ProgressiveTax(taxable)

	return CompensationResult{
		TotalCompensation: totalCompensation,
		ExemptPortion:     exempt,
		TaxablePortion:    taxable,
		Tax:               tax,
		Breakdown:         breakdown,
	}
}
