package tax

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// CompanyTaxInput is the input record for a corporate assessment.
// AssessableProfit is the profit before capital allowances and other
// deductions; the balancing charge on a disposed asset is derived from the
// proceeds and its tax written-down value.
type CompanyTaxInput struct {
	AnnualTurnover               float64        `json:"annualTurnover" validate:"gte=0"`
	FixedAssets                  float64        `json:"fixedAssets" validate:"gte=0"`
	AssessableProfit             float64        `json:"assessableProfit" validate:"gte=0"`
	IsProfessionalService        bool           `json:"isProfessionalService"`
	IsNonResident                bool           `json:"isNonResident"`
	IsLargeCompany               bool           `json:"isLargeCompany"`
	IsMNE                        bool           `json:"isMNE"`
	CapitalAllowances            float64        `json:"capitalAllowances" validate:"gte=0"`
	OtherDeductions              []Deduction    `json:"otherDeductions" validate:"dive"`
	AssetDisposalProceeds        float64        `json:"assetDisposalProceeds" validate:"gte=0"`
	AssetTaxWrittenDownValue     float64        `json:"assetTaxWrittenDownValue" validate:"gte=0"`
	BusinessSector               BusinessSector `json:"businessSector"`
	IsTaxHolidayActive           bool           `json:"isTaxHolidayActive"`
	QualifyingCapitalExpenditure float64        `json:"qualifyingCapitalExpenditure" validate:"gte=0"`
}

// LineItem is one labelled amount in a company tax breakdown. Charges are
// positive, incentive savings negative, exemptions zero.
type LineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// CompanyTaxResult itemises a corporate assessment. TaxRate and
// EffectiveRate are in percent.
type CompanyTaxResult struct {
	AnnualTurnover               float64        `json:"annualTurnover"`
	FixedAssets                  float64        `json:"fixedAssets"`
	AssessableProfit             float64        `json:"assessableProfit"`
	CapitalAllowances            float64        `json:"capitalAllowances"`
	OtherDeductionsTotal         float64        `json:"otherDeductionsTotal"`
	TotalDeductions              float64        `json:"totalDeductions"`
	AssetDisposalGain            float64        `json:"assetDisposalGain"`
	TaxableProfit                float64        `json:"taxableProfit"`
	CompanySize                  CompanySize    `json:"companySize"`
	IsLargeCompany               bool           `json:"isLargeCompany"`
	IsNonResident                bool           `json:"isNonResident"`
	BusinessSector               BusinessSector `json:"businessSector"`
	TaxRate                      float64        `json:"taxRate"`
	CorporateTax                 float64        `json:"corporateTax"`
	DevelopmentLevy              float64        `json:"developmentLevy"`
	ETRTopUp                     float64        `json:"etrTopUp"`
	TaxHolidaySavings            float64        `json:"taxHolidaySavings"`
	EDICredit                    float64        `json:"ediCredit"`
	TotalIncentiveSavings        float64        `json:"totalIncentiveSavings"`
	TotalTax                     float64        `json:"totalTax"`
	NetProfit                    float64        `json:"netProfit"`
	EffectiveRate                float64        `json:"effectiveRate"`
	MinimumETRApplied            bool           `json:"minimumETRApplied"`
	IsTaxHolidayActive           bool           `json:"isTaxHolidayActive"`
	QualifyingCapitalExpenditure float64        `json:"qualifyingCapitalExpenditure"`
	Breakdown                    []LineItem     `json:"taxBreakdown"`
}

// DetermineCompanySize applies the small-company test: turnover at or below
// the turnover ceiling and fixed assets strictly below the asset ceiling.
// Professional service firms never qualify as small.
func (r Rules) DetermineCompanySize(turnover, fixedAssets float64, professionalService bool) CompanySize {
	if professionalService {
		return CompanySizeBig
	}
	if turnover <= r.SmallCompanyTurnoverMax && fixedAssets < r.SmallCompanyAssetsMax {
		return CompanySizeSmall
	}
	return CompanySizeBig
}

// CalculateCompanyTax computes a company's annual tax position: corporate
// income tax, development levy, the minimum effective rate top-up for large
// companies, and incentive savings (tax holiday, EDI credit). Small
// companies are fully exempt from both CIT and the levy regardless of the
// large-company flags.
func (r Rules) CalculateCompanyTax(in CompanyTaxInput) CompanyTaxResult {
	sector := ParseBusinessSector(string(in.BusinessSector))

	disposalGain := math.Max(0, in.AssetDisposalProceeds-in.AssetTaxWrittenDownValue)

	otherTotal := lo.SumBy(in.OtherDeductions, func(d Deduction) float64 {
		return d.Amount
	})

	totalDeductions := in.CapitalAllowances + otherTotal
	taxableProfit := math.Max(0, in.AssessableProfit-totalDeductions+disposalGain)

	size := r.DetermineCompanySize(in.AnnualTurnover, in.FixedAssets, in.IsProfessionalService)
	if size != CompanySizeSmall &&
		(in.AnnualTurnover > r.LargeCompanyTurnoverMin || in.IsMNE || in.IsLargeCompany) {
		size = CompanySizeLarge
	}

	var (
		breakdown    []LineItem
		corporateTax float64
		levy         float64
		taxRate      float64
	)

	if size == CompanySizeSmall {
		breakdown = append(breakdown,
			LineItem{Description: "Corporate Income Tax (Small Company Exemption)", Amount: 0},
			LineItem{Description: "Development Levy (Small Company Exemption)", Amount: 0},
		)
	} else {
		taxRate = r.CITRate * 100
		corporateTax = taxableProfit * r.CITRate
		breakdown = append(breakdown, LineItem{
			Description: fmt.Sprintf("Corporate Income Tax (%g%%)", r.CITRate*100),
			Amount:      corporateTax,
		})

		if in.IsNonResident {
			breakdown = append(breakdown, LineItem{
				Description: "Development Levy (Non-resident Exemption)",
				Amount:      0,
			})
		} else {
			levy = in.AssessableProfit * r.DevelopmentLevyRate
			breakdown = append(breakdown, LineItem{
				Description: fmt.Sprintf("Development Levy (%g%% of Assessable Profit)", r.DevelopmentLevyRate*100),
				Amount:      levy,
			})
		}
	}

	var (
		etrTopUp          float64
		minimumETRApplied bool
	)

	if size == CompanySizeLarge && taxableProfit > 0 {
		if currentETR := (corporateTax + levy) / taxableProfit; currentETR < r.MinimumETR {
			etrTopUp = taxableProfit*r.MinimumETR - (corporateTax + levy)
			minimumETRApplied = true
			breakdown = append(breakdown, LineItem{
				Description: fmt.Sprintf("Minimum ETR Top-up (%g%%)", r.MinimumETR*100),
				Amount:      etrTopUp,
			})
		}
	}

	grossTax := corporateTax + levy + etrTopUp

	var holidaySavings, ediCredit float64

	if size != CompanySizeSmall {
		if in.IsTaxHolidayActive && lo.Contains(r.TaxHolidaySectors, sector) {
			holidaySavings = corporateTax + levy
			breakdown = append(breakdown, LineItem{
				Description: fmt.Sprintf("Tax Holiday Exemption (%s)", sector),
				Amount:      asCredit(holidaySavings),
			})
		}

		if in.QualifyingCapitalExpenditure > 0 && lo.Contains(r.EDISectors, sector) {
			ediCredit = in.QualifyingCapitalExpenditure * r.EDICreditRate
			if remaining := grossTax - holidaySavings; ediCredit > remaining {
				ediCredit = remaining
			}
			breakdown = append(breakdown, LineItem{
				Description: fmt.Sprintf("EDI Credit (%g%% of Qualifying Capital Expenditure)", r.EDICreditRate*100),
				Amount:      asCredit(ediCredit),
			})
		}
	}

	totalIncentives := holidaySavings + ediCredit
	totalTax := math.Max(0, grossTax-totalIncentives)

	var effectiveRate float64
	if taxableProfit > 0 {
		effectiveRate = totalTax / taxableProfit * 100
	}

	return CompanyTaxResult{
		AnnualTurnover:               in.AnnualTurnover,
		FixedAssets:                  in.FixedAssets,
		AssessableProfit:             in.AssessableProfit,
		CapitalAllowances:            in.CapitalAllowances,
		OtherDeductionsTotal:         otherTotal,
		TotalDeductions:              totalDeductions,
		AssetDisposalGain:            disposalGain,
		TaxableProfit:                taxableProfit,
		CompanySize:                  size,
		IsLargeCompany:               size == CompanySizeLarge,
		IsNonResident:                in.IsNonResident,
		BusinessSector:               sector,
		TaxRate:                      taxRate,
		CorporateTax:                 corporateTax,
		DevelopmentLevy:              levy,
		ETRTopUp:                     etrTopUp,
		TaxHolidaySavings:            holidaySavings,
		EDICredit:                    ediCredit,
		TotalIncentiveSavings:        totalIncentives,
		TotalTax:                     totalTax,
		NetProfit:                    in.AssessableProfit - totalTax,
		EffectiveRate:                effectiveRate,
		MinimumETRApplied:            minimumETRApplied,
		IsTaxHolidayActive:           in.IsTaxHolidayActive,
		QualifyingCapitalExpenditure: in.QualifyingCapitalExpenditure,
		Breakdown:                    breakdown,
	}
}

// asCredit renders a savings amount as a negative breakdown value without
// producing a negative zero.
func asCredit(v float64) float64 {
	if v == 0 {
		return 0
	}
	return -v
}
