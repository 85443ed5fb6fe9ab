package tax

import (
	"fmt"
	"sort"
)

// RecommendationCategory groups advisory rules by the kind of action they
// suggest.
type RecommendationCategory string

const (
	CategoryDeduction RecommendationCategory = "deduction"
	CategoryExemption RecommendationCategory = "exemption"
	CategoryTiming    RecommendationCategory = "timing"
	CategoryStructure RecommendationCategory = "structure"
)

// RecommendationPriority orders recommendations for display.
type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

var priorityRank = map[RecommendationPriority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// TaxRecommendation is one advisory suggestion with an estimated saving.
// PotentialSavings is an estimate at the taxpayer's marginal rate, not a
// recomputed assessment.
type TaxRecommendation struct {
	ID               string                 `json:"id"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	PotentialSavings float64                `json:"potentialSavings"`
	Category         RecommendationCategory `json:"category"`
	Priority         RecommendationPriority `json:"priority"`
	Applicable       bool                   `json:"applicable"`
	ActionType       string                 `json:"actionType"`
}

const (
	// deferralWindow is how far above a band boundary taxable income may sit
	// for an income deferral suggestion to be worthwhile.
	deferralWindow = 500_000

	// receiptCaptureShare is the share of income a taxpayer with no recorded
	// expenses is assumed to be able to document as deductible.
	receiptCaptureShare = 0.025
)

// GenerateRecommendations evaluates the advisory rule catalogue against a
// taxpayer's inputs and, when available, their latest assessment. A nil
// result is tolerated: gross income then stands in for taxable income.
// Recommendations are ordered by priority, then by potential savings.
func (r Rules) GenerateRecommendations(in PersonalTaxInput, latest *PersonalTaxResult) []TaxRecommendation {
	taxable := in.AnnualIncome
	if latest != nil {
		taxable = latest.TaxableIncome
	}

	marginal := r.MarginalRate(taxable)
	threshold := r.taxFreeThreshold()

	var recs []TaxRecommendation

	if !in.ApplyPension && in.AnnualIncome > 0 {
		amount := in.AnnualIncome * r.PensionRate
		recs = append(recs, TaxRecommendation{
			ID:    "pension-contribution",
			Title: "Contribute to a pension scheme",
			Description: fmt.Sprintf(
				"Contributing %s (%g%% of income) to an approved pension fund is fully deductible.",
				FormatCurrency(amount), r.PensionRate*100,
			),
			PotentialSavings: amount * marginal,
			Category:         CategoryDeduction,
			Priority:         PriorityHigh,
			Applicable:       true,
			ActionType:       "enable_pension",
		})
	}

	if !in.ApplyNHF && in.AnnualIncome > 0 {
		amount := in.AnnualIncome * r.NHFRate
		recs = append(recs, TaxRecommendation{
			ID:    "nhf-contribution",
			Title: "Contribute to the National Housing Fund",
			Description: fmt.Sprintf(
				"NHF contributions of %s (%g%% of income) reduce your taxable income.",
				FormatCurrency(amount), r.NHFRate*100,
			),
			PotentialSavings: amount * marginal,
			Category:         CategoryDeduction,
			Priority:         PriorityMedium,
			Applicable:       true,
			ActionType:       "enable_nhf",
		})
	}

	if in.AnnualRent == 0 && in.AnnualIncome > threshold {
		recs = append(recs, TaxRecommendation{
			ID:    "rent-relief",
			Title: "Claim rent relief",
			Description: fmt.Sprintf(
				"Declaring your annual rent unlocks relief of %g%% of rent paid, up to %s.",
				r.RentReliefRate*100, FormatCurrency(r.RentReliefCap),
			),
			PotentialSavings: r.RentReliefCap * marginal,
			Category:         CategoryDeduction,
			Priority:         PriorityMedium,
			Applicable:       true,
			ActionType:       "claim_rent_relief",
		})
	}

	if len(in.AdditionalDeductions) == 0 && in.OCRDeductions == 0 && in.AnnualIncome > threshold {
		amount := in.AnnualIncome * receiptCaptureShare
		recs = append(recs, TaxRecommendation{
			ID:    "expense-receipts",
			Title: "Document deductible expenses",
			Description: fmt.Sprintf(
				"Keeping receipts for work-related expenses could support around %s in deductions.",
				FormatCurrency(amount),
			),
			PotentialSavings: amount * marginal,
			Category:         CategoryDeduction,
			Priority:         PriorityLow,
			Applicable:       true,
			ActionType:       "document_expenses",
		})
	}

	if rec, ok := r.incomeDeferral(taxable, marginal); ok {
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if priorityRank[recs[i].Priority] != priorityRank[recs[j].Priority] {
			return priorityRank[recs[i].Priority] < priorityRank[recs[j].Priority]
		}
		return recs[i].PotentialSavings > recs[j].PotentialSavings
	})

	return recs
}

// incomeDeferral suggests pushing income into the next tax year when taxable
// income sits just above a band boundary.
func (r Rules) incomeDeferral(taxable, marginal float64) (TaxRecommendation, bool) {
	var lower float64

	for _, b := range r.PersonalBands {
		if b.Max == UnboundedBandMax || taxable <= b.Max {
			overhang := taxable - lower
			if lower <= 0 || overhang <= 0 || overhang > deferralWindow {
				return TaxRecommendation{}, false
			}

			return TaxRecommendation{
				ID:    "income-deferral",
				Title: "Defer year-end income",
				Description: fmt.Sprintf(
					"Deferring %s of income to next year keeps your taxable income at the %s boundary, where a lower band rate applies.",
					FormatCurrency(overhang), FormatCurrency(lower),
				),
				PotentialSavings: overhang * marginal,
				Category:         CategoryTiming,
				Priority:         PriorityLow,
				Applicable:       true,
				ActionType:       "defer_income",
			}, true
		}
		lower = b.Max
	}

	return TaxRecommendation{}, false
}
