package tax

// BandTax is one line of a progressive tax breakdown: the income that fell
// into a band and the tax charged on it. Rate is in percent.
type BandTax struct {
	Band   string  `json:"band"`
	Income float64 `json:"income"`
	Rate   float64 `json:"rate"`
	Tax    float64 `json:"tax"`
}

// ProgressiveTax partitions a taxable income across the personal bands,
// bottom-up, consuming from each band until the income is exhausted. The
// breakdown lists every band that received income; zero income yields an
// empty breakdown. The sum of the breakdown incomes equals the input and the
// sum of the breakdown taxes equals the returned total.
func (r Rules) ProgressiveTax(taxableIncome float64) (float64, []BandTax) {
	if taxableIncome <= 0 {
		return 0, nil
	}

	var (
		total     float64
		breakdown []BandTax
		lower     float64
	)

	remain := taxableIncome

	for _, b := range r.PersonalBands {
		if remain <= 0 {
			break
		}

		portion := remain

		if b.Max != UnboundedBandMax {
			if width := b.Max - lower; portion > width {
				portion = width
			}
		}

		bandTax := portion * b.Rate
		total += bandTax

		breakdown = append(breakdown, BandTax{
			Band:   bandLabel(lower, b.Max),
			Income: portion,
			Rate:   b.Rate * 100,
			Tax:    bandTax,
		})

		remain -= portion
		lower = b.Max
	}

	return total, breakdown
}

// MarginalRate returns the band rate (as a fraction) that would apply to the
// next naira of income on top of taxableIncome. Band upper bounds are
// inclusive, so income sitting exactly on a boundary is marginal into the
// band above it.
func (r Rules) MarginalRate(taxableIncome float64) float64 {
	if taxableIncome < 0 {
		taxableIncome = 0
	}

	for _, b := range r.PersonalBands {
		if b.Max == UnboundedBandMax || taxableIncome < b.Max {
			return b.Rate
		}
	}

	return 0
}

// taxFreeThreshold is the top of the zero-rated first band, or 0 when the
// ruleset has no bounded first band.
func (r Rules) taxFreeThreshold() float64 {
	if len(r.PersonalBands) == 0 || r.PersonalBands[0].Max == UnboundedBandMax {
		return 0
	}
	return r.PersonalBands[0].Max
}

func bandLabel(lower, max float64) string {
	if max == UnboundedBandMax {
		return "Over " + FormatCurrency(lower)
	}

	from := lower
	if lower > 0 {
		from = lower + 1
	}

	return FormatCurrency(from) + " - " + FormatCurrency(max)
}
