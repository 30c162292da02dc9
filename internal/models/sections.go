// Package models - empty-section checks for composite payloads.
// A child section whose every reported field is null/blank is skipped by
// the composite writers instead of being stored as an empty row.
package models

// Empty reports whether no cash-flow figure was supplied
func (c CashFlow) Empty() bool {
	return c.FiscalYear == "" && !c.OperatingActivity.Valid && !c.InvestingActivity.Valid &&
		!c.FinancingActivity.Valid && !c.NetCashFlow.Valid
}

// Empty reports whether no balance-sheet figure was supplied
func (b BalanceSheet) Empty() bool {
	return b.FiscalYear == "" && !b.TotalAssets.Valid && !b.TotalLiabilities.Valid &&
		!b.ShareholderEquity.Valid && !b.TotalDebt.Valid && !b.CashAndEquivalents.Valid
}

// Empty reports whether no profit-and-loss figure was supplied
func (p AnnualProfitLoss) Empty() bool {
	return p.FiscalYear == "" && !p.Revenue.Valid && !p.OperatingProfit.Valid &&
		!p.NetProfit.Valid && !p.EPS.Valid && !p.DividendPayout.Valid
}

// Empty reports whether no metric was supplied
func (m FinancialMetrics) Empty() bool {
	return !m.MarketCap.Valid && !m.BookValue.Valid && !m.FaceValue.Valid &&
		!m.DividendYield.Valid && !m.High52Week.Valid && !m.Low52Week.Valid
}

// Empty reports whether no ratio was supplied
func (r FinancialRatios) Empty() bool {
	return !r.PERatio.Valid && !r.PBRatio.Valid && !r.ROE.Valid &&
		!r.ROCE.Valid && !r.DebtToEquity.Valid && !r.CurrentRatio.Valid
}

// Empty reports whether no commentary was supplied
func (p PeerAnalysis) Empty() bool {
	return p.Summary == "" && p.Strengths == "" && p.Weaknesses == ""
}

// Empty reports whether no valuation input was supplied
func (v ValuationInput) Empty() bool {
	return !v.GrowthRate.Valid && !v.DiscountRate.Valid &&
		!v.TerminalGrowth.Valid && !v.FairValue.Valid
}

// Empty reports whether no offer term was supplied
func (d IPODetail) Empty() bool {
	return !d.PriceBandLow.Valid && !d.PriceBandHigh.Valid && d.LotSize == 0 &&
		!d.IssueSize.Valid && !d.FreshIssue.Valid && !d.OfferForSale.Valid &&
		d.RegistrarName == "" && d.LeadManagers == ""
}

// Empty reports whether no trailing return was supplied
func (r FundReturn) Empty() bool {
	return !r.OneYear.Valid && !r.ThreeYear.Valid && !r.FiveYear.Valid && !r.SinceLaunch.Valid
}

// Empty reports whether no income line was supplied
func (i EarningsIncome) Empty() bool {
	return !i.Revenue.Valid && !i.Expenses.Valid && !i.OperatingProfit.Valid &&
		!i.NetProfit.Valid && !i.EPS.Valid
}

// Empty reports whether no quarter ratio was supplied
func (r EarningsRatio) Empty() bool {
	return !r.OperatingMargin.Valid && !r.NetMargin.Valid &&
		!r.YoYGrowth.Valid && !r.QoQGrowth.Valid
}
