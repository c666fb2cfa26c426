package services

import (
	"InjetaClin/models"
	"InjetaClin/utils"
	"time"
)

// PeriodKPIs aggregates the billing figures for one date range.
type PeriodKPIs struct {
	GrossRevenue float64 `json:"gross_revenue"`
	TotalSales   int     `json:"total_sales"`
	CMV          float64 `json:"cmv"`
	Opex         float64 `json:"opex"`
	NetProfit    float64 `json:"net_profit"`
	NetMargin    float64 `json:"net_margin"`
}

// KPIReport is the current period next to its variance against the
// preceding period of equal length. Variances are nil when the previous
// figure is zero.
type KPIReport struct {
	Current           PeriodKPIs `json:"current"`
	Previous          PeriodKPIs `json:"previous"`
	RevenueVariance   *float64   `json:"revenue_variance"`
	NetProfitVariance *float64   `json:"net_profit_variance"`
	SalesVariance     *float64   `json:"sales_variance"`
}

// FillSaleProfit derives the profit fields of a sale from its price and
// deductions.
func FillSaleProfit(sale *models.Sale) {
	sale.GrossProfit = sale.SalePrice - sale.UnitCost
	opex := sale.Commission + sale.Tax + sale.DeliveryFee + sale.OtherFees
	sale.NetProfit = sale.GrossProfit - opex
}

// SaleNetMargin is the net margin of one sale in percent, zero for a free
// sale rather than a division by zero.
func SaleNetMargin(sale models.Sale) float64 {
	if sale.SalePrice <= 0 {
		return 0
	}
	return sale.NetProfit / sale.SalePrice * 100
}

// ComputeKPIs aggregates a slice of sales into period totals.
func ComputeKPIs(sales []models.Sale) PeriodKPIs {
	var kpis PeriodKPIs
	for _, sale := range sales {
		kpis.GrossRevenue += sale.SalePrice
		kpis.TotalSales++
		kpis.CMV += sale.UnitCost
		kpis.Opex += sale.Commission + sale.Tax + sale.DeliveryFee + sale.OtherFees
		kpis.NetProfit += sale.NetProfit
	}
	if kpis.GrossRevenue > 0 {
		kpis.NetMargin = kpis.NetProfit / kpis.GrossRevenue * 100
	}
	return kpis
}

// Variance is the period-over-period change in percent, nil when the
// previous value is zero.
func Variance(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	v := (current - previous) / previous * 100
	return &v
}

// MarginBucket classifies an estimated margin percentage for display.
func MarginBucket(marginPct float64) string {
	switch {
	case marginPct >= 30:
		return "good"
	case marginPct >= 15:
		return "fair"
	default:
		return "poor"
	}
}

// filterSalesByDate keeps sales whose sale date falls inside [from, to].
func filterSalesByDate(sales []models.Sale, from, to time.Time) []models.Sale {
	var filtered []models.Sale
	for _, sale := range sales {
		date, ok := utils.ParseDate(sale.SaleDate)
		if !ok {
			continue
		}
		if date.Before(from) || date.After(to) {
			continue
		}
		filtered = append(filtered, sale)
	}
	return filtered
}
