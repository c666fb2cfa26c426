package services

import (
	"InjetaClin/models"
	"math"
	"testing"
)

func TestFillSaleProfit(t *testing.T) {
	sale := models.Sale{
		SalePrice:   100,
		UnitCost:    40,
		Commission:  5,
		Tax:         10,
		DeliveryFee: 3,
		OtherFees:   2,
	}
	FillSaleProfit(&sale)
	if sale.GrossProfit != 60 {
		t.Errorf("gross profit = %.2f, want 60", sale.GrossProfit)
	}
	if sale.NetProfit != 40 {
		t.Errorf("net profit = %.2f, want 40", sale.NetProfit)
	}
}

func TestSaleNetMargin(t *testing.T) {
	sale := models.Sale{SalePrice: 100, NetProfit: 40}
	if got := SaleNetMargin(sale); got != 40 {
		t.Errorf("margin = %.2f, want 40", got)
	}
	if got := SaleNetMargin(models.Sale{SalePrice: 0, NetProfit: 40}); got != 0 {
		t.Errorf("margin on a free sale = %.2f, want 0", got)
	}
}

func TestComputeKPIs(t *testing.T) {
	sales := []models.Sale{
		{SalePrice: 100, UnitCost: 40, Commission: 5, Tax: 10, DeliveryFee: 3, OtherFees: 2, NetProfit: 40},
		{SalePrice: 200, UnitCost: 80, Commission: 10, Tax: 20, NetProfit: 90},
	}

	kpis := ComputeKPIs(sales)
	if kpis.GrossRevenue != 300 {
		t.Errorf("gross revenue = %.2f, want 300", kpis.GrossRevenue)
	}
	if kpis.TotalSales != 2 {
		t.Errorf("total sales = %d, want 2", kpis.TotalSales)
	}
	if kpis.CMV != 120 {
		t.Errorf("cmv = %.2f, want 120", kpis.CMV)
	}
	if kpis.Opex != 50 {
		t.Errorf("opex = %.2f, want 50", kpis.Opex)
	}
	if kpis.NetProfit != 130 {
		t.Errorf("net profit = %.2f, want 130", kpis.NetProfit)
	}
	if math.Abs(kpis.NetMargin-130.0/300.0*100) > 1e-9 {
		t.Errorf("net margin = %.4f", kpis.NetMargin)
	}
}

func TestComputeKPIsEmpty(t *testing.T) {
	kpis := ComputeKPIs(nil)
	if kpis.NetMargin != 0 || kpis.TotalSales != 0 {
		t.Errorf("empty period KPIs = %+v, want zeros", kpis)
	}
}

func TestVariance(t *testing.T) {
	if v := Variance(120, 100); v == nil || math.Abs(*v-20) > 1e-9 {
		t.Errorf("variance = %v, want 20", v)
	}
	if v := Variance(80, 100); v == nil || math.Abs(*v+20) > 1e-9 {
		t.Errorf("variance = %v, want -20", v)
	}
	if v := Variance(50, 0); v != nil {
		t.Errorf("variance against a zero baseline = %.2f, want nil", *v)
	}
}

func TestMarginBucket(t *testing.T) {
	tests := []struct {
		margin float64
		want   string
	}{
		{45, "good"},
		{30, "good"},
		{29.9, "fair"},
		{15, "fair"},
		{14.9, "poor"},
		{-10, "poor"},
	}
	for _, tt := range tests {
		if got := MarginBucket(tt.margin); got != tt.want {
			t.Errorf("MarginBucket(%.1f) = %s, want %s", tt.margin, got, tt.want)
		}
	}
}

func TestFilterSalesByDate(t *testing.T) {
	sales := []models.Sale{
		{ID: 1, SaleDate: "2024-02-29"},
		{ID: 2, SaleDate: "2024-03-01"},
		{ID: 3, SaleDate: "2024-03-31"},
		{ID: 4, SaleDate: "2024-04-01"},
		{ID: 5, SaleDate: "not-a-date"},
	}

	filtered := filterSalesByDate(sales, testDay(t, "2024-03-01"), testDay(t, "2024-03-31"))
	if len(filtered) != 2 {
		t.Fatalf("got %d sales in March, want 2", len(filtered))
	}
	if filtered[0].ID != 2 || filtered[1].ID != 3 {
		t.Errorf("filtered IDs = %d, %d, want 2 and 3 (range is inclusive)", filtered[0].ID, filtered[1].ID)
	}
}
