package services

import (
	"InjetaClin/models"
	"InjetaClin/repositories"
	"InjetaClin/utils"
	"context"
	"time"
)

// SalesService persists sales with derived profit fields and computes the
// period KPI reports for the cash register views.
type SalesService struct {
	sales *repositories.SaleRepository
}

func NewSalesService(sales *repositories.SaleRepository) *SalesService {
	return &SalesService{sales: sales}
}

func (s *SalesService) Create(ctx context.Context, sale *models.Sale) error {
	FillSaleProfit(sale)
	return s.sales.Create(ctx, sale)
}

func (s *SalesService) GetByID(ctx context.Context, id uint) (*models.Sale, error) {
	return s.sales.GetByID(ctx, id)
}

func (s *SalesService) GetAll(ctx context.Context) ([]models.Sale, error) {
	return s.sales.GetAll(ctx)
}

func (s *SalesService) Update(ctx context.Context, sale *models.Sale) error {
	FillSaleProfit(sale)
	return s.sales.Update(ctx, sale)
}

func (s *SalesService) Delete(ctx context.Context, id uint) error {
	return s.sales.Delete(ctx, id)
}

// KPIs reports the totals for [from, to] and the variance against the
// preceding period of the same length.
func (s *SalesService) KPIs(ctx context.Context, from, to time.Time) (KPIReport, error) {
	sales, err := s.sales.GetAll(ctx)
	if err != nil {
		return KPIReport{}, err
	}

	periodDays := utils.DiffInDays(to, from) + 1
	previousTo := utils.AddDays(from, -1)
	previousFrom := utils.AddDays(previousTo, -(periodDays - 1))

	current := ComputeKPIs(filterSalesByDate(sales, from, to))
	previous := ComputeKPIs(filterSalesByDate(sales, previousFrom, previousTo))

	return KPIReport{
		Current:           current,
		Previous:          previous,
		RevenueVariance:   Variance(current.GrossRevenue, previous.GrossRevenue),
		NetProfitVariance: Variance(current.NetProfit, previous.NetProfit),
		SalesVariance:     Variance(float64(current.TotalSales), float64(previous.TotalSales)),
	}, nil
}
