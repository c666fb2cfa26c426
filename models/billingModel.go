package models

import "time"

// Sale model. One sale per dose; GrossProfit and NetProfit are derived from
// the price and deduction fields before persisting.
type Sale struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	DoseID        uint      `gorm:"column:dose_id;not null;uniqueIndex" json:"dose_id"`
	Medication    string    `gorm:"column:medication" json:"medication"`
	SalePrice     float64   `gorm:"column:sale_price;not null" json:"sale_price"`
	UnitCost      float64   `gorm:"column:unit_cost" json:"unit_cost"`
	Commission    float64   `gorm:"column:commission" json:"commission"`
	Tax           float64   `gorm:"column:tax" json:"tax"`
	DeliveryFee   float64   `gorm:"column:delivery_fee" json:"delivery_fee"`
	OtherFees     float64   `gorm:"column:other_fees" json:"other_fees"`
	GrossProfit   float64   `gorm:"column:gross_profit" json:"gross_profit"`
	NetProfit     float64   `gorm:"column:net_profit" json:"net_profit"`
	PaymentMethod string    `gorm:"column:payment_method" json:"payment_method"`
	SaleDate      string    `gorm:"column:sale_date;not null;index" json:"sale_date"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Sale) TableName() string {
	return "sale"
}
