package models

import "time"

// Purchase request statuses. Transitions only move forward.
const (
	PurchasePending  = "PENDING"
	PurchaseOrdered  = "ORDERED"
	PurchaseReceived = "RECEIVED"
)

// InventoryItem is a single medication lot.
type InventoryItem struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Medication  string    `gorm:"column:medication;not null;index" json:"medication"`
	LotNumber   string    `gorm:"column:lot_number;not null;uniqueIndex:idx_medication_lot" json:"lot_number"`
	ExpiryDate  string    `gorm:"column:expiry_date;not null" json:"expiry_date"`
	Quantity    int       `gorm:"column:quantity;not null" json:"quantity"`
	Unit        string    `gorm:"column:unit" json:"unit"`
	EntryDate   string    `gorm:"column:entry_date" json:"entry_date"`
	Active      bool      `gorm:"column:active;not null" json:"active"`
	UnitCost    float64   `gorm:"column:unit_cost" json:"unit_cost"`
	BasePrice   float64   `gorm:"column:base_price" json:"base_price"`
	Commission  float64   `gorm:"column:commission" json:"commission"`
	Tax         float64   `gorm:"column:tax" json:"tax"`
	DeliveryFee float64   `gorm:"column:delivery_fee" json:"delivery_fee"`
	OtherFees   float64   `gorm:"column:other_fees" json:"other_fees"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (InventoryItem) TableName() string {
	return "inventory_item"
}

// DispenseLog records one unit consumed from a lot.
type DispenseLog struct {
	ID              uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Medication      string    `gorm:"column:medication;not null;index" json:"medication"`
	LotNumber       string    `gorm:"column:lot_number;not null" json:"lot_number"`
	InventoryItemID uint      `gorm:"column:inventory_item_id;not null;index" json:"inventory_item_id"`
	PatientID       string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoseID          *uint     `gorm:"column:dose_id" json:"dose_id"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DispenseLog) TableName() string {
	return "dispense_log"
}

// PurchaseRequest is an auto-generated reorder suggestion for a medication.
type PurchaseRequest struct {
	ID                uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Medication        string    `gorm:"column:medication;not null;index" json:"medication"`
	PredictedDemand   int       `gorm:"column:predicted_demand;not null" json:"predicted_demand"`
	StockSnapshot     int       `gorm:"column:stock_snapshot;not null" json:"stock_snapshot"`
	SuggestedQuantity int       `gorm:"column:suggested_quantity;not null" json:"suggested_quantity"`
	Status            string    `gorm:"column:status;check:status IN ('PENDING', 'ORDERED', 'RECEIVED');not null" json:"status"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PurchaseRequest) TableName() string {
	return "purchase_request"
}
