package models

import (
	"time"

	"gorm.io/gorm"
)

// Treatment lifecycle statuses.
const (
	TreatmentOngoing   = "ONGOING"
	TreatmentFinished  = "FINISHED"
	TreatmentRefused   = "REFUSED"
	TreatmentSuspended = "SUSPENDED"
	TreatmentExternal  = "EXTERNAL"
)

// Dose application statuses.
const (
	DosePending     = "PENDING"
	DoseApplied     = "APPLIED"
	DoseNotAccepted = "NOT_ACCEPTED"
)

// Dose payment statuses. An empty string means payment does not apply.
const (
	PaymentWaitingPix      = "WAITING_PIX"
	PaymentWaitingCard     = "WAITING_CARD"
	PaymentWaitingBoleto   = "WAITING_BOLETO"
	PaymentWaitingDelivery = "WAITING_DELIVERY"
	PaymentPaid            = "PAID"
)

// Survey lifecycle statuses.
const (
	SurveyNotSent  = "NOT_SENT"
	SurveyWaiting  = "WAITING"
	SurveySent     = "SENT"
	SurveyAnswered = "ANSWERED"
)

// Protocol categories.
const (
	CategoryMedication = "MEDICATION"
	CategoryMonitoring = "MONITORING"
)

// Diagnosis registry entry. Patient.MainDiagnosis is matched against Name.
type Diagnosis struct {
	ID              uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name            string `gorm:"column:name;unique;not null" json:"name"`
	Color           string `gorm:"column:color;not null" json:"color"`
	RequiresConsent bool   `gorm:"column:requires_consent;not null" json:"requires_consent"`
}

func (Diagnosis) TableName() string {
	return "diagnosis"
}

// SeedDiagnoses inserts the initial diagnosis registry.
func SeedDiagnoses(db *gorm.DB) error {
	initial := []Diagnosis{
		{Name: "Central Precocious Puberty", Color: "#7c3aed", RequiresConsent: true},
		{Name: "Growth Hormone Deficiency", Color: "#2563eb", RequiresConsent: false},
		{Name: "Endometriosis", Color: "#db2777", RequiresConsent: false},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, diagnosis := range initial {
			if err := tx.FirstOrCreate(&diagnosis, Diagnosis{Name: diagnosis.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Patient model
type Patient struct {
	ID            string      `gorm:"primaryKey;column:id" json:"id"`
	FirstName     string      `gorm:"column:first_name;not null" json:"first_name"`
	LastName      string      `gorm:"column:last_name;not null;index" json:"last_name"`
	DateOfBirth   string      `gorm:"column:date_of_birth;not null" json:"date_of_birth"`
	Gender        string      `gorm:"column:gender;check:gender IN ('Male', 'Female', 'Other');not null" json:"gender"`
	MainDiagnosis string      `gorm:"column:main_diagnosis" json:"main_diagnosis"`
	Active        bool        `gorm:"column:active;not null" json:"active"`
	GuardianName  string      `gorm:"column:guardian_name" json:"guardian_name"`
	GuardianPhone string      `gorm:"column:guardian_phone" json:"guardian_phone"`
	GuardianEmail string      `gorm:"column:guardian_email" json:"guardian_email"`
	Address       string      `gorm:"column:address" json:"address"`
	CreatedAt     time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Treatments    []Treatment `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Documents     []Document  `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// Protocol model. Milestones are day offsets from treatment start used by the
// nursing contact workflow.
type Protocol struct {
	ID            string              `gorm:"primaryKey;column:id" json:"id"`
	Name          string              `gorm:"column:name;unique;not null" json:"name"`
	Category      string              `gorm:"column:category;check:category IN ('MEDICATION', 'MONITORING');not null" json:"category"`
	Medication    string              `gorm:"column:medication" json:"medication"`
	FrequencyDays int                 `gorm:"column:frequency_days;not null" json:"frequency_days"`
	Goal          string              `gorm:"column:goal" json:"goal"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Milestones    []ProtocolMilestone `gorm:"foreignKey:ProtocolID;references:ID" json:"milestones"`
}

func (Protocol) TableName() string {
	return "protocol"
}

// ProtocolMilestone model
type ProtocolMilestone struct {
	ID         uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProtocolID string `gorm:"column:protocol_id;not null;index" json:"protocol_id"`
	Day        int    `gorm:"column:day;not null" json:"day"`
	Message    string `gorm:"column:message;not null" json:"message"`
}

func (ProtocolMilestone) TableName() string {
	return "protocol_milestone"
}

// SeedProtocols inserts the starter injection protocols.
func SeedProtocols(db *gorm.DB) error {
	initial := []Protocol{
		{
			ID:            "proto-leuprorelin-28",
			Name:          "Leuprorelin 3.75mg monthly",
			Category:      CategoryMedication,
			Medication:    "Leuprorelin 3.75mg",
			FrequencyDays: 28,
			Goal:          "Pubertal suppression",
			Milestones: []ProtocolMilestone{
				{Day: 3, Message: "Check for injection site reaction"},
				{Day: 14, Message: "Confirm next application is scheduled"},
			},
		},
		{
			ID:            "proto-followup-90",
			Name:          "Quarterly monitoring",
			Category:      CategoryMonitoring,
			Medication:    "",
			FrequencyDays: 90,
			Goal:          "Clinical follow-up without medication",
			Milestones: []ProtocolMilestone{
				{Day: 30, Message: "Ask about symptoms since last consult"},
			},
		},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, protocol := range initial {
			if err := tx.FirstOrCreate(&protocol, Protocol{ID: protocol.ID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Treatment model links a patient to a protocol.
type Treatment struct {
	ID               string    `gorm:"primaryKey;column:id" json:"id"`
	PatientID        string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	ProtocolID       string    `gorm:"column:protocol_id;not null;index" json:"protocol_id"`
	Status           string    `gorm:"column:status;check:status IN ('ONGOING', 'FINISHED', 'REFUSED', 'SUSPENDED', 'EXTERNAL');not null" json:"status"`
	StartDate        string    `gorm:"column:start_date;not null" json:"start_date"`
	PlannedDoses     int       `gorm:"column:planned_doses" json:"planned_doses"`
	NextConsultation string    `gorm:"column:next_consultation" json:"next_consultation"`
	Observations     string    `gorm:"column:observations" json:"observations"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient          Patient   `gorm:"foreignKey:PatientID;references:ID" json:"patient"`
	Protocol         Protocol  `gorm:"foreignKey:ProtocolID;references:ID" json:"protocol"`
}

func (Treatment) TableName() string {
	return "treatment"
}

// Dose model. SurveyScore is nil until the satisfaction survey is answered.
type Dose struct {
	ID                uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	TreatmentID       string    `gorm:"column:treatment_id;not null;index" json:"treatment_id"`
	CycleNumber       int       `gorm:"column:cycle_number;not null" json:"cycle_number"`
	ApplicationDate   string    `gorm:"column:application_date;not null;index" json:"application_date"`
	LotNumber         string    `gorm:"column:lot_number" json:"lot_number"`
	Status            string    `gorm:"column:status;check:status IN ('PENDING', 'APPLIED', 'NOT_ACCEPTED');not null" json:"status"`
	PaymentStatus     string    `gorm:"column:payment_status" json:"payment_status"`
	DeliveryStatus    string    `gorm:"column:delivery_status" json:"delivery_status"`
	LastBeforeConsult bool      `gorm:"column:last_before_consult" json:"last_before_consult"`
	ConsultationDate  string    `gorm:"column:consultation_date" json:"consultation_date"`
	NurseVisit        bool      `gorm:"column:nurse_visit" json:"nurse_visit"`
	SurveyStatus      string    `gorm:"column:survey_status;default:NOT_SENT" json:"survey_status"`
	SurveyScore       *int      `gorm:"column:survey_score" json:"survey_score"`
	SurveyComment     string    `gorm:"column:survey_comment" json:"survey_comment"`
	InventoryItemID   *uint     `gorm:"column:inventory_item_id;index" json:"inventory_item_id"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Treatment         Treatment `gorm:"foreignKey:TreatmentID;references:ID" json:"-"`
}

func (Dose) TableName() string {
	return "dose"
}
