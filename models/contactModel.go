package models

import "time"

// DismissedLog marks a contact-milestone event as handled. ContactID is the
// idempotency key, formatted as "<treatmentID>_m_<day>".
type DismissedLog struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ContactID            string    `gorm:"column:contact_id;not null;uniqueIndex" json:"contact_id"`
	TreatmentID          string    `gorm:"column:treatment_id;not null;index" json:"treatment_id"`
	MilestoneDay         int       `gorm:"column:milestone_day;not null" json:"milestone_day"`
	Feedback             string    `gorm:"column:feedback" json:"feedback"`
	Classification       string    `gorm:"column:classification" json:"classification"`
	Urgency              string    `gorm:"column:urgency" json:"urgency"`
	NeedsMedicalResponse bool      `gorm:"column:needs_medical_response" json:"needs_medical_response"`
	Resolved             bool      `gorm:"column:resolved" json:"resolved"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DismissedLog) TableName() string {
	return "dismissed_log"
}

// Document is an uploaded consent file. Content is stored inline; the upload
// handler enforces the type allow-list and size cap before it gets here.
type Document struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID   string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	FileName    string    `gorm:"column:file_name;not null" json:"file_name"`
	ContentType string    `gorm:"column:content_type;not null" json:"content_type"`
	Size        int64     `gorm:"column:size;not null" json:"size"`
	Content     []byte    `gorm:"column:content" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Document) TableName() string {
	return "document"
}
