package utils

import (
	"InjetaClin/models"
	"log"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ValidatePatientData validates patient data using ozzo-validation.
func ValidatePatientData(patient models.Patient) error {
	err := validation.ValidateStruct(&patient,
		validation.Field(&patient.ID, validation.Required),
		validation.Field(&patient.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&patient.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&patient.DateOfBirth, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&patient.Gender, validation.Required, validation.In("Male", "Female", "Other")),
		validation.Field(&patient.GuardianEmail, is.Email),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateProtocolData validates protocol data using ozzo-validation.
func ValidateProtocolData(protocol models.Protocol) error {
	err := validation.ValidateStruct(&protocol,
		validation.Field(&protocol.ID, validation.Required),
		validation.Field(&protocol.Name, validation.Required, validation.Length(1, 150)),
		validation.Field(&protocol.Category, validation.Required, validation.In(models.CategoryMedication, models.CategoryMonitoring)),
		validation.Field(&protocol.FrequencyDays, validation.Required, validation.Min(1)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateTreatmentData validates treatment data using ozzo-validation.
func ValidateTreatmentData(treatment models.Treatment) error {
	err := validation.ValidateStruct(&treatment,
		validation.Field(&treatment.ID, validation.Required),
		validation.Field(&treatment.PatientID, validation.Required),
		validation.Field(&treatment.ProtocolID, validation.Required),
		validation.Field(&treatment.Status, validation.Required, validation.In(
			models.TreatmentOngoing, models.TreatmentFinished, models.TreatmentRefused,
			models.TreatmentSuspended, models.TreatmentExternal)),
		validation.Field(&treatment.StartDate, validation.Required, validation.Date("2006-01-02")),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateDoseData validates dose data using ozzo-validation.
func ValidateDoseData(dose models.Dose) error {
	err := validation.ValidateStruct(&dose,
		validation.Field(&dose.TreatmentID, validation.Required),
		validation.Field(&dose.CycleNumber, validation.Required, validation.Min(1)),
		validation.Field(&dose.ApplicationDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&dose.Status, validation.Required, validation.In(
			models.DosePending, models.DoseApplied, models.DoseNotAccepted)),
		validation.Field(&dose.PaymentStatus, validation.In(
			models.PaymentWaitingPix, models.PaymentWaitingCard, models.PaymentWaitingBoleto,
			models.PaymentWaitingDelivery, models.PaymentPaid)),
		validation.Field(&dose.SurveyScore, validation.Min(0), validation.Max(10)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateInventoryItemData validates an inventory lot using ozzo-validation.
func ValidateInventoryItemData(item models.InventoryItem) error {
	err := validation.ValidateStruct(&item,
		validation.Field(&item.Medication, validation.Required, validation.Length(1, 150)),
		validation.Field(&item.LotNumber, validation.Required),
		validation.Field(&item.ExpiryDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&item.Quantity, validation.Min(0)),
		validation.Field(&item.UnitCost, validation.Min(0.0)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateSaleData validates sale data using ozzo-validation.
func ValidateSaleData(sale models.Sale) error {
	err := validation.ValidateStruct(&sale,
		validation.Field(&sale.DoseID, validation.Required),
		validation.Field(&sale.SalePrice, validation.Min(0.0)),
		validation.Field(&sale.SaleDate, validation.Required, validation.Date("2006-01-02")),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}
