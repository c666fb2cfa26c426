package utils

import "InjetaClin/models"

// TreatmentStatusColor maps a treatment status to its display color name.
func TreatmentStatusColor(status string) string {
	switch status {
	case models.TreatmentOngoing:
		return "green"
	case models.TreatmentFinished:
		return "blue"
	case models.TreatmentSuspended:
		return "yellow"
	case models.TreatmentRefused:
		return "red"
	case models.TreatmentExternal:
		return "gray"
	default:
		return "gray"
	}
}

// DoseStatusColor maps a dose status to its display color name.
func DoseStatusColor(status string) string {
	switch status {
	case models.DoseApplied:
		return "green"
	case models.DosePending:
		return "yellow"
	case models.DoseNotAccepted:
		return "red"
	default:
		return "gray"
	}
}

// PaymentStatusColor maps a payment status to its display color name.
func PaymentStatusColor(status string) string {
	switch status {
	case models.PaymentPaid:
		return "green"
	case models.PaymentWaitingDelivery:
		return "blue"
	case "":
		return "gray"
	default:
		return "yellow"
	}
}
