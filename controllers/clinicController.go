package controllers

import (
	"InjetaClin/handlers"

	"github.com/gin-gonic/gin"
)

func SetupClinicRoutes(router *gin.Engine, patientHandler *handlers.PatientHandler, diagnosisHandler *handlers.DiagnosisHandler, protocolHandler *handlers.ProtocolHandler, treatmentHandler *handlers.TreatmentHandler, doseHandler *handlers.DoseHandler, dashboardHandler *handlers.DashboardHandler, contactHandler *handlers.ContactHandler, inventoryHandler *handlers.InventoryHandler, purchaseHandler *handlers.PurchaseHandler, salesHandler *handlers.SalesHandler, documentHandler *handlers.DocumentHandler) {
	// Define the routes directly on the router
	router.POST("/patients", patientHandler.CreatePatient)
	router.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	router.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
	router.DELETE("/patients/:patient_id", patientHandler.DeletePatient)
	router.GET("/patients", patientHandler.GetAllPatients)

	router.POST("/diagnoses", diagnosisHandler.CreateDiagnosis)
	router.GET("/diagnoses", diagnosisHandler.GetAllDiagnoses)
	router.PUT("/diagnoses/:id", diagnosisHandler.UpdateDiagnosis)
	router.DELETE("/diagnoses/:id", diagnosisHandler.DeleteDiagnosis)

	router.POST("/protocols", protocolHandler.CreateProtocol)
	router.GET("/protocols/:id", protocolHandler.GetProtocolByID)
	router.PUT("/protocols/:id", protocolHandler.UpdateProtocol)
	router.DELETE("/protocols/:id", protocolHandler.DeleteProtocol)
	router.GET("/protocols", protocolHandler.GetAllProtocols)

	router.POST("/treatments", treatmentHandler.CreateTreatment)
	router.GET("/treatments/:id", treatmentHandler.GetTreatmentByID)
	router.PUT("/treatments/:id", treatmentHandler.UpdateTreatment)
	router.DELETE("/treatments/:id", treatmentHandler.DeleteTreatment)
	router.GET("/treatments", treatmentHandler.GetAllTreatments)
	router.GET("/treatments/:id/projection", treatmentHandler.GetTreatmentProjection)

	router.POST("/doses", doseHandler.CreateDose)
	router.GET("/doses/:id", doseHandler.GetDoseByID)
	router.PUT("/doses/:id", doseHandler.UpdateDose)
	router.DELETE("/doses/:id", doseHandler.DeleteDose)
	router.GET("/doses", doseHandler.GetAllDoses)

	router.GET("/dashboard/overdue", dashboardHandler.GetOverdue)
	router.GET("/dashboard/pending-surveys", dashboardHandler.GetPendingSurveys)
	router.GET("/dashboard/approaching-consults", dashboardHandler.GetApproachingConsults)
	router.GET("/dashboard/activity", dashboardHandler.GetActivity)
	router.GET("/dashboard/nps", dashboardHandler.GetNPS)

	router.GET("/contacts/upcoming", contactHandler.GetUpcomingContacts)
	router.POST("/contacts/:contact_id/dismiss", contactHandler.DismissContact)
	router.POST("/contacts/:contact_id/remind", contactHandler.RemindContact)
	router.PUT("/contacts/:contact_id/feedback", contactHandler.UpdateDismissedLog)
	router.GET("/dismissed-logs", contactHandler.GetDismissedLogs)
	router.GET("/patients/:patient_id/contacts/timeline", contactHandler.GetPatientTimeline)

	router.POST("/inventory", inventoryHandler.CreateInventoryItem)
	router.GET("/inventory/:id", inventoryHandler.GetInventoryItemByID)
	router.PUT("/inventory/:id", inventoryHandler.UpdateInventoryItem)
	router.DELETE("/inventory/:id", inventoryHandler.DeleteInventoryItem)
	router.GET("/inventory", inventoryHandler.GetAllInventoryItems)
	router.POST("/inventory/:id/dispense", inventoryHandler.DispenseInventoryItem)
	router.GET("/dispense-logs", inventoryHandler.GetDispenseLogs)
	router.GET("/medications", inventoryHandler.GetMedications)

	router.GET("/purchase-requests", purchaseHandler.GetAllPurchaseRequests)
	router.POST("/purchase-requests/predict", purchaseHandler.PredictPurchases)
	router.PUT("/purchase-requests/:id/status", purchaseHandler.UpdatePurchaseStatus)

	router.POST("/sales", salesHandler.CreateSale)
	router.GET("/sales/kpis", salesHandler.GetSalesKPIs)
	router.GET("/sales/:id", salesHandler.GetSaleByID)
	router.PUT("/sales/:id", salesHandler.UpdateSale)
	router.DELETE("/sales/:id", salesHandler.DeleteSale)
	router.GET("/sales", salesHandler.GetAllSales)

	router.POST("/patients/:patient_id/documents", documentHandler.UploadDocument)
	router.GET("/patients/:patient_id/documents", documentHandler.GetPatientDocuments)
	router.GET("/patients/:patient_id/documents/:document_id", documentHandler.DownloadDocument)
	router.DELETE("/patients/:patient_id/documents/:document_id", documentHandler.DeleteDocument)
}
