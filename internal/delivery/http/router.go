package http

import (
	"net/http"

	"hms-backend/internal/delivery/http/handler"
	"hms-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	appointmentHandler  *handler.AppointmentHandler
	consultationHandler *handler.ConsultationHandler
	labHandler          *handler.LabHandler
	billingHandler      *handler.BillingHandler
	inventoryHandler    *handler.InventoryHandler
	admissionHandler    *handler.AdmissionHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	appointmentHandler *handler.AppointmentHandler,
	consultationHandler *handler.ConsultationHandler,
	labHandler *handler.LabHandler,
	billingHandler *handler.BillingHandler,
	inventoryHandler *handler.InventoryHandler,
	admissionHandler *handler.AdmissionHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		userHandler:         userHandler,
		appointmentHandler:  appointmentHandler,
		consultationHandler: consultationHandler,
		labHandler:          labHandler,
		billingHandler:      billingHandler,
		inventoryHandler:    inventoryHandler,
		admissionHandler:    admissionHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public doctor directory
	api.HandleFunc("/doctors", r.userHandler.ListDoctors).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/otp/request", r.authHandler.RequestOtp).Methods(http.MethodPost)
	auth.HandleFunc("/otp/verify", r.authHandler.VerifyOtp).Methods(http.MethodPost)
	auth.HandleFunc("/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login/{portal}", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users", r.userHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)
	admin.HandleFunc("/doctors", r.userHandler.ListDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/reports/financial", r.billingHandler.FinancialReport).Methods(http.MethodGet)
	admin.HandleFunc("/inventory/low-stock", r.inventoryHandler.ListLowStock).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.userHandler.ListAuditLogs).Methods(http.MethodGet)

	// Staff routes (protected - front desk)
	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("/patients", r.userHandler.RegisterPatientByStaff).Methods(http.MethodPost)
	staff.HandleFunc("/patients/lookup", r.userHandler.FindPatient).Methods(http.MethodGet)
	staff.HandleFunc("/appointments", r.appointmentHandler.BookByStaff).Methods(http.MethodPost)
	staff.HandleFunc("/appointments", r.appointmentHandler.ListByDate).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelByStaff).Methods(http.MethodPut)
	staff.HandleFunc("/admissions", r.admissionHandler.Admit).Methods(http.MethodPost)
	staff.HandleFunc("/admissions/{id}", r.admissionHandler.GetAdmission).Methods(http.MethodGet)
	staff.HandleFunc("/admissions/{id}/discharge", r.billingHandler.CreateIPDInvoice).Methods(http.MethodPut)
	staff.HandleFunc("/patients/{id}/admissions", r.admissionHandler.ListByPatient).Methods(http.MethodGet)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/appointments", r.appointmentHandler.ListForDoctor).Methods(http.MethodGet)
	doctor.HandleFunc("/consultations/{id}", r.consultationHandler.SaveConsultation).Methods(http.MethodPut)
	doctor.HandleFunc("/consultations/{id}", r.consultationHandler.GetPrescription).Methods(http.MethodGet)
	doctor.HandleFunc("/lab-requests", r.labHandler.CreateRequest).Methods(http.MethodPost)

	// Lab routes (protected - lab only)
	lab := api.PathPrefix("/lab").Subrouter()
	lab.Use(r.authMiddleware.Authenticate)
	lab.Use(middleware.RequireLab)
	lab.HandleFunc("/requests", r.labHandler.ListRequests).Methods(http.MethodGet)
	lab.HandleFunc("/requests/{id}/complete", r.labHandler.CompleteRequest).Methods(http.MethodPut)

	// Pharmacy routes (protected - pharmacy only)
	pharmacy := api.PathPrefix("/pharmacy").Subrouter()
	pharmacy.Use(r.authMiddleware.Authenticate)
	pharmacy.Use(middleware.RequirePharmacy)
	pharmacy.HandleFunc("/inventory", r.inventoryHandler.AddMedicine).Methods(http.MethodPost)
	pharmacy.HandleFunc("/inventory", r.inventoryHandler.List).Methods(http.MethodGet)
	pharmacy.HandleFunc("/inventory/low-stock", r.inventoryHandler.ListLowStock).Methods(http.MethodGet)
	pharmacy.HandleFunc("/inventory/{id}/stock", r.inventoryHandler.UpdateStock).Methods(http.MethodPut)
	pharmacy.HandleFunc("/inventory/{id}", r.inventoryHandler.DeleteMedicine).Methods(http.MethodDelete)
	pharmacy.HandleFunc("/notifications", r.inventoryHandler.ListNotifications).Methods(http.MethodGet)
	pharmacy.HandleFunc("/notifications/{id}/read", r.inventoryHandler.MarkNotificationRead).Methods(http.MethodPut)
	pharmacy.HandleFunc("/appointments/{id}/prescription", r.consultationHandler.GetPrescription).Methods(http.MethodGet)

	// Billing routes (protected - admin and staff)
	billing := api.PathPrefix("/billing").Subrouter()
	billing.Use(r.authMiddleware.Authenticate)
	billing.Use(middleware.RequireBilling)
	billing.HandleFunc("/opd", r.billingHandler.CreateOPDInvoice).Methods(http.MethodPost)
	billing.HandleFunc("/ipd/{id}", r.billingHandler.CreateIPDInvoice).Methods(http.MethodPost)
	billing.HandleFunc("/invoices", r.billingHandler.ListPatientInvoices).Methods(http.MethodGet)
	billing.HandleFunc("/invoices/{id}", r.billingHandler.GetInvoice).Methods(http.MethodGet)
	billing.HandleFunc("/ledger", r.billingHandler.ListLedger).Methods(http.MethodGet)
	billing.HandleFunc("/expenses", r.billingHandler.CreateExpense).Methods(http.MethodPost)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/appointments", r.appointmentHandler.BookSelf).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.appointmentHandler.ListMine).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelSelf).Methods(http.MethodPut)
	patient.HandleFunc("/prescriptions", r.consultationHandler.ListMyPrescriptions).Methods(http.MethodGet)
	patient.HandleFunc("/invoices", r.billingHandler.ListMyInvoices).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
