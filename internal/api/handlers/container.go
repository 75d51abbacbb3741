package handlers

import (
	"github.com/citizenconnect/complaints-api/internal/application"
)

type Handlers struct {
	Auth      *AuthHandler
	Catalog   *CatalogHandler
	Complaint *ComplaintHandler
	Dashboard *DashboardHandler
	Schema    *SchemaHandler
	Audit     *AuditHandler
}

func New(services *application.Services) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(services.User),
		Catalog:   NewCatalogHandler(services.Catalog),
		Complaint: NewComplaintHandler(services.Complaint),
		Dashboard: NewDashboardHandler(services.Dashboard),
		Schema:    NewSchemaHandler(services.Schema),
		Audit:     NewAuditHandler(services.Audit),
	}
}
