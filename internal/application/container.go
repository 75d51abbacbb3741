package application

import (
	"github.com/citizenconnect/complaints-api/internal/objectstore"
	"github.com/citizenconnect/complaints-api/internal/repository"
	"github.com/redis/go-redis/v9"
)

type Services struct {
	Catalog   *CatalogService
	Complaint *ComplaintService
	Dashboard *DashboardService
	User      *UserService
	Schema    *SchemaService
	Audit     *AuditService
}

func New(repos *repository.Repos, store *objectstore.Store, cache *redis.Client) *Services {
	return &Services{
		Catalog:   NewCatalogService(repos),
		Complaint: NewComplaintService(repos, store),
		Dashboard: NewDashboardService(repos, cache),
		User:      NewUserService(repos),
		Schema:    NewSchemaService(repos),
		Audit:     NewAuditService(repos),
	}
}
