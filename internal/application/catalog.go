package application

import (
	"log"

	"github.com/citizenconnect/complaints-api/internal/domain/category"
	"github.com/citizenconnect/complaints-api/internal/domain/institution"
	"github.com/citizenconnect/complaints-api/internal/repository"
)

// CatalogService serves the reference data behind the submission form. Both
// lookups degrade to an empty slice on datastore failure so the form renders
// regardless; callers must treat empty as "unavailable", not "none exist".
type CatalogService struct {
	Repos *repository.Repos
}

func NewCatalogService(repos *repository.Repos) *CatalogService {
	return &CatalogService{
		Repos: repos,
	}
}

func (s *CatalogService) ListCategories() []category.WithSubcategories {
	topLevel, err := s.Repos.Category.ListTopLevel()
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		return []category.WithSubcategories{}
	}

	result := make([]category.WithSubcategories, 0, len(topLevel))
	for _, c := range topLevel {
		subs, err := s.Repos.Category.ListSubcategories(c.ID)
		if err != nil {
			log.Printf("Error fetching subcategories for category %d: %v", c.ID, err)
			return []category.WithSubcategories{}
		}
		result = append(result, category.WithSubcategories{
			ID:            c.ID,
			Name:          c.Name,
			Code:          c.Code,
			Description:   c.Description,
			Subcategories: subs,
		})
	}
	return result
}

func (s *CatalogService) ListInstitutions() []institution.Institution {
	institutions, err := s.Repos.Institution.ListAll()
	if err != nil {
		log.Printf("Error fetching institutions: %v", err)
		return []institution.Institution{}
	}
	return institutions
}
