package application

import (
	"github.com/citizenconnect/complaints-api/internal/domain/view"
	"github.com/citizenconnect/complaints-api/internal/repository"
	"gorm.io/gorm"
)

// SchemaService backs the admin database inspector: live column and table
// listings straight from information_schema.
type SchemaService struct {
	db *gorm.DB
}

func NewSchemaService(repos *repository.Repos) *SchemaService {
	return &SchemaService{db: repos.DB()}
}

func (s *SchemaService) ListTables() ([]string, error) {
	var tables []string
	err := s.db.Raw(`
        SELECT table_name
        FROM information_schema.tables
        WHERE table_schema = 'public'
        ORDER BY table_name
    `).Scan(&tables).Error
	return tables, err
}

func (s *SchemaService) InspectTable(tableName string) ([]view.TableColumn, error) {
	var columns []view.TableColumn
	err := s.db.Raw(`
        SELECT column_name, data_type, is_nullable, column_default
        FROM information_schema.columns
        WHERE table_name = ?
        ORDER BY ordinal_position
    `, tableName).Scan(&columns).Error
	return columns, err
}
