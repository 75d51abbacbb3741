package repository

import (
	"github.com/citizenconnect/complaints-api/internal/domain/institution"
	"gorm.io/gorm"
)

type InstitutionRepo interface {
	ListAll() ([]institution.Institution, error)
	FindForDistrict(district string) (institution.Institution, error)
	GetByCode(code string) (institution.Institution, error)
	Create(i *institution.Institution) error
	WithTx(tx *gorm.DB) InstitutionRepo
}

type DBInstitutionRepo struct {
	db *gorm.DB
}

func NewInstitutionRepo(db *gorm.DB) *DBInstitutionRepo {
	return &DBInstitutionRepo{
		db: db,
	}
}

func (r *DBInstitutionRepo) ListAll() ([]institution.Institution, error) {
	var institutions []institution.Institution
	err := r.db.Order("name").Find(&institutions).Error
	return institutions, err
}

// FindForDistrict selects the routing target: an exact district match wins,
// otherwise the null-district catch-all. gorm.ErrRecordNotFound means the
// complaint stays unassigned.
func (r *DBInstitutionRepo) FindForDistrict(district string) (institution.Institution, error) {
	var inst institution.Institution
	err := r.db.
		Where("district = ? OR district IS NULL", district).
		Order("district NULLS LAST").
		First(&inst).Error
	return inst, err
}

func (r *DBInstitutionRepo) GetByCode(code string) (institution.Institution, error) {
	var inst institution.Institution
	err := r.db.Where("code = ?", code).First(&inst).Error
	return inst, err
}

func (r *DBInstitutionRepo) Create(i *institution.Institution) error {
	return r.db.Create(i).Error
}

func (r *DBInstitutionRepo) WithTx(tx *gorm.DB) InstitutionRepo {
	if tx == nil {
		return r
	}
	return &DBInstitutionRepo{
		db: tx,
	}
}
