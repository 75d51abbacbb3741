package repository

import (
	"github.com/citizenconnect/complaints-api/internal/domain/category"
	"gorm.io/gorm"
)

type CategoryRepo interface {
	ListTopLevel() ([]category.Category, error)
	ListSubcategories(parentID uint) ([]category.Category, error)
	GetByCode(code string) (category.Category, error)
	Create(c *category.Category) error
	WithTx(tx *gorm.DB) CategoryRepo
}

type DBCategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *DBCategoryRepo {
	return &DBCategoryRepo{
		db: db,
	}
}

func (r *DBCategoryRepo) ListTopLevel() ([]category.Category, error) {
	var categories []category.Category
	err := r.db.Where("parent_id IS NULL").Order("name").Find(&categories).Error
	return categories, err
}

func (r *DBCategoryRepo) ListSubcategories(parentID uint) ([]category.Category, error) {
	var subcategories []category.Category
	err := r.db.Where("parent_id = ?", parentID).Order("name").Find(&subcategories).Error
	return subcategories, err
}

func (r *DBCategoryRepo) GetByCode(code string) (category.Category, error) {
	var c category.Category
	err := r.db.Where("code = ?", code).First(&c).Error
	return c, err
}

func (r *DBCategoryRepo) Create(c *category.Category) error {
	return r.db.Create(c).Error
}

func (r *DBCategoryRepo) WithTx(tx *gorm.DB) CategoryRepo {
	if tx == nil {
		return r
	}
	return &DBCategoryRepo{
		db: tx,
	}
}
