package repository

import (
	"github.com/citizenconnect/complaints-api/internal/domain/complaint"
	"github.com/citizenconnect/complaints-api/internal/domain/view"
	"gorm.io/gorm"
)

// StatsRepo serves the dashboard aggregates. Every method takes an optional
// institution scope; nil means global.
type StatsRepo interface {
	CountComplaints(institutionID *uint) (int64, error)
	CountByStatus(institutionID *uint) ([]view.StatusCount, error)
	CountByCategory(institutionID *uint, limit int) ([]view.CategoryCount, error)
	CountByProvince(institutionID *uint) ([]view.ProvinceCount, error)
	RecentComplaints(institutionID *uint, limit int) ([]view.RecentComplaint, error)
	AvgResolutionDays(institutionID *uint) (float64, error)
	WithTx(tx *gorm.DB) StatsRepo
}

type DBStatsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) *DBStatsRepo {
	return &DBStatsRepo{
		db: db,
	}
}

func scoped(q *gorm.DB, column string, institutionID *uint) *gorm.DB {
	if institutionID != nil {
		return q.Where(column+" = ?", *institutionID)
	}
	return q
}

func (r *DBStatsRepo) CountComplaints(institutionID *uint) (int64, error) {
	var total int64
	q := r.db.Model(&complaint.Complaint{})
	err := scoped(q, "institution_id", institutionID).Count(&total).Error
	return total, err
}

func (r *DBStatsRepo) CountByStatus(institutionID *uint) ([]view.StatusCount, error) {
	var counts []view.StatusCount
	q := r.db.Model(&complaint.Complaint{}).
		Select("status, COUNT(*) AS count").
		Group("status")
	err := scoped(q, "institution_id", institutionID).Scan(&counts).Error
	return counts, err
}

func (r *DBStatsRepo) CountByCategory(institutionID *uint, limit int) ([]view.CategoryCount, error) {
	var counts []view.CategoryCount
	q := r.db.Table("complaints comp").
		Select("c.name AS category, COUNT(*) AS count").
		Joins("JOIN categories c ON comp.category_id = c.id").
		Group("c.name").
		Order("count DESC").
		Limit(limit)
	err := scoped(q, "comp.institution_id", institutionID).Scan(&counts).Error
	return counts, err
}

func (r *DBStatsRepo) CountByProvince(institutionID *uint) ([]view.ProvinceCount, error) {
	var counts []view.ProvinceCount
	q := r.db.Model(&complaint.Complaint{}).
		Select("province, COUNT(*) AS count").
		Group("province").
		Order("count DESC")
	err := scoped(q, "institution_id", institutionID).Scan(&counts).Error
	return counts, err
}

func (r *DBStatsRepo) RecentComplaints(institutionID *uint, limit int) ([]view.RecentComplaint, error) {
	var recent []view.RecentComplaint
	q := r.db.Table("complaints comp").
		Select("comp.id, comp.tracking_id, comp.title, comp.status, comp.priority, comp.created_at, c.name AS category_name").
		Joins("LEFT JOIN categories c ON comp.category_id = c.id").
		Order("comp.created_at DESC").
		Limit(limit)
	err := scoped(q, "comp.institution_id", institutionID).Scan(&recent).Error
	return recent, err
}

// AvgResolutionDays averages, over complaints currently resolved, the days
// between creation and the earliest resolved update. Resolved complaints with
// no resolved update contribute a NULL which AVG skips, so malformed rows are
// excluded rather than counted as zero.
func (r *DBStatsRepo) AvgResolutionDays(institutionID *uint) (float64, error) {
	var avg *float64
	q := r.db.Table("complaints comp").
		Select(`AVG(EXTRACT(EPOCH FROM (
            (SELECT MIN(created_at) FROM updates WHERE complaint_id = comp.id AND status = 'resolved')
            - comp.created_at
        ))/86400) AS avg_days`).
		Where("comp.status = ?", complaint.StatusResolved)
	err := scoped(q, "comp.institution_id", institutionID).Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

func (r *DBStatsRepo) WithTx(tx *gorm.DB) StatsRepo {
	if tx == nil {
		return r
	}
	return &DBStatsRepo{
		db: tx,
	}
}
