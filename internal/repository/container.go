package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Category    CategoryRepo
	Institution InstitutionRepo
	User        UserRepo
	Complaint   ComplaintRepo
	Stats       StatsRepo
	Audit       AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Category:    NewCategoryRepo(db),
		Institution: NewInstitutionRepo(db),
		User:        NewUserRepo(db),
		Complaint:   NewComplaintRepo(db),
		Stats:       NewStatsRepo(db),
		Audit:       NewAuditRepo(db),
		db:          db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

// DB exposes the underlying handle for raw queries (schema inspector).
func (r *Repos) DB() *gorm.DB {
	return r.db
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Category:    r.Category.WithTx(tx),
		Institution: r.Institution.WithTx(tx),
		User:        r.User.WithTx(tx),
		Complaint:   r.Complaint.WithTx(tx),
		Stats:       r.Stats.WithTx(tx),
		Audit:       r.Audit.WithTx(tx),
		db:          tx,
	}
}

// ExecTx runs fn inside one transaction; every repo seen by fn is bound to it.
// Without a live handle (repos injected directly, as in tests) fn runs against
// the same repos.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
