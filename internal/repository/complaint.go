package repository

import (
	"time"

	"github.com/citizenconnect/complaints-api/internal/domain/complaint"
	"github.com/citizenconnect/complaints-api/internal/domain/view"
	"gorm.io/gorm"
)

type ComplaintRepo interface {
	Create(c *complaint.Complaint) error
	GetByID(id uint) (complaint.Complaint, error)
	TrackingIDExists(trackingID string) (bool, error)
	FindDetailByTrackingID(trackingID string) (view.ComplaintDetail, error)
	List(filter complaint.ListFilter) ([]view.ComplaintSummary, error)
	SetStatus(id uint, status complaint.Status) error

	CreateUpdate(u *complaint.Update) error
	ListUpdates(complaintID uint) ([]complaint.Update, error)

	CreateMessage(m *complaint.Message) error
	ListMessages(complaintID uint) ([]view.MessageWithSender, error)

	CreateAttachment(a *complaint.Attachment) error
	ListAttachments(complaintID uint) ([]complaint.Attachment, error)

	WithTx(tx *gorm.DB) ComplaintRepo
}

type DBComplaintRepo struct {
	db *gorm.DB
}

func NewComplaintRepo(db *gorm.DB) *DBComplaintRepo {
	return &DBComplaintRepo{
		db: db,
	}
}

func (r *DBComplaintRepo) Create(c *complaint.Complaint) error {
	return r.db.Create(c).Error
}

func (r *DBComplaintRepo) GetByID(id uint) (complaint.Complaint, error) {
	var c complaint.Complaint
	err := r.db.First(&c, id).Error
	return c, err
}

func (r *DBComplaintRepo) TrackingIDExists(trackingID string) (bool, error) {
	var count int64
	err := r.db.Model(&complaint.Complaint{}).
		Where("tracking_id = ?", trackingID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBComplaintRepo) FindDetailByTrackingID(trackingID string) (view.ComplaintDetail, error) {
	var detail view.ComplaintDetail
	err := r.db.Table("complaints c").
		Select(`
            c.id, c.tracking_id, c.title, c.description, c.status, c.priority,
            c.location, c.province, c.district, c.sector, c.created_at, c.updated_at,
            cat.name AS category_name,
            subcat.name AS subcategory_name,
            i.name AS institution_name
        `).
		Joins("LEFT JOIN categories cat ON c.category_id = cat.id").
		Joins("LEFT JOIN categories subcat ON c.subcategory_id = subcat.id").
		Joins("LEFT JOIN institutions i ON c.institution_id = i.id").
		Where("c.tracking_id = ?", trackingID).
		Take(&detail).Error
	return detail, err
}

// List applies the optional institution and status filters with bound
// parameters only; filter values never reach the query text.
func (r *DBComplaintRepo) List(filter complaint.ListFilter) ([]view.ComplaintSummary, error) {
	var summaries []view.ComplaintSummary

	query := r.db.Table("complaints c").
		Select(`
            c.id, c.tracking_id, c.title, c.status, c.priority,
            c.province, c.district, c.created_at, c.updated_at,
            cat.name AS category_name,
            i.name AS institution_name
        `).
		Joins("LEFT JOIN categories cat ON c.category_id = cat.id").
		Joins("LEFT JOIN institutions i ON c.institution_id = i.id")

	if filter.InstitutionID != nil {
		query = query.Where("c.institution_id = ?", *filter.InstitutionID)
	}
	if filter.Status != "" && filter.Status != complaint.StatusAll {
		query = query.Where("c.status = ?", filter.Status)
	}

	err := query.Order("c.created_at DESC").Scan(&summaries).Error
	return summaries, err
}

func (r *DBComplaintRepo) SetStatus(id uint, status complaint.Status) error {
	return r.db.Model(&complaint.Complaint{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *DBComplaintRepo) CreateUpdate(u *complaint.Update) error {
	return r.db.Create(u).Error
}

func (r *DBComplaintRepo) ListUpdates(complaintID uint) ([]complaint.Update, error) {
	var updates []complaint.Update
	err := r.db.Where("complaint_id = ?", complaintID).
		Order("created_at DESC").
		Find(&updates).Error
	return updates, err
}

func (r *DBComplaintRepo) CreateMessage(m *complaint.Message) error {
	return r.db.Create(m).Error
}

func (r *DBComplaintRepo) ListMessages(complaintID uint) ([]view.MessageWithSender, error) {
	var messages []view.MessageWithSender
	err := r.db.Table("messages m").
		Select("m.id, m.content, m.created_at, u.full_name AS sender_name").
		Joins("LEFT JOIN users u ON m.sender_id = u.id").
		Where("m.complaint_id = ?", complaintID).
		Order("m.created_at ASC").
		Scan(&messages).Error
	return messages, err
}

func (r *DBComplaintRepo) CreateAttachment(a *complaint.Attachment) error {
	return r.db.Create(a).Error
}

func (r *DBComplaintRepo) ListAttachments(complaintID uint) ([]complaint.Attachment, error) {
	var attachments []complaint.Attachment
	err := r.db.Where("complaint_id = ?", complaintID).
		Order("created_at DESC").
		Find(&attachments).Error
	return attachments, err
}

func (r *DBComplaintRepo) WithTx(tx *gorm.DB) ComplaintRepo {
	if tx == nil {
		return r
	}
	return &DBComplaintRepo{
		db: tx,
	}
}
