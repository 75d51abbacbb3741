package application

import (
	"github.com/citizenconnect/complaints-api/internal/domain/audit"
	"github.com/citizenconnect/complaints-api/internal/domain/category"
	"github.com/citizenconnect/complaints-api/internal/domain/complaint"
	"github.com/citizenconnect/complaints-api/internal/domain/institution"
	"github.com/citizenconnect/complaints-api/internal/domain/user"
	"github.com/citizenconnect/complaints-api/internal/domain/view"
	"github.com/citizenconnect/complaints-api/internal/repository"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) ListTopLevel() ([]category.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.Category), args.Error(1)
}

func (m *MockCategoryRepo) ListSubcategories(parentID uint) ([]category.Category, error) {
	args := m.Called(parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.Category), args.Error(1)
}

func (m *MockCategoryRepo) GetByCode(code string) (category.Category, error) {
	args := m.Called(code)
	return args.Get(0).(category.Category), args.Error(1)
}

func (m *MockCategoryRepo) Create(c *category.Category) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockCategoryRepo) WithTx(tx *gorm.DB) repository.CategoryRepo {
	return m
}

type MockInstitutionRepo struct {
	mock.Mock
}

func (m *MockInstitutionRepo) ListAll() ([]institution.Institution, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]institution.Institution), args.Error(1)
}

func (m *MockInstitutionRepo) FindForDistrict(district string) (institution.Institution, error) {
	args := m.Called(district)
	return args.Get(0).(institution.Institution), args.Error(1)
}

func (m *MockInstitutionRepo) GetByCode(code string) (institution.Institution, error) {
	args := m.Called(code)
	return args.Get(0).(institution.Institution), args.Error(1)
}

func (m *MockInstitutionRepo) Create(i *institution.Institution) error {
	args := m.Called(i)
	return args.Error(0)
}

func (m *MockInstitutionRepo) WithTx(tx *gorm.DB) repository.InstitutionRepo {
	return m
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByEmail(email string) (user.User, error) {
	args := m.Called(email)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(id uint) (user.User, error) {
	args := m.Called(id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepo) Save(u *user.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUserRepo) WithTx(tx *gorm.DB) repository.UserRepo {
	return m
}

type MockComplaintRepo struct {
	mock.Mock
}

func (m *MockComplaintRepo) Create(c *complaint.Complaint) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockComplaintRepo) GetByID(id uint) (complaint.Complaint, error) {
	args := m.Called(id)
	return args.Get(0).(complaint.Complaint), args.Error(1)
}

func (m *MockComplaintRepo) TrackingIDExists(trackingID string) (bool, error) {
	args := m.Called(trackingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockComplaintRepo) FindDetailByTrackingID(trackingID string) (view.ComplaintDetail, error) {
	args := m.Called(trackingID)
	return args.Get(0).(view.ComplaintDetail), args.Error(1)
}

func (m *MockComplaintRepo) List(filter complaint.ListFilter) ([]view.ComplaintSummary, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]view.ComplaintSummary), args.Error(1)
}

func (m *MockComplaintRepo) SetStatus(id uint, status complaint.Status) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockComplaintRepo) CreateUpdate(u *complaint.Update) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockComplaintRepo) ListUpdates(complaintID uint) ([]complaint.Update, error) {
	args := m.Called(complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]complaint.Update), args.Error(1)
}

func (m *MockComplaintRepo) CreateMessage(msg *complaint.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockComplaintRepo) ListMessages(complaintID uint) ([]view.MessageWithSender, error) {
	args := m.Called(complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]view.MessageWithSender), args.Error(1)
}

func (m *MockComplaintRepo) CreateAttachment(a *complaint.Attachment) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockComplaintRepo) ListAttachments(complaintID uint) ([]complaint.Attachment, error) {
	args := m.Called(complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]complaint.Attachment), args.Error(1)
}

func (m *MockComplaintRepo) WithTx(tx *gorm.DB) repository.ComplaintRepo {
	return m
}

type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) CountComplaints(institutionID *uint) (int64, error) {
	args := m.Called(institutionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepo) CountByStatus(institutionID *uint) ([]view.StatusCount, error) {
	args := m.Called(institutionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]view.StatusCount), args.Error(1)
}

func (m *MockStatsRepo) CountByCategory(institutionID *uint, limit int) ([]view.CategoryCount, error) {
	args := m.Called(institutionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]view.CategoryCount), args.Error(1)
}

func (m *MockStatsRepo) CountByProvince(institutionID *uint) ([]view.ProvinceCount, error) {
	args := m.Called(institutionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]view.ProvinceCount), args.Error(1)
}

func (m *MockStatsRepo) RecentComplaints(institutionID *uint, limit int) ([]view.RecentComplaint, error) {
	args := m.Called(institutionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]view.RecentComplaint), args.Error(1)
}

func (m *MockStatsRepo) AvgResolutionDays(institutionID *uint) (float64, error) {
	args := m.Called(institutionID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStatsRepo) WithTx(tx *gorm.DB) repository.StatsRepo {
	return m
}

type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) GetAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]audit.AuditLog), args.Error(1)
}

func (m *MockAuditRepo) CreateAuditLog(l *audit.AuditLog) error {
	args := m.Called(l)
	return args.Error(0)
}

func (m *MockAuditRepo) DeleteOldAuditLogs(retentionDays int) error {
	args := m.Called(retentionDays)
	return args.Error(0)
}

func (m *MockAuditRepo) WithTx(tx *gorm.DB) repository.AuditRepo {
	return m
}
