package application

import (
	"errors"
	"testing"

	"github.com/citizenconnect/complaints-api/internal/domain/complaint"
	"github.com/citizenconnect/complaints-api/internal/domain/institution"
	"github.com/citizenconnect/complaints-api/internal/domain/view"
	"github.com/citizenconnect/complaints-api/internal/repository"
	"github.com/citizenconnect/complaints-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func ptrUint(v uint) *uint {
	return &v
}

func ptrString(v string) *string {
	return &v
}

// --------------------- Setup ---------------------
func setupComplaintServiceMocks(t *testing.T) (*ComplaintService, *MockComplaintRepo, *MockInstitutionRepo) {
	mockComplaint := new(MockComplaintRepo)
	mockInstitution := new(MockInstitutionRepo)
	repos := &repository.Repos{
		Complaint:   mockComplaint,
		Institution: mockInstitution,
		Audit:       new(MockAuditRepo),
	}
	svc := NewComplaintService(repos, nil)

	oldAudit := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = oldAudit })

	return svc, mockComplaint, mockInstitution
}

func validSubmitInput() complaint.SubmitInput {
	return complaint.SubmitInput{
		Title:       "Broken street light",
		Description: "The light at the junction has been out for a week.",
		CategoryID:  3,
		Location:    "KG 11 Ave junction",
		Priority:    complaint.PriorityMedium,
		Province:    "Kigali City",
		District:    "Gasabo",
	}
}

// --------------------- Submit ---------------------
func TestSubmit_ReturnsTrackingID(t *testing.T) {
	svc, mockComplaint, mockInstitution := setupComplaintServiceMocks(t)

	mockComplaint.On("TrackingIDExists", mock.AnythingOfType("string")).Return(false, nil)
	mockInstitution.On("FindForDistrict", "Gasabo").Return(institution.Institution{ID: 7, Name: "Gasabo District"}, nil)
	mockComplaint.On("Create", mock.AnythingOfType("*complaint.Complaint")).Run(func(args mock.Arguments) {
		args.Get(0).(*complaint.Complaint).ID = 42
	}).Return(nil)
	mockComplaint.On("CreateUpdate", mock.AnythingOfType("*complaint.Update")).Return(nil)

	trackingID, err := svc.Submit(validSubmitInput())
	assert.NoError(t, err)
	assert.Regexp(t, `^CMP-\d{6}$`, trackingID)
}

func TestSubmit_MissingFieldRejectedBeforeAnyWrite(t *testing.T) {
	svc, mockComplaint, _ := setupComplaintServiceMocks(t)

	for _, mutate := range []func(*complaint.SubmitInput){
		func(in *complaint.SubmitInput) { in.Title = "" },
		func(in *complaint.SubmitInput) { in.Description = "" },
		func(in *complaint.SubmitInput) { in.CategoryID = 0 },
		func(in *complaint.SubmitInput) { in.Location = "" },
		func(in *complaint.SubmitInput) { in.Priority = "" },
		func(in *complaint.SubmitInput) { in.Province = "" },
		func(in *complaint.SubmitInput) { in.District = "" },
	} {
		input := validSubmitInput()
		mutate(&input)

		trackingID, err := svc.Submit(input)
		assert.Equal(t, ErrValidation, err)
		assert.Empty(t, trackingID)
	}

	mockComplaint.AssertNotCalled(t, "Create", mock.Anything)
	mockComplaint.AssertNotCalled(t, "TrackingIDExists", mock.Anything)
}

func TestSubmit_RoutesToDistrictInstitution(t *testing.T) {
	svc, mockComplaint, mockInstitution := setupComplaintServiceMocks(t)

	district := "Gasabo"
	mockComplaint.On("TrackingIDExists", mock.AnythingOfType("string")).Return(false, nil)
	mockInstitution.On("FindForDistrict", district).Return(institution.Institution{ID: 7, District: &district}, nil)

	var created complaint.Complaint
	mockComplaint.On("Create", mock.AnythingOfType("*complaint.Complaint")).Run(func(args mock.Arguments) {
		created = *args.Get(0).(*complaint.Complaint)
	}).Return(nil)
	mockComplaint.On("CreateUpdate", mock.AnythingOfType("*complaint.Update")).Return(nil)

	_, err := svc.Submit(validSubmitInput())
	assert.NoError(t, err)
	assert.NotNil(t, created.InstitutionID)
	assert.Equal(t, uint(7), *created.InstitutionID)
	assert.Equal(t, complaint.StatusSubmitted, created.Status)
}

func TestSubmit_UnmatchedDistrictStaysUnassigned(t *testing.T) {
	svc, mockComplaint, mockInstitution := setupComplaintServiceMocks(t)

	mockComplaint.On("TrackingIDExists", mock.AnythingOfType("string")).Return(false, nil)
	mockInstitution.On("FindForDistrict", "Gasabo").Return(institution.Institution{}, gorm.ErrRecordNotFound)

	var created complaint.Complaint
	mockComplaint.On("Create", mock.AnythingOfType("*complaint.Complaint")).Run(func(args mock.Arguments) {
		created = *args.Get(0).(*complaint.Complaint)
	}).Return(nil)
	mockComplaint.On("CreateUpdate", mock.AnythingOfType("*complaint.Update")).Return(nil)

	_, err := svc.Submit(validSubmitInput())
	assert.NoError(t, err)
	assert.Nil(t, created.InstitutionID)
}

func TestSubmit_AnonymousDropsCitizenLink(t *testing.T) {
	svc, mockComplaint, mockInstitution := setupComplaintServiceMocks(t)

	mockComplaint.On("TrackingIDExists", mock.AnythingOfType("string")).Return(false, nil)
	mockInstitution.On("FindForDistrict", "Gasabo").Return(institution.Institution{ID: 7}, nil)

	var created complaint.Complaint
	mockComplaint.On("Create", mock.AnythingOfType("*complaint.Complaint")).Run(func(args mock.Arguments) {
		created = *args.Get(0).(*complaint.Complaint)
	}).Return(nil)
	mockComplaint.On("CreateUpdate", mock.AnythingOfType("*complaint.Update")).Return(nil)

	input := validSubmitInput()
	input.IsAnonymous = true
	input.CitizenID = ptrUint(12)
	input.ContactInfo = ptrString("0788123456")

	_, err := svc.Submit(input)
	assert.NoError(t, err)
	assert.True(t, created.IsAnonymous)
	assert.Nil(t, created.CitizenID)
	// Contact info is kept even for anonymous submissions.
	assert.Equal(t, "0788123456", *created.ContactInfo)
}

func TestSubmit_WritesInitialUpdate(t *testing.T) {
	svc, mockComplaint, mockInstitution := setupComplaintServiceMocks(t)

	mockComplaint.On("TrackingIDExists", mock.AnythingOfType("string")).Return(false, nil)
	mockInstitution.On("FindForDistrict", "Gasabo").Return(institution.Institution{ID: 7}, nil)
	mockComplaint.On("Create", mock.AnythingOfType("*complaint.Complaint")).Run(func(args mock.Arguments) {
		args.Get(0).(*complaint.Complaint).ID = 42
	}).Return(nil)

	var update complaint.Update
	mockComplaint.On("CreateUpdate", mock.AnythingOfType("*complaint.Update")).Run(func(args mock.Arguments) {
		update = *args.Get(0).(*complaint.Update)
	}).Return(nil)

	_, err := svc.Submit(validSubmitInput())
	assert.NoError(t, err)
	assert.Equal(t, uint(42), update.ComplaintID)
	assert.Equal(t, complaint.StatusSubmitted, update.Status)
	assert.Equal(t, initialUpdateComment, update.Comment)
	assert.Nil(t, update.UserID)
}

func TestSubmit_RetriesOnTrackingCollision(t *testing.T) {
	svc, mockComplaint, mockInstitution := setupComplaintServiceMocks(t)

	oldGen := GenerateTrackingID
	ids := []string{"CMP-111111", "CMP-222222"}
	GenerateTrackingID = func() string {
		id := ids[0]
		if len(ids) > 1 {
			ids = ids[1:]
		}
		return id
	}
	defer func() { GenerateTrackingID = oldGen }()

	mockComplaint.On("TrackingIDExists", "CMP-111111").Return(true, nil)
	mockComplaint.On("TrackingIDExists", "CMP-222222").Return(false, nil)
	mockInstitution.On("FindForDistrict", "Gasabo").Return(institution.Institution{ID: 7}, nil)
	mockComplaint.On("Create", mock.AnythingOfType("*complaint.Complaint")).Return(nil)
	mockComplaint.On("CreateUpdate", mock.AnythingOfType("*complaint.Update")).Return(nil)

	trackingID, err := svc.Submit(validSubmitInput())
	assert.NoError(t, err)
	assert.Equal(t, "CMP-222222", trackingID)
}

func TestSubmit_TrackingExhaustedAfterBoundedAttempts(t *testing.T) {
	svc, mockComplaint, _ := setupComplaintServiceMocks(t)

	mockComplaint.On("TrackingIDExists", mock.AnythingOfType("string")).Return(true, nil)

	_, err := svc.Submit(validSubmitInput())
	assert.Equal(t, ErrTrackingExhausted, err)
	mockComplaint.AssertNumberOfCalls(t, "TrackingIDExists", trackingIDAttempts)
	mockComplaint.AssertNotCalled(t, "Create", mock.Anything)
}

// --------------------- GetByTrackingID ---------------------
func TestGetByTrackingID_EmptyID(t *testing.T) {
	svc, mockComplaint, _ := setupComplaintServiceMocks(t)

	thread, err := svc.GetByTrackingID("")
	assert.NoError(t, err)
	assert.Nil(t, thread)
	mockComplaint.AssertNotCalled(t, "FindDetailByTrackingID", mock.Anything)
}

func TestGetByTrackingID_UnknownID(t *testing.T) {
	svc, mockComplaint, _ := setupComplaintServiceMocks(t)

	mockComplaint.On("FindDetailByTrackingID", "CMP-999999").Return(view.ComplaintDetail{}, gorm.ErrRecordNotFound)

	thread, err := svc.GetByTrackingID("CMP-999999")
	assert.NoError(t, err)
	assert.Nil(t, thread)
}

func TestGetByTrackingID_SubFetchFailureIsIsolated(t *testing.T) {
	svc, mockComplaint, _ := setupComplaintServiceMocks(t)

	detail := view.ComplaintDetail{ID: 9, TrackingID: "CMP-123456", Title: "Broken street light"}
	mockComplaint.On("FindDetailByTrackingID", "CMP-123456").Return(detail, nil)
	mockComplaint.On("ListMessages", uint(9)).Return(nil, errors.New("db down"))
	mockComplaint.On("ListUpdates", uint(9)).Return([]complaint.Update{{ID: 1, ComplaintID: 9}}, nil)
	mockComplaint.On("ListAttachments", uint(9)).Return([]complaint.Attachment{{ID: 5, ComplaintID: 9}}, nil)

	thread, err := svc.GetByTrackingID("CMP-123456")
	assert.NoError(t, err)
	assert.NotNil(t, thread)
	assert.Equal(t, "CMP-123456", thread.TrackingID)
	assert.Empty(t, thread.Messages)
	assert.Len(t, thread.Updates, 1)
	assert.Len(t, thread.Attachments, 1)
}

// --------------------- List ---------------------
func TestList_PassesFilterThrough(t *testing.T) {
	svc, mockComplaint, _ := setupComplaintServiceMocks(t)

	filter := complaint.ListFilter{InstitutionID: ptrUint(7), Status: "pending"}
	mockComplaint.On("List", filter).Return([]view.ComplaintSummary{{ID: 1, TrackingID: "CMP-123456"}}, nil)

	summaries := svc.List(filter)
	assert.Len(t, summaries, 1)
	mockComplaint.AssertExpectations(t)
}

func TestList_FailSoftToEmpty(t *testing.T) {
	svc, mockComplaint, _ := setupComplaintServiceMocks(t)

	mockComplaint.On("List", mock.Anything).Return(nil, errors.New("db down"))

	summaries := svc.List(complaint.ListFilter{})
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

// --------------------- UpdateStatus ---------------------
func TestUpdateStatus_RequiresActingUser(t *testing.T) {
	svc, mockComplaint, _ := setupComplaintServiceMocks(t)

	err := svc.UpdateStatus(nil, 9, complaint.UpdateStatusDTO{Status: "resolved"}, 0)
	assert.Equal(t, ErrAuthRequired, err)
	mockComplaint.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc, mockComplaint, _ := setupComplaintServiceMocks(t)

	err := svc.UpdateStatus(nil, 9, complaint.UpdateStatusDTO{Status: "escalated_to_mars"}, 3)
	assert.Equal(t, ErrInvalidStatus, err)
	mockComplaint.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything)
}

func TestUpdateStatus_UnknownComplaint(t *testing.T) {
	svc, mockComplaint, _ := setupComplaintServiceMocks(t)

	mockComplaint.On("GetByID", uint(9)).Return(complaint.Complaint{}, gorm.ErrRecordNotFound)

	err := svc.UpdateStatus(nil, 9, complaint.UpdateStatusDTO{Status: "resolved"}, 3)
	assert.Equal(t, ErrComplaintNotFound, err)
}

func TestUpdateStatus_WritesUpdateRowWithActor(t *testing.T) {
	svc, mockComplaint, _ := setupComplaintServiceMocks(t)

	mockComplaint.On("GetByID", uint(9)).Return(complaint.Complaint{ID: 9, Status: complaint.StatusPending}, nil)
	mockComplaint.On("SetStatus", uint(9), complaint.StatusResolved).Return(nil)

	var update complaint.Update
	mockComplaint.On("CreateUpdate", mock.AnythingOfType("*complaint.Update")).Run(func(args mock.Arguments) {
		update = *args.Get(0).(*complaint.Update)
	}).Return(nil)

	err := svc.UpdateStatus(nil, 9, complaint.UpdateStatusDTO{Status: "resolved", Comment: "Fixed by field team"}, 3)
	assert.NoError(t, err)
	assert.Equal(t, uint(9), update.ComplaintID)
	assert.Equal(t, complaint.StatusResolved, update.Status)
	assert.Equal(t, "Fixed by field team", update.Comment)
	assert.Equal(t, uint(3), *update.UserID)
}

// --------------------- Respond ---------------------
func TestRespond_RequiresActingUser(t *testing.T) {
	svc, mockComplaint, _ := setupComplaintServiceMocks(t)

	err := svc.Respond(nil, 9, "We are on it.", 0)
	assert.Equal(t, ErrAuthRequired, err)
	mockComplaint.AssertNotCalled(t, "CreateMessage", mock.Anything)
}

func TestRespond_AppendsMessageWithoutTouchingStatus(t *testing.T) {
	svc, mockComplaint, _ := setupComplaintServiceMocks(t)

	mockComplaint.On("GetByID", uint(9)).Return(complaint.Complaint{ID: 9, Status: complaint.StatusPending}, nil)

	var msg complaint.Message
	mockComplaint.On("CreateMessage", mock.AnythingOfType("*complaint.Message")).Run(func(args mock.Arguments) {
		msg = *args.Get(0).(*complaint.Message)
	}).Return(nil)

	err := svc.Respond(nil, 9, "We are on it.", 3)
	assert.NoError(t, err)
	assert.Equal(t, uint(9), msg.ComplaintID)
	assert.Equal(t, "We are on it.", msg.Content)
	assert.Equal(t, uint(3), *msg.SenderID)
	mockComplaint.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything)
}
