package application

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/citizenconnect/complaints-api/internal/domain/complaint"
	"github.com/citizenconnect/complaints-api/internal/domain/view"
	"github.com/citizenconnect/complaints-api/internal/objectstore"
	"github.com/citizenconnect/complaints-api/internal/repository"
	"github.com/citizenconnect/complaints-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	ErrValidation        = errors.New("please fill in all required fields")
	ErrAuthRequired      = errors.New("you must be logged in to perform this action")
	ErrInvalidStatus     = errors.New("unrecognized complaint status")
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrTrackingExhausted = errors.New("could not allocate a unique tracking id")
)

const initialUpdateComment = "Complaint received and logged in the system."

type ComplaintService struct {
	Repos *repository.Repos
	Store *objectstore.Store
}

func NewComplaintService(repos *repository.Repos, store *objectstore.Store) *ComplaintService {
	return &ComplaintService{
		Repos: repos,
		Store: store,
	}
}

// ComplaintThread is the full tracking-page payload.
type ComplaintThread struct {
	view.ComplaintDetail
	Messages    []view.MessageWithSender `json:"messages"`
	Updates     []complaint.Update       `json:"updates"`
	Attachments []complaint.Attachment   `json:"attachments"`
}

// Submit validates the form, routes the complaint to an institution by
// district, and writes the complaint, its initial update and any attachment
// rows in one transaction. It returns the tracking id to hand back to the
// citizen.
func (s *ComplaintService) Submit(input complaint.SubmitInput) (string, error) {
	if input.Title == "" || input.Description == "" || input.CategoryID == 0 ||
		input.Location == "" || input.Priority == "" || input.Province == "" ||
		input.District == "" {
		return "", ErrValidation
	}

	trackingID, err := s.allocateTrackingID()
	if err != nil {
		return "", err
	}

	institutionID := s.routeToInstitution(input.District)

	var citizenID *uint
	if !input.IsAnonymous {
		citizenID = input.CitizenID
	}

	attachments := s.storeFiles(input.Files)

	c := complaint.Complaint{
		TrackingID:    trackingID,
		Title:         input.Title,
		Description:   input.Description,
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
		Status:        complaint.StatusSubmitted,
		Priority:      input.Priority,
		Location:      input.Location,
		Province:      input.Province,
		District:      input.District,
		Sector:        input.Sector,
		CitizenID:     citizenID,
		InstitutionID: institutionID,
		IsAnonymous:   input.IsAnonymous,
		ContactInfo:   input.ContactInfo,
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Complaint.Create(&c); err != nil {
			return err
		}
		update := complaint.Update{
			ComplaintID: c.ID,
			Status:      complaint.StatusSubmitted,
			Comment:     initialUpdateComment,
		}
		if err := tx.Complaint.CreateUpdate(&update); err != nil {
			return err
		}
		for i := range attachments {
			attachments[i].ComplaintID = c.ID
			if err := tx.Complaint.CreateAttachment(&attachments[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error submitting complaint: %v", err)
		return "", fmt.Errorf("an error occurred while submitting your complaint: %w", err)
	}

	return trackingID, nil
}

func (s *ComplaintService) allocateTrackingID() (string, error) {
	for i := 0; i < trackingIDAttempts; i++ {
		id := GenerateTrackingID()
		exists, err := s.Repos.Complaint.TrackingIDExists(id)
		if err != nil {
			return "", fmt.Errorf("an error occurred while submitting your complaint: %w", err)
		}
		if !exists {
			return id, nil
		}
	}
	return "", ErrTrackingExhausted
}

// routeToInstitution prefers an exact district match and falls back to the
// null-district catch-all. No match is a valid outcome: the complaint stays
// unassigned.
func (s *ComplaintService) routeToInstitution(district string) *uint {
	inst, err := s.Repos.Institution.FindForDistrict(district)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error finding institution for district %q: %v", district, err)
		}
		return nil
	}
	return &inst.ID
}

// storeFiles uploads each file to the object store and shapes the metadata
// rows. Upload failures are logged and the metadata row kept, matching the
// metadata-only contract of the attachments table.
func (s *ComplaintService) storeFiles(files []complaint.FileUpload) []complaint.Attachment {
	attachments := make([]complaint.Attachment, 0, len(files))
	for _, f := range files {
		key := objectstore.ObjectKey(f.Name)
		if err := s.Store.Put(context.Background(), key, f.Reader, f.Size, f.ContentType); err != nil {
			log.Printf("Error uploading attachment %q: %v", f.Name, err)
		}
		attachments = append(attachments, complaint.Attachment{
			FileName: f.Name,
			FileType: f.ContentType,
			FileSize: f.Size,
			FileURL:  objectstore.PublicURL(key),
			FilePath: "/uploads/" + key,
		})
	}
	return attachments
}

// GetByTrackingID returns the complaint with its full thread, or nil when the
// tracking id is unknown. The three sub-fetches are independently fail-soft:
// a failure loading messages still returns the complaint with its updates and
// attachments.
func (s *ComplaintService) GetByTrackingID(trackingID string) (*ComplaintThread, error) {
	if trackingID == "" {
		return nil, nil
	}

	detail, err := s.Repos.Complaint.FindDetailByTrackingID(trackingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	thread := &ComplaintThread{
		ComplaintDetail: detail,
		Messages:        []view.MessageWithSender{},
		Updates:         []complaint.Update{},
		Attachments:     []complaint.Attachment{},
	}

	if messages, err := s.Repos.Complaint.ListMessages(detail.ID); err != nil {
		log.Printf("Error fetching messages for complaint %d: %v", detail.ID, err)
	} else if messages != nil {
		thread.Messages = messages
	}

	if updates, err := s.Repos.Complaint.ListUpdates(detail.ID); err != nil {
		log.Printf("Error fetching updates for complaint %d: %v", detail.ID, err)
	} else if updates != nil {
		thread.Updates = updates
	}

	if attachments, err := s.Repos.Complaint.ListAttachments(detail.ID); err != nil {
		log.Printf("Error fetching attachments for complaint %d: %v", detail.ID, err)
	} else if attachments != nil {
		thread.Attachments = attachments
	}

	return thread, nil
}

// List returns complaint summaries newest first, optionally narrowed by
// institution and status. Fail-soft to an empty slice.
func (s *ComplaintService) List(filter complaint.ListFilter) []view.ComplaintSummary {
	summaries, err := s.Repos.Complaint.List(filter)
	if err != nil {
		log.Printf("Error fetching complaints: %v", err)
		return []view.ComplaintSummary{}
	}
	if summaries == nil {
		return []view.ComplaintSummary{}
	}
	return summaries
}

// UpdateStatus sets the complaint's status and appends one audit-trail update
// row carrying the acting user's id. Any status from the known set may follow
// any other.
func (s *ComplaintService) UpdateStatus(c *gin.Context, complaintID uint, input complaint.UpdateStatusDTO, actingUserID uint) error {
	if actingUserID == 0 {
		return ErrAuthRequired
	}
	status := complaint.Status(input.Status)
	if !complaint.ValidStatus(status) {
		return ErrInvalidStatus
	}

	existing, err := s.Repos.Complaint.GetByID(complaintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrComplaintNotFound
		}
		return err
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Complaint.SetStatus(complaintID, status); err != nil {
			return err
		}
		userID := actingUserID
		return tx.Complaint.CreateUpdate(&complaint.Update{
			ComplaintID: complaintID,
			Status:      status,
			Comment:     input.Comment,
			UserID:      &userID,
		})
	})
	if err != nil {
		return err
	}

	go utils.LogAuditWithConsole(c, "update_status", "complaint", fmt.Sprintf("id=%d", complaintID),
		map[string]any{"status": existing.Status},
		map[string]any{"status": status, "comment": input.Comment},
		"", s.Repos.Audit)

	return nil
}

// Respond appends one message to the complaint's conversation thread. It
// never touches the complaint's status; status changes are a separate
// operation even when the UI invokes both together.
func (s *ComplaintService) Respond(c *gin.Context, complaintID uint, content string, actingUserID uint) error {
	if actingUserID == 0 {
		return ErrAuthRequired
	}

	if _, err := s.Repos.Complaint.GetByID(complaintID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrComplaintNotFound
		}
		return err
	}

	senderID := actingUserID
	msg := complaint.Message{
		ComplaintID: complaintID,
		SenderID:    &senderID,
		Content:     content,
	}
	if err := s.Repos.Complaint.CreateMessage(&msg); err != nil {
		return err
	}

	go utils.LogAuditWithConsole(c, "respond", "complaint", fmt.Sprintf("id=%d", complaintID),
		nil, map[string]any{"message_id": msg.ID}, "", s.Repos.Audit)

	return nil
}
