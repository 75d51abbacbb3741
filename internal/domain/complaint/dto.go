package complaint

import "io"

// FileUpload carries one uploaded file into the submission flow.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// SubmitInput is the submission form. CitizenID is set from the session when
// an authenticated, non-anonymous citizen submits.
type SubmitInput struct {
	Title         string
	Description   string
	CategoryID    uint
	SubcategoryID *uint
	Location      string
	Priority      Priority
	Province      string
	District      string
	Sector        *string
	ContactInfo   *string
	IsAnonymous   bool
	CitizenID     *uint
	Files         []FileUpload
}

type UpdateStatusDTO struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}

type RespondDTO struct {
	Content string `json:"content" binding:"required"`
}

// ListFilter narrows complaint listings. StatusAll is the sentinel meaning
// "no status filter".
type ListFilter struct {
	InstitutionID *uint
	Status        string
}

const StatusAll = "all"
