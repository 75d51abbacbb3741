package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token         string `json:"token"`
	UserID        uint   `json:"user_id"`
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	Role          string `json:"role"`
	InstitutionID *uint  `json:"institution_id,omitempty"`
}

type TrackingResponse struct {
	Success    bool   `json:"success"`
	TrackingID string `json:"tracking_id"`
}
