package dto

type CreateTicketInput struct {
	Subject string `json:"subject" binding:"required,min=3,max=150"`
	Body    string `json:"body" binding:"required,max=4000"`
}

type OwnerReplyInput struct {
	Reply  string `json:"reply" binding:"required,max=4000"`
	Status string `json:"status" binding:"omitempty,oneof=open in_progress resolved"`
}

type UpdateTicketStatusInput struct {
	Status string `json:"status" binding:"required,oneof=open in_progress resolved"`
}

type AdminNotesInput struct {
	Notes string `json:"notes" binding:"required,max=4000"`
}
