package dto

type CreateAnnouncementInput struct {
	Title string `json:"title" binding:"required,min=3,max=150"`
	Body  string `json:"body" binding:"required,max=4000"`
}
