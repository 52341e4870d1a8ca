package contact

// ContactRequest is the contact form submission.
type ContactRequest struct {
	Name    string `form:"name" binding:"required,max=150"`
	Email   string `form:"email" binding:"required,form_email,max=150"`
	Message string `form:"message" binding:"required,max=5000"`
}
