package member

// RegisterRequest is the registration form submission. Fields arrive
// untrimmed; normalization happens in the service, so the email validator
// tolerates surrounding whitespace.
type RegisterRequest struct {
	Name    string `form:"name" binding:"required,max=150"`
	Phone   string `form:"phone" binding:"required,max=20"`
	Email   string `form:"email" binding:"required,form_email,max=150"`
	Package string `form:"package" binding:"required,package"`
}
