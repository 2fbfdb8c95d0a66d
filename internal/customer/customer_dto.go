package customer

type CreateCustomerRequest struct {
	CompanyName   string `json:"company_name" binding:"required,max=255"`
	ContactPerson string `json:"contact_person" binding:"max=255"`
	Phone         string `json:"phone" binding:"max=50"`
	Email         string `json:"email" binding:"omitempty,email,max=255"`
	Address       string `json:"address" binding:"max=500"`
}

// UpdateCustomerRequest is partial; only supplied fields change.
type UpdateCustomerRequest struct {
	CompanyName   *string `json:"company_name" binding:"omitempty,min=1,max=255"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=255"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Email         *string `json:"email" binding:"omitempty,email,max=255"`
	Address       *string `json:"address" binding:"omitempty,max=500"`
}

type CustomerResponse struct {
	ID            uint   `json:"id"`
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// CustomerOption is the compact shape used by visit-record forms.
type CustomerOption struct {
	ID          uint   `json:"id"`
	CompanyName string `json:"company_name"`
}
