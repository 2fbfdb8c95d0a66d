package salesperson

type CreateSalesPersonRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	Email      string `json:"email" binding:"required,email,max=255"`
	Password   string `json:"password" binding:"required,min=8,max=72"`
	Department string `json:"department" binding:"max=255"`
	IsManager  bool   `json:"is_manager"`
}

// UpdateSalesPersonRequest is partial; only supplied fields change.
type UpdateSalesPersonRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email      *string `json:"email" binding:"omitempty,email,max=255"`
	Password   *string `json:"password" binding:"omitempty,min=8,max=72"`
	Department *string `json:"department" binding:"omitempty,max=255"`
	IsManager  *bool   `json:"is_manager"`
	IsActive   *bool   `json:"is_active"`
}

type SalesPersonResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	IsManager  bool   `json:"is_manager"`
	IsActive   bool   `json:"is_active"`
}
