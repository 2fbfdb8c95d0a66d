package comment

import "time"

type CreateCommentRequest struct {
	Comment string `json:"comment" binding:"required,min=1,max=500"`
}

type CommentResponse struct {
	ID          uint      `json:"id"`
	ReportID    uint      `json:"report_id"`
	ManagerID   uint      `json:"manager_id"`
	ManagerName string    `json:"manager_name,omitempty"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}
