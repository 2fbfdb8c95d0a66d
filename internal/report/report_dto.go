package report

type VisitRecordRequest struct {
	CustomerID   uint    `json:"customer_id" binding:"required,gte=1"`
	VisitTime    *string `json:"visit_time" binding:"omitempty,hhmm"`
	VisitContent string  `json:"visit_content" binding:"required,min=1,max=500"`
}

type CreateReportRequest struct {
	ReportDate string               `json:"report_date" binding:"required,datetime=2006-01-02"`
	Problem    string               `json:"problem" binding:"required,min=1,max=1000"`
	Plan       string               `json:"plan" binding:"required,min=1,max=1000"`
	Visits     []VisitRecordRequest `json:"visits" binding:"required,min=1,dive"`
}

// UpdateReportRequest replaces the supplied fields; when Visits is present
// the existing visit set is superseded in full.
type UpdateReportRequest struct {
	Problem *string              `json:"problem" binding:"omitempty,min=1,max=1000"`
	Plan    *string              `json:"plan" binding:"omitempty,min=1,max=1000"`
	Visits  []VisitRecordRequest `json:"visits" binding:"omitempty,min=1,dive"`
}

type ListReportsQuery struct {
	SalesPersonID uint   `form:"sales_person_id"`
	DateFrom      string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo        string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}

type VisitRecordResponse struct {
	ID           uint    `json:"id"`
	CustomerID   uint    `json:"customer_id"`
	CustomerName string  `json:"customer_name,omitempty"`
	VisitTime    *string `json:"visit_time,omitempty"`
	VisitContent string  `json:"visit_content"`
}

type ReportResponse struct {
	ID              uint                  `json:"id"`
	SalesPersonID   uint                  `json:"sales_person_id"`
	SalesPersonName string                `json:"sales_person_name,omitempty"`
	ReportDate      string                `json:"report_date"`
	Problem         string                `json:"problem"`
	Plan            string                `json:"plan"`
	Visits          []VisitRecordResponse `json:"visits"`
}
