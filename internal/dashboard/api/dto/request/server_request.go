package request

type CreateServerRequest struct {
	Name        string         `json:"name" binding:"required,max=30"`
	Description string         `json:"description"`
	Provider    string         `json:"provider" binding:"required"`
	Instance    string         `json:"instance" binding:"required"`
	Size        string         `json:"size" binding:"required"`
	Region      string         `json:"region" binding:"required"`
	Os          string         `json:"os" binding:"required"`
	RunConfig   map[string]any `json:"run_config" binding:"required"`
}

type ToggleServerRequest struct {
	Action string `json:"action" binding:"required,oneof=start stop"`
}

type ReportRequest struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Email     string `json:"email" binding:"required,email"`
}
