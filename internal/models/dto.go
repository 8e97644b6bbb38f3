package models

type GenerateRequest struct {
	JobDescription string `json:"jobDescription" validate:"required"`
	CompanyName    string `json:"companyName" validate:"required"`
	JobTitle       string `json:"jobTitle" validate:"required"`
	Country        string `json:"country"`
	Source         string `json:"source"`
	ContactEmail   string `json:"contactEmail"`
	CvTheme        string `json:"cvTheme"`
	FollowUp       bool   `json:"followUp"`
}

type ProfileRequest struct {
	Name         string             `json:"name" validate:"required"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email"`
	LinkedinURL  string             `json:"linkedinUrl"`
	GithubURL    string             `json:"githubUrl"`
	Education    Education          `json:"education"`
	Leadership   Leadership         `json:"leadership"`
	MasterSkills map[string]float64 `json:"masterSkills"`
	WorkHistory  string             `json:"workHistory"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

type FollowUpUpdateRequest struct {
	Completed bool `json:"completed"`
}

type DashboardResponse struct {
	TotalApplications int            `json:"totalApplications"`
	StatusCounts      map[string]int `json:"statusCounts"`
}

type PendingFollowUpsResponse struct {
	Count int64 `json:"count"`
}

type ResumeImportResponse struct {
	Filename  string `json:"filename"`
	PageCount int    `json:"page_count"`
	Chars     int    `json:"chars"`
}
