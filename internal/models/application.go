package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type ApplicationStatus string

const (
	StatusApplied      ApplicationStatus = "APPLIED"
	StatusInterviewing ApplicationStatus = "INTERVIEWING"
	StatusOffer        ApplicationStatus = "OFFER"
	StatusRejected     ApplicationStatus = "REJECTED"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusInterviewing, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Application is the persisted outcome of one generation request plus the
// tracking metadata the user supplied with it.
type Application struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserProfileID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_profile_id"`

	CompanyName    string `gorm:"type:text;not null" json:"companyName"`
	JobTitle       string `gorm:"type:text;not null" json:"jobTitle"`
	JobDescription string `gorm:"type:text" json:"jobDescription"`
	Country        string `gorm:"type:text" json:"country"`
	Source         string `gorm:"type:text" json:"source"`
	ContactEmail   string `gorm:"type:text" json:"contactEmail,omitempty"`

	GeneratedCv   datatypes.JSONType[CvContent] `gorm:"type:jsonb" json:"generatedCv"`
	CvTheme       string                        `gorm:"type:text" json:"cvTheme"`
	CvPdfFilename string                        `gorm:"type:text" json:"cvPdfFilename"`

	Status            ApplicationStatus `gorm:"type:text;not null;default:'APPLIED'" json:"status"`
	FollowUp          bool              `gorm:"not null;default:false" json:"followUp"`
	FollowUpDate      *time.Time        `json:"followUpDate,omitempty"`
	FollowUpCompleted bool              `gorm:"not null;default:false" json:"followUpCompleted"`
	AppliedAt         time.Time         `gorm:"not null" json:"appliedAt"`

	RequiredSkills       pq.StringArray `gorm:"type:text[]" json:"requiredSkills"`
	MissingSkills        pq.StringArray `gorm:"type:text[]" json:"missingSkills"`
	SkillMatchPercentage float64        `gorm:"not null;default:0" json:"skillMatchPercentage"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	UserProfile UserProfile `gorm:"foreignKey:UserProfileID" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}
