package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Education is the single education record kept on the profile.
type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationYear string `json:"graduationYear"`
}

// Leadership is the single leadership/volunteering record kept on the profile.
type Leadership struct {
	Role         string `json:"role"`
	Organization string `json:"organization"`
	Date         string `json:"date"`
}

// UserProfile holds the job-seeker's static data. The master skill set is
// stored as raw JSON because older exports carry it either as a
// skill -> years mapping or as a flat list of names; the repository layer
// normalizes it before it reaches the generation pipeline.
type UserProfile struct {
	ID           uuid.UUID                       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string                          `gorm:"type:text;not null" json:"name"`
	Phone        string                          `gorm:"type:text" json:"phone"`
	Email        string                          `gorm:"type:text" json:"email"`
	LinkedinURL  string                          `gorm:"type:text" json:"linkedinUrl"`
	GithubURL    string                          `gorm:"type:text" json:"githubUrl"`
	Education    datatypes.JSONType[Education]   `gorm:"type:jsonb" json:"education"`
	Leadership   datatypes.JSONType[Leadership]  `gorm:"type:jsonb" json:"leadership"`
	MasterSkills datatypes.JSON                  `gorm:"type:jsonb" json:"masterSkills"`
	WorkHistory  string                          `gorm:"type:text" json:"workHistory"`
	CreatedAt    time.Time                       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time                       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
