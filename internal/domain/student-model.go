package domain

import "time"

type Course string

const (
	CourseBCA       Course = "BCA"
	CourseBScCS     Course = "BSc_CS"
	CourseBTech     Course = "BTech"
	CourseMCA       Course = "MCA"
	CourseMTech     Course = "MTech"
	CourseDiplomaCS Course = "Diploma_CS"
	CourseOther     Course = "Other"
)

type Student struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Email         string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username      string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash  string  `gorm:"not null" json:"-"`
	Name          string  `gorm:"type:varchar(255);not null" json:"name"`
	Course        *Course `gorm:"type:varchar(20)" json:"course,omitempty"`
	AdmissionYear *int    `json:"admissionYear,omitempty"`
	CurrentYear   *int    `json:"currentYear,omitempty"`
	GradYear      *int    `json:"gradYear,omitempty"`

	CollegeID *uint    `gorm:"index" json:"collegeId,omitempty"`
	College   *College `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"college,omitempty"`

	GithubURL *string `json:"githubUrl,omitempty"`
	ResumeURL *string `json:"resumeUrl,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`

	Skills       []StudentSkill   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Applications []JobApplication `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
