package domain

import (
	"time"

	"github.com/lib/pq"
)

type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeInternship JobType = "INTERNSHIP"
	JobTypeContract   JobType = "CONTRACT"
)

type JobMode string

const (
	JobModeRemote JobMode = "REMOTE"
	JobModeOnsite JobMode = "ONSITE"
	JobModeHybrid JobMode = "HYBRID"
)

type Job struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	CompanyID   uint    `gorm:"not null;index" json:"companyId"`
	Title       string  `gorm:"type:varchar(50);not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Location    string  `gorm:"type:varchar(100)" json:"location"`
	JobType     JobType `gorm:"type:varchar(20)" json:"jobType"`
	JobMode     JobMode `gorm:"type:varchar(20)" json:"jobMode"`

	// values are Skill strings; pq.StringArray maps to a postgres text[]
	RequiredSkills pq.StringArray `gorm:"type:text[];default:'{}'" json:"requiredSkills"`

	Applications []JobApplication `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Skills returns the required skills as enum values.
func (j Job) Skills() []Skill {
	out := make([]Skill, 0, len(j.RequiredSkills))
	for _, s := range j.RequiredSkills {
		out = append(out, Skill(s))
	}
	return out
}
