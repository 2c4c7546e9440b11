package domain

import "time"

// Instructor is a teacher profile shown in the catalog
type Instructor struct {
	ID              string
	Name            string
	Bio             string
	Specialties     []string
	ExperienceYears int
	Certifications  []string
	Rating          float64
	TotalStudents   int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
