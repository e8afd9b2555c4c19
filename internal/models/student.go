package models

import "time"

// Student represents an applicant account.
type Student struct {
	ID            string    `db:"id" json:"_id"`
	Email         string    `db:"email" json:"email"`
	FirstName     string    `db:"first_name" json:"firstName"`
	LastName      string    `db:"last_name" json:"lastName"`
	DegreeProgram *string   `db:"degree_program" json:"degreeProgram,omitempty"`
	Semester      *int      `db:"semester" json:"semester,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// StudentProfile is the public projection teachers see when reviewing an
// applicant.
type StudentProfile struct {
	Email         string  `db:"email" json:"email"`
	FirstName     string  `db:"first_name" json:"firstName"`
	LastName      string  `db:"last_name" json:"lastName"`
	DegreeProgram *string `db:"degree_program" json:"degreeProgram,omitempty"`
	Semester      *int    `db:"semester" json:"semester,omitempty"`
}
