package models

import "time"

// Course represents a catalogue entry. The human-assigned courseID is
// checked for uniqueness at creation time only; there is no database
// constraint backing it.
type Course struct {
	ID         string    `db:"id" json:"_id"`
	CourseID   string    `db:"course_id" json:"courseID"`
	CourseName string    `db:"course_name" json:"courseName"`
	Department *string   `db:"department" json:"department,omitempty"`
	Credits    *int      `db:"credits" json:"credits,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// CourseSummary is the trimmed projection nested inside slot views.
type CourseSummary struct {
	ID         string `db:"id" json:"_id"`
	CourseID   string `db:"course_id" json:"courseID"`
	CourseName string `db:"course_name" json:"courseName"`
}

// CourseDetail expands a course with its assigned teachers, mirroring the
// denormalized join the admin directory listing returns.
type CourseDetail struct {
	Course
	Teachers []TeacherSummary `json:"teachers"`
}
