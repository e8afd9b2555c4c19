package models

import "time"

// TeacherCourse links a teacher to a course. Existence of the row is what
// authorizes the teacher to post slots for the course.
type TeacherCourse struct {
	ID        string    `db:"id" json:"id"`
	TeacherID string    `db:"teacher_id" json:"teacher_id"`
	CourseID  string    `db:"course_id" json:"course_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
