package models

import "time"

// Slot is a posted TA position tied to one course and one owning teacher.
// Teacher name and email are denormalized onto the row at creation time and
// are not rewritten when the teacher record changes.
type Slot struct {
	ID                  string    `db:"id" json:"_id"`
	SectionID           string    `db:"section_id" json:"sectionId"`
	TeacherID           string    `db:"teacher_id" json:"-"`
	CourseID            string    `db:"course_id" json:"-"`
	TeacherName         string    `db:"teacher_name" json:"teacherName"`
	TeacherEmail        string    `db:"teacher_email" json:"teacherEmail"`
	Requirements        string    `db:"requirements" json:"requirements"`
	Duration            string    `db:"duration" json:"duration"`
	WorkHours           int       `db:"work_hours" json:"workHours"`
	ApplicationDeadline time.Time `db:"application_deadline" json:"applicationDeadline"`
	Description         string    `db:"description" json:"description"`
	CreatedAt           time.Time `db:"created_at" json:"createdAt"`
}

// SlotView is the section lookup projection with nested teacher and course
// summaries.
type SlotView struct {
	ID                  string         `json:"_id"`
	SectionID           string         `json:"sectionId"`
	Requirements        string         `json:"requirements"`
	Duration            string         `json:"duration"`
	WorkHours           int            `json:"workHours"`
	ApplicationDeadline time.Time      `json:"applicationDeadline"`
	CreatedAt           time.Time      `json:"createdAt"`
	Teacher             TeacherSummary `json:"teacher"`
	Course              CourseSummary  `json:"course"`
}

// SlotViewRow is the flat join row scanned from the database before being
// folded into a SlotView.
type SlotViewRow struct {
	ID                  string    `db:"id"`
	SectionID           string    `db:"section_id"`
	Requirements        string    `db:"requirements"`
	Duration            string    `db:"duration"`
	WorkHours           int       `db:"work_hours"`
	ApplicationDeadline time.Time `db:"application_deadline"`
	CreatedAt           time.Time `db:"created_at"`
	TeacherID           string    `db:"teacher_id"`
	TeacherEmail        string    `db:"teacher_email"`
	TeacherFirstName    string    `db:"teacher_first_name"`
	TeacherLastName     string    `db:"teacher_last_name"`
	CourseRef           string    `db:"course_ref"`
	CourseID            string    `db:"course_code"`
	CourseName          string    `db:"course_name"`
}

// View folds the join row into the nested projection.
func (r SlotViewRow) View() SlotView {
	return SlotView{
		ID:                  r.ID,
		SectionID:           r.SectionID,
		Requirements:        r.Requirements,
		Duration:            r.Duration,
		WorkHours:           r.WorkHours,
		ApplicationDeadline: r.ApplicationDeadline,
		CreatedAt:           r.CreatedAt,
		Teacher: TeacherSummary{
			ID:        r.TeacherID,
			Email:     r.TeacherEmail,
			FirstName: r.TeacherFirstName,
			LastName:  r.TeacherLastName,
		},
		Course: CourseSummary{
			ID:         r.CourseRef,
			CourseID:   r.CourseID,
			CourseName: r.CourseName,
		},
	}
}
