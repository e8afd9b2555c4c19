package models

import "time"

// Application status values. Pending is the only non-terminal state; the
// legacy casing (capitalized Pending, lowercase accepted/rejected) is part
// of the wire contract.
const (
	ApplicationPending  = "Pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Application is a student's request to fill a Slot.
type Application struct {
	ID               string    `db:"id" json:"_id"`
	SlotID           string    `db:"slot_id" json:"slot"`
	CourseID         string    `db:"course_id" json:"course"`
	StudentName      string    `db:"student_name" json:"studentName"`
	StudentEmail     string    `db:"student_email" json:"studentEmail"`
	StudentStatement string    `db:"student_statement" json:"studentStatement"`
	Status           string    `db:"status" json:"status"`
	Favourite        bool      `db:"favourite" json:"favourite"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
}

// Terminal reports whether the application's status can no longer change.
func (a Application) Terminal() bool {
	return a.Status == ApplicationAccepted || a.Status == ApplicationRejected
}

// ApplicationView is the public field subset returned to reviewing teachers.
type ApplicationView struct {
	StudentName      string `db:"student_name" json:"studentName"`
	StudentEmail     string `db:"student_email" json:"studentEmail"`
	SlotID           string `db:"slot_id" json:"slot"`
	Status           string `db:"status" json:"status"`
	StudentStatement string `db:"student_statement" json:"studentStatement"`
	Favourite        bool   `db:"favourite" json:"favourite"`
}
