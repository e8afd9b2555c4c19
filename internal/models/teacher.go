package models

import "time"

// Teacher represents an instructor record. Teachers are soft-deleted only:
// is_deleted is flipped, the row stays.
type Teacher struct {
	ID           string    `db:"id" json:"_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	Role         string    `db:"role" json:"role"`
	Department   *string   `db:"department" json:"department,omitempty"`
	IsDeleted    bool      `db:"is_deleted" json:"isDeleted"`
	Active       bool      `db:"active" json:"active"`
	CreatedBy    *string   `db:"created_by" json:"createdby,omitempty"`
	UpdatedBy    *string   `db:"updated_by" json:"updatedby,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// FullName joins the teacher's name parts the way slots denormalize it.
func (t Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}

// TeacherSummary is the trimmed projection returned by the admin roster
// listing and nested inside course/slot views.
type TeacherSummary struct {
	ID        string `db:"id" json:"_id"`
	Email     string `db:"email" json:"email"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
}
