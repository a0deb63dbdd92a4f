package model

import "time"

// Profile holds the display fields of a user. Address is only set for
// patients, Specialization only for doctors.
type Profile struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	Name           string    `db:"name"`
	Age            int       `db:"age"`
	Address        string    `db:"address"`
	Specialization string    `db:"specialization"`
	Mobile         string    `db:"mobile"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
