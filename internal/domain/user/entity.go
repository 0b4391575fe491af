package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"      // Manages users, geofences, networks, schedules
	RoleSupervisor Role = "supervisor" // Can review attendance and incidences
	RoleTeacher    Role = "teacher"    // Regular staff member marking attendance
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user can manage reference data.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanReview checks if the user can access other users' attendance records.
func (u *User) CanReview() bool {
	return u.Role == RoleAdmin || u.Role == RoleSupervisor
}
