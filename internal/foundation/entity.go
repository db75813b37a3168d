// AngelaMos | 2026
// entity.go

package foundation

import (
	"time"
)

type Program struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Type        string     `db:"type"`
	StartDate   time.Time  `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	Location    string     `db:"location"`
	Capacity    int        `db:"capacity"`
	AgeGroup    *string    `db:"age_group"`
	Price       *float64   `db:"price"`
	IsActive    bool       `db:"is_active"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

type Enrollment struct {
	ID            string    `db:"id"`
	ProgramID     string    `db:"program_id"`
	StudentName   string    `db:"student_name"`
	StudentAge    int       `db:"student_age"`
	GuardianName  string    `db:"guardian_name"`
	GuardianEmail string    `db:"guardian_email"`
	GuardianPhone string    `db:"guardian_phone"`
	Status        string    `db:"status"`
	EnrolledAt    time.Time `db:"enrolled_at"`
}

const EnrollmentPending = "PENDING"
