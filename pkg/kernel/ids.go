package kernel

import "strconv"

// Entity identifiers are sequential integers assigned by the persistence
// store (max existing id + 1, starting at 1).

type StudentID int64

func NewStudentID(id int64) StudentID { return StudentID(id) }
func (id StudentID) Int64() int64     { return int64(id) }
func (id StudentID) String() string   { return strconv.FormatInt(int64(id), 10) }
func (id StudentID) IsZero() bool     { return id == 0 }

type EmployerID int64

func NewEmployerID(id int64) EmployerID { return EmployerID(id) }
func (id EmployerID) Int64() int64      { return int64(id) }
func (id EmployerID) String() string    { return strconv.FormatInt(int64(id), 10) }
func (id EmployerID) IsZero() bool      { return id == 0 }

type JobID int64

func NewJobID(id int64) JobID   { return JobID(id) }
func (id JobID) Int64() int64   { return int64(id) }
func (id JobID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id JobID) IsZero() bool   { return id == 0 }

type ApplicationID int64

func NewApplicationID(id int64) ApplicationID { return ApplicationID(id) }
func (id ApplicationID) Int64() int64         { return int64(id) }
func (id ApplicationID) String() string       { return strconv.FormatInt(int64(id), 10) }
func (id ApplicationID) IsZero() bool         { return id == 0 }

type NotificationID int64

func NewNotificationID(id int64) NotificationID { return NotificationID(id) }
func (id NotificationID) Int64() int64          { return int64(id) }
func (id NotificationID) String() string        { return strconv.FormatInt(int64(id), 10) }
func (id NotificationID) IsZero() bool          { return id == 0 }

// ParseJobID parses a route parameter into a JobID
func ParseJobID(s string) (JobID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	return JobID(v), err
}

// ParseStudentID parses a route parameter into a StudentID
func ParseStudentID(s string) (StudentID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	return StudentID(v), err
}

// ParseEmployerID parses a route parameter into an EmployerID
func ParseEmployerID(s string) (EmployerID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	return EmployerID(v), err
}

// ParseApplicationID parses a route parameter into an ApplicationID
func ParseApplicationID(s string) (ApplicationID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	return ApplicationID(v), err
}

// ParseNotificationID parses a route parameter into a NotificationID
func ParseNotificationID(s string) (NotificationID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	return NotificationID(v), err
}
