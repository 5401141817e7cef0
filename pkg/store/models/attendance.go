package models

// Attendance is one check-in/check-out row. The member id is not required to
// resolve against the members file; the legacy data contains orphaned rows
// and they must keep loading.
type Attendance struct {
	ID       string `json:"attendance_id"`
	MemberID string `json:"member_id"`
	Date     string `json:"date"`
	CheckIn  string `json:"checkin"`
	CheckOut string `json:"checkout"`
}
