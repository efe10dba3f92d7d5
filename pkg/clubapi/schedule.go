package clubapi

// CreateActivityRequest carries times and fee as entered. Times accept
// RFC 3339 or "2006-01-02T15:04" in the server's zone.
type CreateActivityRequest struct {
	GroupID  string `json:"groupId"`
	Title    string `json:"title"`
	StartsAt string `json:"startsAt"`
	EndsAt   string `json:"endsAt,omitempty"`
	Location string `json:"location"`
	Content  string `json:"content,omitempty"`
	Fee      string `json:"fee,omitempty"`
}

type CreateActivityResponse struct {
	Activity *Activity `json:"activity"`
}

type ListActivitiesRequest struct {
	GroupID string `json:"groupId"`
}

type ListActivitiesResponse struct {
	Activities []*Activity `json:"activities"`
}

type RecordRSVPRequest struct {
	ActivityID string `json:"activityId"`
	Intent     string `json:"intent"`
}

type RecordAttendanceCheckRequest struct {
	ActivityID string `json:"activityId"`
	UserID     string `json:"userId"`
	Actual     string `json:"actual"`
}

type AttendanceResponse struct {
	Attendance *Attendance `json:"attendance"`
}

type ListAttendanceRequest struct {
	ActivityID string `json:"activityId"`
}

type ListAttendanceResponse struct {
	Records []*Attendance `json:"records"`
}
