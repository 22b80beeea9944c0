package domain

// Statistics aggregates the counters shown on the console dashboard.
type Statistics struct {
	TotalUsers     int64
	ActiveUsers    int64
	SuspendedUsers int64
	TotalPosts     int64
	HiddenPosts    int64
	TotalComments  int64
	OpenReports    int64
}
