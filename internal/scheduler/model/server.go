package model

// Server is the scan projection the evaluator works with: identity, schedule
// window and current lifecycle state. Schedule times are nullable "HH:MM"
// strings; a record missing either end of the window is not auto-managed.
type Server struct {
	ID                int64
	ScheduleStartTime *string
	ScheduleStopTime  *string
	ServerState       string
}
