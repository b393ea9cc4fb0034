package lifecycle

// Lifecycle states of a managed game server. The empty string is a valid
// state for records that have never been provisioned and is treated as
// offline.
const (
	ServerOffline        = "SERVER_OFFLINE"
	ServerStartRequested = "SERVER_START_REQUESTED"
	ServerStarting       = "SERVER_STARTING"
	ServerStarted        = "SERVER_STARTED"
	ServerStopRequested  = "SERVER_STOP_REQUESTED"
	ServerStopping       = "SERVER_STOPPING"
)

// IsKnownState reports whether state belongs to the lifecycle enumeration.
// Anything else is an integrity fault and is never silently coerced.
func IsKnownState(state string) bool {
	switch state {
	case "", ServerOffline, ServerStartRequested, ServerStarting, ServerStarted, ServerStopRequested, ServerStopping:
		return true
	}
	return false
}

// IsOnline classifies a server as running or on its way up.
func IsOnline(state string) bool {
	switch state {
	case ServerStartRequested, ServerStarting, ServerStarted:
		return true
	}
	return false
}

// IsStartable reports whether provisioning may begin from the observed
// state. Only fully offline servers qualify; a server already starting or
// stopping must settle first.
func IsStartable(state string) bool {
	return state == "" || state == ServerOffline
}

// IsStoppable reports whether deprovisioning may begin from the observed
// state. Only a fully started server has an instance to shut down.
func IsStoppable(state string) bool {
	return state == ServerStarted
}
