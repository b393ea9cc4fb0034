package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnownState(t *testing.T) {
	for _, state := range []string{"", ServerOffline, ServerStartRequested, ServerStarting, ServerStarted, ServerStopRequested, ServerStopping} {
		assert.True(t, IsKnownState(state), state)
	}
	assert.False(t, IsKnownState("RUNNING"))
	assert.False(t, IsKnownState("server_started"))
}

func TestStateClassification(t *testing.T) {
	tests := []struct {
		state     string
		online    bool
		startable bool
		stoppable bool
	}{
		{state: "", startable: true},
		{state: ServerOffline, startable: true},
		{state: ServerStartRequested, online: true},
		{state: ServerStarting, online: true},
		{state: ServerStarted, online: true, stoppable: true},
		{state: ServerStopRequested},
		{state: ServerStopping},
	}

	for _, tt := range tests {
		name := tt.state
		if name == "" {
			name = "Empty"
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.online, IsOnline(tt.state))
			assert.Equal(t, tt.startable, IsStartable(tt.state))
			assert.Equal(t, tt.stoppable, IsStoppable(tt.state))
		})
	}
}

func TestPreconditionError(t *testing.T) {
	err := PreconditionError(ServerStarting, "deprovisioning")
	assert.ErrorIs(t, err, ErrStatePrecondition)
	assert.Contains(t, err.Error(), ServerStarting)
	assert.Contains(t, err.Error(), "deprovisioning")
}

func TestUnknownStateError(t *testing.T) {
	err := UnknownStateError("BOGUS")
	assert.ErrorIs(t, err, ErrUnknownServerState)
	assert.Contains(t, err.Error(), "BOGUS")
}
