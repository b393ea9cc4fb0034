package request

// StartServerRequest mirrors the intent payload for direct administrative
// invocation. ServerState is a pointer because the empty string is a valid
// observed state and must be distinguishable from an absent field.
type StartServerRequest struct {
	ID          *int64  `json:"id" validate:"required"`
	ServerState *string `json:"server_state" validate:"required"`
}
