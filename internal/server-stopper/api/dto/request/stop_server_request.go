package request

// ServerState is a pointer so the empty string, a valid observed state, is
// distinguishable from an absent field.
type StopServerRequest struct {
	ID          *int64  `json:"id" validate:"required"`
	ServerState *string `json:"server_state" validate:"required"`
}
