package response

import "time"

type TransitionResponse struct {
	ServerID  int64     `json:"server_id"`
	FromState string    `json:"from_state"`
	ToState   string    `json:"to_state"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}
