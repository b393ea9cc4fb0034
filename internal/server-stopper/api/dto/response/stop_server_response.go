package response

type Response struct {
	Message string `json:"message"`
}

type StopServerResponse struct {
	Status    string `json:"status"`
	CommandID string `json:"command_id"`
}
