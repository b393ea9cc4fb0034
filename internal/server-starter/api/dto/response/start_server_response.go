package response

type Response struct {
	Message string `json:"message"`
}

type StartServerResponse struct {
	Status         string `json:"status"`
	SpotRequestID  string `json:"spot_request_id"`
	UserData       string `json:"user_data"`
	UserDataBase64 string `json:"user_data_base64"`
}
