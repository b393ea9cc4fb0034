package response

import "time"

type Response struct {
	Message string `json:"message"`
}

type ServerInfoResponse struct {
	ID                int64     `json:"id"`
	ServerName        string    `json:"server_name"`
	ServerState       string    `json:"server_state"`
	ScheduleStartTime *string   `json:"schedule_start_time"`
	ScheduleStopTime  *string   `json:"schedule_stop_time"`
	EC2InstanceID     string    `json:"ec2_instance_id"`
	EC2SpotRequestID  string    `json:"ec2_spot_request_id"`
	EBSVolumeID       string    `json:"ebs_volume_id"`
	InstanceType      string    `json:"instance_type"`
	KeyName           string    `json:"key_name"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
