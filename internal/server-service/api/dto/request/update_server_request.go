package request

type UpdateServerRequest struct {
	ServerName        string  `json:"server_name"`
	ScheduleStartTime *string `json:"schedule_start_time" binding:"omitempty,datetime=15:04"`
	ScheduleStopTime  *string `json:"schedule_stop_time" binding:"omitempty,datetime=15:04"`
	EBSVolumeID       string  `json:"ebs_volume_id"`
	InstanceType      string  `json:"instance_type"`
	KeyName           string  `json:"key_name"`
}
