package request

type ServerRequest struct {
	ServerName        string  `json:"server_name" binding:"required" validate:"required"`
	ScheduleStartTime *string `json:"schedule_start_time" binding:"omitempty,datetime=15:04" validate:"omitempty,datetime=15:04"`
	ScheduleStopTime  *string `json:"schedule_stop_time" binding:"omitempty,datetime=15:04" validate:"omitempty,datetime=15:04"`
	EBSVolumeID       string  `json:"ebs_volume_id"`
	InstanceType      string  `json:"instance_type" binding:"required" validate:"required"`
	KeyName           string  `json:"key_name" binding:"required" validate:"required"`
}
