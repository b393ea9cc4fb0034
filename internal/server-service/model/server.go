package model

import "time"

// Schedule times are nullable: a server with a partial or absent schedule is
// valid and is simply skipped by the reconciliation scan.
type Server struct {
	ID                int64 `gorm:"primaryKey"`
	ServerName        string
	ServerState       string
	ScheduleStartTime *string
	ScheduleStopTime  *string
	EC2InstanceID     string `gorm:"column:ec2_instance_id"`
	EC2SpotRequestID  string `gorm:"column:ec2_spot_request_id"`
	EBSVolumeID       string `gorm:"column:ebs_volume_id"`
	InstanceType      string
	KeyName           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
