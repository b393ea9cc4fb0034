package request

type ServerOnlineRequest struct {
	EC2InstanceID string `json:"ec2_instance_id" binding:"required" validate:"required"`
}
