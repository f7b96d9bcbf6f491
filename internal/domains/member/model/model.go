package model

import "sitepro/shared/model"

const (
	TableName  = "project_members"
	EntityName = "project_member"

	FieldID        = "id"
	FieldProjectID = "project_id"
	FieldUserID    = "user_id"
	FieldRole      = "role"
)

type Role string

const (
	RoleSupervisor Role = "SUPERVISOR"
	RoleVendor     Role = "VENDOR"
)

type Member struct {
	ID        string `db:"id"        json:"id"`
	ProjectID string `db:"project_id" json:"projectId"`
	UserID    string `db:"user_id"   json:"userId"`
	Role      Role   `db:"role"      json:"role"`
	model.Metadata
}
