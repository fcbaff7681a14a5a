package models

// Partner 客户模型
type Partner struct {
	Model
	Name        string        `gorm:"size:255;not null" json:"name"`
	Email       string        `gorm:"size:255" json:"email"`
	Lang        string        `gorm:"size:16" json:"lang"`
	Permissions []*Permission `gorm:"many2many:poa_permission_partner_rel;joinForeignKey:PartnerID;joinReferences:PermissionID" json:"permissions,omitempty"`
}

// TableName 指定表名
func (Partner) TableName() string {
	return "partners"
}
