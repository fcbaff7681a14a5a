package models

// Permission 授权书权限模型
// 英文、阿拉伯文简称可选但各自唯一，两种语言的描述必填
type Permission struct {
	Model
	NameEN        string     `gorm:"column:name_en;size:255" json:"name_en"`
	NameAR        string     `gorm:"column:name_ar;size:255" json:"name_ar"`
	DescriptionEN string     `gorm:"column:description_en;type:text;not null" json:"description_en"`
	DescriptionAR string     `gorm:"column:description_ar;type:text;not null" json:"description_ar"`
	Partners      []*Partner `gorm:"many2many:poa_permission_partner_rel;joinForeignKey:PermissionID;joinReferences:PartnerID" json:"partners,omitempty"`

	// DisplayName 按请求语言在读取时计算，不落库
	DisplayName string `gorm:"-" json:"display_name"`
}

// TableName 指定表名
func (Permission) TableName() string {
	return "poa_permissions"
}

// PermissionPartnerTable 权限与客户的关联表
const PermissionPartnerTable = "poa_permission_partner_rel"
