package service

import (
	"errors"
	"fmt"

	"github.com/myysophia/poa-backend/internal/i18n"
	"github.com/myysophia/poa-backend/internal/repository"
)

// ErrInvalidCredentials 用户名或密码错误
var ErrInvalidCredentials = errors.New("invalid username or password")

// UniquenessViolation 简称与其它权限重复
type UniquenessViolation struct {
	Field string // name_en 或 name_ar
	Value string
}

func (e *UniquenessViolation) Error() string {
	return i18n.T(i18n.LangEnglish, e.MessageKey())
}

// MessageKey 返回消息目录中的键
func (e *UniquenessViolation) MessageKey() string {
	if e.Field == repository.ColumnNameAR {
		return i18n.MsgNameARUnique
	}
	return i18n.MsgNameENUnique
}

// ValidationError 批量写入中存在缺少描述的记录
type ValidationError struct {
	// Indexes 未通过校验的记录在本次写入中的下标
	Indexes []int
}

func (e *ValidationError) Error() string {
	return i18n.T(i18n.LangEnglish, e.MessageKey())
}

// MessageKey 返回消息目录中的键
func (e *ValidationError) MessageKey() string {
	return i18n.MsgDescriptionsRequired
}

// NotFoundError 引用的记录不存在
type NotFoundError struct {
	Resource string // permission 或 partner
	IDs      []uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.Resource, e.IDs)
}

// MessageKey 返回消息目录中的键
func (e *NotFoundError) MessageKey() string {
	if e.Resource == ResourcePartner {
		return i18n.MsgPartnerNotFound
	}
	return i18n.MsgPermissionNotFound
}

// 资源名称
const (
	ResourcePermission = "permission"
	ResourcePartner    = "partner"
)

// notFound 仓储层 ErrNotFound 转换为 NotFoundError
func notFound(err error, resource string, ids ...uint) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Resource: resource, IDs: ids}
	}
	return err
}

// uniqueness 仓储层 DuplicateError 转换为 UniquenessViolation
func uniqueness(err error, value func(field string) string) error {
	var dup *repository.DuplicateError
	if errors.As(err, &dup) {
		return &UniquenessViolation{Field: dup.Field, Value: value(dup.Field)}
	}
	return err
}
