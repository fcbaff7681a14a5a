package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// uniqueViolationCode PostgreSQL unique_violation
const uniqueViolationCode = "23505"

// 唯一索引名与字段的对应关系
var uniqueConstraintFields = map[string]string{
	"poa_permissions_name_en_unique": "name_en",
	"poa_permissions_name_ar_unique": "name_ar",
}

// DuplicateError 写入触发唯一索引冲突
type DuplicateError struct {
	Field      string
	Constraint string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate value for %s (%s)", e.Field, e.Constraint)
}

// translateError 将驱动错误转换为仓储层错误
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		if field, ok := uniqueConstraintFields[pgErr.ConstraintName]; ok {
			return &DuplicateError{Field: field, Constraint: pgErr.ConstraintName}
		}
	}
	return err
}
