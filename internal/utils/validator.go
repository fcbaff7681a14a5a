package utils

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	ar_translations "github.com/go-playground/validator/v10/translations/ar"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/myysophia/poa-backend/internal/i18n"
	"github.com/myysophia/poa-backend/internal/logger"
	"go.uber.org/zap"
)

// 全局验证器
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// InitValidator 初始化验证器
func InitValidator() {
	validateOnce.Do(func() {
		validate = validator.New()

		// 错误信息中使用 json 字段名
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		if err := en_translations.RegisterDefaultTranslations(validate, i18n.Translator(i18n.LangEnglish)); err != nil {
			logger.Error("注册英文验证器翻译失败", zap.Error(err))
		}
		if err := ar_translations.RegisterDefaultTranslations(validate, i18n.Translator(i18n.LangArabic)); err != nil {
			logger.Error("注册阿拉伯文验证器翻译失败", zap.Error(err))
		}
	})
}

// BindJSON 绑定 JSON 请求体并验证
func BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.Warn("请求数据绑定失败",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		return err
	}
	return Validate(c, obj)
}

// BindQuery 绑定查询参数并验证
func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		logger.Warn("查询参数绑定失败",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		return err
	}
	return Validate(c, obj)
}

// Validate 验证结构体，错误信息按请求语言翻译
func Validate(c *gin.Context, obj interface{}) error {
	InitValidator()

	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	logger.Warn("数据验证失败",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		trans := i18n.Translator(GetLang(c))
		errMsgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			errMsgs = append(errMsgs, e.Translate(trans))
		}
		return errors.New(strings.Join(errMsgs, "; "))
	}
	return err
}
