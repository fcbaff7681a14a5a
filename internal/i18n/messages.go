package i18n

import (
	"sync"

	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

// 消息键
const (
	MsgSuccess              = "success"
	MsgInvalidParams        = "invalid_params"
	MsgUnauthorized         = "unauthorized"
	MsgForbidden            = "forbidden"
	MsgNotFound             = "not_found"
	MsgInternalError        = "internal_error"
	MsgDescriptionsRequired = "descriptions_required"
	MsgNameENUnique         = "name_en_unique"
	MsgNameARUnique         = "name_ar_unique"
	MsgPermissionNotFound   = "permission_not_found"
	MsgPartnerNotFound      = "partner_not_found"
	MsgInvalidCredentials   = "invalid_credentials"
)

var catalog = map[string]map[string]string{
	LangEnglish: {
		MsgSuccess:              "Success",
		MsgInvalidParams:        "Invalid parameters",
		MsgUnauthorized:         "Unauthorized",
		MsgForbidden:            "Forbidden",
		MsgNotFound:             "Resource not found",
		MsgInternalError:        "Internal server error",
		MsgDescriptionsRequired: "Both English and Arabic permission descriptions are required.",
		MsgNameENUnique:         "English permission name must be unique.",
		MsgNameARUnique:         "Arabic permission name must be unique.",
		MsgPermissionNotFound:   "Permission {0} not found.",
		MsgPartnerNotFound:      "Partner {0} not found.",
		MsgInvalidCredentials:   "Invalid username or password",
	},
	LangArabic: {
		MsgSuccess:              "تمت العملية بنجاح",
		MsgInvalidParams:        "معاملات غير صالحة",
		MsgUnauthorized:         "غير مصرح",
		MsgForbidden:            "ممنوع",
		MsgNotFound:             "المورد غير موجود",
		MsgInternalError:        "خطأ داخلي في الخادم",
		MsgDescriptionsRequired: "وصف الصلاحية باللغتين الإنجليزية والعربية مطلوب.",
		MsgNameENUnique:         "يجب أن يكون اسم الصلاحية بالإنجليزية فريدًا.",
		MsgNameARUnique:         "يجب أن يكون اسم الصلاحية بالعربية فريدًا.",
		MsgPermissionNotFound:   "الصلاحية {0} غير موجودة.",
		MsgPartnerNotFound:      "العميل {0} غير موجود.",
		MsgInvalidCredentials:   "اسم المستخدم أو كلمة المرور غير صحيحة",
	},
}

var (
	once sync.Once
	uni  *ut.UniversalTranslator
)

func setup() {
	enLocale := en.New()
	uni = ut.New(enLocale, enLocale, ar.New())

	for lang, messages := range catalog {
		trans, _ := uni.GetTranslator(lang)
		for key, text := range messages {
			// 目录在编译期固定，Add 只会因重复键失败
			_ = trans.Add(key, text, true)
		}
	}
}

// Translator 返回语言对应的翻译器，非阿拉伯语一律使用英文
func Translator(lang string) ut.Translator {
	once.Do(setup)
	trans, _ := uni.GetTranslator(Base(lang))
	return trans
}

// T 翻译消息键，params 依次替换 {0}、{1} ...
func T(lang, key string, params ...string) string {
	msg, err := Translator(lang).T(key, params...)
	if err != nil {
		return key
	}
	return msg
}
