package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"go_4_vocab_srs/internal/model"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンス
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータ
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"term":             "単語",
	"definition":       "意味",
	"example":          "例文",
	"part_of_speech":   "品詞",
	"difficulty":       "難易度",
	"grade":            "評価",
	"is_correct":       "回答の正誤",
	"response_time_ms": "回答時間",
	"confidence":       "自信度",
}

func translateFieldName(field string) string {
	if name, ok := fieldNameTranslations[field]; ok {
		return name
	}
	return field
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得する
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateFieldName(fe.Field()), fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("required_without", "{0}は{1}を指定しない場合は必須です。")
	registerTranslation("oneof", "{0}は[{1}]のいずれかで指定してください。")

	// min / max は文字列なら文字数、数値なら値の範囲
	registerBound := func(tag, strMsg, numMsg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			if err := ut.Add(tag+"-string", strMsg, true); err != nil {
				return err
			}
			return ut.Add(tag+"-number", numMsg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			key := tag + "-number"
			if fe.Kind() == reflect.String {
				key = tag + "-string"
			}
			t, _ := ut.T(key, translateFieldName(fe.Field()), fe.Param())
			return t
		})
	}
	registerBound("min", "{0}は{1}文字以上で入力してください。", "{0}は{1}以上で指定してください。")
	registerBound("max", "{0}は{1}文字以下で入力してください。", "{0}は{1}以下で指定してください。")
}

// ValidateStruct は構造体のバリデーションを行い、失敗時は VALIDATION_ERROR を返す
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return NewValidationErrorResponse(verrs)
	}
	return model.NewAppError("VALIDATION_ERROR", "入力値が正しくありません。", "", model.ErrInvalidInput)
}
