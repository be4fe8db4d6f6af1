package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultNumPanels は numPanels 省略時に適用されるコマ数です。
	DefaultNumPanels = 6
	// MinNumPanels と MaxNumPanels は要求できるコマ数の範囲です。
	MinNumPanels = 2
	MaxNumPanels = 10
	// MinSceneDescriptionLength はシーン説明に必要な最小文字数です。
	MinSceneDescriptionLength = 20
)

// SceneInput は検証前の生のリクエストです。NumPanels が nil の場合は省略扱いになります。
type SceneInput struct {
	SceneDescription string  `json:"sceneDescription" yaml:"sceneDescription" validate:"required,min=20"`
	NumPanels        *int    `json:"numPanels,omitempty" yaml:"numPanels,omitempty" validate:"omitnil,min=2,max=10"`
	StylePreset      *string `json:"stylePreset,omitempty" yaml:"stylePreset,omitempty"`
}

// SceneRequest は検証とデフォルト適用を終えたリクエストです。
type SceneRequest struct {
	SceneDescription string `json:"sceneDescription"`
	NumPanels        int    `json:"numPanels"`
	StylePreset      string `json:"stylePreset,omitempty"`
}

// HasStyle はスタイルプリセットが指定されているかを返します。
func (r SceneRequest) HasStyle() bool {
	return r.StylePreset != ""
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateSceneInput は入力を検証し、デフォルト値を適用した SceneRequest を返します。
// 失敗時は *ValidationError を返します。
func ValidateSceneInput(in SceneInput) (SceneRequest, error) {
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return SceneRequest{}, &ValidationError{}
		}
		violations := make([]FieldViolation, 0, len(verrs))
		for _, fe := range verrs {
			violations = append(violations, FieldViolation{
				Field: fe.Field(),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
		return SceneRequest{}, &ValidationError{Violations: violations}
	}

	req := SceneRequest{
		SceneDescription: in.SceneDescription,
		NumPanels:        DefaultNumPanels,
	}
	if in.NumPanels != nil {
		req.NumPanels = *in.NumPanels
	}
	if in.StylePreset != nil {
		req.StylePreset = strings.TrimSpace(*in.StylePreset)
	}
	return req, nil
}
