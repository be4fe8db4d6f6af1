package domain

import (
	"errors"
	"strings"
)

// PlanningFailureMessage は PlanningError が呼び出し元に返す固定メッセージです。
const PlanningFailureMessage = "Failed to generate textual descriptions for storyboard panels."

var (
	// ErrInvalidSceneRequest は入力検証に失敗したことを示します。
	ErrInvalidSceneRequest = errors.New("invalid scene request")
	// ErrPlanningFailed はシーン分解に失敗したことを示します。
	ErrPlanningFailed = errors.New("storyboard planning failed")
)

// FieldViolation は検証に失敗した1フィールド分の情報です。
type FieldViolation struct {
	Field string // JSON 上のフィールド名
	Rule  string // 違反したルール (required, min, max など)
	Param string
}

// ValidationError は SceneInput の検証失敗を表します。
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrInvalidSceneRequest.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.describe())
	}
	return ErrInvalidSceneRequest.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidSceneRequest
}

func (v FieldViolation) describe() string {
	switch v.Rule {
	case "required":
		return v.Field + " is required"
	case "min":
		if v.Field == "sceneDescription" {
			return v.Field + " must be at least " + v.Param + " characters"
		}
		return v.Field + " must be at least " + v.Param
	case "max":
		return v.Field + " must be at most " + v.Param
	default:
		return v.Field + " failed " + v.Rule
	}
}

// PlanningError はテキストバックエンドによるシーン分解の失敗を表します。
// Error() は常に PlanningFailureMessage を返し、原因は Unwrap で取得できます。
type PlanningError struct {
	Cause error
}

// NewPlanningError は原因を保持した PlanningError を返します。
func NewPlanningError(cause error) *PlanningError {
	return &PlanningError{Cause: cause}
}

func (e *PlanningError) Error() string {
	return PlanningFailureMessage
}

func (e *PlanningError) Unwrap() error {
	return e.Cause
}

func (e *PlanningError) Is(target error) bool {
	return target == ErrPlanningFailed
}
