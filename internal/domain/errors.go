package domain

import "fmt"

// APIError는 거래소가 반환한 구조화된 에러를 표현합니다.
// 숫자 에러 코드와 메시지를 원문 그대로 보존합니다.
type APIError struct {
	Code    int
	Message string
}

// Error는 error 인터페이스를 구현합니다
func (e *APIError) Error() string {
	return fmt.Sprintf("API 에러(코드: %d): %s", e.Code, e.Message)
}

// ValidationError는 주문 의도의 로컬 검증 실패를 표현합니다
type ValidationError struct {
	Field  string
	Reason string
}

// Error는 error 인터페이스를 구현합니다
func (e *ValidationError) Error() string {
	return fmt.Sprintf("검증 실패 [%s]: %s", e.Field, e.Reason)
}

// NewValidationError는 새로운 ValidationError를 생성합니다
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
