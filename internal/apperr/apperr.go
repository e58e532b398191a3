package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code int

const (
	InternalErrorCode Code = iota
	ValidationFailedCode
	InsufficientStockCode
	UnauthenticatedCode
	ForbiddenCode
	NotFoundCode
	ConflictCode
	TooManyRequestsCode
)

// 對外訊息, InternalErrorCode 不可帶出任何細節
var ErrStrMap = map[Code]string{
	InternalErrorCode:     "Server error",
	ValidationFailedCode:  "Validation failed",
	InsufficientStockCode: "Insufficient stock",
	UnauthenticatedCode:   "Not authorized, no token",
	ForbiddenCode:         "Not authorized to access this resource",
	NotFoundCode:          "Resource not found",
	ConflictCode:          "Resource already exists",
	TooManyRequestsCode:   "Too many requests, please try again later",
}

var httpStatusMap = map[Code]int{
	InternalErrorCode:     http.StatusInternalServerError,
	ValidationFailedCode:  http.StatusBadRequest,
	InsufficientStockCode: http.StatusBadRequest,
	UnauthenticatedCode:   http.StatusUnauthorized,
	ForbiddenCode:         http.StatusForbidden,
	NotFoundCode:          http.StatusNotFound,
	ConflictCode:          http.StatusConflict,
	TooManyRequestsCode:   http.StatusTooManyRequests,
}

func (c Code) HTTPStatus() int {
	if s, ok := httpStatusMap[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// AppError 服務層統一錯誤
// Message 為可以回給client的訊息, Err 為內部原因只寫進log
type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// PublicMessage 回給client的訊息
func (e *AppError) PublicMessage() string {
	if e.Code == InternalErrorCode {
		return ErrStrMap[InternalErrorCode]
	}
	if e.Message == "" {
		return ErrStrMap[e.Code]
	}
	return e.Message
}

func New(code Code, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

func Newf(code Code, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, msg string, err error) *AppError {
	return &AppError{Code: code, Message: msg, Err: err}
}

// Internal 包裝非預期錯誤
func Internal(err error) *AppError {
	return &AppError{Code: InternalErrorCode, Message: ErrStrMap[InternalErrorCode], Err: err}
}

// From 取出err鏈中的AppError, 非AppError一律視為內部錯誤
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

func CodeOf(err error) Code {
	return From(err).Code
}

func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
