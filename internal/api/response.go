package api

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/rs/zerolog"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ListResponse struct {
	Success    bool             `json:"success"`
	Count      int              `json:"count"`
	Total      int64            `json:"total"`
	Pagination *util.Pagination `json:"pagination,omitempty"`
	Data       any              `json:"data"`
}

type ResponseError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// SuccessJSON 200, message 可為空
func SuccessJSON(w http.ResponseWriter, data any, message string) {
	WriteJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func CreatedJSON(w http.ResponseWriter, data any, message string) {
	WriteJSON(w, http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// ListJSON 列表回應, pagination 為nil時不輸出
func ListJSON(w http.ResponseWriter, data any, count int, total int64, pagination *util.Pagination) {
	WriteJSON(w, http.StatusOK, ListResponse{
		Success:    true,
		Count:      count,
		Total:      total,
		Pagination: pagination,
		Data:       data,
	})
}

func ErrorJSON(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ResponseError{Success: false, Message: message})
}

/*
AppErrorJSON 將service錯誤轉成http回應
非預期錯誤只回傳 "Server error", 細節寫進request logger
*/
func AppErrorJSON(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.From(err)
	status := appErr.Code.HTTPStatus()

	logger := zerolog.Ctx(r.Context())
	if appErr.Code == apperr.InternalErrorCode {
		logger.Error().Err(appErr.Err).Str("method", r.Method).Str("url", r.URL.Path).Msg("request failed")
	} else {
		logger.Debug().Int("status", status).Str("reason", appErr.Message).Msg("request rejected")
	}

	ErrorJSON(w, status, appErr.PublicMessage())
}
