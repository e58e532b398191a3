package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/token"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxJSONBodySize = 1 << 20

// bindJSON 解析body並驗證, 錯誤皆為 ValidationFailedCode
func bindJSON(w http.ResponseWriter, r *http.Request, req any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodySize))
	if err := dec.Decode(req); err != nil {
		return apperr.Wrap(apperr.ValidationFailedCode, "Invalid request body", err)
	}
	return dto.Validate(req)
}

// uuidParam 路徑參數不是合法id時視為找不到資源
func uuidParam(r *http.Request, name string, notFoundMsg string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, apperr.New(apperr.NotFoundCode, notFoundMsg)
	}
	return id, nil
}

// requirePayload 只用在 AuthMiddleware 之後的路由
func requirePayload(r *http.Request) (*token.Payload, error) {
	payload := util.GetTokenPayloadFromContext(r.Context())
	if payload == nil {
		return nil, apperr.New(apperr.UnauthenticatedCode, apperr.ErrStrMap[apperr.UnauthenticatedCode])
	}
	return payload, nil
}

func decimalQuery(r *http.Request, key string) (*decimal.Decimal, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, apperr.Newf(apperr.ValidationFailedCode, "Invalid value for %s", key)
	}
	return &d, nil
}

func floatQuery(r *http.Request, key string) (*float64, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, apperr.Newf(apperr.ValidationFailedCode, "Invalid value for %s", key)
	}
	return &f, nil
}
