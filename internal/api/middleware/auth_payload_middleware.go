package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
)

// 解析token payload, 失敗不中斷請求
// 驗證失敗的原因存在context, 由 AuthMiddleware 決定回應
func AuthPayloadMiddleware(authService service.IAuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			payload, err := authService.Authenticate(ctx, accessToken)
			if err != nil {
				ctx = context.WithValue(ctx, constants.AuthorizationErrorKey, err)
			} else {
				ctx = util.WithTokenPayload(ctx, payload)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authorizationHeader := r.Header.Get(string(constants.AuthorizationHeaderKey))
	if len(authorizationHeader) == 0 {
		return "", false
	}

	fields := strings.Fields(authorizationHeader)
	if len(fields) < 2 {
		return "", false
	}

	if strings.ToLower(fields[0]) != string(constants.AuthorizationTypeBearer) {
		return "", false
	}
	return fields[1], true
}
