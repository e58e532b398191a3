package middleware

import (
	"fmt"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/util"
)

// 驗證ctx是否有token payload
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if util.GetTokenPayloadFromContext(r.Context()) == nil {
			if err, ok := r.Context().Value(constants.AuthorizationErrorKey).(error); ok {
				api.AppErrorJSON(w, r, err)
				return
			}
			api.ErrorJSON(w, http.StatusUnauthorized, apperr.ErrStrMap[apperr.UnauthenticatedCode])
			return
		}
		next.ServeHTTP(w, r)
	})
}

// 需放在 AuthMiddleware 之後
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := util.GetTokenPayloadFromContext(r.Context())
		if payload == nil {
			api.ErrorJSON(w, http.StatusUnauthorized, apperr.ErrStrMap[apperr.UnauthenticatedCode])
			return
		}
		if !payload.IsAdmin() {
			api.ErrorJSON(w, http.StatusForbidden, fmt.Sprintf("User role %s is not authorized to access this route", payload.Role))
			return
		}
		next.ServeHTTP(w, r)
	})
}
