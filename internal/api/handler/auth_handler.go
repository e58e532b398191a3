package handler

import (
	"net/http"
	"reflect"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	if authService == nil || reflect.ValueOf(authService).IsNil() {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
	}
}

// @Summary register
// @Description 註冊一般使用者並直接登入
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterDTO true "register info"
// @Success 201 {object} api.Response{data=service.AuthResult} "success"
// @Failure 400 {object} api.ResponseError "ValidationFailed"
// @Failure 409 {object} api.ResponseError "email already exists"
// @Failure 429 {object} api.ResponseError "too many authentication attempts"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	result, err := h.authService.Register(r.Context(), req.ToParams())
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.CreatedJSON(w, result, "")
}

// @Summary login
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "email and password"
// @Success 200 {object} api.Response{data=service.AuthResult} "success"
// @Failure 400 {object} api.ResponseError "ValidationFailed"
// @Failure 401 {object} api.ResponseError "Invalid credentials"
// @Failure 429 {object} api.ResponseError "too many authentication attempts"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, result, "")
}

// @Summary admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "email and password"
// @Success 200 {object} api.Response{data=service.AuthResult} "success"
// @Failure 401 {object} api.ResponseError "Invalid credentials"
// @Failure 403 {object} api.ResponseError "not an admin"
// @Router /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	result, err := h.authService.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, result, "")
}

// @Summary admin register
// @Description 由admin建立另一個admin帳號
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterDTO true "register info"
// @Success 201 {object} api.Response{data=model.User} "success"
// @Failure 400 {object} api.ResponseError "ValidationFailed"
// @Failure 403 {object} api.ResponseError "not an admin"
// @Failure 409 {object} api.ResponseError "email already exists"
// @Security ApiKeyAuth
// @Router /auth/admin/register [post]
func (h *AuthHandler) AdminRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	user, err := h.authService.AdminRegister(r.Context(), req.ToParams())
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.CreatedJSON(w, user, "Admin user created successfully")
}

// @Summary logout
// @Description 撤銷目前的access token, 沒有帶token時同樣回傳成功
// @Tags auth
// @Produce json
// @Success 200 {object} api.Response "success"
// @Security ApiKeyAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if payload := util.GetTokenPayloadFromContext(r.Context()); payload != nil {
		if err := h.authService.Logout(r.Context(), payload); err != nil {
			api.AppErrorJSON(w, r, err)
			return
		}
	}
	api.SuccessJSON(w, nil, "User logged out successfully")
}

// @Summary current user
// @Tags auth
// @Produce json
// @Success 200 {object} api.Response{data=model.User} "success"
// @Failure 401 {object} api.ResponseError "Unauthenticated"
// @Security ApiKeyAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	user, err := h.authService.Me(r.Context(), payload.UserID)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, user, "")
}

// @Summary update profile
// @Tags auth
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileDTO true "fields to update"
// @Success 200 {object} api.Response{data=model.User} "success"
// @Failure 400 {object} api.ResponseError "ValidationFailed"
// @Failure 401 {object} api.ResponseError "Unauthenticated"
// @Security ApiKeyAuth
// @Router /auth/update-profile [put]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	var req dto.UpdateProfileDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	user, err := h.authService.UpdateProfile(r.Context(), payload.UserID, req.ToParams())
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, user, "")
}

// @Summary change password
// @Tags auth
// @Accept json
// @Produce json
// @Param passwords body dto.ChangePasswordDTO true "current and new password"
// @Success 200 {object} api.Response "success"
// @Failure 400 {object} api.ResponseError "current password is incorrect"
// @Failure 401 {object} api.ResponseError "Unauthenticated"
// @Security ApiKeyAuth
// @Router /auth/change-password [put]
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	var req dto.ChangePasswordDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), payload.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, nil, "Password updated successfully")
}

// @Summary forgot password
// @Description 寄送重設密碼信, email不存在時同樣回傳成功
// @Tags auth
// @Accept json
// @Produce json
// @Param email body dto.ForgotPasswordDTO true "account email"
// @Success 200 {object} api.Response "success"
// @Failure 500 {object} api.ResponseError "email could not be sent"
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgotPasswordDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), req.Email); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, nil, "Email sent")
}

// @Summary reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param resettoken path string true "reset token from the email"
// @Param password body dto.ResetPasswordDTO true "new password"
// @Success 200 {object} api.Response{data=service.AuthResult} "success"
// @Failure 400 {object} api.ResponseError "invalid or expired reset token"
// @Router /auth/reset-password/{resettoken} [put]
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	result, err := h.authService.ResetPassword(r.Context(), chi.URLParam(r, "resettoken"), req.Password)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, result, "")
}
