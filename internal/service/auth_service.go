package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/storefront/internal/token"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const resetTokenBytes = 20

type AuthConfig struct {
	AccessTokenDuration time.Duration
	ResetTokenTTL       time.Duration
	// 前端網址, 重設密碼連結為 PublicURL/reset-password/<token>
	PublicURL   string
	CompanyName string
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type UpdateProfileParams struct {
	Name    *string
	Phone   *string
	Address *model.UserAddress
}

type AuthResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      *model.User `json:"user"`
}

type IAuthService interface {
	// Register 註冊一般使用者並直接登入
	//
	// 錯誤:
	//   - apperr.ConflictCode 409: email已被使用
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)
	// Login email + 密碼登入
	//
	// 錯誤:
	//   - apperr.UnauthenticatedCode 401: 帳號不存在, 密碼錯誤, 或帳號已停用
	Login(ctx context.Context, email string, password string) (*AuthResult, error)
	// AdminLogin 同 Login, 但只允許admin
	//
	// 錯誤:
	//   - apperr.UnauthenticatedCode 401: 帳號不存在, 密碼錯誤, 或帳號已停用
	//   - apperr.ForbiddenCode 403: 非admin
	AdminLogin(ctx context.Context, email string, password string) (*AuthResult, error)
	// AdminRegister 由admin建立另一個admin帳號
	AdminRegister(ctx context.Context, params RegisterParams) (*model.User, error)
	// Authenticate 驗證access token, 已登出的token視為無效
	//
	// 錯誤:
	//   - apperr.UnauthenticatedCode 401: token無效, 過期, 或已撤銷
	Authenticate(ctx context.Context, accessToken string) (*token.Payload, error)
	// Logout 撤銷目前的access token直到原本的過期時間
	Logout(ctx context.Context, payload *token.Payload) error
	Me(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) (*model.User, error)
	// ChangePassword 需提供目前密碼
	//
	// 錯誤:
	//   - apperr.ValidationFailedCode 400: 目前密碼錯誤
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword string, newPassword string) error
	// ForgotPassword 寄送重設密碼信, email不存在時同樣回傳成功
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword 以一次性token重設密碼並直接登入
	//
	// 錯誤:
	//   - apperr.ValidationFailedCode 400: token無效或已過期
	ResetPassword(ctx context.Context, resetToken string, newPassword string) (*AuthResult, error)
	// EnsureAdmin 系統內沒有任何admin時建立預設admin
	EnsureAdmin(ctx context.Context, name string, email string, password string) error
}

type AuthService struct {
	store       db.IStore
	tokenMaker  token.Maker
	tokenRepo   redis_repo.ITokenRedisRepository
	mailService IMailService
	cfg         AuthConfig
	now         func() time.Time
	logger      *zerolog.Logger
}

func NewAuthService(store db.IStore, tokenMaker token.Maker, tokenRepo redis_repo.ITokenRedisRepository, mailService IMailService, cfg AuthConfig, logger *zerolog.Logger) IAuthService {
	if reflect.ValueOf(store).IsNil() {
		panic("auth service initialization failed: store cannot be nil")
	}
	if reflect.ValueOf(tokenMaker).IsNil() {
		panic("auth service initialization failed: tokenMaker cannot be nil")
	}
	if reflect.ValueOf(tokenRepo).IsNil() {
		panic("auth service initialization failed: tokenRepo cannot be nil")
	}
	if reflect.ValueOf(mailService).IsNil() {
		panic("auth service initialization failed: mailService cannot be nil")
	}
	if logger == nil {
		panic("auth service initialization failed: logger cannot be nil")
	}
	if cfg.AccessTokenDuration <= 0 {
		cfg.AccessTokenDuration = 24 * time.Hour
	}
	if cfg.ResetTokenTTL <= 0 {
		cfg.ResetTokenTTL = 10 * time.Minute
	}
	return &AuthService{
		store:       store,
		tokenMaker:  tokenMaker,
		tokenRepo:   tokenRepo,
		mailService: mailService,
		cfg:         cfg,
		now:         time.Now,
		logger:      logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AuthService) issueToken(user *model.User) (*AuthResult, error) {
	accessToken, payload, err := a.tokenMaker.CreateToken(user.ID, user.Email, string(user.Role), a.cfg.AccessTokenDuration)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &AuthResult{Token: accessToken, ExpiresAt: payload.ExpiredAt, User: user}, nil
}

func (a *AuthService) createUser(ctx context.Context, params RegisterParams, role model.Role) (*model.User, error) {
	hashed, err := util.HashPassword(params.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	user := &model.User{
		Name:         strings.TrimSpace(params.Name),
		Email:        normalizeEmail(params.Email),
		PasswordHash: hashed,
		Phone:        params.Phone,
		Role:         role,
		IsActive:     true,
		IsVerified:   role == model.RoleAdmin,
	}
	if err := a.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return nil, apperr.New(apperr.ConflictCode, "User already exists with this email")
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func (a *AuthService) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	user, err := a.createUser(ctx, params, model.RoleUser)
	if err != nil {
		return nil, err
	}
	a.logger.Info().Str("user_id", user.ID.String()).Msg("user registered")
	return a.issueToken(user)
}

func (a *AuthService) AdminRegister(ctx context.Context, params RegisterParams) (*model.User, error) {
	user, err := a.createUser(ctx, params, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	a.logger.Info().Str("user_id", user.ID.String()).Msg("admin registered")
	return user, nil
}

// verifyCredentials 帳號不存在與密碼錯誤回傳相同訊息
func (a *AuthService) verifyCredentials(ctx context.Context, email string, password string) (*model.User, error) {
	user, err := a.store.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, apperr.New(apperr.UnauthenticatedCode, "Invalid credentials")
		}
		return nil, apperr.Internal(err)
	}
	if err := util.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, apperr.New(apperr.UnauthenticatedCode, "Invalid credentials")
	}
	if !user.IsActive {
		return nil, apperr.New(apperr.UnauthenticatedCode, "Account is deactivated")
	}
	return user, nil
}

func (a *AuthService) login(ctx context.Context, user *model.User) (*AuthResult, error) {
	now := a.now().UTC()
	if err := a.store.UpdateUserFields(ctx, user.ID, map[string]any{"last_login": now}); err != nil {
		// 登入時間寫入失敗不影響登入
		a.logger.Warn().Err(err).Str("user_id", user.ID.String()).Msg("failed to update last login")
	} else {
		user.LastLogin = &now
	}
	return a.issueToken(user)
}

func (a *AuthService) Login(ctx context.Context, email string, password string) (*AuthResult, error) {
	user, err := a.verifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return a.login(ctx, user)
}

func (a *AuthService) AdminLogin(ctx context.Context, email string, password string) (*AuthResult, error) {
	user, err := a.verifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, apperr.New(apperr.ForbiddenCode, "Access denied. Admin only.")
	}
	return a.login(ctx, user)
}

func (a *AuthService) Authenticate(ctx context.Context, accessToken string) (*token.Payload, error) {
	payload, err := a.tokenMaker.VerifyToken(accessToken)
	if err != nil {
		return nil, apperr.Wrap(apperr.UnauthenticatedCode, "Not authorized, token failed", err)
	}
	revoked, err := a.tokenRepo.IsTokenRevoked(ctx, payload.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if revoked {
		return nil, apperr.New(apperr.UnauthenticatedCode, "Not authorized, token revoked")
	}
	return payload, nil
}

func (a *AuthService) Logout(ctx context.Context, payload *token.Payload) error {
	if payload == nil {
		return nil
	}
	if err := a.tokenRepo.RevokeToken(ctx, payload.ID, payload.RemainingTTL()); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (a *AuthService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := a.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "User not found")
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func (a *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) (*model.User, error) {
	fields := map[string]any{}
	if params.Name != nil {
		fields["name"] = strings.TrimSpace(*params.Name)
	}
	if params.Phone != nil {
		fields["phone"] = *params.Phone
	}
	if params.Address != nil {
		fields["address_street"] = params.Address.Street
		fields["address_city"] = params.Address.City
		fields["address_state"] = params.Address.State
		fields["address_postal_code"] = params.Address.PostalCode
		fields["address_country"] = params.Address.Country
	}
	if len(fields) > 0 {
		fields["updated_at"] = a.now().UTC()
		if err := a.store.UpdateUserFields(ctx, userID, fields); err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				return nil, apperr.New(apperr.NotFoundCode, "User not found")
			}
			return nil, apperr.Internal(err)
		}
	}
	return a.Me(ctx, userID)
}

func (a *AuthService) setPassword(ctx context.Context, userID uuid.UUID, password string) error {
	hashed, err := util.HashPassword(password)
	if err != nil {
		return apperr.Internal(err)
	}
	err = a.store.UpdateUserFields(ctx, userID, map[string]any{
		"password_hash": hashed,
		"updated_at":    a.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return apperr.New(apperr.NotFoundCode, "User not found")
		}
		return apperr.Internal(err)
	}
	return nil
}

func (a *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword string, newPassword string) error {
	user, err := a.Me(ctx, userID)
	if err != nil {
		return err
	}
	if err := util.CheckPassword(currentPassword, user.PasswordHash); err != nil {
		return apperr.New(apperr.ValidationFailedCode, "Current password is incorrect")
	}
	if err := a.setPassword(ctx, userID, newPassword); err != nil {
		return err
	}
	a.logger.Info().Str("user_id", userID.String()).Msg("password changed")
	return nil
}

func (a *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := a.store.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			a.logger.Info().Msg("password reset requested for unknown email")
			return nil
		}
		return apperr.Internal(err)
	}

	resetToken, err := util.RandomToken(resetTokenBytes)
	if err != nil {
		return apperr.Internal(err)
	}
	if err := a.tokenRepo.SaveResetToken(ctx, resetToken, user.ID, a.cfg.ResetTokenTTL); err != nil {
		return apperr.Internal(err)
	}

	err = a.mailService.SendResetPasswordEmail(ctx, ResetPasswordEmailData{
		UserName:      user.Name,
		Email:         user.Email,
		ResetURL:      strings.TrimRight(a.cfg.PublicURL, "/") + "/reset-password/" + resetToken,
		CompanyName:   a.cfg.CompanyName,
		ExpiryMinutes: int(a.cfg.ResetTokenTTL / time.Minute),
	})
	if err != nil {
		return apperr.Wrap(apperr.InternalErrorCode, "Email could not be sent", err)
	}
	a.logger.Info().Str("user_id", user.ID.String()).Msg("password reset email sent")
	return nil
}

func (a *AuthService) ResetPassword(ctx context.Context, resetToken string, newPassword string) (*AuthResult, error) {
	userID, err := a.tokenRepo.ConsumeResetToken(ctx, resetToken)
	if err != nil {
		if errors.Is(err, redis_repo.ErrResetTokenNotFound) {
			return nil, apperr.New(apperr.ValidationFailedCode, "Invalid or expired reset token")
		}
		return nil, apperr.Internal(err)
	}
	if err := a.setPassword(ctx, userID, newPassword); err != nil {
		return nil, err
	}
	user, err := a.Me(ctx, userID)
	if err != nil {
		return nil, err
	}
	a.logger.Info().Str("user_id", userID.String()).Msg("password reset")
	return a.issueToken(user)
}

func (a *AuthService) EnsureAdmin(ctx context.Context, name string, email string, password string) error {
	if email == "" || password == "" {
		return nil
	}
	admins, err := a.store.CountUsers(ctx, model.RoleAdmin, nil)
	if err != nil {
		return apperr.Internal(err)
	}
	if admins > 0 {
		return nil
	}
	user, err := a.createUser(ctx, RegisterParams{Name: name, Email: email, Password: password}, model.RoleAdmin)
	if err != nil {
		// 多個instance同時啟動
		if apperr.Is(err, apperr.ConflictCode) {
			return nil
		}
		return err
	}
	a.logger.Info().Str("user_id", user.ID.String()).Str("email", user.Email).Msg("default admin created")
	return nil
}
