package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"reflect"

	"github.com/RoyceAzure/lab/storefront/internal/infra/mail"
)

type IMailService interface {
	SendResetPasswordEmail(ctx context.Context, data ResetPasswordEmailData) error
}

type MailService struct {
	sender mail.EmailSender
}

// ResetPasswordEmailData 重設密碼信的資料
type ResetPasswordEmailData struct {
	UserName      string // 使用者名稱
	Email         string // 使用者信箱
	ResetURL      string // 重設連結
	CompanyName   string // 公司名稱
	ExpiryMinutes int    // 連結有效時間(分鐘)
}

func NewMailService(sender mail.EmailSender) IMailService {
	if reflect.ValueOf(sender).IsNil() {
		panic("mail service initialization failed: sender cannot be nil")
	}
	return &MailService{sender: sender}
}

func (m *MailService) SendResetPasswordEmail(ctx context.Context, data ResetPasswordEmailData) error {
	html, err := GenerateResetPasswordHTML(data)
	if err != nil {
		return err
	}
	return m.sender.SendEmail("Password reset", html, []string{data.Email}, nil, nil, nil)
}

var resetPasswordTmpl = template.Must(template.New("resetPassword").Parse(resetPasswordTemplate))

// GenerateResetPasswordHTML 產生重設密碼信內容
func GenerateResetPasswordHTML(data ResetPasswordEmailData) (string, error) {
	var buf bytes.Buffer
	if err := resetPasswordTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("執行 HTML 模板失敗: %w", err)
	}
	return buf.String(), nil
}

const resetPasswordTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Password reset</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #7000ff; color: white; padding: 20px; text-align: center; }
        .content { padding: 30px; background-color: #f9f9f9; }
        .button { display: inline-block; padding: 12px 30px; background-color: #7000ff; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
        .footer { padding: 20px; text-align: center; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.CompanyName}}</h1>
        </div>
        <div class="content">
            <p>Hello {{.UserName}},</p>
            <p>We received a request to reset the password for {{.Email}}.</p>
            <div style="text-align: center;">
                <a href="{{.ResetURL}}" class="button">Reset password</a>
            </div>
            <p style="word-break: break-all; background-color: #e9e9e9; padding: 10px; border-radius: 3px;">{{.ResetURL}}</p>
            <p>This link expires in {{.ExpiryMinutes}} minutes. If you did not request a reset, ignore this email.</p>
        </div>
        <div class="footer">
            <p>&copy; {{.CompanyName}}</p>
        </div>
    </div>
</body>
</html>
`
