package service

import (
	"fmt"
	"html"

	"burnout/config"
	"burnout/models"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// Enabled 是否已启用且配置了收件人
func (s *EmailService) Enabled() bool {
	return s != nil && s.cfg != nil && s.cfg.Enabled && s.cfg.AlertTo != ""
}

// SendHighRiskAlert 发送高风险提醒邮件
func (s *EmailService) SendHighRiskAlert(rec models.PredictionRecord, a Assessment) error {
	if !s.Enabled() {
		return fmt.Errorf("邮件服务未启用，请配置 BURNOUT_EMAIL_ENABLED=true 和 alert_to")
	}

	subject := fmt.Sprintf("【倦怠风险评估】高风险提醒 %.1f%%", rec.BurnoutScore)
	body := s.generateAlertEmailBody(rec, a)

	return s.sendEmail(s.cfg.AlertTo, subject, body)
}

// generateAlertEmailBody 生成高风险提醒邮件内容
func (s *EmailService) generateAlertEmailBody(rec models.PredictionRecord, a Assessment) string {
	actions := ""
	for _, item := range a.Recommendations.Actions {
		actions += "<li>" + html.EscapeString(item) + "</li>"
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #dc2626, #b91c1c); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .score { font-size: 36px; font-weight: bold; color: #dc2626; text-align: center; margin: 20px 0; }
        .warning { background: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0; border-radius: 4px; }
        .warning p { margin: 0; color: #856404; font-size: 14px; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🔥 倦怠风险评估</h1>
        </div>
        <div class="content">
            <p>%s 的评估结果为 <strong>高风险</strong>：</p>
            <div class="score">%.2f%%</div>
            <p>屏幕时间 %.1f 小时，睡眠 %.1f 小时，情绪强度 %.4f。</p>
            <p>描述摘要：%s</p>
            <p><strong>%s：</strong></p>
            <ul>%s</ul>
            <div class="warning">
                <p>⚠️ 建议尽快休息，必要时咨询心理健康专业人士。</p>
            </div>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
        </div>
    </div>
</body>
</html>
`, rec.Timestamp.Format(models.TimeLayout),
		rec.BurnoutScore,
		rec.ScreenHours, rec.SleepHours, a.EmotionalIntensity,
		html.EscapeString(rec.TextPreview),
		html.EscapeString(a.Recommendations.Title),
		actions)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}
