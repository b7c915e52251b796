package service

import (
	"testing"
	"time"

	"burnout/config"
	"burnout/models"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func TestGenerateAlertEmailBody(t *testing.T) {
	s := newTestEmailService()
	rec := models.NewPredictionRecord("连续加班<三周>，完全睡不着", 12, 4, 93.5,
		time.Date(2024, 6, 1, 23, 10, 0, 0, time.Local))
	a := Score(0.9, 12, 4)

	body := s.generateAlertEmailBody(rec, a)
	assert.Contains(t, body, "2024-06-01 23:10:00")
	assert.Contains(t, body, "93.50%")
	assert.Contains(t, body, "&lt;三周&gt;")
	assert.Contains(t, body, "立即行动")
	assert.Contains(t, body, "至少休息 2~3 天")
}

func TestEmailService_Enabled(t *testing.T) {
	var nilSvc *EmailService
	assert.False(t, nilSvc.Enabled())
	assert.False(t, newTestEmailService().Enabled())
	assert.False(t, NewEmailService(&config.EmailConfig{Enabled: true}).Enabled())
	assert.True(t, NewEmailService(&config.EmailConfig{Enabled: true, AlertTo: "me@example.com"}).Enabled())

	err := newTestEmailService().SendHighRiskAlert(models.PredictionRecord{}, Assessment{})
	assert.Error(t, err)
}
