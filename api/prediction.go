package api

import (
	"errors"

	"burnout/service"

	"github.com/gin-gonic/gin"
)

// PredictionHandler 倦怠风险评估处理器
type PredictionHandler struct {
	predictor *service.Predictor
}

// NewPredictionHandler 创建评估处理器
func NewPredictionHandler(predictor *service.Predictor) *PredictionHandler {
	return &PredictionHandler{predictor: predictor}
}

// PredictRequest 评估请求，屏幕时间 0~16 小时，睡眠时间 0~12 小时
type PredictRequest struct {
	Text        string   `json:"text" example:"这周每天都加班到十一点，感觉很疲惫"`
	ScreenHours *float64 `json:"screen_hours" binding:"required,min=0,max=16" example:"9"`
	SleepHours  *float64 `json:"sleep_hours" binding:"required,min=0,max=12" example:"5.5"`
}

// Predict 评估风险（不保存）
// @Summary 评估倦怠风险
// @Description 根据描述文本、屏幕时间和睡眠时间计算倦怠风险，不写入历史
// @Tags 评估
// @Accept json
// @Produce json
// @Param request body PredictRequest true "评估参数"
// @Success 200 {object} Response{data=service.Assessment} "评估成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 502 {object} Response "情绪提取失败"
// @Router /api/v1/predict [post]
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	a, err := h.predictor.Predict(c.Request.Context(), req.Text, *req.ScreenHours, *req.SleepHours)
	if err != nil {
		h.fail(c, err)
		return
	}
	Success(c, a)
}

// Submit 评估并保存
// @Summary 评估并保存记录
// @Description 计算倦怠风险并追加到历史记录；保存失败时 saved=false 并附带 warning
// @Tags 评估
// @Accept json
// @Produce json
// @Param request body PredictRequest true "评估参数"
// @Success 200 {object} Response{data=service.Submission} "评估成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 502 {object} Response "情绪提取失败"
// @Router /api/v1/predictions [post]
func (h *PredictionHandler) Submit(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	sub, err := h.predictor.Submit(c.Request.Context(), req.Text, *req.ScreenHours, *req.SleepHours)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !sub.Saved {
		SuccessWithMessage(c, sub.Warning, sub)
		return
	}
	SuccessWithMessage(c, "评估已保存", sub)
}

func (h *PredictionHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyText):
		BadRequest(c, "请输入描述文本")
	case errors.Is(err, service.ErrExtractorFailed):
		BadGateway(c, SafeErrorMessage(err, "情绪强度提取失败，请稍后重试"))
	default:
		InternalError(c, SafeErrorMessage(err, "评估失败"))
	}
}
