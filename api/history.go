package api

import (
	"strconv"

	"burnout/service"

	"github.com/gin-gonic/gin"
)

// HistoryHandler 历史记录处理器
type HistoryHandler struct {
	predictor *service.Predictor
}

// NewHistoryHandler 创建历史记录处理器
func NewHistoryHandler(predictor *service.Predictor) *HistoryHandler {
	return &HistoryHandler{predictor: predictor}
}

// List 获取历史记录
// @Summary 历史记录
// @Description 按写入顺序返回全部历史；指定 recent 时返回最近 n 条（新的在前）
// @Tags 历史
// @Produce json
// @Security BearerAuth
// @Param recent query int false "最近条数"
// @Success 200 {object} Response{data=ListResponse} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	records := h.predictor.History(c.Request.Context())

	if raw := c.Query("recent"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			BadRequest(c, "recent 必须是非负整数")
			return
		}
		records = service.Recent(records, n)
	}

	Success(c, ListResponse{Total: len(records), List: records})
}

// Summary 历史汇总
// @Summary 历史汇总
// @Description 平均/最高/最低分、趋势、高风险天数与分布、最常见打卡时段
// @Tags 历史
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.Summary} "获取成功"
// @Router /api/v1/history/summary [get]
func (h *HistoryHandler) Summary(c *gin.Context) {
	Success(c, h.predictor.Summary(c.Request.Context()))
}
