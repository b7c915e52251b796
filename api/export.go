package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"burnout/history"
	"burnout/models"
	"burnout/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	predictor *service.Predictor
	now       func() time.Time
}

// NewExportHandler 创建导出处理器
func NewExportHandler(predictor *service.Predictor) *ExportHandler {
	return &ExportHandler{predictor: predictor, now: time.Now}
}

func (h *ExportHandler) filename(ext string) string {
	return fmt.Sprintf("burnout_history_%s.%s", h.now().Format("20060102"), ext)
}

// ExportCSV 导出历史记录为 CSV
// @Summary 导出历史记录
// @Description 以历史文件格式导出全部记录为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file "CSV 文件"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	records := h.predictor.History(c.Request.Context())

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")
	if err := history.WriteCSV(buf, records); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", h.filename("csv")))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出历史记录为 JSON
// @Summary 导出历史记录为 JSON
// @Description 导出全部记录及汇总信息
// @Tags 导出
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "导出成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	records := h.predictor.History(c.Request.Context())

	Success(c, gin.H{
		"exported_at": h.now().Format(models.TimeLayout),
		"total_count": len(records),
		"summary":     service.Summarize(records),
		"records":     records,
	})
}

// ExportExcel 导出历史记录为 Excel
// @Summary 导出历史记录为 Excel
// @Description 导出全部记录为 xlsx，按风险等级着色并附带汇总行
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "Excel 文件"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	records := h.predictor.History(c.Request.Context())

	f, err := buildWorkbook(records)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", h.filename("xlsx")))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

const sheetName = "评估记录"

func buildWorkbook(records []models.PredictionRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		f.Close()
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: center,
		Border:    border,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{Alignment: center, Border: border})

	// 风险等级底色
	levelStyles := map[models.RiskLevel]int{}
	for level, color := range map[models.RiskLevel]string{
		models.RiskHigh:     "F8CBAD",
		models.RiskModerate: "FFE699",
		models.RiskLow:      "C6EFCE",
	} {
		style, _ := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: center,
			Border:    border,
		})
		levelStyles[level] = style
	}

	f.SetColWidth(sheetName, "A", "A", 20)
	f.SetColWidth(sheetName, "B", "B", 56)
	f.SetColWidth(sheetName, "C", "D", 12)
	f.SetColWidth(sheetName, "E", "F", 12)

	headers := []string{"时间", "描述摘要", "屏幕时间", "睡眠时间", "倦怠风险", "风险等级"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, rec := range records {
		row := i + 2
		level := models.RiskLevelOf(rec.BurnoutScore)
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), rec.Timestamp.Format(models.TimeLayout))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), rec.TextPreview)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), rec.ScreenHours)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), rec.SleepHours)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), rec.BurnoutScore)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), level.Label())
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), dataStyle)
		f.SetCellStyle(sheetName, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), levelStyles[level])
	}

	if len(records) > 0 {
		summary := service.Summarize(records)
		summaryRow := len(records) + 2
		summaryStyle, _ := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
			Alignment: center,
			Border:    border,
		})
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "平均风险")
		f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("D%d", summaryRow))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), summary.Mean)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", summaryRow), fmt.Sprintf("高风险 %d 天", summary.HighRiskDays))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("F%d", summaryRow), summaryStyle)
	}

	return f, nil
}
