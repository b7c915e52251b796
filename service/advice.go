package service

import "burnout/models"

// Recommendations 按风险等级给出的两组建议
type Recommendations struct {
	Title   string   `json:"title" example:"预防措施"`
	Actions []string `json:"actions"`
	Extra   string   `json:"extra_title" example:"持续观察"`
	Tips    []string `json:"tips"`
}

var recommendationTable = map[models.RiskLevel]Recommendations{
	models.RiskHigh: {
		Title: "立即行动",
		Actions: []string{
			"至少休息 2~3 天",
			"预约心理健康专业人士",
			"数字排毒：屏幕时间减少 50%",
			"保证 8 小时以上睡眠",
			"每天练习正念 20 分钟",
		},
		Extra: "本周计划",
		Tips: []string{
			"与上级沟通工作量",
			"明确工作边界",
			"开始运动（每天 30 分钟）",
			"联系支持你的人",
			"每天记录身心状态",
		},
	},
	models.RiskModerate: {
		Title: "预防措施",
		Actions: []string{
			"下周安排较轻的工作量",
			"每天冥想 10 分钟",
			"保持规律作息",
			"工作中定时休息",
			"安排社交活动",
		},
		Extra: "持续观察",
		Tips: []string{
			"每周自我评估",
			"记录睡眠情况",
			"关注屏幕时间",
			"每天写情绪日记",
			"划清工作与生活的界限",
		},
	},
	models.RiskLow: {
		Title: "保持状态",
		Actions: []string{
			"继续现有的健康习惯",
			"工作中定时休息",
			"保持社交联系",
			"维持工作与生活平衡",
			"每周留出反思时间",
		},
		Extra: "进一步提升",
		Tips: []string{
			"尝试新的减压方式",
			"学习正念技巧",
			"改善睡眠环境",
			"培养抗压能力",
			"坚持规律运动",
		},
	},
}

// RecommendationsFor 返回风险等级对应的建议
func RecommendationsFor(level models.RiskLevel) Recommendations {
	if r, ok := recommendationTable[level]; ok {
		return r
	}
	return recommendationTable[models.RiskLow]
}
