package dto

import "time"

type GapItem struct {
	SkillArea string  `json:"skill_area"`
	AvgScore  float64 `json:"avg_score"`
	NAnswers  int64   `json:"n_answers"`
}

type DashboardSummaryResponse struct {
	TotalAssessments int64     `json:"total_assessments"`
	AvgOverall       float64   `json:"avg_overall"`
	AvgSoft          float64   `json:"avg_soft"`
	AvgDigital       float64   `json:"avg_digital"`
	TopGaps          []GapItem `json:"top_gaps"`
}

type LogListRequest struct {
	Level string `query:"level"`
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
}

type LogListResponse struct {
	Id        string                 `json:"id"`
	Level     string                 `json:"level"`
	Module    string                 `json:"module"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
