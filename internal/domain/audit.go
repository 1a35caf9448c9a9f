package domain

import (
	"time"
)

// RecordState representa a etapa de construção do registro de auditoria
type RecordState string

const (
	StateCreated   RecordState = "created"
	StateScored    RecordState = "scored"
	StateDetailed  RecordState = "detailed"
	StatePersisted RecordState = "persisted"
)

// AuditRequest é o pedido de auditoria recebido da API ou do agendador
type AuditRequest struct {
	ConnectionID string     `json:"connection_id"`
	Preset       string     `json:"preset,omitempty"`
	Since        *time.Time `json:"since,omitempty"`
	Until        *time.Time `json:"until,omitempty"`
}

// InputSummary é o resumo público das entradas da auditoria (coluna input_data)
type InputSummary struct {
	AggregatedMetrics
	PageName         string           `json:"pageName,omitempty"`
	Window           TimeWindow       `json:"window"`
	DataAvailability DataAvailability `json:"dataAvailability"`
}

// AuditRecord é o agregado persistido de uma execução de auditoria
type AuditRecord struct {
	ID              string           `json:"id"`
	ShareCode       string           `json:"share_code"`
	UserID          string           `json:"user_id"`
	PageID          string           `json:"page_id"`
	ConnectionID    string           `json:"connection_id"`
	CreatedAt       time.Time        `json:"created_at"`
	ScoreTotal      int              `json:"score_total"`
	ScoreBreakdown  ScoreBreakdown   `json:"score_breakdown"`
	Recommendations []Recommendation `json:"recommendations"`
	InputSummary    InputSummary     `json:"input_data"`
	IsProUnlocked   bool             `json:"is_pro_unlocked"`
	State           RecordState      `json:"-"`
	Detail          *AuditDetail     `json:"detail,omitempty"`
}

// RawMetrics guarda os dados brutos obtidos do Graph
type RawMetrics struct {
	Page          *PageSnapshot          `json:"page,omitempty"`
	PageInsights  []InsightValue         `json:"pageInsights,omitempty"`
	Posts         []Post                 `json:"posts"`
	PostInsights  map[string]PostInsight `json:"postInsights,omitempty"`
	FetchedWindow TimeWindow             `json:"window"`
}

// ComputedMetrics é o payload calculado exibido apenas para usuários Pro
type ComputedMetrics struct {
	AggregatedMetrics
	PaidVsOrganic    PaidVsOrganic           `json:"paidVsOrganic"`
	PostTypeAnalysis []PostTypeStats         `json:"postTypeAnalysis"`
	TrendData        map[string][]TrendPoint `json:"trendData"`
	PostsAnalysis    PostsAnalysis           `json:"postsAnalysis"`
	Benchmarks       Benchmarks              `json:"benchmarks"`
}

// AuditDetail é o registro de detalhes, existente apenas quando o usuário tinha acesso Pro na criação
type AuditDetail struct {
	AuditID          string           `json:"audit_id"`
	RawMetrics       RawMetrics       `json:"raw_metrics"`
	ComputedMetrics  ComputedMetrics  `json:"computed_metrics"`
	DataAvailability DataAvailability `json:"data_availability"`
	Demographics     *Demographics    `json:"demographics,omitempty"`
}

// AuditSummary é a visão pública de uma auditoria (compartilhamento e listagens)
type AuditSummary struct {
	ID             string         `json:"id"`
	ShareCode      string         `json:"share_code"`
	PageID         string         `json:"page_id"`
	PageName       string         `json:"page_name,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	ScoreTotal     int            `json:"score_total"`
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown"`
	IsProUnlocked  bool           `json:"is_pro_unlocked"`
}

// Summary projeta o registro na visão pública
func (r *AuditRecord) Summary() AuditSummary {
	return AuditSummary{
		ID:             r.ID,
		ShareCode:      r.ShareCode,
		PageID:         r.PageID,
		PageName:       r.InputSummary.PageName,
		CreatedAt:      r.CreatedAt,
		ScoreTotal:     r.ScoreTotal,
		ScoreBreakdown: r.ScoreBreakdown,
		IsProUnlocked:  r.IsProUnlocked,
	}
}

// QuotaStatus informa o consumo da cota mensal
type QuotaStatus struct {
	Used        int       `json:"used"`
	Limit       int       `json:"limit"`
	Remaining   int       `json:"remaining"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}
