package domain

import (
	"fmt"
	"time"
)

// Presets de período aceitos pela auditoria
const (
	Preset7Days    = "7d"
	Preset30Days   = "30d"
	Preset3Months  = "3m"
	Preset6Months  = "6m"
	Preset1Year    = "1y"
	DefaultPreset  = Preset30Days
	graphDateShape = "2006-01-02"
)

// TimeWindow representa o intervalo [Since, Until] usado nas consultas ao Graph
type TimeWindow struct {
	Since time.Time `json:"since"`
	Until time.Time `json:"until"`
}

// ResolveTimeWindow monta a janela a partir de um intervalo explícito ou de um preset.
// Quando since e until são informados, o preset é ignorado.
func ResolveTimeWindow(preset string, since, until *time.Time, now time.Time) (TimeWindow, error) {
	if since != nil && until != nil {
		if since.After(*until) {
			return TimeWindow{}, fmt.Errorf("%w: since posterior a until", ErrInvalidTimeWindow)
		}
		return TimeWindow{Since: *since, Until: *until}, nil
	}

	if since != nil || until != nil {
		return TimeWindow{}, fmt.Errorf("%w: since e until devem ser informados juntos", ErrInvalidTimeWindow)
	}

	if preset == "" {
		preset = DefaultPreset
	}

	var start time.Time
	switch preset {
	case Preset7Days:
		start = now.AddDate(0, 0, -7)
	case Preset30Days:
		start = now.AddDate(0, 0, -30)
	case Preset3Months:
		start = now.AddDate(0, -3, 0)
	case Preset6Months:
		start = now.AddDate(0, -6, 0)
	case Preset1Year:
		start = now.AddDate(-1, 0, 0)
	default:
		return TimeWindow{}, fmt.Errorf("%w: preset desconhecido %q", ErrInvalidTimeWindow, preset)
	}

	return TimeWindow{Since: start, Until: now}, nil
}

// SinceParam formata o início da janela no formato aceito pelo Graph
func (w TimeWindow) SinceParam() string {
	return w.Since.Format(graphDateShape)
}

// UntilParam formata o fim da janela no formato aceito pelo Graph
func (w TimeWindow) UntilParam() string {
	return w.Until.Format(graphDateShape)
}

// MonthPeriod retorna o mês-calendário (UTC) que contém t, usado pela cota mensal
func MonthPeriod(t time.Time) (start, end time.Time) {
	t = t.UTC()
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end
}
