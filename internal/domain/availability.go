package domain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DataCategory identifica uma fonte de métricas buscada durante a auditoria
type DataCategory string

const (
	CategoryPageInfo      DataCategory = "pageInfo"
	CategoryInsights      DataCategory = "insights"
	CategoryPosts         DataCategory = "posts"
	CategoryPostInsights  DataCategory = "postInsights"
	CategoryDemographics  DataCategory = "demographics"
	CategoryPaidVsOrganic DataCategory = "paidVsOrganic"
)

// AllCategories lista as categorias na ordem em que são buscadas
var AllCategories = []DataCategory{
	CategoryPageInfo,
	CategoryInsights,
	CategoryPosts,
	CategoryPostInsights,
	CategoryDemographics,
	CategoryPaidVsOrganic,
}

// AvailabilityStatus é o resultado de uma categoria
type AvailabilityStatus string

const (
	StatusOK      AvailabilityStatus = "ok"
	StatusFailed  AvailabilityStatus = "failed"
	StatusSkipped AvailabilityStatus = "skipped"
)

// Motivos de indisponibilidade
const (
	ReasonPermissionNotGranted = "permission_not_granted"
	ReasonFetchFailed          = "fetch_failed"
	ReasonNotEntitled          = "not_entitled"
	ReasonNoData               = "no_data"
)

// Availability é o resultado de uma categoria de dados
type Availability struct {
	Status AvailabilityStatus `json:"status"`
	Reason string             `json:"reason,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// Available informa se a categoria foi obtida com sucesso
func (a Availability) Available() bool {
	return a.Status == StatusOK
}

// MarshalJSON inclui o campo booleano "available" esperado pelos consumidores
func (a Availability) MarshalJSON() ([]byte, error) {
	type alias Availability
	return json.Marshal(struct {
		Available bool `json:"available"`
		alias
	}{
		Available: a.Available(),
		alias:     alias(a),
	})
}

// DataAvailability é montado incrementalmente durante a busca; nunca é refeito na mesma execução
type DataAvailability map[DataCategory]Availability

// NewDataAvailability cria o mapa com todas as categorias ainda não obtidas
func NewDataAvailability() DataAvailability {
	da := make(DataAvailability, len(AllCategories))
	for _, c := range AllCategories {
		da[c] = Availability{Status: StatusFailed, Reason: ReasonNoData}
	}
	return da
}

// MarkOK registra a categoria como disponível
func (da DataAvailability) MarkOK(c DataCategory) {
	da[c] = Availability{Status: StatusOK}
}

// MarkFailed registra a falha da categoria com o motivo
func (da DataAvailability) MarkFailed(c DataCategory, reason string, err error) {
	a := Availability{Status: StatusFailed, Reason: reason}
	if err != nil {
		a.Error = err.Error()
	}
	da[c] = a
}

// MarkSkipped registra que a categoria não foi solicitada
func (da DataAvailability) MarkSkipped(c DataCategory, reason string) {
	da[c] = Availability{Status: StatusSkipped, Reason: reason}
}

// IsAvailable informa se a categoria está disponível
func (da DataAvailability) IsAvailable(c DataCategory) bool {
	return da[c].Available()
}
