package models

// ValuationRequest описывает продукт, отправляемый на оценку стоимости.
// Condition проверяется через ValidCondition: тег oneof не подходит для
// значений с пробелом ("Like New").
type ValuationRequest struct {
	ProductName string `json:"product_name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Brand       string `json:"brand" validate:"required"`
	Condition   string `json:"condition" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageRef    string `json:"image_ref" validate:"required"`
}

// Состояния товара, принимаемые оценкой.
var conditions = map[string]struct{}{
	"New":      {},
	"Like New": {},
	"Good":     {},
	"Fair":     {},
	"Poor":     {},
}

// ValidCondition сообщает, входит ли значение в набор состояний товара.
func ValidCondition(c string) bool {
	_, ok := conditions[c]
	return ok
}

// ValuationResult содержит рыночную оценку продукта.
type ValuationResult struct {
	RecommendedPrice  float64 `json:"recommended_price"`
	RecommendedMin    float64 `json:"recommended_min"`
	RecommendedMax    float64 `json:"recommended_max"`
	Confidence        string  `json:"confidence"`
	MarketTrend       string  `json:"market_trend"`
	CompetitorAverage float64 `json:"competitor_average"`
	DemandScore       string  `json:"demand_score"`
	EstimatedValue    float64 `json:"estimated_value"`
}
