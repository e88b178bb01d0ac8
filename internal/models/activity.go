package models

import "time"

// Виды активности, которые попадают в историю пользователя.
const (
	ActivityPricePrediction = "price_prediction"
	ActivityAdGeneration    = "ad_generation"
)

// ActivityRecord представляет сохранённую запись истории пользователя.
type ActivityRecord struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	OccurredAt    time.Time `json:"occurred_at"`
	Product       string    `json:"product"`
	Kind          string    `json:"kind"`
	ResultSummary string    `json:"result_summary"`
	Notes         string    `json:"notes"`
}

// ActivityEvent описывает событие, публикуемое сервисами оценки и
// генерации контента и потребляемое воркером записи истории.
type ActivityEvent struct {
	EventID       string    `json:"event_id"`
	Username      string    `json:"username"`
	OccurredAt    time.Time `json:"occurred_at"`
	Product       string    `json:"product"`
	Kind          string    `json:"kind"`
	ResultSummary string    `json:"result_summary"`
	Notes         string    `json:"notes"`
}

// ActivityFilter задает параметры выборки истории.
type ActivityFilter struct {
	Kind   string // price_prediction, ad_generation или пусто (все)
	Search string // подстрока в названии продукта
	Limit  int
	Offset int
}
