package models

// Виды шаблонов рекламных кампаний.
const (
	TemplateSocialMedia = "social_media"
	TemplateEmail       = "email"
	TemplateBanner      = "banner"
	TemplateVideo       = "video"
)

// CampaignRequest описывает запрос на генерацию рекламного контента.
type CampaignRequest struct {
	TemplateKind   string            `json:"template_kind" validate:"required"`
	CampaignName   string            `json:"campaign_name" validate:"required"`
	TargetAudience string            `json:"target_audience" validate:"required"`
	Price          string            `json:"price"`
	CustomFields   map[string]string `json:"custom_fields"`
}

// CampaignContent содержит варианты текста, подписанные названием варианта.
type CampaignContent struct {
	Variants map[string]string `json:"variants"`
}
