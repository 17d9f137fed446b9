package models

type CreateSessionRequest struct {
	Plan     string `json:"plan"`
	Language string `json:"language,omitempty"`
	TimeZone string `json:"time_zone,omitempty"`
}

type SelectOptionRequest struct {
	Option string `json:"option"`
}

type OptionView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Emoji    string `json:"emoji"`
	Price    string `json:"price,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
}

type SummaryLineView struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Amount string `json:"amount"`
}

type SummaryView struct {
	Lines []SummaryLineView `json:"lines"`
	Total string            `json:"total"`
}

type StepView struct {
	SessionID  string       `json:"session_id"`
	Plan       string       `json:"plan"`
	Currency   Currency     `json:"currency"`
	Step       int          `json:"step"`
	TotalSteps int          `json:"total_steps"`
	Progress   float64      `json:"progress"`
	Role       string       `json:"role"`
	Title      string       `json:"title"`
	Subtitle   string       `json:"subtitle"`
	Options    []OptionView `json:"options,omitempty"`
	Total      string       `json:"total"`
	Summary    *SummaryView `json:"summary,omitempty"`
}

type BackResponse struct {
	Exited   bool      `json:"exited"`
	Redirect string    `json:"redirect,omitempty"`
	Step     *StepView `json:"step,omitempty"`
}

type ConfirmResponse struct {
	OrderID  string `json:"order_id"`
	Total    int64  `json:"total"`
	DeepLink string `json:"deep_link"`
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

type PlanView struct {
	ID                        string   `json:"id"`
	Name                      string   `json:"name"`
	Price                     string   `json:"price"`
	PriceValue                int64    `json:"price_value"`
	Currency                  Currency `json:"currency"`
	IncludesPodcastProduction bool     `json:"includes_podcast_production"`
}

type GeoResponse struct {
	Currency Currency `json:"currency"`
}
