package response

import (
	"time"

	"lexintake/internal/domain/entities"
)

type LeadResponse struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	City            string    `json:"city"`
	IsCommercial    bool      `json:"is_commercial"`
	EstimatedDamage float64   `json:"estimated_damage"`
	InjurySeverity  float64   `json:"injury_severity"`
	EstimateRange   string    `json:"estimate_range"`
	IsArchived      bool      `json:"is_archived"`
	MediaURLs       []string  `json:"media_urls"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	media := l.MediaURLs
	if media == nil {
		media = []string{}
	}
	return LeadResponse{
		ID:              l.ID,
		FirstName:       l.FirstName,
		LastName:        l.LastName,
		Email:           l.Email,
		Phone:           l.Phone,
		City:            l.City,
		IsCommercial:    l.IsCommercial,
		EstimatedDamage: l.EstimatedDamage,
		InjurySeverity:  l.InjurySeverity,
		EstimateRange:   l.EstimateRange,
		IsArchived:      l.IsArchived,
		MediaURLs:       media,
		CreatedAt:       l.CreatedAt,
	}
}

func FromLeads(leads []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromLead(l))
	}
	return out
}

type QuoteResponse struct {
	Low     int64  `json:"low"`
	High    int64  `json:"high"`
	Display string `json:"display"`
}

func FromEstimateRange(e entities.EstimateRange) QuoteResponse {
	return QuoteResponse{Low: e.Low, High: e.High, Display: e.Display}
}

type PurgeResponse struct {
	Purged int `json:"purged"`
}
