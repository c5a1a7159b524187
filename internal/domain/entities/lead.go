package entities

import "time"

// Lead is one submitted accident case persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// EstimateRange is a display snapshot of what the submitter was shown at
// intake time. It is written once at creation and never recomputed, so the
// record stays faithful to the quote even if the formula changes later.

type Lead struct {
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

// LeadOrderBy enumerates the fields the admin listing can sort on.

type LeadOrderBy string

const (
	OrderByCreatedAt       LeadOrderBy = "created_at"
	OrderByCity            LeadOrderBy = "city"
	OrderByFirstName       LeadOrderBy = "first_name"
	OrderByLastName        LeadOrderBy = "last_name"
	OrderByEstimatedDamage LeadOrderBy = "estimated_damage"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func ParseLeadOrderBy(s string) (LeadOrderBy, bool) {
	switch LeadOrderBy(s) {
	case OrderByCreatedAt, OrderByCity, OrderByFirstName, OrderByLastName, OrderByEstimatedDamage:
		return LeadOrderBy(s), true
	case "":
		return OrderByCreatedAt, true
	}
	return "", false
}

func ParseSortDirection(s string) (SortDirection, bool) {
	switch SortDirection(s) {
	case SortAsc, SortDesc:
		return SortDirection(s), true
	case "":
		return SortDesc, true
	}
	return "", false
}

// LeadView selects which lifecycle slice of the lead set a listing returns.

type LeadView string

const (
	ViewActive   LeadView = "active"
	ViewArchived LeadView = "archived"
	ViewAll      LeadView = "all"
)

func ParseLeadView(s string) (LeadView, bool) {
	switch LeadView(s) {
	case ViewActive, ViewArchived, ViewAll:
		return LeadView(s), true
	case "":
		return ViewActive, true
	}
	return "", false
}
