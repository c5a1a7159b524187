package request

import "strings"

// QuoteRequest asks for an estimate range without creating a lead. The
// calculator coerces out-of-range values, so nothing here is required.
type QuoteRequest struct {
	EstimatedDamage float64 `json:"estimated_damage"`
	InjurySeverity  float64 `json:"injury_severity"`
	IsCommercial    bool    `json:"is_commercial"`
}

// SubmitLeadRequest is the public multipart submission payload. Files
// travel alongside these fields under the "attachments" form key.
type SubmitLeadRequest struct {
	FirstName       string  `form:"first_name" json:"first_name" binding:"required"`
	LastName        string  `form:"last_name" json:"last_name" binding:"required"`
	Email           string  `form:"email" json:"email" binding:"required"`
	Phone           string  `form:"phone" json:"phone" binding:"required"`
	City            string  `form:"city" json:"city" binding:"required"`
	IsCommercial    bool    `form:"is_commercial" json:"is_commercial"`
	EstimatedDamage float64 `form:"estimated_damage" json:"estimated_damage"`
	InjurySeverity  float64 `form:"injury_severity" json:"injury_severity"`
}

// HasBlankField reports whether any required contact field is whitespace
// only; gin's required binding accepts strings like "   ".
func (r SubmitLeadRequest) HasBlankField() bool {
	for _, v := range []string{r.FirstName, r.LastName, r.Email, r.Phone, r.City} {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
