package types

// CompanyProfile carries the business facts interpolated into generated copy.
// Loaded from config at startup and passed to the generators.
type CompanyProfile struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	BaseCity        string  `json:"base_city"`
	TrustpilotScore float64 `json:"trustpilot_score"`
}
