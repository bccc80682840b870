package entities

import "strings"

// UnknownSiteName is shown when the site identity lookup fails
const UnknownSiteName = "Unknown Site"

// Actor is the authenticated user a report is generated for.
// It is passed explicitly into the engine and never held in shared state.
type Actor struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	SiteID    string `json:"site_id"`
	Role      string `json:"role"`
}

// Site represents the inspected premises
type Site struct {
	ID             string  `json:"id" db:"id"`
	Name           string  `json:"name" db:"name"`
	AddressLine1   string  `json:"address_line1" db:"address_line1"`
	AddressLine2   string  `json:"address_line2" db:"address_line2"`
	City           string  `json:"city" db:"city"`
	Postcode       string  `json:"postcode" db:"postcode"`
	OrganizationID *string `json:"organization_id,omitempty" db:"organization_id"`
	Placeholder    bool    `json:"placeholder" db:"-"`
}

// PlaceholderSite returns the identity used when the site lookup returns nothing
func PlaceholderSite(id string) *Site {
	return &Site{
		ID:          id,
		Name:        UnknownSiteName,
		Placeholder: true,
	}
}

// HasOrganization reports whether organization-scoped queries can be issued
func (s *Site) HasOrganization() bool {
	return s != nil && s.OrganizationID != nil && strings.TrimSpace(*s.OrganizationID) != ""
}

// Address joins the non-empty address parts
func (s *Site) Address() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{s.AddressLine1, s.AddressLine2, s.City, s.Postcode} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Organization is the legal entity operating one or more sites
type Organization struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
	Phone string `json:"phone" db:"phone"`
}
