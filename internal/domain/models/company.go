package models

import "time"

// Field names a categorical column of the dataset that can be grouped or filtered on.
type Field string

const (
	FieldCountry  Field = "Country"
	FieldIndustry Field = "Industry"
)

// Column names of the unicorn dataset header.
const (
	ColCompany    = "Company"
	ColValuation  = "Valuation ($B)"
	ColDateJoined = "Date Joined"
	ColCountry    = "Country"
	ColCity       = "City"
	ColIndustry   = "Industry"
	ColInvestors  = "Select Investors"
)

// Company represents a single row of the unicorn dataset.
//
// Fields:
//   - Name: Company name (optional column "Company").
//   - Valuation: Valuation in billions, normalized from "$1.23" style text.
//   - DateJoined: Day the company reached unicorn status (UTC midnight).
//   - Country, City, Industry: Categorical attributes.
//   - Investors: Raw "Select Investors" text.
type Company struct {
	Name       string    `json:"company"`
	Valuation  float64   `json:"valuation"`
	DateJoined time.Time `json:"date_joined"`
	Country    string    `json:"country"`
	City       string    `json:"city"`
	Industry   string    `json:"industry"`
	Investors  string    `json:"investors"`

	// Extra holds any non-core columns in header order, used by the data table.
	Extra []string `json:"-"`
}

// Category returns the value of the given categorical field.
func (c Company) Category(f Field) (string, bool) {
	switch f {
	case FieldCountry:
		return c.Country, true
	case FieldIndustry:
		return c.Industry, true
	default:
		return "", false
	}
}
