// README: Country and city lookup models.
package geo

type Country struct {
	Code string `json:"code"` // e.g. "US"
	Name string `json:"name"` // e.g. "United States"
}

type City struct {
	CountryCode string `json:"countryCode"` // matches Country.Code
	Name        string `json:"name"`        // e.g. "New York"
}
