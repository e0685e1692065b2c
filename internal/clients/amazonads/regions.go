package amazonads

import "strings"

// Region is an Amazon Ads API region
type Region string

const (
	RegionNA Region = "NA"
	RegionEU Region = "EU"
	RegionFE Region = "FE"
)

var regionHosts = map[Region]string{
	RegionNA: "https://advertising-api.amazon.com",
	RegionEU: "https://advertising-api-eu.amazon.com",
	RegionFE: "https://advertising-api-fe.amazon.com",
}

var countryRegions = map[string]Region{
	"US": RegionNA, "CA": RegionNA, "MX": RegionNA, "BR": RegionNA,
	"UK": RegionEU, "GB": RegionEU, "DE": RegionEU, "FR": RegionEU, "IT": RegionEU,
	"ES": RegionEU, "NL": RegionEU, "PL": RegionEU, "SE": RegionEU, "TR": RegionEU,
	"AE": RegionEU, "SA": RegionEU, "EG": RegionEU, "IN": RegionEU,
	"JP": RegionFE, "AU": RegionFE, "SG": RegionFE,
}

// RegionForCountry maps a marketplace country code to its API region, defaulting to NA
func RegionForCountry(countryCode string) Region {
	if r, ok := countryRegions[strings.ToUpper(countryCode)]; ok {
		return r
	}
	return RegionNA
}

// BaseURL returns the API host for the region, defaulting to NA
func (r Region) BaseURL() string {
	if host, ok := regionHosts[Region(strings.ToUpper(string(r)))]; ok {
		return host
	}
	return regionHosts[RegionNA]
}
