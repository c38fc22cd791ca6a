package survey

// The site and region tables are fixed configuration: report legends depend
// on these exact codes, so they are embedded here rather than loaded from
// disk. One canonical code set is used for every output.

// Unknown is the sentinel level for any category that cannot be resolved
// from a record's raw fields.
const Unknown = "Unknown"

// SiteCodes maps the exact site name as it appears in the extract to its
// short code. Matching is case-sensitive; anything not listed resolves to
// Unknown.
var SiteCodes = map[string]string{
	"Health Brigade - Richmond":             "HB",
	"Minority Health Consortium - Richmond": "MHC",
	"Mt Rogers HD - Marion":                 "MtRogers",
	"Lenowisco HD - Wise":                   "Lenowisco",
	"Cumberland Plateau HD - Lebanon":       "CumbPlateau",
	"Chris Atwood Foundation - Fairfax":     "CAF",
	"Three Rivers HD - Saluda":              "ThreeRivers",
	"Western Tidewater HD - Suffolk":        "WTidewater",
}

// SiteRegions maps each site code to its health region.
var SiteRegions = map[string]string{
	"HB":          "Central",
	"MHC":         "Central",
	"MtRogers":    "Southwest",
	"Lenowisco":   "Southwest",
	"CumbPlateau": "Southwest",
	"CAF":         "Northern",
	"ThreeRivers": "Eastern",
	"WTidewater":  "Eastern",
}

// SiteCode resolves a raw site_location value to its short code.
func SiteCode(siteLocation string) string {
	if code, exists := SiteCodes[siteLocation]; exists {
		return code
	}

	return Unknown
}

// Region resolves a site code to its health region. Unknown site codes,
// including the Unknown sentinel itself, resolve to Unknown.
func Region(siteCode string) string {
	if region, exists := SiteRegions[siteCode]; exists {
		return region
	}

	return Unknown
}
