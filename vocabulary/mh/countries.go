package mh

// countryQIDs maps country labels from the source dataset to Wikidata QIDs.
// Static configuration: extend the table, not the lookup logic. Labels
// without an entry (e.g. "Other") get no cross-reference.
var countryQIDs = map[string]string{
	"Australia": "Q408",
	"USA":       "Q30",
	"India":     "Q668",
	"UK":        "Q145",
	"Canada":    "Q16",
	"Germany":   "Q183",
}

// WikidataCountry returns the Wikidata entity IRI for a country label, or
// false when the label has no cross-reference.
func WikidataCountry(label string) (string, bool) {
	qid, ok := countryQIDs[label]
	if !ok {
		return "", false
	}
	return WikidataNamespace + qid, true
}
