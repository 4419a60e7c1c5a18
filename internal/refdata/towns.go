// Package refdata holds the static lookup tables used for input
// normalization and autocomplete: Irish towns with their counties and
// approximate coordinates, the role taxonomy and the experience ladder.
//
// Nothing here ever rejects input. People are free to submit towns or roles
// that match no canonical entry; matching is best-effort.
package refdata

import (
	"sort"
	"strings"
)

// Coordinates is an approximate lat/lng for map display.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type townEntry struct {
	County string
	Coords Coordinates
}

// towns maps canonical town names to their owning county and approximate
// coordinates. Coverage follows the towns the map component can render.
var towns = map[string]townEntry{
	// Dublin
	"Dublin":         {"Dublin", Coordinates{53.3498, -6.2603}},
	"Dún Laoghaire":  {"Dublin", Coordinates{53.2939, -6.1358}},
	"Swords":         {"Dublin", Coordinates{53.4597, -6.2181}},
	"Tallaght":       {"Dublin", Coordinates{53.2859, -6.3734}},
	"Blanchardstown": {"Dublin", Coordinates{53.3881, -6.3775}},
	"Lucan":          {"Dublin", Coordinates{53.3578, -6.4486}},
	"Clondalkin":     {"Dublin", Coordinates{53.3244, -6.3972}},
	"Finglas":        {"Dublin", Coordinates{53.3889, -6.2969}},
	"Howth":          {"Dublin", Coordinates{53.3917, -6.0653}},
	"Malahide":       {"Dublin", Coordinates{53.4508, -6.1544}},
	"Skerries":       {"Dublin", Coordinates{53.5828, -6.1083}},
	"Balbriggan":     {"Dublin", Coordinates{53.6117, -6.1819}},
	"Blackrock":      {"Dublin", Coordinates{53.3014, -6.1778}},
	"Dalkey":         {"Dublin", Coordinates{53.2778, -6.1000}},

	// Cork
	"Cork":        {"Cork", Coordinates{51.8985, -8.4756}},
	"Cobh":        {"Cork", Coordinates{51.8500, -8.3000}},
	"Kinsale":     {"Cork", Coordinates{51.7075, -8.5306}},
	"Youghal":     {"Cork", Coordinates{51.9500, -7.8500}},
	"Mallow":      {"Cork", Coordinates{52.1333, -8.6333}},
	"Midleton":    {"Cork", Coordinates{51.9167, -8.1833}},
	"Fermoy":      {"Cork", Coordinates{52.1333, -8.2833}},
	"Bandon":      {"Cork", Coordinates{51.7500, -8.7333}},
	"Clonakilty":  {"Cork", Coordinates{51.6167, -8.8833}},
	"Skibbereen":  {"Cork", Coordinates{51.5500, -9.2667}},

	// Galway
	"Galway":      {"Galway", Coordinates{53.2707, -9.0568}},
	"Tuam":        {"Galway", Coordinates{53.5167, -8.8500}},
	"Ballinasloe": {"Galway", Coordinates{53.3333, -8.2167}},
	"Loughrea":    {"Galway", Coordinates{53.2000, -8.5667}},
	"Athenry":     {"Galway", Coordinates{53.3000, -8.7500}},
	"Gort":        {"Galway", Coordinates{53.0667, -8.8167}},
	"Clifden":     {"Galway", Coordinates{53.4833, -10.0167}},

	// Limerick
	"Limerick":       {"Limerick", Coordinates{52.6638, -8.6267}},
	"Newcastle West": {"Limerick", Coordinates{52.4500, -9.0500}},
	"Kilmallock":     {"Limerick", Coordinates{52.4000, -8.5667}},
	"Rathkeale":      {"Limerick", Coordinates{52.5167, -8.9333}},

	// Waterford
	"Waterford": {"Waterford", Coordinates{52.2593, -7.1119}},
	"Dungarvan": {"Waterford", Coordinates{52.0833, -7.6167}},
	"Tramore":   {"Waterford", Coordinates{52.1667, -7.1500}},

	// Kilkenny
	"Kilkenny":   {"Kilkenny", Coordinates{52.6542, -7.2522}},
	"Thomastown": {"Kilkenny", Coordinates{52.5333, -7.1333}},
	"Callan":     {"Kilkenny", Coordinates{52.5167, -7.3833}},

	// Wexford
	"Wexford":     {"Wexford", Coordinates{52.3369, -6.4633}},
	"Enniscorthy": {"Wexford", Coordinates{52.5000, -6.5667}},
	"New Ross":    {"Wexford", Coordinates{52.4000, -6.9333}},
	"Gorey":       {"Wexford", Coordinates{52.6833, -6.2833}},

	// Wicklow
	"Wicklow":    {"Wicklow", Coordinates{52.9750, -6.0494}},
	"Arklow":     {"Wicklow", Coordinates{52.8000, -6.1500}},
	"Greystones": {"Wicklow", Coordinates{53.1417, -6.0639}},
	"Bray":       {"Wicklow", Coordinates{53.2028, -6.0986}},

	// Kildare
	"Naas":      {"Kildare", Coordinates{53.2167, -6.6667}},
	"Newbridge": {"Kildare", Coordinates{53.1833, -6.8000}},
	"Athy":      {"Kildare", Coordinates{52.9917, -6.9806}},
	"Kildare":   {"Kildare", Coordinates{53.1583, -6.9083}},
	"Maynooth":  {"Kildare", Coordinates{53.3833, -6.5833}},
	"Leixlip":   {"Kildare", Coordinates{53.3667, -6.4833}},
	"Celbridge": {"Kildare", Coordinates{53.3333, -6.5333}},

	// Meath
	"Navan":     {"Meath", Coordinates{53.6500, -6.6833}},
	"Trim":      {"Meath", Coordinates{53.5500, -6.7833}},
	"Kells":     {"Meath", Coordinates{53.7333, -6.8833}},
	"Ashbourne": {"Meath", Coordinates{53.5167, -6.4000}},

	// Louth
	"Dundalk":  {"Louth", Coordinates{54.0000, -6.4000}},
	"Drogheda": {"Louth", Coordinates{53.7167, -6.3500}},
	"Ardee":    {"Louth", Coordinates{53.8667, -6.5333}},

	// Westmeath
	"Athlone":   {"Westmeath", Coordinates{53.4228, -7.9378}},
	"Mullingar": {"Westmeath", Coordinates{53.5333, -7.3500}},

	// Offaly
	"Tullamore": {"Offaly", Coordinates{53.2739, -7.4889}},
	"Birr":      {"Offaly", Coordinates{53.1000, -7.9167}},
	"Edenderry": {"Offaly", Coordinates{53.3500, -7.0500}},

	// Laois
	"Portlaoise":   {"Laois", Coordinates{53.0333, -7.3000}},
	"Mountmellick": {"Laois", Coordinates{53.1167, -7.3167}},

	// Carlow
	"Carlow": {"Carlow", Coordinates{52.8361, -6.9264}},
	"Tullow": {"Carlow", Coordinates{52.8000, -6.7333}},

	// Tipperary
	"Clonmel":         {"Tipperary", Coordinates{52.3550, -7.7039}},
	"Thurles":         {"Tipperary", Coordinates{52.6833, -7.8000}},
	"Nenagh":          {"Tipperary", Coordinates{52.8667, -8.2000}},
	"Carrick-on-Suir": {"Tipperary", Coordinates{52.3500, -7.4167}},
	"Roscrea":         {"Tipperary", Coordinates{52.9500, -7.8000}},

	// Kerry
	"Tralee":      {"Kerry", Coordinates{52.2700, -9.7000}},
	"Killarney":   {"Kerry", Coordinates{52.0500, -9.5167}},
	"Listowel":    {"Kerry", Coordinates{52.4500, -9.4833}},
	"Dingle":      {"Kerry", Coordinates{52.1333, -10.2667}},
	"Kenmare":     {"Kerry", Coordinates{51.8833, -9.5833}},
	"Cahersiveen": {"Kerry", Coordinates{51.9500, -10.2167}},

	// Clare
	"Ennis":   {"Clare", Coordinates{52.8436, -8.9864}},
	"Kilrush": {"Clare", Coordinates{52.6333, -9.4833}},
	"Shannon": {"Clare", Coordinates{52.7167, -8.8667}},
	"Kilkee":  {"Clare", Coordinates{52.6833, -9.6500}},

	// Mayo
	"Castlebar":   {"Mayo", Coordinates{53.8500, -9.3000}},
	"Ballina":     {"Mayo", Coordinates{54.1167, -9.1500}},
	"Westport":    {"Mayo", Coordinates{53.8000, -9.5167}},
	"Claremorris": {"Mayo", Coordinates{53.7167, -8.9833}},
	"Ballinrobe":  {"Mayo", Coordinates{53.6333, -9.2333}},

	// Sligo
	"Sligo":     {"Sligo", Coordinates{54.2667, -8.4833}},
	"Ballymote": {"Sligo", Coordinates{54.0833, -8.5167}},

	// Leitrim
	"Carrick-on-Shannon": {"Leitrim", Coordinates{53.9500, -8.1000}},
	"Manorhamilton":      {"Leitrim", Coordinates{54.3000, -8.1833}},

	// Roscommon
	"Roscommon": {"Roscommon", Coordinates{53.6333, -8.1833}},
	"Boyle":     {"Roscommon", Coordinates{53.9667, -8.3000}},

	// Longford
	"Longford":   {"Longford", Coordinates{53.7333, -7.8000}},
	"Ballymahon": {"Longford", Coordinates{53.5667, -7.7667}},

	// Cavan
	"Cavan":     {"Cavan", Coordinates{53.9833, -7.3667}},
	"Belturbet": {"Cavan", Coordinates{54.1000, -7.4500}},

	// Monaghan
	"Monaghan":       {"Monaghan", Coordinates{54.2500, -6.9667}},
	"Carrickmacross": {"Monaghan", Coordinates{53.9833, -6.7167}},
	"Clones":         {"Monaghan", Coordinates{54.1833, -7.2333}},

	// Donegal
	"Letterkenny":  {"Donegal", Coordinates{54.9500, -7.7333}},
	"Ballybofey":   {"Donegal", Coordinates{54.8000, -7.7833}},
	"Buncrana":     {"Donegal", Coordinates{55.1333, -7.4500}},
	"Donegal":      {"Donegal", Coordinates{54.6500, -8.1167}},
	"Ballyshannon": {"Donegal", Coordinates{54.5000, -8.1833}},
	"Dungloe":      {"Donegal", Coordinates{54.9500, -8.3500}},
}

var countyCenters = map[string]Coordinates{
	"Dublin":    {53.3498, -6.2603},
	"Cork":      {51.8985, -8.4756},
	"Galway":    {53.2707, -9.0568},
	"Limerick":  {52.6638, -8.6267},
	"Waterford": {52.2593, -7.1119},
	"Kilkenny":  {52.6542, -7.2522},
	"Wexford":   {52.3369, -6.4633},
	"Wicklow":   {52.9750, -6.0494},
	"Kildare":   {53.2167, -6.6667},
	"Meath":     {53.6500, -6.6833},
	"Louth":     {54.0000, -6.4000},
	"Westmeath": {53.5333, -7.3500},
	"Offaly":    {53.2739, -7.4889},
	"Laois":     {53.0333, -7.3000},
	"Carlow":    {52.8361, -6.9264},
	"Tipperary": {52.6833, -7.8000},
	"Kerry":     {52.2700, -9.7000},
	"Clare":     {52.8436, -8.9864},
	"Mayo":      {53.8500, -9.3000},
	"Sligo":     {54.2667, -8.4833},
	"Leitrim":   {53.9500, -8.1000},
	"Roscommon": {53.6333, -8.1833},
	"Longford":  {53.7333, -7.8000},
	"Cavan":     {53.9833, -7.3667},
	"Monaghan":  {54.2500, -6.9667},
	"Donegal":   {54.9500, -7.7333},
}

var (
	allTowns    []string
	allCounties []string
)

func init() {
	allTowns = make([]string, 0, len(towns))
	for name := range towns {
		allTowns = append(allTowns, name)
	}
	sort.Strings(allTowns)

	allCounties = make([]string, 0, len(countyCenters))
	for name := range countyCenters {
		allCounties = append(allCounties, name)
	}
	sort.Strings(allCounties)
}

// DefaultSearchLimit caps the suggestions returned for an empty query, the
// case when the input field just received focus.
const DefaultSearchLimit = 50

// Counties returns the canonical county list, sorted.
func Counties() []string {
	return allCounties
}

// Towns returns the canonical town list, sorted.
func Towns() []string {
	return allTowns
}

// CountyForTown returns the owning county for an exact town name, matched
// case-insensitively. The second result is false when the town is unknown.
func CountyForTown(town string) (string, bool) {
	name := strings.TrimSpace(town)
	if entry, ok := towns[name]; ok {
		return entry.County, true
	}
	lower := strings.ToLower(name)
	for canonical, entry := range towns {
		if strings.ToLower(canonical) == lower {
			return entry.County, true
		}
	}
	return "", false
}

// SearchTowns returns towns matching the query as a case-insensitive
// substring, prefix matches first, capped at DefaultSearchLimit. An empty
// query returns the head of the canonical list.
func SearchTowns(query string) []string {
	return substringSearch(allTowns, query, DefaultSearchLimit)
}

// TownCoordinates returns approximate coordinates for a town, falling back
// to the county center when the town is unknown but the county is not.
func TownCoordinates(town, county string) (Coordinates, bool) {
	name := strings.TrimSpace(town)
	if entry, ok := towns[name]; ok {
		return entry.Coords, true
	}
	lower := strings.ToLower(name)
	for canonical, entry := range towns {
		if strings.ToLower(canonical) == lower {
			return entry.Coords, true
		}
	}
	if county != "" {
		return CountyCenter(county)
	}
	return Coordinates{}, false
}

// CountyCenter returns the approximate center of a county.
func CountyCenter(county string) (Coordinates, bool) {
	name := strings.TrimSpace(county)
	if c, ok := countyCenters[name]; ok {
		return c, true
	}
	lower := strings.ToLower(name)
	for canonical, c := range countyCenters {
		if strings.ToLower(canonical) == lower {
			return c, true
		}
	}
	return Coordinates{}, false
}

// substringSearch is the shared matcher for every autocomplete list.
func substringSearch(values []string, query string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		if len(values) > limit {
			return values[:limit]
		}
		return values
	}

	lower := strings.ToLower(query)
	var prefix, contains []string
	for _, v := range values {
		lv := strings.ToLower(v)
		switch {
		case strings.HasPrefix(lv, lower):
			prefix = append(prefix, v)
		case strings.Contains(lv, lower):
			contains = append(contains, v)
		}
	}

	results := append(prefix, contains...)
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
