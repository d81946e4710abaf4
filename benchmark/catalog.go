package benchmark

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/cayleygraph/cayley"
	"github.com/cayleygraph/quad"

	"github.com/mindcube/mindcube/vocabulary/mh"
)

// Row is one result row, cells formatted for display.
type Row []string

// Query is one named read-only graph query. Filter constants are embedded
// in the query definition; nothing is parameterized at runtime.
type Query struct {
	Name    string
	Columns []string
	Eval    func(ctx context.Context, h *cayley.Handle) ([]Row, error)
}

// Catalog returns the fixed OLAP query set: one roll-up, one drill-down,
// one slice and one dice.
func Catalog() []Query {
	return []Query{
		{
			Name:    "roll_up_sleep_by_country",
			Columns: []string{"country", "avg_sleep_hours"},
			Eval:    rollUpSleepByCountry,
		},
		{
			Name:    "drill_down_work_by_country_gender",
			Columns: []string{"country", "gender", "avg_work_hours"},
			Eval:    drillDownWorkByCountryGender,
		},
		{
			Name:    "slice_high_stress",
			Columns: []string{"user", "country", "sleep_hours"},
			Eval:    sliceHighStress,
		},
		{
			Name:    "dice_medium_severity_australia",
			Columns: []string{"user", "age", "work_hours"},
			Eval:    diceMediumSeverityAustralia,
		},
	}
}

type aggregate struct {
	sum float64
	n   int
}

func (a *aggregate) avg() float64 {
	return a.sum / float64(a.n)
}

// rollUpSleepByCountry averages sleep hours per country, ordered by country.
func rollUpSleepByCountry(ctx context.Context, h *cayley.Handle) ([]Row, error) {
	p := cayley.StartPath(h).
		Has(quad.IRI(mh.RDFType), quad.IRI(mh.ClassPerson)).Tag("user").
		Out(quad.IRI(mh.PropHasMeasurement)).Save(quad.IRI(mh.PropHasSleepHours), "sleep").Back("user").
		Out(quad.IRI(mh.PropHasCountry)).Save(quad.IRI(mh.SKOSPrefLabel), "country")

	byCountry := make(map[string]*aggregate)
	err := p.Iterate(ctx).TagValues(nil, func(m map[string]quad.Value) {
		sleep, ok := asFloat(m["sleep"])
		if !ok {
			return
		}
		country := asString(m["country"])
		a := byCountry[country]
		if a == nil {
			a = &aggregate{}
			byCountry[country] = a
		}
		a.sum += sleep
		a.n++
	})
	if err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}

	countries := sortedKeys(byCountry)
	rows := make([]Row, 0, len(countries))
	for _, c := range countries {
		rows = append(rows, Row{c, formatAvg(byCountry[c].avg())})
	}
	return rows, nil
}

// drillDownWorkByCountryGender averages work hours per (country, gender),
// ordered by country then gender.
func drillDownWorkByCountryGender(ctx context.Context, h *cayley.Handle) ([]Row, error) {
	p := cayley.StartPath(h).
		Has(quad.IRI(mh.RDFType), quad.IRI(mh.ClassPerson)).Tag("user").
		Out(quad.IRI(mh.PropHasMeasurement)).Save(quad.IRI(mh.PropHasWorkHours), "work").Back("user").
		Out(quad.IRI(mh.PropHasCountry)).Save(quad.IRI(mh.SKOSPrefLabel), "country").Back("user").
		Out(quad.IRI(mh.PropHasGender)).Save(quad.IRI(mh.SKOSPrefLabel), "gender")

	type groupKey struct {
		country string
		gender  string
	}
	byGroup := make(map[groupKey]*aggregate)
	err := p.Iterate(ctx).TagValues(nil, func(m map[string]quad.Value) {
		work, ok := asFloat(m["work"])
		if !ok {
			return
		}
		key := groupKey{country: asString(m["country"]), gender: asString(m["gender"])}
		a := byGroup[key]
		if a == nil {
			a = &aggregate{}
			byGroup[key] = a
		}
		a.sum += work
		a.n++
	})
	if err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}

	keys := make([]groupKey, 0, len(byGroup))
	for k := range byGroup {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].country != keys[j].country {
			return keys[i].country < keys[j].country
		}
		return keys[i].gender < keys[j].gender
	})

	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, Row{k.country, k.gender, formatAvg(byGroup[k].avg())})
	}
	return rows, nil
}

// sliceHighStress lists user, country and sleep hours for every person
// whose stress level is "High", ordered by country then user.
func sliceHighStress(ctx context.Context, h *cayley.Handle) ([]Row, error) {
	p := cayley.StartPath(h).
		Has(quad.IRI(mh.RDFType), quad.IRI(mh.ClassPerson)).Tag("user").
		Out(quad.IRI(mh.PropHasMentalHealth)).
		Out(quad.IRI(mh.PropHasStressLevel)).
		Has(quad.IRI(mh.SKOSPrefLabel), quad.String("High")).Back("user").
		Out(quad.IRI(mh.PropHasCountry)).Save(quad.IRI(mh.SKOSPrefLabel), "country").Back("user").
		Out(quad.IRI(mh.PropHasMeasurement)).Save(quad.IRI(mh.PropHasSleepHours), "sleep")

	type entry struct {
		user    string
		country string
		sleep   float64
	}
	var entries []entry
	err := p.Iterate(ctx).TagValues(nil, func(m map[string]quad.Value) {
		sleep, ok := asFloat(m["sleep"])
		if !ok {
			return
		}
		entries = append(entries, entry{
			user:    asString(m["user"]),
			country: asString(m["country"]),
			sleep:   sleep,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].country != entries[j].country {
			return entries[i].country < entries[j].country
		}
		return entries[i].user < entries[j].user
	})

	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{e.user, e.country, formatFloat(e.sleep)})
	}
	return rows, nil
}

// diceMediumSeverityAustralia lists user, age and work hours for persons
// with "Medium" severity in "Australia", ordered by age then user.
func diceMediumSeverityAustralia(ctx context.Context, h *cayley.Handle) ([]Row, error) {
	p := cayley.StartPath(h).
		Has(quad.IRI(mh.RDFType), quad.IRI(mh.ClassPerson)).Tag("user").
		Save(quad.IRI(mh.PropHasAge), "age").
		Out(quad.IRI(mh.PropHasMentalHealth)).
		Out(quad.IRI(mh.PropHasSeverity)).
		Has(quad.IRI(mh.SKOSPrefLabel), quad.String("Medium")).Back("user").
		Out(quad.IRI(mh.PropHasCountry)).
		Has(quad.IRI(mh.SKOSPrefLabel), quad.String("Australia")).Back("user").
		Out(quad.IRI(mh.PropHasMeasurement)).Save(quad.IRI(mh.PropHasWorkHours), "work")

	type entry struct {
		user string
		age  int64
		work int64
	}
	var entries []entry
	err := p.Iterate(ctx).TagValues(nil, func(m map[string]quad.Value) {
		age, okAge := asInt(m["age"])
		work, okWork := asInt(m["work"])
		if !okAge || !okWork {
			return
		}
		entries = append(entries, entry{user: asString(m["user"]), age: age, work: work})
	})
	if err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].age != entries[j].age {
			return entries[i].age < entries[j].age
		}
		return entries[i].user < entries[j].user
	})

	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{e.user, strconv.FormatInt(e.age, 10), strconv.FormatInt(e.work, 10)})
	}
	return rows, nil
}

func sortedKeys(m map[string]*aggregate) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func asString(v quad.Value) string {
	if v == nil {
		return ""
	}
	switch n := quad.NativeOf(v).(type) {
	case string:
		return n
	case quad.IRI:
		return string(n)
	default:
		return fmt.Sprint(n)
	}
}

func asFloat(v quad.Value) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch n := quad.NativeOf(v).(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func asInt(v quad.Value) (int64, bool) {
	if v == nil {
		return 0, false
	}
	switch n := quad.NativeOf(v).(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}

func formatAvg(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
