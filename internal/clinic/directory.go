package clinic

import (
	"fmt"
	"strings"
)

// Clinic is an immutable catalog entry.
type Clinic struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Departments is the fixed, ordered list of bookable departments. The
// triage prompt and the wizard's department step both render from it, so
// order and spelling are load-bearing.
var Departments = []string{
	"内科", "外科", "小児科", "耳鼻咽喉科", "皮膚科", "眼科",
	"整形外科", "婦人科", "泌尿器科", "精神科", "心療内科",
	"脳神経外科", "循環器内科", "消化器内科", "呼吸器内科",
}

// IsDepartment reports whether name is a member of the department list.
func IsDepartment(name string) bool {
	for _, d := range Departments {
		if d == name {
			return true
		}
	}
	return false
}

var catalog = []Clinic{
	{ID: 1, Name: "赤羽中央総合病院"},
	{ID: 2, Name: "順天堂医院"},
	{ID: 3, Name: "北区クリニック"},
	{ID: 4, Name: "東京医科大学病院"},
	{ID: 5, Name: "板橋メディカルセンター"},
}

const maxSuggestions = 5

// Directory serves lookups over the fixed clinic catalog.
type Directory struct {
	clinics []Clinic
}

// NewDirectory creates a directory over the built-in catalog.
func NewDirectory() *Directory {
	return &Directory{clinics: catalog}
}

// All returns the catalog in stable order.
func (d *Directory) All() []Clinic {
	out := make([]Clinic, len(d.clinics))
	copy(out, d.clinics)
	return out
}

// ByID returns the catalog entry with the given ID, if any.
func (d *Directory) ByID(id int) (Clinic, bool) {
	for _, c := range d.clinics {
		if c.ID == id {
			return c, true
		}
	}
	return Clinic{}, false
}

// Search returns candidate clinics for a free-text query. There is no
// search index behind this; it synthesizes exactly three candidates by
// suffixing the query with fixed category words. An empty query returns
// no candidates.
func (d *Directory) Search(query string) []Clinic {
	if query == "" {
		return nil
	}
	return []Clinic{
		{ID: 1, Name: fmt.Sprintf("%s内科", query)},
		{ID: 2, Name: fmt.Sprintf("%sクリニック", query)},
		{ID: 3, Name: fmt.Sprintf("%s総合病院", query)},
	}
}

// Suggest returns up to five catalog names containing the prefix,
// case-insensitively, preserving catalog order.
func (d *Directory) Suggest(prefix string) []string {
	needle := strings.ToLower(prefix)
	results := make([]string, 0, maxSuggestions)
	for _, c := range d.clinics {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			results = append(results, c.Name)
			if len(results) == maxSuggestions {
				break
			}
		}
	}
	return results
}
