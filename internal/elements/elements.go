// Package elements holds the static periodic-table reference dataset.
// The dataset is immutable: it is decoded once from the embedded JSON at
// init time and only ever read afterwards.
package elements

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed elements.json
var rawElements []byte

// Element is one entry of the reference dataset, keyed by atomic number.
type Element struct {
	Number     int     `json:"number"`
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	AtomicMass float64 `json:"atomic_mass"`
	Category   string  `json:"category"`
	// Period and Group give the element's position in the standard
	// 18-column table. Group 0 marks f-block elements (rendered in the
	// detached lanthanide/actinide rows).
	Period int `json:"period"`
	Group  int `json:"group"`
}

var (
	all      []Element
	byNumber map[int]Element
)

func init() {
	if err := json.Unmarshal(rawElements, &all); err != nil {
		panic(fmt.Sprintf("elements: decode embedded dataset: %v", err))
	}
	byNumber = make(map[int]Element, len(all))
	for _, e := range all {
		byNumber[e.Number] = e
	}
}

// All returns every element in atomic-number order.
// Callers must not mutate the returned slice.
func All() []Element {
	return all
}

// Count returns the dataset size.
func Count() int {
	return len(all)
}

// ByNumber looks up an element by atomic number.
func ByNumber(n int) (Element, bool) {
	e, ok := byNumber[n]
	return e, ok
}

// ByCategory returns the elements in the given category, in atomic-number
// order. Unknown categories yield an empty slice.
func ByCategory(category string) []Element {
	var out []Element
	for _, e := range all {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Categories returns the distinct category names, sorted.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range all {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Search returns elements whose name or symbol contains the query
// (case-insensitive), or whose atomic number matches it exactly.
func Search(query string) []Element {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}
	var out []Element
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Symbol), q) ||
			fmt.Sprintf("%d", e.Number) == q {
			out = append(out, e)
		}
	}
	return out
}

// FindByName looks up an element by exact name or symbol, case-insensitive.
func FindByName(name string) (Element, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, e := range all {
		if strings.ToLower(e.Name) == n || strings.ToLower(e.Symbol) == n {
			return e, true
		}
	}
	return Element{}, false
}
