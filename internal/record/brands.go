package record

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultBrandID is returned for an empty brand name.
const DefaultBrandID = "2000001"

// BrandRegistry assigns synthetic numeric brand IDs in the "2000" + padded
// counter format the import sheet expects. Assignment happens on first
// encounter of a brand name, case-insensitive, and lives for the run only.
type BrandRegistry struct {
	ids     map[string]string
	counter int
}

func NewBrandRegistry() *BrandRegistry {
	return &BrandRegistry{ids: make(map[string]string), counter: 1}
}

// ID returns the brand's ID, assigning the next one on first encounter.
func (r *BrandRegistry) ID(brand string) string {
	key := strings.ToUpper(strings.TrimSpace(brand))
	if key == "" {
		return DefaultBrandID
	}
	if id, ok := r.ids[key]; ok {
		return id
	}
	id := fmt.Sprintf("2000%03d", r.counter)
	r.counter++
	r.ids[key] = id
	return id
}

// Mapping returns the brand→ID assignments made so far, sorted by brand name
// for stable log output.
func (r *BrandRegistry) Mapping() []BrandID {
	out := make([]BrandID, 0, len(r.ids))
	for brand, id := range r.ids {
		out = append(out, BrandID{Brand: brand, ID: id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Brand < out[j].Brand })
	return out
}

type BrandID struct {
	Brand string
	ID    string
}
