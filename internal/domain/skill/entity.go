package skill

import (
	"strings"
	"time"
)

// Category is a closed set; anything else coming from a feed is rejected at
// the edge, not stored.
type Category string

const (
	CategoryTechnical Category = "technical"
	CategorySoft      Category = "soft"
	CategoryDomain    Category = "domain"
	CategoryTool      Category = "tool"
)

func ParseCategory(raw string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryTechnical:
		return CategoryTechnical, true
	case CategorySoft:
		return CategorySoft, true
	case CategoryDomain:
		return CategoryDomain, true
	case CategoryTool:
		return CategoryTool, true
	}
	return "", false
}

func (c Category) Valid() bool {
	_, ok := ParseCategory(string(c))
	return ok
}

// RoleImportance tags a skill's weight inside a role profile.
type RoleImportance string

const (
	RoleRequired  RoleImportance = "required"
	RolePreferred RoleImportance = "preferred"
	RoleOptional  RoleImportance = "optional"
)

type RoleTag struct {
	Role       string
	Importance RoleImportance
}

// Skill is the catalog record. Name is the unique key, compared exactly and
// case-sensitively. DemandScore is written only by the demand aggregator.
type Skill struct {
	Name              string
	Category          Category
	RelatedSkills     []string
	Roles             []RoleTag
	DemandScore       float64
	DemandLastUpdated time.Time
}
