package domain

import "time"

// SkillCategory groups skills on the portfolio.
type SkillCategory string

const (
	CategoryWebDevelopment   SkillCategory = "web-development"
	CategoryCustomerSuccess  SkillCategory = "customer-success"
	CategoryDigitalMarketing SkillCategory = "digital-marketing"
	CategoryToolsAndCRM      SkillCategory = "tools-and-crm"
)

// SkillCategories lists the accepted categories in display order.
var SkillCategories = []SkillCategory{
	CategoryWebDevelopment,
	CategoryCustomerSuccess,
	CategoryDigitalMarketing,
	CategoryToolsAndCRM,
}

var categoryLabels = map[SkillCategory]string{
	CategoryWebDevelopment:   "Développement Web",
	CategoryCustomerSuccess:  "Customer Success",
	CategoryDigitalMarketing: "Marketing Digital",
	CategoryToolsAndCRM:      "Outils & CRM",
}

// legacy short codes used by older exports.
var categoryAliases = map[string]SkillCategory{
	"webdev":   CategoryWebDevelopment,
	"customer": CategoryCustomerSuccess,
	"digital":  CategoryDigitalMarketing,
	"tools":    CategoryToolsAndCRM,
}

// Label returns the display label, or the raw value for unknown categories.
func (c SkillCategory) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Valid reports whether c is one of SkillCategories.
func (c SkillCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseSkillCategory accepts a category value or one of the legacy short codes.
func ParseSkillCategory(s string) (SkillCategory, bool) {
	c := SkillCategory(s)
	if c.Valid() {
		return c, true
	}
	if alias, ok := categoryAliases[s]; ok {
		return alias, true
	}
	return "", false
}

// DefaultSkillLevel is used when a skill is created without a level.
const DefaultSkillLevel = 50

// Skill is a competence listed on the home page. Level is expected in 0-100
// but not enforced.
type Skill struct {
	ID        string        `json:"id"`
	PageID    string        `json:"pageId"`
	Name      string        `json:"name" validate:"max=100"`
	Category  SkillCategory `json:"category" validate:"required,oneof=web-development customer-success digital-marketing tools-and-crm"`
	Level     int           `json:"level"`
	Order     int           `json:"order"`
	CreatedAt time.Time     `json:"createdAt"`
}

// DefaultSkill returns a skill with the default level.
func DefaultSkill() Skill {
	return Skill{Level: DefaultSkillLevel}
}

func (s Skill) Validate() error {
	return validateStruct(s)
}
