package taxonomy

import "strings"

// DefaultCategories is the fixed catalog of opportunity categories. Seeding
// and imports create these rows up front; the classifier below only ever
// returns names from this list.
var DefaultCategories = []string{
	"Computer Science & IT",
	"Software Engineering",
	"Cybersecurity",
	"Data & AI",
	"Information Systems",
	"Business & Management",
	"Finance",
	"Accounting",
	"Marketing",
	"Engineering",
	"Design (UI/UX & Graphic)",
	"Architecture & Planning",
	"Law",
	"Shariah & Islamic Studies",
	"Healthcare",
	"Pharmacy",
	"Agriculture & Environmental",
	"Education",
	"Arts & Media",
	"Other",
}

const CategoryOther = "Other"

// IsKnownCategory reports whether name is in the default catalog.
func IsKnownCategory(name string) bool {
	for _, c := range DefaultCategories {
		if c == name {
			return true
		}
	}
	return false
}

// keyword rules ordered from most to least specific; first match wins.
var classifierRules = []struct {
	category string
	keywords []string
}{
	{"Shariah & Islamic Studies", []string{"islamic", "sharia", "shariah"}},
	{"Law", []string{"law", "legal"}},
	{"Agriculture & Environmental", []string{"agric", "environment", "sustainab"}},
	{"Pharmacy", []string{"pharmacy"}},
	{"Healthcare", []string{"health", "medical", "medicine", "nursing"}},
	{"Cybersecurity", []string{"cyber", "siem", "soc", "security operations", "infosec"}},
	{"Data & AI", []string{"data", "analytics", "machine learning", "ai", "ml"}},
	{"Software Engineering", []string{"software", "backend", "frontend", "programming", "developer"}},
	{"Information Systems", []string{"information systems", "mis"}},
	{"Computer Science & IT", []string{"it", "computer science", "network", "cloud"}},
	{"Accounting", []string{"accounting"}},
	{"Finance", []string{"finance"}},
	{"Marketing", []string{"marketing"}},
	{"Business & Management", []string{"business", "management", "hr"}},
	{"Architecture & Planning", []string{"architecture", "urban", "planning"}},
	{"Design (UI/UX & Graphic)", []string{"design", "ui", "ux", "graphic", "motion"}},
	{"Engineering", []string{"engineering", "mechanical", "electrical", "civil", "industrial"}},
}

// ClassifyText assigns a category from free text (majors, descriptions).
// Falls back to Other when nothing matches.
func ClassifyText(text string) string {
	t := strings.ToLower(text)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

// CoerceCategory returns name when it is a known category, otherwise
// classifies the majors and description text.
func CoerceCategory(name, majorsText, descText string) string {
	name = strings.TrimSpace(name)
	if name != "" && IsKnownCategory(name) {
		return name
	}
	inferred := ClassifyText(majorsText + "\n" + descText)
	if IsKnownCategory(inferred) {
		return inferred
	}
	return CategoryOther
}
