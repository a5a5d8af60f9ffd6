package catalog

import (
	"fmt"
	"strings"
)

// Category is an ordered list of canonical lower-case skill names.
type Category struct {
	Name   string
	Skills []string
}

// Catalog is the static skill taxonomy used by extraction, categorization
// and scoring. It is built once at startup and never mutated; concurrent
// reads need no synchronization.
type Catalog struct {
	categories []Category
}

// New validates the given categories and returns an immutable catalog.
// Validation failure aborts initialization since a malformed catalog
// invalidates every downstream computation.
func New(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("catalog: no categories")
	}

	seen := map[string]struct{}{}
	for _, cat := range categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog: empty category name")
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("catalog: duplicate category %q", name)
		}
		seen[name] = struct{}{}

		if len(cat.Skills) == 0 {
			return nil, fmt.Errorf("catalog: category %q has no skills", name)
		}
		for _, s := range cat.Skills {
			if strings.TrimSpace(s) == "" {
				return nil, fmt.Errorf("catalog: category %q has an empty skill", name)
			}
			if s != strings.ToLower(s) {
				return nil, fmt.Errorf("catalog: skill %q in category %q is not lower-case", s, name)
			}
		}
	}

	copied := make([]Category, 0, len(categories))
	for _, cat := range categories {
		skills := make([]string, len(cat.Skills))
		copy(skills, cat.Skills)
		copied = append(copied, Category{Name: cat.Name, Skills: skills})
	}

	return &Catalog{categories: copied}, nil
}

// Default returns the built-in taxonomy.
func Default() (*Catalog, error) {
	return New(defaultCategories())
}

// Categories returns the ordered category list. Callers must treat the
// result as read-only.
func (c *Catalog) Categories() []Category {
	if c == nil {
		return nil
	}
	return c.categories
}

// SkillCount returns the total number of canonical skills.
func (c *Catalog) SkillCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Skills)
	}
	return n
}

func defaultCategories() []Category {
	return []Category{
		{
			Name: "programming",
			Skills: []string{
				"javascript", "python", "java", "c++", "c#", "php", "ruby",
				"go", "rust", "kotlin", "swift", "scala", "matlab", "typescript",
			},
		},
		{
			Name: "frameworks",
			Skills: []string{
				"react", "angular", "vue", "node.js", "express", "django",
				"flask", "spring", "laravel", "rails", "next.js", "nuxt.js", "svelte",
			},
		},
		{
			Name: "databases",
			Skills: []string{
				"sql", "mysql", "postgresql", "mongodb", "redis",
				"elasticsearch", "oracle", "sqlite", "cassandra", "dynamodb",
			},
		},
		{
			Name: "cloud",
			Skills: []string{
				"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
				"jenkins", "ci/cd", "devops", "microservices",
			},
		},
		{
			Name: "data",
			Skills: []string{
				"machine learning", "data science", "analytics", "tableau",
				"powerbi", "pandas", "numpy", "scikit-learn", "tensorflow", "pytorch",
			},
		},
		{
			Name: "mobile",
			Skills: []string{
				"android", "ios", "react native", "flutter", "xamarin",
				"mobile app development",
			},
		},
		{
			Name: "soft",
			Skills: []string{
				"leadership", "communication", "project management", "agile",
				"scrum", "teamwork", "problem solving", "critical thinking",
			},
		},
	}
}
