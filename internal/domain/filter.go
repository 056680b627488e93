package domain

// AllOption is the wildcard value for category and industry criteria.
const AllOption = "All"

type FilterCriteria struct {
	SearchTerm string `json:"search_term"`
	Category   string `json:"category"`
	Industry   string `json:"industry"`
}

// IsWildcard reports whether v matches every value.
func IsWildcard(v string) bool {
	return v == "" || v == AllOption
}
