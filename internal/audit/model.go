package audit

import "time"

type Category string

const (
	CategoryProduct Category = "product"
	CategoryOrder   Category = "order"
	CategoryUser    Category = "user"
	CategorySystem  Category = "system"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Log is an append-only record of an administrative action. ID and
// timestamp are assigned by the server at creation.
type Log struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Category  Category  `json:"category"`
	User      string    `json:"user"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
	Severity  Severity  `json:"severity"`
}

func IsValidCategory(category Category) bool {
	switch category {
	case CategoryProduct, CategoryOrder, CategoryUser, CategorySystem:
		return true
	default:
		return false
	}
}

func IsValidSeverity(severity Severity) bool {
	switch severity {
	case SeverityInfo, SeverityWarning, SeverityCritical:
		return true
	default:
		return false
	}
}
