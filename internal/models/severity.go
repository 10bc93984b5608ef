package models

// Severity - уровень опасности инцидента от 1 (низкий) до 5 (критический)
type Severity int

const (
	SeverityLow      Severity = 1
	SeverityMinor    Severity = 2
	SeverityMedium   Severity = 3
	SeverityHigh     Severity = 4
	SeverityCritical Severity = 5
)

// Severities - все уровни в порядке возрастания
var Severities = []Severity{SeverityLow, SeverityMinor, SeverityMedium, SeverityHigh, SeverityCritical}

// Valid сообщает, что уровень лежит в диапазоне [1,5]
func (s Severity) Valid() bool {
	return s >= SeverityLow && s <= SeverityCritical
}

// Label возвращает ключ уровня для оформления. Неизвестные значения отображаются как "low".
func (s Severity) Label() string {
	switch s {
	case SeverityMinor:
		return "minor"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "low"
	}
}

// Text возвращает человекочитаемое название уровня
func (s Severity) Text() string {
	switch s {
	case SeverityLow:
		return "Low"
	case SeverityMinor:
		return "Minor"
	case SeverityMedium:
		return "Medium"
	case SeverityHigh:
		return "High"
	case SeverityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}
