package match

import "strings"

const (
	StatusNotStarted       = "Не начался"
	StatusInProgress       = "Матч идет"
	StatusFinished         = "Конец матча"
	StatusFinishedOvertime = "Конец матча (ОТ)"
	StatusFinishedShootout = "Конец матча (Б)"
	StatusForfeit          = "Техническое поражение"
)

// Category is the presentation bucket a status label falls into.
type Category string

const (
	CategoryNeutral          Category = "neutral"
	CategoryHighlighted      Category = "highlighted"
	CategoryFinished         Category = "finished"
	CategoryFinishedOvertime Category = "finished_overtime"
	CategoryFinishedShootout Category = "finished_shootout"
	CategoryAlert            Category = "alert"
	CategoryDefault          Category = "default"
)

var statusOrder = []string{
	StatusNotStarted,
	StatusInProgress,
	StatusFinished,
	StatusFinishedOvertime,
	StatusFinishedShootout,
	StatusForfeit,
}

var categoryByStatus = map[string]Category{
	StatusNotStarted:       CategoryNeutral,
	StatusInProgress:       CategoryHighlighted,
	StatusFinished:         CategoryFinished,
	StatusFinishedOvertime: CategoryFinishedOvertime,
	StatusFinishedShootout: CategoryFinishedShootout,
	StatusForfeit:          CategoryAlert,
}

// Classify never fails: unrecognized labels degrade to CategoryDefault.
func Classify(status string) Category {
	if category, ok := categoryByStatus[strings.TrimSpace(status)]; ok {
		return category
	}
	return CategoryDefault
}

func IsKnownStatus(status string) bool {
	_, ok := categoryByStatus[strings.TrimSpace(status)]
	return ok
}

// Statuses returns the fixed enumeration in lifecycle order.
func Statuses() []string {
	return append([]string(nil), statusOrder...)
}

// IsFinal reports statuses after which the score no longer changes.
func IsFinal(status string) bool {
	switch Classify(status) {
	case CategoryFinished, CategoryFinishedOvertime, CategoryFinishedShootout, CategoryAlert:
		return true
	default:
		return false
	}
}

// Badge maps a category to the badge variant used by the site.
func (c Category) Badge() string {
	switch c {
	case CategoryNeutral:
		return "secondary"
	case CategoryFinished, CategoryFinishedOvertime, CategoryFinishedShootout:
		return "outline"
	case CategoryAlert:
		return "destructive"
	default:
		return "default"
	}
}
