package player

import "strings"

const (
	IconForward  = "Zap"
	IconDefense  = "Shield"
	IconGoalie   = "Target"
	IconFallback = "User"
)

var positionIcons = []struct {
	needles []string
	icon    string
}{
	{needles: []string{"нападающий", "forward"}, icon: IconForward},
	{needles: []string{"защитник", "defense"}, icon: IconDefense},
	{needles: []string{"вратарь", "goalie"}, icon: IconGoalie},
}

// IconFor picks a display icon by substring match on the free-text position.
func IconFor(position string) string {
	normalized := strings.ToLower(strings.TrimSpace(position))
	if normalized == "" {
		return IconFallback
	}
	for _, candidate := range positionIcons {
		for _, needle := range candidate.needles {
			if strings.Contains(normalized, needle) {
				return candidate.icon
			}
		}
	}
	return IconFallback
}
