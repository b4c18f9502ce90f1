package champion

import (
	"fmt"
	"strings"
)

// Champion records a season title. TeamName is captured when the record is created
// and is not kept in sync with later renames of the team.
type Champion struct {
	ID          int64
	Season      string
	TeamID      int64
	TeamName    string
	Description *string
}

func (c Champion) Validate() error {
	if strings.TrimSpace(c.Season) == "" {
		return fmt.Errorf("champion season is required")
	}
	if c.TeamID <= 0 {
		return fmt.Errorf("champion team id is required")
	}

	return nil
}
