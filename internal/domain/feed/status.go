package feed

import (
	"strings"

	"github.com/riskibarqy/football-portal/internal/domain/match"
)

// MapStatus converts a provider short status code into the portal
// vocabulary. It is total: unknown or empty codes map to scheduled.
func MapStatus(short string) match.Status {
	switch strings.ToUpper(strings.TrimSpace(short)) {
	case "NS", "TBD", "PST":
		return match.StatusScheduled
	case "HT":
		return match.StatusHalftime
	case "1H", "2H", "ET", "BT", "P", "LIVE", "INT":
		return match.StatusLive
	case "FT", "AET", "PEN", "AWD", "WO":
		return match.StatusFinished
	case "SUSP":
		return match.StatusPostponed
	case "CANC", "ABD":
		return match.StatusCancelled
	default:
		return match.StatusScheduled
	}
}
