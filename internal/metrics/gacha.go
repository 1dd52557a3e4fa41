package metrics

import (
	"time"

	"github.com/kizuna-dev/teambuilder/internal/domain"
)

// RecordPull records a committed pull's draws and spend
func RecordPull(result *domain.PullResult, constellationID string, elapsed time.Duration) {
	PullsTotal.WithLabelValues(constellationID).Inc()
	KizunaStarsSpent.Add(float64(result.TotalCost))
	PullDuration.Observe(elapsed.Seconds())

	for _, o := range result.Outcomes {
		rarity := string(o.CharacterRarity)
		DrawsTotal.WithLabelValues(constellationID, rarity).Inc()
		if o.CharacterID == nil {
			EmptyPoolDraws.WithLabelValues(constellationID, rarity).Inc()
		}
	}
}
