package gamification

import "backend-rutacorrentina/internal/config"

// Stats are pure functions of the visit count. They are recomputed on
// every read; no mutable counter exists that could drift from the ledger.
type Stats struct {
	VisitCount       int     `json:"visit_count"`
	XP               int     `json:"xp"`
	Level            int     `json:"level"`
	LevelProgressPct float64 `json:"level_progress_pct"`
	RewardPoints     int     `json:"reward_points"`
}

func Compute(visitCount int, cfg config.Config) Stats {
	xp := visitCount * cfg.PointsPerVisit
	stats := Stats{
		VisitCount:   visitCount,
		XP:           xp,
		Level:        1,
		RewardPoints: visitCount * cfg.RewardPointsPerVisit,
	}
	if cfg.XPPerLevel > 0 {
		stats.Level = xp/cfg.XPPerLevel + 1
		pct := float64(xp%cfg.XPPerLevel) / float64(cfg.XPPerLevel) * 100
		if pct > 100 {
			pct = 100
		}
		stats.LevelProgressPct = pct
	}
	return stats
}
