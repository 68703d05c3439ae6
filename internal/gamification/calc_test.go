package gamification

import (
	"testing"

	"backend-rutacorrentina/internal/config"
)

func calcConfig() config.Config {
	return config.Config{PointsPerVisit: 100, XPPerLevel: 500, RewardPointsPerVisit: 10}
}

func TestComputeIdentity(t *testing.T) {
	cfg := calcConfig()
	for visits := 0; visits <= 25; visits++ {
		stats := Compute(visits, cfg)
		if stats.XP != visits*cfg.PointsPerVisit {
			t.Fatalf("xp mismatch at %d visits: %d", visits, stats.XP)
		}
		if stats.Level != stats.XP/cfg.XPPerLevel+1 {
			t.Fatalf("level mismatch at %d visits: %d", visits, stats.Level)
		}
	}
}

func TestComputeLevelBoundary(t *testing.T) {
	// 5 visits, 100 per visit, 500 per level: fresh level 2
	stats := Compute(5, calcConfig())
	if stats.XP != 500 {
		t.Fatalf("expected 500 xp, got %d", stats.XP)
	}
	if stats.Level != 2 {
		t.Fatalf("expected level 2, got %d", stats.Level)
	}
	if stats.LevelProgressPct != 0 {
		t.Fatalf("expected 0%% progress, got %v", stats.LevelProgressPct)
	}
	if stats.RewardPoints != 50 {
		t.Fatalf("expected 50 reward points, got %d", stats.RewardPoints)
	}
}

func TestComputeMidLevelProgress(t *testing.T) {
	stats := Compute(3, calcConfig())
	if stats.XP != 300 || stats.Level != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.LevelProgressPct != 60 {
		t.Fatalf("expected 60%% progress, got %v", stats.LevelProgressPct)
	}
}

func TestComputeZeroXPPerLevel(t *testing.T) {
	stats := Compute(3, config.Config{PointsPerVisit: 100})
	if stats.Level != 1 || stats.LevelProgressPct != 0 {
		t.Fatalf("expected safe defaults, got %+v", stats)
	}
}

func TestBadgeUnlockThreshold(t *testing.T) {
	badgeAt := func(visits int, id string) BadgeStatus {
		for _, b := range Badges(visits) {
			if b.ID == id {
				return b
			}
		}
		t.Fatalf("badge %s missing", id)
		return BadgeStatus{}
	}

	if badgeAt(4, "trotamundos").Unlocked {
		t.Fatalf("expected locked at 4 visits")
	}
	if !badgeAt(5, "trotamundos").Unlocked {
		t.Fatalf("expected unlocked at 5 visits")
	}
	if !badgeAt(0, "verificado").Unlocked {
		t.Fatalf("expected special badge always unlocked")
	}
}

func TestCoupons(t *testing.T) {
	statuses := Coupons(300)
	if !statuses[0].Redeemable || !statuses[1].Redeemable || statuses[2].Redeemable {
		t.Fatalf("unexpected redeemability: %+v", statuses)
	}

	if _, ok := FindCoupon(2); !ok {
		t.Fatalf("expected coupon 2")
	}
	if _, ok := FindCoupon(99); ok {
		t.Fatalf("expected missing coupon")
	}
}
