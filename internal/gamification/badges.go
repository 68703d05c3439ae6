package gamification

// Badge is a static catalog entry. Unlock status is never persisted; it is
// derived from the ledger length on every read.
type Badge struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Icon               string `json:"icon"`
	RequiredVisitCount int    `json:"required_visit_count"`
	Description        string `json:"description"`
	Special            bool   `json:"special"`
}

type BadgeStatus struct {
	Badge
	Unlocked bool `json:"unlocked"`
}

var badgeCatalog = []Badge{
	{ID: "primer-paso", Name: "Primer Paso", Icon: "👣", RequiredVisitCount: 1, Description: "Tu primer check-in"},
	{ID: "explorador", Name: "Explorador", Icon: "🧭", RequiredVisitCount: 3, Description: "Tres lugares visitados"},
	{ID: "trotamundos", Name: "Trotamundos", Icon: "🎒", RequiredVisitCount: 5, Description: "Cinco lugares visitados"},
	{ID: "leyenda", Name: "Leyenda Correntina", Icon: "🏆", RequiredVisitCount: 10, Description: "Diez lugares visitados"},
	{ID: "verificado", Name: "Viajero Verificado", Icon: "✅", Description: "Cuenta verificada", Special: true},
}

// Badges derives the unlock status of the whole catalog. Special badges
// unlock unconditionally, independent of visit count.
func Badges(visitCount int) []BadgeStatus {
	out := make([]BadgeStatus, 0, len(badgeCatalog))
	for _, b := range badgeCatalog {
		out = append(out, BadgeStatus{
			Badge:    b,
			Unlocked: b.Special || visitCount >= b.RequiredVisitCount,
		})
	}
	return out
}
