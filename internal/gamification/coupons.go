package gamification

// Coupon is a loyalty reward redeemable against reward points.
type Coupon struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CostPoints int    `json:"cost_points"`
}

type CouponStatus struct {
	Coupon
	Redeemable bool `json:"redeemable"`
}

var couponCatalog = []Coupon{
	{ID: 1, Name: "10% OFF en Reparación", CostPoints: 100},
	{ID: 2, Name: "Limpieza de Puerto Gratis", CostPoints: 300},
	{ID: 3, Name: "Vidrio Templado Gratis", CostPoints: 500},
}

func Coupons(rewardPoints int) []CouponStatus {
	out := make([]CouponStatus, 0, len(couponCatalog))
	for _, c := range couponCatalog {
		out = append(out, CouponStatus{Coupon: c, Redeemable: rewardPoints >= c.CostPoints})
	}
	return out
}

func FindCoupon(id int) (Coupon, bool) {
	for _, c := range couponCatalog {
		if c.ID == id {
			return c, true
		}
	}
	return Coupon{}, false
}
