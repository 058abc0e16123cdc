package model

// LoyaltyMember is a registered member of the chain's loyalty program.
// Newly registered members are prepended to the state's member list.
// Delivery records how the member wants to receive their card: "card"
// (physical card with a barcode at the next visit) or "wallet" (link sent
// to the phone wallet).
type LoyaltyMember struct {
	ID                 string `json:"id"`
	FullName           string `json:"fullName"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	City               string `json:"city"`
	FavoriteRestaurant string `json:"favoriteRestaurant"`
	AgeGroup           string `json:"ageGroup,omitempty"`
	Delivery           string `json:"delivery,omitempty"`
}
