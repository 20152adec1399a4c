package model

// EconomyConfig names the guild currency and bounds the daily reward.
type EconomyConfig struct {
	CurrencyName  string `json:"currency_name"`
	CurrencyEmoji string `json:"currency_emoji"`
	DailyMin      int64  `json:"daily_min"`
	DailyMax      int64  `json:"daily_max"`
}

// DefaultEconomyConfig returns the values used before a guild configures
// its economy.
func DefaultEconomyConfig() EconomyConfig {
	return EconomyConfig{
		CurrencyName:  "Points",
		CurrencyEmoji: "💰",
		DailyMin:      50,
		DailyMax:      250,
	}
}

// ShopItem is a purchasable article. Price and XPCost are both charged;
// either may be zero. Quantity -1 means unlimited stock.
type ShopItem struct {
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	XPCost      int64  `json:"xp_cost"`
	RoleID      string `json:"role_id,omitempty"`
	XPGain      int64  `json:"xp_gain"`
	Quantity    int    `json:"quantity"`
}

// GuildShopData is the per-guild document kept by the shop repository.
type GuildShopData struct {
	Economy EconomyConfig       `json:"config"`
	Items   map[string]ShopItem `json:"items"`
}
