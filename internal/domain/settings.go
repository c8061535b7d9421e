package domain

// GatewayConfig holds the merchant-entered gateway settings: the
// selected bank with its per-bank field values, the payment deadline,
// the optional surcharge rate, and the shop identity printed on the
// slip. Once resolved at order time the config is read-only to the
// derivation core.
type GatewayConfig struct {
	Bank       BankID            `json:"bank"`
	BankFields map[string]string `json:"bank_fields,omitempty"`

	// DeadlineDays is the number of days the payer has to pay.
	// Non-positive values fall back to the 5-day default.
	DeadlineDays int `json:"deadline_days"`

	// Rate is the optional surcharge added to the order total.
	// Stored as entered by the merchant; "2,95" and "2.95" are both
	// accepted and a non-numeric value counts as zero.
	Rate string `json:"rate,omitempty"`

	Logo string `json:"logo,omitempty"`

	// Shop identity.
	ShopName      string `json:"shop_name"`
	ShopURL       string `json:"shop_url,omitempty"`
	ShopEmail     string `json:"shop_email,omitempty"`
	CorporateName string `json:"corporate_name,omitempty"`
	CPFCNPJ       string `json:"cpf_cnpj,omitempty"`
	ShopAddress   string `json:"shop_address,omitempty"`
	ShopCityState string `json:"shop_city_state,omitempty"`
}

// DefaultDeadlineDays applies when the merchant left the deadline
// unset.
const DefaultDeadlineDays = 5

// EffectiveDeadlineDays returns the configured deadline or the
// default when unset.
func (c *GatewayConfig) EffectiveDeadlineDays() int {
	if c == nil || c.DeadlineDays <= 0 {
		return DefaultDeadlineDays
	}
	return c.DeadlineDays
}
