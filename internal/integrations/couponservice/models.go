package couponservice

// DiscountType тип скидки купона
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Validation результат проверки купона внешним сервисом скидок
type Validation struct {
	Valid         bool         `json:"valid"`
	Message       string       `json:"message,omitempty"`
	DiscountType  DiscountType `json:"discountType,omitempty"`
	DiscountValue float64      `json:"discount,omitempty"`
}

// ErrorResponse модель ошибки от сервиса купонов
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
