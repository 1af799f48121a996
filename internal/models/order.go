package models

// Статусы заказов
const (
	OrderCompleted  = "completed"
	OrderCanceled   = "canceled"
	OrderReady      = "ready"
	OrderProcessing = "processing"
	OrderPending    = "pending"
)

// Order - заказ, используется только в сводке на главном экране
type Order struct {
	ID            uint   `json:"id"`
	OrderStatus   string `json:"order_status"`
	OrderDateTime string `json:"order_date_time"`
	TotalPrice    string `json:"total_price"`
}

// OrderList - ответ GET /api/orders
type OrderList struct {
	Orders []Order `json:"orders"`
}
