package model

// OrderStatus is a step of the order lifecycle.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderTransitions is the whole lifecycle graph. Nothing leads back to new and
// the terminal states have no outgoing edges.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusNew:        {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransition reports whether from -> to is an edge of the lifecycle graph.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses lists the statuses reachable from s in one step.
func NextStatuses(s OrderStatus) []OrderStatus {
	return append([]OrderStatus(nil), orderTransitions[s]...)
}

// Order is a purchase request for one listing. PhoneNumber and Price are copied from the listing when the order is
// placed and never rewritten.
type Order struct {
	ID            string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SimID         string      `json:"sim_id" gorm:"type:varchar(36);index;not null"`
	PhoneNumber   string      `json:"phone_number" gorm:"type:varchar(32);not null"`
	Price         int64       `json:"price" gorm:"not null"`
	CustomerName  string      `json:"customer_name" gorm:"type:varchar(128);not null"`
	CustomerPhone string      `json:"customer_phone" gorm:"type:varchar(32);not null"`
	Address       string      `json:"address" gorm:"type:text"`
	Status        OrderStatus `json:"status" gorm:"type:varchar(16);index;not null"`
	CreatedAt     int64       `json:"created_at" gorm:"index;not null;autoCreateTime:false"` // epoch ms
}

func (Order) TableName() string { return "orders" }

// OrderDraft is what a customer submits when buying a listing.
type OrderDraft struct {
	SimID         string
	PhoneNumber   string
	Price         int64
	CustomerName  string
	CustomerPhone string
	Address       string
}
