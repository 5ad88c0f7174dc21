package domain

import "time"

// TimelineEvent описывает событие в истории заказа, показываемой покупателю.
type TimelineEvent struct {
	OrderID  string
	Type     string
	Reason   string
	Occurred time.Time
}
