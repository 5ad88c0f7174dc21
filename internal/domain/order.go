package domain

import "time"

// OrderStatus описывает жизненный цикл заказа на витрине.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан, ожидает подтверждения по OTP.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed — размещение подтверждено, оплата (если из кошелька) списана.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusProcessing — продавец собирает заказ.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped — заказ передан курьеру, назначен трек-номер.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered — получение подтверждено вторым OTP. Конечный статус.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled — заказ отменён до отгрузки. Конечный статус.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsTerminal сообщает, достиг ли статус конечного состояния.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransition проверяет допустимость перехода по машине статусов.
// Отмена разрешена только до отгрузки.
func CanTransition(from, to OrderStatus) bool {
	switch to {
	case OrderStatusConfirmed:
		return from == OrderStatusPending
	case OrderStatusProcessing:
		return from == OrderStatusConfirmed
	case OrderStatusShipped:
		return from == OrderStatusProcessing
	case OrderStatusDelivered:
		return from == OrderStatusShipped
	case OrderStatusCancelled:
		return from == OrderStatusPending || from == OrderStatusConfirmed || from == OrderStatusProcessing
	default:
		return false
	}
}

// StatusStage — этап жизненного цикла для отображения и сортировки.
type StatusStage int

const (
	StageAwaitingConfirmation StatusStage = iota
	StageInProgress
	StageInTransit
	StageCompleted
	StageAborted
)

// StatusInfo — отображаемые метаданные статуса.
type StatusInfo struct {
	Label string
	Stage StatusStage
}

// Info возвращает метаданные статуса. Switch тотальный: новый статус
// обязан получить собственную ветку.
func (s OrderStatus) Info() StatusInfo {
	switch s {
	case OrderStatusPending:
		return StatusInfo{Label: "Pending", Stage: StageAwaitingConfirmation}
	case OrderStatusConfirmed:
		return StatusInfo{Label: "Confirmed", Stage: StageInProgress}
	case OrderStatusProcessing:
		return StatusInfo{Label: "Processing", Stage: StageInProgress}
	case OrderStatusShipped:
		return StatusInfo{Label: "Shipped", Stage: StageInTransit}
	case OrderStatusDelivered:
		return StatusInfo{Label: "Delivered", Stage: StageCompleted}
	case OrderStatusCancelled:
		return StatusInfo{Label: "Cancelled", Stage: StageAborted}
	default:
		return StatusInfo{Label: string(s), Stage: StageAwaitingConfirmation}
	}
}

// PaymentMethod — способ оплаты заказа.
type PaymentMethod string

const (
	// PaymentMethodWallet — списание с внутреннего кошелька при подтверждении.
	PaymentMethodWallet PaymentMethod = "wallet"
	// PaymentMethodCOD — наличными при получении.
	PaymentMethodCOD PaymentMethod = "cod"
)

// Valid проверяет, поддерживается ли способ оплаты.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodWallet || m == PaymentMethodCOD
}

// DeliveryFeeMinor — фиксированная плата за доставку для непустого заказа.
const DeliveryFeeMinor = int64(50)

// ItemKind различает товары и услуги в каталоге.
type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindService ItemKind = "service"
)

// OrderLine — замороженная позиция заказа. Цена и количество фиксируются
// в момент оформления и не зависят от последующих изменений каталога.
type OrderLine struct {
	ItemID         string
	Name           string
	UnitPriceMinor int64
	Qty            int32
	Kind           ItemKind
	Seller         string
	District       string
	Category       string
	Image          string
}

// ShippingAddress — адрес доставки. Четыре первых поля обязательны.
type ShippingAddress struct {
	RecipientName string
	Phone         string
	AddressLine   string
	District      string
	Area          string
}

// Complete проверяет, заполнены ли обязательные поля адреса.
func (a ShippingAddress) Complete() bool {
	return a.RecipientName != "" && a.Phone != "" && a.AddressLine != "" && a.District != ""
}

// Order агрегирует снимок корзины, адрес, намерение оплаты и статус.
type Order struct {
	ID                  string
	OwnerID             string
	Status              OrderStatus
	Lines               []OrderLine
	Address             ShippingAddress
	PaymentMethod       PaymentMethod
	SpecialInstructions string
	SubtotalMinor       int64
	DeliveryFeeMinor    int64
	TotalMinor          int64
	// WalletTxID заполняется, когда заказ оплачен списанием с кошелька.
	WalletTxID        string
	TrackingNumber    string
	EstimatedDelivery time.Time
	Version           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// LinesSubtotalMinor вычисляет сумму позиций: qty * unit price.
func (o *Order) LinesSubtotalMinor() int64 {
	var sum int64
	for _, line := range o.Lines {
		sum += int64(line.Qty) * line.UnitPriceMinor
	}
	return sum
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.OwnerID == "" {
		errs = append(errs, ErrOwnerRequired)
	}
	if len(o.Lines) == 0 {
		errs = append(errs, ErrCartEmpty)
	}
	if !o.Address.Complete() {
		errs = append(errs, ErrAddressIncomplete)
	}
	if !o.PaymentMethod.Valid() {
		errs = append(errs, ErrPaymentMethodInvalid)
	}

	for _, line := range o.Lines {
		if line.Qty < 1 {
			errs = append(errs, ErrLineQtyInvalid)
		}
		if line.UnitPriceMinor <= 0 {
			errs = append(errs, ErrLinePriceInvalid)
		}
	}

	// Сверяем итог с замороженным снимком: total = subtotal + delivery fee.
	if o.SubtotalMinor != o.LinesSubtotalMinor() || o.TotalMinor != o.SubtotalMinor+o.DeliveryFeeMinor {
		errs = append(errs, ErrAmountMismatch)
	}

	return errs
}
