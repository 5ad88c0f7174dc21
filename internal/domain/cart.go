package domain

// CartItem — позиция корзины до оформления заказа. Принадлежит клиенту,
// живёт только до конвертации в Order.
type CartItem struct {
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

// Validate проверяет корректность позиции корзины.
func (i *CartItem) Validate() []error {
	var errs []error

	if i.ItemID == "" {
		errs = append(errs, ErrItemIDRequired)
	}
	if i.Qty < 1 {
		errs = append(errs, ErrLineQtyInvalid)
	}
	if i.UnitPriceMinor <= 0 {
		errs = append(errs, ErrLinePriceInvalid)
	}

	return errs
}

// ToOrderLine снимает копию позиции в замороженную строку заказа.
func (i *CartItem) ToOrderLine() OrderLine {
	return OrderLine{
		ItemID:         i.ItemID,
		Name:           i.Name,
		UnitPriceMinor: i.UnitPriceMinor,
		Qty:            i.Qty,
		Kind:           i.Kind,
		Seller:         i.Seller,
		District:       i.District,
		Category:       i.Category,
		Image:          i.Image,
	}
}
