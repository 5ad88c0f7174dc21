package marketv1

import (
	"reflect"
	"strings"
	"testing"
)

func TestOrderStatusGeneratedHelpers(t *testing.T) {
	s := OrderStatus_ORDER_STATUS_SHIPPED
	if got := s.Enum(); got == nil || *got != s {
		t.Fatalf("Enum() mismatch: got %v want %v", got, s)
	}
	if s.String() == "" {
		t.Fatalf("String() must not be empty")
	}
	if s.Type() == nil {
		t.Fatalf("Type() must not be nil")
	}
	if s.Descriptor() == nil {
		t.Fatalf("Descriptor() must not be nil")
	}
	_ = s.Number()
	_, _ = s.EnumDescriptor()

	unknown := OrderStatus(999)
	if unknown.String() == "" {
		t.Fatalf("unknown enum string must not be empty")
	}
}

func TestPaymentMethodGeneratedHelpers(t *testing.T) {
	m := PaymentMethod_PAYMENT_METHOD_WALLET
	if got := m.Enum(); got == nil || *got != m {
		t.Fatalf("Enum() mismatch: got %v want %v", got, m)
	}
	if m.String() == "" {
		t.Fatalf("String() must not be empty")
	}
	if m.Type() == nil {
		t.Fatalf("Type() must not be nil")
	}
	if m.Descriptor() == nil {
		t.Fatalf("Descriptor() must not be nil")
	}
	_ = m.Number()
	_, _ = m.EnumDescriptor()
}

func TestGeneratedMessageHelpers(t *testing.T) {
	address := &ShippingAddress{RecipientName: "Rahim Uddin", Phone: "01712345678", AddressLine: "House 7, Road 3", District: "Dhaka", Area: "Dhanmondi"}
	line := &OrderLine{ItemId: "item-1", Name: "Cotton Shirt", UnitPriceMinor: 1200, Qty: 2, Kind: "product", Seller: "Dhaka Textiles", District: "Dhaka", Category: "clothing", Image: "shirt.jpg"}
	order := &Order{
		Id:               "order-1",
		OwnerId:          "owner-1",
		Status:           OrderStatus_ORDER_STATUS_PENDING,
		PaymentMethod:    PaymentMethod_PAYMENT_METHOD_WALLET,
		Lines:            []*OrderLine{line},
		Address:          address,
		SubtotalMinor:    2400,
		DeliveryFeeMinor: 50,
		TotalMinor:       2450,
		Version:          1,
	}
	tx := &WalletTransaction{Id: "tx-1", OwnerId: "owner-1", Kind: "credit", AmountMinor: 5000, Description: "Added funds via bKash", Status: "completed", UnixTime: 1}

	messages := []any{
		&CartItem{ItemId: "item-1", Name: "Cotton Shirt", UnitPriceMinor: 1200, Qty: 2, Kind: "product", Seller: "Dhaka Textiles", District: "Dhaka", Category: "clothing", Image: "shirt.jpg"},
		line,
		address,
		order,
		&TimelineEvent{Type: "order.placed", Reason: "pending", UnixTime: 1},
		tx,
		&AddToCartRequest{OwnerId: "owner-1", ItemId: "item-1", Qty: 2},
		&SetCartQuantityRequest{OwnerId: "owner-1", ItemId: "item-1", Qty: 3},
		&RemoveFromCartRequest{OwnerId: "owner-1", ItemId: "item-1"},
		&GetCartRequest{OwnerId: "owner-1"},
		&ClearCartRequest{OwnerId: "owner-1"},
		&CartResponse{Items: []*CartItem{{ItemId: "item-1"}}, SubtotalMinor: 2400},
		&CheckoutRequest{OwnerId: "owner-1", Address: address, PaymentMethod: PaymentMethod_PAYMENT_METHOD_WALLET, SpecialInstructions: "call on arrival"},
		&CheckoutResponse{Order: order},
		&VerifyOrderOtpRequest{OrderId: "order-1", Code: "123456"},
		&VerifyDeliveryOtpRequest{OrderId: "order-1", Code: "654321"},
		&OrderStatusResponse{OrderId: "order-1", Status: OrderStatus_ORDER_STATUS_CONFIRMED},
		&ReissueOtpRequest{OrderId: "order-1"},
		&ReissueOtpResponse{OrderId: "order-1"},
		&MarkProcessingRequest{OrderId: "order-1"},
		&ShipOrderRequest{OrderId: "order-1"},
		&ShipOrderResponse{OrderId: "order-1", Status: OrderStatus_ORDER_STATUS_SHIPPED, TrackingNumber: "BDX-000001", EstimatedDeliveryUnix: 1},
		&CancelOrderRequest{OrderId: "order-1", Reason: "changed my mind"},
		&GetOrderRequest{OrderId: "order-1"},
		&GetOrderResponse{Order: order, Timeline: []*TimelineEvent{{Type: "order.placed", UnixTime: 1}}},
		&ListOrdersRequest{OwnerId: "owner-1", PageSize: 10},
		&ListOrdersResponse{Orders: []*Order{order}},
		&GetWalletRequest{OwnerId: "owner-1"},
		&GetWalletResponse{OwnerId: "owner-1", BalanceMinor: 5000},
		&TopUpWalletRequest{OwnerId: "owner-1", AmountMinor: 5000, Channel: "bKash"},
		&TopUpWalletResponse{Transaction: tx},
		&ListWalletTransactionsRequest{OwnerId: "owner-1", Limit: 20},
		&ListWalletTransactionsResponse{Transactions: []*WalletTransaction{tx}},
	}

	for _, msg := range messages {
		t.Run(reflect.TypeOf(msg).Elem().Name(), func(t *testing.T) {
			exerciseGeneratedMessage(t, msg)
		})
	}
}

func TestFileDescriptorMetadata(t *testing.T) {
	fd := File_proto_market_v1_storefront_proto
	if fd.Path() == "" {
		t.Fatalf("descriptor path must not be empty")
	}
	if fd.Messages().Len() == 0 {
		t.Fatalf("expected non-empty message descriptors")
	}
	if fd.Enums().Len() == 0 {
		t.Fatalf("expected non-empty enum descriptors")
	}
	if fd.Services().Len() == 0 {
		t.Fatalf("expected non-empty service descriptors")
	}
	if got := fd.Services().Get(0).Name(); got == "" {
		t.Fatalf("expected service name, got empty")
	}
}

func exerciseGeneratedMessage(t *testing.T, msg any) {
	t.Helper()

	v := reflect.ValueOf(msg)

	callNoArg(t, v, "String")
	callNoArg(t, v, "ProtoReflect")
	callNoArg(t, v, "Descriptor")
	callNoArg(t, v, "Reset")
	callGetterMethods(t, v)

	nilReceiver := reflect.Zero(v.Type())
	callNoArg(t, nilReceiver, "ProtoReflect")
	callNoArg(t, nilReceiver, "Descriptor")
	callGetterMethods(t, nilReceiver)
}

func callGetterMethods(t *testing.T, v reflect.Value) {
	t.Helper()

	typ := v.Type()
	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		if !strings.HasPrefix(m.Name, "Get") {
			continue
		}
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		callNoArg(t, v, m.Name)
	}
}

func callNoArg(t *testing.T, v reflect.Value, method string) {
	t.Helper()

	mv := v.MethodByName(method)
	if !mv.IsValid() {
		return
	}
	if mv.Type().NumIn() != 0 {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("method %s panicked: %v", method, r)
		}
	}()

	_ = mv.Call(nil)
}
