// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: proto/market/v1/storefront.proto

package marketv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type OrderStatus int32

const (
	OrderStatus_ORDER_STATUS_UNSPECIFIED OrderStatus = 0
	OrderStatus_ORDER_STATUS_PENDING     OrderStatus = 1
	OrderStatus_ORDER_STATUS_CONFIRMED   OrderStatus = 2
	OrderStatus_ORDER_STATUS_PROCESSING  OrderStatus = 3
	OrderStatus_ORDER_STATUS_SHIPPED     OrderStatus = 4
	OrderStatus_ORDER_STATUS_DELIVERED   OrderStatus = 5
	OrderStatus_ORDER_STATUS_CANCELLED   OrderStatus = 6
)

// Enum value maps for OrderStatus.
var (
	OrderStatus_name = map[int32]string{
		0: "ORDER_STATUS_UNSPECIFIED",
		1: "ORDER_STATUS_PENDING",
		2: "ORDER_STATUS_CONFIRMED",
		3: "ORDER_STATUS_PROCESSING",
		4: "ORDER_STATUS_SHIPPED",
		5: "ORDER_STATUS_DELIVERED",
		6: "ORDER_STATUS_CANCELLED",
	}
	OrderStatus_value = map[string]int32{
		"ORDER_STATUS_UNSPECIFIED": 0,
		"ORDER_STATUS_PENDING":     1,
		"ORDER_STATUS_CONFIRMED":   2,
		"ORDER_STATUS_PROCESSING":  3,
		"ORDER_STATUS_SHIPPED":     4,
		"ORDER_STATUS_DELIVERED":   5,
		"ORDER_STATUS_CANCELLED":   6,
	}
)

func (x OrderStatus) Enum() *OrderStatus {
	p := new(OrderStatus)
	*p = x
	return p
}

func (x OrderStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (OrderStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_proto_market_v1_storefront_proto_enumTypes[0].Descriptor()
}

func (OrderStatus) Type() protoreflect.EnumType {
	return &file_proto_market_v1_storefront_proto_enumTypes[0]
}

func (x OrderStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use OrderStatus.Descriptor instead.
func (OrderStatus) EnumDescriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{0}
}

type PaymentMethod int32

const (
	PaymentMethod_PAYMENT_METHOD_UNSPECIFIED PaymentMethod = 0
	PaymentMethod_PAYMENT_METHOD_WALLET      PaymentMethod = 1
	PaymentMethod_PAYMENT_METHOD_COD         PaymentMethod = 2
)

// Enum value maps for PaymentMethod.
var (
	PaymentMethod_name = map[int32]string{
		0: "PAYMENT_METHOD_UNSPECIFIED",
		1: "PAYMENT_METHOD_WALLET",
		2: "PAYMENT_METHOD_COD",
	}
	PaymentMethod_value = map[string]int32{
		"PAYMENT_METHOD_UNSPECIFIED": 0,
		"PAYMENT_METHOD_WALLET":      1,
		"PAYMENT_METHOD_COD":         2,
	}
)

func (x PaymentMethod) Enum() *PaymentMethod {
	p := new(PaymentMethod)
	*p = x
	return p
}

func (x PaymentMethod) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (PaymentMethod) Descriptor() protoreflect.EnumDescriptor {
	return file_proto_market_v1_storefront_proto_enumTypes[1].Descriptor()
}

func (PaymentMethod) Type() protoreflect.EnumType {
	return &file_proto_market_v1_storefront_proto_enumTypes[1]
}

func (x PaymentMethod) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use PaymentMethod.Descriptor instead.
func (PaymentMethod) EnumDescriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{1}
}

type CartItem struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ItemId         string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	Name           string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	UnitPriceMinor int64                  `protobuf:"varint,3,opt,name=unit_price_minor,json=unitPriceMinor,proto3" json:"unit_price_minor,omitempty"`
	Qty            int32                  `protobuf:"varint,4,opt,name=qty,proto3" json:"qty,omitempty"`
	Kind           string                 `protobuf:"bytes,5,opt,name=kind,proto3" json:"kind,omitempty"`
	Seller         string                 `protobuf:"bytes,6,opt,name=seller,proto3" json:"seller,omitempty"`
	District       string                 `protobuf:"bytes,7,opt,name=district,proto3" json:"district,omitempty"`
	Category       string                 `protobuf:"bytes,8,opt,name=category,proto3" json:"category,omitempty"`
	Image          string                 `protobuf:"bytes,9,opt,name=image,proto3" json:"image,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CartItem) Reset() {
	*x = CartItem{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CartItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CartItem) ProtoMessage() {}

func (x *CartItem) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CartItem.ProtoReflect.Descriptor instead.
func (*CartItem) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{0}
}

func (x *CartItem) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *CartItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CartItem) GetUnitPriceMinor() int64 {
	if x != nil {
		return x.UnitPriceMinor
	}
	return 0
}

func (x *CartItem) GetQty() int32 {
	if x != nil {
		return x.Qty
	}
	return 0
}

func (x *CartItem) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *CartItem) GetSeller() string {
	if x != nil {
		return x.Seller
	}
	return ""
}

func (x *CartItem) GetDistrict() string {
	if x != nil {
		return x.District
	}
	return ""
}

func (x *CartItem) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CartItem) GetImage() string {
	if x != nil {
		return x.Image
	}
	return ""
}

type OrderLine struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ItemId         string                 `protobuf:"bytes,1,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	Name           string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	UnitPriceMinor int64                  `protobuf:"varint,3,opt,name=unit_price_minor,json=unitPriceMinor,proto3" json:"unit_price_minor,omitempty"`
	Qty            int32                  `protobuf:"varint,4,opt,name=qty,proto3" json:"qty,omitempty"`
	Kind           string                 `protobuf:"bytes,5,opt,name=kind,proto3" json:"kind,omitempty"`
	Seller         string                 `protobuf:"bytes,6,opt,name=seller,proto3" json:"seller,omitempty"`
	District       string                 `protobuf:"bytes,7,opt,name=district,proto3" json:"district,omitempty"`
	Category       string                 `protobuf:"bytes,8,opt,name=category,proto3" json:"category,omitempty"`
	Image          string                 `protobuf:"bytes,9,opt,name=image,proto3" json:"image,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *OrderLine) Reset() {
	*x = OrderLine{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderLine) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderLine) ProtoMessage() {}

func (x *OrderLine) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderLine.ProtoReflect.Descriptor instead.
func (*OrderLine) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{1}
}

func (x *OrderLine) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *OrderLine) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *OrderLine) GetUnitPriceMinor() int64 {
	if x != nil {
		return x.UnitPriceMinor
	}
	return 0
}

func (x *OrderLine) GetQty() int32 {
	if x != nil {
		return x.Qty
	}
	return 0
}

func (x *OrderLine) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *OrderLine) GetSeller() string {
	if x != nil {
		return x.Seller
	}
	return ""
}

func (x *OrderLine) GetDistrict() string {
	if x != nil {
		return x.District
	}
	return ""
}

func (x *OrderLine) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *OrderLine) GetImage() string {
	if x != nil {
		return x.Image
	}
	return ""
}

type ShippingAddress struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecipientName string                 `protobuf:"bytes,1,opt,name=recipient_name,json=recipientName,proto3" json:"recipient_name,omitempty"`
	Phone         string                 `protobuf:"bytes,2,opt,name=phone,proto3" json:"phone,omitempty"`
	AddressLine   string                 `protobuf:"bytes,3,opt,name=address_line,json=addressLine,proto3" json:"address_line,omitempty"`
	District      string                 `protobuf:"bytes,4,opt,name=district,proto3" json:"district,omitempty"`
	Area          string                 `protobuf:"bytes,5,opt,name=area,proto3" json:"area,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShippingAddress) Reset() {
	*x = ShippingAddress{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShippingAddress) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShippingAddress) ProtoMessage() {}

func (x *ShippingAddress) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShippingAddress.ProtoReflect.Descriptor instead.
func (*ShippingAddress) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{2}
}

func (x *ShippingAddress) GetRecipientName() string {
	if x != nil {
		return x.RecipientName
	}
	return ""
}

func (x *ShippingAddress) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *ShippingAddress) GetAddressLine() string {
	if x != nil {
		return x.AddressLine
	}
	return ""
}

func (x *ShippingAddress) GetDistrict() string {
	if x != nil {
		return x.District
	}
	return ""
}

func (x *ShippingAddress) GetArea() string {
	if x != nil {
		return x.Area
	}
	return ""
}

type Order struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Id                    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId               string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Status                OrderStatus            `protobuf:"varint,3,opt,name=status,proto3,enum=market.v1.OrderStatus" json:"status,omitempty"`
	PaymentMethod         PaymentMethod          `protobuf:"varint,4,opt,name=payment_method,json=paymentMethod,proto3,enum=market.v1.PaymentMethod" json:"payment_method,omitempty"`
	Lines                 []*OrderLine           `protobuf:"bytes,5,rep,name=lines,proto3" json:"lines,omitempty"`
	Address               *ShippingAddress       `protobuf:"bytes,6,opt,name=address,proto3" json:"address,omitempty"`
	SpecialInstructions   string                 `protobuf:"bytes,7,opt,name=special_instructions,json=specialInstructions,proto3" json:"special_instructions,omitempty"`
	SubtotalMinor         int64                  `protobuf:"varint,8,opt,name=subtotal_minor,json=subtotalMinor,proto3" json:"subtotal_minor,omitempty"`
	DeliveryFeeMinor      int64                  `protobuf:"varint,9,opt,name=delivery_fee_minor,json=deliveryFeeMinor,proto3" json:"delivery_fee_minor,omitempty"`
	TotalMinor            int64                  `protobuf:"varint,10,opt,name=total_minor,json=totalMinor,proto3" json:"total_minor,omitempty"`
	TrackingNumber        string                 `protobuf:"bytes,11,opt,name=tracking_number,json=trackingNumber,proto3" json:"tracking_number,omitempty"`
	EstimatedDeliveryUnix int64                  `protobuf:"varint,12,opt,name=estimated_delivery_unix,json=estimatedDeliveryUnix,proto3" json:"estimated_delivery_unix,omitempty"`
	Version               int64                  `protobuf:"varint,13,opt,name=version,proto3" json:"version,omitempty"`
	CreatedAtUnix         int64                  `protobuf:"varint,14,opt,name=created_at_unix,json=createdAtUnix,proto3" json:"created_at_unix,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *Order) Reset() {
	*x = Order{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Order) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Order) ProtoMessage() {}

func (x *Order) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Order.ProtoReflect.Descriptor instead.
func (*Order) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{3}
}

func (x *Order) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Order) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Order) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

func (x *Order) GetPaymentMethod() PaymentMethod {
	if x != nil {
		return x.PaymentMethod
	}
	return PaymentMethod_PAYMENT_METHOD_UNSPECIFIED
}

func (x *Order) GetLines() []*OrderLine {
	if x != nil {
		return x.Lines
	}
	return nil
}

func (x *Order) GetAddress() *ShippingAddress {
	if x != nil {
		return x.Address
	}
	return nil
}

func (x *Order) GetSpecialInstructions() string {
	if x != nil {
		return x.SpecialInstructions
	}
	return ""
}

func (x *Order) GetSubtotalMinor() int64 {
	if x != nil {
		return x.SubtotalMinor
	}
	return 0
}

func (x *Order) GetDeliveryFeeMinor() int64 {
	if x != nil {
		return x.DeliveryFeeMinor
	}
	return 0
}

func (x *Order) GetTotalMinor() int64 {
	if x != nil {
		return x.TotalMinor
	}
	return 0
}

func (x *Order) GetTrackingNumber() string {
	if x != nil {
		return x.TrackingNumber
	}
	return ""
}

func (x *Order) GetEstimatedDeliveryUnix() int64 {
	if x != nil {
		return x.EstimatedDeliveryUnix
	}
	return 0
}

func (x *Order) GetVersion() int64 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *Order) GetCreatedAtUnix() int64 {
	if x != nil {
		return x.CreatedAtUnix
	}
	return 0
}

type TimelineEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	UnixTime      int64                  `protobuf:"varint,3,opt,name=unix_time,json=unixTime,proto3" json:"unix_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TimelineEvent) Reset() {
	*x = TimelineEvent{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TimelineEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TimelineEvent) ProtoMessage() {}

func (x *TimelineEvent) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TimelineEvent.ProtoReflect.Descriptor instead.
func (*TimelineEvent) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{4}
}

func (x *TimelineEvent) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *TimelineEvent) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *TimelineEvent) GetUnixTime() int64 {
	if x != nil {
		return x.UnixTime
	}
	return 0
}

type WalletTransaction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Kind          string                 `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`
	AmountMinor   int64                  `protobuf:"varint,4,opt,name=amount_minor,json=amountMinor,proto3" json:"amount_minor,omitempty"`
	Description   string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	Reference     string                 `protobuf:"bytes,6,opt,name=reference,proto3" json:"reference,omitempty"`
	Status        string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	UnixTime      int64                  `protobuf:"varint,8,opt,name=unix_time,json=unixTime,proto3" json:"unix_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WalletTransaction) Reset() {
	*x = WalletTransaction{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WalletTransaction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WalletTransaction) ProtoMessage() {}

func (x *WalletTransaction) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WalletTransaction.ProtoReflect.Descriptor instead.
func (*WalletTransaction) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{5}
}

func (x *WalletTransaction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *WalletTransaction) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *WalletTransaction) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *WalletTransaction) GetAmountMinor() int64 {
	if x != nil {
		return x.AmountMinor
	}
	return 0
}

func (x *WalletTransaction) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *WalletTransaction) GetReference() string {
	if x != nil {
		return x.Reference
	}
	return ""
}

func (x *WalletTransaction) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *WalletTransaction) GetUnixTime() int64 {
	if x != nil {
		return x.UnixTime
	}
	return 0
}

type AddToCartRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ItemId        string                 `protobuf:"bytes,2,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	Qty           int32                  `protobuf:"varint,3,opt,name=qty,proto3" json:"qty,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddToCartRequest) Reset() {
	*x = AddToCartRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddToCartRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddToCartRequest) ProtoMessage() {}

func (x *AddToCartRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddToCartRequest.ProtoReflect.Descriptor instead.
func (*AddToCartRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{6}
}

func (x *AddToCartRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *AddToCartRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *AddToCartRequest) GetQty() int32 {
	if x != nil {
		return x.Qty
	}
	return 0
}

type SetCartQuantityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ItemId        string                 `protobuf:"bytes,2,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	Qty           int32                  `protobuf:"varint,3,opt,name=qty,proto3" json:"qty,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetCartQuantityRequest) Reset() {
	*x = SetCartQuantityRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetCartQuantityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetCartQuantityRequest) ProtoMessage() {}

func (x *SetCartQuantityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetCartQuantityRequest.ProtoReflect.Descriptor instead.
func (*SetCartQuantityRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{7}
}

func (x *SetCartQuantityRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *SetCartQuantityRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

func (x *SetCartQuantityRequest) GetQty() int32 {
	if x != nil {
		return x.Qty
	}
	return 0
}

type RemoveFromCartRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ItemId        string                 `protobuf:"bytes,2,opt,name=item_id,json=itemId,proto3" json:"item_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveFromCartRequest) Reset() {
	*x = RemoveFromCartRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveFromCartRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveFromCartRequest) ProtoMessage() {}

func (x *RemoveFromCartRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveFromCartRequest.ProtoReflect.Descriptor instead.
func (*RemoveFromCartRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{8}
}

func (x *RemoveFromCartRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *RemoveFromCartRequest) GetItemId() string {
	if x != nil {
		return x.ItemId
	}
	return ""
}

type GetCartRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCartRequest) Reset() {
	*x = GetCartRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCartRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCartRequest) ProtoMessage() {}

func (x *GetCartRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCartRequest.ProtoReflect.Descriptor instead.
func (*GetCartRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{9}
}

func (x *GetCartRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type ClearCartRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearCartRequest) Reset() {
	*x = ClearCartRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearCartRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearCartRequest) ProtoMessage() {}

func (x *ClearCartRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearCartRequest.ProtoReflect.Descriptor instead.
func (*ClearCartRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{10}
}

func (x *ClearCartRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type CartResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*CartItem            `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	SubtotalMinor int64                  `protobuf:"varint,2,opt,name=subtotal_minor,json=subtotalMinor,proto3" json:"subtotal_minor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CartResponse) Reset() {
	*x = CartResponse{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CartResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CartResponse) ProtoMessage() {}

func (x *CartResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CartResponse.ProtoReflect.Descriptor instead.
func (*CartResponse) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{11}
}

func (x *CartResponse) GetItems() []*CartItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *CartResponse) GetSubtotalMinor() int64 {
	if x != nil {
		return x.SubtotalMinor
	}
	return 0
}

type CheckoutRequest struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	OwnerId             string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Address             *ShippingAddress       `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
	PaymentMethod       PaymentMethod          `protobuf:"varint,3,opt,name=payment_method,json=paymentMethod,proto3,enum=market.v1.PaymentMethod" json:"payment_method,omitempty"`
	SpecialInstructions string                 `protobuf:"bytes,4,opt,name=special_instructions,json=specialInstructions,proto3" json:"special_instructions,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *CheckoutRequest) Reset() {
	*x = CheckoutRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckoutRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckoutRequest) ProtoMessage() {}

func (x *CheckoutRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckoutRequest.ProtoReflect.Descriptor instead.
func (*CheckoutRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{12}
}

func (x *CheckoutRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *CheckoutRequest) GetAddress() *ShippingAddress {
	if x != nil {
		return x.Address
	}
	return nil
}

func (x *CheckoutRequest) GetPaymentMethod() PaymentMethod {
	if x != nil {
		return x.PaymentMethod
	}
	return PaymentMethod_PAYMENT_METHOD_UNSPECIFIED
}

func (x *CheckoutRequest) GetSpecialInstructions() string {
	if x != nil {
		return x.SpecialInstructions
	}
	return ""
}

type CheckoutResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckoutResponse) Reset() {
	*x = CheckoutResponse{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckoutResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckoutResponse) ProtoMessage() {}

func (x *CheckoutResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckoutResponse.ProtoReflect.Descriptor instead.
func (*CheckoutResponse) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{13}
}

func (x *CheckoutResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type VerifyOrderOtpRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyOrderOtpRequest) Reset() {
	*x = VerifyOrderOtpRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyOrderOtpRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyOrderOtpRequest) ProtoMessage() {}

func (x *VerifyOrderOtpRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyOrderOtpRequest.ProtoReflect.Descriptor instead.
func (*VerifyOrderOtpRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{14}
}

func (x *VerifyOrderOtpRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *VerifyOrderOtpRequest) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

type VerifyDeliveryOtpRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyDeliveryOtpRequest) Reset() {
	*x = VerifyDeliveryOtpRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyDeliveryOtpRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyDeliveryOtpRequest) ProtoMessage() {}

func (x *VerifyDeliveryOtpRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyDeliveryOtpRequest.ProtoReflect.Descriptor instead.
func (*VerifyDeliveryOtpRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{15}
}

func (x *VerifyDeliveryOtpRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *VerifyDeliveryOtpRequest) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

type OrderStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Status        OrderStatus            `protobuf:"varint,2,opt,name=status,proto3,enum=market.v1.OrderStatus" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OrderStatusResponse) Reset() {
	*x = OrderStatusResponse{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderStatusResponse) ProtoMessage() {}

func (x *OrderStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderStatusResponse.ProtoReflect.Descriptor instead.
func (*OrderStatusResponse) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{16}
}

func (x *OrderStatusResponse) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *OrderStatusResponse) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

type ReissueOtpRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReissueOtpRequest) Reset() {
	*x = ReissueOtpRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReissueOtpRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReissueOtpRequest) ProtoMessage() {}

func (x *ReissueOtpRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReissueOtpRequest.ProtoReflect.Descriptor instead.
func (*ReissueOtpRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{17}
}

func (x *ReissueOtpRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

type ReissueOtpResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReissueOtpResponse) Reset() {
	*x = ReissueOtpResponse{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReissueOtpResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReissueOtpResponse) ProtoMessage() {}

func (x *ReissueOtpResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReissueOtpResponse.ProtoReflect.Descriptor instead.
func (*ReissueOtpResponse) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{18}
}

func (x *ReissueOtpResponse) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

type MarkProcessingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkProcessingRequest) Reset() {
	*x = MarkProcessingRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkProcessingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkProcessingRequest) ProtoMessage() {}

func (x *MarkProcessingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkProcessingRequest.ProtoReflect.Descriptor instead.
func (*MarkProcessingRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{19}
}

func (x *MarkProcessingRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

type ShipOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShipOrderRequest) Reset() {
	*x = ShipOrderRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShipOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShipOrderRequest) ProtoMessage() {}

func (x *ShipOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShipOrderRequest.ProtoReflect.Descriptor instead.
func (*ShipOrderRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{20}
}

func (x *ShipOrderRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

type ShipOrderResponse struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	OrderId               string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Status                OrderStatus            `protobuf:"varint,2,opt,name=status,proto3,enum=market.v1.OrderStatus" json:"status,omitempty"`
	TrackingNumber        string                 `protobuf:"bytes,3,opt,name=tracking_number,json=trackingNumber,proto3" json:"tracking_number,omitempty"`
	EstimatedDeliveryUnix int64                  `protobuf:"varint,4,opt,name=estimated_delivery_unix,json=estimatedDeliveryUnix,proto3" json:"estimated_delivery_unix,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *ShipOrderResponse) Reset() {
	*x = ShipOrderResponse{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShipOrderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShipOrderResponse) ProtoMessage() {}

func (x *ShipOrderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShipOrderResponse.ProtoReflect.Descriptor instead.
func (*ShipOrderResponse) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{21}
}

func (x *ShipOrderResponse) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *ShipOrderResponse) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

func (x *ShipOrderResponse) GetTrackingNumber() string {
	if x != nil {
		return x.TrackingNumber
	}
	return ""
}

func (x *ShipOrderResponse) GetEstimatedDeliveryUnix() int64 {
	if x != nil {
		return x.EstimatedDeliveryUnix
	}
	return 0
}

type CancelOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelOrderRequest) Reset() {
	*x = CancelOrderRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelOrderRequest) ProtoMessage() {}

func (x *CancelOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelOrderRequest.ProtoReflect.Descriptor instead.
func (*CancelOrderRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{22}
}

func (x *CancelOrderRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *CancelOrderRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type GetOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOrderRequest) Reset() {
	*x = GetOrderRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrderRequest) ProtoMessage() {}

func (x *GetOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrderRequest.ProtoReflect.Descriptor instead.
func (*GetOrderRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{23}
}

func (x *GetOrderRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

type GetOrderResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	Timeline      []*TimelineEvent       `protobuf:"bytes,2,rep,name=timeline,proto3" json:"timeline,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOrderResponse) Reset() {
	*x = GetOrderResponse{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrderResponse) ProtoMessage() {}

func (x *GetOrderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrderResponse.ProtoReflect.Descriptor instead.
func (*GetOrderResponse) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{24}
}

func (x *GetOrderResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

func (x *GetOrderResponse) GetTimeline() []*TimelineEvent {
	if x != nil {
		return x.Timeline
	}
	return nil
}

type ListOrdersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersRequest) Reset() {
	*x = ListOrdersRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersRequest) ProtoMessage() {}

func (x *ListOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersRequest.ProtoReflect.Descriptor instead.
func (*ListOrdersRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{25}
}

func (x *ListOrdersRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ListOrdersRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListOrdersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Orders        []*Order               `protobuf:"bytes,1,rep,name=orders,proto3" json:"orders,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersResponse) Reset() {
	*x = ListOrdersResponse{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersResponse) ProtoMessage() {}

func (x *ListOrdersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersResponse.ProtoReflect.Descriptor instead.
func (*ListOrdersResponse) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{26}
}

func (x *ListOrdersResponse) GetOrders() []*Order {
	if x != nil {
		return x.Orders
	}
	return nil
}

type GetWalletRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetWalletRequest) Reset() {
	*x = GetWalletRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetWalletRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetWalletRequest) ProtoMessage() {}

func (x *GetWalletRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetWalletRequest.ProtoReflect.Descriptor instead.
func (*GetWalletRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{27}
}

func (x *GetWalletRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type GetWalletResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	BalanceMinor  int64                  `protobuf:"varint,2,opt,name=balance_minor,json=balanceMinor,proto3" json:"balance_minor,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetWalletResponse) Reset() {
	*x = GetWalletResponse{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetWalletResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetWalletResponse) ProtoMessage() {}

func (x *GetWalletResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetWalletResponse.ProtoReflect.Descriptor instead.
func (*GetWalletResponse) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{28}
}

func (x *GetWalletResponse) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *GetWalletResponse) GetBalanceMinor() int64 {
	if x != nil {
		return x.BalanceMinor
	}
	return 0
}

type TopUpWalletRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	AmountMinor   int64                  `protobuf:"varint,2,opt,name=amount_minor,json=amountMinor,proto3" json:"amount_minor,omitempty"`
	Channel       string                 `protobuf:"bytes,3,opt,name=channel,proto3" json:"channel,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TopUpWalletRequest) Reset() {
	*x = TopUpWalletRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TopUpWalletRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TopUpWalletRequest) ProtoMessage() {}

func (x *TopUpWalletRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TopUpWalletRequest.ProtoReflect.Descriptor instead.
func (*TopUpWalletRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{29}
}

func (x *TopUpWalletRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *TopUpWalletRequest) GetAmountMinor() int64 {
	if x != nil {
		return x.AmountMinor
	}
	return 0
}

func (x *TopUpWalletRequest) GetChannel() string {
	if x != nil {
		return x.Channel
	}
	return ""
}

type TopUpWalletResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transaction   *WalletTransaction     `protobuf:"bytes,1,opt,name=transaction,proto3" json:"transaction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TopUpWalletResponse) Reset() {
	*x = TopUpWalletResponse{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TopUpWalletResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TopUpWalletResponse) ProtoMessage() {}

func (x *TopUpWalletResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TopUpWalletResponse.ProtoReflect.Descriptor instead.
func (*TopUpWalletResponse) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{30}
}

func (x *TopUpWalletResponse) GetTransaction() *WalletTransaction {
	if x != nil {
		return x.Transaction
	}
	return nil
}

type ListWalletTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWalletTransactionsRequest) Reset() {
	*x = ListWalletTransactionsRequest{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWalletTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWalletTransactionsRequest) ProtoMessage() {}

func (x *ListWalletTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWalletTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ListWalletTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{31}
}

func (x *ListWalletTransactionsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ListWalletTransactionsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListWalletTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transactions  []*WalletTransaction   `protobuf:"bytes,1,rep,name=transactions,proto3" json:"transactions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWalletTransactionsResponse) Reset() {
	*x = ListWalletTransactionsResponse{}
	mi := &file_proto_market_v1_storefront_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWalletTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWalletTransactionsResponse) ProtoMessage() {}

func (x *ListWalletTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_market_v1_storefront_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWalletTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ListWalletTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_proto_market_v1_storefront_proto_rawDescGZIP(), []int{32}
}

func (x *ListWalletTransactionsResponse) GetTransactions() []*WalletTransaction {
	if x != nil {
		return x.Transactions
	}
	return nil
}

var File_proto_market_v1_storefront_proto protoreflect.FileDescriptor

const file_proto_market_v1_storefront_proto_rawDesc = "" +
	"\n" +
	" proto/market/v1/storefront.proto\x12\tmarket.v1\"\xed\x01\n" +
	"\bCartItem\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12(\n" +
	"\x10unit_price_minor\x18\x03 \x01(\x03R\x0eunitPriceMinor\x12\x10\n" +
	"\x03qty\x18\x04 \x01(\x05R\x03qty\x12\x12\n" +
	"\x04kind\x18\x05 \x01(\tR\x04kind\x12\x16\n" +
	"\x06seller\x18\x06 \x01(\tR\x06seller\x12\x1a\n" +
	"\bdistrict\x18\a \x01(\tR\bdistrict\x12\x1a\n" +
	"\bcategory\x18\b \x01(\tR\bcategory\x12\x14\n" +
	"\x05image\x18\t \x01(\tR\x05image\"\xee\x01\n" +
	"\tOrderLine\x12\x17\n" +
	"\aitem_id\x18\x01 \x01(\tR\x06itemId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12(\n" +
	"\x10unit_price_minor\x18\x03 \x01(\x03R\x0eunitPriceMinor\x12\x10\n" +
	"\x03qty\x18\x04 \x01(\x05R\x03qty\x12\x12\n" +
	"\x04kind\x18\x05 \x01(\tR\x04kind\x12\x16\n" +
	"\x06seller\x18\x06 \x01(\tR\x06seller\x12\x1a\n" +
	"\bdistrict\x18\a \x01(\tR\bdistrict\x12\x1a\n" +
	"\bcategory\x18\b \x01(\tR\bcategory\x12\x14\n" +
	"\x05image\x18\t \x01(\tR\x05image\"\xa1\x01\n" +
	"\x0fShippingAddress\x12%\n" +
	"\x0erecipient_name\x18\x01 \x01(\tR\rrecipientName\x12\x14\n" +
	"\x05phone\x18\x02 \x01(\tR\x05phone\x12!\n" +
	"\faddress_line\x18\x03 \x01(\tR\vaddressLine\x12\x1a\n" +
	"\bdistrict\x18\x04 \x01(\tR\bdistrict\x12\x12\n" +
	"\x04area\x18\x05 \x01(\tR\x04area\"\xd1\x04\n" +
	"\x05Order\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12.\n" +
	"\x06status\x18\x03 \x01(\x0e2\x16.market.v1.OrderStatusR\x06status\x12?\n" +
	"\x0epayment_method\x18\x04 \x01(\x0e2\x18.market.v1.PaymentMethodR\rpaymentMethod\x12*\n" +
	"\x05lines\x18\x05 \x03(\v2\x14.market.v1.OrderLineR\x05lines\x124\n" +
	"\aaddress\x18\x06 \x01(\v2\x1a.market.v1.ShippingAddressR\aaddress\x121\n" +
	"\x14special_instructions\x18\a \x01(\tR\x13specialInstructions\x12%\n" +
	"\x0esubtotal_minor\x18\b \x01(\x03R\rsubtotalMinor\x12,\n" +
	"\x12delivery_fee_minor\x18\t \x01(\x03R\x10deliveryFeeMinor\x12\x1f\n" +
	"\vtotal_minor\x18\n" +
	" \x01(\x03R\n" +
	"totalMinor\x12'\n" +
	"\x0ftracking_number\x18\v \x01(\tR\x0etrackingNumber\x126\n" +
	"\x17estimated_delivery_unix\x18\f \x01(\x03R\x15estimatedDeliveryUnix\x12\x18\n" +
	"\aversion\x18\r \x01(\x03R\aversion\x12&\n" +
	"\x0fcreated_at_unix\x18\x0e \x01(\x03R\rcreatedAtUnix\"X\n" +
	"\rTimelineEvent\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\x12\x1b\n" +
	"\tunix_time\x18\x03 \x01(\x03R\bunixTime\"\xea\x01\n" +
	"\x11WalletTransaction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x12\n" +
	"\x04kind\x18\x03 \x01(\tR\x04kind\x12!\n" +
	"\famount_minor\x18\x04 \x01(\x03R\vamountMinor\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x12\x1c\n" +
	"\treference\x18\x06 \x01(\tR\treference\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12\x1b\n" +
	"\tunix_time\x18\b \x01(\x03R\bunixTime\"X\n" +
	"\x10AddToCartRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x17\n" +
	"\aitem_id\x18\x02 \x01(\tR\x06itemId\x12\x10\n" +
	"\x03qty\x18\x03 \x01(\x05R\x03qty\"^\n" +
	"\x16SetCartQuantityRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x17\n" +
	"\aitem_id\x18\x02 \x01(\tR\x06itemId\x12\x10\n" +
	"\x03qty\x18\x03 \x01(\x05R\x03qty\"K\n" +
	"\x15RemoveFromCartRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x17\n" +
	"\aitem_id\x18\x02 \x01(\tR\x06itemId\"+\n" +
	"\x0eGetCartRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"-\n" +
	"\x10ClearCartRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"`\n" +
	"\fCartResponse\x12)\n" +
	"\x05items\x18\x01 \x03(\v2\x13.market.v1.CartItemR\x05items\x12%\n" +
	"\x0esubtotal_minor\x18\x02 \x01(\x03R\rsubtotalMinor\"\xd6\x01\n" +
	"\x0fCheckoutRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x124\n" +
	"\aaddress\x18\x02 \x01(\v2\x1a.market.v1.ShippingAddressR\aaddress\x12?\n" +
	"\x0epayment_method\x18\x03 \x01(\x0e2\x18.market.v1.PaymentMethodR\rpaymentMethod\x121\n" +
	"\x14special_instructions\x18\x04 \x01(\tR\x13specialInstructions\":\n" +
	"\x10CheckoutResponse\x12&\n" +
	"\x05order\x18\x01 \x01(\v2\x10.market.v1.OrderR\x05order\"F\n" +
	"\x15VerifyOrderOtpRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\"I\n" +
	"\x18VerifyDeliveryOtpRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\"`\n" +
	"\x13OrderStatusResponse\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12.\n" +
	"\x06status\x18\x02 \x01(\x0e2\x16.market.v1.OrderStatusR\x06status\".\n" +
	"\x11ReissueOtpRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\"/\n" +
	"\x12ReissueOtpResponse\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\"2\n" +
	"\x15MarkProcessingRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\"-\n" +
	"\x10ShipOrderRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\"\xbf\x01\n" +
	"\x11ShipOrderResponse\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12.\n" +
	"\x06status\x18\x02 \x01(\x0e2\x16.market.v1.OrderStatusR\x06status\x12'\n" +
	"\x0ftracking_number\x18\x03 \x01(\tR\x0etrackingNumber\x126\n" +
	"\x17estimated_delivery_unix\x18\x04 \x01(\x03R\x15estimatedDeliveryUnix\"G\n" +
	"\x12CancelOrderRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\",\n" +
	"\x0fGetOrderRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\"p\n" +
	"\x10GetOrderResponse\x12&\n" +
	"\x05order\x18\x01 \x01(\v2\x10.market.v1.OrderR\x05order\x124\n" +
	"\btimeline\x18\x02 \x03(\v2\x18.market.v1.TimelineEventR\btimeline\"K\n" +
	"\x11ListOrdersRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\">\n" +
	"\x12ListOrdersResponse\x12(\n" +
	"\x06orders\x18\x01 \x03(\v2\x10.market.v1.OrderR\x06orders\"-\n" +
	"\x10GetWalletRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"S\n" +
	"\x11GetWalletResponse\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12#\n" +
	"\rbalance_minor\x18\x02 \x01(\x03R\fbalanceMinor\"l\n" +
	"\x12TopUpWalletRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12!\n" +
	"\famount_minor\x18\x02 \x01(\x03R\vamountMinor\x12\x18\n" +
	"\achannel\x18\x03 \x01(\tR\achannel\"U\n" +
	"\x13TopUpWalletResponse\x12>\n" +
	"\vtransaction\x18\x01 \x01(\v2\x1c.market.v1.WalletTransactionR\vtransaction\"P\n" +
	"\x1dListWalletTransactionsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"b\n" +
	"\x1eListWalletTransactionsResponse\x12@\n" +
	"\ftransactions\x18\x01 \x03(\v2\x1c.market.v1.WalletTransactionR\ftransactions*\xd0\x01\n" +
	"\vOrderStatus\x12\x1c\n" +
	"\x18ORDER_STATUS_UNSPECIFIED\x10\x00\x12\x18\n" +
	"\x14ORDER_STATUS_PENDING\x10\x01\x12\x1a\n" +
	"\x16ORDER_STATUS_CONFIRMED\x10\x02\x12\x1b\n" +
	"\x17ORDER_STATUS_PROCESSING\x10\x03\x12\x18\n" +
	"\x14ORDER_STATUS_SHIPPED\x10\x04\x12\x1a\n" +
	"\x16ORDER_STATUS_DELIVERED\x10\x05\x12\x1a\n" +
	"\x16ORDER_STATUS_CANCELLED\x10\x06*b\n" +
	"\rPaymentMethod\x12\x1e\n" +
	"\x1aPAYMENT_METHOD_UNSPECIFIED\x10\x00\x12\x19\n" +
	"\x15PAYMENT_METHOD_WALLET\x10\x01\x12\x16\n" +
	"\x12PAYMENT_METHOD_COD\x10\x022\xb1\n" +
	"\n" +
	"\x11StorefrontService\x12A\n" +
	"\tAddToCart\x12\x1b.market.v1.AddToCartRequest\x1a\x17.market.v1.CartResponse\x12M\n" +
	"\x0fSetCartQuantity\x12!.market.v1.SetCartQuantityRequest\x1a\x17.market.v1.CartResponse\x12K\n" +
	"\x0eRemoveFromCart\x12 .market.v1.RemoveFromCartRequest\x1a\x17.market.v1.CartResponse\x12=\n" +
	"\aGetCart\x12\x19.market.v1.GetCartRequest\x1a\x17.market.v1.CartResponse\x12A\n" +
	"\tClearCart\x12\x1b.market.v1.ClearCartRequest\x1a\x17.market.v1.CartResponse\x12C\n" +
	"\bCheckout\x12\x1a.market.v1.CheckoutRequest\x1a\x1b.market.v1.CheckoutResponse\x12R\n" +
	"\x0eVerifyOrderOtp\x12 .market.v1.VerifyOrderOtpRequest\x1a\x1e.market.v1.OrderStatusResponse\x12I\n" +
	"\n" +
	"ReissueOtp\x12\x1c.market.v1.ReissueOtpRequest\x1a\x1d.market.v1.ReissueOtpResponse\x12R\n" +
	"\x0eMarkProcessing\x12 .market.v1.MarkProcessingRequest\x1a\x1e.market.v1.OrderStatusResponse\x12F\n" +
	"\tShipOrder\x12\x1b.market.v1.ShipOrderRequest\x1a\x1c.market.v1.ShipOrderResponse\x12X\n" +
	"\x11VerifyDeliveryOtp\x12#.market.v1.VerifyDeliveryOtpRequest\x1a\x1e.market.v1.OrderStatusResponse\x12L\n" +
	"\vCancelOrder\x12\x1d.market.v1.CancelOrderRequest\x1a\x1e.market.v1.OrderStatusResponse\x12C\n" +
	"\bGetOrder\x12\x1a.market.v1.GetOrderRequest\x1a\x1b.market.v1.GetOrderResponse\x12I\n" +
	"\n" +
	"ListOrders\x12\x1c.market.v1.ListOrdersRequest\x1a\x1d.market.v1.ListOrdersResponse\x12F\n" +
	"\tGetWallet\x12\x1b.market.v1.GetWalletRequest\x1a\x1c.market.v1.GetWalletResponse\x12L\n" +
	"\vTopUpWallet\x12\x1d.market.v1.TopUpWalletRequest\x1a\x1e.market.v1.TopUpWalletResponse\x12m\n" +
	"\x16ListWalletTransactions\x12(.market.v1.ListWalletTransactionsRequest\x1a).market.v1.ListWalletTransactionsResponseB=Z;github.com/bondhubazaar/storefront/proto/market/v1;marketv1b\x06proto3"

var (
	file_proto_market_v1_storefront_proto_rawDescOnce sync.Once
	file_proto_market_v1_storefront_proto_rawDescData []byte
)

func file_proto_market_v1_storefront_proto_rawDescGZIP() []byte {
	file_proto_market_v1_storefront_proto_rawDescOnce.Do(func() {
		file_proto_market_v1_storefront_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_market_v1_storefront_proto_rawDesc), len(file_proto_market_v1_storefront_proto_rawDesc)))
	})
	return file_proto_market_v1_storefront_proto_rawDescData
}

var file_proto_market_v1_storefront_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_proto_market_v1_storefront_proto_msgTypes = make([]protoimpl.MessageInfo, 33)
var file_proto_market_v1_storefront_proto_goTypes = []any{
	(OrderStatus)(0),                       // 0: market.v1.OrderStatus
	(PaymentMethod)(0),                     // 1: market.v1.PaymentMethod
	(*CartItem)(nil),                       // 2: market.v1.CartItem
	(*OrderLine)(nil),                      // 3: market.v1.OrderLine
	(*ShippingAddress)(nil),                // 4: market.v1.ShippingAddress
	(*Order)(nil),                          // 5: market.v1.Order
	(*TimelineEvent)(nil),                  // 6: market.v1.TimelineEvent
	(*WalletTransaction)(nil),              // 7: market.v1.WalletTransaction
	(*AddToCartRequest)(nil),               // 8: market.v1.AddToCartRequest
	(*SetCartQuantityRequest)(nil),         // 9: market.v1.SetCartQuantityRequest
	(*RemoveFromCartRequest)(nil),          // 10: market.v1.RemoveFromCartRequest
	(*GetCartRequest)(nil),                 // 11: market.v1.GetCartRequest
	(*ClearCartRequest)(nil),               // 12: market.v1.ClearCartRequest
	(*CartResponse)(nil),                   // 13: market.v1.CartResponse
	(*CheckoutRequest)(nil),                // 14: market.v1.CheckoutRequest
	(*CheckoutResponse)(nil),               // 15: market.v1.CheckoutResponse
	(*VerifyOrderOtpRequest)(nil),          // 16: market.v1.VerifyOrderOtpRequest
	(*VerifyDeliveryOtpRequest)(nil),       // 17: market.v1.VerifyDeliveryOtpRequest
	(*OrderStatusResponse)(nil),            // 18: market.v1.OrderStatusResponse
	(*ReissueOtpRequest)(nil),              // 19: market.v1.ReissueOtpRequest
	(*ReissueOtpResponse)(nil),             // 20: market.v1.ReissueOtpResponse
	(*MarkProcessingRequest)(nil),          // 21: market.v1.MarkProcessingRequest
	(*ShipOrderRequest)(nil),               // 22: market.v1.ShipOrderRequest
	(*ShipOrderResponse)(nil),              // 23: market.v1.ShipOrderResponse
	(*CancelOrderRequest)(nil),             // 24: market.v1.CancelOrderRequest
	(*GetOrderRequest)(nil),                // 25: market.v1.GetOrderRequest
	(*GetOrderResponse)(nil),               // 26: market.v1.GetOrderResponse
	(*ListOrdersRequest)(nil),              // 27: market.v1.ListOrdersRequest
	(*ListOrdersResponse)(nil),             // 28: market.v1.ListOrdersResponse
	(*GetWalletRequest)(nil),               // 29: market.v1.GetWalletRequest
	(*GetWalletResponse)(nil),              // 30: market.v1.GetWalletResponse
	(*TopUpWalletRequest)(nil),             // 31: market.v1.TopUpWalletRequest
	(*TopUpWalletResponse)(nil),            // 32: market.v1.TopUpWalletResponse
	(*ListWalletTransactionsRequest)(nil),  // 33: market.v1.ListWalletTransactionsRequest
	(*ListWalletTransactionsResponse)(nil), // 34: market.v1.ListWalletTransactionsResponse
}
var file_proto_market_v1_storefront_proto_depIdxs = []int32{
	0,  // 0: market.v1.Order.status:type_name -> market.v1.OrderStatus
	1,  // 1: market.v1.Order.payment_method:type_name -> market.v1.PaymentMethod
	3,  // 2: market.v1.Order.lines:type_name -> market.v1.OrderLine
	4,  // 3: market.v1.Order.address:type_name -> market.v1.ShippingAddress
	2,  // 4: market.v1.CartResponse.items:type_name -> market.v1.CartItem
	4,  // 5: market.v1.CheckoutRequest.address:type_name -> market.v1.ShippingAddress
	1,  // 6: market.v1.CheckoutRequest.payment_method:type_name -> market.v1.PaymentMethod
	5,  // 7: market.v1.CheckoutResponse.order:type_name -> market.v1.Order
	0,  // 8: market.v1.OrderStatusResponse.status:type_name -> market.v1.OrderStatus
	0,  // 9: market.v1.ShipOrderResponse.status:type_name -> market.v1.OrderStatus
	5,  // 10: market.v1.GetOrderResponse.order:type_name -> market.v1.Order
	6,  // 11: market.v1.GetOrderResponse.timeline:type_name -> market.v1.TimelineEvent
	5,  // 12: market.v1.ListOrdersResponse.orders:type_name -> market.v1.Order
	7,  // 13: market.v1.TopUpWalletResponse.transaction:type_name -> market.v1.WalletTransaction
	7,  // 14: market.v1.ListWalletTransactionsResponse.transactions:type_name -> market.v1.WalletTransaction
	8,  // 15: market.v1.StorefrontService.AddToCart:input_type -> market.v1.AddToCartRequest
	9,  // 16: market.v1.StorefrontService.SetCartQuantity:input_type -> market.v1.SetCartQuantityRequest
	10, // 17: market.v1.StorefrontService.RemoveFromCart:input_type -> market.v1.RemoveFromCartRequest
	11, // 18: market.v1.StorefrontService.GetCart:input_type -> market.v1.GetCartRequest
	12, // 19: market.v1.StorefrontService.ClearCart:input_type -> market.v1.ClearCartRequest
	14, // 20: market.v1.StorefrontService.Checkout:input_type -> market.v1.CheckoutRequest
	16, // 21: market.v1.StorefrontService.VerifyOrderOtp:input_type -> market.v1.VerifyOrderOtpRequest
	19, // 22: market.v1.StorefrontService.ReissueOtp:input_type -> market.v1.ReissueOtpRequest
	21, // 23: market.v1.StorefrontService.MarkProcessing:input_type -> market.v1.MarkProcessingRequest
	22, // 24: market.v1.StorefrontService.ShipOrder:input_type -> market.v1.ShipOrderRequest
	17, // 25: market.v1.StorefrontService.VerifyDeliveryOtp:input_type -> market.v1.VerifyDeliveryOtpRequest
	24, // 26: market.v1.StorefrontService.CancelOrder:input_type -> market.v1.CancelOrderRequest
	25, // 27: market.v1.StorefrontService.GetOrder:input_type -> market.v1.GetOrderRequest
	27, // 28: market.v1.StorefrontService.ListOrders:input_type -> market.v1.ListOrdersRequest
	29, // 29: market.v1.StorefrontService.GetWallet:input_type -> market.v1.GetWalletRequest
	31, // 30: market.v1.StorefrontService.TopUpWallet:input_type -> market.v1.TopUpWalletRequest
	33, // 31: market.v1.StorefrontService.ListWalletTransactions:input_type -> market.v1.ListWalletTransactionsRequest
	13, // 32: market.v1.StorefrontService.AddToCart:output_type -> market.v1.CartResponse
	13, // 33: market.v1.StorefrontService.SetCartQuantity:output_type -> market.v1.CartResponse
	13, // 34: market.v1.StorefrontService.RemoveFromCart:output_type -> market.v1.CartResponse
	13, // 35: market.v1.StorefrontService.GetCart:output_type -> market.v1.CartResponse
	13, // 36: market.v1.StorefrontService.ClearCart:output_type -> market.v1.CartResponse
	15, // 37: market.v1.StorefrontService.Checkout:output_type -> market.v1.CheckoutResponse
	18, // 38: market.v1.StorefrontService.VerifyOrderOtp:output_type -> market.v1.OrderStatusResponse
	20, // 39: market.v1.StorefrontService.ReissueOtp:output_type -> market.v1.ReissueOtpResponse
	18, // 40: market.v1.StorefrontService.MarkProcessing:output_type -> market.v1.OrderStatusResponse
	23, // 41: market.v1.StorefrontService.ShipOrder:output_type -> market.v1.ShipOrderResponse
	18, // 42: market.v1.StorefrontService.VerifyDeliveryOtp:output_type -> market.v1.OrderStatusResponse
	18, // 43: market.v1.StorefrontService.CancelOrder:output_type -> market.v1.OrderStatusResponse
	26, // 44: market.v1.StorefrontService.GetOrder:output_type -> market.v1.GetOrderResponse
	28, // 45: market.v1.StorefrontService.ListOrders:output_type -> market.v1.ListOrdersResponse
	30, // 46: market.v1.StorefrontService.GetWallet:output_type -> market.v1.GetWalletResponse
	32, // 47: market.v1.StorefrontService.TopUpWallet:output_type -> market.v1.TopUpWalletResponse
	34, // 48: market.v1.StorefrontService.ListWalletTransactions:output_type -> market.v1.ListWalletTransactionsResponse
	32, // [32:49] is the sub-list for method output_type
	15, // [15:32] is the sub-list for method input_type
	15, // [15:15] is the sub-list for extension type_name
	15, // [15:15] is the sub-list for extension extendee
	0,  // [0:15] is the sub-list for field type_name
}

func init() { file_proto_market_v1_storefront_proto_init() }
func file_proto_market_v1_storefront_proto_init() {
	if File_proto_market_v1_storefront_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_market_v1_storefront_proto_rawDesc), len(file_proto_market_v1_storefront_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   33,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_market_v1_storefront_proto_goTypes,
		DependencyIndexes: file_proto_market_v1_storefront_proto_depIdxs,
		EnumInfos:         file_proto_market_v1_storefront_proto_enumTypes,
		MessageInfos:      file_proto_market_v1_storefront_proto_msgTypes,
	}.Build()
	File_proto_market_v1_storefront_proto = out.File
	file_proto_market_v1_storefront_proto_goTypes = nil
	file_proto_market_v1_storefront_proto_depIdxs = nil
}
