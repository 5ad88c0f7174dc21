package grpcsvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/bondhubazaar/storefront/internal/domain"
	"github.com/bondhubazaar/storefront/internal/service/cart"
	"github.com/bondhubazaar/storefront/internal/service/checkout"
	"github.com/bondhubazaar/storefront/internal/service/order"
	"github.com/bondhubazaar/storefront/internal/service/wallet"
	marketv1 "github.com/bondhubazaar/storefront/proto/market/v1"
)

// StorefrontService реализует gRPC API витрины поверх доменных сервисов:
// корзина, оформление, жизненный цикл заказа и кошелёк.
type StorefrontService struct {
	marketv1.UnimplementedStorefrontServiceServer

	carts     *cart.Service
	catalog   domain.CatalogService
	checkout  *checkout.Builder
	lifecycle *order.Lifecycle
	ledger    *wallet.Ledger
	idemRepo  domain.IdempotencyRepository
	logger    *log.Entry
}

const (
	grpcMethodCheckout    = "/market.v1.StorefrontService/Checkout"
	grpcMethodCancelOrder = "/market.v1.StorefrontService/CancelOrder"
	grpcMethodTopUpWallet = "/market.v1.StorefrontService/TopUpWallet"

	defaultListOrdersLimit       = 100
	defaultListTransactionsLimit = 50

	// guestOwnerID подставляется, когда клиент не передал owner_id.
	guestOwnerID = "guest"
)

// NewStorefrontService конструирует сервис с зависимостями.
func NewStorefrontService(
	carts *cart.Service,
	catalog domain.CatalogService,
	builder *checkout.Builder,
	lifecycle *order.Lifecycle,
	ledger *wallet.Ledger,
	idemRepo domain.IdempotencyRepository,
	logger *log.Entry,
) *StorefrontService {
	if logger == nil {
		logger = log.New().WithField("component", "storefront-service")
	}
	return &StorefrontService{
		carts:     carts,
		catalog:   catalog,
		checkout:  builder,
		lifecycle: lifecycle,
		ledger:    ledger,
		idemRepo:  idemRepo,
		logger:    logger,
	}
}

func ownerOrGuest(ownerID string) string {
	if strings.TrimSpace(ownerID) == "" {
		return guestOwnerID
	}
	return ownerID
}

// AddToCart подтягивает позицию из каталога и кладёт её в корзину клиента.
func (s *StorefrontService) AddToCart(ctx context.Context, req *marketv1.AddToCartRequest) (*marketv1.CartResponse, error) {
	if req == nil || req.ItemId == "" {
		return nil, status.Error(codes.InvalidArgument, "item_id is required")
	}

	ownerID := ownerOrGuest(req.OwnerId)
	item, err := s.catalog.Lookup(ctx, req.ItemId)
	if err != nil {
		s.logger.WithError(err).WithField("item_id", req.ItemId).Warn("catalog lookup failed")
		return nil, status.Error(codes.NotFound, "catalog item not found")
	}

	if req.Qty > 0 {
		item.Qty = req.Qty
	}
	if err := s.carts.Add(ownerID, item); err != nil {
		return nil, s.rpcError("AddToCart", err)
	}

	return s.cartResponse(ownerID), nil
}

// SetCartQuantity выставляет количество уже лежащей в корзине позиции.
func (s *StorefrontService) SetCartQuantity(_ context.Context, req *marketv1.SetCartQuantityRequest) (*marketv1.CartResponse, error) {
	if req == nil || req.ItemId == "" {
		return nil, status.Error(codes.InvalidArgument, "item_id is required")
	}

	ownerID := ownerOrGuest(req.OwnerId)
	if err := s.carts.SetQuantity(ownerID, req.ItemId, req.Qty); err != nil {
		return nil, s.rpcError("SetCartQuantity", err)
	}

	return s.cartResponse(ownerID), nil
}

// RemoveFromCart убирает позицию; отсутствующая позиция не считается ошибкой.
func (s *StorefrontService) RemoveFromCart(_ context.Context, req *marketv1.RemoveFromCartRequest) (*marketv1.CartResponse, error) {
	if req == nil || req.ItemId == "" {
		return nil, status.Error(codes.InvalidArgument, "item_id is required")
	}

	ownerID := ownerOrGuest(req.OwnerId)
	if err := s.carts.Remove(ownerID, req.ItemId); err != nil {
		return nil, s.rpcError("RemoveFromCart", err)
	}

	return s.cartResponse(ownerID), nil
}

// GetCart возвращает текущее содержимое корзины клиента.
func (s *StorefrontService) GetCart(_ context.Context, req *marketv1.GetCartRequest) (*marketv1.CartResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	return s.cartResponse(ownerOrGuest(req.OwnerId)), nil
}

// ClearCart опустошает корзину клиента целиком.
func (s *StorefrontService) ClearCart(_ context.Context, req *marketv1.ClearCartRequest) (*marketv1.CartResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	ownerID := ownerOrGuest(req.OwnerId)
	if err := s.carts.Clear(ownerID); err != nil {
		return nil, s.rpcError("ClearCart", err)
	}

	return s.cartResponse(ownerID), nil
}

// Checkout замораживает корзину в заказ и отправляет OTP подтверждения.
func (s *StorefrontService) Checkout(ctx context.Context, req *marketv1.CheckoutRequest) (*marketv1.CheckoutResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(
		s,
		ctx,
		grpcMethodCheckout,
		req,
		func() *marketv1.CheckoutResponse { return &marketv1.CheckoutResponse{} },
		func(ctx context.Context) (*marketv1.CheckoutResponse, error) {
			return s.checkoutInternal(ctx, req)
		},
	)
}

func (s *StorefrontService) checkoutInternal(ctx context.Context, req *marketv1.CheckoutRequest) (*marketv1.CheckoutResponse, error) {
	ownerID := ownerOrGuest(req.OwnerId)

	placed, err := s.checkout.Build(
		ctx,
		ownerID,
		fromProtoAddress(req.Address),
		fromProtoPayment(req.PaymentMethod),
		req.SpecialInstructions,
	)
	if err != nil {
		return nil, s.rpcError("Checkout", err)
	}

	return &marketv1.CheckoutResponse{Order: toProtoOrder(placed)}, nil
}

// VerifyOrderOtp подтверждает размещение заказа предъявленным кодом.
func (s *StorefrontService) VerifyOrderOtp(ctx context.Context, req *marketv1.VerifyOrderOtpRequest) (*marketv1.OrderStatusResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	if req.Code == "" {
		return nil, status.Error(codes.InvalidArgument, "code is required")
	}

	updated, err := s.lifecycle.ConfirmPlacement(ctx, req.OrderId, req.Code)
	if err != nil {
		return nil, s.rpcError("VerifyOrderOtp", err)
	}

	return &marketv1.OrderStatusResponse{OrderId: updated.ID, Status: toProtoStatus(updated.Status)}, nil
}

// ReissueOtp выпускает новый код для текущего этапа заказа.
func (s *StorefrontService) ReissueOtp(ctx context.Context, req *marketv1.ReissueOtpRequest) (*marketv1.ReissueOtpResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	if err := s.lifecycle.ReissueCode(ctx, req.OrderId); err != nil {
		return nil, s.rpcError("ReissueOtp", err)
	}

	return &marketv1.ReissueOtpResponse{OrderId: req.OrderId}, nil
}

// MarkProcessing переводит подтверждённый заказ в сборку у продавца.
func (s *StorefrontService) MarkProcessing(ctx context.Context, req *marketv1.MarkProcessingRequest) (*marketv1.OrderStatusResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	updated, err := s.lifecycle.MarkProcessing(ctx, req.OrderId)
	if err != nil {
		return nil, s.rpcError("MarkProcessing", err)
	}

	return &marketv1.OrderStatusResponse{OrderId: updated.ID, Status: toProtoStatus(updated.Status)}, nil
}

// ShipOrder передаёт заказ курьеру и выпускает OTP получения.
func (s *StorefrontService) ShipOrder(ctx context.Context, req *marketv1.ShipOrderRequest) (*marketv1.ShipOrderResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	updated, err := s.lifecycle.Ship(ctx, req.OrderId)
	if err != nil {
		return nil, s.rpcError("ShipOrder", err)
	}

	resp := &marketv1.ShipOrderResponse{
		OrderId:        updated.ID,
		Status:         toProtoStatus(updated.Status),
		TrackingNumber: updated.TrackingNumber,
	}
	if !updated.EstimatedDelivery.IsZero() {
		resp.EstimatedDeliveryUnix = updated.EstimatedDelivery.Unix()
	}
	return resp, nil
}

// VerifyDeliveryOtp подтверждает получение заказа кодом получателя.
func (s *StorefrontService) VerifyDeliveryOtp(ctx context.Context, req *marketv1.VerifyDeliveryOtpRequest) (*marketv1.OrderStatusResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	if req.Code == "" {
		return nil, status.Error(codes.InvalidArgument, "code is required")
	}

	updated, err := s.lifecycle.ConfirmDelivery(ctx, req.OrderId, req.Code)
	if err != nil {
		return nil, s.rpcError("VerifyDeliveryOtp", err)
	}

	return &marketv1.OrderStatusResponse{OrderId: updated.ID, Status: toProtoStatus(updated.Status)}, nil
}

// CancelOrder отменяет заказ до отгрузки и возвращает списанные средства.
func (s *StorefrontService) CancelOrder(ctx context.Context, req *marketv1.CancelOrderRequest) (*marketv1.OrderStatusResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	return withIdempotency(
		s,
		ctx,
		grpcMethodCancelOrder,
		req,
		func() *marketv1.OrderStatusResponse { return &marketv1.OrderStatusResponse{} },
		func(ctx context.Context) (*marketv1.OrderStatusResponse, error) {
			return s.cancelOrderInternal(ctx, req)
		},
	)
}

func (s *StorefrontService) cancelOrderInternal(ctx context.Context, req *marketv1.CancelOrderRequest) (*marketv1.OrderStatusResponse, error) {
	updated, err := s.lifecycle.Cancel(ctx, req.OrderId, req.Reason)
	if err != nil {
		return nil, s.rpcError("CancelOrder", err)
	}

	return &marketv1.OrderStatusResponse{OrderId: updated.ID, Status: toProtoStatus(updated.Status)}, nil
}

// GetOrder возвращает состояние заказа и таймлайн событий.
func (s *StorefrontService) GetOrder(ctx context.Context, req *marketv1.GetOrderRequest) (*marketv1.GetOrderResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	found, timeline, err := s.lifecycle.Get(ctx, req.OrderId)
	if err != nil {
		return nil, s.rpcError("GetOrder", err)
	}

	return &marketv1.GetOrderResponse{
		Order:    toProtoOrder(found),
		Timeline: toProtoTimeline(timeline),
	}, nil
}

// ListOrders возвращает заказы клиента, новые первыми.
func (s *StorefrontService) ListOrders(ctx context.Context, req *marketv1.ListOrdersRequest) (*marketv1.ListOrdersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	limit := int(req.PageSize)
	if limit <= 0 {
		limit = defaultListOrdersLimit
	}

	orders, err := s.lifecycle.List(ctx, ownerOrGuest(req.OwnerId), limit)
	if err != nil {
		return nil, s.rpcError("ListOrders", err)
	}

	result := make([]*marketv1.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, toProtoOrder(o))
	}
	return &marketv1.ListOrdersResponse{Orders: result}, nil
}

// GetWallet возвращает баланс кошелька, создавая пустой счёт при первом обращении.
func (s *StorefrontService) GetWallet(ctx context.Context, req *marketv1.GetWalletRequest) (*marketv1.GetWalletResponse, error) {
	if req == nil || req.OwnerId == "" {
		return nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}

	balance, err := s.ledger.Balance(ctx, req.OwnerId)
	if err != nil {
		return nil, s.rpcError("GetWallet", err)
	}

	return &marketv1.GetWalletResponse{OwnerId: req.OwnerId, BalanceMinor: balance}, nil
}

// TopUpWallet пополняет кошелёк через канал мобильного банкинга.
func (s *StorefrontService) TopUpWallet(ctx context.Context, req *marketv1.TopUpWalletRequest) (*marketv1.TopUpWalletResponse, error) {
	if req == nil || req.OwnerId == "" {
		return nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}

	return withIdempotency(
		s,
		ctx,
		grpcMethodTopUpWallet,
		req,
		func() *marketv1.TopUpWalletResponse { return &marketv1.TopUpWalletResponse{} },
		func(ctx context.Context) (*marketv1.TopUpWalletResponse, error) {
			return s.topUpWalletInternal(ctx, req)
		},
	)
}

func (s *StorefrontService) topUpWalletInternal(ctx context.Context, req *marketv1.TopUpWalletRequest) (*marketv1.TopUpWalletResponse, error) {
	tx, err := s.ledger.TopUp(ctx, req.OwnerId, req.AmountMinor, req.Channel)
	if err != nil {
		return nil, s.rpcError("TopUpWallet", err)
	}

	return &marketv1.TopUpWalletResponse{Transaction: toProtoTransaction(tx)}, nil
}

// ListWalletTransactions возвращает историю операций, новые первыми.
func (s *StorefrontService) ListWalletTransactions(ctx context.Context, req *marketv1.ListWalletTransactionsRequest) (*marketv1.ListWalletTransactionsResponse, error) {
	if req == nil || req.OwnerId == "" {
		return nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}

	limit := int(req.Limit)
	if limit <= 0 {
		limit = defaultListTransactionsLimit
	}

	history, err := s.ledger.History(ctx, req.OwnerId, limit)
	if err != nil {
		return nil, s.rpcError("ListWalletTransactions", err)
	}

	result := make([]*marketv1.WalletTransaction, 0, len(history))
	for _, tx := range history {
		result = append(result, toProtoTransaction(tx))
	}
	return &marketv1.ListWalletTransactionsResponse{Transactions: result}, nil
}

func (s *StorefrontService) cartResponse(ownerID string) *marketv1.CartResponse {
	items := s.carts.Items(ownerID)
	result := make([]*marketv1.CartItem, 0, len(items))
	for _, item := range items {
		result = append(result, toProtoCartItem(item))
	}
	return &marketv1.CartResponse{
		Items:         result,
		SubtotalMinor: s.carts.SubtotalMinor(ownerID),
	}
}

// rpcError транслирует доменные ошибки в коды gRPC. Все отказы проверки
// OTP намеренно схлопываются в одно сообщение.
func (s *StorefrontService) rpcError(operation string, err error) error {
	s.logger.WithError(err).WithField("operation", operation).Warn("request failed")

	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrWalletNotFound):
		return status.Error(codes.NotFound, err.Error())
	case domain.IsOtpRejection(err):
		return status.Error(codes.InvalidArgument, domain.ErrInvalidCode.Error())
	case errors.Is(err, domain.ErrOrderTerminal),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrOrderNotCancellable),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrTopUpDeclined):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrCartEmpty),
		errors.Is(err, domain.ErrAddressIncomplete),
		errors.Is(err, domain.ErrPaymentMethodRequired),
		errors.Is(err, domain.ErrPaymentMethodInvalid),
		errors.Is(err, domain.ErrOwnerRequired),
		errors.Is(err, domain.ErrItemIDRequired),
		errors.Is(err, domain.ErrLineQtyInvalid),
		errors.Is(err, domain.ErrLinePriceInvalid),
		errors.Is(err, domain.ErrAmountMismatch),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrTopUpBelowMinimum):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrOrderVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

const (
	idempotencyKeyHeader = "idempotency-key"
	idempotencyTTL       = 24 * time.Hour
)

type idempotencyErrorPayload struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

func withIdempotency[T proto.Message](
	s *StorefrontService,
	ctx context.Context,
	method string,
	req proto.Message,
	newResp func() T,
	handler func(context.Context) (T, error),
) (T, error) {
	var zero T

	if s.idemRepo == nil {
		return handler(ctx)
	}

	idemKey, err := readIdempotencyKey(ctx)
	if err != nil {
		return zero, err
	}

	reqHash, err := buildIdempotencyRequestHash(method, req)
	if err != nil {
		s.logger.WithError(err).WithField("method", method).Warn("failed to build idempotency request hash")
		return zero, status.Error(codes.Internal, "failed to initialize idempotency request")
	}

	record, err := s.idemRepo.CreateProcessing(idemKey, reqHash, time.Now().UTC().Add(idempotencyTTL))
	if err != nil {
		return replayIdempotency(s, err, record, newResp)
	}

	resp, runErr := handler(ctx)
	if runErr != nil {
		s.cacheIdempotencyFailure(idemKey, runErr)
		return resp, runErr
	}

	if cacheErr := s.cacheIdempotencySuccess(idemKey, resp); cacheErr != nil {
		s.logger.WithError(cacheErr).WithField("idempotency_key", idemKey).Warn("failed to store idempotent success response")
	}

	return resp, nil
}

func replayIdempotency[T proto.Message](
	s *StorefrontService,
	createErr error,
	record domain.IdempotencyRecord,
	newResp func() T,
) (T, error) {
	var zero T

	switch {
	case errors.Is(createErr, domain.ErrIdempotencyHashMismatch):
		return zero, status.Error(codes.AlreadyExists, "idempotency key is already used with different request payload")
	case errors.Is(createErr, domain.ErrIdempotencyKeyAlreadyExists):
		switch record.Status {
		case domain.IdempotencyStatusDone:
			if len(record.ResponseBody) == 0 {
				return zero, status.Error(codes.Internal, "idempotency cache is empty")
			}
			resp := newResp()
			if err := protojson.Unmarshal(record.ResponseBody, resp); err != nil {
				s.logger.WithError(err).WithField("idempotency_key", record.Key).Warn("failed to decode cached idempotency response")
				return zero, status.Error(codes.Internal, "failed to decode cached idempotency response")
			}
			return resp, nil
		case domain.IdempotencyStatusProcessing:
			return zero, status.Error(codes.Aborted, "request with the same idempotency key is already processing")
		case domain.IdempotencyStatusFailed:
			return zero, decodeIdempotencyFailure(record)
		default:
			return zero, status.Error(codes.Internal, "unknown idempotency record status")
		}
	default:
		s.logger.WithError(createErr).Warn("failed to create idempotency record")
		return zero, status.Error(codes.Internal, "failed to initialize idempotency request")
	}
}

func (s *StorefrontService) cacheIdempotencySuccess(key string, resp proto.Message) error {
	if resp == nil {
		return s.idemRepo.MarkDone(key, nil, int(codes.OK))
	}

	data, err := protojson.Marshal(resp)
	if err != nil {
		return err
	}
	return s.idemRepo.MarkDone(key, data, int(codes.OK))
}

func (s *StorefrontService) cacheIdempotencyFailure(key string, runErr error) {
	st := status.Convert(runErr)
	code := st.Code()
	if code == codes.OK {
		code = codes.Internal
	}

	payload, err := json.Marshal(idempotencyErrorPayload{
		Code:    int32(code), //nolint:gosec // codes.Code is a bounded enum value.
		Message: st.Message(),
	})
	if err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to encode idempotency failure payload")
		payload = nil
	}

	if err := s.idemRepo.MarkFailed(key, payload, int(code)); err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to store idempotency failure response")
	}
}

func decodeIdempotencyFailure(record domain.IdempotencyRecord) error {
	if len(record.ResponseBody) > 0 {
		var payload idempotencyErrorPayload
		if err := json.Unmarshal(record.ResponseBody, &payload); err == nil {
			if code, ok := grpcCodeFromInt32(payload.Code); ok {
				if code == codes.OK {
					code = codes.Internal
				}
				if payload.Message == "" {
					payload.Message = "previous request with the same idempotency key failed"
				}
				return status.Error(code, payload.Message)
			}
		}
	}

	if record.HTTPStatus > 0 {
		if code, ok := grpcCodeFromInt(record.HTTPStatus); ok && code != codes.OK {
			return status.Error(code, "previous request with the same idempotency key failed")
		}
	}

	return status.Error(codes.Internal, "previous request with the same idempotency key failed")
}

func grpcCodeFromInt32(value int32) (codes.Code, bool) {
	if value < int32(codes.OK) || value > int32(codes.Unauthenticated) {
		return codes.Internal, false
	}
	return codes.Code(uint32(value)), true
}

func grpcCodeFromInt(value int) (codes.Code, bool) {
	if value < int(codes.OK) || value > int(codes.Unauthenticated) {
		return codes.Internal, false
	}
	return codes.Code(uint32(value)), true
}

func readIdempotencyKey(ctx context.Context) (string, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(idempotencyKeyHeader)
		if len(values) > 0 && strings.TrimSpace(values[0]) != "" {
			return strings.TrimSpace(values[0]), nil
		}
	}

	if md, ok := metadata.FromOutgoingContext(ctx); ok {
		values := md.Get(idempotencyKeyHeader)
		if len(values) > 0 && strings.TrimSpace(values[0]) != "" {
			return strings.TrimSpace(values[0]), nil
		}
	}

	return "", status.Error(codes.InvalidArgument, "idempotency-key metadata is required")
}

func buildIdempotencyRequestHash(method string, req proto.Message) (string, error) {
	if req == nil {
		return "", fmt.Errorf("request is nil")
	}

	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(req)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, len(method)+1+len(data))
	payload = append(payload, method...)
	payload = append(payload, ':')
	payload = append(payload, data...)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

func toProtoCartItem(item domain.CartItem) *marketv1.CartItem {
	return &marketv1.CartItem{
		ItemId:         item.ItemID,
		Name:           item.Name,
		UnitPriceMinor: item.UnitPriceMinor,
		Qty:            item.Qty,
		Kind:           string(item.Kind),
		Seller:         item.Seller,
		District:       item.District,
		Category:       item.Category,
		Image:          item.Image,
	}
}

func toProtoOrder(o domain.Order) *marketv1.Order {
	lines := make([]*marketv1.OrderLine, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, &marketv1.OrderLine{
			ItemId:         line.ItemID,
			Name:           line.Name,
			UnitPriceMinor: line.UnitPriceMinor,
			Qty:            line.Qty,
			Kind:           string(line.Kind),
			Seller:         line.Seller,
			District:       line.District,
			Category:       line.Category,
			Image:          line.Image,
		})
	}

	result := &marketv1.Order{
		Id:            o.ID,
		OwnerId:       o.OwnerID,
		Status:        toProtoStatus(o.Status),
		PaymentMethod: toProtoPayment(o.PaymentMethod),
		Lines:         lines,
		Address: &marketv1.ShippingAddress{
			RecipientName: o.Address.RecipientName,
			Phone:         o.Address.Phone,
			AddressLine:   o.Address.AddressLine,
			District:      o.Address.District,
			Area:          o.Address.Area,
		},
		SpecialInstructions: o.SpecialInstructions,
		SubtotalMinor:       o.SubtotalMinor,
		DeliveryFeeMinor:    o.DeliveryFeeMinor,
		TotalMinor:          o.TotalMinor,
		TrackingNumber:      o.TrackingNumber,
		Version:             o.Version,
	}
	if !o.EstimatedDelivery.IsZero() {
		result.EstimatedDeliveryUnix = o.EstimatedDelivery.Unix()
	}
	if !o.CreatedAt.IsZero() {
		result.CreatedAtUnix = o.CreatedAt.Unix()
	}
	return result
}

func toProtoTimeline(events []domain.TimelineEvent) []*marketv1.TimelineEvent {
	result := make([]*marketv1.TimelineEvent, 0, len(events))
	for _, event := range events {
		result = append(result, &marketv1.TimelineEvent{
			Type:     event.Type,
			Reason:   event.Reason,
			UnixTime: event.Occurred.Unix(),
		})
	}
	return result
}

func toProtoTransaction(tx domain.WalletTransaction) *marketv1.WalletTransaction {
	return &marketv1.WalletTransaction{
		Id:          tx.ID,
		OwnerId:     tx.OwnerID,
		Kind:        string(tx.Kind),
		AmountMinor: tx.AmountMinor,
		Description: tx.Description,
		Reference:   tx.Reference,
		Status:      string(tx.Status),
		UnixTime:    tx.CreatedAt.Unix(),
	}
}

func toProtoStatus(status domain.OrderStatus) marketv1.OrderStatus {
	switch status {
	case domain.OrderStatusPending:
		return marketv1.OrderStatus_ORDER_STATUS_PENDING
	case domain.OrderStatusConfirmed:
		return marketv1.OrderStatus_ORDER_STATUS_CONFIRMED
	case domain.OrderStatusProcessing:
		return marketv1.OrderStatus_ORDER_STATUS_PROCESSING
	case domain.OrderStatusShipped:
		return marketv1.OrderStatus_ORDER_STATUS_SHIPPED
	case domain.OrderStatusDelivered:
		return marketv1.OrderStatus_ORDER_STATUS_DELIVERED
	case domain.OrderStatusCancelled:
		return marketv1.OrderStatus_ORDER_STATUS_CANCELLED
	default:
		return marketv1.OrderStatus_ORDER_STATUS_UNSPECIFIED
	}
}

func toProtoPayment(method domain.PaymentMethod) marketv1.PaymentMethod {
	switch method {
	case domain.PaymentMethodWallet:
		return marketv1.PaymentMethod_PAYMENT_METHOD_WALLET
	case domain.PaymentMethodCOD:
		return marketv1.PaymentMethod_PAYMENT_METHOD_COD
	default:
		return marketv1.PaymentMethod_PAYMENT_METHOD_UNSPECIFIED
	}
}

func fromProtoPayment(method marketv1.PaymentMethod) domain.PaymentMethod {
	switch method {
	case marketv1.PaymentMethod_PAYMENT_METHOD_WALLET:
		return domain.PaymentMethodWallet
	case marketv1.PaymentMethod_PAYMENT_METHOD_COD:
		return domain.PaymentMethodCOD
	default:
		return ""
	}
}

func fromProtoAddress(address *marketv1.ShippingAddress) domain.ShippingAddress {
	if address == nil {
		return domain.ShippingAddress{}
	}
	return domain.ShippingAddress{
		RecipientName: address.RecipientName,
		Phone:         address.Phone,
		AddressLine:   address.AddressLine,
		District:      address.District,
		Area:          address.Area,
	}
}
