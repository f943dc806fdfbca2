package http

import (
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"coffeeshop/config"
	"coffeeshop/internal/delivery/http/middleware"
	"coffeeshop/internal/delivery/http/response"
	"coffeeshop/internal/delivery/http/router"
	"coffeeshop/internal/delivery/http/router/handler"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/domain/service"
	mockSvc "coffeeshop/internal/mocks/service"
	mockUC "coffeeshop/internal/mocks/usecase"
	"coffeeshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// apiFixtures wires the real echo stack to mocked use cases.
type apiFixtures struct {
	echo      *echo.Echo
	menuUC    *mockUC.MockMenuUsecase
	orderUC   *mockUC.MockOrderUsecase
	paymentUC *mockUC.MockPaymentUsecase
	tableUC   *mockUC.MockTableUsecase
	tokens    *mockSvc.MockTokenService
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func newAPIFixtures(t *testing.T) apiFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1M"

	fx := apiFixtures{
		menuUC:    mockUC.NewMockMenuUsecase(t),
		orderUC:   mockUC.NewMockOrderUsecase(t),
		paymentUC: mockUC.NewMockPaymentUsecase(t),
		tableUC:   mockUC.NewMockTableUsecase(t),
		tokens:    mockSvc.NewMockTokenService(t),
	}

	fx.echo = newEcho(cfg, logger, router.RouterParams{
		AuthHandler:      handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUC.NewMockAuthUsecase(t), Logger: logger}),
		MenuHandler:      handler.NewMenuHandler(handler.MenuHandlerParams{MenuUC: fx.menuUC, Logger: logger}),
		OrderHandler:     handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: fx.orderUC, Logger: logger}),
		PaymentHandler:   handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: fx.paymentUC, Logger: logger}),
		TableHandler:     handler.NewTableHandler(handler.TableHandlerParams{TableUC: fx.tableUC, Logger: logger}),
		InventoryHandler: handler.NewInventoryHandler(handler.InventoryHandlerParams{InventoryUC: mockUC.NewMockInventoryUsecase(t), Logger: logger}),
		CustomerHandler:  handler.NewCustomerHandler(handler.CustomerHandlerParams{CustomerUC: mockUC.NewMockCustomerUsecase(t), Logger: logger}),
		AuthMiddleware:   middleware.NewAuthMiddleware(fx.tokens),
	})

	return fx
}

func (fx apiFixtures) do(t *testing.T, method, target, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestAPI_PlaceOrder(t *testing.T) {
	fx := newAPIFixtures(t)
	order := entity.NewOrder(1, entity.ServiceTypeDineIn, time.Now())
	order.ID = 12
	order.TableNumber = 4

	fx.orderUC.EXPECT().
		PlaceOrder(mock.Anything, mock.MatchedBy(func(in usecase.PlaceOrderInput) bool {
			return in.CustomerID == 1 &&
				in.ServiceType == entity.ServiceTypeDineIn &&
				in.TableNumber == 4 &&
				len(in.Items) == 1 &&
				in.Items[0].MenuItemID == 3 &&
				in.Items[0].Size == entity.CoffeeSizeMedium &&
				in.Items[0].Customizations[0] == "Vanilla"
		})).
		Return(order, nil)

	rec, env := fx.do(t, nethttp.MethodPost, "/api/v1/orders",
		`{"customer_id":1,"service_type":"DINE_IN","table_number":4,"items":[{"menu_item_id":3,"quantity":2,"size":"MEDIUM","customizations":["Vanilla"]}]}`,
		"X-Request-Id", "req-77")

	assert.Equal(t, nethttp.StatusCreated, rec.Code)
	assert.Equal(t, "req-77", env.Meta.RequestID)

	var got entity.Order
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, int64(12), got.ID)
	assert.Equal(t, entity.OrderStatusPending, got.Status)
}

func TestAPI_PlaceOrder_ValidationFailure(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, env := fx.do(t, nethttp.MethodPost, "/api/v1/orders", `{"items":[{"menu_item_id":3,"quantity":1}]}`)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "service_type is required", env.Error.Details)
}

func TestAPI_DomainErrorMapsToStatus(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.orderUC.EXPECT().GetOrder(mock.Anything, int64(9)).Return(nil, domainerrors.ErrOrderNotFound)

	rec, env := fx.do(t, nethttp.MethodGet, "/api/v1/orders/9", "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", env.Error.Code)

	rec, env = fx.do(t, nethttp.MethodGet, "/api/v1/orders/abc", "")
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAPI_ListOrders_Filters(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.orderUC.EXPECT().
		ListOrders(mock.Anything, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.Status != nil && *filter.Status == entity.OrderStatusPending &&
				filter.TableNumber != nil && *filter.TableNumber == 4 &&
				filter.From != nil && filter.From.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				filter.To != nil && filter.To.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)) &&
				filter.CustomerID == nil
		})).
		Return([]*entity.Order{}, nil)

	rec, _ := fx.do(t, nethttp.MethodGet, "/api/v1/orders?status=pending&table=4&from=2026-01-01&to=2026-01-31", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestAPI_ManagerRoutesRequireToken(t *testing.T) {
	fx := newAPIFixtures(t)
	body := `{"name":"Flat White","price":3.8,"coffee_type":"LATTE","size":"SMALL","hot":true}`

	rec, env := fx.do(t, nethttp.MethodPost, "/api/v1/menu", body)
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	fx.tokens.EXPECT().ValidateToken("cashier").Return(&service.Claims{Subject: "till", Roles: []string{"cashier"}}, nil)
	rec, _ = fx.do(t, nethttp.MethodPost, "/api/v1/menu", body, echo.HeaderAuthorization, "Bearer cashier")
	assert.Equal(t, nethttp.StatusForbidden, rec.Code)

	item := entity.NewCoffee("Flat White", "", 3.8, entity.CoffeeTypeLatte, entity.CoffeeSizeSmall, true)
	fx.tokens.EXPECT().ValidateToken("manager").Return(&service.Claims{Subject: "manager", Roles: []string{"manager"}}, nil)
	fx.menuUC.EXPECT().
		CreateItem(mock.Anything, mock.MatchedBy(func(in usecase.CreateMenuItemInput) bool {
			return in.Kind == entity.MenuItemKindCoffee && in.CoffeeType == entity.CoffeeTypeLatte && in.Hot
		})).
		Return(item, nil)

	rec, _ = fx.do(t, nethttp.MethodPost, "/api/v1/menu", body, echo.HeaderAuthorization, "Bearer manager")
	assert.Equal(t, nethttp.StatusCreated, rec.Code)
}

func TestAPI_DeclinedPaymentIsStillCreated(t *testing.T) {
	fx := newAPIFixtures(t)
	payment := entity.NewPayment(5, 6.48, entity.PaymentMethodCash, time.Now())
	payment.Status = entity.PaymentStatusFailed
	payment.FailureReason = entity.FailureInsufficientCash

	fx.paymentUC.EXPECT().
		ProcessPayment(mock.Anything, usecase.ProcessPaymentInput{OrderID: 5, Method: entity.PaymentMethodCash, CashTendered: 5}).
		Return(payment, nil)

	rec, env := fx.do(t, nethttp.MethodPost, "/api/v1/payments", `{"order_id":5,"method":"cash","cash_tendered":5}`)
	assert.Equal(t, nethttp.StatusCreated, rec.Code)

	var got entity.Payment
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, entity.PaymentStatusFailed, got.Status)
	assert.Equal(t, entity.FailureInsufficientCash, got.FailureReason)
}

func TestAPI_TableQRCode(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.tableUC.EXPECT().TableQRCode(mock.Anything, 3).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	rec, _ := fx.do(t, nethttp.MethodGet, "/api/v1/tables/3/qrcode", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}

func TestAPI_UnknownRoute(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, env := fx.do(t, nethttp.MethodGet, "/api/v1/nowhere", "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
