package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	"github.com/RoyceAzure/lab/storefront/internal/api/router"
	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/logger"
	"github.com/RoyceAzure/lab/storefront/internal/metrics"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	mock_service "github.com/RoyceAzure/lab/storefront/internal/service/mock"
	"github.com/RoyceAzure/lab/storefront/internal/token"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
	authLimit  = 3
)

type RouterTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	auth     *mock_service.MockIAuthService
	product  *mock_service.MockIProductService
	review   *mock_service.MockIReviewService
	cart     *mock_service.MockICartService
	order    *mock_service.MockIOrderService
	admin    *mock_service.MockIAdminService
	checks   map[string]handler.HealthCheck
	limiters router.Limiters
	handler  http.Handler

	userPayload  *token.Payload
	adminPayload *token.Payload
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) newLimiter(name string, capacity int) ratelimit.KeyedLimiter {
	cfg := ratelimit.NewWindowLimiterConfig(name, capacity, time.Hour)
	l, err := ratelimit.NewKeyedLimiter(ratelimit.FixedWindow, cfg, nil, logger.Nop())
	s.Require().NoError(err)
	return l
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.auth = mock_service.NewMockIAuthService(s.ctrl)
	s.product = mock_service.NewMockIProductService(s.ctrl)
	s.review = mock_service.NewMockIReviewService(s.ctrl)
	s.cart = mock_service.NewMockICartService(s.ctrl)
	s.order = mock_service.NewMockIOrderService(s.ctrl)
	s.admin = mock_service.NewMockIAdminService(s.ctrl)
	s.checks = map[string]handler.HealthCheck{
		"postgres": func(ctx context.Context) error { return nil },
	}
	s.limiters = router.Limiters{
		General: s.newLimiter("general", 1000),
		Auth:    s.newLimiter("auth", authLimit),
		Api:     s.newLimiter("api", 1000),
	}

	s.userPayload = token.NewPayload(uuid.New(), "user@example.com", string(model.RoleUser), time.Hour)
	s.adminPayload = token.NewPayload(uuid.New(), "admin@example.com", string(model.RoleAdmin), time.Hour)
	s.auth.EXPECT().Authenticate(gomock.Any(), userToken).Return(s.userPayload, nil).AnyTimes()
	s.auth.EXPECT().Authenticate(gomock.Any(), adminToken).Return(s.adminPayload, nil).AnyTimes()

	server := router.NewServer(
		handler.NewAuthHandler(s.auth),
		handler.NewProductHandler(s.product),
		handler.NewReviewHandler(s.review),
		handler.NewCartHandler(s.cart),
		handler.NewOrderHandler(s.order),
		handler.NewAdminHandler(s.admin),
		handler.NewHealthHandler(s.checks),
	)
	s.handler = router.SetupRouter(server, router.Options{
		AuthService: s.auth,
		Limiters:    s.limiters,
		Metrics:     metrics.New(),
		Logger:      logger.Nop(),
	})
}

func (s *RouterTestSuite) TearDownTest() {
	s.limiters.General.Stop()
	s.limiters.Auth.Stop()
	s.limiters.Api.Stop()
}

func (s *RouterTestSuite) do(method, path string, body any, accessToken string) (*httptest.ResponseRecorder, map[string]any) {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var resp map[string]any
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func (s *RouterTestSuite) TestHealthAndInfo() {
	rec, resp := s.do(http.MethodGet, "/api/health", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(true, resp["success"])
	s.Equal("Server is running", resp["message"])
	s.NotEmpty(resp["timestamp"])
	s.NotEmpty(rec.Header().Get("X-Request-Id"))

	rec, resp = s.do(http.MethodGet, "/api", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Uzum Market API", resp["message"])
	s.Equal("1.0.0", resp["version"])
	endpoints := resp["endpoints"].(map[string]any)
	s.Equal("/api/orders", endpoints["orders"])
}

func (s *RouterTestSuite) TestReady() {
	rec, resp := s.do(http.MethodGet, "/api/ready", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(true, resp["success"])

	s.checks["redis"] = func(ctx context.Context) error { return errors.New("connection refused") }
	rec, resp = s.do(http.MethodGet, "/api/ready", nil, "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal(false, resp["success"])
	checks := resp["checks"].(map[string]any)
	s.Equal("ok", checks["postgres"])
	s.Equal("connection refused", checks["redis"])
}

func (s *RouterTestSuite) TestRouteNotFound() {
	rec, resp := s.do(http.MethodGet, "/api/unknown/route", nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(false, resp["success"])
	s.Equal("Route not found", resp["message"])
}

func (s *RouterTestSuite) TestListProducts_FilterAndPagination() {
	products := []model.Product{{Name: "A"}, {Name: "B"}}
	s.product.EXPECT().ListProducts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, filter db.ProductFilter) ([]model.Product, int64, error) {
			s.Equal("Electronics", filter.Category)
			s.Equal("-price", filter.Sort)
			s.Equal(util.PageQuery{Page: 2, Limit: 2}, filter.PageQuery)
			s.Require().NotNil(filter.MinPrice)
			s.True(filter.MinPrice.Equal(decimal.NewFromInt(10)))
			s.Nil(filter.MaxPrice)
			s.Require().NotNil(filter.IsFeatured)
			s.True(*filter.IsFeatured)
			return products, 7, nil
		})

	rec, resp := s.do(http.MethodGet, "/api/products?category=Electronics&sort=-price&page=2&limit=2&minPrice=10&isFeatured=true", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(float64(2), resp["count"])
	s.Equal(float64(7), resp["total"])
	pagination := resp["pagination"].(map[string]any)
	s.Equal(map[string]any{"page": float64(3), "limit": float64(2)}, pagination["next"])
	s.Equal(map[string]any{"page": float64(1), "limit": float64(2)}, pagination["prev"])
}

func (s *RouterTestSuite) TestListProducts_InvalidPrice() {
	rec, resp := s.do(http.MethodGet, "/api/products?maxPrice=abc", nil, "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Invalid value for maxPrice", resp["message"])
}

func (s *RouterTestSuite) TestGetProduct_InvalidID() {
	rec, resp := s.do(http.MethodGet, "/api/products/not-a-uuid", nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Product not found", resp["message"])
}

func (s *RouterTestSuite) TestGetProduct_ServiceError() {
	id := uuid.New()
	s.product.EXPECT().GetProduct(gomock.Any(), id).Return(nil, apperr.New(apperr.NotFoundCode, "Product not found"))

	rec, resp := s.do(http.MethodGet, "/api/products/"+id.String(), nil, "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(false, resp["success"])
	s.Equal("Product not found", resp["message"])
}

func (s *RouterTestSuite) TestInternalErrorHidesDetail() {
	s.product.EXPECT().TopProducts(gomock.Any()).Return(nil, apperr.Internal(errors.New("pq: relation products does not exist")))

	rec, resp := s.do(http.MethodGet, "/api/products/top", nil, "")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("Server error", resp["message"])
}

func (s *RouterTestSuite) TestPanicRecovered() {
	s.product.EXPECT().FeaturedProducts(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]model.Product, error) {
		panic("boom")
	})

	rec, resp := s.do(http.MethodGet, "/api/products/featured", nil, "")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("Server error", resp["message"])
}

func (s *RouterTestSuite) TestProtectedRoute_NoToken() {
	rec, resp := s.do(http.MethodGet, "/api/auth/me", nil, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("Not authorized, no token", resp["message"])
}

func (s *RouterTestSuite) TestProtectedRoute_InvalidToken() {
	s.auth.EXPECT().Authenticate(gomock.Any(), "bad-token").
		Return(nil, apperr.Wrap(apperr.UnauthenticatedCode, "Not authorized, token failed", token.ErrInvalidToken))

	rec, resp := s.do(http.MethodGet, "/api/cart", nil, "bad-token")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("Not authorized, token failed", resp["message"])
}

func (s *RouterTestSuite) TestMe() {
	user := &model.User{Name: "Aziz", Email: "user@example.com", Role: model.RoleUser}
	s.auth.EXPECT().Me(gomock.Any(), s.userPayload.UserID).Return(user, nil)

	rec, resp := s.do(http.MethodGet, "/api/auth/me", nil, userToken)
	s.Equal(http.StatusOK, rec.Code)
	data := resp["data"].(map[string]any)
	s.Equal("user@example.com", data["email"])
	s.NotContains(data, "PasswordHash")
}

func (s *RouterTestSuite) TestLogout_WithoutToken() {
	rec, resp := s.do(http.MethodPost, "/api/auth/logout", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("User logged out successfully", resp["message"])
}

func (s *RouterTestSuite) TestLogout_RevokesToken() {
	s.auth.EXPECT().Logout(gomock.Any(), s.userPayload).Return(nil)

	rec, _ := s.do(http.MethodPost, "/api/auth/logout", nil, userToken)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestRegister_Validation() {
	rec, resp := s.do(http.MethodPost, "/api/auth/register", map[string]any{
		"name":     "A",
		"email":    "a@example.com",
		"password": "secret1",
	}, "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(false, resp["success"])
	s.Contains(resp["message"], "Name")
}

func (s *RouterTestSuite) TestAuthRateLimit() {
	s.auth.EXPECT().Login(gomock.Any(), "a@example.com", "secret1").
		Return(nil, apperr.New(apperr.UnauthenticatedCode, "Invalid credentials")).Times(authLimit)

	body := map[string]any{"email": "a@example.com", "password": "secret1"}
	for i := 0; i < authLimit; i++ {
		rec, _ := s.do(http.MethodPost, "/api/auth/login", body, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	}
	rec, resp := s.do(http.MethodPost, "/api/auth/login", body, "")
	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Equal("Too many authentication attempts, please try again later.", resp["message"])

	// 其他路由不受auth限流影響
	rec, _ = s.do(http.MethodGet, "/api/health", nil, "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestAdminRoute_ForbiddenForUser() {
	rec, resp := s.do(http.MethodGet, "/api/admin/dashboard", nil, userToken)
	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("User role user is not authorized to access this route", resp["message"])

	rec, _ = s.do(http.MethodPost, "/api/products", map[string]any{"name": "x"}, userToken)
	s.Equal(http.StatusForbidden, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/orders", nil, userToken)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *RouterTestSuite) TestPlaceOrder_Validation() {
	rec, resp := s.do(http.MethodPost, "/api/orders", map[string]any{}, userToken)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Order items are required", resp["message"])
}

func (s *RouterTestSuite) TestPlaceOrder() {
	productID := uuid.New()
	order := &model.Order{OrderNumber: "UZ-1", Status: model.OrderStatusPending}
	s.order.EXPECT().PlaceOrder(gomock.Any(), s.userPayload.UserID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, userID uuid.UUID, params service.PlaceOrderParams) (*model.Order, error) {
			s.Require().Len(params.Items, 1)
			s.Equal(productID, params.Items[0].ProductID)
			s.Equal(2, params.Items[0].Quantity)
			s.Equal(model.PaymentUzCard, params.PaymentMethod)
			s.Equal("Tashkent", params.ShippingAddress.City)
			return order, nil
		})

	rec, resp := s.do(http.MethodPost, "/api/orders", map[string]any{
		"orderItems": []map[string]any{{"product": productID, "quantity": 2, "price": 0.01}},
		"shippingAddress": map[string]any{
			"name":       "Aziz",
			"phone":      "+998901234567",
			"email":      "aziz@example.com",
			"street":     "Amir Temur 1",
			"city":       " Tashkent ",
			"state":      "Tashkent",
			"postalCode": "100000",
		},
		"paymentMethod": "UzCard",
	}, userToken)
	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("UZ-1", resp["data"].(map[string]any)["orderNumber"])
}

func (s *RouterTestSuite) TestListOrders_InvalidStatus() {
	rec, resp := s.do(http.MethodGet, "/api/orders?status=Lost", nil, adminToken)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Invalid order status", resp["message"])
}

func (s *RouterTestSuite) TestListOrders_Admin() {
	s.order.EXPECT().ListOrders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, filter db.OrderFilter) ([]model.Order, int64, error) {
			s.Equal(model.OrderStatusShipped, filter.Status)
			s.Require().NotNil(filter.IsPaid)
			s.True(*filter.IsPaid)
			s.Nil(filter.IsDelivered)
			s.Equal(20, filter.Limit)
			return []model.Order{{}}, 1, nil
		})

	rec, resp := s.do(http.MethodGet, "/api/orders?status=Shipped&isPaid=true", nil, adminToken)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(float64(1), resp["count"])
	s.NotContains(resp, "pagination")
}

func (s *RouterTestSuite) TestOrderStats_StaticRouteBeforeID() {
	s.order.EXPECT().Stats(gomock.Any()).Return(&service.OrderStats{}, nil)

	rec, _ := s.do(http.MethodGet, "/api/orders/stats/overview", nil, adminToken)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestCart_AddDefaultsQuantity() {
	productID := uuid.New()
	s.cart.EXPECT().Add(gomock.Any(), s.userPayload.UserID, productID, 1).Return(model.NewCartView(nil), nil)

	rec, resp := s.do(http.MethodPost, "/api/cart/add", map[string]any{"productId": productID}, userToken)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Item added to cart", resp["message"])
}

func (s *RouterTestSuite) TestAddReview_Created() {
	productID := uuid.New()
	s.review.EXPECT().AddReview(gomock.Any(), productID, s.userPayload.UserID, service.AddReviewParams{Rating: 5, Comment: "great"}).
		Return(&model.Review{}, nil)

	rec, resp := s.do(http.MethodPost, "/api/products/"+productID.String()+"/reviews", map[string]any{"rating": 5, "comment": "great"}, userToken)
	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("Review added", resp["message"])
}

func (s *RouterTestSuite) TestAdminBulkUpdate() {
	id := uuid.New()
	s.admin.EXPECT().BulkUpdateProducts(gomock.Any(), []uuid.UUID{id}, map[string]any{"stock": float64(5)}).
		Return(&service.BulkUpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	rec, resp := s.do(http.MethodPut, "/api/admin/products/bulk-update", map[string]any{
		"productIds": []uuid.UUID{id},
		"updates":    map[string]any{"stock": 5},
	}, adminToken)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("1 products updated successfully", resp["message"])
	data := resp["data"].(map[string]any)
	s.Equal(float64(1), data["matchedCount"])
}

func (s *RouterTestSuite) TestAdminDeleteUser_PassesRequester() {
	id := uuid.New()
	s.admin.EXPECT().DeleteUser(gomock.Any(), s.adminPayload.UserID, id).Return(nil)

	rec, resp := s.do(http.MethodDelete, "/api/admin/users/"+id.String(), nil, adminToken)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("User deleted successfully", resp["message"])
}

func (s *RouterTestSuite) TestMetricsEndpoint() {
	rec, _ := s.do(http.MethodGet, "/api/health", nil, "")
	s.Equal(http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	mrec := httptest.NewRecorder()
	s.handler.ServeHTTP(mrec, req)
	s.Equal(http.StatusOK, mrec.Code)
	s.Contains(mrec.Body.String(), "storefront_http_requests_total")
}
