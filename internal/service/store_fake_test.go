package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fakeStore 記憶體版 db.IStore
// ExecTx 期間持有全域鎖, 錯誤時還原成交易開始前的快照
type fakeStore struct {
	mu    *sync.Mutex
	state *fakeState
	inTx  bool
	errs  map[string]error
}

type fakeState struct {
	users    map[uuid.UUID]*model.User
	products map[uuid.UUID]*model.Product
	cart     []model.CartItem
	reviews  []model.Review
	orders   map[uuid.UUID]*model.Order
	numbers  map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		mu: &sync.Mutex{},
		state: &fakeState{
			users:    map[uuid.UUID]*model.User{},
			products: map[uuid.UUID]*model.Product{},
			orders:   map[uuid.UUID]*model.Order{},
			numbers:  map[string]bool{},
		},
		errs: map[string]error{},
	}
}

var _ db.IStore = (*fakeStore)(nil)

func (s *fakeStore) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *fakeStore) fail(method string) error {
	return s.errs[method]
}

func cloneProduct(p *model.Product) *model.Product {
	c := *p
	c.Images = append([]model.ProductImage(nil), p.Images...)
	c.Reviews = nil
	return &c
}

func cloneOrder(o *model.Order) *model.Order {
	c := *o
	c.Items = append([]model.OrderItem(nil), o.Items...)
	c.StatusHistory = append([]model.StatusHistory(nil), o.StatusHistory...)
	return &c
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.CartItems = nil
	return &c
}

func (st *fakeState) clone() *fakeState {
	c := &fakeState{
		users:    make(map[uuid.UUID]*model.User, len(st.users)),
		products: make(map[uuid.UUID]*model.Product, len(st.products)),
		orders:   make(map[uuid.UUID]*model.Order, len(st.orders)),
		numbers:  make(map[string]bool, len(st.numbers)),
		cart:     append([]model.CartItem(nil), st.cart...),
		reviews:  append([]model.Review(nil), st.reviews...),
	}
	for k, v := range st.users {
		c.users[k] = cloneUser(v)
	}
	for k, v := range st.products {
		c.products[k] = cloneProduct(v)
	}
	for k, v := range st.orders {
		c.orders[k] = cloneOrder(v)
	}
	for k, v := range st.numbers {
		c.numbers[k] = v
	}
	return c
}

func (s *fakeStore) ExecTx(ctx context.Context, fn func(db.IStore) error) error {
	unlock := s.lock()
	defer unlock()

	snapshot := s.state.clone()
	tx := &fakeStore{mu: s.mu, state: s.state, inTx: true, errs: s.errs}
	if err := fn(tx); err != nil {
		*s.state = *snapshot
		return err
	}
	return nil
}

func (s *fakeStore) Ping(ctx context.Context) error {
	return s.fail("Ping")
}

// ---- seed helpers ----

func (s *fakeStore) addUser(name, email string, role model.Role) *model.User {
	u := &model.User{Name: name, Email: email, Role: role, IsActive: true}
	u.ID = uuid.New()
	u.CreatedAt = time.Now().UTC()
	s.state.users[u.ID] = u
	return u
}

func (s *fakeStore) addProduct(name string, price string, stock int) *model.Product {
	p := &model.Product{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Category: "Electronics",
		Stock:    stock,
		IsActive: true,
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()
	s.state.products[p.ID] = p
	return p
}

func (s *fakeStore) product(id uuid.UUID) *model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProduct(s.state.products[id])
}

func (s *fakeStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.orders)
}

// ---- products ----

func (s *fakeStore) CreateProduct(ctx context.Context, product *model.Product) error {
	defer s.lock()()
	if err := s.fail("CreateProduct"); err != nil {
		return err
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now().UTC()
	product.CreatedAt, product.UpdatedAt = now, now
	for i := range product.Images {
		product.Images[i].ProductID = product.ID
		product.Images[i].Position = i
	}
	s.state.products[product.ID] = cloneProduct(product)
	return nil
}

func (s *fakeStore) GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	defer s.lock()()
	if err := s.fail("GetProductByID"); err != nil {
		return nil, err
	}
	p, ok := s.state.products[id]
	if !ok {
		return nil, db.ErrRecordNotFound
	}
	return cloneProduct(p), nil
}

func matchProduct(p *model.Product, f db.ProductFilter) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name+" "+p.Description+" "+p.Brand), strings.ToLower(f.Search)) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.MinRating != nil && p.Rating < *f.MinRating {
		return false
	}
	if f.IsActive != nil && p.IsActive != *f.IsActive {
		return false
	}
	if f.IsFeatured != nil && p.IsFeatured != *f.IsFeatured {
		return false
	}
	if f.LowStock && p.Stock > 10 {
		return false
	}
	return true
}

func paginate[T any](items []T, limit, offset int) []T {
	if limit <= 0 {
		return items
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func (s *fakeStore) ListProducts(ctx context.Context, filter db.ProductFilter) ([]model.Product, int64, error) {
	defer s.lock()()
	if err := s.fail("ListProducts"); err != nil {
		return nil, 0, err
	}
	var out []model.Product
	for _, p := range s.state.products {
		if matchProduct(p, filter) {
			out = append(out, *cloneProduct(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if filter.Sort == "-rating" {
			return out[i].Rating > out[j].Rating
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	total := int64(len(out))
	offset := 0
	if filter.Page > 0 {
		offset = filter.Offset()
	}
	return paginate(out, filter.Limit, offset), total, nil
}

// GetProductForUpdate 交易內已持有全域鎖
func (s *fakeStore) GetProductForUpdate(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return s.GetProductByID(ctx, id)
}

func (s *fakeStore) UpdateProduct(ctx context.Context, product *model.Product, columns []string) error {
	defer s.lock()()
	p, ok := s.state.products[product.ID]
	if !ok {
		return db.ErrRecordNotFound
	}
	for _, c := range columns {
		switch c {
		case "name":
			p.Name = product.Name
		case "description":
			p.Description = product.Description
		case "price":
			p.Price = product.Price
		case "category":
			p.Category = product.Category
		case "brand":
			p.Brand = product.Brand
		case "stock":
			p.Stock = product.Stock
		case "is_active":
			p.IsActive = product.IsActive
		case "is_featured":
			p.IsFeatured = product.IsFeatured
		}
	}
	p.UpdatedAt = product.UpdatedAt
	return nil
}

func (s *fakeStore) ReplaceProductImages(ctx context.Context, productID uuid.UUID, images []model.ProductImage) error {
	defer s.lock()()
	p, ok := s.state.products[productID]
	if !ok {
		return db.ErrForeignKeyViolation
	}
	p.Images = append([]model.ProductImage(nil), images...)
	for i := range p.Images {
		p.Images[i].ProductID = productID
		p.Images[i].Position = i
	}
	return nil
}

func (s *fakeStore) AddProductImage(ctx context.Context, productID uuid.UUID, image *model.ProductImage) error {
	defer s.lock()()
	p, ok := s.state.products[productID]
	if !ok {
		return db.ErrForeignKeyViolation
	}
	image.ProductID = productID
	image.Position = len(p.Images)
	p.Images = append(p.Images, *image)
	return nil
}

func applyProductFields(p *model.Product, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "is_active":
			p.IsActive = v.(bool)
		case "is_featured":
			p.IsFeatured = v.(bool)
		case "rating":
			p.Rating = v.(float64)
		case "num_reviews":
			p.NumReviews = v.(int)
		case "price":
			p.Price = v.(decimal.Decimal)
		case "stock":
			p.Stock = v.(int)
		case "category":
			p.Category = v.(string)
		case "brand":
			p.Brand = v.(string)
		case "updated_at":
			p.UpdatedAt = v.(time.Time)
		}
	}
}

func (s *fakeStore) UpdateProductFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	defer s.lock()()
	p, ok := s.state.products[id]
	if !ok {
		return db.ErrRecordNotFound
	}
	applyProductFields(p, fields)
	return nil
}

func (s *fakeStore) BulkUpdateProducts(ctx context.Context, ids []uuid.UUID, fields map[string]any) (int64, int64, error) {
	defer s.lock()()
	var matched int64
	for _, id := range ids {
		if p, ok := s.state.products[id]; ok {
			applyProductFields(p, fields)
			matched++
		}
	}
	return matched, matched, nil
}

func (s *fakeStore) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	defer s.lock()()
	if _, ok := s.state.products[id]; !ok {
		return db.ErrRecordNotFound
	}
	delete(s.state.products, id)
	cart := s.state.cart[:0]
	for _, item := range s.state.cart {
		if item.ProductID != id {
			cart = append(cart, item)
		}
	}
	s.state.cart = cart
	reviews := s.state.reviews[:0]
	for _, r := range s.state.reviews {
		if r.ProductID != id {
			reviews = append(reviews, r)
		}
	}
	s.state.reviews = reviews
	return nil
}

func (s *fakeStore) DeductProductStock(ctx context.Context, id uuid.UUID, quantity int) error {
	defer s.lock()()
	if err := s.fail("DeductProductStock"); err != nil {
		return err
	}
	p, ok := s.state.products[id]
	if !ok || p.Stock < quantity {
		return db.ErrProductStockNotEnough
	}
	p.Stock -= quantity
	p.Sold += quantity
	return nil
}

func (s *fakeStore) RefreshProductRating(ctx context.Context, id uuid.UUID) (float64, int, error) {
	defer s.lock()()
	sum, count := 0, 0
	for _, r := range s.state.reviews {
		if r.ProductID == id {
			sum += r.Rating
			count++
		}
	}
	avg := 0.0
	if count > 0 {
		avg = float64(sum) / float64(count)
	}
	p, ok := s.state.products[id]
	if !ok {
		return 0, 0, db.ErrRecordNotFound
	}
	p.Rating, p.NumReviews = avg, count
	return avg, count, nil
}

// ---- users ----

func (s *fakeStore) CreateUser(ctx context.Context, user *model.User) error {
	defer s.lock()()
	user.Email = strings.ToLower(user.Email)
	for _, u := range s.state.users {
		if u.Email == user.Email {
			return db.ErrDuplicateKey
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now().UTC()
	s.state.users[user.ID] = cloneUser(user)
	return nil
}

func (s *fakeStore) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	defer s.lock()()
	u, ok := s.state.users[id]
	if !ok {
		return nil, db.ErrRecordNotFound
	}
	return cloneUser(u), nil
}

func (s *fakeStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	defer s.lock()()
	for _, u := range s.state.users {
		if u.Email == strings.ToLower(email) {
			return cloneUser(u), nil
		}
	}
	return nil, db.ErrRecordNotFound
}

func (s *fakeStore) ListUsers(ctx context.Context, filter db.UserFilter) ([]model.User, int64, error) {
	defer s.lock()()
	var out []model.User
	for _, u := range s.state.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(u.Name+" "+u.Email), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return paginate(out, filter.Limit, filter.Offset()), int64(len(out)), nil
}

func (s *fakeStore) UpdateUserFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	defer s.lock()()
	if err := s.fail("UpdateUserFields"); err != nil {
		return err
	}
	u, ok := s.state.users[id]
	if !ok {
		return db.ErrRecordNotFound
	}
	if email, ok := fields["email"].(string); ok {
		for _, other := range s.state.users {
			if other.ID != id && other.Email == strings.ToLower(email) {
				return db.ErrDuplicateKey
			}
		}
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "email":
			u.Email = strings.ToLower(v.(string))
		case "phone":
			u.Phone = v.(string)
		case "role":
			u.Role = model.Role(v.(string))
		case "is_verified":
			u.IsVerified = v.(bool)
		case "password_hash":
			u.PasswordHash = v.(string)
		case "last_login":
			t := v.(time.Time)
			u.LastLogin = &t
		case "address_street":
			u.Address.Street = v.(string)
		case "address_city":
			u.Address.City = v.(string)
		case "address_state":
			u.Address.State = v.(string)
		case "address_postal_code":
			u.Address.PostalCode = v.(string)
		case "address_country":
			u.Address.Country = v.(string)
		case "updated_at":
			u.UpdatedAt = v.(time.Time)
		}
	}
	return nil
}

func (s *fakeStore) DeleteUser(ctx context.Context, id uuid.UUID) error {
	defer s.lock()()
	if _, ok := s.state.users[id]; !ok {
		return db.ErrRecordNotFound
	}
	for _, o := range s.state.orders {
		if o.UserID == id {
			return db.ErrForeignKeyViolation
		}
	}
	delete(s.state.users, id)
	// 外鍵cascade
	cart := s.state.cart[:0]
	for _, item := range s.state.cart {
		if item.UserID != id {
			cart = append(cart, item)
		}
	}
	s.state.cart = cart
	reviews := s.state.reviews[:0]
	for _, r := range s.state.reviews {
		if r.UserID != id {
			reviews = append(reviews, r)
		}
	}
	s.state.reviews = reviews
	return nil
}

// ---- cart ----

func (s *fakeStore) ListCartItems(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	defer s.lock()()
	var out []model.CartItem
	for _, item := range s.state.cart {
		if item.UserID != userID {
			continue
		}
		if p, ok := s.state.products[item.ProductID]; ok {
			item.Product = cloneProduct(p)
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *fakeStore) GetCartItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*model.CartItem, error) {
	defer s.lock()()
	for _, item := range s.state.cart {
		if item.UserID == userID && item.ProductID == productID {
			c := item
			return &c, nil
		}
	}
	return nil, db.ErrRecordNotFound
}

func (s *fakeStore) SetCartItemQuantity(ctx context.Context, userID uuid.UUID, productID uuid.UUID, quantity int) error {
	defer s.lock()()
	if err := s.fail("SetCartItemQuantity"); err != nil {
		return err
	}
	for i := range s.state.cart {
		if s.state.cart[i].UserID == userID && s.state.cart[i].ProductID == productID {
			s.state.cart[i].Quantity = quantity
			return nil
		}
	}
	s.state.cart = append(s.state.cart, model.CartItem{UserID: userID, ProductID: productID, Quantity: quantity, CreatedAt: time.Now()})
	return nil
}

func (s *fakeStore) DeleteCartItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error {
	defer s.lock()()
	cart := s.state.cart[:0]
	for _, item := range s.state.cart {
		if !(item.UserID == userID && item.ProductID == productID) {
			cart = append(cart, item)
		}
	}
	s.state.cart = cart
	return nil
}

func (s *fakeStore) ClearCart(ctx context.Context, userID uuid.UUID) error {
	defer s.lock()()
	if err := s.fail("ClearCart"); err != nil {
		return err
	}
	cart := s.state.cart[:0]
	for _, item := range s.state.cart {
		if item.UserID != userID {
			cart = append(cart, item)
		}
	}
	s.state.cart = cart
	return nil
}

// ---- reviews ----

func (s *fakeStore) CreateReview(ctx context.Context, review *model.Review) error {
	defer s.lock()()
	for _, r := range s.state.reviews {
		if r.ProductID == review.ProductID && r.UserID == review.UserID {
			return db.ErrDuplicateKey
		}
	}
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = time.Now().UTC()
	s.state.reviews = append(s.state.reviews, *review)
	return nil
}

func (s *fakeStore) GetReview(ctx context.Context, productID uuid.UUID, reviewID uuid.UUID) (*model.Review, error) {
	defer s.lock()()
	for _, r := range s.state.reviews {
		if r.ID == reviewID && r.ProductID == productID {
			c := r
			return &c, nil
		}
	}
	return nil, db.ErrRecordNotFound
}

func (s *fakeStore) HasUserReviewed(ctx context.Context, productID uuid.UUID, userID uuid.UUID) (bool, error) {
	defer s.lock()()
	for _, r := range s.state.reviews {
		if r.ProductID == productID && r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]model.Review, error) {
	defer s.lock()()
	var out []model.Review
	for _, r := range s.state.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeStore) ListReviewedProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	defer s.lock()()
	seen := map[uuid.UUID]bool{}
	var ids []uuid.UUID
	for _, r := range s.state.reviews {
		if r.UserID == userID && !seen[r.ProductID] {
			seen[r.ProductID] = true
			ids = append(ids, r.ProductID)
		}
	}
	return ids, nil
}

func (s *fakeStore) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	defer s.lock()()
	for i, r := range s.state.reviews {
		if r.ID == reviewID {
			s.state.reviews = append(s.state.reviews[:i], s.state.reviews[i+1:]...)
			return nil
		}
	}
	return db.ErrRecordNotFound
}

// ---- orders ----

func (s *fakeStore) CreateOrder(ctx context.Context, order *model.Order) error {
	defer s.lock()()
	if err := s.fail("CreateOrder"); err != nil {
		return err
	}
	if s.state.numbers[order.OrderNumber] {
		return db.ErrDuplicateKey
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	for i := range order.Items {
		order.Items[i].ID = uuid.New()
		order.Items[i].OrderID = order.ID
	}
	for i := range order.StatusHistory {
		order.StatusHistory[i].ID = uuid.New()
		order.StatusHistory[i].OrderID = order.ID
	}
	s.state.orders[order.ID] = cloneOrder(order)
	s.state.numbers[order.OrderNumber] = true
	return nil
}

func (s *fakeStore) OrderNumberExists(ctx context.Context, orderNumber string) (bool, error) {
	defer s.lock()()
	return s.state.numbers[orderNumber], nil
}

func (s *fakeStore) GetOrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	defer s.lock()()
	o, ok := s.state.orders[id]
	if !ok {
		return nil, db.ErrRecordNotFound
	}
	return cloneOrder(o), nil
}

func (s *fakeStore) GetOrderForUpdate(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	return s.GetOrderByID(ctx, id)
}

func (s *fakeStore) UpdateOrder(ctx context.Context, order *model.Order) error {
	defer s.lock()()
	o, ok := s.state.orders[order.ID]
	if !ok {
		return db.ErrRecordNotFound
	}
	updated := cloneOrder(order)
	updated.OrderNumber, updated.UserID, updated.CreatedAt = o.OrderNumber, o.UserID, o.CreatedAt
	updated.Items, updated.StatusHistory = o.Items, o.StatusHistory
	s.state.orders[order.ID] = updated
	return nil
}

func (s *fakeStore) AppendStatusHistory(ctx context.Context, history *model.StatusHistory) error {
	defer s.lock()()
	o, ok := s.state.orders[history.OrderID]
	if !ok {
		return db.ErrForeignKeyViolation
	}
	history.ID = uuid.New()
	o.StatusHistory = append(o.StatusHistory, *history)
	return nil
}

func (s *fakeStore) sortedOrders(match func(o *model.Order) bool) []model.Order {
	var out []model.Order
	for _, o := range s.state.orders {
		if match(o) {
			out = append(out, *cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *fakeStore) ListOrders(ctx context.Context, filter db.OrderFilter) ([]model.Order, int64, error) {
	defer s.lock()()
	out := s.sortedOrders(func(o *model.Order) bool {
		if filter.UserID != nil && o.UserID != *filter.UserID {
			return false
		}
		if filter.Status != "" && o.Status != filter.Status {
			return false
		}
		if filter.IsPaid != nil && o.IsPaid != *filter.IsPaid {
			return false
		}
		if filter.IsDelivered != nil && o.IsDelivered != *filter.IsDelivered {
			return false
		}
		return true
	})
	return paginate(out, filter.Limit, filter.Offset()), int64(len(out)), nil
}

func (s *fakeStore) ListRecentOrders(ctx context.Context, limit int) ([]model.Order, error) {
	defer s.lock()()
	out := s.sortedOrders(func(*model.Order) bool { return true })
	return paginate(out, limit, 0), nil
}

// ---- stats ----

func (s *fakeStore) CountUsers(ctx context.Context, role model.Role, since *time.Time) (int64, error) {
	defer s.lock()()
	var n int64
	for _, u := range s.state.users {
		if (role == "" || u.Role == role) && (since == nil || !u.CreatedAt.Before(*since)) {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) CountProducts(ctx context.Context, lowStockThreshold int) (db.ProductCounts, error) {
	defer s.lock()()
	var c db.ProductCounts
	for _, p := range s.state.products {
		c.Total++
		if p.IsActive {
			c.Active++
		}
		if p.Stock <= lowStockThreshold {
			c.LowStock++
		}
		if p.Stock == 0 {
			c.OutOfStock++
		}
	}
	return c, nil
}

func (s *fakeStore) CountOrders(ctx context.Context, status model.OrderStatus, since *time.Time) (int64, error) {
	defer s.lock()()
	if err := s.fail("CountOrders"); err != nil {
		return 0, err
	}
	var n int64
	for _, o := range s.state.orders {
		if (status == "" || o.Status == status) && (since == nil || !o.CreatedAt.Before(*since)) {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) SumRevenue(ctx context.Context, since *time.Time) (decimal.Decimal, error) {
	defer s.lock()()
	total := decimal.Zero
	for _, o := range s.state.orders {
		if since == nil || !o.CreatedAt.Before(*since) {
			total = total.Add(o.TotalPrice)
		}
	}
	return total, nil
}

func (s *fakeStore) ListTopSellingProducts(ctx context.Context, limit int) ([]model.Product, error) {
	defer s.lock()()
	var out []model.Product
	for _, p := range s.state.products {
		if p.Sold > 0 {
			out = append(out, *cloneProduct(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sold > out[j].Sold })
	return paginate(out, limit, 0), nil
}

func (s *fakeStore) ListMonthlySales(ctx context.Context, since time.Time) ([]db.MonthlySales, error) {
	defer s.lock()()
	byMonth := map[int]*db.MonthlySales{}
	for _, o := range s.state.orders {
		if o.CreatedAt.Before(since) {
			continue
		}
		m := int(o.CreatedAt.Month())
		if byMonth[m] == nil {
			byMonth[m] = &db.MonthlySales{Month: m, Revenue: decimal.Zero}
		}
		byMonth[m].Revenue = byMonth[m].Revenue.Add(o.TotalPrice)
		byMonth[m].Orders++
	}
	var out []db.MonthlySales
	for _, v := range byMonth {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (s *fakeStore) ListStatusBreakdown(ctx context.Context) ([]db.StatusCount, error) {
	defer s.lock()()
	counts := map[model.OrderStatus]int64{}
	for _, o := range s.state.orders {
		counts[o.Status]++
	}
	var out []db.StatusCount
	for status, n := range counts {
		out = append(out, db.StatusCount{Status: status, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out, nil
}
