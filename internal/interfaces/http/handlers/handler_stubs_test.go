package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/interfaces/http/middleware"
)

// In-memory repository stubs shared by the handler tests. They keep just
// enough semantics for the usecases to behave like they do over the real
// database.

type userRepoStub struct {
	users map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) UpdateProfile(_ context.Context, id uuid.UUID, input *entities.UpdateProfileInput) error {
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.Email != nil {
		u.Email = *input.Email
	}
	if input.Phone != nil {
		u.Phone.SetValid(*input.Phone)
	}
	return nil
}

func (s *userRepoStub) UpdateRole(_ context.Context, id uuid.UUID, role entities.Role) error {
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.Role = role
	return nil
}

func (s *userRepoStub) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (s *userRepoStub) List(_ context.Context) ([]*entities.User, error) {
	out := make([]*entities.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *userRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

type restaurantRepoStub struct {
	restaurants map[uuid.UUID]*entities.Restaurant
}

func newRestaurantRepoStub() *restaurantRepoStub {
	return &restaurantRepoStub{restaurants: map[uuid.UUID]*entities.Restaurant{}}
}

func (s *restaurantRepoStub) Create(_ context.Context, restaurant *entities.Restaurant) error {
	if restaurant.ID == uuid.Nil {
		restaurant.ID = uuid.New()
	}
	s.restaurants[restaurant.ID] = restaurant
	return nil
}

func (s *restaurantRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Restaurant, error) {
	r, ok := s.restaurants[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return r, nil
}

func (s *restaurantRepoStub) GetByOwnerID(_ context.Context, ownerID uuid.UUID) (*entities.Restaurant, error) {
	for _, r := range s.restaurants {
		if r.OwnerID == ownerID {
			return r, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *restaurantRepoStub) GetByCustomURL(_ context.Context, customURL string) (*entities.Restaurant, error) {
	for _, r := range s.restaurants {
		if r.CustomURL == customURL {
			return r, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *restaurantRepoStub) List(_ context.Context) ([]*entities.Restaurant, error) {
	out := make([]*entities.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		out = append(out, r)
	}
	return out, nil
}

func (s *restaurantRepoStub) CustomURLTaken(_ context.Context, customURL string, excludeID uuid.UUID) (bool, error) {
	for _, r := range s.restaurants {
		if r.CustomURL == customURL && r.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *restaurantRepoStub) UpdateConfig(_ context.Context, id uuid.UUID, input *entities.RestaurantConfigInput) error {
	r, ok := s.restaurants[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if input.Name != nil {
		r.Name = *input.Name
	}
	if input.Description != nil {
		r.Description = *input.Description
	}
	if input.Whatsapp != nil {
		r.Whatsapp = *input.Whatsapp
	}
	if input.LogoURL != nil {
		r.LogoURL = *input.LogoURL
	}
	if input.BannerURL != nil {
		r.BannerURL = *input.BannerURL
	}
	if input.CustomURL != nil {
		r.CustomURL = *input.CustomURL
	}
	return nil
}

func (s *restaurantRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.restaurants[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.restaurants, id)
	return nil
}

type subscriptionRepoStub struct {
	subs []*entities.Subscription
}

func (s *subscriptionRepoStub) Create(_ context.Context, sub *entities.Subscription) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	s.subs = append(s.subs, sub)
	return nil
}

func (s *subscriptionRepoStub) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]*entities.Subscription, error) {
	var out []*entities.Subscription
	for _, sub := range s.subs {
		if sub.RestaurantID == restaurantID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (s *subscriptionRepoStub) GetActive(_ context.Context, restaurantID uuid.UUID) (*entities.Subscription, error) {
	var best *entities.Subscription
	for _, sub := range s.subs {
		if sub.RestaurantID != restaurantID || !sub.IsActive {
			continue
		}
		if best == nil || sub.EndDate.After(best.EndDate) {
			best = sub
		}
	}
	if best == nil {
		return nil, domainerrors.ErrNotFound
	}
	return best, nil
}

func (s *subscriptionRepoStub) DeleteByRestaurant(_ context.Context, restaurantID uuid.UUID) error {
	kept := s.subs[:0]
	for _, sub := range s.subs {
		if sub.RestaurantID != restaurantID {
			kept = append(kept, sub)
		}
	}
	s.subs = kept
	return nil
}

type productRepoStub struct {
	products map[uuid.UUID]*entities.Product
}

func newProductRepoStub() *productRepoStub {
	return &productRepoStub{products: map[uuid.UUID]*entities.Product{}}
}

func (s *productRepoStub) Create(_ context.Context, product *entities.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	s.products[product.ID] = product
	return nil
}

func (s *productRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return p, nil
}

func (s *productRepoStub) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]*entities.Product, error) {
	var out []*entities.Product
	for _, p := range s.products {
		if p.RestaurantID == restaurantID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *productRepoStub) Update(_ context.Context, product *entities.Product) error {
	if _, ok := s.products[product.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.products[product.ID] = product
	return nil
}

func (s *productRepoStub) UpdateDisplayOrder(_ context.Context, restaurantID, productID uuid.UUID, order int) error {
	p, ok := s.products[productID]
	if !ok || p.RestaurantID != restaurantID {
		return nil
	}
	p.DisplayOrder = order
	return nil
}

func (s *productRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.products[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *productRepoStub) DeleteByRestaurant(_ context.Context, restaurantID uuid.UUID) error {
	for id, p := range s.products {
		if p.RestaurantID == restaurantID {
			delete(s.products, id)
		}
	}
	return nil
}

type paymentMethodRepoStub struct {
	methods []*entities.PaymentMethod
}

func (s *paymentMethodRepoStub) Create(_ context.Context, method *entities.PaymentMethod) error {
	if method.ID == uuid.Nil {
		method.ID = uuid.New()
	}
	s.methods = append(s.methods, method)
	return nil
}

func (s *paymentMethodRepoStub) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]*entities.PaymentMethod, error) {
	var out []*entities.PaymentMethod
	for _, m := range s.methods {
		if m.RestaurantID == restaurantID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *paymentMethodRepoStub) DeleteByRestaurant(_ context.Context, restaurantID uuid.UUID) error {
	kept := s.methods[:0]
	for _, m := range s.methods {
		if m.RestaurantID != restaurantID {
			kept = append(kept, m)
		}
	}
	s.methods = kept
	return nil
}

type deliveryOptionRepoStub struct {
	options []*entities.DeliveryOption
}

func (s *deliveryOptionRepoStub) Create(_ context.Context, option *entities.DeliveryOption) error {
	if option.ID == uuid.Nil {
		option.ID = uuid.New()
	}
	s.options = append(s.options, option)
	return nil
}

func (s *deliveryOptionRepoStub) GetByType(_ context.Context, restaurantID uuid.UUID, optionType string) (*entities.DeliveryOption, error) {
	for _, o := range s.options {
		if o.RestaurantID == restaurantID && o.Type == optionType {
			return o, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *deliveryOptionRepoStub) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]*entities.DeliveryOption, error) {
	var out []*entities.DeliveryOption
	for _, o := range s.options {
		if o.RestaurantID == restaurantID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *deliveryOptionRepoStub) Update(_ context.Context, option *entities.DeliveryOption) error {
	for i, o := range s.options {
		if o.ID == option.ID {
			s.options[i] = option
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

func (s *deliveryOptionRepoStub) DeleteByRestaurant(_ context.Context, restaurantID uuid.UUID) error {
	kept := s.options[:0]
	for _, o := range s.options {
		if o.RestaurantID != restaurantID {
			kept = append(kept, o)
		}
	}
	s.options = kept
	return nil
}

type openingHourRepoStub struct {
	hours []*entities.OpeningHour
}

func (s *openingHourRepoStub) Create(_ context.Context, hour *entities.OpeningHour) error {
	if hour.ID == uuid.Nil {
		hour.ID = uuid.New()
	}
	s.hours = append(s.hours, hour)
	return nil
}

func (s *openingHourRepoStub) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]*entities.OpeningHour, error) {
	var out []*entities.OpeningHour
	for _, h := range s.hours {
		if h.RestaurantID == restaurantID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *openingHourRepoStub) DeleteByRestaurant(_ context.Context, restaurantID uuid.UUID) error {
	kept := s.hours[:0]
	for _, h := range s.hours {
		if h.RestaurantID != restaurantID {
			kept = append(kept, h)
		}
	}
	s.hours = kept
	return nil
}

type passwordResetRepoStub struct {
	resets []*entities.PasswordReset
}

func (s *passwordResetRepoStub) Create(_ context.Context, reset *entities.PasswordReset) error {
	if reset.ID == uuid.Nil {
		reset.ID = uuid.New()
	}
	if reset.CreatedAt.IsZero() {
		reset.CreatedAt = time.Now()
	}
	s.resets = append(s.resets, reset)
	return nil
}

func (s *passwordResetRepoStub) GetByToken(_ context.Context, token string) (*entities.PasswordReset, error) {
	for _, r := range s.resets {
		if r.Token == token {
			return r, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *passwordResetRepoStub) MarkUsed(_ context.Context, id uuid.UUID) error {
	for _, r := range s.resets {
		if r.ID == id {
			r.Used = true
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

func (s *passwordResetRepoStub) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	kept := s.resets[:0]
	for _, r := range s.resets {
		if r.UserID != userID {
			kept = append(kept, r)
		}
	}
	s.resets = kept
	return nil
}

type saleRepoStub struct {
	sales []*entities.Sale
	names map[uuid.UUID]string
}

func (s *saleRepoStub) Create(_ context.Context, sale *entities.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}
	s.sales = append(s.sales, sale)
	return nil
}

func (s *saleRepoStub) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]*entities.Sale, error) {
	var out []*entities.Sale
	for _, sale := range s.sales {
		if sale.RestaurantID == restaurantID {
			out = append(out, sale)
		}
	}
	return out, nil
}

func (s *saleRepoStub) Totals(_ context.Context, restaurantID uuid.UUID, from, to time.Time) (*entities.SaleTotals, error) {
	totals := &entities.SaleTotals{}
	for _, sale := range s.sales {
		if sale.RestaurantID != restaurantID || sale.CreatedAt.Before(from) || !sale.CreatedAt.Before(to) {
			continue
		}
		totals.TotalSalesUSD += sale.TotalUSD
		totals.TotalSalesVES += sale.TotalVES
		totals.TotalOrders++
	}
	return totals, nil
}

func (s *saleRepoStub) TotalsByDay(_ context.Context, restaurantID uuid.UUID, from, to time.Time) ([]*entities.DailySales, error) {
	byDay := map[string]*entities.DailySales{}
	for _, sale := range s.sales {
		if sale.RestaurantID != restaurantID || sale.CreatedAt.Before(from) || !sale.CreatedAt.Before(to) {
			continue
		}
		day := sale.CreatedAt.Format("2006-01-02")
		d, ok := byDay[day]
		if !ok {
			d = &entities.DailySales{Date: day}
			byDay[day] = d
		}
		d.Orders++
		d.AmountUSD += sale.TotalUSD
		d.AmountVES += sale.TotalVES
	}
	out := make([]*entities.DailySales, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *saleRepoStub) GlobalTotals(_ context.Context, from, to time.Time) (*entities.SaleTotals, error) {
	totals := &entities.SaleTotals{}
	for _, sale := range s.sales {
		if sale.CreatedAt.Before(from) || !sale.CreatedAt.Before(to) {
			continue
		}
		totals.TotalSalesUSD += sale.TotalUSD
		totals.TotalSalesVES += sale.TotalVES
		totals.TotalOrders++
	}
	return totals, nil
}

func (s *saleRepoStub) TotalsByStore(_ context.Context, from, to time.Time) ([]*entities.StoreSales, error) {
	byStore := map[uuid.UUID]*entities.StoreSales{}
	for _, sale := range s.sales {
		if sale.CreatedAt.Before(from) || !sale.CreatedAt.Before(to) {
			continue
		}
		st, ok := byStore[sale.RestaurantID]
		if !ok {
			st = &entities.StoreSales{RestaurantID: sale.RestaurantID, RestaurantName: s.names[sale.RestaurantID]}
			byStore[sale.RestaurantID] = st
		}
		st.Orders++
		st.TotalUSD += sale.TotalUSD
		st.TotalVES += sale.TotalVES
	}
	out := make([]*entities.StoreSales, 0, len(byStore))
	for _, st := range byStore {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalUSD > out[j].TotalUSD })
	return out, nil
}

func (s *saleRepoStub) DeleteByRestaurant(_ context.Context, restaurantID uuid.UUID) error {
	kept := s.sales[:0]
	for _, sale := range s.sales {
		if sale.RestaurantID != restaurantID {
			kept = append(kept, sale)
		}
	}
	s.sales = kept
	return nil
}

func (s *saleRepoStub) DeleteByBuyer(_ context.Context, userID uuid.UUID) error {
	id := userID.String()
	kept := s.sales[:0]
	for _, sale := range s.sales {
		if !sale.UserID.Valid || sale.UserID.String != id {
			kept = append(kept, sale)
		}
	}
	s.sales = kept
	return nil
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mailerStub struct {
	to      []string
	bodies  []string
	sendErr error
}

func (s *mailerStub) Send(_ context.Context, to, _, body string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.to = append(s.to, to)
	s.bodies = append(s.bodies, body)
	return nil
}

// withActor sets the auth context the way AuthMiddleware would after a
// valid token.
func withActor(userID uuid.UUID, role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserRoleKey, role)
		c.Next()
	}
}
