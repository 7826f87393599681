package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"fudys.backend/internal/domain/entities"
	"fudys.backend/internal/infrastructure/models"
)

// SaleRepository implements sale data operations
type SaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// Create stores a sale together with its line items
func (r *SaleRepository) Create(ctx context.Context, sale *entities.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	db := GetDB(ctx, r.db)

	m := &models.Sale{
		ID:            sale.ID,
		RestaurantID:  sale.RestaurantID,
		UserID:        sale.UserID.Ptr(),
		TotalUSD:      sale.TotalUSD,
		TotalVES:      sale.TotalVES,
		CommissionUSD: sale.CommissionUSD,
		CreatedAt:     sale.CreatedAt,
	}
	if err := db.Create(m).Error; err != nil {
		return err
	}

	for _, item := range sale.Items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.SaleID = sale.ID
		im := &models.SaleItem{
			ID:        item.ID,
			SaleID:    item.SaleID,
			ProductID: item.ProductID.Ptr(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			PriceUSD:  item.PriceUSD,
		}
		if err := db.Create(im).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListByRestaurant lists a restaurant's sales with items, newest first
func (r *SaleRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Sale, error) {
	db := GetDB(ctx, r.db)

	var saleModels []models.Sale
	if err := db.Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").Find(&saleModels).Error; err != nil {
		return nil, err
	}
	if len(saleModels) == 0 {
		return []*entities.Sale{}, nil
	}

	saleIDs := make([]uuid.UUID, 0, len(saleModels))
	for i := range saleModels {
		saleIDs = append(saleIDs, saleModels[i].ID)
	}

	var itemModels []models.SaleItem
	if err := db.Where("sale_id IN ?", saleIDs).Find(&itemModels).Error; err != nil {
		return nil, err
	}

	itemsBySale := make(map[uuid.UUID][]*entities.SaleItem, len(saleModels))
	for i := range itemModels {
		im := &itemModels[i]
		itemsBySale[im.SaleID] = append(itemsBySale[im.SaleID], &entities.SaleItem{
			ID:        im.ID,
			SaleID:    im.SaleID,
			ProductID: null.StringFromPtr(im.ProductID),
			Name:      im.Name,
			Quantity:  im.Quantity,
			PriceUSD:  im.PriceUSD,
		})
	}

	sales := make([]*entities.Sale, 0, len(saleModels))
	for i := range saleModels {
		m := &saleModels[i]
		sales = append(sales, &entities.Sale{
			ID:            m.ID,
			RestaurantID:  m.RestaurantID,
			UserID:        null.StringFromPtr(m.UserID),
			TotalUSD:      m.TotalUSD,
			TotalVES:      m.TotalVES,
			CommissionUSD: m.CommissionUSD,
			Items:         itemsBySale[m.ID],
			CreatedAt:     m.CreatedAt,
		})
	}
	return sales, nil
}

type totalsRow struct {
	TotalUSD float64
	TotalVES float64
	Orders   int
}

// Totals aggregates one restaurant's sales over [from, to)
func (r *SaleRepository) Totals(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) (*entities.SaleTotals, error) {
	var row totalsRow
	err := GetDB(ctx, r.db).Model(&models.Sale{}).
		Select("COALESCE(SUM(total_usd), 0) AS total_usd, COALESCE(SUM(total_ves), 0) AS total_ves, COUNT(*) AS orders").
		Where("restaurant_id = ? AND created_at >= ? AND created_at < ?", restaurantID, from, to).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &entities.SaleTotals{
		TotalSalesUSD: row.TotalUSD,
		TotalSalesVES: row.TotalVES,
		TotalOrders:   row.Orders,
	}, nil
}

type dailyRow struct {
	Day      string
	Orders   int
	TotalUSD float64
	TotalVES float64
}

// TotalsByDay aggregates one restaurant's sales per calendar day
func (r *SaleRepository) TotalsByDay(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) ([]*entities.DailySales, error) {
	var rows []dailyRow
	err := GetDB(ctx, r.db).Model(&models.Sale{}).
		Select("DATE(created_at) AS day, COUNT(*) AS orders, COALESCE(SUM(total_usd), 0) AS total_usd, COALESCE(SUM(total_ves), 0) AS total_ves").
		Where("restaurant_id = ? AND created_at >= ? AND created_at < ?", restaurantID, from, to).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	days := make([]*entities.DailySales, 0, len(rows))
	for _, row := range rows {
		days = append(days, &entities.DailySales{
			Date:      row.Day,
			Orders:    row.Orders,
			AmountUSD: row.TotalUSD,
			AmountVES: row.TotalVES,
		})
	}
	return days, nil
}

// GlobalTotals aggregates platform-wide sales over [from, to)
func (r *SaleRepository) GlobalTotals(ctx context.Context, from, to time.Time) (*entities.SaleTotals, error) {
	var row totalsRow
	err := GetDB(ctx, r.db).Model(&models.Sale{}).
		Select("COALESCE(SUM(total_usd), 0) AS total_usd, COALESCE(SUM(total_ves), 0) AS total_ves, COUNT(*) AS orders").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &entities.SaleTotals{
		TotalSalesUSD: row.TotalUSD,
		TotalSalesVES: row.TotalVES,
		TotalOrders:   row.Orders,
	}, nil
}

type storeRow struct {
	RestaurantID   string
	RestaurantName string
	TotalUSD       float64
	TotalVES       float64
	Orders         int
}

// TotalsByStore aggregates sales per restaurant, biggest sellers first
func (r *SaleRepository) TotalsByStore(ctx context.Context, from, to time.Time) ([]*entities.StoreSales, error) {
	var rows []storeRow
	err := GetDB(ctx, r.db).Model(&models.Sale{}).
		Select("sales.restaurant_id AS restaurant_id, restaurants.name AS restaurant_name, "+
			"COALESCE(SUM(sales.total_usd), 0) AS total_usd, COALESCE(SUM(sales.total_ves), 0) AS total_ves, COUNT(*) AS orders").
		Joins("JOIN restaurants ON restaurants.id = sales.restaurant_id").
		Where("sales.created_at >= ? AND sales.created_at < ?", from, to).
		Group("sales.restaurant_id, restaurants.name").
		Order("total_usd DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stores := make([]*entities.StoreSales, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.RestaurantID)
		if err != nil {
			continue
		}
		stores = append(stores, &entities.StoreSales{
			RestaurantID:   id,
			RestaurantName: row.RestaurantName,
			TotalUSD:       row.TotalUSD,
			TotalVES:       row.TotalVES,
			Orders:         row.Orders,
		})
	}
	return stores, nil
}

// DeleteByRestaurant removes a restaurant's sales, line items first
func (r *SaleRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("sale_id IN (?)",
		db.Session(&gorm.Session{NewDB: true}).Model(&models.Sale{}).Select("id").Where("restaurant_id = ?", restaurantID),
	).Delete(&models.SaleItem{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.Sale{}, "restaurant_id = ?", restaurantID).Error
}

// DeleteByBuyer removes the sales where the user is the buyer, items first
func (r *SaleRepository) DeleteByBuyer(ctx context.Context, userID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("sale_id IN (?)",
		db.Session(&gorm.Session{NewDB: true}).Model(&models.Sale{}).Select("id").Where("user_id = ?", userID.String()),
	).Delete(&models.SaleItem{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.Sale{}, "user_id = ?", userID.String()).Error
}
