// internal/services/dashboard_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artvista/artmarket-backend/internal/models"
)

type DashboardService struct {
	db *gorm.DB
}

type AdminDashboardStats struct {
	TotalUsers         int64               `json:"total_users"`
	TotalArtists       int64               `json:"total_artists"`
	TotalArtworks      int64               `json:"total_artworks"`
	TotalOrders        int64               `json:"total_orders"`
	TotalRevenue       float64             `json:"total_revenue"`
	MonthlyRevenue     float64             `json:"monthly_revenue"`
	NewUsersThisMonth  int64               `json:"new_users_this_month"`
	OrdersThisMonth    int64               `json:"orders_this_month"`
	PendingArtists     int64               `json:"pending_artists"`
	PendingOrders      int64               `json:"pending_orders"`
	UserGrowth         float64             `json:"user_growth"`
	RevenueGrowth      float64             `json:"revenue_growth"`
	TopSellingArtworks []TopSellingArtwork `json:"top_selling_artworks"`
}

type TopSellingArtwork struct {
	ArtworkID uuid.UUID `json:"artwork_id"`
	Title     string    `json:"title"`
	UnitsSold int64     `json:"units_sold"`
	Revenue   float64   `json:"revenue"`
}

type ArtistDashboardStats struct {
	TotalArtworks     int64        `json:"total_artworks"`
	AvailableArtworks int64        `json:"available_artworks"`
	SoldArtworks      int64        `json:"sold_artworks"`
	TotalSales        int64        `json:"total_sales"`
	TotalRevenue      float64      `json:"total_revenue"`
	MonthlyRevenue    float64      `json:"monthly_revenue"`
	TotalViews        int64        `json:"total_views"`
	AverageRating     float64      `json:"average_rating"`
	TotalReviews      int64        `json:"total_reviews"`
	RecentSales       []RecentSale `json:"recent_sales"`
}

type RecentSale struct {
	OrderNumber  string    `json:"order_number"`
	ArtworkID    uuid.UUID `json:"artwork_id"`
	ArtworkTitle string    `json:"artwork_title"`
	Quantity     int       `json:"quantity"`
	Subtotal     float64   `json:"subtotal"`
	SoldAt       time.Time `json:"sold_at"`
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

func (s *DashboardService) GetAdminStats() (*AdminDashboardStats, error) {
	stats := &AdminDashboardStats{}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	// Entity counts
	s.db.Model(&models.User{}).Count(&stats.TotalUsers)
	s.db.Model(&models.Artist{}).Count(&stats.TotalArtists)
	s.db.Model(&models.Artwork{}).Count(&stats.TotalArtworks)
	s.db.Model(&models.Order{}).Count(&stats.TotalOrders)

	// Revenue counts paid orders only
	s.db.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentStatusPaid).
		Select("COALESCE(SUM(final_amount), 0)").Scan(&stats.TotalRevenue)

	s.db.Model(&models.Order{}).
		Where("payment_status = ? AND created_at >= ?", models.PaymentStatusPaid, monthStart).
		Select("COALESCE(SUM(final_amount), 0)").Scan(&stats.MonthlyRevenue)

	s.db.Model(&models.User{}).Where("created_at >= ?", monthStart).Count(&stats.NewUsersThisMonth)
	s.db.Model(&models.Order{}).Where("created_at >= ?", monthStart).Count(&stats.OrdersThisMonth)

	// Items awaiting action
	s.db.Model(&models.Artist{}).Where("status = ?", models.ArtistStatusPending).Count(&stats.PendingArtists)
	s.db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&stats.PendingOrders)

	// Month over month growth
	var lastMonthUsers int64
	s.db.Model(&models.User{}).
		Where("created_at >= ? AND created_at < ?", lastMonthStart, monthStart).
		Count(&lastMonthUsers)

	var lastMonthRevenue float64
	s.db.Model(&models.Order{}).
		Where("payment_status = ? AND created_at >= ? AND created_at < ?",
			models.PaymentStatusPaid, lastMonthStart, monthStart).
		Select("COALESCE(SUM(final_amount), 0)").Scan(&lastMonthRevenue)

	if lastMonthUsers > 0 {
		stats.UserGrowth = float64(stats.NewUsersThisMonth-lastMonthUsers) / float64(lastMonthUsers) * 100
	}

	if lastMonthRevenue > 0 {
		stats.RevenueGrowth = (stats.MonthlyRevenue - lastMonthRevenue) / lastMonthRevenue * 100
	}

	topSelling, err := s.topSellingArtworks(10)
	if err != nil {
		return nil, err
	}
	stats.TopSellingArtworks = topSelling

	return stats, nil
}

func (s *DashboardService) GetArtistStats(artistID uuid.UUID) (*ArtistDashboardStats, error) {
	var artist models.Artist
	if err := s.db.First(&artist, artistID).Error; err != nil {
		return nil, fmt.Errorf("artist not found: %w", err)
	}

	stats := &ArtistDashboardStats{}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	s.db.Model(&models.Artwork{}).Where("artist_id = ?", artistID).Count(&stats.TotalArtworks)
	s.db.Model(&models.Artwork{}).
		Where("artist_id = ? AND status = ?", artistID, models.ArtworkStatusAvailable).
		Count(&stats.AvailableArtworks)
	s.db.Model(&models.Artwork{}).
		Where("artist_id = ? AND status = ?", artistID, models.ArtworkStatusSold).
		Count(&stats.SoldArtworks)

	stats.TotalSales = artist.TotalSales

	// Revenue is summed from paid order items for this artist's artworks
	s.db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN artworks ON artworks.id = order_items.artwork_id").
		Where("artworks.artist_id = ? AND orders.payment_status = ?", artistID, models.PaymentStatusPaid).
		Select("COALESCE(SUM(order_items.subtotal), 0)").Scan(&stats.TotalRevenue)

	s.db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN artworks ON artworks.id = order_items.artwork_id").
		Where("artworks.artist_id = ? AND orders.payment_status = ? AND orders.created_at >= ?",
			artistID, models.PaymentStatusPaid, monthStart).
		Select("COALESCE(SUM(order_items.subtotal), 0)").Scan(&stats.MonthlyRevenue)

	s.db.Model(&models.Artwork{}).Where("artist_id = ?", artistID).
		Select("COALESCE(SUM(view_count), 0)").Scan(&stats.TotalViews)

	var ratingStats struct {
		Avg   float64
		Count int64
	}
	s.db.Model(&models.Review{}).
		Joins("JOIN artworks ON artworks.id = reviews.artwork_id").
		Where("artworks.artist_id = ?", artistID).
		Select("COALESCE(AVG(reviews.rating), 0) as avg, COUNT(*) as count").
		Scan(&ratingStats)
	stats.AverageRating = ratingStats.Avg
	stats.TotalReviews = ratingStats.Count

	recent, err := s.recentSales(artistID, 10)
	if err != nil {
		return nil, err
	}
	stats.RecentSales = recent

	return stats, nil
}

func (s *DashboardService) recentSales(artistID uuid.UUID, limit int) ([]RecentSale, error) {
	var results []RecentSale
	err := s.db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN artworks ON artworks.id = order_items.artwork_id").
		Where("artworks.artist_id = ? AND orders.payment_status = ?", artistID, models.PaymentStatusPaid).
		Select("orders.order_number, order_items.artwork_id, artworks.title as artwork_title, order_items.quantity, order_items.subtotal, orders.paid_at as sold_at").
		Order("orders.paid_at DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent sales: %w", err)
	}
	return results, nil
}

func (s *DashboardService) topSellingArtworks(limit int) ([]TopSellingArtwork, error) {
	var results []TopSellingArtwork
	err := s.db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN artworks ON artworks.id = order_items.artwork_id").
		Where("orders.payment_status = ?", models.PaymentStatusPaid).
		Select("order_items.artwork_id, artworks.title, SUM(order_items.quantity) as units_sold, SUM(order_items.subtotal) as revenue").
		Group("order_items.artwork_id, artworks.title").
		Order("units_sold DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top selling artworks: %w", err)
	}
	return results, nil
}
