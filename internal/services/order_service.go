// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/artvista/artmarket-backend/internal/models"
	"github.com/artvista/artmarket-backend/internal/utils"
)

type OrderService struct {
	db *gorm.DB
}

type OrderItemRequest struct {
	ArtworkID uuid.UUID `json:"artwork_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress models.JSONB       `json:"shipping_address,omitempty"`
	Notes           string             `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type OrderSearchParams struct {
	utils.PaginationParams
	UserID        *uuid.UUID            `json:"user_id,omitempty"`
	Status        *models.OrderStatus   `json:"status,omitempty"`
	PaymentStatus *models.PaymentStatus `json:"payment_status,omitempty"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder places an order for one or more artworks. The artwork rows are
// locked for the duration of the transaction so two buyers cannot purchase the
// last copy of the same piece.
func (s *OrderService) CreateOrder(userID uuid.UUID, req *CreateOrderRequest) (*models.Order, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if len(req.Items) == 0 {
		return nil, errors.New("order must contain at least one item")
	}

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var items []models.OrderItem
		var total float64

		for _, item := range req.Items {
			var artwork models.Artwork
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&artwork, item.ArtworkID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.New("artwork not found")
				}
				return fmt.Errorf("database error: %w", err)
			}

			if artwork.Status != models.ArtworkStatusAvailable {
				return errors.New("artwork not found")
			}

			if artwork.Stock < item.Quantity {
				return fmt.Errorf("insufficient stock for artwork %s", artwork.Title)
			}

			// Price is captured at purchase time
			subtotal := artwork.Price * float64(item.Quantity)
			total += subtotal

			items = append(items, models.OrderItem{
				ArtworkID: artwork.ID,
				Price:     artwork.Price,
				Quantity:  item.Quantity,
				Subtotal:  subtotal,
			})

			// Decrement stock; last copy marks the piece as sold
			newStock := artwork.Stock - item.Quantity
			updates := map[string]interface{}{"stock": newStock}
			if newStock == 0 {
				updates["status"] = models.ArtworkStatusSold
			}
			if err := tx.Model(&models.Artwork{}).Where("id = ?", artwork.ID).
				Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update artwork stock: %w", err)
			}

			if err := tx.Model(&models.Artist{}).Where("id = ?", artwork.ArtistID).
				UpdateColumn("total_sales", gorm.Expr("total_sales + ?", item.Quantity)).Error; err != nil {
				return fmt.Errorf("failed to update artist sales: %w", err)
			}
		}

		orderNumber, err := utils.GenerateOrderNumber()
		if err != nil {
			return fmt.Errorf("failed to generate order number: %w", err)
		}

		order = &models.Order{
			OrderNumber:     orderNumber,
			UserID:          userID,
			TotalAmount:     total,
			FinalAmount:     total,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusUnpaid,
			ShippingAddress: req.ShippingAddress,
			Notes:           req.Notes,
			Items:           items,
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"user_id":      userID,
		"final_amount": order.FinalAmount,
	}).Info("Order created")

	s.db.Preload("Items").Preload("Items.Artwork").First(order, order.ID)
	return order, nil
}

func (s *OrderService) GetOrder(id uuid.UUID, userID uuid.UUID, isAdmin bool) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").Preload("Items.Artwork").
		Preload("Items.Artwork.Artist").Preload("User").
		First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !isAdmin && order.UserID != userID {
		return nil, errors.New("unauthorized to view this order")
	}

	return &order, nil
}

func (s *OrderService) ListOrders(params OrderSearchParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{}).
		Preload("Items").Preload("Items.Artwork")

	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	} else {
		query = query.Preload("User")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *params.PaymentStatus)
	}

	if params.Search != "" {
		query = query.Where("order_number ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "final_amount", "status"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

// CancelOrder cancels a pending order and returns the reserved stock.
func (s *OrderService) CancelOrder(id uuid.UUID, userID uuid.UUID, isAdmin bool) (*models.Order, error) {
	var order models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("order not found")
			}
			return fmt.Errorf("database error: %w", err)
		}

		if !isAdmin && order.UserID != userID {
			return errors.New("unauthorized to cancel this order")
		}

		if order.Status != models.OrderStatusPending {
			return errors.New("only pending orders can be cancelled")
		}

		for _, item := range order.Items {
			if err := restoreArtworkStock(tx, item); err != nil {
				return err
			}
		}

		now := time.Now()
		if err := tx.Model(&order).Updates(map[string]interface{}{
			"status":       models.OrderStatusCancelled,
			"cancelled_at": &now,
		}).Error; err != nil {
			return fmt.Errorf("failed to cancel order: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
	}).Info("Order cancelled")

	s.db.Preload("Items").Preload("Items.Artwork").First(&order, id)
	return &order, nil
}

// UpdateOrderStatus moves an order along the fulfilment flow. Admin only.
func (s *OrderService) UpdateOrderStatus(id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !isValidStatusTransition(order.Status, status) {
		return nil, fmt.Errorf("invalid status transition from %s to %s", order.Status, status)
	}

	updates := map[string]interface{}{"status": status}
	if status == models.OrderStatusPaid && order.PaidAt == nil {
		now := time.Now()
		updates["paid_at"] = &now
		updates["payment_status"] = models.PaymentStatusPaid
	}

	if err := s.db.Model(&order).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.db.Preload("Items").Preload("Items.Artwork").First(&order, id)
	return &order, nil
}

// restoreArtworkStock returns a cancelled item's quantity to its artwork and
// rolls back the artist sales counter. Only a sold artwork flips back to
// available; a hidden one stays hidden.
func restoreArtworkStock(tx *gorm.DB, item models.OrderItem) error {
	if err := tx.Model(&models.Artwork{}).Where("id = ?", item.ArtworkID).
		UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
		return fmt.Errorf("failed to restore artwork stock: %w", err)
	}

	if err := tx.Model(&models.Artwork{}).
		Where("id = ? AND status = ?", item.ArtworkID, models.ArtworkStatusSold).
		UpdateColumn("status", models.ArtworkStatusAvailable).Error; err != nil {
		return fmt.Errorf("failed to restore artwork status: %w", err)
	}

	var artwork models.Artwork
	if err := tx.Select("artist_id").First(&artwork, item.ArtworkID).Error; err == nil {
		tx.Model(&models.Artist{}).Where("id = ?", artwork.ArtistID).
			UpdateColumn("total_sales", gorm.Expr("GREATEST(total_sales - ?, 0)", item.Quantity))
	}
	return nil
}

func isValidStatusTransition(from, to models.OrderStatus) bool {
	transitions := map[models.OrderStatus][]models.OrderStatus{
		models.OrderStatusPending: {models.OrderStatusPaid, models.OrderStatusCancelled},
		models.OrderStatusPaid:    {models.OrderStatusShipped, models.OrderStatusCancelled},
		models.OrderStatusShipped: {models.OrderStatusCompleted},
	}

	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
