// internal/services/payment_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"github.com/stripe/stripe-go/v74/refund"
	"gorm.io/gorm"

	"github.com/artvista/artmarket-backend/internal/config"
	"github.com/artvista/artmarket-backend/internal/models"
	"github.com/artvista/artmarket-backend/internal/utils"
)

type PaymentService struct {
	db     *gorm.DB
	config *config.Config
}

type CreatePaymentIntentRequest struct {
	OrderID  uuid.UUID `json:"order_id" validate:"required"`
	Currency string    `json:"currency,omitempty"`
}

type PaymentIntentResponse struct {
	ClientSecret string  `json:"client_secret"`
	PaymentID    string  `json:"payment_id"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string    `json:"payment_intent_id" validate:"required"`
	OrderID         uuid.UUID `json:"order_id" validate:"required"`
}

type RefundRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
	Reason  string    `json:"reason" validate:"required,max=500"`
}

func NewPaymentService(db *gorm.DB, config *config.Config) *PaymentService {
	// Initialize Stripe
	stripe.Key = config.Payment.StripeSecretKey

	return &PaymentService{
		db:     db,
		config: config,
	}
}

// CreatePaymentIntent opens a Stripe payment for an unpaid order. The amount
// always comes from the stored order, never from the client.
func (s *PaymentService) CreatePaymentIntent(userID uuid.UUID, req *CreatePaymentIntentRequest) (*PaymentIntentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var order models.Order
	if err := s.db.First(&order, req.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.UserID != userID {
		return nil, errors.New("unauthorized to pay for this order")
	}

	if order.Status != models.OrderStatusPending || order.PaymentStatus != models.PaymentStatusUnpaid {
		return nil, errors.New("order is not awaiting payment")
	}

	currency := req.Currency
	if currency == "" {
		currency = s.config.Payment.Currency
	}

	// Stripe amounts are in the smallest currency unit
	amountInCents := int64(order.FinalAmount * 100)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInCents),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("order_id", order.ID.String())
	params.AddMetadata("order_number", order.OrderNumber)
	params.AddMetadata("user_id", userID.String())

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &PaymentIntentResponse{
		ClientSecret: pi.ClientSecret,
		PaymentID:    pi.ID,
		Amount:       order.FinalAmount,
		Status:       string(pi.Status),
	}, nil
}

func (s *PaymentService) ConfirmPayment(userID uuid.UUID, req *ConfirmPaymentRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	pi, err := paymentintent.Get(req.PaymentIntentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment intent: %w", err)
	}

	var order models.Order
	if err := s.db.First(&order, req.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.UserID != userID {
		return nil, errors.New("unauthorized to confirm this payment")
	}

	if pi.Metadata["order_id"] != order.ID.String() {
		return nil, errors.New("payment intent does not belong to this order")
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		now := time.Now()
		if err := s.db.Model(&order).Updates(map[string]interface{}{
			"status":            models.OrderStatusPaid,
			"payment_status":    models.PaymentStatusPaid,
			"payment_reference": pi.ID,
			"paid_at":           &now,
		}).Error; err != nil {
			return nil, fmt.Errorf("failed to update order: %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"order_id":       order.ID,
			"payment_intent": pi.ID,
		}).Info("Payment confirmed")

	case stripe.PaymentIntentStatusRequiresAction, stripe.PaymentIntentStatusRequiresConfirmation,
		stripe.PaymentIntentStatusRequiresPaymentMethod:
		return nil, errors.New("payment has not completed")

	default:
		return nil, fmt.Errorf("unexpected payment status: %s", pi.Status)
	}

	s.db.Preload("Items").Preload("Items.Artwork").First(&order, order.ID)
	return &order, nil
}

// RefundOrder refunds a paid order through Stripe and cancels it, restoring
// artwork stock. Admin only.
func (s *PaymentService) RefundOrder(req *RefundRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var order models.Order
	if err := s.db.Preload("Items").First(&order, req.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.PaymentStatus != models.PaymentStatusPaid {
		return nil, errors.New("only paid orders can be refunded")
	}

	if order.PaymentReference == "" {
		return nil, errors.New("order has no payment reference")
	}

	refundParams := &stripe.RefundParams{
		PaymentIntent: stripe.String(order.PaymentReference),
	}
	refundParams.AddMetadata("reason", req.Reason)

	if _, err := refund.New(refundParams); err != nil {
		return nil, fmt.Errorf("failed to create refund: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&order).Updates(map[string]interface{}{
			"status":         models.OrderStatusCancelled,
			"payment_status": models.PaymentStatusRefunded,
			"cancelled_at":   &now,
		}).Error; err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}

		for _, item := range order.Items {
			if err := restoreArtworkStock(tx, item); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"reason":   req.Reason,
	}).Info("Order refunded")

	s.db.Preload("Items").Preload("Items.Artwork").First(&order, order.ID)
	return &order, nil
}
