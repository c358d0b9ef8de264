// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artvista/artmarket-backend/internal/models"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		allowed bool
	}{
		{"pending to paid", models.OrderStatusPending, models.OrderStatusPaid, true},
		{"pending to cancelled", models.OrderStatusPending, models.OrderStatusCancelled, true},
		{"paid to shipped", models.OrderStatusPaid, models.OrderStatusShipped, true},
		{"paid to cancelled", models.OrderStatusPaid, models.OrderStatusCancelled, true},
		{"shipped to completed", models.OrderStatusShipped, models.OrderStatusCompleted, true},
		{"pending to shipped", models.OrderStatusPending, models.OrderStatusShipped, false},
		{"pending to completed", models.OrderStatusPending, models.OrderStatusCompleted, false},
		{"shipped to cancelled", models.OrderStatusShipped, models.OrderStatusCancelled, false},
		{"completed to anything", models.OrderStatusCompleted, models.OrderStatusPending, false},
		{"cancelled is terminal", models.OrderStatusCancelled, models.OrderStatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, isValidStatusTransition(tt.from, tt.to))
		})
	}
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	svc := NewOrderService(nil)

	_, err := svc.CreateOrder(newTestUUID(t), &CreateOrderRequest{Items: []OrderItemRequest{}})
	assert.Error(t, err)
}

func TestCreateOrderComputesTotals(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewOrderService(db)

	userID := newTestUUID(t)
	artistID := newTestUUID(t)
	firstID := newTestUUID(t)
	secondID := newTestUUID(t)
	orderID := newTestUUID(t)

	artworkCols := []string{"id", "artist_id", "title", "price", "stock", "status"}

	mock.ExpectBegin()

	// First item: price 100.00 x 2, plenty of stock
	mock.ExpectQuery(`SELECT \* FROM "artworks" WHERE .+ FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(artworkCols).
			AddRow(firstID.String(), artistID.String(), "Blue Field", 100.0, 5, "available"))
	mock.ExpectExec(`UPDATE "artworks" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "artists" SET "total_sales"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Second item: price 250.50 x 1, last copy
	mock.ExpectQuery(`SELECT \* FROM "artworks" WHERE .+ FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(artworkCols).
			AddRow(secondID.String(), artistID.String(), "Red Monochrome", 250.5, 1, "available"))
	mock.ExpectExec(`UPDATE "artworks" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "artists" SET "total_sales"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(orderID.String()))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).
			AddRow(newTestUUID(t).String()).
			AddRow(newTestUUID(t).String()))

	mock.ExpectCommit()

	order, err := svc.CreateOrder(userID, &CreateOrderRequest{
		Items: []OrderItemRequest{
			{ArtworkID: firstID, Quantity: 2},
			{ArtworkID: secondID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 2)

	assert.Equal(t, 200.0, order.Items[0].Subtotal)
	assert.Equal(t, 100.0, order.Items[0].Price)
	assert.Equal(t, 250.5, order.Items[1].Subtotal)
	assert.Equal(t, 450.5, order.TotalAmount)
	assert.Equal(t, 450.5, order.FinalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusUnpaid, order.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestoreStockKeepsHiddenArtworkHidden(t *testing.T) {
	db, mock := newMockDB(t)

	artworkID := newTestUUID(t)
	artistID := newTestUUID(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "artworks" SET "stock"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// The status flip is guarded on sold; a hidden artwork matches no row
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "artworks" SET "status"=\$1 WHERE \(id = \$2 AND status = \$3\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT "artist_id" FROM "artworks"`).
		WillReturnRows(sqlmock.NewRows([]string{"artist_id"}).AddRow(artistID.String()))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "artists" SET "total_sales"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := restoreArtworkStock(db, models.OrderItem{ArtworkID: artworkID, Quantity: 1})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
