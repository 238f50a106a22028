package domain_test

import (
	"testing"
	"time"

	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_MarkPaid(t *testing.T) {
	t.Run("pending order becomes paid and processing", func(t *testing.T) {
		order := &domain.Order{OrderStatus: domain.OrderStatusPending, PaymentStatus: domain.PaymentStatusPending}
		now := time.Now()

		require.NoError(t, order.MarkPaid(now))

		assert.Equal(t, domain.PaymentStatusPaid, order.PaymentStatus)
		assert.Equal(t, domain.OrderStatusProcessing, order.OrderStatus)
		require.NotNil(t, order.PaidAt)
		assert.Equal(t, now, *order.PaidAt)
	})

	t.Run("rejects orders that are already settled", func(t *testing.T) {
		for _, status := range []domain.PaymentStatus{
			domain.PaymentStatusPaid,
			domain.PaymentStatusRefunded,
			domain.PaymentStatusPartiallyRefunded,
			domain.PaymentStatusVoided,
		} {
			order := &domain.Order{OrderStatus: domain.OrderStatusProcessing, PaymentStatus: status}
			assert.False(t, order.CanMarkPaid(), status)
			assert.ErrorIs(t, order.MarkPaid(time.Now()), domain.ErrCannotMarkPaid)
		}
	})

	t.Run("rejects cancelled orders", func(t *testing.T) {
		order := &domain.Order{OrderStatus: domain.OrderStatusCancelled, PaymentStatus: domain.PaymentStatusPending}
		assert.False(t, order.CanMarkPaid())
	})
}

func TestOrder_DeliveryAddressID(t *testing.T) {
	shipping, pickup := int64(7), int64(9)

	t.Run("prefers pickup address", func(t *testing.T) {
		order := &domain.Order{ShippingAddressID: &shipping, PickupAddressID: &pickup}
		id, ok := order.DeliveryAddressID()
		assert.True(t, ok)
		assert.Equal(t, pickup, id)
	})

	t.Run("falls back to shipping address", func(t *testing.T) {
		order := &domain.Order{ShippingAddressID: &shipping}
		id, ok := order.DeliveryAddressID()
		assert.True(t, ok)
		assert.Equal(t, shipping, id)
	})

	t.Run("none set", func(t *testing.T) {
		_, ok := (&domain.Order{}).DeliveryAddressID()
		assert.False(t, ok)
	})
}

func TestOrder_Refunds(t *testing.T) {
	order := &domain.Order{OrderTotal: dec("100"), RefundedAmount: dec("20")}

	assert.True(t, order.IsPartialRefund(dec("50")))
	assert.False(t, order.IsPartialRefund(dec("80")))

	assert.False(t, order.ApplyRefundedAmount(dec("20.00")))
	assert.True(t, order.ApplyRefundedAmount(dec("30")))
	assert.True(t, dec("30").Equal(order.RefundedAmount))
}
