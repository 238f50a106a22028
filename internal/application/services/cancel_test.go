package services_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/laybuy-gateway/internal/application/services"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/DanielPopoola/laybuy-gateway/internal/infrastructure/laybuy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrder(t *testing.T) {
	t.Run("cancels with the stored token and forgets it", func(t *testing.T) {
		f := newFixture(t)
		f.attributes.set(1, services.AttrOrderToken, "tok-1")
		f.provider.EXPECT().
			CancelOrder(mock.Anything, laybuy.CancelRequest{Token: "tok-1"}).
			Return(&laybuy.CancelResponse{Response: laybuy.Response{Result: laybuy.ResultSuccess}}, nil).
			Once()

		require.NoError(t, f.service.CancelOrder(context.Background(), 1))
		assert.Empty(t, f.attributes.get(1, services.AttrOrderToken))
	})

	t.Run("nothing to cancel", func(t *testing.T) {
		f := newFixture(t)

		err := f.service.CancelOrder(context.Background(), 1)

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeMissingCorrelationID))
	})

	t.Run("rejected cancel keeps the token", func(t *testing.T) {
		f := newFixture(t)
		f.attributes.set(1, services.AttrOrderToken, "tok-1")
		f.provider.EXPECT().
			CancelOrder(mock.Anything, mock.Anything).
			Return(&laybuy.CancelResponse{Response: laybuy.Response{Result: laybuy.ResultError, Error: "Order already processed"}}, nil).
			Once()

		err := f.service.CancelOrder(context.Background(), 1)

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeProviderRejected))
		assert.Equal(t, "tok-1", f.attributes.get(1, services.AttrOrderToken))
	})
}
