package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiffin-hq/tiffin/internal/domain/benefit"
	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
	"github.com/tiffin-hq/tiffin/internal/shared/biztime"
	"github.com/tiffin-hq/tiffin/internal/shared/errors"
)

func TestCreateGuestOrder_Success(t *testing.T) {
	var saved *benefit.Order
	orderRepo := &mockOrderRepository{
		CreateGuestFunc: func(ctx context.Context, o *benefit.Order) error {
			saved = o
			return nil
		},
	}
	configs := &mockConfigProvider{
		GetFunc: func(ctx context.Context) (benefit.BusinessConfig, error) { return testConfig(), nil },
	}

	uc := NewCreateGuestOrderUseCase(orderRepo, configs, &mockLogger{})
	uc.now = fixedNow(t, "2024-01-05T00:00:00Z")

	order, err := uc.Execute(context.Background(), CreateGuestOrderCommand{
		GuestName: "Priya Nair",
		Date:      biztime.MustParseDate("2024-01-08"),
		ComboType: "vegetarian",
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.True(t, order.IsGuest())
	assert.Equal(t, int64(1100), order.Price().AmountInCents())
	assert.Equal(t, vo.ComboVegetarian, order.ComboType())
	assert.Equal(t, vo.OrderStatusActive, order.Status())
}

func TestCreateGuestOrder_Validation(t *testing.T) {
	uc := NewCreateGuestOrderUseCase(&mockOrderRepository{}, &mockConfigProvider{
		GetFunc: func(ctx context.Context) (benefit.BusinessConfig, error) { return testConfig(), nil },
	}, &mockLogger{})
	uc.now = fixedNow(t, "2024-01-05T00:00:00Z")

	cases := []struct {
		name string
		cmd  CreateGuestOrderCommand
	}{
		{"missing name", CreateGuestOrderCommand{Date: biztime.MustParseDate("2024-01-08"), ComboType: "standard"}},
		{"missing date", CreateGuestOrderCommand{GuestName: "Priya Nair", ComboType: "standard"}},
		{"unknown combo", CreateGuestOrderCommand{GuestName: "Priya Nair", Date: biztime.MustParseDate("2024-01-08"), ComboType: "deluxe"}},
		{"past date", CreateGuestOrderCommand{GuestName: "Priya Nair", Date: biztime.MustParseDate("2024-01-01"), ComboType: "standard"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
