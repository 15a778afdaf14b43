package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/ezcheckout/internal/domain"
	"github.com/nikolayk812/ezcheckout/internal/dto"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomItem() domain.Item {
	return domain.Item{
		Identifier:  gofakeit.Number(1, 10_000),
		Name:        gofakeit.ProductName(),
		Description: gofakeit.SentenceSimple(),
		Price:       gofakeit.Number(0, 100_000),
	}
}

func TestItemRoundTrip(t *testing.T) {
	for i := 0; i < 20; i++ {
		item := randomItem()

		actual := dto.FromItem(item).ToDomain()
		assert.Empty(t, cmp.Diff(item, actual))
	}
}

func TestOrderRoundTrip(t *testing.T) {
	items := map[domain.Item]int{
		randomItem(): gofakeit.Number(1, 5),
		randomItem(): gofakeit.Number(1, 5),
		randomItem(): gofakeit.Number(1, 5),
	}

	order := domain.NewOrder(domain.OrderTypeEmployee, items)
	order.Identifier = gofakeit.Number(1, 10_000)

	actual, err := dto.FromOrder(order).ToDomain()
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(order, actual))
}

func TestFromOrder(t *testing.T) {
	cola := domain.Item{Identifier: 2, Name: "Cola", Description: "Soda", Price: 150}
	chips := domain.Item{Identifier: 1, Name: "Chips", Price: 250}

	completed := time.Date(2025, 6, 23, 15, 0, 0, 0, time.UTC)

	order := domain.Order{
		Identifier: 7,
		Type:       domain.OrderTypeCustomer,
		Created:    time.Date(2025, 6, 23, 14, 39, 27, 0, time.UTC),
		Completed:  &completed,
		Items:      map[domain.Item]int{cola: 2, chips: 1},
	}

	wire := dto.FromOrder(order)

	assert.Equal(t, "Customer", wire.Type)
	assert.Equal(t, 550, wire.TotalPrice)

	// items are sorted by item identifier
	itemIDs := lo.Map(wire.Items, func(oi dto.OrderItem, _ int) int {
		return oi.Item.Identifier
	})
	assert.Equal(t, []int{1, 2}, itemIDs)
}

func TestOrderJSONFieldNames(t *testing.T) {
	order := domain.NewOrder(domain.OrderTypeCustomer, map[domain.Item]int{
		{Identifier: 1, Name: "Cola", Price: 150}: 1,
	})

	data, err := json.Marshal(dto.FromOrder(order))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, field := range []string{"identifier", "type", "created", "completed", "items", "totalPrice"} {
		assert.Contains(t, decoded, field)
	}

	items, ok := decoded["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	entry, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, entry, "item")
	assert.Contains(t, entry, "quantity")
}

func TestParseOrderType(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      domain.OrderType
		wantError bool
	}{
		{name: "Customer: ok", input: "Customer", want: domain.OrderTypeCustomer},
		{name: "Employee: ok", input: "Employee", want: domain.OrderTypeEmployee},
		{name: "lowercase: fail", input: "customer", wantError: true},
		{name: "empty: fail", input: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dto.ParseOrderType(tt.input)
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckoutRoundTrip(t *testing.T) {
	checkout := domain.Checkout{
		Identifier:     3,
		Name:           "Front desk",
		AvailableItems: []domain.Item{randomItem(), randomItem()},
	}

	actual := dto.FromCheckout(checkout).ToDomain()
	assert.Empty(t, cmp.Diff(checkout, actual))
}
