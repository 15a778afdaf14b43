package domain_test

import (
	"strings"
	"testing"

	"github.com/nikolayk812/ezcheckout/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name      string
		item      domain.Item
		wantError string
	}{
		{
			name: "valid item: ok",
			item: domain.Item{Identifier: 1, Name: "Cola", Description: "Soda", Price: 150},
		},
		{
			name: "free item: ok",
			item: domain.Item{Name: "Water", Price: 0},
		},
		{
			name:      "empty name: fail",
			item:      domain.Item{Price: 100},
			wantError: "name is empty",
		},
		{
			name:      "name too long: fail",
			item:      domain.Item{Name: strings.Repeat("a", 201), Price: 100},
			wantError: "name is longer than 200 characters",
		},
		{
			name:      "description too long: fail",
			item:      domain.Item{Name: "Cola", Description: strings.Repeat("a", 1001), Price: 100},
			wantError: "description is longer than 1000 characters",
		},
		{
			name:      "negative price: fail",
			item:      domain.Item{Name: "Cola", Price: -1},
			wantError: "price is negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}
