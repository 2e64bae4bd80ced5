package saleorder_test

import (
	"testing"

	"perfumery/internal/core/domain/model/saleorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  saleorder.Status
		wantErr bool
	}{
		{"created", saleorder.Created, false},
		{"shipped", saleorder.Shipped, false},
		{"unknown", saleorder.Unknown, true},
		{"out of range", saleorder.Status(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "status is invalid")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatus_Ship(t *testing.T) {
	next, err := saleorder.Created.Ship()
	require.NoError(t, err)
	assert.Equal(t, saleorder.Shipped, next)

	next, err = saleorder.Shipped.Ship()
	require.Error(t, err)
	assert.Equal(t, saleorder.Shipped, next)
	assert.Contains(t, err.Error(), "SHIPPED is not a valid status to ship")
}
