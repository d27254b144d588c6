package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"gameshelf-backend/internal/service"
)

func TestMockLocationResolver(t *testing.T) {
	resolver := service.NewMockLocationResolver()
	ctx := context.Background()

	tests := []struct {
		name string
		lat  float64
		lng  float64
		want string
	}{
		{name: "downtown Orlando", lat: 28.5384, lng: -81.3789, want: "Orlando, FL, United States"},
		{name: "near the Orlando airport", lat: 28.43, lng: -81.31, want: "Orlando, FL, United States"},
		{name: "Atlanta", lat: 33.7490, lng: -84.3880, want: "Atlanta, GA, United States"},
		{name: "Miami", lat: 25.7617, lng: -80.1918, want: "Miami, FL, United States"},
		{name: "New York is off the map", lat: 40.7128, lng: -74.0060, want: "Unknown Location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.Resolve(ctx, tt.lat, tt.lng)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
