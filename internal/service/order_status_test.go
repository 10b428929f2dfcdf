package service

import (
	"testing"

	"github.com/techfood-api/internal/constants"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{constants.OrderStatusPending, constants.OrderStatusPreparing, true},
		{constants.OrderStatusPending, constants.OrderStatusCancelled, true},
		{constants.OrderStatusPending, constants.OrderStatusDelivered, false},
		{constants.OrderStatusPreparing, constants.OrderStatusEnRoute, true},
		{constants.OrderStatusPreparing, constants.OrderStatusPending, false},
		{constants.OrderStatusEnRoute, constants.OrderStatusDelivered, true},
		{constants.OrderStatusEnRoute, constants.OrderStatusCancelled, true},
		{constants.OrderStatusDelivered, constants.OrderStatusCancelled, false},
		{constants.OrderStatusCancelled, constants.OrderStatusPending, false},
		{"PENDING", "preparing", true},
		{"unknown", constants.OrderStatusPending, false},
		{constants.OrderStatusPending, "unknown", false},
	}
	for _, tc := range cases {
		if got := CanTransitionOrderStatus(tc.from, tc.to); got != tc.allowed {
			t.Fatalf("transition %s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestIsTerminalOrderStatus(t *testing.T) {
	if !IsTerminalOrderStatus(constants.OrderStatusDelivered) {
		t.Fatalf("delivered must be terminal")
	}
	if !IsTerminalOrderStatus(constants.OrderStatusCancelled) {
		t.Fatalf("cancelled must be terminal")
	}
	if IsTerminalOrderStatus(constants.OrderStatusPending) {
		t.Fatalf("pending must not be terminal")
	}
	if IsTerminalOrderStatus("unknown") {
		t.Fatalf("unknown must not be terminal")
	}
}

func TestNormalizeOrderStatus(t *testing.T) {
	if got := NormalizeOrderStatus(" En_Route "); got != constants.OrderStatusEnRoute {
		t.Fatalf("expected en_route, got %q", got)
	}
	if got := NormalizeOrderStatus("shipped"); got != "" {
		t.Fatalf("expected empty for unknown status, got %q", got)
	}
}
