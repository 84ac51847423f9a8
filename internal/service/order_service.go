package service

import (
	"context"
	"time"

	"digital-menu/internal/metrics"
	"digital-menu/internal/order"
	"digital-menu/internal/settings"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	carts   CartService
	feed    *settings.Feed
	metrics *metrics.Registry
	clock   Clock
	logger  zerolog.Logger
}

// NewOrderService creates a new order service. A nil clock defaults to
// time.Now.
func NewOrderService(
	carts CartService,
	feed *settings.Feed,
	reg *metrics.Registry,
	clock Clock,
	logger zerolog.Logger,
) OrderService {
	if clock == nil {
		clock = time.Now
	}
	return &orderService{
		carts:   carts,
		feed:    feed,
		metrics: reg,
		clock:   clock,
		logger:  logger.With().Str("service", "order").Logger(),
	}
}

// BuildOrder validates the cart against current business settings and
// produces the summary text plus WhatsApp deep link. Building has no
// side effects beyond metrics; the caller performs the navigation.
func (s *orderService) BuildOrder(_ context.Context, cartID string) (*order.Message, error) {
	snapshot := s.carts.Snapshot(cartID)
	current := s.feed.Current()

	msg, err := order.Build(snapshot, current, s.clock())
	if err != nil {
		s.logger.Warn().Err(err).Str("cart_id", cartID).Msg("order message rejected")
		return nil, err
	}

	s.metrics.OrderHandoffs.Inc()
	s.logger.Info().
		Str("cart_id", cartID).
		Int("item_count", len(snapshot.Lines)).
		Str("order_type", snapshot.OrderType).
		Msg("order message built")

	return msg, nil
}
