package repository

import (
	"context"
	"fmt"
	"strings"

	"digital-menu/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// settingsRepository implements the SettingsRepository interface using
// PostgreSQL. The settings document is a single row with a fixed key.
type settingsRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSettingsRepository creates a new PostgreSQL-backed settings repository.
func NewSettingsRepository(pool *pgxpool.Pool, logger zerolog.Logger) SettingsRepository {
	return &settingsRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "settings").Logger(),
	}
}

// Get retrieves the settings document, or the documented defaults when it
// has not been created yet. A missing document is not an error.
func (r *settingsRepository) Get(ctx context.Context) (model.BusinessSettings, error) {
	query := `
		SELECT whatsapp_number, business_open, accepting_orders, currency_symbol,
		       location, opening_hours, business_name, business_icon
		FROM business_settings
		WHERE id = 1
	`

	var s model.BusinessSettings
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.WhatsAppNumber, &s.BusinessOpen, &s.AcceptingOrders, &s.CurrencySymbol,
		&s.Location, &s.OpeningHours, &s.BusinessName, &s.BusinessIcon)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Msg("settings document not initialised, serving defaults")
			return model.DefaultBusinessSettings(), nil
		}
		r.logger.Error().Err(err).Msg("failed to query settings")
		return model.BusinessSettings{}, fmt.Errorf("failed to query settings: %w", err)
	}

	return s, nil
}

// Update merges the provided fields into the settings document, creating
// it from the defaults if necessary. Unspecified fields are never
// clobbered.
func (r *settingsRepository) Update(ctx context.Context, update model.BusinessSettingsUpdate) error {
	if update.BusinessName != nil && strings.TrimSpace(*update.BusinessName) == "" {
		return model.ErrEmptyBusinessName
	}

	defaults := model.DefaultBusinessSettings()

	query := `
		INSERT INTO business_settings (
			id, whatsapp_number, business_open, accepting_orders, currency_symbol,
			location, opening_hours, business_name, business_icon
		)
		VALUES (
			1,
			COALESCE($1, $9), COALESCE($2, $10), COALESCE($3, $11), COALESCE($4, $12),
			COALESCE($5, $13), COALESCE($6, $14), COALESCE($7, $15), COALESCE($8, $16)
		)
		ON CONFLICT (id) DO UPDATE SET
			whatsapp_number  = COALESCE($1, business_settings.whatsapp_number),
			business_open    = COALESCE($2, business_settings.business_open),
			accepting_orders = COALESCE($3, business_settings.accepting_orders),
			currency_symbol  = COALESCE($4, business_settings.currency_symbol),
			location         = COALESCE($5, business_settings.location),
			opening_hours    = COALESCE($6, business_settings.opening_hours),
			business_name    = COALESCE($7, business_settings.business_name),
			business_icon    = COALESCE($8, business_settings.business_icon)
	`

	_, err := r.pool.Exec(ctx, query,
		update.WhatsAppNumber, update.BusinessOpen, update.AcceptingOrders, update.CurrencySymbol,
		update.Location, update.OpeningHours, update.BusinessName, update.BusinessIcon,
		defaults.WhatsAppNumber, defaults.BusinessOpen, defaults.AcceptingOrders, defaults.CurrencySymbol,
		defaults.Location, defaults.OpeningHours, defaults.BusinessName, defaults.BusinessIcon)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to update settings")
		return fmt.Errorf("failed to update settings: %w", err)
	}

	r.logger.Info().Msg("business settings updated")
	return nil
}
