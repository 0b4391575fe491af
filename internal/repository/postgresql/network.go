package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/geoattend/geoattend-backend-go/internal/domain/network"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type networkRepository struct {
	db *database.DB
}

func NewNetworkRepository(db *database.DB) network.NetworkRepository {
	return &networkRepository{db: db}
}

const networkColumns = `id, name, ssid, bssid, description, active, created_at, updated_at`

func scanNetwork(row pgx.Row) (network.AuthorizedNetwork, error) {
	var n network.AuthorizedNetwork
	err := row.Scan(&n.ID, &n.Name, &n.SSID, &n.BSSID, &n.Description, &n.Active, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

// Create implements network.NetworkRepository. BSSIDs are stored
// upper-normalized so the unique index catches case-variant duplicates.
func (r *networkRepository) Create(ctx context.Context, n network.AuthorizedNetwork) (network.AuthorizedNetwork, error) {
	q := GetQuerier(ctx, r.db)

	n.BSSID = network.NormalizeBSSID(n.BSSID)

	query := `
		INSERT INTO authorized_networks (id, name, ssid, bssid, description, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, n.ID, n.Name, n.SSID, n.BSSID, n.Description, n.Active).
		Scan(&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return network.AuthorizedNetwork{}, network.ErrBSSIDExists
		}
		return network.AuthorizedNetwork{}, fmt.Errorf("failed to create authorized network: %w", err)
	}

	return n, nil
}

// GetByID implements network.NetworkRepository.
func (r *networkRepository) GetByID(ctx context.Context, id string) (network.AuthorizedNetwork, error) {
	q := GetQuerier(ctx, r.db)

	n, err := scanNetwork(q.QueryRow(ctx, `SELECT `+networkColumns+` FROM authorized_networks WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return network.AuthorizedNetwork{}, network.ErrNetworkNotFound
		}
		return network.AuthorizedNetwork{}, fmt.Errorf("failed to get authorized network by ID: %w", err)
	}

	return n, nil
}

// ListActive implements network.NetworkRepository.
func (r *networkRepository) ListActive(ctx context.Context) ([]network.AuthorizedNetwork, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+networkColumns+` FROM authorized_networks WHERE active ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active networks: %w", err)
	}
	defer rows.Close()

	var networks []network.AuthorizedNetwork
	for rows.Next() {
		n, err := scanNetwork(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan authorized network: %w", err)
		}
		networks = append(networks, n)
	}

	return networks, rows.Err()
}

// List implements network.NetworkRepository.
func (r *networkRepository) List(ctx context.Context) ([]network.AuthorizedNetwork, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+networkColumns+` FROM authorized_networks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list networks: %w", err)
	}
	defer rows.Close()

	var networks []network.AuthorizedNetwork
	for rows.Next() {
		n, err := scanNetwork(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan authorized network: %w", err)
		}
		networks = append(networks, n)
	}

	return networks, rows.Err()
}

// Update implements network.NetworkRepository.
func (r *networkRepository) Update(ctx context.Context, n network.AuthorizedNetwork) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE authorized_networks
		SET name = $1, ssid = $2, bssid = $3, description = $4, active = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		n.Name, n.SSID, network.NormalizeBSSID(n.BSSID), n.Description, n.Active, n.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return network.ErrNetworkNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return network.ErrBSSIDExists
		}
		return fmt.Errorf("failed to update authorized network: %w", err)
	}

	return nil
}

// Delete implements network.NetworkRepository.
func (r *networkRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM authorized_networks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete authorized network: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return network.ErrNetworkNotFound
	}

	return nil
}
