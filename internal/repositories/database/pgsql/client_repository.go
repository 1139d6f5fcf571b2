package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/agencypulse/backend/internal/apperrors"
	"github.com/agencypulse/backend/internal/core/domain"
	portsrepo "github.com/agencypulse/backend/internal/core/ports/repositories"
	"github.com/agencypulse/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepository {
	return &pgxClientRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepository = (*pgxClientRepository)(nil)

func toDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:  m.ClientID,
		AgencyID:  m.AgencyID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

func (r *pgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
		INSERT INTO clients (client_id, agency_id, name, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, client.ClientID, client.AgencyID, client.Name, client.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save client %s: %w", client.ClientID, err)
	}
	return nil
}

func (r *pgxClientRepository) ListClients(ctx context.Context, agencyID string) ([]domain.Client, error) {
	query := `
		SELECT client_id, agency_id, name, created_at
		FROM clients
		WHERE agency_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients for agency %s: %w", agencyID, err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var m models.Client
		if err := rows.Scan(&m.ClientID, &m.AgencyID, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, toDomainClient(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate client rows: %w", err)
	}
	return clients, nil
}

func (r *pgxClientRepository) FindClientByID(ctx context.Context, agencyID, clientID string) (*domain.Client, error) {
	query := `
		SELECT client_id, agency_id, name, created_at
		FROM clients
		WHERE agency_id = $1 AND client_id = $2;
	`
	var m models.Client
	err := r.Pool.QueryRow(ctx, query, agencyID, clientID).Scan(&m.ClientID, &m.AgencyID, &m.Name, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}

	client := toDomainClient(m)
	return &client, nil
}
