package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/storykiosk/internal/adapter/storage"
	"github.com/MikeRez0/storykiosk/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var orderColumns = []string{
	"order_id", "requester", "item_id", "amount", "currency",
	"state", "confirmation_source", "failure", "created_at", "updated_at",
}

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.Requester,
		&order.ItemID,
		&order.Amount,
		&order.Currency,
		&order.State,
		&order.Source,
		&order.Failure,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (or *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := or.db.QueryBuilder.Insert("orders").
		Columns(orderColumns...).
		Values(order.ID, order.Requester, order.ItemID, order.Amount, order.Currency,
			order.State, order.Source, order.Failure, order.CreatedAt, order.UpdatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = or.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func (or *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanOrder(or.db.QueryRow(ctx, sql, args...))
}

// TransitionOrder relies on the state predicate of a single UPDATE, so
// concurrent callers are serialized by the row lock.
func (or *Repository) TransitionOrder(ctx context.Context, orderID string, t domain.Transition) (*domain.Order, error) {
	if !t.From.CanTransition(t.To) {
		return nil, domain.ErrInvalidTransition
	}

	statement := or.db.QueryBuilder.Update("orders").
		Set("state", t.To).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"order_id": orderID, "state": t.From}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", "))
	if t.Source != "" && t.Source != domain.SourceNone {
		statement = statement.Set("confirmation_source",
			sq.Expr("CASE WHEN confirmation_source = ? THEN ? ELSE confirmation_source END",
				domain.SourceNone, t.Source))
	}
	if t.Failure != domain.FailureNone {
		statement = statement.Set("failure", t.Failure)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(or.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, domain.ErrDataNotFound) {
		// either the order is missing or another caller moved it first
		if _, rerr := or.ReadOrder(ctx, orderID); rerr != nil {
			return nil, rerr
		}
		return nil, domain.ErrStateConflict
	}
	return order, err
}

func (or *Repository) ListOrdersByState(ctx context.Context, states ...domain.OrderState) ([]*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"state": states}).
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (or *Repository) PurgeOrders(ctx context.Context, terminalBefore, pendingBefore time.Time) (int64, error) {
	statement := or.db.QueryBuilder.Delete("orders").
		Where(sq.Or{
			sq.And{
				sq.Eq{"state": []domain.OrderState{domain.OrderStateFulfilled, domain.OrderStateFailed}},
				sq.Lt{"updated_at": terminalBefore},
			},
			sq.And{
				sq.Eq{"state": domain.OrderStateCreated},
				sq.Lt{"created_at": pendingBefore},
			},
		})

	sql, args, err := statement.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := or.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
