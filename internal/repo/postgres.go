package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/order-tracker/internal/entities"
	"github.com/SergeyBogomolovv/order-tracker/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const foreignKeyViolation = "23503"

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) selectOrders() sq.SelectBuilder {
	return r.qb.Select(orderColumns...).
		From("orders o").
		Join("customers c ON c.id = o.customer_id")
}

func (r *postgresRepo) ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	q := r.selectOrders().OrderBy("o.created_at DESC", "o.id DESC")

	if f.Status != "" {
		q = q.Where(sq.Eq{"o.status": f.Status})
	}
	if f.PaymentStatus != "" {
		q = q.Where(sq.Eq{"o.payment_status": f.PaymentStatus})
	}
	if f.InvoiceStatus != "" {
		q = q.Where(sq.Eq{"o.invoice_status": f.InvoiceStatus})
	}
	if f.CustomerID != 0 {
		q = q.Where(sq.Eq{"o.customer_id": f.CustomerID})
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + escapeLike(s) + "%"
		q = q.Where(sq.Or{
			sq.ILike{"c.name": pattern},
			sq.ILike{"o.note": pattern},
			sq.Expr(`EXISTS (SELECT 1 FROM order_items si JOIN products sp ON sp.id = si.product_id
				WHERE si.order_id = o.id AND sp.name ILIKE ?)`, pattern),
		})
	}

	query, args := q.MustSql()

	var orders []Order
	if err := r.conn(ctx).SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	return r.withItems(ctx, orders)
}

// LatestOrders возвращает count последних заказов, используется для прогрева кэша.
func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.selectOrders().
		OrderBy("o.created_at DESC", "o.id DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.conn(ctx).SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	return r.withItems(ctx, orders)
}

// withItems подгружает позиции для всех заказов одним запросом.
func (r *postgresRepo) withItems(ctx context.Context, orders []Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	items, err := r.selectItems(ctx, ids...)
	if err != nil {
		return nil, err
	}
	itemsMap := make(map[int64][]Item, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}
	return result, nil
}

func (r *postgresRepo) selectItems(ctx context.Context, orderIDs ...int64) ([]Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("order_items oi").
		Join("products p ON p.id = oi.product_id").
		Where(sq.Eq{"oi.order_id": orderIDs}).
		OrderBy("oi.id").
		MustSql()

	var items []Item
	if err := r.conn(ctx).SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	return items, nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	query, args := r.selectOrders().
		Where(sq.Eq{"o.id": id}).
		MustSql()

	var order Order
	err := r.conn(ctx).GetContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.selectItems(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.NewOrder) (int64, error) {
	query, args := r.qb.Insert("orders").
		Columns("customer_id", "status", "payment_status", "invoice_status", "note").
		Values(o.CustomerID, o.Status, o.PaymentStatus, o.InvoiceStatus, nullString(o.Note)).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	err := r.conn(ctx).GetContext(ctx, &id, query, args...)
	if isForeignKeyViolation(err) {
		return 0, entities.ErrCustomerNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return id, nil
}

// UpdateOrder меняет только переданные поля заказа. Позиции не трогает.
func (r *postgresRepo) UpdateOrder(ctx context.Context, id int64, upd entities.OrderUpdate) error {
	set := make(map[string]any, 4)
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.PaymentStatus != nil {
		set["payment_status"] = *upd.PaymentStatus
	}
	if upd.InvoiceStatus != nil {
		set["invoice_status"] = *upd.InvoiceStatus
	}
	if upd.Note != nil {
		set["note"] = nullString(*upd.Note)
	}

	if len(set) == 0 {
		return r.orderExists(ctx, id)
	}

	query, args := r.qb.Update("orders").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return requireAffected(res, entities.ErrOrderNotFound)
}

func (r *postgresRepo) orderExists(ctx context.Context, id int64) error {
	query, args := r.qb.Select("1").
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var one int
	err := r.conn(ctx).GetContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check order: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, id int64) error {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return requireAffected(res, entities.ErrOrderNotFound)
}

func (r *postgresRepo) DeleteItems(ctx context.Context, orderID int64) error {
	query, args := r.qb.Delete("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID int64, items []entities.ItemInput) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity")

	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.Quantity)
	}

	query, args := q.MustSql()
	_, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if isForeignKeyViolation(err) {
		return entities.ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) OrderStats(ctx context.Context) (entities.OrderStats, error) {
	query, args := r.qb.Select("COUNT(*) AS total").
		Column("COUNT(*) FILTER (WHERE status = ?) AS delivered", entities.StatusDelivered).
		Column("COUNT(*) FILTER (WHERE status = ?) AS in_preparation", entities.StatusInPreparation).
		Column("COUNT(*) FILTER (WHERE payment_status = ?) AS prepaid", entities.PaymentPrepaid).
		Column("COUNT(*) FILTER (WHERE payment_status = ?) AS not_collected", entities.PaymentNotCollected).
		Column("COUNT(DISTINCT customer_id) AS unique_customers").
		Column("COALESCE((SELECT SUM(quantity) FROM order_items), 0) AS total_quantity").
		From("orders").
		MustSql()

	var stats Stats
	if err := r.conn(ctx).GetContext(ctx, &stats, query, args...); err != nil {
		return entities.OrderStats{}, fmt.Errorf("failed to get order stats: %w", err)
	}
	return StatsToEntity(stats), nil
}

func (r *postgresRepo) conn(ctx context.Context) trm.Querier {
	return trm.Conn(ctx, r.db)
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
