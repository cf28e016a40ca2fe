// Package repository содержит реализацию доступа к данным в PostgreSQL.
package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mmeshcher/shop-backend/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrUserExists возвращается при попытке создать пользователя с уже занятым именем.
var (
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials возвращается, если пара имя/пароль не найдена.
	// Несуществующее имя и неверный пароль неразличимы: проверка идёт одним запросом
	// по обоим полям сразу.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrItemNotFound возвращается при удалении несуществующей позиции корзины.
	ErrItemNotFound = errors.New("cart item not found")
)

// PostgresRepository предоставляет доступ к хранилищу данных в PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository создаёт новый репозиторий и инициализирует схему БД через миграции.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &PostgresRepository{pool: pool}

	if err := r.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return r, nil
}

func (r *PostgresRepository) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Close закрывает пул соединений с БД.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// CreateUser создаёт нового пользователя. Уникальность имени обеспечивается
// ограничением UNIQUE на уровне БД, а не предварительной проверкой: две
// конкурентные регистрации с одним именем разрешаются самим хранилищем.
func (r *PostgresRepository) CreateUser(ctx context.Context, username, password string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`,
		username, password,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, fmt.Errorf("%w: %s", ErrUserExists, username)
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// GetUserByCredentials возвращает пользователя по точному совпадению имени и пароля.
func (r *PostgresRepository) GetUserByCredentials(ctx context.Context, username, password string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, username, password FROM users WHERE username = $1 AND password = $2`,
		username, password,
	)

	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &u, nil
}

// AddCartItem сохраняет позицию корзины и возвращает её идентификатор.
// Существование пользователя не проверяется: внешний ключ отсутствует намеренно.
func (r *PostgresRepository) AddCartItem(ctx context.Context, userID int64, productName, price, imageURL string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO cart (user_id, product_name, price, image_url) VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, productName, price, imageURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert cart item: %w", err)
	}
	return id, nil
}

// GetCartItems возвращает позиции корзины пользователя в порядке добавления.
// Для неизвестного пользователя возвращается пустой срез, а не ошибка.
func (r *PostgresRepository) GetCartItems(ctx context.Context, userID int64) ([]model.CartItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, product_name, price, image_url
		 FROM cart
		 WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select cart items: %w", err)
	}
	defer rows.Close()

	items := make([]model.CartItem, 0)
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.ProductName, &it.Price, &it.ImageURL); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return items, nil
}

// DeleteCartItem удаляет позицию корзины по идентификатору.
// Повторное удаление того же идентификатора возвращает ErrItemNotFound.
func (r *PostgresRepository) DeleteCartItem(ctx context.Context, itemID int64) error {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM cart WHERE id = $1`,
		itemID,
	)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}
