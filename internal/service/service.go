// Package service реализует бизнес-логику сервиса магазина.
package service

import (
	"context"

	"github.com/mmeshcher/shop-backend/internal/model"
	"github.com/mmeshcher/shop-backend/internal/pricing"
)

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error
	CreateUser(ctx context.Context, username, password string) (int64, error)
	GetUserByCredentials(ctx context.Context, username, password string) (*model.User, error)
	AddCartItem(ctx context.Context, userID int64, productName, price, imageURL string) (int64, error)
	GetCartItems(ctx context.Context, userID int64) ([]model.CartItem, error)
	DeleteCartItem(ctx context.Context, itemID int64) error
}

// Service содержит бизнес-логику сервиса магазина.
type Service struct {
	repo Repository
}

// NewService создаёт новый сервис с указанным репозиторием.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// RegisterUser регистрирует нового пользователя и возвращает его идентификатор.
func (s *Service) RegisterUser(ctx context.Context, username, password string) (int64, error) {
	return s.repo.CreateUser(ctx, username, password)
}

// Login возвращает пользователя по точному совпадению имени и пароля.
func (s *Service) Login(ctx context.Context, username, password string) (*model.User, error) {
	return s.repo.GetUserByCredentials(ctx, username, password)
}

// AddCartItem добавляет позицию в корзину пользователя.
func (s *Service) AddCartItem(ctx context.Context, userID int64, productName, price, imageURL string) (int64, error) {
	return s.repo.AddCartItem(ctx, userID, productName, price, imageURL)
}

// GetCartItems возвращает позиции корзины пользователя в порядке добавления.
func (s *Service) GetCartItems(ctx context.Context, userID int64) ([]model.CartItem, error) {
	return s.repo.GetCartItems(ctx, userID)
}

// DeleteCartItem удаляет позицию корзины по идентификатору.
func (s *Service) DeleteCartItem(ctx context.Context, itemID int64) error {
	return s.repo.DeleteCartItem(ctx, itemID)
}

// GetCartTotal вычисляет производную сумму корзины пользователя.
// Сумма выводится из строковых цен на лету и нигде не сохраняется.
func (s *Service) GetCartTotal(ctx context.Context, userID int64) (*model.CartTotal, error) {
	items, err := s.repo.GetCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	prices := make([]string, 0, len(items))
	for _, it := range items {
		prices = append(prices, it.Price)
	}

	total := pricing.Total(prices)

	return &model.CartTotal{
		Total:     total,
		Formatted: pricing.Format(total),
	}, nil
}
