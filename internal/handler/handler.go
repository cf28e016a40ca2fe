// Package handler содержит HTTP-обработчики API сервиса магазина.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/shop-backend/internal/model"
	"github.com/mmeshcher/shop-backend/internal/repository"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	RegisterUser(ctx context.Context, username, password string) (int64, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
	AddCartItem(ctx context.Context, userID int64, productName, price, imageURL string) (int64, error)
	GetCartItems(ctx context.Context, userID int64) ([]model.CartItem, error)
	DeleteCartItem(ctx context.Context, itemID int64) error
	GetCartTotal(ctx context.Context, userID int64) (*model.CartTotal, error)
}

// Handler реализует HTTP-обработчики API сервиса магазина.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError отдаёт клиенту фиксированное человекочитаемое сообщение.
// Текст ошибок хранилища в ответ не попадает, только в лог.
func writeError(w http.ResponseWriter, statusCode int, msg string) {
	writeJSON(w, statusCode, errorResponse{Error: msg})
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register обрабатывает регистрацию нового пользователя.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	userID, err := h.service.RegisterUser(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			writeError(w, http.StatusBadRequest, "user already exists")
			return
		}
		h.logger.Error("register user error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, idResponse{ID: userID})
}

// Login выполняет вход пользователя и возвращает сохранённую запись целиком.
// Неверный пароль и несуществующее имя дают одинаковый ответ 404.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			writeError(w, http.StatusNotFound, "invalid username or password")
			return
		}
		h.logger.Error("login user error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

type addItemRequest struct {
	UserID      int64  `json:"user_id"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
}

// AddCartItem добавляет позицию в корзину. Цена и ссылка на изображение
// сохраняются как есть, без нормализации.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserID <= 0 || req.ProductName == "" {
		writeError(w, http.StatusBadRequest, "user_id and product_name are required")
		return
	}

	itemID, err := h.service.AddCartItem(r.Context(), req.UserID, req.ProductName, req.Price, req.ImageURL)
	if err != nil {
		h.logger.Error("add cart item error", zap.Error(err), zap.Int64("userID", req.UserID))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, idResponse{ID: itemID})
}

// GetCart возвращает позиции корзины пользователя. Для пользователя без
// позиций (или несуществующего) ответ — пустой массив, а не ошибка.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	items, err := h.service.GetCartItems(r.Context(), userID)
	if err != nil {
		h.logger.Error("get cart error", zap.Error(err), zap.Int64("userID", userID))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if items == nil {
		items = []model.CartItem{}
	}

	writeJSON(w, http.StatusOK, items)
}

// GetCartTotal возвращает производную сумму корзины пользователя.
func (h *Handler) GetCartTotal(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	total, err := h.service.GetCartTotal(r.Context(), userID)
	if err != nil {
		h.logger.Error("get cart total error", zap.Error(err), zap.Int64("userID", userID))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, total)
}

// DeleteCartItem удаляет позицию корзины. Повторное удаление того же
// идентификатора возвращает 404, а не успех.
func (h *Handler) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.service.DeleteCartItem(r.Context(), itemID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		h.logger.Error("delete cart item error", zap.Error(err), zap.Int64("itemID", itemID))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
