// Package model содержит доменные сущности интернет-магазина.
package model

// User представляет зарегистрированного пользователя магазина.
// Пароль хранится в том виде, в котором был передан при регистрации.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CartItem представляет одну позицию в корзине пользователя.
// Price — строка в том виде, в котором её прислал клиент (например, "12 990 ₽"):
// источником истины является сама строка, а не извлечённое из неё число.
type CartItem struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
}

// CartTotal содержит производную сумму корзины. Никогда не сохраняется в БД.
type CartTotal struct {
	Total     int64  `json:"total"`
	Formatted string `json:"formatted"`
}
