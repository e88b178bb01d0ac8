package models

// Identity представляет аутентифицированного принципала сессии.
// Именно эта запись в JSON-виде сохраняется в хранилище предпочтений
// и восстанавливается при инициализации контроллера сессии.
type Identity struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}
