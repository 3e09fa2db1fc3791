package contextkeys

// Кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// DBContextKey - *gorm.DB запроса (пул или транзакция)
	DBContextKey = contextKey("db")
	// UserIDKey - id пользователя из JWT
	UserIDKey = contextKey("userID")
	// PrincipalKey - тип принципала: "user" или "service"
	PrincipalKey = contextKey("principal")
)
