package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - ключ, по которому хранится *gorm.DB в context
const DBContextKey = contextKey("db")

// Ключи gin.Context, которые выставляют RouteGuard и ProfileGate
const (
	UserIDKey     = "userID"
	UserEmailKey  = "userEmail"
	UserNameKey   = "userName"
	UserPhotoKey  = "userPhoto"
	CompletionKey = "completion"
)
