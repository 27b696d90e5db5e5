package completion

import "strings"

// GateState - состояние блокировки дашборда для одного запроса
type GateState int

const (
	Checking GateState = iota
	Complete
	IncompleteBlocked
	IncompleteOnProfilePage
	// Anonymous - пользователя нет, блокировка не применяется
	Anonymous
)

func (s GateState) String() string {
	switch s {
	case Checking:
		return "checking"
	case Complete:
		return "complete"
	case IncompleteBlocked:
		return "incomplete_blocked"
	case IncompleteOnProfilePage:
		return "incomplete_on_profile_page"
	case Anonymous:
		return "anonymous"
	}
	return "unknown"
}

// Blocks - true, если запрос нужно увести на страницу профиля
func (s GateState) Blocks() bool {
	return s == IncompleteBlocked
}

const ProfilePath = "/dashboard/profile"

// IsProfilePath - страница редактирования профиля и ее подпути
func IsProfilePath(path string) bool {
	return path == ProfilePath || strings.HasPrefix(path, ProfilePath+"/")
}

// NextState вычисляет состояние по пути, пользователю и результату проверки.
// status == nil означает, что проверка еще не выполнена.
func NextState(path, userID string, status *Status) GateState {
	if userID == "" {
		return Anonymous
	}
	if status == nil {
		return Checking
	}
	if status.IsComplete {
		return Complete
	}
	if IsProfilePath(path) {
		return IncompleteOnProfilePage
	}
	return IncompleteBlocked
}
