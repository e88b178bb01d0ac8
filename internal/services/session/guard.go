package session

// Маршрутный страж: чистая функция от состояния сессии и запрошенного пути.
// Не выполняет ввода-вывода и не может отказать самостоятельно.

// Action описывает решение стража по запрошенному пути.
type Action int

const (
	// ActionWait — состояние еще не определено, решение о редиректе не принимается.
	ActionWait Action = iota
	// ActionRender — доступ разрешен, страница отображается.
	ActionRender
	// ActionRedirect — переход на Decision.Target.
	ActionRedirect
	// ActionNotFound — неизвестный путь, не зависит от состояния сессии.
	ActionNotFound
)

// Decision результат работы стража.
type Decision struct {
	Action Action
	Target string
}

// Известные пути приложения.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

var protectedPaths = map[string]struct{}{
	DashboardPath:       {},
	"/price-analyzer":   {},
	"/marketing-studio": {},
	"/inventory":        {},
	"/profile":          {},
}

// Decide принимает решение для запрошенного пути.
//
// Корневой путь ведет на дашборд для аутентифицированной сессии и на вход
// для анонимной. Защищенные пути для анонимной сессии отправляются на вход,
// исходный путь при этом не запоминается. Неизвестные пути дают not-found
// вне зависимости от состояния.
func Decide(state State, path string) Decision {
	if path == LoginPath {
		return Decision{Action: ActionRender}
	}

	if path == "/" {
		switch state {
		case StateUnresolved:
			return Decision{Action: ActionWait}
		case StateAuthenticated:
			return Decision{Action: ActionRedirect, Target: DashboardPath}
		default:
			return Decision{Action: ActionRedirect, Target: LoginPath}
		}
	}

	if _, ok := protectedPaths[path]; !ok {
		return Decision{Action: ActionNotFound}
	}

	switch state {
	case StateUnresolved:
		return Decision{Action: ActionWait}
	case StateAuthenticated:
		return Decision{Action: ActionRender}
	default:
		return Decision{Action: ActionRedirect, Target: LoginPath}
	}
}
