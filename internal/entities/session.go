package entities

type RoleType string

const (
	RoleCustomer RoleType = "customer"
	RoleWorker   RoleType = "worker"
	RoleAdmin    RoleType = "admin"
)

func (r RoleType) String() string {
	return string(r)
}

func (r RoleType) IsValid() bool {
	switch r {
	case RoleCustomer, RoleWorker, RoleAdmin:
		return true
	default:
		return false
	}
}

// Session - контекст зрителя, который явно передается в каждую операцию жизненного цикла.
// Credentials - исходный Cookie заголовок, пробрасывается в сервис заказов как есть.
type Session struct {
	UserID      int64
	Role        RoleType
	FirstName   string
	LastName    string
	Email       string
	Approved    bool
	NeedsHelp   bool
	Credentials string
}

func (s Session) DisplayName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	default:
		return s.FirstName + " " + s.LastName
	}
}
