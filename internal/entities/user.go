package entities

import "time"

// UserProfile - учетная запись платформы в том виде, в каком ее видит администратор.
type UserProfile struct {
	ID            int64
	Role          RoleType
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	EmailVerified bool
	Approved      bool
	NeedsHelp     bool

	// только у исполнителей
	Tools     []string
	FreeDays  []string
	BirthDate *string
	CreatedAt *time.Time
}

// IsPendingWorker: исполнитель еще не допущен к заказам.
func (u UserProfile) IsPendingWorker() bool {
	return u.Role == RoleWorker && !u.Approved
}

// ModerationResult - ответ сервиса заказов на действие администратора над пользователем.
type ModerationResult struct {
	Message string
	UserID  int64
}
