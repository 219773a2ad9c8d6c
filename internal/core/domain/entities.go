package domain

// Роли пользователей на платформе
const (
	ROLE_BUYER = "buyer"
	ROLE_OWNER = "owner"
)

// Origin показывает, откуда реально пришли данные ответа.
// Клиент никогда не "молчит" о подмене: деградация до mock-данных
// помечается явно, чтобы потребитель мог показать состояние "offline".
type Origin string

const (
	OriginLive     Origin = "live"     // живой ответ backend-а
	OriginFallback Origin = "fallback" // backend недоступен, данные подменены mock-ом
	OriginMock     Origin = "mock"     // режим разработки, backend не использовался
)

// User - профиль пользователя платформы
type User struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	IsVerified         bool   `json:"is_verified"`
	AccountCreatedYear int    `json:"account_created_year,omitempty"`
	ProfileDescription string `json:"profile_description,omitempty"`
	ProfileImage       string `json:"profile_image,omitempty"`
	Phone              string `json:"phone,omitempty"`
	DateOfBirth        string `json:"date_of_birth,omitempty"`
}

// Session - авторизованная сессия: bearer-токен + текущий пользователь.
// Отсутствие токена означает неавторизованное состояние.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// Stats - счетчики для главной страницы
type Stats struct {
	TotalListings     int `json:"totalListings"`
	VerifiedLandlords int `json:"verifiedLandlords"`
	ActiveUsers       int `json:"activeUsers"`
}

// RegisterResult - итог регистрации нового аккаунта
type RegisterResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    User   `json:"user"`
}

// ProfileUpdate - изменяемые поля профиля
type ProfileUpdate struct {
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Description string `json:"description,omitempty"`
}
