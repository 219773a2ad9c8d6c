package domain

// Типы сделки
const (
	TYPE_RENT = "rent"
	TYPE_SALE = "sale"
)

// ListingFilters - фильтры поиска по объявлениям.
// Price принимается и передается дальше, но mock-набор его не применяет
// (семантика диапазонов определяется только на стороне backend-а).
type ListingFilters struct {
	Search       string
	Price        string
	ForSale      bool
	ForRent      bool
	TwoPlusRooms bool
}

// ListingItem - карточка объявления в результатах поиска
type ListingItem struct {
	ID          int64  `json:"id"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Location    string `json:"location"`
	Rooms       int    `json:"rooms"`
	Type        string `json:"type"`
}

// ListingsPage - страница результатов поиска вместе с источником данных
type ListingsPage struct {
	Listings []ListingItem `json:"listings"`
	Total    int           `json:"total"`
	Origin   Origin        `json:"-"`
}

// PropertyOwner - владелец, как он отображается на странице объекта
type PropertyOwner struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	AccountCreatedYear int    `json:"account_created_year,omitempty"`
	ProfileDescription string `json:"profile_description,omitempty"`
	ProfileImage       string `json:"profile_image,omitempty"`
}

// PropertyImage - фотография объекта
type PropertyImage struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
	Order     int    `json:"order"`
}

// PropertyDetails - полная информация об объекте недвижимости
type PropertyDetails struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Location    string          `json:"location,omitempty"`
	MonthlyCost string          `json:"monthly_cost"`
	Type        string          `json:"type,omitempty"`
	Rooms       int             `json:"rooms"`
	Bathrooms   int             `json:"bathrooms"`
	Surface     float64         `json:"surface"`
	Images      []PropertyImage `json:"images"`
	Owner       PropertyOwner   `json:"owner"`
}

// PropertyDraft - данные для публикации нового объявления владельцем
type PropertyDraft struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Address       string  `json:"address"`
	Location      string  `json:"location"`
	Price         float64 `json:"price"`
	PriceCurrency string  `json:"price_currency"`
	PricePeriod   string  `json:"price_period"`
	Type          string  `json:"type"`
	Rooms         int     `json:"rooms"`
	Bathrooms     int     `json:"bathrooms"`
	Surface       float64 `json:"surface"`
}
