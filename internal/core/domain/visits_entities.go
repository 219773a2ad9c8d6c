package domain

import "time"

// Статусы визита
const (
	VISIT_SCHEDULED = "scheduled"
	VISIT_CANCELLED = "cancelled"
	VISIT_COMPLETED = "completed"
)

// VisitRequest - запрос покупателя на просмотр объекта
type VisitRequest struct {
	PropertyID int64  `json:"property_id"`
	VisitDate  string `json:"visit_date"` // YYYY-MM-DD
	VisitTime  string `json:"visit_time"` // HH:MM
	Notes      string `json:"notes,omitempty"`
}

// Visit - запланированный просмотр объекта
type Visit struct {
	ID              int64     `json:"id"`
	PropertyID      int64     `json:"property_id"`
	BuyerID         int64     `json:"buyer_id"`
	OwnerID         int64     `json:"owner_id,omitempty"`
	VisitDate       string    `json:"visit_date"`
	VisitTime       string    `json:"visit_time"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	PropertyTitle   string    `json:"property_title,omitempty"`
	PropertyAddress string    `json:"property_address,omitempty"`
	BuyerName       string    `json:"buyer_name,omitempty"`
}

// VisitSlot - один получасовой интервал в расписании просмотров
type VisitSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// DaySchedule - расписание свободных интервалов объекта на конкретную дату
type DaySchedule struct {
	PropertyID int64       `json:"property_id"`
	Date       string      `json:"date"`
	Slots      []VisitSlot `json:"slots"`
}

// ReviewDraft - новый отзыв покупателя о владельце после визита
type ReviewDraft struct {
	OwnerID    int64  `json:"owner_id"`
	PropertyID int64  `json:"property_id"`
	VisitID    int64  `json:"visit_id,omitempty"`
	Rating     int    `json:"rating"` // 1-5
	Comment    string `json:"comment,omitempty"`
}

// Review - опубликованный отзыв
type Review struct {
	ID            int64     `json:"id"`
	OwnerID       int64     `json:"owner_id"`
	BuyerID       int64     `json:"buyer_id"`
	PropertyID    int64     `json:"property_id"`
	VisitID       int64     `json:"visit_id,omitempty"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	BuyerName     string    `json:"buyer_name,omitempty"`
	PropertyTitle string    `json:"property_title,omitempty"`
}

// OwnerRating - агрегированный рейтинг владельца с его отзывами
type OwnerRating struct {
	OwnerID       int64    `json:"owner_id"`
	AverageRating float64  `json:"average_rating"`
	TotalReviews  int      `json:"total_reviews"`
	Reviews       []Review `json:"reviews"`
}
