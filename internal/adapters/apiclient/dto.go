package apiclient

import (
	"time"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

// DTO слои изолируют ядро от деталей API.
// Backend исторически отвечает двумя написаниями одних и тех же полей:
// snake_case (живой API) и camelCase (старый mock-формат). DTO принимают
// оба, при конфликте детерминированно побеждает snake_case.

func pickString(snake, camel *string) string {
	if snake != nil {
		return *snake
	}
	if camel != nil {
		return *camel
	}
	return ""
}

func pickInt(snake, camel *int) int {
	if snake != nil {
		return *snake
	}
	if camel != nil {
		return *camel
	}
	return 0
}

type statsDTO struct {
	TotalListings     int `json:"totalListings"`
	VerifiedLandlords int `json:"verifiedLandlords"`
	ActiveUsers       int `json:"activeUsers"`
}

func (d statsDTO) toDomain() domain.Stats {
	return domain.Stats(d)
}

type listingDTO struct {
	ID          int64   `json:"id"`
	Price       string  `json:"price"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	Location    string  `json:"location"`
	Rooms       int     `json:"rooms"`
	Type        string  `json:"type"`
}

func (d listingDTO) toDomain() domain.ListingItem {
	item := domain.ListingItem{
		ID:          d.ID,
		Price:       d.Price,
		Description: d.Description,
		Location:    d.Location,
		Rooms:       d.Rooms,
		Type:        d.Type,
	}
	if d.Image != nil {
		item.Image = *d.Image
	}
	return item
}

type listingsPageDTO struct {
	Listings []listingDTO `json:"listings"`
	Total    int          `json:"total"`
}

type ownerDTO struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	AccountCreatedYear    *int    `json:"account_created_year"`
	AccountCreatedYearAlt *int    `json:"accountCreatedYear"`
	ProfileDescription    *string `json:"profile_description"`
	ProfileDescriptionAlt *string `json:"profileDescription"`
	ProfileImage          *string `json:"profile_image"`
	ProfileImageAlt       *string `json:"profileImage"`
}

func (d ownerDTO) toDomain() domain.PropertyOwner {
	return domain.PropertyOwner{
		ID:                 d.ID,
		Name:               d.Name,
		AccountCreatedYear: pickInt(d.AccountCreatedYear, d.AccountCreatedYearAlt),
		ProfileDescription: pickString(d.ProfileDescription, d.ProfileDescriptionAlt),
		ProfileImage:       pickString(d.ProfileImage, d.ProfileImageAlt),
	}
}

type imageDTO struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
	Order     int    `json:"order"`
}

type propertyDetailsDTO struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Address        string     `json:"address"`
	Location       string     `json:"location"`
	MonthlyCost    *string    `json:"monthly_cost"`
	MonthlyCostAlt *string    `json:"monthlyCost"`
	Type           string     `json:"type"`
	Rooms          int        `json:"rooms"`
	Bathrooms      int        `json:"bathrooms"`
	Surface        float64    `json:"surface"`
	Images         []imageDTO `json:"images"`
	Owner          ownerDTO   `json:"owner"`
}

func (d propertyDetailsDTO) toDomain() domain.PropertyDetails {
	images := make([]domain.PropertyImage, len(d.Images))
	for i, img := range d.Images {
		images[i] = domain.PropertyImage(img)
	}
	return domain.PropertyDetails{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Address:     d.Address,
		Location:    d.Location,
		MonthlyCost: pickString(d.MonthlyCost, d.MonthlyCostAlt),
		Type:        d.Type,
		Rooms:       d.Rooms,
		Bathrooms:   d.Bathrooms,
		Surface:     d.Surface,
		Images:      images,
		Owner:       d.Owner.toDomain(),
	}
}

type userDTO struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	Role                  string  `json:"role"`
	IsVerified            bool    `json:"is_verified"`
	AccountCreatedYear    *int    `json:"account_created_year"`
	AccountCreatedYearAlt *int    `json:"accountCreatedYear"`
	ProfileDescription    *string `json:"profile_description"`
	ProfileDescriptionAlt *string `json:"profileDescription"`
	ProfileImage          *string `json:"profile_image"`
	ProfileImageAlt       *string `json:"profileImage"`
	Phone                 string  `json:"phone"`
	DateOfBirth           string  `json:"date_of_birth"`
}

func (d userDTO) toDomain() domain.User {
	return domain.User{
		ID:                 d.ID,
		Name:               d.Name,
		Email:              d.Email,
		Role:               d.Role,
		IsVerified:         d.IsVerified,
		AccountCreatedYear: pickInt(d.AccountCreatedYear, d.AccountCreatedYearAlt),
		ProfileDescription: pickString(d.ProfileDescription, d.ProfileDescriptionAlt),
		ProfileImage:       pickString(d.ProfileImage, d.ProfileImageAlt),
		Phone:              d.Phone,
		DateOfBirth:        d.DateOfBirth,
	}
}

type loginResponseDTO struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type registerResponseDTO struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	User    userDTO `json:"user"`
}

type visitDTO struct {
	ID              int64     `json:"id"`
	PropertyID      int64     `json:"property_id"`
	BuyerID         int64     `json:"buyer_id"`
	OwnerID         int64     `json:"owner_id"`
	VisitDate       string    `json:"visit_date"`
	VisitTime       string    `json:"visit_time"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	PropertyTitle   string    `json:"property_title"`
	PropertyAddress string    `json:"property_address"`
	BuyerName       string    `json:"buyer_name"`
}

func (d visitDTO) toDomain() domain.Visit {
	return domain.Visit(d)
}

type slotDTO struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type dayScheduleDTO struct {
	PropertyID int64     `json:"property_id"`
	Date       string    `json:"date"`
	Slots      []slotDTO `json:"slots"`
}

func (d dayScheduleDTO) toDomain() domain.DaySchedule {
	slots := make([]domain.VisitSlot, len(d.Slots))
	for i, s := range d.Slots {
		slots[i] = domain.VisitSlot(s)
	}
	return domain.DaySchedule{PropertyID: d.PropertyID, Date: d.Date, Slots: slots}
}

type reviewDTO struct {
	ID            int64     `json:"id"`
	OwnerID       int64     `json:"owner_id"`
	BuyerID       int64     `json:"buyer_id"`
	PropertyID    int64     `json:"property_id"`
	VisitID       int64     `json:"visit_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
	BuyerName     string    `json:"buyer_name"`
	PropertyTitle string    `json:"property_title"`
}

func (d reviewDTO) toDomain() domain.Review {
	return domain.Review(d)
}

type ownerRatingDTO struct {
	OwnerID       int64       `json:"owner_id"`
	AverageRating float64     `json:"average_rating"`
	TotalReviews  int         `json:"total_reviews"`
	Reviews       []reviewDTO `json:"reviews"`
}

func (d ownerRatingDTO) toDomain() domain.OwnerRating {
	reviews := make([]domain.Review, len(d.Reviews))
	for i, r := range d.Reviews {
		reviews[i] = r.toDomain()
	}
	return domain.OwnerRating{
		OwnerID:       d.OwnerID,
		AverageRating: d.AverageRating,
		TotalReviews:  d.TotalReviews,
		Reviews:       reviews,
	}
}
