package mockbackend

import "time"

// Канонический набор данных mock-backend-а. Он намеренно маленький и
// полностью детерминированный: шесть объявлений, их владельцы и пара
// отзывов, чтобы каждая страница UI имела что показать без сети.

type listingRecord struct {
	ID          int64   `json:"id"`
	Price       string  `json:"price"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	Location    string  `json:"location"`
	Rooms       int     `json:"rooms"`
	Type        string  `json:"type"`
}

type ownerRecord struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	AccountCreatedYear int     `json:"accountCreatedYear"`
	ProfileDescription string  `json:"profileDescription"`
	ProfileImage       *string `json:"profileImage"`
}

type propertyRecord struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Address     string      `json:"address"`
	Rooms       int         `json:"rooms"`
	Bathrooms   int         `json:"bathrooms"`
	Surface     float64     `json:"surface"`
	MonthlyCost string      `json:"monthlyCost"`
	Description string      `json:"description"`
	Images      []string    `json:"images"`
	Owner       ownerRecord `json:"owner"`
}

type visitRecord struct {
	ID              int64     `json:"id"`
	PropertyID      int64     `json:"property_id"`
	BuyerID         int64     `json:"buyer_id"`
	VisitDate       string    `json:"visit_date"`
	VisitTime       string    `json:"visit_time"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	PropertyTitle   string    `json:"property_title,omitempty"`
	PropertyAddress string    `json:"property_address,omitempty"`
}

type reviewRecord struct {
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

var mockStats = map[string]int{
	"totalListings":     1250,
	"verifiedLandlords": 340,
	"activeUsers":       5200,
}

var mockListings = []listingRecord{
	{ID: 1, Price: "1.200 RON/lună", Description: "Apartament modern cu 2 camere în centrul orașului", Location: "București", Rooms: 2, Type: "rent"},
	{ID: 2, Price: "850 RON/lună", Description: "Apartament confortabil cu 1 cameră, mobilat complet", Location: "Cluj-Napoca", Rooms: 1, Type: "rent"},
	{ID: 3, Price: "1.500 RON/lună", Description: "Apartament spațios cu 3 camere, balcon mare", Location: "Timișoara", Rooms: 3, Type: "rent"},
	{ID: 4, Price: "95.000 EUR", Description: "Casa cu 4 camere, curte mare, garaj", Location: "Brașov", Rooms: 4, Type: "sale"},
	{ID: 5, Price: "1.100 RON/lună", Description: "Apartament nou cu 2 camere, parter", Location: "Iași", Rooms: 2, Type: "rent"},
	{ID: 6, Price: "1.350 RON/lună", Description: "Apartament renovat cu 2 camere, etaj 3", Location: "Constanța", Rooms: 2, Type: "rent"},
}

var mockProperties = map[int64]propertyRecord{
	1: {
		ID: 1, Title: "Apartament modern cu 2 camere în centrul orașului",
		Address: "Strada Principală nr. 15, București",
		Rooms:   2, Bathrooms: 1, Surface: 65, MonthlyCost: "1.200 RON/lună",
		Description: "Apartament modern și bine amenajat, situat în centrul orașului, la doar câteva minute de mers pe jos de principalele facilități. Proprietatea beneficiază de lumină naturală abundentă, balcon orientat spre sud și parcare asigurată. Zona este liniștită, dar accesibilă la transportul public și la principalele zone comerciale.",
		Images:      []string{},
		Owner: ownerRecord{
			ID: 101, Name: "Ion Popescu", AccountCreatedYear: 2020,
			ProfileDescription: "Proprietar verificat cu experiență de peste 10 ani în domeniul imobiliar. Oferim proprietăți de calitate și servicii profesionale.",
		},
	},
	2: {
		ID: 2, Title: "Apartament confortabil cu 1 cameră, mobilat complet",
		Address: "Bulevardul Libertății nr. 42, Cluj-Napoca",
		Rooms:   1, Bathrooms: 1, Surface: 45, MonthlyCost: "850 RON/lună",
		Description: "Apartament mobilat complet, ideal pentru studenți sau tineri profesioniști. Situat într-o zonă centrală, cu acces ușor la universități și facilități comerciale. Proprietatea este bine întreținută și gata de locuit.",
		Images:      []string{},
		Owner: ownerRecord{
			ID: 102, Name: "Maria Ionescu", AccountCreatedYear: 2019,
			ProfileDescription: "Proprietar dedicat, oferind locuințe confortabile și servicii de încredere. Răspund prompt la întrebări și oferim suport complet.",
		},
	},
	3: {
		ID: 3, Title: "Apartament spațios cu 3 camere, balcon mare",
		Address: "Calea Victoriei nr. 78, Timișoara",
		Rooms:   3, Bathrooms: 2, Surface: 95, MonthlyCost: "1.500 RON/lună",
		Description: "Apartament generos, perfect pentru familii. Beneficiază de 3 camere spațioase, 2 băi, balcon mare și garaj. Zona este rezidențială, liniștită, cu acces la școli și parcuri în apropiere.",
		Images:      []string{},
		Owner: ownerRecord{
			ID: 103, Name: "Alexandru Georgescu", AccountCreatedYear: 2021,
			ProfileDescription: "Specializat în proprietăți familiale, oferim soluții de locuire adaptate nevoilor fiecărei familii.",
		},
	},
	4: {
		ID: 4, Title: "Casa cu 4 camere, curte mare, garaj",
		Address: "Strada Pădurii nr. 12, Brașov",
		Rooms:   4, Bathrooms: 3, Surface: 180, MonthlyCost: "95.000 EUR",
		Description: "Casă modernă cu 4 camere, curte mare de 500m², garaj pentru 2 mașini și terasă. Proprietatea este situată într-o zonă rezidențială exclusivă, cu acces ușor la centrul orașului.",
		Images:      []string{},
		Owner: ownerRecord{
			ID: 104, Name: "Elena Radu", AccountCreatedYear: 2018,
			ProfileDescription: "Experiență în vânzarea și închirierea proprietăților premium. Oferim consultanță personalizată și servicii complete.",
		},
	},
	5: {
		ID: 5, Title: "Apartament nou cu 2 camere, parter",
		Address: "Strada Universității nr. 25, Iași",
		Rooms:   2, Bathrooms: 1, Surface: 58, MonthlyCost: "1.100 RON/lună",
		Description: "Apartament nou, nefolosit, situat la parter, ideal pentru persoane în vârstă sau cu mobilitate redusă. Beneficiază de acces direct la curte și parcare privată.",
		Images:      []string{},
		Owner: ownerRecord{
			ID: 105, Name: "Mihai Constantinescu", AccountCreatedYear: 2022,
			ProfileDescription: "Proprietar nou în platformă, dedicat oferirii de locuințe moderne și confortabile.",
		},
	},
	6: {
		ID: 6, Title: "Apartament renovat cu 2 camere, etaj 3",
		Address: "Bulevardul Mamaia nr. 100, Constanța",
		Rooms:   2, Bathrooms: 1, Surface: 62, MonthlyCost: "1.350 RON/lună",
		Description: "Apartament recent renovat, cu vedere la mare, situat la etajul 3. Beneficiază de balcon mare, lumină naturală abundentă și acces la plajă la doar 5 minute de mers pe jos.",
		Images:      []string{},
		Owner: ownerRecord{
			ID: 106, Name: "Andrei Marin", AccountCreatedYear: 2020,
			ProfileDescription: "Specializat în proprietăți de coastă, oferim locuințe cu vedere la mare și acces la facilități turistice.",
		},
	},
}

// seedReviews - стартовые отзывы, чтобы страницы владельцев не были пустыми
func seedReviews() []reviewRecord {
	created := time.Date(2024, time.March, 12, 10, 30, 0, 0, time.UTC)
	return []reviewRecord{
		{
			ID: 901, OwnerID: 101, BuyerID: 501, PropertyID: 1, Rating: 5,
			Comment:   "Proprietar serios, apartamentul arată exact ca în poze.",
			CreatedAt: created, BuyerName: "Ana Dumitrescu",
			PropertyTitle: "Apartament modern cu 2 camere în centrul orașului",
		},
		{
			ID: 902, OwnerID: 101, BuyerID: 502, PropertyID: 1, Rating: 4,
			Comment:   "Vizita a fost punctuală, comunicare bună.",
			CreatedAt: created.AddDate(0, 1, 3), BuyerName: "Radu Stan",
			PropertyTitle: "Apartament modern cu 2 camere în centrul orașului",
		},
		{
			ID: 903, OwnerID: 102, BuyerID: 503, PropertyID: 2, Rating: 5,
			Comment:   "Recomand cu încredere, totul a decurs impecabil.",
			CreatedAt: created.AddDate(0, 2, 0), BuyerName: "Ioana Petrescu",
			PropertyTitle: "Apartament confortabil cu 1 cameră, mobilat complet",
		},
	}
}

// mockProfile - демонстрационный профиль для неавторизованных mock-сценариев
var mockProfile = map[string]any{
	"id":                   1,
	"name":                 "Utilizator Demo",
	"email":                "demo@tenansee.ro",
	"role":                 "buyer",
	"is_verified":          true,
	"account_created_year": 2023,
	"profile_description":  "Cont demonstrativ pentru modul offline.",
	"phone":                "",
	"date_of_birth":        "",
}
