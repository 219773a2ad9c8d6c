package mockbackend

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Backend - детерминированный встроенный заменитель живого API.
// Используется в режиме разработки и как аварийный путь, когда backend
// недоступен. Статический набор данных + немного состояния в памяти,
// чтобы сценарии "записался на просмотр - увидел в списке" работали.
type Backend struct {
	router chi.Router
	delay  time.Duration

	mu      sync.Mutex
	visits  map[int64]*visitRecord
	reviews []reviewRecord
	nextID  int64
}

type Config struct {
	// Delay - имитация сетевой латентности перед каждым ответом
	Delay time.Duration
}

func New(cfg Config) *Backend {
	b := &Backend{
		delay:  cfg.Delay,
		visits: make(map[int64]*visitRecord),
		nextID: 1000,
	}
	b.reviews = seedReviews()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer) // Перехватывает паники и возвращает 500 ошибку

	r.Get("/stats", b.handleStats)
	r.Get("/listings", b.handleListings)

	r.Route("/properties", func(r chi.Router) {
		r.Get("/owner/{ownerID}", b.handleOwnerProperties)
		r.Get("/{propertyID}", b.handlePropertyDetails)
		r.Post("/", b.handleCreateProperty)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", b.handleLogin)
		r.Post("/register", b.handleRegister)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Get("/", b.handleGetProfile)
		r.Put("/", b.handleUpdateProfile)
		r.Post("/change-password", b.handleChangePassword)
		r.Post("/deactivate", b.handleDeactivate)
	})

	r.Route("/visits", func(r chi.Router) {
		r.Get("/available/{propertyID}", b.handleAvailableSlots)
		r.Get("/my-visits", b.handleMyVisits)
		r.Post("/", b.handleCreateVisit)
		r.Delete("/{visitID}", b.handleCancelVisit)
	})

	r.Route("/reviews", func(r chi.Router) {
		r.Get("/owner/{ownerID}", b.handleOwnerReviews)
		r.Get("/property/{propertyID}", b.handlePropertyReviews)
		r.Post("/", b.handleCreateReview)
	})

	// Неизвестные endpoint-ы не падают, а отвечают пустым объектом:
	// UI всегда должен что-то получить
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]any{})
	})

	b.router = r
	return b
}

func (b *Backend) allocateID() int64 {
	b.nextID++
	return b.nextID
}
