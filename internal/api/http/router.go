package http

import (
	"net/http"

	"handmeup-backend/internal/security"
	"handmeup-backend/internal/storage"

	"github.com/gorilla/mux"
)

// RouterDeps bundles everything the router needs
type RouterDeps struct {
	Auth        *AuthHandler
	Users       *UserHandler
	Profiles    *ProfileHandler
	Listings    *ListingHandler
	Clothing    *ClothingHandler
	Connections *ConnectionHandler
	Messages    *MessageHandler
	Rentals     *RentalHandler
	Ratings     *RatingHandler
	Images      *ImageHandler
	Tokens      security.TokenManager
	MockStorage *storage.MockStorageService
}

// NewRouter wires every endpoint with auth and logging middleware
func NewRouter(deps RouterDeps) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)
	r.Use(AuthMiddleware(deps.Tokens))

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Auth surface
	r.HandleFunc("/auth/signup", deps.Auth.SignUp).Methods(http.MethodPost)
	r.HandleFunc("/auth/signin", deps.Auth.SignIn).Methods(http.MethodPost)
	r.HandleFunc("/auth/refresh", deps.Auth.Refresh).Methods(http.MethodPost)
	r.HandleFunc("/auth/me", deps.Auth.Me).Methods(http.MethodGet)

	// Engine users and account search
	r.HandleFunc("/users", deps.Users.Create).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}/search", deps.Users.Search).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", deps.Users.Get).Methods(http.MethodGet)

	// Engine listings (the recommendations source)
	r.HandleFunc("/listings", deps.Listings.Create).Methods(http.MethodPost)
	r.HandleFunc("/listings", deps.Listings.List).Methods(http.MethodGet)
	r.HandleFunc("/listings/{id}", deps.Listings.Get).Methods(http.MethodGet)

	// Messaging
	r.HandleFunc("/messages", deps.Messages.Send).Methods(http.MethodPost)
	r.HandleFunc("/messages/{userId}/conversations", deps.Messages.Conversations).Methods(http.MethodGet)
	r.HandleFunc("/messages/{userId}/{otherId}/read", deps.Messages.MarkRead).Methods(http.MethodPost)
	r.HandleFunc("/messages/{userId}/{otherId}", deps.Messages.Thread).Methods(http.MethodGet)

	// Ratings
	r.HandleFunc("/ratings/clothing", deps.Ratings.RateClothing).Methods(http.MethodPost)
	r.HandleFunc("/ratings/clothing/{id}/stats", deps.Ratings.ClothingStats).Methods(http.MethodGet)
	r.HandleFunc("/ratings/clothing/{id}", deps.Ratings.ClothingRatings).Methods(http.MethodGet)
	r.HandleFunc("/ratings/user", deps.Ratings.RateUser).Methods(http.MethodPost)
	r.HandleFunc("/ratings/user/{id}/stats", deps.Ratings.UserStats).Methods(http.MethodGet)
	r.HandleFunc("/ratings/user/{id}", deps.Ratings.UserRatings).Methods(http.MethodGet)

	// Profiles
	r.HandleFunc("/profiles/{userId}", deps.Profiles.Get).Methods(http.MethodGet)
	r.HandleFunc("/profiles/{userId}", deps.Profiles.Save).Methods(http.MethodPut)

	// Clothing row store
	r.HandleFunc("/clothing", deps.Clothing.Create).Methods(http.MethodPost)
	r.HandleFunc("/clothing", deps.Clothing.Marketplace).Methods(http.MethodGet)
	r.HandleFunc("/clothing/mine", deps.Clothing.Mine).Methods(http.MethodGet)
	r.HandleFunc("/clothing/{id}/image/confirm", deps.Clothing.ConfirmImage).Methods(http.MethodPost)
	r.HandleFunc("/clothing/{id}/image/upload-url", deps.Images.UploadURL).Methods(http.MethodPost)
	r.HandleFunc("/clothing/{id}/image/download-url", deps.Images.DownloadURL).Methods(http.MethodGet)
	r.HandleFunc("/clothing/{id}/image", deps.Images.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/clothing/{id}", deps.Clothing.Get).Methods(http.MethodGet)

	// Connections
	r.HandleFunc("/connections", deps.Connections.Request).Methods(http.MethodPost)
	r.HandleFunc("/connections/accept", deps.Connections.Accept).Methods(http.MethodPost)
	r.HandleFunc("/connections/{otherId}", deps.Connections.Remove).Methods(http.MethodDelete)
	r.HandleFunc("/connections", deps.Connections.List).Methods(http.MethodGet)

	// Rentals
	r.HandleFunc("/rentals/request", deps.Rentals.Request).Methods(http.MethodPost)
	r.HandleFunc("/rentals/owner/{ownerId}/pending", deps.Rentals.PendingForOwner).Methods(http.MethodGet)
	r.HandleFunc("/rentals/{rentalId}/confirm", deps.Rentals.Decide).Methods(http.MethodPost)
	r.HandleFunc("/rentals/{rentalId}/payment", deps.Rentals.Payment).Methods(http.MethodPost)
	r.HandleFunc("/rentals/user/{userId}", deps.Rentals.ListForUser).Methods(http.MethodGet)

	// Mock storage endpoints back the presigned URLs
	if deps.MockStorage != nil {
		handler := NewImageUploadHandler(deps.MockStorage)
		r.HandleFunc("/api/v1/upload/{token}", handler.HandleMockUpload).Methods(http.MethodPut)
		r.HandleFunc("/api/v1/download/{key}", handler.HandleMockDownload).Methods(http.MethodGet)
	}

	return r
}
