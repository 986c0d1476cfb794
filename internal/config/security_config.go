package config

type SecurityLevel int

const (
	SecurityPublic  SecurityLevel = iota // No authentication
	SecurityRefresh                      // Refresh token required
	SecurityAccess                       // Access token required
)

// EndpointSecurityConfig maps route templates to their required security
// level. Keys are "<METHOD> <mux path template>". The matching-engine
// surface stays public for wire compatibility with existing clients; the
// account surface requires tokens.
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Health
	"GET /health": SecurityPublic,

	// Auth surface
	"POST /auth/signup":  SecurityPublic,
	"POST /auth/signin":  SecurityPublic,
	"POST /auth/refresh": SecurityRefresh,
	"GET /auth/me":       SecurityAccess,

	// Engine users and search
	"POST /users":             SecurityPublic,
	"GET /users/{id}":         SecurityPublic,
	"GET /users/{id}/search":  SecurityPublic,

	// Engine listings
	"POST /listings":     SecurityPublic,
	"GET /listings":      SecurityPublic,
	"GET /listings/{id}": SecurityPublic,

	// Messaging
	"GET /messages/{userId}/conversations":    SecurityPublic,
	"GET /messages/{userId}/{otherId}":        SecurityPublic,
	"POST /messages":                          SecurityPublic,
	"POST /messages/{userId}/{otherId}/read":  SecurityPublic,

	// Ratings
	"POST /ratings/clothing":                SecurityPublic,
	"GET /ratings/clothing/{id}":            SecurityPublic,
	"GET /ratings/clothing/{id}/stats":      SecurityPublic,
	"POST /ratings/user":                    SecurityPublic,
	"GET /ratings/user/{id}":                SecurityPublic,
	"GET /ratings/user/{id}/stats":          SecurityPublic,

	// Profiles
	"GET /profiles/{userId}": SecurityAccess,
	"PUT /profiles/{userId}": SecurityAccess,

	// Clothing row store
	"POST /clothing":                    SecurityAccess,
	"GET /clothing":                     SecurityPublic,
	"GET /clothing/mine":                SecurityAccess,
	"GET /clothing/{id}":                SecurityPublic,
	"POST /clothing/{id}/image/confirm":      SecurityAccess,
	"POST /clothing/{id}/image/upload-url":   SecurityAccess,
	"GET /clothing/{id}/image/download-url":  SecurityPublic,
	"DELETE /clothing/{id}/image":            SecurityAccess,

	// Connections
	"POST /connections":               SecurityAccess,
	"POST /connections/accept":        SecurityAccess,
	"DELETE /connections/{otherId}":   SecurityAccess,
	"GET /connections":                SecurityAccess,

	// Rentals
	"POST /rentals/request":                  SecurityAccess,
	"GET /rentals/owner/{ownerId}/pending":   SecurityAccess,
	"POST /rentals/{rentalId}/confirm":       SecurityAccess,
	"POST /rentals/{rentalId}/payment":       SecurityAccess,
	"GET /rentals/user/{userId}":             SecurityAccess,

	// Mock storage
	"PUT /api/v1/upload/{token}":  SecurityPublic,
	"GET /api/v1/download/{key}":  SecurityPublic,
}

// GetSecurityLevel returns the security level for a given route
func GetSecurityLevel(route string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[route]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAccess
}
