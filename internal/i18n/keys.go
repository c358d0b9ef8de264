// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAuthPasswordReset      = "auth.password_reset"
	KeyAuthAccessDenied       = "auth.access_denied"

	// User Management
	KeyUserProfileUpdated = "user.profile_updated"
	KeyUserNotFound       = "user.not_found"
	KeyUserDeleted        = "user.deleted"

	// Artists
	KeyArtistCreated  = "artist.created"
	KeyArtistUpdated  = "artist.updated"
	KeyArtistNotFound = "artist.not_found"
	KeyArtistApproved = "artist.approved"

	// Categories
	KeyCategoryCreated  = "category.created"
	KeyCategoryUpdated  = "category.updated"
	KeyCategoryDeleted  = "category.deleted"
	KeyCategoryNotFound = "category.not_found"

	// Artworks
	KeyArtworkCreated     = "artwork.created"
	KeyArtworkUpdated     = "artwork.updated"
	KeyArtworkDeleted     = "artwork.deleted"
	KeyArtworkNotFound    = "artwork.not_found"
	KeyArtworkUnavailable = "artwork.unavailable"

	// Orders
	KeyOrderCreated    = "order.created"
	KeyOrderCancelled  = "order.cancelled"
	KeyOrderNotFound   = "order.not_found"
	KeyOrderEmptyItems = "order.empty_items"

	// Payments
	KeyPaymentSuccess  = "payment.success"
	KeyPaymentFailed   = "payment.failed"
	KeyPaymentRefunded = "payment.refunded"

	// Favorites
	KeyFavoriteAdded   = "favorite.added"
	KeyFavoriteRemoved = "favorite.removed"
	KeyFavoriteExists  = "favorite.exists"

	// Reviews
	KeyReviewCreated  = "review.created"
	KeyReviewDeleted  = "review.deleted"
	KeyReviewNotFound = "review.not_found"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileInvalidType   = "file.invalid_type"
	KeyFileTooLarge      = "file.too_large"
)
