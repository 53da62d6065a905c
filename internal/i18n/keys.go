// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAdminAccessDenied      = "auth.admin_access_denied"

	// Products
	KeyProductNotFound = "product.not_found"

	// Categories
	KeyCategoryNotFound = "category.not_found"

	// Users
	KeyUserNotFound = "user.not_found"

	// Reviews (lookup)
	KeyReviewNotFound = "review.not_found"

	// Reviews
	KeyReviewCreated   = "review.created"
	KeyReviewDuplicate = "review.duplicate"

	// Consultant
	KeyConsultantNotConfigured = "consultant.not_configured"

	// Engagement
	KeyContactReceived      = "contact.received"
	KeyNewsletterSubscribed = "newsletter.subscribed"
	KeyNewsletterDuplicate  = "newsletter.duplicate"

	// Uploads
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
)
