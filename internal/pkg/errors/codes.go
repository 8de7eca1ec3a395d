package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrShopNotFound = New(
		"SHOP_NOT_FOUND",
		"Shop not found in the current candidate list",
		http.StatusNotFound,
	)

	ErrProductNotFound = New(
		"PRODUCT_NOT_FOUND",
		"Product not found in the catalog",
		http.StatusNotFound,
	)

	ErrPurchaseFailed = New(
		"PURCHASE_FAILED",
		"Purchase could not be completed",
		http.StatusBadGateway,
	)

	ErrSearchProviderError = New(
		"SEARCH_PROVIDER_ERROR",
		"Place search provider request failed",
		http.StatusBadGateway,
	)

	ErrPreferencesError = New(
		"PREFERENCES_ERROR",
		"Preferences store operation failed",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
