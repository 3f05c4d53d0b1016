package rest

import (
	"log"
	"net/http"

	"github.com/google/uuid"

	"pension-admin/internal/adapters/localstore"
)

// RequestInterceptor inspects or mutates an outgoing request before it is
// sent. Interceptors run in registration order on every call.
type RequestInterceptor func(req *http.Request) error

// ResponseInterceptor observes a classified failure before it is returned
// to the caller. Successful responses never reach response interceptors.
type ResponseInterceptor func(apiErr *Error)

// Notifier receives the user-facing message for a failed call. The UI layer
// decides how to surface it; the default writes to the log.
type Notifier func(message string)

// LogNotifier is the default notifier.
func LogNotifier(message string) {
	log.Printf("notice: %s", message)
}

// BearerAuth attaches the stored credential as a bearer Authorization
// header. Calls made while no credential is stored go out without the
// header; the backend rejects them if the route needs one.
func BearerAuth(store *localstore.Store) RequestInterceptor {
	return func(req *http.Request) error {
		token, err := store.Get(localstore.KeyAuthToken)
		if err != nil || token == "" {
			return nil
		}
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
}

// RequestID tags every outgoing request so backend logs can be correlated
// with a specific client call.
func RequestID() RequestInterceptor {
	return func(req *http.Request) error {
		req.Header.Set("X-Request-ID", uuid.NewString())
		return nil
	}
}

// SessionGuard is the 401 branch of the response interceptor: it clears the
// persisted credential and user together and fires the navigate-to-login
// hook once. No other status touches session state here; permission and
// validation failures must never log the user out.
func SessionGuard(store *localstore.Store, navigateToLogin func()) ResponseInterceptor {
	return func(apiErr *Error) {
		if apiErr.Status != http.StatusUnauthorized {
			return
		}
		if err := store.Clear(); err != nil {
			log.Printf("failed to clear session state: %v", err)
		}
		if navigateToLogin != nil {
			navigateToLogin()
		}
	}
}

// Notify forwards every failure's message to the notifier. Registered after
// SessionGuard so the session-expired notice goes out with storage already
// cleared, matching the order the dashboard relied on.
func Notify(notify Notifier) ResponseInterceptor {
	return func(apiErr *Error) {
		if notify == nil {
			return
		}
		notify(apiErr.Message)
	}
}
