package services

import (
	"encoding/json"
	"fmt"
	"sync"

	authorizer "github.com/localnerve/authorizer-go"
	"github.com/localnerve/waitinglist/internal/config"
	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/localnerve/waitinglist/internal/utils"
)

var (
	authClient *authorizer.AuthorizerClient
	authOnce   sync.Once
	authErr    error
)

// SessionUser is the part of an authorizer user the service stamps on its changes
type SessionUser struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	PreferredUsername string `json:"preferred_username"`
}

// Actor is the name written to created_by, last_changed_by and the audit trail
func (u SessionUser) Actor() string {
	if u.PreferredUsername != "" {
		return u.PreferredUsername
	}
	if u.Email != "" {
		return u.Email
	}
	return u.ID
}

// IsAuthorizerInitialized returns true if the Authorizer client is initialized
func IsAuthorizerInitialized() bool {
	return authClient != nil
}

// InitAuthorizer initializes the Authorizer client once. A failed first attempt
// is returned to every later caller.
func InitAuthorizer(cfg *config.Config, log logger.Logger, requestProtocol, requestHost string) error {
	authOnce.Do(func() {
		if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
			authErr = fmt.Errorf("authorizer ping failed: %w", err)
			return
		}

		redirectURL := fmt.Sprintf("%s://%s", requestProtocol, requestHost)
		log.Info("initializing authorizer",
			logger.String("authorizer_url", cfg.AuthzURL),
			logger.String("client_id", cfg.AuthzClientID),
			logger.String("redirect_url", redirectURL))

		client, err := authorizer.NewAuthorizerClient(cfg.AuthzClientID, cfg.AuthzURL, redirectURL, nil)
		if err != nil {
			authErr = fmt.Errorf("failed to create authorizer client: %w", err)
			return
		}
		authClient = client
	})

	return authErr
}

// ValidateSession validates a session cookie for the given roles
func ValidateSession(cookie string, roles []string) (*SessionUser, error) {
	if authClient == nil {
		return nil, fmt.Errorf("authorizer client not initialized")
	}

	rolesPtrs := make([]*string, len(roles))
	for i := range roles {
		rolesPtrs[i] = &roles[i]
	}

	res, err := authClient.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
		Roles:  rolesPtrs,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}
	if res == nil || !res.IsValid {
		return nil, fmt.Errorf("session is not valid")
	}

	// round trip through JSON to keep only the fields we use
	raw, err := json.Marshal(res.User)
	if err != nil {
		return nil, fmt.Errorf("failed to read session user: %w", err)
	}
	var user SessionUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("failed to read session user: %w", err)
	}
	return &user, nil
}
