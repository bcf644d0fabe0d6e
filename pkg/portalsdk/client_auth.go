package portalsdk

import (
	"context"
	"net/http"
)

// Register creates a new portal account. The account is active immediately;
// call Login to start a session.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register", req, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Login authenticates and stores the session cookie on the client's jar.
func (c *SDKClient) Login(ctx context.Context, email, password string) (User, error) {
	var user User
	req := LoginRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", req, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Logout ends the server session. The cookie jar drops the expired cookie on
// the response.
func (c *SDKClient) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/auth/logout", nil, nil)
}
