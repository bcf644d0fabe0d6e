package portalsdk

import (
	"context"
	"net/http"
)

// Me fetches the signed-in account's profile.
func (c *SDKClient) Me(ctx context.Context) (User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/v1/me", nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// UpdateProfile applies a partial profile update and returns the new profile.
func (c *SDKClient) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPatch, "/v1/me", req, &user); err != nil {
		return User{}, err
	}
	return user, nil
}
