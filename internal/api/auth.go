package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"payctl/internal/models"
)

// Register creates a new account and returns the structured auth response
func (c *Client) Register(ctx context.Context, data models.Registration) (*models.Auth, error) {
	return c.authenticate(ctx, "/auth/register", data)
}

// Login authenticates the user with the server
func (c *Client) Login(ctx context.Context, data models.Credentials) (*models.Auth, error) {
	return c.authenticate(ctx, "/auth/login", data)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*models.Auth, error) {
	var responseMap map[string]interface{}
	resp, err := c.do(ctx, http.MethodPost, path, body, &responseMap, false)
	if err != nil {
		return nil, err
	}

	authResponse := &models.Auth{User: extractUserInfo(responseMap)}
	authResponse.Token = findAuthToken(resp.Cookies(), responseMap)

	if authResponse.Token == "" {
		return nil, fmt.Errorf("no authentication token found in server response")
	}

	c.AuthToken = authResponse.Token
	if c.tokenStore != nil {
		if err := c.tokenStore.SaveToken(authResponse.Token); err != nil {
			return nil, fmt.Errorf("failed to save auth token: %w", err)
		}
	}

	return authResponse, nil
}

// Logout clears the locally stored session
func (c *Client) Logout() error {
	c.AuthToken = ""
	if c.tokenStore != nil {
		return c.tokenStore.ClearToken()
	}
	return nil
}

// newHTTPClient creates an HTTP client with a cookie jar so session cookies
// set by the auth endpoints are visible on the response
func newHTTPClient(timeout time.Duration) (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}

	return &http.Client{
		Timeout: timeout,
		Jar:     jar,
	}, nil
}

// extractUserInfo extracts user information from the response
func extractUserInfo(responseMap map[string]interface{}) models.User {
	var user models.User

	if userObj, ok := responseMap["user"].(map[string]interface{}); ok {
		// Extract user ID from various possible fields
		for _, field := range []string{"id", "_id", "uid"} {
			if id, ok := userObj[field].(string); ok {
				user.ID = id
				break
			}
		}

		if userEmail, ok := userObj["email"].(string); ok {
			user.Email = userEmail
		}
		if userName, ok := userObj["name"].(string); ok {
			user.Name = userName
		}
	}

	return user
}

// findAuthToken looks for an authentication token in cookies and response body
func findAuthToken(cookies []*http.Cookie, responseMap map[string]interface{}) string {
	for _, cookie := range cookies {
		if cookie.Value != "" {
			cookieName := strings.ToLower(cookie.Name)

			switch {
			case cookieName == "accesstoken",
				cookieName == "access_token",
				strings.Contains(cookieName, "auth"),
				strings.Contains(cookieName, "session"),
				strings.Contains(cookieName, "jwt"):

				return cookie.Value
			}
		}
	}

	// If not found in cookies, check response body
	for _, field := range []string{"accessToken", "access_token", "token"} {
		if token, ok := responseMap[field].(string); ok && token != "" {
			return token
		}
	}

	return ""
}
