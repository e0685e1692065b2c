package amazonads

import (
	"adsync/internal/observability"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	lwaTokenURL     = "https://api.amazon.com/auth/o2/token"
	lwaAuthorizeURL = "https://www.amazon.com/ap/oa"
	adsScope        = "advertising::campaign_management"
)

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type AccountInfo struct {
	ID                  string `json:"id"`
	Type                string `json:"type"`
	Name                string `json:"name"`
	ValidPaymentMethod  bool   `json:"validPaymentMethod"`
	MarketplaceStringID string `json:"marketplaceStringId"`
}

// Profile is one advertising account the credential can act on
type Profile struct {
	ProfileID    flexID      `json:"profileId"`
	CountryCode  string      `json:"countryCode"`
	CurrencyCode string      `json:"currencyCode"`
	Timezone     string      `json:"timezone"`
	AccountInfo  AccountInfo `json:"accountInfo"`
}

// ID returns the profile id as a string
func (p Profile) ID() string {
	return p.ProfileID.String()
}

// OAuthClient performs Login with Amazon token grants and profile discovery
type OAuthClient struct {
	clientID     string
	clientSecret string
	redirectURL  string
	tokenURL     string
	apiBaseURL   string
	logger       *observability.Logger
	httpClient   *http.Client
}

func NewOAuthClient(clientID, clientSecret, redirectURL string, region Region, logger *observability.Logger) *OAuthClient {
	return &OAuthClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURL:  redirectURL,
		tokenURL:     lwaTokenURL,
		apiBaseURL:   region.BaseURL(),
		logger:       logger,
		httpClient:   &http.Client{},
	}
}

// WithEndpoints points the client at other hosts, used against sandboxes and in tests
func (c *OAuthClient) WithEndpoints(tokenURL, apiBaseURL string) *OAuthClient {
	c.tokenURL = tokenURL
	c.apiBaseURL = apiBaseURL
	return c
}

// AuthorizationURL is where a user grants the app access to their ads account
func (c *OAuthClient) AuthorizationURL(state string) string {
	q := url.Values{}
	q.Set("client_id", c.clientID)
	q.Set("scope", adsScope)
	q.Set("response_type", "code")
	q.Set("redirect_uri", c.redirectURL)
	if state != "" {
		q.Set("state", state)
	}
	return lwaAuthorizeURL + "?" + q.Encode()
}

// ExchangeCode trades an authorization code for a token pair
func (c *OAuthClient) ExchangeCode(ctx context.Context, code string) (TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("redirect_uri", c.redirectURL)
	return c.tokenRequest(ctx, form)
}

// Refresh trades a refresh token for a new access token
func (c *OAuthClient) Refresh(ctx context.Context, refreshToken string) (TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	return c.tokenRequest(ctx, form)
}

func (c *OAuthClient) tokenRequest(ctx context.Context, form url.Values) (TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		c.logger.InfoWithError(ctx, "failed to create request", err)
		return TokenResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to make request", err)
		return TokenResponse{}, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.InfoWithError(ctx, "failed to read response body", err)
		return TokenResponse{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResponse struct {
			Error            string `json:"error"`
			ErrorDescription string `json:"error_description"`
		}
		_ = json.Unmarshal(body, &errorResponse)
		err := fmt.Errorf("error: %s, description: %s", errorResponse.Error, errorResponse.ErrorDescription)
		c.logger.Error(ctx, "failed to get access token", err)
		if errorResponse.ErrorDescription == "" {
			return TokenResponse{}, fmt.Errorf("failed to get access token: %w", &APIError{StatusCode: resp.StatusCode, Body: string(body)})
		}
		return TokenResponse{}, fmt.Errorf("failed to get access token: %s", errorResponse.ErrorDescription)
	}

	var tokenResponse TokenResponse
	if err := json.Unmarshal(body, &tokenResponse); err != nil {
		c.logger.InfoWithError(ctx, "failed to unmarshal response body", err)
		return TokenResponse{}, fmt.Errorf("failed to unmarshal response body: %w", err)
	}
	return tokenResponse, nil
}

// ListProfiles lists the advertising profiles visible to accessToken
func (c *OAuthClient) ListProfiles(ctx context.Context, accessToken string) ([]Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/v2/profiles", nil)
	if err != nil {
		c.logger.InfoWithError(ctx, "failed to create request", err)
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Amazon-Advertising-API-ClientId", c.clientID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.InfoWithError(ctx, "failed to make request", err)
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.InfoWithError(ctx, "failed to read response body", err)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(body)}
		c.logger.Error(ctx, "failed to list profiles", apiErr)
		return nil, apiErr
	}

	var profiles []Profile
	if err := json.Unmarshal(body, &profiles); err != nil {
		c.logger.InfoWithError(ctx, "failed to unmarshal response body", err)
		return nil, fmt.Errorf("failed to unmarshal response body: %w", err)
	}
	return profiles, nil
}
