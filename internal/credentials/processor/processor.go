package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"adsync/internal/clients/amazonads"
	"adsync/internal/observability"
	"adsync/internal/store"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotConnected    = errors.New("no Amazon credential connected")
	ErrNoProfile       = errors.New("no Amazon profile selected")
	ErrProfileNotFound = errors.New("profile not available to this credential")
	ErrCodeExchange    = errors.New("failed to exchange authorization code")
)

// NotConfiguredMessage is shown to callers whenever a remote call needs a connection that is missing
const NotConfiguredMessage = "No Amazon profile connected. Please connect and select a profile in Settings."

// CredentialStore defines the database operations required by CredentialProcessor
type CredentialStore interface {
	GetActiveCredential(ctx context.Context) (store.AmazonCredential, error)
	ReplaceCredential(ctx context.Context, accessToken, refreshToken string, expiresAt time.Time) (store.AmazonCredential, error)
	UpdateCredentialTokens(ctx context.Context, id uuid.UUID, accessToken, refreshToken string, expiresAt time.Time) error
	SetCredentialProfile(ctx context.Context, id uuid.UUID, profileID string, countryCode *string) (store.AmazonCredential, error)
}

// Account is the Login with Amazon surface
type Account interface {
	AuthorizationURL(state string) string
	ExchangeCode(ctx context.Context, code string) (amazonads.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (amazonads.TokenResponse, error)
	ListProfiles(ctx context.Context, accessToken string) ([]amazonads.Profile, error)
}

// Config carries the app-level Amazon settings
type Config struct {
	ClientID string
	Region   string
	// BaseURL overrides the host derived from the profile's country
	BaseURL string
}

// Status describes the current connection
type Status struct {
	Connected   bool    `json:"connected"`
	ProfileID   *string `json:"profile_id,omitempty"`
	CountryCode *string `json:"country_code,omitempty"`
}

// session is the client built for one credential and profile. It is reused until the
// credential or profile changes so every caller shares one token manager.
type session struct {
	credentialID uuid.UUID
	profileID    string
	tokens       *amazonads.TokenManager
	client       *amazonads.Client
}

type CredentialProcessor struct {
	store   CredentialStore
	account Account
	limiter amazonads.Limiter
	config  Config
	logger  *observability.Logger
	now     func() time.Time

	mu      *sync.Mutex
	current **session
}

// New creates the provider. limiter is shared by every client it builds.
func New(store CredentialStore, account Account, limiter amazonads.Limiter, config Config, logger *observability.Logger) CredentialProcessor {
	var current *session
	return CredentialProcessor{
		store:   store,
		account: account,
		limiter: limiter,
		config:  config,
		logger:  logger,
		now:     time.Now,
		mu:      &sync.Mutex{},
		current: &current,
	}
}

// Client returns an API client scoped to the selected profile
func (p *CredentialProcessor) Client(ctx context.Context) (*amazonads.Client, error) {
	cred, err := p.active(ctx)
	if err != nil {
		return nil, err
	}
	if cred.ProfileID == nil || *cred.ProfileID == "" {
		return nil, ErrNoProfile
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if s := *p.current; s != nil && s.credentialID == cred.ID && s.profileID == *cred.ProfileID {
		return s.client, nil
	}

	tokens := p.tokenManager(cred)
	client := amazonads.NewClient(p.config.ClientID, *cred.ProfileID, p.baseURL(cred), tokens, p.limiter, p.logger)
	*p.current = &session{
		credentialID: cred.ID,
		profileID:    *cred.ProfileID,
		tokens:       tokens,
		client:       client,
	}

	p.logger.Info(ctx, "opened Amazon Ads session", observability.Field{Key: "profile_id", Value: *cred.ProfileID})
	return client, nil
}

// AuthorizationURL is where the user is sent to grant access
func (p *CredentialProcessor) AuthorizationURL(state string) string {
	return p.account.AuthorizationURL(state)
}

// Connect exchanges an authorization code and replaces the stored credential. The
// profile must be selected again afterwards.
func (p *CredentialProcessor) Connect(ctx context.Context, code string) (Status, error) {
	resp, err := p.account.ExchangeCode(ctx, code)
	if err != nil {
		p.logger.Error(ctx, "failed to exchange Amazon authorization code", err)
		return Status{}, fmt.Errorf("%w: %w", ErrCodeExchange, err)
	}

	expiresAt := amazonads.CalculateExpiresAt(p.now(), resp.ExpiresIn)
	if _, err := p.store.ReplaceCredential(ctx, resp.AccessToken, resp.RefreshToken, expiresAt); err != nil {
		return Status{}, err
	}

	p.reset()
	p.logger.Info(ctx, "connected Amazon account")
	return Status{Connected: true}, nil
}

// ListProfiles lists the advertising profiles the stored credential can act on
func (p *CredentialProcessor) ListProfiles(ctx context.Context) ([]amazonads.Profile, error) {
	cred, err := p.active(ctx)
	if err != nil {
		return nil, err
	}

	token, err := p.accessToken(ctx, cred)
	if err != nil {
		return nil, err
	}

	profiles, err := p.account.ListProfiles(ctx, token)
	if err != nil {
		p.logger.Error(ctx, "failed to list Amazon profiles", err)
		return nil, err
	}
	return profiles, nil
}

// SelectProfile makes profileID the profile every remote call acts on
func (p *CredentialProcessor) SelectProfile(ctx context.Context, profileID string) (Status, error) {
	profiles, err := p.ListProfiles(ctx)
	if err != nil {
		return Status{}, err
	}

	var selected *amazonads.Profile
	for i := range profiles {
		if profiles[i].ID() == profileID {
			selected = &profiles[i]
			break
		}
	}
	if selected == nil {
		return Status{}, ErrProfileNotFound
	}

	cred, err := p.active(ctx)
	if err != nil {
		return Status{}, err
	}

	var country *string
	if selected.CountryCode != "" {
		cc := selected.CountryCode
		country = &cc
	}
	updated, err := p.store.SetCredentialProfile(ctx, cred.ID, profileID, country)
	if err != nil {
		return Status{}, err
	}

	p.reset()
	p.logger.Info(ctx, "selected Amazon profile", observability.Field{Key: "profile_id", Value: profileID})
	return statusOf(updated), nil
}

// Status reports whether an account is connected and which profile is selected
func (p *CredentialProcessor) Status(ctx context.Context) (Status, error) {
	cred, err := p.store.GetActiveCredential(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Status{}, nil
		}
		return Status{}, err
	}
	return statusOf(cred), nil
}

// ProfileID returns the selected profile, used to key per-profile work such as task uniqueness
func (p *CredentialProcessor) ProfileID(ctx context.Context) (string, error) {
	cred, err := p.active(ctx)
	if err != nil {
		return "", err
	}
	if cred.ProfileID == nil || *cred.ProfileID == "" {
		return "", ErrNoProfile
	}
	return *cred.ProfileID, nil
}

func (p *CredentialProcessor) active(ctx context.Context) (store.AmazonCredential, error) {
	cred, err := p.store.GetActiveCredential(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AmazonCredential{}, ErrNotConnected
		}
		return store.AmazonCredential{}, err
	}
	return cred, nil
}

// accessToken reuses the open session's token manager when it belongs to cred
func (p *CredentialProcessor) accessToken(ctx context.Context, cred store.AmazonCredential) (string, error) {
	p.mu.Lock()
	s := *p.current
	p.mu.Unlock()

	if s != nil && s.credentialID == cred.ID {
		return s.tokens.AccessToken(ctx)
	}
	return p.tokenManager(cred).AccessToken(ctx)
}

func (p *CredentialProcessor) tokenManager(cred store.AmazonCredential) *amazonads.TokenManager {
	id := cred.ID
	persist := func(ctx context.Context, t amazonads.Token) error {
		return p.store.UpdateCredentialTokens(ctx, id, t.AccessToken, t.RefreshToken, t.ExpiresAt)
	}
	return amazonads.NewTokenManager(amazonads.Token{
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
		ExpiresAt:    cred.ExpiresAt,
	}, p.account, persist, p.logger)
}

func (p *CredentialProcessor) baseURL(cred store.AmazonCredential) string {
	if p.config.BaseURL != "" {
		return p.config.BaseURL
	}
	if cred.CountryCode != nil && *cred.CountryCode != "" {
		return amazonads.RegionForCountry(*cred.CountryCode).BaseURL()
	}
	return amazonads.Region(p.config.Region).BaseURL()
}

func (p *CredentialProcessor) reset() {
	p.mu.Lock()
	*p.current = nil
	p.mu.Unlock()
}

func statusOf(cred store.AmazonCredential) Status {
	return Status{
		Connected:   true,
		ProfileID:   cred.ProfileID,
		CountryCode: cred.CountryCode,
	}
}
