package services

import (
	"context"
	"fmt"

	"aarohan/config"
	"aarohan/models"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
)

// IdentityUser is the signed-in account as returned by the identity provider
type IdentityUser struct {
	ID          string
	Email       string
	AccessToken string
	Metadata    map[string]interface{}
}

// Role reads the role stored in the user's metadata; empty when absent
func (u *IdentityUser) Role() models.Role {
	if u == nil || u.Metadata == nil {
		return ""
	}
	raw, _ := u.Metadata["role"].(string)
	return models.Role(raw)
}

// Name reads the display name stored in the user's metadata
func (u *IdentityUser) Name() string {
	if u == nil || u.Metadata == nil {
		return ""
	}
	name, _ := u.Metadata["name"].(string)
	return name
}

// IdentityProvider is the hosted signup/signin service
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) error
	SignIn(ctx context.Context, email, password string) (*IdentityUser, error)
}

// GoTrueProvider talks to a Supabase GoTrue instance
type GoTrueProvider struct {
	client gotrue.Client
}

// NewGoTrueProvider builds the provider from config. SUPABASE_URL wins over the project ref.
func NewGoTrueProvider(cfg *config.Config) *GoTrueProvider {
	client := gotrue.New(cfg.SupabaseProjectRef, cfg.SupabaseAnonKey)
	if cfg.SupabaseURL != "" {
		client = client.WithCustomGoTrueURL(cfg.SupabaseURL + "/auth/v1")
	}
	return &GoTrueProvider{client: client}
}

// SignUp registers a new account with metadata stored as user_metadata
func (p *GoTrueProvider) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := p.client.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data:     metadata,
	})
	if err != nil {
		return fmt.Errorf("gotrue signup: %w", err)
	}
	return nil
}

// SignIn exchanges email and password for a session
func (p *GoTrueProvider) SignIn(ctx context.Context, email, password string) (*IdentityUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := p.client.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("gotrue signin: %w", err)
	}
	return &IdentityUser{
		ID:          resp.User.ID.String(),
		Email:       resp.User.Email,
		AccessToken: resp.AccessToken,
		Metadata:    resp.User.UserMetadata,
	}, nil
}
