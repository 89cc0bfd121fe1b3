package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"aarohan/logging"
	"aarohan/models"
)

// AuthMode selects between signing in and signing up
type AuthMode string

const (
	AuthModeSignIn AuthMode = "signin"
	AuthModeSignUp AuthMode = "signup"
)

// RouteCaseListing is where lawyers land after authenticating
const RouteCaseListing = "/pending-cases"

// CourtroomRoute is the hearing page of a case
func CourtroomRoute(caseID string) string {
	return "/courtroom/" + url.PathEscape(caseID)
}

// User-facing auth notices
const (
	GenericFailureMessage = "An error occurred. Please try again."
	SignUpSuccessMessage  = "Successfully signed up! Please check your email for verification."
	SignInSuccessMessage  = "Successfully signed in!"
)

// ErrProviderFailure wraps every identity provider error; details are never shown to users
var ErrProviderFailure = errors.New("identity provider request failed")

// ParseAuthMode maps form input to an AuthMode, defaulting to sign in
func ParseAuthMode(s string) AuthMode {
	if AuthMode(strings.ToLower(strings.TrimSpace(s))) == AuthModeSignUp {
		return AuthModeSignUp
	}
	return AuthModeSignIn
}

// RegistrationInput is the schema shared by every role
type RegistrationInput struct {
	Name     string `form:"name" validate:"required,min=2"`
	Phone    string `form:"phone" validate:"required,len=10,number"`
	Aadhar   string `form:"aadhar" validate:"required,len=12,number"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
}

// LawyerRegistrationInput adds the bar council number required of lawyers
type LawyerRegistrationInput struct {
	RegistrationInput
	BarNumber string `form:"bar_number" validate:"required,min=6"`
}

// Credentials is the schema checked on sign in
type Credentials struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
}

var authMessages = map[string]string{
	"name":       "Name must be at least 2 characters",
	"phone":      "Phone number must be 10 digits",
	"aadhar":     "Aadhar number must be 12 digits",
	"email":      "Invalid email address",
	"password":   "Password must be at least 8 characters",
	"bar_number": "Bar number must be at least 6 characters",
}

// AuthForm carries the raw values of one auth form submission
type AuthForm struct {
	Mode      AuthMode
	Role      models.Role
	Name      string
	Phone     string
	Aadhar    string
	Email     string
	Password  string
	BarNumber string
}

// Schema returns the value to validate for the form's mode and role.
// The bar number is part of the schema if and only if the role is lawyer.
func (f AuthForm) Schema() interface{} {
	if f.Mode == AuthModeSignIn {
		return Credentials{Email: f.Email, Password: f.Password}
	}

	common := RegistrationInput{
		Name:     f.Name,
		Phone:    f.Phone,
		Aadhar:   f.Aadhar,
		Email:    f.Email,
		Password: f.Password,
	}
	if f.Role == models.RoleLawyer {
		return LawyerRegistrationInput{RegistrationInput: common, BarNumber: f.BarNumber}
	}
	return common
}

// Validate checks the form against its schema and returns a *ValidationError listing every violation
func (f AuthForm) Validate() error {
	return validateStruct(f.Schema(), authMessages)
}

// SignUpMetadata is the user metadata stored with the provider on signup
func (f AuthForm) SignUpMetadata() map[string]interface{} {
	meta := map[string]interface{}{
		"role":   string(f.Role),
		"name":   f.Name,
		"phone":  f.Phone,
		"aadhar": f.Aadhar,
	}
	if f.Role == models.RoleLawyer {
		meta["barNumber"] = f.BarNumber
	}
	return meta
}

// AuthOutcome describes what the UI does after a successful submission.
// An empty Destination means the visitor stays on the auth screen.
type AuthOutcome struct {
	Mode        AuthMode
	Role        models.Role
	Notice      string
	Destination string
	User        *IdentityUser
}

// AuthFlow validates auth forms and submits them to the identity provider
type AuthFlow struct {
	provider IdentityProvider
}

// NewAuthFlow creates an auth flow backed by the given provider
func NewAuthFlow(provider IdentityProvider) *AuthFlow {
	return &AuthFlow{provider: provider}
}

// Submit validates the form and, when valid, performs signup or signin.
// It returns a *ValidationError for field problems or an error wrapping ErrProviderFailure.
func (a *AuthFlow) Submit(ctx context.Context, form AuthForm) (*AuthOutcome, error) {
	form.Email = strings.TrimSpace(form.Email)
	if err := form.Validate(); err != nil {
		return nil, err
	}

	if form.Mode == AuthModeSignUp {
		return a.signUp(ctx, form)
	}
	return a.signIn(ctx, form)
}

func (a *AuthFlow) signUp(ctx context.Context, form AuthForm) (*AuthOutcome, error) {
	if err := a.provider.SignUp(ctx, form.Email, form.Password, form.SignUpMetadata()); err != nil {
		logging.L().Warnw("Sign up failed", "role", form.Role, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}

	outcome := &AuthOutcome{
		Mode:   AuthModeSignUp,
		Role:   form.Role,
		Notice: SignUpSuccessMessage,
	}
	// Email verification is not gated here
	if form.Role == models.RoleLawyer {
		outcome.Destination = RouteCaseListing
	}
	return outcome, nil
}

func (a *AuthFlow) signIn(ctx context.Context, form AuthForm) (*AuthOutcome, error) {
	user, err := a.provider.SignIn(ctx, form.Email, form.Password)
	if err != nil {
		LogSecurityEvent("SIGNIN_FAILED", form.Email, err.Error())
		return nil, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}

	outcome := &AuthOutcome{
		Mode:   AuthModeSignIn,
		Role:   user.Role(),
		Notice: SignInSuccessMessage,
		User:   user,
	}
	if outcome.Role == models.RoleLawyer {
		outcome.Destination = RouteCaseListing
	}
	return outcome, nil
}
