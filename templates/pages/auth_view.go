package pages

import (
	"aarohan/models"
	"aarohan/services"
	"aarohan/templates/components"
)

// AuthView is the state of the auth screen; Form holds the values to redisplay
type AuthView struct {
	Mode services.AuthMode
	Form services.AuthForm
}

// SignUp reports whether the registration form is shown
func (v AuthView) SignUp() bool {
	return v.Mode == services.AuthModeSignUp
}

// Role is the role picked on the form, a plain user until one is chosen
func (v AuthView) Role() models.Role {
	if v.Form.Role == "" {
		return models.RoleUser
	}
	return v.Form.Role
}

type formField struct {
	Name        string
	Label       string
	Kind        string
	Placeholder string
	Value       string
	Hint        string
	Class       string
}

func bare(page components.Page) components.Page {
	page.Bare = true
	return page
}
