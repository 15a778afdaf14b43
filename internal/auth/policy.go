package auth

import (
	"fmt"
	"unicode"
)

// PasswordPolicy mirrors the identity-provider defaults: length plus
// character-class requirements.
type PasswordPolicy struct {
	MinLength     int
	RequireUpper  bool
	RequireLower  bool
	RequireDigit  bool
	RequireSymbol bool
}

func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:     12,
		RequireUpper:  true,
		RequireLower:  true,
		RequireDigit:  true,
		RequireSymbol: true,
	}
}

// Check returns one message per violated rule, empty when the password passes.
func (p PasswordPolicy) Check(password string) []string {
	var problems []string

	if len(password) < p.MinLength {
		problems = append(problems, fmt.Sprintf("Passwords must be at least %d characters.", p.MinLength))
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	if p.RequireUpper && !hasUpper {
		problems = append(problems, "Passwords must have at least one uppercase letter.")
	}
	if p.RequireLower && !hasLower {
		problems = append(problems, "Passwords must have at least one lowercase letter.")
	}
	if p.RequireDigit && !hasDigit {
		problems = append(problems, "Passwords must have at least one digit.")
	}
	if p.RequireSymbol && !hasSymbol {
		problems = append(problems, "Passwords must have at least one non-alphanumeric character.")
	}

	return problems
}
