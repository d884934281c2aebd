package scheduler

import (
	"strings"

	"github.com/rich365/rich365/internal/domain"
)

type substitution struct {
	find    string
	replace string
}

var roleSubstitutions = map[domain.Role]substitution{
	domain.RoleEntrepreneur: {find: "你的", replace: "你的创业"},
	domain.RoleEmployee:     {find: "收入", replace: "职业收入"},
}

// Personalize applies the role's single substitution rule to the first
// occurrence in description. Roles without a rule get the text unchanged.
func Personalize(description string, r domain.Role) string {
	sub, ok := roleSubstitutions[r]
	if !ok {
		return description
	}
	return strings.Replace(description, sub.find, sub.replace, 1)
}
