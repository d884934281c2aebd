package domain

import "strings"

// Role is a professional category. The value is the display label, which is
// also what the selector seeds from.
type Role string

const (
	RoleEntrepreneur Role = "创业者/自雇者"
	RoleEmployee     Role = "职场打工人"
	RoleCreator      Role = "创作者/内容从业者"
	RoleInvestor     Role = "投资理财者"
	RoleLearner      Role = "学习者/转型者"
)

// Roles lists every role in display order.
var Roles = []Role{RoleEntrepreneur, RoleEmployee, RoleCreator, RoleInvestor, RoleLearner}

// roleAliases maps short ASCII names accepted on the command line.
var roleAliases = map[string]Role{
	"entrepreneur": RoleEntrepreneur,
	"employee":     RoleEmployee,
	"creator":      RoleCreator,
	"investor":     RoleInvestor,
	"learner":      RoleLearner,
}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if known == r {
			return true
		}
	}
	return false
}

// Slug returns the ASCII alias of r.
func (r Role) Slug() string {
	for slug, role := range roleAliases {
		if role == r {
			return slug
		}
	}
	return ""
}

// ParseRole accepts either the display label or its ASCII alias.
func ParseRole(s string) (Role, error) {
	trimmed := strings.TrimSpace(s)
	if r := Role(trimmed); r.Valid() {
		return r, nil
	}
	if r, ok := roleAliases[strings.ToLower(trimmed)]; ok {
		return r, nil
	}
	return "", &ValidationError{Field: "role", Value: s, Err: ErrInvalidRole}
}
