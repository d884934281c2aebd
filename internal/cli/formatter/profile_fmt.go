package formatter

import (
	"fmt"
	"strings"

	"github.com/rich365/rich365/internal/catalogue"
	"github.com/rich365/rich365/internal/domain"
)

// FormatProfile renders a user's identity and personalization axes.
func FormatProfile(u *domain.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n\n", u.DisplayAvatar(), Bold(u.DisplayName()), TruncID(u.ID))

	if info, ok := catalogue.Personality(u.Profile.PersonalityType); ok {
		fmt.Fprintf(&b, "%s  %s %s %s\n", Dim("人格"), info.Emoji, u.Profile.PersonalityType, info.Name)
		fmt.Fprintf(&b, "      %s\n", Dim(info.Trait))
	} else {
		fmt.Fprintf(&b, "%s  %s\n", Dim("人格"), StyleRed.Render("未设置"))
	}
	if role, ok := catalogue.RoleDetails(u.Profile.Role); ok {
		fmt.Fprintf(&b, "%s  %s %s\n", Dim("身份"), role.Emoji, u.Profile.Role)
		fmt.Fprintf(&b, "      %s\n", Dim(role.Description))
	} else {
		fmt.Fprintf(&b, "%s  %s\n", Dim("身份"), StyleRed.Render("未设置"))
	}
	if u.Profile.Goal != "" {
		fmt.Fprintf(&b, "%s  %s\n", Dim("目标"), u.Profile.Goal)
	}
	return RenderBox("我的画像", strings.TrimRight(b.String(), "\n"))
}
