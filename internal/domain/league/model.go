package league

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

const (
	DefaultName            = "PHL"
	DefaultRegulationsText = "Регламент скоро появится"
)

// Social link icon keys understood by the site.
const (
	IconMessageCircle = "MessageCircle"
	IconSend          = "Send"
	IconTwitch        = "Twitch"
	IconYoutube       = "Youtube"
	IconFacebook      = "Facebook"
	IconInstagram     = "Instagram"
	IconTwitter       = "Twitter"
	IconLink          = "Link"
)

var knownIcons = map[string]struct{}{
	IconMessageCircle: {},
	IconSend:          {},
	IconTwitch:        {},
	IconYoutube:       {},
	IconFacebook:      {},
	IconInstagram:     {},
	IconTwitter:       {},
	IconLink:          {},
}

// Info is the single league metadata record.
type Info struct {
	Name        string
	Description string
	LogoURL     *string
	SocialLinks []SocialLink
}

type SocialLink struct {
	ID        int64
	Platform  string
	URL       string
	Icon      string
	SortOrder int
}

type Regulations struct {
	Content string
}

// WithDefaults fills the values the backend leaves empty before any admin edit.
func (i Info) WithDefaults() Info {
	if strings.TrimSpace(i.Name) == "" {
		i.Name = DefaultName
	}
	links := append([]SocialLink(nil), i.SocialLinks...)
	sort.SliceStable(links, func(a, b int) bool {
		return links[a].SortOrder < links[b].SortOrder
	})
	for idx := range links {
		links[idx].Icon = NormalizeIcon(links[idx].Icon)
	}
	if links == nil {
		links = []SocialLink{}
	}
	i.SocialLinks = links
	return i
}

func (r Regulations) WithDefaults() Regulations {
	if strings.TrimSpace(r.Content) == "" {
		r.Content = DefaultRegulationsText
	}
	return r
}

// NormalizeIcon maps unknown icon keys to the generic link icon.
func NormalizeIcon(icon string) string {
	icon = strings.TrimSpace(icon)
	if _, ok := knownIcons[icon]; ok {
		return icon
	}
	return IconLink
}

func IsKnownIcon(icon string) bool {
	_, ok := knownIcons[strings.TrimSpace(icon)]
	return ok
}

func (i Info) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	return nil
}

func (l SocialLink) Validate() error {
	if strings.TrimSpace(l.Platform) == "" {
		return fmt.Errorf("social link platform is required")
	}
	parsed, err := url.Parse(strings.TrimSpace(l.URL))
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("social link url %q must be an absolute http(s) url", l.URL)
	}
	if !IsKnownIcon(l.Icon) {
		return fmt.Errorf("social link icon %q is not recognized", l.Icon)
	}
	return nil
}
