// Package i18n provides the typed translation dictionary for the club site.
// Keys form a closed set; lookups fall back to English and finally to the
// key itself, so a missing translation never breaks a page.
package i18n

// Locale identifies a supported display language.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleDA Locale = "da"
)

// Key identifies a translatable string.
type Key string

const (
	KeyNavHome        Key = "nav.home"
	KeyNavRoster      Key = "nav.roster"
	KeyNavEvents      Key = "nav.events"
	KeyNavLeaderboard Key = "nav.leaderboard"
	KeyNavGallery     Key = "nav.gallery"

	KeyLoginTitle  Key = "login.title"
	KeyLoginPrompt Key = "login.prompt"
	KeyLoginFailed Key = "login.failed"
	KeyLogout      Key = "logout"

	KeyRSVPComing    Key = "rsvp.coming"
	KeyRSVPMaybe     Key = "rsvp.maybe"
	KeyRSVPNotComing Key = "rsvp.not_coming"

	KeyBadgeEarlyBird Key = "badge.early_bird"
	KeyBadgeChameleon Key = "badge.chameleon"
	KeyBadgeReliable  Key = "badge.reliable"
	KeyBadgeIronMan   Key = "badge.iron_man"
	KeyBadgesNone     Key = "badges.none"

	KeyLeaderboardPoints     Key = "leaderboard.points"
	KeyLeaderboardAttendance Key = "leaderboard.attendance"

	KeyGallerySubmit  Key = "gallery.submit"
	KeyGalleryPending Key = "gallery.pending"
)

// Bundle maps keys to strings for one locale.
type Bundle map[Key]string

var bundles = map[Locale]Bundle{
	LocaleEN: {
		KeyNavHome:        "Home",
		KeyNavRoster:      "Roster",
		KeyNavEvents:      "Events",
		KeyNavLeaderboard: "Leaderboard",
		KeyNavGallery:     "Gallery",

		KeyLoginTitle:  "Member login",
		KeyLoginPrompt: "Enter your access code",
		KeyLoginFailed: "That access code didn't match anyone on the roster.",
		KeyLogout:      "Log out",

		KeyRSVPComing:    "Coming",
		KeyRSVPMaybe:     "Maybe",
		KeyRSVPNotComing: "Can't make it",

		KeyBadgeEarlyBird: "Early Bird",
		KeyBadgeChameleon: "Chameleon",
		KeyBadgeReliable:  "Reliable",
		KeyBadgeIronMan:   "Iron Man",
		KeyBadgesNone:     "No badges yet",

		KeyLeaderboardPoints:     "Points",
		KeyLeaderboardAttendance: "Sessions",

		KeyGallerySubmit:  "Submit a photo",
		KeyGalleryPending: "Awaiting review",
	},
	LocaleDA: {
		KeyNavHome:        "Forside",
		KeyNavRoster:      "Holdet",
		KeyNavEvents:      "Begivenheder",
		KeyNavLeaderboard: "Rangliste",
		KeyNavGallery:     "Galleri",

		KeyLoginTitle:  "Medlemslogin",
		KeyLoginPrompt: "Indtast din adgangskode",
		KeyLoginFailed: "Adgangskoden matchede ingen på holdet.",
		KeyLogout:      "Log ud",

		KeyRSVPComing:    "Kommer",
		KeyRSVPMaybe:     "Måske",
		KeyRSVPNotComing: "Kan ikke",

		KeyBadgeEarlyBird: "Morgenfugl",
		KeyBadgeChameleon: "Kamæleon",
		KeyBadgeReliable:  "Stabil",
		KeyBadgeIronMan:   "Jernmand",
		KeyBadgesNone:     "Ingen badges endnu",

		KeyLeaderboardPoints:     "Point",
		KeyLeaderboardAttendance: "Træninger",

		KeyGallerySubmit:  "Indsend et billede",
		KeyGalleryPending: "Afventer godkendelse",
	},
}

// T looks up a key for a locale. Unknown locales and missing translations
// fall back to English; an unknown key comes back as the key string itself.
func T(locale Locale, key Key) string {
	if bundle, ok := bundles[locale]; ok {
		if s, ok := bundle[key]; ok {
			return s
		}
	}
	if s, ok := bundles[LocaleEN][key]; ok {
		return s
	}
	return string(key)
}

// BundleFor returns the complete dictionary for a locale with English
// fallbacks already applied, for handing to the UI in one piece.
func BundleFor(locale Locale) Bundle {
	merged := make(Bundle, len(bundles[LocaleEN]))
	for key, s := range bundles[LocaleEN] {
		merged[key] = s
	}
	if locale == LocaleEN {
		return merged
	}
	for key, s := range bundles[locale] {
		merged[key] = s
	}
	return merged
}

// ParseLocale maps a string to a supported locale, defaulting to English.
// The second return reports whether the input named a supported locale.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(s) {
	case LocaleEN, LocaleDA:
		return Locale(s), true
	}
	return LocaleEN, false
}
