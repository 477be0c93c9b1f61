package i18n_test

import (
	"testing"

	"github.com/askelund/huddle/internal/i18n"
	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	t.Run("danish lookup", func(t *testing.T) {
		assert.Equal(t, "Rangliste", i18n.T(i18n.LocaleDA, i18n.KeyNavLeaderboard))
	})

	t.Run("english lookup", func(t *testing.T) {
		assert.Equal(t, "Leaderboard", i18n.T(i18n.LocaleEN, i18n.KeyNavLeaderboard))
	})

	t.Run("unknown locale falls back to english", func(t *testing.T) {
		assert.Equal(t, "Leaderboard", i18n.T(i18n.Locale("sv"), i18n.KeyNavLeaderboard))
	})

	t.Run("unknown key comes back verbatim", func(t *testing.T) {
		assert.Equal(t, "nav.missing", i18n.T(i18n.LocaleDA, i18n.Key("nav.missing")))
	})
}

func TestBundleFor(t *testing.T) {
	t.Run("danish bundle covers every english key", func(t *testing.T) {
		en := i18n.BundleFor(i18n.LocaleEN)
		da := i18n.BundleFor(i18n.LocaleDA)
		assert.Len(t, da, len(en))
		assert.Equal(t, "Rangliste", da[i18n.KeyNavLeaderboard])
	})

	t.Run("unknown locale falls back to english wholesale", func(t *testing.T) {
		sv := i18n.BundleFor(i18n.Locale("sv"))
		assert.Equal(t, "Leaderboard", sv[i18n.KeyNavLeaderboard])
	})
}

func TestParseLocale(t *testing.T) {
	cases := []struct {
		input string
		want  i18n.Locale
		known bool
	}{
		{"da", i18n.LocaleDA, true},
		{"en", i18n.LocaleEN, true},
		{"", i18n.LocaleEN, false},
		{"de", i18n.LocaleEN, false},
	}
	for _, tc := range cases {
		locale, known := i18n.ParseLocale(tc.input)
		assert.Equal(t, tc.want, locale, tc.input)
		assert.Equal(t, tc.known, known, tc.input)
	}
}
