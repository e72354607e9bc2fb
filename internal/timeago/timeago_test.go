package timeago

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatEnglish(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	labels := ForLocale("en")

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"zero", 0, "just now"},
		{"under a minute", 59 * time.Second, "just now"},
		{"one minute", 60 * time.Second, "1 minutes ago"},
		{"ninety seconds rounds down", 90 * time.Second, "1 minutes ago"},
		{"under an hour", 3599 * time.Second, "59 minutes ago"},
		{"one hour", 3600 * time.Second, "1 hours ago"},
		{"under a day", 86399 * time.Second, "23 hours ago"},
		{"one day", 86400 * time.Second, "1 days ago"},
		{"three and a half days rounds down", 84 * time.Hour, "3 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labels.Format(now, now.Add(-tt.elapsed)))
		})
	}
}

func TestFormatRussian(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	labels := ForLocale("ru")

	assert.Equal(t, "только что", labels.Format(now, now.Add(-30*time.Second)))
	assert.Equal(t, "5 мин назад", labels.Format(now, now.Add(-5*time.Minute)))
	assert.Equal(t, "2 ч назад", labels.Format(now, now.Add(-2*time.Hour)))
	assert.Equal(t, "7 д назад", labels.Format(now, now.Add(-7*24*time.Hour)))
}

func TestForLocaleFallback(t *testing.T) {
	assert.Equal(t, ForLocale("en"), ForLocale("de"))
	assert.Equal(t, ForLocale("en"), ForLocale(""))
}
