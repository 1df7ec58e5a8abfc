package dash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigil/internal/config"
)

func TestThemeCarouselMatchesConfigNames(t *testing.T) {
	require.Equal(t, len(config.Themes), ThemeCount())
	for i, name := range config.Themes {
		assert.Equal(t, name, ThemeByIndex(i).Name)
	}
}

func TestThemeByIndexWraps(t *testing.T) {
	assert.Equal(t, ThemeByIndex(0).Name, ThemeByIndex(ThemeCount()).Name)
	assert.Equal(t, ThemeByIndex(ThemeCount()-1).Name, ThemeByIndex(-1).Name)
}

func TestThemeIndexByName(t *testing.T) {
	assert.Equal(t, 1, ThemeIndexByName("dracula"))
	assert.Equal(t, 0, ThemeIndexByName("default"))
	assert.Equal(t, 0, ThemeIndexByName("no-such-theme"))
}

func TestOneDarkInCarousel(t *testing.T) {
	idx := ThemeIndexByName("onedark")

	require.NotZero(t, idx)
	assert.True(t, config.IsKnownTheme("onedark"))
	assert.Equal(t, "onedark", ThemeByIndex(idx).Name)
}

func TestMetricColorThresholds(t *testing.T) {
	theme := ThemeByIndex(0)

	assert.Equal(t, theme.Healthy, theme.MetricColor(10))
	assert.Equal(t, theme.Warning, theme.MetricColor(70))
	assert.Equal(t, theme.Critical, theme.MetricColor(95))
}
