package featureflags

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearch_EnabledByDefault(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	// Should fall back to Defaults when env var not set
	assert.True(t, manager.IsEnabled(ctx, SearchEnabled))
}

func TestSearch_DisabledWhenFlagSet(t *testing.T) {
	os.Setenv("TEST_FEATURE_SEARCH_ENABLED", "false")
	defer os.Unsetenv("TEST_FEATURE_SEARCH_ENABLED")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.False(t, manager.IsEnabled(ctx, SearchEnabled))
}

func TestEnvManager_MultipleValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"ENABLED", "ENABLED", true},
		{"false", "false", false},
		{"0", "0", false},
		{"other", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_FLAG", tt.value)
			defer os.Unsetenv("TEST_FLAG")

			manager := NewEnvManager("TEST_")
			ctx := context.Background()

			assert.Equal(t, tt.expected, manager.IsEnabled(ctx, "FLAG"))
		})
	}
}

func TestEnvManager_UnknownFlagDisabled(t *testing.T) {
	manager := NewEnvManager("TEST_NONE_")

	assert.False(t, manager.IsEnabled(context.Background(), "unknown_flag"))
}

func TestEnvManager_SetEnabled(t *testing.T) {
	manager := NewEnvManager("TEST_")
	ctx := context.Background()

	manager.SetEnabled(SearchEnabled, false)
	assert.False(t, manager.IsEnabled(ctx, SearchEnabled))

	manager.SetEnabled(SearchEnabled, true)
	assert.True(t, manager.IsEnabled(ctx, SearchEnabled))
}

func TestEnvManager_OverrideTakesPrecedence(t *testing.T) {
	os.Setenv("TEST_FEATURE_RATE_LIMIT_ENABLED", "true")
	defer os.Unsetenv("TEST_FEATURE_RATE_LIMIT_ENABLED")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, RateLimitEnabled))

	manager.SetEnabled(RateLimitEnabled, false)

	assert.False(t, manager.IsEnabled(ctx, RateLimitEnabled))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	os.Setenv("TEST_ALL_SUBJECT_TOOLS_ENABLED", "0")
	defer os.Unsetenv("TEST_ALL_SUBJECT_TOOLS_ENABLED")

	manager := NewEnvManager("TEST_ALL_")

	assert.Equal(t, map[FeatureFlag]bool{
		SearchEnabled:       true,
		SubjectToolsEnabled: false,
		ProjectLinksEnabled: true,
		RateLimitEnabled:    true,
	}, manager.GetAllFlags())
}

func TestStaticManager(t *testing.T) {
	flags := map[FeatureFlag]bool{
		SearchEnabled:       true,
		SubjectToolsEnabled: false,
	}

	manager := NewStaticManager(flags)
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, SearchEnabled))
	assert.False(t, manager.IsEnabled(ctx, SubjectToolsEnabled))
	assert.False(t, manager.IsEnabled(ctx, ProjectLinksEnabled)) // Not in initial map
}

func TestStaticManager_SetEnabled(t *testing.T) {
	manager := NewStaticManager(nil)
	ctx := context.Background()

	assert.False(t, manager.IsEnabled(ctx, RateLimitEnabled))

	manager.SetEnabled(RateLimitEnabled, true)
	assert.True(t, manager.IsEnabled(ctx, RateLimitEnabled))
}

func TestStaticManager_GetAllFlags(t *testing.T) {
	flags := map[FeatureFlag]bool{
		SearchEnabled:       true,
		SubjectToolsEnabled: false,
		ProjectLinksEnabled: true,
		RateLimitEnabled:    false,
	}

	manager := NewStaticManager(flags)

	assert.Equal(t, flags, manager.GetAllFlags())
}

func TestContextIntegration(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{
		SearchEnabled: true,
	})

	ctx := WithManager(context.Background(), manager)

	assert.True(t, IsEnabled(ctx, SearchEnabled))
	assert.False(t, IsEnabled(ctx, ProjectLinksEnabled))
}

func TestFromContext_DefaultManager(t *testing.T) {
	ctx := context.Background()

	// Without manager in context, defaults apply
	assert.True(t, IsEnabled(ctx, SearchEnabled))
	assert.True(t, IsEnabled(ctx, RateLimitEnabled))
	assert.False(t, IsEnabled(ctx, FeatureFlag("unknown")))

	// The returned manager is a copy of the defaults
	FromContext(ctx).SetEnabled(SearchEnabled, false)
	assert.True(t, Defaults[SearchEnabled])
}

func TestConcurrentAccess(t *testing.T) {
	manager := NewStaticManager(nil)
	ctx := context.Background()

	done := make(chan bool)

	// Writers
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				manager.SetEnabled(SearchEnabled, j%2 == 0)
			}
			done <- true
		}()
	}

	// Readers
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = manager.IsEnabled(ctx, SearchEnabled)
			}
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestFeatureFlagNames(t *testing.T) {
	assert.Equal(t, FeatureFlag("search_enabled"), SearchEnabled)
	assert.Equal(t, FeatureFlag("subject_tools_enabled"), SubjectToolsEnabled)
	assert.Equal(t, FeatureFlag("project_links_enabled"), ProjectLinksEnabled)
	assert.Equal(t, FeatureFlag("rate_limit_enabled"), RateLimitEnabled)
}
