package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuninghub/pkg/utils"
)

func TestNewAggregatorFromConfig(t *testing.T) {
	a := NewAggregatorFromConfig(utils.AppConfig{
		UpstreamBase:      "http://localhost:9000/",
		FetchTimeout:      3 * time.Second,
		AggregateTimeout:  20 * time.Second,
		MaxPages:          7,
		MaxProducts:       40,
		UpstreamRPS:       5,
		SourceConcurrency: 2,
		SiteBase:          "https://tuninghub.example",
	})

	assert.Equal(t, "http://localhost:9000", a.Resolver.Base)
	assert.Equal(t, 20*time.Second, a.MaxDuration)
	assert.Equal(t, 7, a.MaxPages)
	assert.Equal(t, 40, a.MaxProducts)
	assert.Equal(t, 2, a.Concurrency)
	require.NotNil(t, a.LocalBase)
	assert.Equal(t, "https://tuninghub.example", a.LocalBase.String())

	f, ok := a.Fetcher.(*HTTPFetcher)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, f.Client.Timeout)
}

func TestNewAggregatorFromConfigRejectsRelativeSiteBase(t *testing.T) {
	a := NewAggregatorFromConfig(utils.AppConfig{UpstreamBase: "http://localhost:9000", SiteBase: "/uploads"})
	assert.Nil(t, a.LocalBase)
}
