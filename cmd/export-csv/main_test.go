package main

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuninghub/pkg/models"
)

func TestWriteCSV(t *testing.T) {
	price := 1250.5
	crawled := map[string][]models.CanonicalProduct{
		"spoiler": {
			{ID: "drstuning_1", Name: "Golf, Spoiler", Source: "DRS Tuning", ProductURL: "https://x/urun/1", ImageURL: "https://x/1.jpg", OutOfStock: true, Price: &price},
		},
		"dis-aksesuarlar/pacalik": {
			{ID: "drstuning_2", Name: "Paçalık", Source: "DRS Tuning"},
		},
	}

	var buf bytes.Buffer
	err := writeCSV(&buf, []string{"spoiler", "dis-aksesuarlar/pacalik", "empty"}, func(path string) []models.CanonicalProduct {
		return crawled[path]
	})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, header, rows[0])
	assert.Equal(t, []string{"spoiler", "drstuning_1", "Golf, Spoiler", "DRS Tuning", "https://x/urun/1", "https://x/1.jpg", "true", "1250.50"}, rows[1])
	assert.Equal(t, "dis-aksesuarlar/pacalik", rows[2][0])
	assert.Equal(t, "", rows[2][7])
}

func TestSplitPaths(t *testing.T) {
	assert.Equal(t, []string{"a/b", "c"}, splitPaths(" a/b/ , ,c"))
	assert.Nil(t, splitPaths(""))
}
