package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadProducts(t *testing.T) {
	in := `Name,Category,Description,Image_URL,Price,Features
Atölye Spoiler,body-kit-urunleri/spoiler/,Fiber,/uploads/s.jpg,"1.250,50",Boyasız | Montaj dahil
,spoiler,no name,,,
Paçalık,dis-aksesuarlar/pacalik,,,99.9,
Missing Category,,,,,
`
	items, err := readProducts(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Atölye Spoiler", items[0].Name)
	assert.Equal(t, "body-kit-urunleri/spoiler", items[0].Category)
	assert.Equal(t, "/uploads/s.jpg", items[0].ImageURL)
	require.NotNil(t, items[0].Price)
	assert.InDelta(t, 1250.5, *items[0].Price, 0.001)
	assert.Equal(t, []string{"Boyasız", "Montaj dahil"}, items[0].Features)

	require.NotNil(t, items[1].Price)
	assert.InDelta(t, 99.9, *items[1].Price, 0.001)
	assert.Nil(t, items[1].Features)
}

func TestReadProductsBadPrice(t *testing.T) {
	_, err := readProducts(strings.NewReader("name,category,price\nX,spoiler,abc\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestParsePrice(t *testing.T) {
	p, err := parsePrice("")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = parsePrice("12.5")
	require.NoError(t, err)
	assert.Equal(t, 12.5, *p)
}
