package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

// Tên field trong document phải khớp với dữ liệu đang có trong database
func TestPackage_BsonFieldNames(t *testing.T) {
	pkg := Package{
		Name:        "Vinterpakke",
		Description: "Komplett vinterpakke",
		MarkeModels: []MarkeModel{{Marke: "Volvo", Model: "XC60"}},
		Discount:    10,
		Price:       4990,
		EndDate:     1735689600000,
		Image:       "data:image/png;base64,aGVsbG8=",
		Include:     []string{"Dekkskift", "Vask"},
		Info:        "Gjelder ut sesongen",
	}

	raw, err := bson.Marshal(pkg)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.Contains(t, doc, "endDate")
	assert.Contains(t, doc, "include")
	assert.Contains(t, doc, "markeModels")
	assert.NotContains(t, doc, "expiry")
	assert.NotContains(t, doc, "included")
}

// Thứ tự các cặp (marke, model) phải được giữ nguyên qua round-trip
func TestPackage_MarkeModelOrderPreserved(t *testing.T) {
	pkg := Package{
		Name:  "Flerbilspakke",
		Price: 1000,
		MarkeModels: []MarkeModel{
			{Marke: "Audi", Model: "A4"},
			{Marke: "BMW", Model: "X3"},
			{Marke: "Volvo", Model: "V90"},
		},
		Include: []string{"Service"},
	}

	raw, err := bson.Marshal(pkg)
	require.NoError(t, err)

	var decoded Package
	require.NoError(t, bson.Unmarshal(raw, &decoded))

	require.Len(t, decoded.MarkeModels, 3)
	assert.Equal(t, pkg.MarkeModels, decoded.MarkeModels)
	assert.Equal(t, []string{"Service"}, decoded.Include)
}

// Options là dữ liệu tự do, round-trip không được làm mất key nào
func TestOptionPackage_OptionsRoundTrip(t *testing.T) {
	optionPackage := OptionPackage{
		Name: "Hengerfeste",
		MarkeModels: []MarkeModel{
			{Marke: "Skoda", Model: "Octavia"},
		},
		Info: "Montering inkludert",
		Options: []OptionEntry{
			{"name": "Fast hengerfeste", "price": int32(8500)},
			{"name": "Svingbart hengerfeste", "price": int32(12500), "note": "4 ukers leveringstid"},
		},
	}

	raw, err := bson.Marshal(optionPackage)
	require.NoError(t, err)

	var decoded OptionPackage
	require.NoError(t, bson.Unmarshal(raw, &decoded))

	require.Len(t, decoded.Options, 2)
	assert.Equal(t, "Fast hengerfeste", decoded.Options[0]["name"])
	assert.Equal(t, "4 ukers leveringstid", decoded.Options[1]["note"])
}
