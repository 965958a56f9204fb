package database

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	assert.Equal(t, 1, parseOrder("unique"))
	assert.Equal(t, 1, parseOrder("single,order:1"))
	assert.Equal(t, -1, parseOrder("single,order:-1"))
}

func TestParseIndexTag_UniqueSparse(t *testing.T) {
	entries := parseIndexTag("unique,sparse")
	require.Len(t, entries, 1)

	_, hasUnique := entries[0]["unique"]
	_, hasSparse := entries[0]["sparse"]
	assert.True(t, hasUnique)
	assert.True(t, hasSparse)
}

func TestParseIndexTag_MultipleConfigs(t *testing.T) {
	entries := parseIndexTag("unique;compound:name_model_unique")
	require.Len(t, entries, 2)

	_, hasUnique := entries[0]["unique"]
	assert.True(t, hasUnique)
	assert.Equal(t, "name_model_unique", entries[1]["compound"])
}

func TestBsonFieldName(t *testing.T) {
	type sample struct {
		OfferNo int64  `bson:"offerNo"`
		Email   string `bson:"email,omitempty"`
		Skipped string `bson:"-"`
		NoTag   string
	}

	typ := reflect.TypeOf(sample{})

	field, _ := typ.FieldByName("OfferNo")
	assert.Equal(t, "offerNo", bsonFieldName(field))

	field, _ = typ.FieldByName("Email")
	assert.Equal(t, "email", bsonFieldName(field))

	field, _ = typ.FieldByName("Skipped")
	assert.Equal(t, "", bsonFieldName(field))

	field, _ = typ.FieldByName("NoTag")
	assert.Equal(t, "", bsonFieldName(field))
}
