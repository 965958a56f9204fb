package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleModel struct {
	Name   string `bson:"name"`
	Model  string `bson:"model"`
	Active bool   `bson:"active"`
	Secret string `bson:"-"`
}

type sampleInput struct {
	Name  string `bson:"name"`
	Model string `bson:"model,omitempty"`
}

func TestToMap_UsesBsonTags(t *testing.T) {
	m, err := ToMap(sampleModel{Name: "Dekkskift", Model: "XC60", Active: true, Secret: "skip"})
	require.NoError(t, err)

	assert.Equal(t, "Dekkskift", m["name"])
	assert.Equal(t, "XC60", m["model"])
	assert.Equal(t, true, m["active"])
	assert.NotContains(t, m, "Secret")
	assert.NotContains(t, m, "secret")
}

func TestToMap_OmitEmpty(t *testing.T) {
	m, err := ToMap(sampleInput{Name: "Dekkskift"})
	require.NoError(t, err)

	assert.Equal(t, "Dekkskift", m["name"])
	assert.NotContains(t, m, "model")
}

func TestToStruct_FromInput(t *testing.T) {
	input := sampleInput{Name: "Dekkskift", Model: "XC60"}

	var model sampleModel
	require.NoError(t, ToStruct(input, &model))

	assert.Equal(t, "Dekkskift", model.Name)
	assert.Equal(t, "XC60", model.Model)
	assert.False(t, model.Active)
}

func TestToStruct_FromMap(t *testing.T) {
	src := map[string]interface{}{"name": "Vask", "model": "A4", "active": true}

	var model sampleModel
	require.NoError(t, ToStruct(src, &model))

	assert.Equal(t, "Vask", model.Name)
	assert.Equal(t, "A4", model.Model)
	assert.True(t, model.Active)
}
