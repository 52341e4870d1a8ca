package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nkulisa-npc/membership-site/internal/model"
)

func TestNewMember_Normalization(t *testing.T) {
	m := model.NewMember(" Jane Doe ", " Jane@Example.com ", " 0712345678 ", "Gold")

	assert.Equal(t, "Jane Doe", m.FullName)
	assert.Equal(t, "jane@example.com", m.Email)
	assert.Equal(t, "0712345678", m.Phone)
	assert.Equal(t, "Gold", m.Package)
	assert.Zero(t, m.ID)
}

func TestIsValidPackage(t *testing.T) {
	for _, pkg := range model.Packages {
		assert.True(t, model.IsValidPackage(pkg), pkg)
	}

	assert.False(t, model.IsValidPackage("Diamond"))
	assert.False(t, model.IsValidPackage("gold")) // tiers are case-sensitive
	assert.False(t, model.IsValidPackage(""))
}
