package chart_test

import (
	"testing"

	"github.com/SscSPs/ohada_ledger/internal/chart"
	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := chart.Default()
	require.NoError(t, err)
	assert.Equal(t, "SYSCOHADA", c.Name)
	assert.Len(t, c.Classes, 9)

	byNumber := make(map[string]domain.Account)
	for _, a := range c.Accounts() {
		byNumber[a.Number] = a
	}
	for _, number := range []string{"101", "401", "411", "4431", "4452", "521", "571", "601", "701"} {
		acc, ok := byNumber[number]
		require.True(t, ok, "missing account %s", number)
		assert.Equal(t, chart.ClassOf(number), acc.Class)
		assert.True(t, acc.IsActive)
	}
	assert.Equal(t, "Clients", byNumber["411"].Label)
}

func TestClassName(t *testing.T) {
	assert.Equal(t, "Comptes de trésorerie", chart.ClassName(domain.ClassTreasury))
	assert.Equal(t, "", chart.ClassName(domain.AccountClass(0)))
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "wrong class", yaml: "name: t\nclasses:\n  - class: 4\n    name: Tiers\n    accounts:\n      - { number: \"521\", label: Banque }\n"},
		{name: "class out of range", yaml: "name: t\nclasses:\n  - class: 10\n    name: Bad\n"},
		{name: "duplicate", yaml: "name: t\nclasses:\n  - class: 4\n    name: Tiers\n    accounts:\n      - { number: \"411\", label: A }\n      - { number: \"411\", label: B }\n"},
		{name: "not yaml", yaml: "classes: [unterminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := chart.Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
