// Package chart provides the SYSCOHADA chart of accounts shipped with the binary.
package chart

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/SscSPs/ohada_ledger/internal/core/domain"
	"gopkg.in/yaml.v3"
)

//go:embed syscohada.yaml
var syscohadaYAML []byte

// Entry is one account of the chart.
type Entry struct {
	Number string `yaml:"number"`
	Label  string `yaml:"label"`
}

// Class groups the accounts sharing a first digit.
type Class struct {
	Class    domain.AccountClass `yaml:"class"`
	Name     string              `yaml:"name"`
	Accounts []Entry             `yaml:"accounts"`
}

// Chart is a parsed chart of accounts.
type Chart struct {
	Name    string  `yaml:"name"`
	Classes []Class `yaml:"classes"`
}

var (
	defaultOnce  sync.Once
	defaultChart *Chart
	defaultErr   error
)

// Default returns the embedded SYSCOHADA chart. It is parsed once.
func Default() (*Chart, error) {
	defaultOnce.Do(func() {
		defaultChart, defaultErr = Parse(syscohadaYAML)
	})
	return defaultChart, defaultErr
}

// Parse decodes a chart and checks that every account belongs to its class.
func Parse(data []byte) (*Chart, error) {
	var c Chart
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse chart of accounts: %w", err)
	}
	seen := make(map[string]struct{})
	for _, cl := range c.Classes {
		if !cl.Class.Valid() {
			return nil, fmt.Errorf("chart %s: invalid class %d", c.Name, cl.Class)
		}
		for _, a := range cl.Accounts {
			if got := domain.ClassOfNumber(a.Number); got != cl.Class {
				return nil, fmt.Errorf("chart %s: account %s listed under class %d", c.Name, a.Number, cl.Class)
			}
			if _, dup := seen[a.Number]; dup {
				return nil, fmt.Errorf("chart %s: duplicate account %s", c.Name, a.Number)
			}
			seen[a.Number] = struct{}{}
		}
	}
	return &c, nil
}

// Accounts flattens the chart into domain accounts, all active.
func (c *Chart) Accounts() []domain.Account {
	var out []domain.Account
	for _, cl := range c.Classes {
		for _, a := range cl.Accounts {
			out = append(out, domain.Account{
				Number:   a.Number,
				Label:    a.Label,
				Class:    cl.Class,
				IsActive: true,
			})
		}
	}
	return out
}

// ClassName returns the label of class, or "" when the chart does not define it.
func (c *Chart) ClassName(class domain.AccountClass) string {
	for _, cl := range c.Classes {
		if cl.Class == class {
			return cl.Name
		}
	}
	return ""
}

// ClassOf returns the class of an account number.
func ClassOf(number string) domain.AccountClass {
	return domain.ClassOfNumber(number)
}

// ClassName returns the label of class in the default chart.
func ClassName(class domain.AccountClass) string {
	c, err := Default()
	if err != nil {
		return ""
	}
	return c.ClassName(class)
}
