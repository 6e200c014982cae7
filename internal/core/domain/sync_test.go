package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelector_MatchesNames(t *testing.T) {
	sel := Selector{Names: []string{"home.py", "environment.yml"}}

	assert.True(t, sel.Matches("home.py"))
	assert.True(t, sel.Matches("environment.yml"))
	assert.False(t, sel.Matches("src/home.py"))
	assert.False(t, sel.Matches("readme.md"))
}

func TestSelector_MatchesPattern(t *testing.T) {
	sel := Selector{Pattern: `.*\.py$`}

	assert.True(t, sel.Matches("app_utils.py"))
	assert.True(t, sel.Matches("nested/metric_utils.py"))
	assert.False(t, sel.Matches("environment.yml"))
	assert.False(t, sel.Matches("app.pyc"))
}

func TestSelector_EmptyMatchesNothing(t *testing.T) {
	assert.False(t, Selector{}.Matches("home.py"))
}

func TestSelector_InvalidPattern(t *testing.T) {
	sel := Selector{Pattern: `([`}
	assert.Error(t, sel.Compile())
	assert.False(t, sel.Matches("home.py"))
}

func TestSelector_CompileValid(t *testing.T) {
	assert.NoError(t, Selector{Pattern: `.*\.py$`}.Compile())
	assert.NoError(t, Selector{}.Compile())
}
