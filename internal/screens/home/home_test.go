package home

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/brainquiz/internal/router"
	sessionscreen "github.com/abhisek/brainquiz/internal/screens/session"
	"github.com/abhisek/brainquiz/internal/section"
	"github.com/abhisek/brainquiz/internal/store"
)

func TestHomeListsEverySection(t *testing.T) {
	h := New(sessionscreen.Deps{})

	require.Len(t, h.menu.Items, len(section.All())+2)
	for i, k := range section.All() {
		assert.Equal(t, k.Title(), h.menu.Items[i].Label)
		assert.Equal(t, section.Default(k).Description, h.menu.Items[i].Detail)
	}
	assert.True(t, h.menu.Items[len(section.All())].Disabled, "history needs a store")
	assert.Nil(t, h.Init(), "no store, nothing to load")
}

func TestHomeNumberKeyOpensSection(t *testing.T) {
	h := New(sessionscreen.Deps{})

	_, cmd := h.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, section.All()[2].Title(), push.Screen.Title())
}

func TestHomeShowsBestScores(t *testing.T) {
	h := New(sessionscreen.Deps{})
	h.Update(bestScoresMsg{Scores: map[string]store.BestScore{
		"pemdas": {Section: "pemdas", Score: 70, Sessions: 3, LastPlayed: time.Now()},
	}})

	i := -1
	for j, k := range section.All() {
		if k == section.PEMDAS {
			i = j
		}
	}
	require.GreaterOrEqual(t, i, 0)
	assert.Contains(t, h.menu.Items[i].Detail, "best 70")
	assert.Contains(t, h.View(120, 40), "★ 3 PLAYED")
}

func TestHomeReloadsOnResume(t *testing.T) {
	h := New(sessionscreen.Deps{})
	_, cmd := h.Update(router.ResumedMsg{})
	assert.Nil(t, cmd, "without a store there is nothing to reload")
}
