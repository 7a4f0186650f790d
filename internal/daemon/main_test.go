package daemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crawldesk/crawldesk/internal/breadcrumb"
	"github.com/crawldesk/crawldesk/internal/config"
	"github.com/crawldesk/crawldesk/internal/web/routes"
)

func TestNewNavigation(t *testing.T) {
	nav, err := NewNavigation(&config.Config{Navigation: config.Navigation{Languages: []string{"de", "en"}}})
	require.NoError(t, err)

	assert.Equal(t, len(routes.Default), nav.Table().Len())
	assert.Equal(t, "de", nav.Languages().Default())
}

func TestNewNavigation_Faults(t *testing.T) {
	tests := []struct {
		name string
		nav  config.Navigation
		want error
	}{
		{
			name: "duplicate pattern",
			nav: config.Navigation{Routes: []breadcrumb.Route{
				{Pattern: "/p/:id", Label: "P"},
				{Pattern: "/p/:pid", Label: "Q"},
			}},
			want: breadcrumb.ErrDuplicatePattern,
		},
		{
			name: "bad label",
			nav:  config.Navigation{Routes: []breadcrumb.Route{{Pattern: "/p", Label: "{oops"}}},
			want: breadcrumb.ErrInvalidLabel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNavigation(&config.Config{Navigation: tt.nav})
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewNavigation_BadLanguage(t *testing.T) {
	_, err := NewNavigation(&config.Config{Navigation: config.Navigation{Languages: []string{"not a tag"}}})
	require.Error(t, err)
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}
