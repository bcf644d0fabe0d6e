package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicesCatalogue(t *testing.T) {
	all := Services()
	require.Len(t, all, 7)

	// Ordered and fully populated.
	assert.Equal(t, "digital-automation", all[0].Slug)
	assert.Equal(t, "performance-marketing", all[6].Slug)
	for _, s := range all {
		assert.NotEmpty(t, s.Title, s.Slug)
		assert.NotEmpty(t, s.LongDescription, s.Slug)
		assert.Len(t, s.Features, 6, s.Slug)
		assert.Len(t, s.Benefits, 6, s.Slug)
		assert.Len(t, s.Process, 4, s.Slug)
	}
}

func TestServiceBySlug(t *testing.T) {
	s, ok := ServiceBySlug("kol-endorsement")
	require.True(t, ok)
	assert.Equal(t, "KOL Endorsement", s.Title)

	_, ok = ServiceBySlug("nonexistent")
	assert.False(t, ok)
}

func TestCaseStudies(t *testing.T) {
	all := CaseStudies()
	require.Len(t, all, 3)

	cs, ok := CaseStudyByID("brand-transformation")
	require.True(t, ok)
	assert.Equal(t, "FreshStart Foods", cs.ClientName)
	assert.Len(t, cs.Results, 3)

	_, ok = CaseStudyByID("missing")
	assert.False(t, ok)

	// Every case study references a real service.
	for _, cs := range all {
		_, ok := ServiceBySlug(cs.Category)
		assert.True(t, ok, "category %q", cs.Category)
	}
}

func TestCaseStudiesByCategory(t *testing.T) {
	matched := CaseStudiesByCategory("branding")
	require.Len(t, matched, 1)
	assert.Equal(t, "brand-transformation", matched[0].ID)

	assert.Empty(t, CaseStudiesByCategory("it-systems"))
}

func TestWorkCards(t *testing.T) {
	cards := WorkCards()
	require.Len(t, cards, 3)
	for _, c := range cards {
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Image)
	}
}
