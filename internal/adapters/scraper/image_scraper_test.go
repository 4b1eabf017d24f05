package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuery(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Delta Electronics VFD4A8MS21ANSAA industrial automation",
		buildQuery("Delta MS300 Series", "Delta Electronics", "VFD4A8MS21ANSAA"))
	assert.Equal(t, "Delta Electronics industrial automation",
		buildQuery("Delta MS300 Series", "Delta Electronics", "  "))
	assert.Equal(t, "Delta MS300 Series industrial automation",
		buildQuery("Delta MS300 Series", "", ""))
}

func TestVqdPattern(t *testing.T) {
	t.Parallel()
	m := vqdPattern.FindStringSubmatch(`window.vqd="4-123456789";`)
	if assert.Len(t, m, 2) {
		assert.Equal(t, "4-123456789", m[1])
	}
}
