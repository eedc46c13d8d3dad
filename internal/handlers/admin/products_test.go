package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSortOrder(t *testing.T) {
	// Partition vide : premier produit en position 0
	assert.Equal(t, 0, defaultSortOrder(0, true))

	// Partition peuplée : en fin de liste
	assert.Equal(t, 1, defaultSortOrder(0, false))
	assert.Equal(t, 8, defaultSortOrder(7, false))
}
