package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/rentableft/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type selector struct {
		IsAvailable *bool   `bson:"is_available,omitempty"`
		Category    *string `bson:"category,omitempty"`
		Seller      string  `bson:"seller_address"`
		Title       string  `bson:"title"`
		ignored     string
	}

	s := &selector{
		IsAvailable: ptr.Bool(false),
		Title:       "Sword",
		ignored:     "x",
	}

	m, err := MakeBsonM(s)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			// a set pointer survives even when it points at a zero value
			"is_available": false,
			"title":        "Sword",
		},
		m,
	)
}
