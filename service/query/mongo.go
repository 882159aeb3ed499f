// Package query is a thin layer over the mongo driver that adds metrics,
// slow query logging and an optional COLLSCAN guard.
package query

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain"
)

var (
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is returned when a unique index is violated
	ErrDuplicateKey = fmt.Errorf("duplicate key")

	// ErrCollScan is returned for unindexed queries when index checking is on
	ErrCollScan = fmt.Errorf("COLLSCAN is not allowed")
)

// CB is called once per change stream event
type CB func(context ctx.Ctx, raw bson.Raw, resumeToken bson.Raw) error

type Mongo interface {
	// Insert returns ErrDuplicateKey if a unique index is violated
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne returns ErrNotFound when nothing matches
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Search decodes every match into results. limit 0 means no limit.
	// sortFields are applied in order, a "-" prefix sorts descending.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, query, results interface{}, sortFields ...string) error

	// Watch opens a change stream on the table and calls cb for every event
	// until context is done, the stream fails or cb returns an error.
	Watch(context ctx.Ctx, table domain.Table, pipeline interface{}, cb CB) error

	// EnsureIndex creates a single field ascending index
	EnsureIndex(context ctx.Ctx, table domain.Table, field string, unique bool) error
}
