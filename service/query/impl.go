package query

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/database/mongoclient"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/base/metrics"
	"github.com/x-xyz/rentableft/domain"
)

const (
	queryMaxTime = 20 * time.Second
)

var (
	timeNow = time.Now
	met     = metrics.New("mongo")
)

type impl struct {
	client     *mongoclient.Client
	checkIndex bool
}

// New initializes an impl
func New(client *mongoclient.Client, checkIndex bool) Mongo {
	return &impl{
		client:     client,
		checkIndex: checkIndex,
	}
}

func (im *impl) logerr(context ctx.Ctx, msg string, err error) {
	if _, ok := err.(topology.ConnectionError); ok {
		met.BumpSum("conn.err", 1.0)
	}
	context.WithFields(log.Fields{"err": err}).Error(msg)
}

func (im *impl) coll(table domain.Table) *mongo.Collection {
	return im.client.Database().Collection(string(table))
}

func (im *impl) Insert(context ctx.Ctx, table domain.Table, insert interface{}) error {
	defer met.BumpTime("time", "func", "insert", "table", string(table)).End()
	defer slowLog(context, string(table), "insert", nil, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":  table,
		"insert": insert,
	})

	if _, err := im.coll(table).InsertOne(context, insert); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(context, "Insert: InsertOne failed", err)
		return err
	}
	return nil
}

func (im *impl) FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error {
	defer met.BumpTime("time", "func", "findone", "table", string(table)).End()
	defer slowLog(context, string(table), "findone", query, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table": table,
		"query": query,
	})

	if err := im.checkQueryIndex(context, string(table), "find", bson.E{Key: "filter", Value: query}); err != nil {
		im.logerr(context, "checkQueryIndex failed", err)
		return err
	}

	findOneOpts := options.FindOne().SetMaxTime(queryMaxTime)
	res := im.coll(table).FindOne(context, query, findOneOpts)
	if err := res.Decode(result); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		im.logerr(context, "FindOne: FindOne error", err)
		return err
	}
	return nil
}

func getSortOption(sortStrings ...string) bson.D {
	res := bson.D{}
	for _, sort := range sortStrings {
		if sort == "" {
			continue
		}
		if sort[0] == '-' {
			res = append(res, bson.E{Key: sort[1:], Value: -1})
		} else {
			res = append(res, bson.E{Key: sort, Value: 1})
		}
	}
	return res
}

func (im *impl) Search(context ctx.Ctx, table domain.Table, offset, limit int, query, results interface{}, sortFields ...string) error {
	defer met.BumpTime("time", "func", "search", "table", string(table)).End()
	defer slowLog(context, string(table), "search", query, sortFields)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table": table,
		"query": query,
	})

	if err := im.checkQueryIndex(context, string(table), "find", bson.E{Key: "filter", Value: query}); err != nil {
		im.logerr(context, "checkQueryIndex failed", err)
		return err
	}

	findOpts := options.Find().SetMaxTime(queryMaxTime).SetSkip(int64(offset))
	// 0 means no limit
	if limit > 0 {
		findOpts.SetLimit(int64(limit))
	}
	if sortOpt := getSortOption(sortFields...); len(sortOpt) > 0 {
		findOpts.SetSort(sortOpt)
	}
	cursor, err := im.coll(table).Find(context, query, findOpts)
	if err != nil {
		im.logerr(context, "Search: Find failed", err)
		return err
	}
	defer cursor.Close(context)

	if err := cursor.All(context, results); err != nil {
		im.logerr(context, "Search: cursor.All failed", err)
		return err
	}
	return nil
}

func (im *impl) Watch(context ctx.Ctx, table domain.Table, pipeline interface{}, cb CB) error {
	context = ctx.WithValue(context, "table", table)
	if pipeline == nil {
		pipeline = mongo.Pipeline{}
	}

	stream, err := im.coll(table).Watch(context, pipeline, options.ChangeStream())
	if err != nil {
		im.logerr(context, "Watch: Watch failed", err)
		return err
	}
	defer stream.Close(ctx.Detach(context))

	for stream.Next(context) {
		met.BumpSum("watch.event", 1, "table", string(table))
		if err := cb(context, stream.Current, stream.ResumeToken()); err != nil {
			return err
		}
	}
	if err := stream.Err(); err != nil && context.Err() == nil {
		im.logerr(context, "Watch: stream.Next failed", err)
		return err
	}
	return context.Err()
}

func (im *impl) EnsureIndex(context ctx.Ctx, table domain.Table, field string, unique bool) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(unique),
	}
	if _, err := im.coll(table).Indexes().CreateOne(context, model); err != nil {
		im.logerr(ctx.WithValues(context, map[string]interface{}{"table": table, "field": field}), "EnsureIndex: CreateOne failed", err)
		return err
	}
	return nil
}

func slowLog(context ctx.Ctx, table, action string, query interface{}, sort interface{}) func() {
	start := timeNow()
	threshold := int64(500)

	return func() {
		elapsed := time.Since(start)
		elapsedMs := elapsed.Nanoseconds() / time.Millisecond.Nanoseconds()
		if elapsedMs >= threshold {
			met.BumpSum("slowlog", 1, "table", table, "action", action)
			context.WithFields(log.Fields{
				"table":        table,
				"action":       action,
				"startTimeStr": start,
				"startTime":    start.Unix(),
				"durationMs":   elapsedMs,
				"query":        query,
				"sort":         sort,
			}).Warn("mongo slowlog")
		}
	}
}

func (im *impl) checkQueryIndex(context ctx.Ctx, table string, action string, query bson.E) error {
	if !im.checkIndex {
		return nil
	}
	// reference: https://docs.mongodb.com/manual/reference/command/explain/
	res := im.client.Database().RunCommand(context, bson.D{
		bson.E{
			Key: "explain",
			Value: bson.D{
				bson.E{Key: action, Value: table},
				query,
			},
		},
		bson.E{
			Key:   "verbosity",
			Value: "queryPlanner",
		},
	})

	var m bson.M
	if err := res.Decode(&m); err != nil {
		context.WithField("err", err).Warn("checkQueryIndex decode failed")
		met.BumpSum("checkQueryIndex.err", float64(1))
		return nil
	}

	// We only check if `COLLSCAN` is in `m` as string since the data structure
	// of `m` is not consistent for all environment. It's quite difficult to use
	// struct to marshal `m`.
	if strings.Contains(fmt.Sprintf("%v", m), "COLLSCAN") {
		context.WithField("query", query).Warn("COLLSCAN")
		return ErrCollScan
	}
	return nil
}
