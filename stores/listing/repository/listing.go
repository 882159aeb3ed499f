package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/xerrors"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/database/mongoclient"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/base/ptr"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/listing"
	"github.com/x-xyz/rentableft/service/query"
)

type listingImpl struct {
	q query.Mongo
}

func NewListing(q query.Mongo) listing.ListingRepo {
	return &listingImpl{q}
}

type selector struct {
	IsAvailable *bool `bson:"is_available"`
}

// makeQuery builds the mongo filter for the marketplace view
func makeQuery(filter listing.Filter) (bson.M, error) {
	qry, err := mongoclient.MakeBsonM(&selector{IsAvailable: ptr.Bool(true)})
	if err != nil {
		return nil, err
	}

	if filter.Search != "" {
		qry["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
	}
	if filter.Category != "" && filter.Category != listing.CategoryAll {
		qry["category"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(filter.Category) + "$", Options: "i"}
	}

	switch filter.Price {
	case "", listing.PriceBandAll:
	case listing.PriceBandLow:
		qry["price"] = bson.M{"$lt": listing.PriceMediumFrom}
	case listing.PriceBandMedium:
		qry["price"] = bson.M{"$gte": listing.PriceMediumFrom, "$lt": listing.PriceHighFrom}
	case listing.PriceBandHigh:
		qry["price"] = bson.M{"$gte": listing.PriceHighFrom}
	default:
		return nil, xerrors.Errorf("unknown price band %q: %w", filter.Price, domain.ErrBadParamInput)
	}
	return qry, nil
}

func (im *listingImpl) FindAvailable(c ctx.Ctx, filter listing.Filter) ([]*listing.Listing, error) {
	qry, err := makeQuery(filter)
	if err != nil {
		c.WithFields(log.Fields{
			"filter": filter,
			"err":    err,
		}).Warn("makeQuery failed")
		return nil, err
	}

	res := []*listing.Listing{}
	if err := im.q.Search(c, domain.TableListings, 0, 0, qry, &res, "-created_at"); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *listingImpl) FindOne(c ctx.Ctx, nftId string) (*listing.Listing, error) {
	res := &listing.Listing{}
	if err := im.q.FindOne(c, domain.TableListings, bson.M{"nft_id": nftId}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"nftId": nftId,
			"err":   err,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *listingImpl) Create(c ctx.Ctx, l *listing.Listing) error {
	if err := im.q.Insert(c, domain.TableListings, l); err == query.ErrDuplicateKey {
		return xerrors.Errorf("listing %s: %w", l.NftId, domain.ErrConflict)
	} else if err != nil {
		c.WithFields(log.Fields{
			"nftId": l.NftId,
			"err":   err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

// watched operation types of the change stream
var watchPipeline = mongo.Pipeline{
	{{Key: "$match", Value: bson.M{
		"operationType": bson.M{"$in": bson.A{"insert", "update", "replace", "delete"}},
	}}},
}

func (im *listingImpl) Watch(c ctx.Ctx, onChange func(c ctx.Ctx) error) error {
	return im.q.Watch(c, domain.TableListings, watchPipeline, func(c ctx.Ctx, raw bson.Raw, _ bson.Raw) error {
		op, _ := raw.Lookup("operationType").StringValueOK()
		return onChange(ctx.WithValue(c, "op", op))
	})
}
