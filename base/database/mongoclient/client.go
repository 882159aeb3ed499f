package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/x-xyz/rentableft/base/log"
)

const (
	socketTimeout  = 60 * time.Second
	connectTimeout = 10 * time.Second
)

// Client is a connected mongo client bound to one database
type Client struct {
	DbName string
	*mongo.Client
}

type Config struct {
	Uri        string
	AuthDBName string
	DbName     string
	EnableSSL  bool
	// Majority makes writes wait for a replica set majority
	Majority           bool
	PoolSizeMultiplier float64
}

// MustConnectMongoClient panics if the connection fails
func MustConnectMongoClient(cfg Config) *Client {
	cli, err := ConnectMongoClient(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoURI": cfg.Uri, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

func ConnectMongoClient(cfg Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	logger := log.Log().WithField("dbName", cfg.DbName)
	connSetting, err := connstring.Parse(cfg.Uri)
	if err != nil {
		logger.WithField("err", err).Error("fail to parse connstring")
		return nil, err
	}
	logger = logger.WithField("mongoHosts", connSetting.Hosts)

	clientOpts := options.Client().ApplyURI(cfg.Uri).SetSocketTimeout(socketTimeout).SetRetryWrites(true)

	// connstring without authSource falls back to the configured auth db
	if connSetting.Username != "" && connSetting.AuthSource == "" && cfg.AuthDBName != "" {
		clientOpts.SetAuth(options.Credential{
			AuthMechanism:           connSetting.AuthMechanism,
			AuthMechanismProperties: connSetting.AuthMechanismProperties,
			Username:                connSetting.Username,
			Password:                connSetting.Password,
			PasswordSet:             connSetting.PasswordSet,
			AuthSource:              cfg.AuthDBName,
		})
	}

	if cfg.PoolSizeMultiplier > 0 && len(connSetting.Hosts) > 0 {
		// the pool is per host, so split the total across hosts
		total := int(float64(runtime.NumCPU()) * cfg.PoolSizeMultiplier)
		perHost := (total + len(connSetting.Hosts) - 1) / len(connSetting.Hosts)
		clientOpts.SetMinPoolSize(uint64(perHost / 4))
		clientOpts.SetMaxPoolSize(uint64(perHost))
		logger.WithField("poolSize", perHost).Info("mongo driver pool size")
	}

	if cfg.EnableSSL {
		clientOpts.SetTLSConfig(&tls.Config{})
	}
	if cfg.Majority {
		clientOpts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.WithField("err", err).Error("fail to connect mongo db")
		return nil, err
	}

	if _, err := client.Database(cfg.DbName).ListCollectionNames(ctx, bson.D{}); err != nil {
		logger.WithField("err", err).Error("fail to list collections")
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("mongo connected")
	return &Client{
		Client: client,
		DbName: cfg.DbName,
	}, nil
}

// Database is the configured database handle
func (c *Client) Database() *mongo.Database {
	return c.Client.Database(c.DbName)
}
