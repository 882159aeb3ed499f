package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/database/mongoclient"
	"github.com/x-xyz/rentableft/base/database/redisclient"
	"github.com/x-xyz/rentableft/base/log"
	bValidator "github.com/x-xyz/rentableft/base/validator"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/keys"
	"github.com/x-xyz/rentableft/domain/scan"
	"github.com/x-xyz/rentableft/domain/upload"
	mmiddleware "github.com/x-xyz/rentableft/middleware"
	"github.com/x-xyz/rentableft/service/cache"
	"github.com/x-xyz/rentableft/service/cache/provider"
	"github.com/x-xyz/rentableft/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/rentableft/service/cache/provider/redis"
	"github.com/x-xyz/rentableft/service/chain"
	"github.com/x-xyz/rentableft/service/chain/contract"
	"github.com/x-xyz/rentableft/service/pinata"
	"github.com/x-xyz/rentableft/service/query"

	auth_delivery "github.com/x-xyz/rentableft/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/rentableft/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/rentableft/stores/auth/usecase"
	listing_delivery "github.com/x-xyz/rentableft/stores/listing/delivery/http"
	listing_repository "github.com/x-xyz/rentableft/stores/listing/repository"
	listing_usecase "github.com/x-xyz/rentableft/stores/listing/usecase"
	metadata_usecase "github.com/x-xyz/rentableft/stores/metadata/usecase"
	scan_delivery "github.com/x-xyz/rentableft/stores/scan/delivery/http"
	scan_usecase "github.com/x-xyz/rentableft/stores/scan/usecase"
	transaction_delivery "github.com/x-xyz/rentableft/stores/transaction/delivery/http"
	transaction_usecase "github.com/x-xyz/rentableft/stores/transaction/usecase"
	upload_delivery "github.com/x-xyz/rentableft/stores/upload/delivery/http"
	upload_repository "github.com/x-xyz/rentableft/stores/upload/repository"
	upload_usecase "github.com/x-xyz/rentableft/stores/upload/usecase"
	wallet_delivery "github.com/x-xyz/rentableft/stores/wallet/delivery/http"
	wallet_usecase "github.com/x-xyz/rentableft/stores/wallet/usecase"
	webresource_repository "github.com/x-xyz/rentableft/stores/web_resource/repository"
	webresource_usecase "github.com/x-xyz/rentableft/stores/web_resource/usecase"
)

const streamPath = "/listings/stream"

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			RentableFT API
//	@version		1.0
//	@description	NFT marketplace with wallet scanning, listings and simulated buy / rent.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrieve token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		// gzip buffers the body which breaks event streaming
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, streamPath)
		},
	}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware(viper.GetString("server.allowOrigin"))
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
		Uri:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DbName:             viper.GetString("mongo.dbName"),
		EnableSSL:          viper.GetBool("mongo.enableSSL"),
		Majority:           true,
		PoolSizeMultiplier: 2,
	})
	q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))
	if err := q.EnsureIndex(context, domain.TableListings, "nft_id", true); err != nil {
		context.WithField("err", err).Warn("ensure listings index failed")
	}

	// init cache
	cacheProvider := mustCacheProvider(context)
	nonceCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("auth.nonceTtl"),
		Pfx:   keys.PfxNonce,
		Cache: cacheProvider,
	})
	balanceCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("wallet.balanceTtl"),
		Pfx:   keys.PfxBalance,
		Cache: cacheProvider,
	})
	httpCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("http.cacheTtl"),
		Pfx:   keys.PfxHttpCache,
		Cache: cacheProvider,
	})
	cacheMiddleware := mmiddleware.CacheHttp(httpCache)

	// init chain service
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:        networkRpcUrls(),
		MaxConcurrency: viper.GetInt("chain.maxConcurrency"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	erc721Service := contract.NewErc721(chainService)

	// metadata resolution
	httpReader := webresource_repository.NewHttpReaderRepo(&http.Client{}, viper.GetDuration("http.timeout"), nil)
	dataUriReader := webresource_repository.NewDataUriReaderRepo()
	webResource := webresource_usecase.NewWebResourceUseCase(&webresource_usecase.WebResourceUseCaseCfg{
		HttpReader:    httpReader,
		DataUriReader: dataUriReader,
	})
	resolver, err := metadata_usecase.NewResolver(&metadata_usecase.ResolverCfg{
		Gateways:      viper.GetStringSlice("ipfs.gateways"),
		CtxTimeout:    viper.GetDuration("metadata.timeout"),
		WebResourceUC: webResource,
	})
	if err != nil {
		context.WithField("err", err).Panic("NewResolver failed")
	}

	// scan
	scanCfg := scan.Config{}
	if err := viper.UnmarshalKey("scan", &scanCfg); err != nil {
		context.WithField("err", err).Panic("invalid scan config")
	}
	orchestrator := scan_usecase.NewOrchestrator(&scanCfg, erc721Service, resolver)
	workerPool := goroutines.NewPool(
		viper.GetInt("worker.size"),
		goroutines.WithTaskQueueLength(viper.GetInt("worker.queue")),
	)
	defer workerPool.Release()
	scanRegistry := scan_usecase.NewRegistry(&scan_usecase.RegistryCfg{
		Orchestrator:    orchestrator,
		WorkerPool:      workerPool,
		ScheduleTimeout: viper.GetDuration("scan.scheduleTimeout"),
		IdleTtl:         viper.GetDuration("auth.tokenTtl"),
	})

	// construct repository, usecase and delivery
	listingRepo := listing_repository.NewListing(q)
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo: listingRepo,
	})

	auth := auth_usecase.New(&auth_usecase.Config{
		JwtSecret:          viper.GetString("auth.jwtSecret"),
		SigningMsgTemplate: viper.GetString("auth.signatureMsg"),
		TokenTtl:           viper.GetDuration("auth.tokenTtl"),
		NonceCache:         nonceCache,
		Scan:               scanRegistry,
	})
	authMiddleware := auth_middleware.New(auth)

	networkCfg := wallet_usecase.NetworkCfg{}
	if err := viper.UnmarshalKey("wallet.network", &networkCfg); err != nil {
		context.WithField("err", err).Panic("invalid wallet network config")
	}
	wallet := wallet_usecase.New(&wallet_usecase.WalletUseCaseCfg{
		Chain:        chainService,
		BalanceCache: balanceCache,
		Network:      networkCfg,
	})

	transaction := transaction_usecase.New(&transaction_usecase.TransactionUseCaseCfg{
		Delay:    viper.GetDuration("transaction.delay"),
		Currency: viper.GetString("transaction.currency"),
	})

	uploader := upload_usecase.New(&upload_usecase.UploadUseCaseCfg{
		Pinner:   mustPinner(context),
		Resolver: resolver,
		MaxSize:  viper.GetInt64("upload.maxSize"),
	})

	auth_delivery.New(e, auth, authMiddleware)
	scan_delivery.New(e, scanRegistry, authMiddleware)
	listing_delivery.New(e, listing, authMiddleware, cacheMiddleware)
	wallet_delivery.New(e, wallet, networkCfg.ChainId, authMiddleware, cacheMiddleware)
	transaction_delivery.New(e, transaction, authMiddleware)
	upload_delivery.New(e, uploader, authMiddleware)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()
	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

func networkRpcUrls() map[domain.ChainId]string {
	networks := viper.Sub("networks")
	rpcs := make(map[domain.ChainId]string)
	if networks == nil {
		return rpcs
	}
	for k := range networks.AllSettings() {
		chainId := domain.ChainId(networks.GetInt32(fmt.Sprintf("%s.chainId", k)))
		rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
	}
	return rpcs
}

func mustCacheProvider(c ctx.Ctx) provider.Provider {
	switch name := viper.GetString("cache.provider"); name {
	case "redis":
		c.Info("init redis cache")
		pool := redisclient.MustConnectRedis(
			viper.GetString("redis_cache.uri"),
			viper.GetString("redis_cache.password"),
			redisclient.RedisParam{
				PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
				Retries:        3,
			},
		)
		return redisProvider.NewRedis(pool)
	case "", "primitive":
		c.Info("init in-process cache")
		return primitive.NewPrimitive(viper.GetString("app_name"), viper.GetInt("cache.sizeMB"))
	default:
		c.WithField("provider", name).Panic("unknown cache provider")
		return nil
	}
}

func mustPinner(c ctx.Ctx) upload.Pinner {
	switch p := upload.Provider(viper.GetString("upload.provider")); p {
	case upload.ProviderNode:
		return upload_repository.NewNodePinner(viper.GetString("upload.nodeUrl"), viper.GetDuration("upload.timeout"))
	case upload.ProviderPinata, "":
		cfg := pinata.Config{}
		if err := viper.UnmarshalKey("pinata", &cfg); err != nil {
			c.WithField("err", err).Panic("invalid pinata config")
		}
		return pinata.New(cfg)
	default:
		c.WithField("provider", p).Panic("unknown upload provider")
		return nil
	}
}
