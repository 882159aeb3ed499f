package main

import (
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/base/validator"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/scan"
	"github.com/x-xyz/rentableft/domain/session"
	"github.com/x-xyz/rentableft/service/chain"
	"github.com/x-xyz/rentableft/service/chain/contract"
	metadata_usecase "github.com/x-xyz/rentableft/stores/metadata/usecase"
	scan_usecase "github.com/x-xyz/rentableft/stores/scan/usecase"
	webresource_repository "github.com/x-xyz/rentableft/stores/web_resource/repository"
	webresource_usecase "github.com/x-xyz/rentableft/stores/web_resource/usecase"
)

var (
	configPath   = pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	address      = pflag.String("address", "", "holder address to scan")
	_            = pflag.Int32("chain-id", 137, "chain the contract allow-list lives on")
	_            = pflag.Int("max-contracts", 2, "number of allow-listed contracts to scan")
	_            = pflag.Uint64("max-items", 5, "max tokens read per contract")
	flagBindings = map[string]string{
		"scan.chainId":             "chain-id",
		"scan.maxContracts":        "max-contracts",
		"scan.maxItemsPerContract": "max-items",
	}
)

func loadConfig() {
	pflag.Parse()
	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
	for key, name := range flagBindings {
		f := pflag.Lookup(name)
		// only explicit flags override the file
		if f == nil || !f.Changed {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			panic(err)
		}
	}
	log.SetDebug(viper.GetBool("debug"))
}

func main() {
	loadConfig()
	defer log.Sync()

	context := ctx.Background()
	if !validator.IsValidAddress(*address) {
		context.WithField("address", *address).Error("--address must be a hex account address")
		os.Exit(2)
	}

	scanCfg := scan.Config{}
	if err := viper.UnmarshalKey("scan", &scanCfg); err != nil {
		context.WithField("err", err).Panic("invalid scan config")
	}
	// nested unmarshal does not see flag overrides
	scanCfg.ChainId = domain.ChainId(viper.GetInt32("scan.chainId"))
	scanCfg.MaxContracts = viper.GetInt("scan.maxContracts")
	scanCfg.MaxItemsPerContract = viper.GetUint64("scan.maxItemsPerContract")

	networks := viper.Sub("networks")
	rpcs := make(map[domain.ChainId]string)
	if networks != nil {
		for k := range networks.AllSettings() {
			rpcs[domain.ChainId(networks.GetInt32(k+".chainId"))] = networks.GetString(k + ".rpcUrl")
		}
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:        rpcs,
		MaxConcurrency: viper.GetInt("chain.maxConcurrency"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}

	webResource := webresource_usecase.NewWebResourceUseCase(&webresource_usecase.WebResourceUseCaseCfg{
		HttpReader:    webresource_repository.NewHttpReaderRepo(&http.Client{}, viper.GetDuration("http.timeout"), nil),
		DataUriReader: webresource_repository.NewDataUriReaderRepo(),
	})
	resolver, err := metadata_usecase.NewResolver(&metadata_usecase.ResolverCfg{
		Gateways:      viper.GetStringSlice("ipfs.gateways"),
		CtxTimeout:    viper.GetDuration("metadata.timeout"),
		WebResourceUC: webResource,
	})
	if err != nil {
		context.WithField("err", err).Panic("NewResolver failed")
	}
	orchestrator := scan_usecase.NewOrchestrator(&scanCfg, contract.NewErc721(chainService), resolver)

	runCtx, cancel := ctx.WithCancel(context)
	defer cancel()
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		cancel()
	}()

	res, err := orchestrator.Scan(runCtx, session.Session{
		Address: domain.Address(*address).ToLower(),
		ChainId: scanCfg.ChainId,
	})
	if err != nil {
		context.WithField("err", err).Error("scan failed")
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		context.WithField("err", err).Error("encode result failed")
		os.Exit(1)
	}
}
