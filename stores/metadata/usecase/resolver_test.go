package usecase

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/asset"
	"github.com/x-xyz/rentableft/domain/metadata"
	"github.com/x-xyz/rentableft/stores/web_resource/repository"
	wrUsecase "github.com/x-xyz/rentableft/stores/web_resource/usecase"
)

type ResolverTestSuite struct {
	suite.Suite
	srv      *httptest.Server
	gateway  string
	resolver metadata.Resolver
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupSuite() {
	docs := map[string]string{
		"/ipfs/QmFull":     `{"name":"Dragon Blade","description":"sharp","image":"ipfs://QmImage","animation_url":"ipfs://QmAnim","attributes":[{"trait_type":"Damage","value":42}]}`,
		"/ipfs/QmNoName":   `{"image":"https://img.example/1.png"}`,
		"/ipfs/QmBadTypes": `{"name":7,"description":["x"],"image":null}`,
		"/ipfs/QmHtml":     `<html>not json</html>`,
		"/ipfs/QmArray":    `[1,2,3]`,
		"/meta/plain.json": `{"name":"Plain","image":"bafyImage"}`,
	}
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc, ok := docs[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(doc))
	}))
	s.gateway = s.srv.URL + "/ipfs/"

	webResourceUC := wrUsecase.NewWebResourceUseCase(&wrUsecase.WebResourceUseCaseCfg{
		HttpReader:    repository.NewHttpReaderRepo(s.srv.Client(), 0, nil),
		DataUriReader: repository.NewDataUriReaderRepo(),
	})
	r, err := NewResolver(&ResolverCfg{
		Gateways:      []string{s.gateway, "https://unused.example/ipfs/"},
		WebResourceUC: webResourceUC,
	})
	s.Require().NoError(err)
	s.resolver = r
}

func (s *ResolverTestSuite) TearDownSuite() {
	s.srv.Close()
}

func (s *ResolverTestSuite) TestFullDocument() {
	got, err := s.resolver.Resolve(bCtx.Background(), "ipfs://QmFull")
	s.Require().NoError(err)
	s.Equal(&metadata.Record{
		Name:         "Dragon Blade",
		Description:  "sharp",
		Image:        s.gateway + "QmImage",
		AnimationUrl: s.gateway + "QmAnim",
		Attributes:   asset.Attributes{{TraitType: "Damage", Value: "42"}},
	}, got)
}

func (s *ResolverTestSuite) TestDefaults() {
	got, err := s.resolver.Resolve(bCtx.Background(), "QmNoName")
	s.Require().NoError(err)
	s.Equal(metadata.DefaultName, got.Name)
	s.Equal("", got.Description)
	s.Equal("https://img.example/1.png", got.Image)

	got, err = s.resolver.Resolve(bCtx.Background(), "ipfs://QmBadTypes")
	s.Require().NoError(err)
	s.Equal(metadata.DefaultName, got.Name)
	s.Equal("", got.Description)
	s.Equal("", got.Image)
}

func (s *ResolverTestSuite) TestHttpPointerUnchanged() {
	got, err := s.resolver.Resolve(bCtx.Background(), s.srv.URL+"/meta/plain.json")
	s.Require().NoError(err)
	s.Equal("Plain", got.Name)
	s.Equal(s.gateway+"bafyImage", got.Image)
}

func (s *ResolverTestSuite) TestNormalizeURL() {
	s.Equal(s.gateway+"QmX", s.resolver.NormalizeURL("ipfs://QmX"))
	s.Equal(s.gateway+"ipfs://QmX", s.resolver.NormalizeURL("ipfs://ipfs://QmX"))
	s.Equal("https://a.example/x.json", s.resolver.NormalizeURL("https://a.example/x.json"))
}

func (s *ResolverTestSuite) TestDataUri() {
	got, err := s.resolver.Resolve(bCtx.Background(), `data:application/json;utf8,{"name":"OnChain","image":"data:image/svg+xml;base64,PHN2Zy8+"}`)
	s.Require().NoError(err)
	s.Equal("OnChain", got.Name)
	s.Equal("data:image/svg+xml;base64,PHN2Zy8+", got.Image)
}

func (s *ResolverTestSuite) TestFailures() {
	for _, pointer := range []string{
		"ipfs://QmMissing",
		"ipfs://QmHtml",
		"ipfs://QmArray",
		"ar://somewhere",
	} {
		got, err := s.resolver.Resolve(bCtx.Background(), pointer)
		s.Nil(got, pointer)
		s.True(errors.Is(err, domain.ErrResolutionFailure), pointer)
	}
}

func (s *ResolverTestSuite) TestNoGateway() {
	_, err := NewResolver(&ResolverCfg{})
	s.True(errors.Is(err, domain.ErrBadParamInput))
}
