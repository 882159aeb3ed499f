package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain"
	mAuth "github.com/x-xyz/rentableft/domain/auth/mocks"
	"github.com/x-xyz/rentableft/domain/metadata"
	"github.com/x-xyz/rentableft/domain/session"
	"github.com/x-xyz/rentableft/domain/upload"
	bMiddleware "github.com/x-xyz/rentableft/middleware"
	"github.com/x-xyz/rentableft/stores/auth/delivery/http/middleware"
)

type fakeUpload struct {
	file   string
	name   string
	record *metadata.Record
}

func (f *fakeUpload) UploadFile(c ctx.Ctx, file io.Reader, name string) (*upload.Result, error) {
	data, _ := io.ReadAll(file)
	f.file, f.name = string(data), name
	if f.file == "text" {
		return nil, domain.ErrUnsupportedMedia
	}
	return &upload.Result{Cid: "bafyfile", Uri: "ipfs://bafyfile"}, nil
}

func (f *fakeUpload) UploadMetadata(c ctx.Ctx, record *metadata.Record) (*upload.Result, error) {
	f.record = record
	return &upload.Result{Cid: "bafyjson", Uri: "ipfs://bafyjson"}, nil
}

type handlerSuite struct {
	suite.Suite
	e      *echo.Echo
	upload *fakeUpload
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	auth := &mAuth.Usecase{}
	auth.On("ParseToken", mock.Anything, "tok").Return(session.Session{Id: "sid", Address: "0xabc"}, nil)

	s.upload = &fakeUpload{}
	s.e = echo.New()
	s.e.Use(bMiddleware.InitMiddleware("").AddContext())
	New(s.e, s.upload, middleware.New(auth))
}

func (s *handlerSuite) postFile(content string) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", "sword.png")
	s.Require().NoError(err)
	fw.Write([]byte(content))
	s.Require().NoError(w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload/file", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestUploadFile() {
	rec := s.postFile("png")
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"uri":"ipfs://bafyfile"`)
	s.Equal("png", s.upload.file)
	s.Equal("sword.png", s.upload.name)

	rec = s.postFile("text")
	s.Equal(http.StatusUnsupportedMediaType, rec.Code)
}

func (s *handlerSuite) TestUploadFileMissing() {
	req := httptest.NewRequest(http.MethodPost, "/upload/file", strings.NewReader(""))
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestUploadMetadata() {
	req := httptest.NewRequest(http.MethodPost, "/upload/metadata", strings.NewReader(`{"name":"Dragon Sword","image":"ipfs://bafyfile"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("Dragon Sword", s.upload.record.Name)
	s.Equal("ipfs://bafyfile", s.upload.record.Image)
}
