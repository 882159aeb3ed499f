package pinata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/metrics"
)

const (
	pinPath     = "/pinning/pinFileToIPFS"
	pinJsonPath = "/pinning/pinJSONToIPFS"
)

type pinataImpl struct {
	cfg    Config
	client *http.Client
	met    metrics.Service
}

func New(cfg Config) Service {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &pinataImpl{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		met:    metrics.New("pinata"),
	}
}

func (im *pinataImpl) metadata(name string) *PinataMetadata {
	return &PinataMetadata{Name: name, KeyValues: im.cfg.KeyValues}
}

func (im *pinataImpl) Pin(c ctx.Ctx, file io.Reader, name string) (string, error) {
	var b bytes.Buffer

	w := multipart.NewWriter(&b)
	if fw, err := w.CreateFormFile("file", name); err != nil {
		c.WithField("err", err).Error("w.CreateFormFile failed")
		return "", err
	} else if _, err := io.Copy(fw, file); err != nil {
		c.WithField("err", err).Error("io.Copy failed")
		return "", err
	}

	for field, value := range map[string]interface{}{
		"pinataMetadata": im.metadata(name),
		"pinataOptions":  &PinataOptions{CidVersion: im.cfg.CidVersion},
	} {
		data, err := json.Marshal(value)
		if err != nil {
			c.WithField("err", err).Error("json.Marshal failed")
			return "", err
		}
		if err := w.WriteField(field, string(data)); err != nil {
			c.WithField("err", err).Error("w.WriteField failed")
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		c.WithField("err", err).Error("w.Close failed")
		return "", err
	}

	return im.do(c, pinPath, w.FormDataContentType(), &b)
}

func (im *pinataImpl) PinJson(c ctx.Ctx, value interface{}, name string) (string, error) {
	body, err := json.Marshal(&pinJsonBody{
		Metadata:      im.metadata(name),
		Options:       &PinataOptions{CidVersion: im.cfg.CidVersion},
		PinataContent: value,
	})
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}

	return im.do(c, pinJsonPath, "application/json", bytes.NewReader(body))
}

// do posts body to path and returns the IpfsHash of the response
func (im *pinataImpl) do(c ctx.Ctx, path, contentType string, body io.Reader) (string, error) {
	defer im.met.BumpTime("pin.latency", "path", path).End()

	url := fmt.Sprintf("%s%s", im.cfg.Endpoint, path)
	req, err := http.NewRequestWithContext(c, http.MethodPost, url, body)
	if err != nil {
		c.WithField("err", err).Error("http.NewRequest failed")
		return "", err
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("pinata_api_key", im.cfg.ApiKey)
	req.Header.Set("pinata_secret_api_key", im.cfg.ApiSecret)

	resp, err := im.client.Do(req)
	if err != nil {
		im.met.BumpSum("pin.err", 1, "path", path)
		c.WithField("err", err).Error("client.Do failed")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		im.met.BumpSum("pin.err", 1, "path", path)
		errorBody, _ := io.ReadAll(resp.Body)
		c.WithField("errorBody", string(errorBody)).Error("Request failed")
		return "", ErrRequestFailed
	}

	type payload struct {
		IpfsHash string `json:"IpfsHash"`
	}

	p := &payload{}
	if err := json.NewDecoder(resp.Body).Decode(p); err != nil {
		c.WithField("err", err).Error("json.NewDecoder.Decode failed")
		return "", err
	}
	return p.IpfsHash, nil
}
