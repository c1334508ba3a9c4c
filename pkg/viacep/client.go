// Package viacep is a minimal client for the ViaCEP postal code lookup service.
// Package viacep ViaCEP 邮编查询服务客户端
package viacep

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL public ViaCEP endpoint
	DefaultBaseURL = "https://viacep.com.br"
	// DefaultTimeout 默认请求超时
	DefaultTimeout = 5 * time.Second
)

var (
	// ErrNotFound the lookup answered but the code does not exist
	// ErrNotFound 查询成功但邮编不存在
	ErrNotFound = errors.New("viacep: zipcode not found")
	// ErrBadStatus the lookup answered with a non-2xx status
	// ErrBadStatus 查询返回非 2xx 状态
	ErrBadStatus = errors.New("viacep: unexpected status")
)

// Address ViaCEP 返回的地址信息
type Address struct {
	Cep         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	Uf          string `json:"uf"`
	Ibge        string `json:"ibge"`
	Gia         string `json:"gia"`
	Ddd         string `json:"ddd"`
	Siafi       string `json:"siafi"`
}

// Lookuper is what callers depend on; *Client implements it.
type Lookuper interface {
	Lookup(ctx context.Context, zipcode string) (*Address, error)
}

// Config 客户端配置
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client ViaCEP HTTP 客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Lookuper = (*Client)(nil)

// New 创建客户端，零值字段使用默认值
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// response mirrors the payload plus the "erro" marker, which ViaCEP sends as
// either a boolean or the string "true".
type response struct {
	Address
	Erro interface{} `json:"erro"`
}

func (r *response) notFound() bool {
	switch v := r.Erro.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

// Lookup performs exactly one GET {base}/ws/{zipcode}/json/.
// Lookup 发起一次查询，不重试，不缓存
func (c *Client) Lookup(ctx context.Context, zipcode string) (*Address, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, zipcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "viacep: build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "viacep: request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(ErrBadStatus, "status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "viacep: read body")
	}

	var r response
	if err := sonic.Unmarshal(body, &r); err != nil {
		return nil, errors.Wrap(err, "viacep: decode body")
	}
	if r.notFound() {
		return nil, ErrNotFound
	}

	addr := r.Address
	return &addr, nil
}
