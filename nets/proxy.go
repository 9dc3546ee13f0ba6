package nets

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/alape/bfi/configs"
	"github.com/alape/bfi/logs"
	"github.com/alape/bfi/modes"
	"github.com/alape/bfi/vars"
	"golang.org/x/net/proxy"
)

// ProxyAddr is the proxy URL remote sources are fetched through. Empty means direct.
type ProxyAddr string

var proxyEnvs = []string{
	"ALL_PROXY", "all_proxy",
	"HTTPS_PROXY", "https_proxy",
	"HTTP_PROXY", "http_proxy",
}

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) ProxyAddr {
	if mode == modes.ModeDevelopment {
		return ""
	}
	candidates := []ProxyAddr{
		configs.First[ProxyAddr](loader, "proxy_addr"),
	}
	for _, env := range proxyEnvs {
		candidates = append(candidates, ProxyAddr(os.Getenv(env)))
	}
	addr := vars.FirstNonZero(candidates...)
	if addr != "" {
		logger.Debug("proxy", "addr", addr)
	}
	return addr
}

// NoProxy lists hosts dialed directly, from NO_PROXY.
// An entry matches the host itself and its subdomains; "*" matches everything.
type NoProxy []string

func (Module) NoProxy() (ret NoProxy) {
	value := vars.FirstNonZero(os.Getenv("NO_PROXY"), os.Getenv("no_proxy"))
	for entry := range strings.SplitSeq(value, ",") {
		entry = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(entry), "."))
		if entry != "" {
			ret = append(ret, entry)
		}
	}
	return
}

func (n NoProxy) Match(host string) bool {
	host = strings.ToLower(host)
	for _, entry := range n {
		if entry == "*" || host == entry || strings.HasSuffix(host, "."+entry) {
			return true
		}
	}
	return false
}

type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	addr ProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if addr == "" {
			return nil, nil
		}
		u, err := url.Parse(string(addr))
		if err != nil {
			return nil, fmt.Errorf("parse proxy address: %w", err)
		}
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		return u, nil
	})
}

// GetProxyDialer returns a dialer through the proxy, or a direct one when none is set.
type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	getURL GetProxyURL,
) GetProxyDialer {
	direct := new(net.Dialer)
	return sync.OnceValues(func() (Dialer, error) {
		u, err := getURL()
		if err != nil {
			return nil, err
		}
		if u == nil {
			return direct, nil
		}
		viaProxy, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, fmt.Errorf("proxy %s: %w", u.Redacted(), err)
		}
		if d, ok := viaProxy.(Dialer); ok {
			return d, nil
		}
		return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
			return viaProxy.Dial(network, addr)
		}), nil
	})
}
