package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/alape/bfi/logs"
	"github.com/alape/bfi/nets"
)

// MaxSize bounds the length of a loaded program.
const MaxSize = 16 << 20

var ErrTooLarge = errors.New("source too large")

// Load returns the text at location: "-" for standard input,
// an http or https URL, or a file path.
type Load func(ctx context.Context, location string) (string, error)

func (Module) Load(
	client nets.HTTPClient,
	stdin Stdin,
	searchPaths SearchPaths,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, location string) (ret string, err error) {
		defer func() {
			if err != nil {
				err = logs.WrapSpan(ctx, err)
				return
			}
			logger.DebugContext(ctx, "source loaded",
				"location", location,
				"bytes", len(ret),
			)
		}()

		switch {

		case location == "-":
			return readAll(stdin)

		case strings.HasPrefix(location, "http://"),
			strings.HasPrefix(location, "https://"):
			return fetch(ctx, client, location)

		default:
			f, err := searchPaths.open(location)
			if err != nil {
				return "", err
			}
			defer f.Close()
			return readAll(f)

		}
	}
}

func fetch(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	text, err := readAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	return text, nil
}

func readAll(r io.Reader) (string, error) {
	content, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return "", err
	}
	if len(content) > MaxSize {
		return "", ErrTooLarge
	}
	return string(content), nil
}
