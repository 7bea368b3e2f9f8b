// Package currency получает курсы PLN к другим валютам из внешнего API
// с резервной таблицей и необязательным кэшем в Redis.
package currency

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"revenue/internal/app/apperr"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const Base = "PLN"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// резервные курсы на случай недоступности API
var fallbackRates = map[string]decimal.Decimal{
	"USD": decimal.RequireFromString("0.25"),
	"EUR": decimal.RequireFromString("0.23"),
	"GBP": decimal.RequireFromString("0.20"),
}

// ErrCacheMiss возвращается кэшем, если записи нет
var ErrCacheMiss = errors.New("rates cache miss")

// Cache - хранилище последнего успешного ответа API
type Cache interface {
	GetRates(ctx context.Context, base string) ([]byte, error)
	SetRates(ctx context.Context, base string, payload []byte, ttl time.Duration) error
}

type ratesPayload struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

type Lookup struct {
	baseURL  string
	client   *http.Client
	cache    Cache
	cacheTTL time.Duration
	log      logrus.FieldLogger
}

// NewLookup; cache может быть nil
func NewLookup(baseURL string, timeout time.Duration, cache Cache, cacheTTL time.Duration, log logrus.FieldLogger) *Lookup {
	return &Lookup{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// GetRate возвращает, сколько единиц code стоит 1 PLN.
// При сбое API используются резервные курсы.
func (l *Lookup) GetRate(ctx context.Context, code string) (decimal.Decimal, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || code == Base {
		return decimal.NewFromInt(1), nil
	}

	rates, err := l.rates(ctx)
	if err != nil {
		l.log.WithError(err).WithField("currency", code).Warn("exchange rate lookup failed, using fallback rates")
		rates = fallbackRates
	}

	rate, ok := rates[code]
	if !ok {
		return decimal.Zero, apperr.Invalid("currency %s not supported", code)
	}
	return rate, nil
}

func (l *Lookup) rates(ctx context.Context) (map[string]decimal.Decimal, error) {
	if l.cache != nil {
		payload, err := l.cache.GetRates(ctx, Base)
		switch {
		case err == nil:
			if rates, err := decodeRates(payload); err == nil {
				return rates, nil
			}
		case !errors.Is(err, ErrCacheMiss):
			l.log.WithError(err).Warn("rates cache read failed")
		}
	}

	payload, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}
	rates, err := decodeRates(payload)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		if err := l.cache.SetRates(ctx, Base, payload, l.cacheTTL); err != nil {
			l.log.WithError(err).Warn("rates cache write failed")
		}
	}
	return rates, nil
}

func (l *Lookup) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/"+Base, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request rates: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read rates: %w", err)
	}
	return body, nil
}

func decodeRates(payload []byte) (map[string]decimal.Decimal, error) {
	var p ratesPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("decode rates: %w", err)
	}
	if len(p.Rates) == 0 {
		return nil, errors.New("decode rates: empty rates table")
	}
	return p.Rates, nil
}
