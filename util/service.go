package util

import (
	"context"
	"time"

	"github.com/kbukum/utilkit/async"
	"github.com/kbukum/utilkit/config"
	"github.com/kbukum/utilkit/logger"
)

// TextFilter transforms text.
type TextFilter func(string) string

// Service exposes every utility operation behind one value. It is safe for
// concurrent use.
type Service struct {
	log                  *logger.Logger
	stripTags            TextFilter
	stripNonAlphanumeric TextFilter
	params               *ParamRegistry
	cfg                  config.UtilConfig
	waiter               async.Waiter
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithTextFilters sets the collaborators behind StripTags and
// StripNonAlphanumeric. A nil filter leaves text unchanged.
func WithTextFilters(stripTags, stripNonAlphanumeric TextFilter) Option {
	return func(s *Service) {
		s.stripTags = stripTags
		s.stripNonAlphanumeric = stripNonAlphanumeric
	}
}

// WithParamRegistry sets the registry used by GetParamNames. The default is
// the package registry.
func WithParamRegistry(r *ParamRegistry) Option {
	return func(s *Service) {
		if r != nil {
			s.params = r
		}
	}
}

// WithConfig sets timeouts and limits. Zero fields keep their defaults.
func WithConfig(cfg config.UtilConfig) Option {
	return func(s *Service) {
		s.cfg.Async.DefaultTimeout = Coalesce(cfg.Async.DefaultTimeout, s.cfg.Async.DefaultTimeout)
		s.cfg.Async.PollInterval = Coalesce(cfg.Async.PollInterval, s.cfg.Async.PollInterval)
		s.cfg.Random.DefaultLength = Coalesce(cfg.Random.DefaultLength, s.cfg.Random.DefaultLength)
		s.cfg.MapStrings.MaxPasses = Coalesce(cfg.MapStrings.MaxPasses, s.cfg.MapStrings.MaxPasses)
	}
}

// NewService returns a Service with the given options applied.
func NewService(opts ...Option) *Service {
	s := &Service{
		log:    logger.Nop(),
		params: defaultParams,
		cfg:    config.Default().Util,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithComponent("util")
	s.waiter = async.Waiter{PollInterval: s.cfg.Async.PollInterval}
	return s
}

// Config returns the effective configuration.
func (s *Service) Config() config.UtilConfig { return s.cfg }

// IsJSON reports whether text parses as JSON.
func (s *Service) IsJSON(text string) bool { return IsJSON(text) }

// ParseJSON decodes text as JSON.
func (s *Service) ParseJSON(text string) (any, error) { return ParseJSON(text) }

// IsFunction reports whether v holds a non-nil func.
func (s *Service) IsFunction(v any) bool { return IsFunction(v) }

// IsValidEmail reports whether text looks like an email address.
func (s *Service) IsValidEmail(text string) bool { return IsValidEmail(text) }

// Inherits makes sub delegate to parent.
func (s *Service) Inherits(sub, parent *Prototype) error {
	if err := Inherits(sub, parent); err != nil {
		s.log.Debug("inherits rejected", logger.ErrorFields("inherits", err))
		return err
	}
	return nil
}

// Extend copies source onto target.
func (s *Service) Extend(target, source map[string]any) map[string]any {
	return Extend(target, source)
}

// DeepExtend merges source into target recursively.
func (s *Service) DeepExtend(target, source map[string]any) map[string]any {
	return DeepExtend(target, source)
}

// UUID returns a random version 4 UUID.
func (s *Service) UUID() string { return UUID() }

// Random returns a random string of length characters.
func (s *Service) Random(length int, useAlphabet, useNumbers bool) (string, error) {
	return Random(length, useAlphabet, useNumbers)
}

// RandomToken returns a letters-and-numbers token of the configured length.
func (s *Service) RandomToken() (string, error) {
	return RandomToken(s.cfg.Random.DefaultLength)
}

// EncodeUTF8 returns the UTF-8 bytes of text with CRLF normalized.
func (s *Service) EncodeUTF8(text string) []byte { return EncodeUTF8(text) }

// EncodeBase64 base64-encodes the UTF-8 bytes of text.
func (s *Service) EncodeBase64(text string) string { return EncodeBase64(text) }

// DecodeBase64 reverses EncodeBase64.
func (s *Service) DecodeBase64(encoded string) (string, error) { return DecodeBase64(encoded) }

// DataURIToBlob decodes a data URI.
func (s *Service) DataURIToBlob(uri string) (*Blob, error) {
	blob, err := DataURIToBlob(uri)
	if err != nil {
		s.log.Debug("data uri rejected", logger.ErrorFields("data_uri", err))
		return nil, err
	}
	s.log.Debug("data uri decoded", logger.Fields(
		logger.FieldMIMEType, blob.Type(),
		logger.FieldLength, blob.Size(),
	))
	return blob, nil
}

// StripTags removes markup through the injected filter.
func (s *Service) StripTags(text string) string {
	if s.stripTags == nil {
		return text
	}
	return s.stripTags(text)
}

// StripNonAlphanumeric removes non-alphanumerics through the injected filter.
func (s *Service) StripNonAlphanumeric(text string) string {
	if s.stripNonAlphanumeric == nil {
		return text
	}
	return s.stripNonAlphanumeric(text)
}

// Countdown bounds a by max. A non-positive max uses the configured default.
func (s *Service) Countdown(ctx context.Context, a async.Awaitable, max time.Duration) *async.Promise[any] {
	return s.waiter.Countdown(ctx, a, s.timeout(max))
}

// SafeAsync normalizes value into a promise bounded by timeout. A
// non-positive timeout uses the configured default.
func (s *Service) SafeAsync(ctx context.Context, value any, timeout time.Duration, args ...any) *async.Promise[any] {
	return s.waiter.SafeAsync(ctx, value, s.timeout(timeout), args...)
}

func (s *Service) timeout(d time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return s.cfg.Async.DefaultTimeout
}

// GetParamNames returns the parameter names registered for fn.
func (s *Service) GetParamNames(fn any) []string { return s.params.Names(fn) }

// RegisterParamNames records parameter names for fn.
func (s *Service) RegisterParamNames(fn any, names ...string) error {
	return s.params.Register(fn, names...)
}

// MapStrings rewrites text with mapping up to the configured pass limit.
func (s *Service) MapStrings(text string, mapping map[string]string) (string, error) {
	out, err := MapStringsN(text, mapping, s.cfg.MapStrings.MaxPasses)
	if err != nil {
		s.log.Debug("map strings failed", logger.ErrorFields("map_strings", err))
		return "", err
	}
	return out, nil
}
