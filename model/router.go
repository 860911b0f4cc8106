package model

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/randalmurphal/modelrouter/modelconfig"
)

// Sentinel errors for routing operations. Configuration errors
// (modelconfig.ErrConfigNotFound, modelconfig.ErrMalformedConfig) are
// returned unchanged.
var (
	// ErrProviderNotFound indicates the provider key is absent from the configuration.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrGeneralTierMissing indicates a provider entry lacks the general tier
	// needed for fallback.
	ErrGeneralTierMissing = modelconfig.ErrGeneralTierMissing
)

// routerKey is the context key for the router.
type routerKey struct{}

// Router resolves (provider, technique, tier) to a model identifier.
//
// A Router holds no configuration state: every call reads the config
// source again, so it is safe for concurrent use and always reflects the
// file on disk.
type Router struct {
	configPath string
	candidates []modelconfig.Candidate
	policy     modelconfig.Policy
	logger     *slog.Logger
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// NewRouter creates a router with the given options. Defaults: config path
// modelconfig.DefaultPath, modelconfig.DefaultCandidates, and
// modelconfig.DefaultPolicy.
func NewRouter(opts ...RouterOption) *Router {
	r := &Router{
		configPath: modelconfig.DefaultPath,
		policy:     modelconfig.DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.candidates == nil {
		r.candidates = modelconfig.DefaultCandidates()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// WithConfigPath sets the requested configuration path.
func WithConfigPath(path string) RouterOption {
	return func(r *Router) {
		if path != "" {
			r.configPath = path
		}
	}
}

// WithCandidates replaces the ordered list of locations tried for the config.
func WithCandidates(candidates ...modelconfig.Candidate) RouterOption {
	return func(r *Router) {
		r.candidates = candidates
	}
}

// WithPolicy sets the reasoning routing policy.
func WithPolicy(policy modelconfig.Policy) RouterOption {
	return func(r *Router) {
		r.policy = policy.Clone()
	}
}

// WithLogger sets the logger used for routing diagnostics.
func WithLogger(logger *slog.Logger) RouterOption {
	return func(r *Router) {
		r.logger = logger
	}
}

// ConfigPath returns the requested configuration path.
func (r *Router) ConfigPath() string {
	return r.configPath
}

// Policy returns a copy of the router's reasoning policy.
func (r *Router) Policy() modelconfig.Policy {
	return r.policy.Clone()
}

func (r *Router) load() (modelconfig.Config, error) {
	path, err := modelconfig.Locate(r.configPath, r.candidates...)
	if err != nil {
		return nil, err
	}
	if path != r.configPath {
		r.logger.Debug("model config resolved via fallback",
			slog.String("requested", r.configPath),
			slog.String("path", path))
	}
	return modelconfig.Load(path)
}

// PickModel returns the model identifier for provider.
//
// An empty tier is inferred from technique with InferTier; an explicit tier
// overrides inference entirely. A tier the provider does not list falls
// back to TierGeneral.
//
// Errors: modelconfig.ErrConfigNotFound, modelconfig.ErrMalformedConfig,
// ErrProviderNotFound, and ErrGeneralTierMissing when the fallback itself
// is absent.
func (r *Router) PickModel(provider Provider, technique string, tier Tier) (string, error) {
	cfg, err := r.load()
	if err != nil {
		return "", err
	}
	return r.pick(cfg, provider, technique, tier)
}

func (r *Router) pick(cfg modelconfig.Config, provider Provider, technique string, tier Tier) (string, error) {
	tiers, ok := cfg[string(provider)]
	if !ok {
		return "", fmt.Errorf("%w: %q in %s", ErrProviderNotFound, provider, r.configPath)
	}

	if tier == "" {
		tier = InferTier(technique)
	}

	m, ok := tiers[string(tier)]
	if ok {
		return m, nil
	}

	m, ok = tiers[string(TierGeneral)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrGeneralTierMissing, provider)
	}
	r.logger.Debug("tier not configured, using general",
		slog.String("provider", string(provider)),
		slog.String("tier", string(tier)))
	return m, nil
}

// ListAvailableModels returns the full configuration. A missing config
// yields an empty mapping and no error; a malformed one is still an error.
func (r *Router) ListAvailableModels() (modelconfig.Config, error) {
	cfg, err := r.load()
	if err != nil {
		if modelconfig.IsNotFound(err) {
			r.logger.Debug("no model config found", slog.String("requested", r.configPath))
			return modelconfig.Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// ShouldUseReasoningModel applies the router's policy to technique.
func (r *Router) ShouldUseReasoningModel(technique string) bool {
	return ShouldUseReasoningModel(r.policy, technique)
}

// PickModel is a convenience wrapper that builds a one-shot Router for
// configPath with default candidates.
func PickModel(provider Provider, technique string, tier Tier, configPath string) (string, error) {
	return NewRouter(WithConfigPath(configPath)).PickModel(provider, technique, tier)
}

// ListAvailableModels is a convenience wrapper around Router.ListAvailableModels.
func ListAvailableModels(configPath string) (modelconfig.Config, error) {
	return NewRouter(WithConfigPath(configPath)).ListAvailableModels()
}

// NewContext returns a new context with the router attached.
func NewContext(ctx context.Context, router *Router) context.Context {
	return context.WithValue(ctx, routerKey{}, router)
}

// FromContext retrieves the router from the context.
// Returns a default router if none is present.
func FromContext(ctx context.Context) *Router {
	if r, ok := ctx.Value(routerKey{}).(*Router); ok {
		return r
	}
	return NewRouter()
}
