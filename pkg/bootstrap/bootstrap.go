package bootstrap

import (
	"context"
	"errors"

	"github.com/corralmq/corral/pkg/admin"
	"github.com/corralmq/corral/pkg/reconciler"
	"github.com/corralmq/corral/pkg/topology"
)

// Configuration errors returned by App.Run when a required collaborator
// was never supplied. Distinguished so startup code can tell a missing
// client from a missing topology definition.
var (
	ErrClientNotConfigured     = errors.New("admin client not configured")
	ErrDefinitionNotConfigured = errors.New("topology definition not configured")
)

// App assembles a reconciliation run from explicit collaborators. It is
// the composition-root convenience: construct once at startup, supply the
// client and the definition, call Run.
type App struct {
	client  admin.Client
	def     topology.Definition
	options []reconciler.Option
}

// New creates an empty App
func New() *App {
	return &App{}
}

// WithClient supplies the administrative client. Returns the App for
// chaining.
func (a *App) WithClient(client admin.Client) *App {
	a.client = client
	return a
}

// WithDefinition supplies the topology definition. Returns the App for
// chaining.
func (a *App) WithDefinition(def topology.Definition) *App {
	a.def = def
	return a
}

// WithReconcilerOptions forwards options (logger, event broker) to the
// reconciler Run constructs.
func (a *App) WithReconcilerOptions(opts ...reconciler.Option) *App {
	a.options = append(a.options, opts...)
	return a
}

// Run builds the definition's resource and reconciles it. Fails with
// ErrClientNotConfigured or ErrDefinitionNotConfigured before touching
// the network when a collaborator is missing.
func (a *App) Run(ctx context.Context) error {
	if a.client == nil {
		return ErrClientNotConfigured
	}
	if a.def == nil {
		return ErrDefinitionNotConfigured
	}
	return RunResource(ctx, a.client, topology.Build(a.def), a.options...)
}

// Run reconciles a definition against a client in one call
func Run(ctx context.Context, client admin.Client, def topology.Definition, opts ...reconciler.Option) error {
	return New().
		WithClient(client).
		WithDefinition(def).
		WithReconcilerOptions(opts...).
		Run(ctx)
}

// RunResource reconciles an already built resource, skipping the
// Definition indirection entirely.
func RunResource(ctx context.Context, client admin.Client, resource *topology.Resource, opts ...reconciler.Option) error {
	if client == nil {
		return ErrClientNotConfigured
	}
	return reconciler.New(client, opts...).Reconcile(ctx, resource)
}
