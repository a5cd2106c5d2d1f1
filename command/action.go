package command

import (
	"context"

	"github.com/arclet-go/alconna/alerr"
)

// Action wraps a callable attached to a node. NewSyncAction and
// NewAsyncAction each set exactly one of Sync/Async. The analyser inspects
// which field is non-nil and runs only Sync; an Action with only Async set
// is not invoked by analyser.Analyse.
//
// The callable receives the accumulated slot map after the node's slot list
// has been consumed. A non-nil map it returns replaces the slot map as a
// whole; it is not mapped positionally onto the existing keys.
type Action struct {
	Sync  func(map[string]any) (map[string]any, error)
	Async func(context.Context, map[string]any) (map[string]any, error)
}

// NewSyncAction builds an Action with a synchronous callable.
func NewSyncAction(fn func(map[string]any) (map[string]any, error)) (*Action, error) {
	if fn == nil {
		return nil, alerr.NewInvalidParam("sync action must not be nil")
	}
	return &Action{Sync: fn}, nil
}

// NewAsyncAction builds an Action with an asynchronous callable.
func NewAsyncAction(fn func(context.Context, map[string]any) (map[string]any, error)) (*Action, error) {
	if fn == nil {
		return nil, alerr.NewInvalidParam("async action must not be nil")
	}
	return &Action{Async: fn}, nil
}

// IsAsync reports whether a carries an asynchronous callable.
func (a *Action) IsAsync() bool {
	return a != nil && a.Async != nil
}

// InvokeSync runs a's synchronous callable and returns its result via
// remap.
func (a *Action) InvokeSync(values map[string]any) (map[string]any, error) {
	if a == nil || a.Sync == nil {
		return values, nil
	}
	result, err := a.Sync(values)
	if err != nil {
		return values, err
	}
	return remap(values, result), nil
}

// InvokeAsync runs a's asynchronous callable and returns its result via
// remap.
func (a *Action) InvokeAsync(ctx context.Context, values map[string]any) (map[string]any, error) {
	if a == nil || a.Async == nil {
		return values, nil
	}
	result, err := a.Async(ctx, values)
	if err != nil {
		return values, err
	}
	return remap(values, result), nil
}

// remap returns result as the new slot map, keys and all; values' keys are
// not carried over. If result is nil, values is returned unchanged (the
// callable declined to replace anything).
func remap(values, result map[string]any) map[string]any {
	if result == nil {
		return values
	}
	return result
}
