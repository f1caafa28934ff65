package backend

import (
	"fmt"
	"sort"
	"sync"
)

// Function is a named callable made available to expressions.
type Function interface {
	Name() string
	Description() string
	Call(args ...any) (any, error)
}

type function struct {
	name        string
	description string
	call        func(args ...any) (any, error)
}

func (f function) Name() string                  { return f.name }
func (f function) Description() string           { return f.description }
func (f function) Call(args ...any) (any, error) { return f.call(args...) }

// NewFunction wraps call as a Function.
func NewFunction(name, description string, call func(args ...any) (any, error)) Function {
	return function{name: name, description: description, call: call}
}

// Registry manages the functions every expression can call.
type Registry struct {
	functions map[string]Function
	mu        sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		functions: make(map[string]Function),
	}
}

// Register adds fn, replacing any function with the same name.
func (r *Registry) Register(fn Function) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.functions[fn.Name()] = fn
}

func (r *Registry) Get(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.functions[name]
	return fn, ok
}

// List returns all functions sorted by name.
func (r *Registry) List() []Function {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Function, 0, len(r.functions))
	for _, fn := range r.functions {
		out = append(out, fn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Call invokes a registered function by name.
func (r *Registry) Call(name string, args ...any) (any, error) {
	fn, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("function '%s' not found", name)
	}
	return fn.Call(args...)
}
